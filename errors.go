package uitree

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey is returned when an attach would put two elements with
	// the same key under one screen or one detached tree.
	ErrDuplicateKey = errors.New("duplicate element key")

	// ErrStaleProvider is returned when a clip provider's source element was
	// removed from the tree without being unregistered first.
	ErrStaleProvider = errors.New("clip provider is no longer in the tree")

	// ErrKeyLocked is returned by SetKey while the element has a parent.
	ErrKeyLocked = errors.New("element key can only change while the element has no parent")

	// ErrAlreadyAttached is returned when attaching an element that already
	// has a parent, is a screen root, or would create a cycle.
	ErrAlreadyAttached = errors.New("element is already attached")

	// ErrNotChild is returned when removing an element that is not a child.
	ErrNotChild = errors.New("element is not a child")

	// ErrWrongScreen is returned when mixing elements of different screens.
	ErrWrongScreen = errors.New("element belongs to a different screen")

	// ErrNoTheme is returned by style-key setters when the screen has no theme.
	ErrNoTheme = errors.New("screen has no theme")
)

// DuplicateKeyError reports an identity conflict during attach.
type DuplicateKeyError struct {
	Key    string
	Parent string // empty when attaching at screen level
}

func (e *DuplicateKeyError) Error() string {
	if e.Parent == "" {
		return fmt.Sprintf("element %q conflicts with an element already on the screen", e.Key)
	}
	return fmt.Sprintf("element %q conflicts with a previously added element (parent %q)", e.Key, e.Parent)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// StaleProviderError names the element whose clip provider went stale.
type StaleProviderError struct {
	Element  string
	Provider string
}

func (e *StaleProviderError) Error() string {
	return fmt.Sprintf("element %q is clipped by %q, which is no longer in the tree", e.Element, e.Provider)
}

func (e *StaleProviderError) Unwrap() error {
	return ErrStaleProvider
}
