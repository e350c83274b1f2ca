package uitree

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-uitree/internal/theme"
)

const (
	// DefaultWidth and DefaultHeight are the screen size when WithSize is not given.
	DefaultWidth  = 1280
	DefaultHeight = 720

	// DefaultZOrderStep is the depth step between screen-level elements.
	DefaultZOrderStep = 10
)

// Screen is the root of one UI tree. It owns the key registry, the screen
// bounds used as the outermost clip, and the adapters to the host renderer.
//
// A Screen and its elements must be mutated from a single goroutine.
type Screen struct {
	width, height float64

	logger   *log.Logger
	renderer Renderer
	scene    SceneGraph
	theme    *theme.Theme

	zOrderStep float64
	registry   *Registry

	// Screen-level elements in insertion order
	roots []*Element

	modal *Element
}

// NewScreen creates a Screen with the given options.
func NewScreen(opts ...ScreenOption) (*Screen, error) {
	s := &Screen{
		width:      DefaultWidth,
		height:     DefaultHeight,
		logger:     log.New(io.Discard),
		renderer:   nopRenderer{},
		scene:      nopSceneGraph{},
		zOrderStep: DefaultZOrderStep,
		registry:   newRegistry(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Width returns the screen width in pixels.
func (s *Screen) Width() float64 {
	return s.width
}

// Height returns the screen height in pixels.
func (s *Screen) Height() float64 {
	return s.height
}

// Size returns the screen size as a vector.
func (s *Screen) Size() Vec {
	return V(s.width, s.height)
}

// Bounds returns the full screen rectangle, the outermost clip region.
func (s *Screen) Bounds() Bounds {
	return NewBounds(0, 0, s.width, s.height)
}

// Logger returns the screen's logger.
func (s *Screen) Logger() *log.Logger {
	return s.logger
}

// Theme returns the screen's theme, or nil.
func (s *Screen) Theme() *Theme {
	return s.theme
}

// Registry returns the key registry for this screen.
func (s *Screen) Registry() *Registry {
	return s.registry
}

// Roots returns the screen-level elements in insertion order.
func (s *Screen) Roots() []*Element {
	return s.roots
}

// Modal returns the element currently shown as modal, or nil.
func (s *Screen) Modal() *Element {
	return s.modal
}

// ElementByID returns the element registered under key.
func (s *Screen) ElementByID(key string) *Element {
	e, _ := s.registry.Lookup(key)
	return e
}

// Resize changes the screen size and recomputes every clip region.
func (s *Screen) Resize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("screen size must be positive, got %vx%v", width, height)
	}
	s.width, s.height = width, height
	s.refreshClipping()
	return nil
}

// AddElement attaches e at screen level.
func (s *Screen) AddElement(e *Element) error {
	return s.addElement(e, false)
}

// AddElementHidden attaches e at screen level and hides it.
func (s *Screen) AddElementHidden(e *Element) error {
	return s.addElement(e, true)
}

func (s *Screen) addElement(e *Element, hide bool) error {
	if e.screen != s {
		return fmt.Errorf("add %q to screen: %w", e.key, ErrWrongScreen)
	}
	if e.parent != nil || s.isRoot(e) {
		return fmt.Errorf("add %q to screen: %w", e.key, ErrAlreadyAttached)
	}
	if key := s.registry.firstConflict(e); key != "" {
		s.logger.Warn("conflicting element key", "key", key)
		return &DuplicateKeyError{Key: key}
	}

	if !e.initialized {
		e.position.Y = s.height - e.dimensions.Y - e.position.Y
		e.orgPosition = e.position
		e.initialized = true
	}
	e.orgRelDimensions = e.dimensions.Ratio(s.Size())

	s.roots = append(s.roots, e)
	s.registry.registerTree(e)
	s.scene.Attach(nil, e)
	e.sceneAttached = true
	if hide {
		e.Hide()
	}

	s.ResetZOrder()
	s.refreshClipping()
	s.logger.Debug("attached element to screen", "key", e.key)
	return nil
}

// RemoveElement detaches a screen-level element and cleans up its subtree.
func (s *Screen) RemoveElement(e *Element) error {
	i := slices.Index(s.roots, e)
	if i < 0 {
		return fmt.Errorf("remove %q from screen: %w", e.key, ErrNotChild)
	}
	s.roots = slices.Delete(s.roots, i, i+1)
	s.registry.unregisterTree(e)
	e.releaseAncestorHide()
	s.scene.Detach(e)
	e.sceneAttached = false
	s.clearModalWithin(e)
	e.cleanup()

	s.ResetZOrder()
	s.refreshClipping()
	s.logger.Debug("removed element from screen", "key", e.key)
	return nil
}

// BringToFront moves a screen-level element above its siblings.
func (s *Screen) BringToFront(e *Element) {
	i := slices.Index(s.roots, e)
	if i < 0 || i == len(s.roots)-1 {
		return
	}
	s.roots = append(slices.Delete(s.roots, i, i+1), e)
	s.ResetZOrder()
}

// ResetZOrder assigns depths to screen-level elements in insertion order.
func (s *Screen) ResetZOrder() {
	assignZOrder(s.roots, s.zOrderStep, s.scene)
}

// ElementAt returns the topmost visible element containing the absolute
// point (x, y), or nil.
func (s *Screen) ElementAt(x, y float64) *Element {
	for i := len(s.roots) - 1; i >= 0; i-- {
		if hit := s.roots[i].ElementAt(x, y); hit != nil {
			return hit
		}
	}
	return nil
}

// Walk calls fn for every element on the screen, depth-first.
func (s *Screen) Walk(fn func(*Element)) {
	for _, root := range s.roots {
		root.Walk(fn)
	}
}

func (s *Screen) isRoot(e *Element) bool {
	return slices.Contains(s.roots, e)
}

func (s *Screen) refreshClipping() {
	for _, root := range s.roots {
		root.updateClipping()
	}
}

func (s *Screen) showAsModal(e *Element) {
	s.modal = e
	s.logger.Debug("showing element as modal", "key", e.key)
}

func (s *Screen) hideModal(e *Element) {
	if s.modal == e {
		s.modal = nil
		s.logger.Debug("hid modal element", "key", e.key)
	}
}

// clearModalWithin drops the modal reference when it lives inside e's subtree.
func (s *Screen) clearModalWithin(e *Element) {
	if s.modal == nil {
		return
	}
	for p := s.modal; p != nil; p = p.parent {
		if p == e {
			s.modal.modallyVisible = false
			s.modal = nil
			return
		}
	}
}
