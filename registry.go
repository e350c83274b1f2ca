package uitree

// Registry maps keys to the elements reachable from one screen.
// Each Screen owns its own Registry, so independent trees never share keys.
type Registry struct {
	elements map[string]*Element
}

func newRegistry() *Registry {
	return &Registry{elements: make(map[string]*Element)}
}

// Lookup returns the element registered under key.
func (r *Registry) Lookup(key string) (*Element, bool) {
	e, ok := r.elements[key]
	return e, ok
}

// Len returns the number of registered elements.
func (r *Registry) Len() int {
	return len(r.elements)
}

// firstConflict returns the first key in e's subtree that is already
// registered or that appears twice within the subtree.
func (r *Registry) firstConflict(e *Element) string {
	return firstRepeat(e, func(key string) bool {
		_, taken := r.elements[key]
		return taken
	})
}

// firstRepeat walks e's subtree and returns the first key for which taken
// reports true or that an earlier element of the subtree already uses.
func firstRepeat(e *Element, taken func(key string) bool) string {
	var conflict string
	seen := make(map[string]bool)
	e.Walk(func(el *Element) {
		if conflict != "" {
			return
		}
		if seen[el.key] || taken(el.key) {
			conflict = el.key
		}
		seen[el.key] = true
	})
	return conflict
}

func (r *Registry) registerTree(e *Element) {
	e.Walk(func(el *Element) {
		r.elements[el.key] = el
	})
}

func (r *Registry) unregisterTree(e *Element) {
	e.Walk(func(el *Element) {
		if r.elements[el.key] == el {
			delete(r.elements, el.key)
		}
	})
}
