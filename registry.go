package gui

// Registry is a keyed store for widget state that survives across frames.
//
// Unlike TextureCache, entries are never removed automatically: a field
// that wasn't drawn for a while keeps its typed text. Call Destroy when the
// widget is gone for good.
//
// Usage:
//
//	inputs := gui.NewRegistry[string, InputFieldState]()
//	st := inputs.GetOrCreate("name", func(id string) InputFieldState {
//	    return InputFieldState{FirstRender: true}
//	})
//	st.Value += "x" // modifies the stored state
type Registry[K comparable, V any] struct {
	states map[K]*V
}

// NewRegistry creates an empty registry.
func NewRegistry[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{states: make(map[K]*V)}
}

// GetOrCreate returns the state for id, inserting newFn(id) on a miss.
// The returned pointer stays valid until Destroy(id) or Clear.
func (r *Registry[K, V]) GetOrCreate(id K, newFn func(id K) V) *V {
	if st, ok := r.states[id]; ok {
		return st
	}
	var v V
	if newFn != nil {
		v = newFn(id)
	}
	st := &v
	r.states[id] = st
	return st
}

// Get retrieves state only if it already exists. Returns nil otherwise.
func (r *Registry[K, V]) Get(id K) *V {
	return r.states[id]
}

// Destroy removes the state for id and returns it, or nil if it wasn't stored.
func (r *Registry[K, V]) Destroy(id K) *V {
	st, ok := r.states[id]
	if !ok {
		return nil
	}
	delete(r.states, id)
	return st
}

// Len returns the number of stored entries.
func (r *Registry[K, V]) Len() int {
	return len(r.states)
}

// Range calls fn for every entry until fn returns false.
// Iteration order is not specified.
func (r *Registry[K, V]) Range(fn func(id K, st *V) bool) {
	for id, st := range r.states {
		if !fn(id, st) {
			return
		}
	}
}

// Clear removes all entries.
func (r *Registry[K, V]) Clear() {
	clear(r.states)
}
