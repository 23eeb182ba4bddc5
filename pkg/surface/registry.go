package surface

// Registry maps block ids to their live surfaces. It is owned by the
// presentation layer and shared with the core; all calls happen on the UI
// event loop.
type Registry interface {
	Register(id string, s Surface)
	Get(id string) (Surface, bool)
	Unregister(id string)
}

// MapRegistry is the in-memory Registry.
type MapRegistry struct {
	surfaces map[string]Surface
}

// NewRegistry returns an empty MapRegistry.
func NewRegistry() *MapRegistry {
	return &MapRegistry{surfaces: make(map[string]Surface)}
}

func (r *MapRegistry) Register(id string, s Surface) {
	if s == nil {
		delete(r.surfaces, id)
		return
	}
	r.surfaces[id] = s
}

func (r *MapRegistry) Get(id string) (Surface, bool) {
	s, ok := r.surfaces[id]
	return s, ok
}

func (r *MapRegistry) Unregister(id string) {
	delete(r.surfaces, id)
}

// IDs returns the registered ids in no particular order.
func (r *MapRegistry) IDs() []string {
	out := make([]string, 0, len(r.surfaces))
	for id := range r.surfaces {
		out = append(out, id)
	}
	return out
}
