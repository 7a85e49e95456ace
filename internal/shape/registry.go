package shape

import "fmt"

// Registry maps tool kinds to the factories that build them.
type Registry struct {
	factories map[Kind]Factory
	order     []Kind
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[Kind]Factory)}
}

// DefaultRegistry knows every built-in shape.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(KindLine, NewLine)
	r.MustRegister(KindRect, NewRect)
	r.MustRegister(KindEllipse, NewEllipse)
	r.MustRegister(KindPen, NewPen)
	return r
}

// Register adds a factory for kind. The None kind and duplicates are rejected.
func (r *Registry) Register(kind Kind, f Factory) error {
	if kind == None || f == nil {
		return fmt.Errorf("register %q: %w", kind, ErrUnknownKind)
	}
	if _, ok := r.factories[kind]; ok {
		return fmt.Errorf("register %q: %w", kind, ErrDuplicateKind)
	}
	r.factories[kind] = f
	r.order = append(r.order, kind)
	return nil
}

func (r *Registry) MustRegister(kind Kind, f Factory) {
	if err := r.Register(kind, f); err != nil {
		panic(err)
	}
}

func (r *Registry) Has(kind Kind) bool {
	_, ok := r.factories[kind]
	return ok
}

// Kinds returns the registered kinds in registration order.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, len(r.order))
	copy(kinds, r.order)
	return kinds
}

// New builds a shape of the given kind.
func (r *Registry) New(kind Kind, opts Options) (Tool, error) {
	f, ok := r.factories[kind]
	if !ok {
		return nil, fmt.Errorf("new %q: %w", kind, ErrUnknownKind)
	}
	t, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("new %q: %w", kind, err)
	}
	return t, nil
}
