package evaluator

// Module is the value shape every built-in library (math, core, data,
// db, net) exposes: attributes read via a bare selector, methods invoked
// via keyword selectors, both through the same Call interface an
// Instance uses.
type Module struct {
	Name       string
	Attributes map[string]Object
	Methods    map[string]func(e *Evaluator, args []Object) Object
}

func (m *Module) Type() ObjectType { return MODULE_OBJ }
func (m *Module) Inspect() string  { return "Module(" + m.Name + ")" }

func (m *Module) Call(e *Evaluator, selector string, args []Object) Object {
	if fn, ok := m.Methods[selector]; ok {
		return fn(e, args)
	}
	name := selector
	if len(name) > 0 && name[len(name)-1] == ':' {
		name = name[:len(name)-1]
	}
	if v, ok := m.Attributes[name]; ok && len(args) == 0 {
		return v
	}
	return newError("MethodError", "module %s has no method or attribute %q", m.Name, selector)
}

// NewModule builds an empty Module shell ready for attribute/method registration.
func NewModule(name string) *Module {
	return &Module{
		Name:       name,
		Attributes: map[string]Object{},
		Methods:    map[string]func(e *Evaluator, args []Object) Object{},
	}
}
