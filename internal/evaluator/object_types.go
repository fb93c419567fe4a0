package evaluator

import "github.com/coal-lang/coal/internal/ast"

// Type is a class-like constructor registry: one suite per initializer
// selector, plus the set of attribute names its constructors may assign
// (populated from each init's SelfAssign targets, so attribute getters
// and setters work via the attr-name+":" convention immediately after
// construction — see DESIGN.md decision 6 on why this departs from the
// original prototype's unfinished attribute wiring).
type Type struct {
	Name       string
	Extends    string
	Inits      map[string]*ast.InitDef
	Attributes map[string]bool
}

func (t *Type) Type() ObjectType { return TYPE_OBJ }
func (t *Type) Inspect() string  { return "Type(" + t.Name + ")" }

// Instance is one constructed value of a user-defined Type. Each TypeCall
// allocates its own Instance with its own attribute map: this is the
// spec-intended, per-call semantics (§3's Instance contract and §8 E2E
// scenario 6), not the original's aliased-shared-Type-object behavior.
type Instance struct {
	TypeName   string
	Attributes map[string]Object
	typeDef    *Type
}

// Type returns the owning Type's name, not a generic tag — an Instance's
// object_type string IS its type name (spec's Value Model and E2E
// scenario 6: `let p: Point = [Point x: 3 y: 4]` requires
// `p.object_type == "Point"`).
func (i *Instance) Type() ObjectType { return ObjectType(i.TypeName) }
func (i *Instance) Inspect() string  { return "Instance(" + i.TypeName + ")" }

// Call implements §4.3's receiver dispatch for instances. User types carry
// no method table (only initializers), so every selector goes straight to
// the attribute-name-plus-colon getter/setter fallback.
func (i *Instance) Call(e *Evaluator, selector string, args []Object) Object {
	name := selector
	if len(name) > 0 && name[len(name)-1] == ':' {
		name = name[:len(name)-1]
	}
	if !i.typeDef.Attributes[name] {
		return newError("MethodError", "%s has no method or attribute %q", i.TypeName, selector)
	}
	switch len(args) {
	case 0:
		v, ok := i.Attributes[name]
		if !ok {
			return &Void{OfType: "Any"}
		}
		return v
	case 1:
		i.Attributes[name] = args[0]
		return &Void{OfType: "Any"}
	default:
		return newError("Exception", "attribute selector %q takes 0 or 1 arguments, got %d", selector, len(args))
	}
}
