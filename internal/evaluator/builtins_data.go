package evaluator

import "gopkg.in/yaml.v3"

// newDataModule backs SPEC_FULL.md §7.3, grounded on the teacher's
// builtins_yaml.go pattern of unmarshaling into interface{} and walking
// the result into the language's own value representation.
func newDataModule() *Module {
	m := NewModule("data")

	m.Methods["encode:"] = func(e *Evaluator, args []Object) Object {
		if len(args) != 1 {
			return newError("Exception", "encode: expects 1 argument, got %d", len(args))
		}
		raw, err := yaml.Marshal(coalToYAML(args[0]))
		if err != nil {
			return newError("Exception", "encode: %s", err)
		}
		return &String{Value: string(raw)}
	}

	m.Methods["decode:"] = func(e *Evaluator, args []Object) Object {
		if len(args) != 1 {
			return newError("Exception", "decode: expects 1 argument, got %d", len(args))
		}
		s, ok := args[0].(*String)
		if !ok {
			return newError("TypeError", "decode: expects a String argument")
		}
		var v interface{}
		if err := yaml.Unmarshal([]byte(s.Value), &v); err != nil {
			return newError("Exception", "decode: %s", err)
		}
		return yamlToCoal(v)
	}

	return m
}

// coalToYAML converts a Value into a plain Go value yaml.Marshal knows
// how to render. Instances and Modules become mappings keyed by their
// attributes. Every List becomes a sequence, including a List of
// (key, value) pairs, so a mapping that went through decode: encodes back
// as a sequence of two-element sequences, not as a mapping.
func coalToYAML(v Object) interface{} {
	switch o := v.(type) {
	case *Void:
		return nil
	case *Bool:
		return o.Value
	case *Int:
		return o.Value
	case *Float:
		return o.Value
	case *String:
		return o.Value
	case *List:
		out := make([]interface{}, len(o.Elements))
		for i, el := range o.Elements {
			out[i] = coalToYAML(el)
		}
		return out
	case *Instance:
		out := map[string]interface{}{}
		for k, val := range o.Attributes {
			out[k] = coalToYAML(val)
		}
		return out
	case *Module:
		out := map[string]interface{}{}
		for k, val := range o.Attributes {
			out[k] = coalToYAML(val)
		}
		return out
	default:
		return o.Inspect()
	}
}

// yamlToCoal converts a yaml.Unmarshal result into Coal Values. Mappings
// become a List of two-element (key, value) Lists since Coal's closed
// value set (see Data Model) has no Map/Record variant.
func yamlToCoal(v interface{}) Object {
	switch val := v.(type) {
	case nil:
		return &Void{OfType: "Any"}
	case bool:
		return &Bool{Value: val}
	case int:
		return &Int{Value: int64(val)}
	case int64:
		return &Int{Value: val}
	case float64:
		return &Float{Value: val}
	case string:
		return &String{Value: val}
	case []interface{}:
		elems := make([]Object, len(val))
		for i, el := range val {
			elems[i] = yamlToCoal(el)
		}
		return &List{Elements: elems}
	case map[string]interface{}:
		pairs := make([]Object, 0, len(val))
		for k, vv := range val {
			pairs = append(pairs, &List{Elements: []Object{&String{Value: k}, yamlToCoal(vv)}})
		}
		return &List{Elements: pairs}
	default:
		return &String{Value: ""}
	}
}
