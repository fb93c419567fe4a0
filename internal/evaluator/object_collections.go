package evaluator

import "strings"

// List is Coal's mutable ordered sequence value.
type List struct{ Elements []Object }

func (l *List) Type() ObjectType { return LIST_OBJ }

func (l *List) Inspect() string {
	parts := make([]string, len(l.Elements))
	for i, el := range l.Elements {
		parts[i] = el.Inspect()
	}
	return "List(" + strings.Join(parts, ", ") + ")"
}

func (l *List) DisplayString() string { return l.Inspect() }

func (l *List) Length() int64 { return int64(len(l.Elements)) }

// Iter implements the index-read / slice form of the iterable protocol.
// Out-of-range reads return Void rather than failing, per the spec.
func (l *List) Iter(start int64, end *int64) Object {
	n := int64(len(l.Elements))
	if end == nil {
		if start < 0 || start >= n {
			return &Void{OfType: "Any"}
		}
		return l.Elements[start]
	}
	e := *end
	if start < 0 || e < start || e > n {
		return &Void{OfType: "Any"}
	}
	slice := make([]Object, e-start)
	copy(slice, l.Elements[start:e])
	return &List{Elements: slice}
}

// Assign writes in place at index, appends at len+1, and fails with
// IndexError anywhere beyond that — this exact boundary is load-bearing,
// not an off-by-one to "fix".
func (l *List) Assign(index int64, value Object) Object {
	n := int64(len(l.Elements))
	switch {
	case index == n+1:
		l.Elements = append(l.Elements, value)
		return &Void{OfType: "Any"}
	case index >= 0 && index <= n-1:
		l.Elements[index] = value
		return &Void{OfType: "Any"}
	default:
		return newError("IndexError", "index %d out of range for List of length %d", index, n)
	}
}

func (l *List) Call(e *Evaluator, selector string, args []Object) Object {
	switch selector {
	case "length:":
		return &Int{Value: l.Length()}
	case "iterate:":
		out := make([]Object, len(l.Elements))
		for i := range l.Elements {
			out[i] = &Int{Value: int64(i)}
		}
		return &List{Elements: out}
	case "append:":
		if len(args) != 1 {
			return newError("Exception", "append: expects 1 argument, got %d", len(args))
		}
		l.Elements = append(l.Elements, args[0])
		return &Void{OfType: "Any"}
	case "update:":
		if len(args) != 1 {
			return newError("Exception", "update: expects 1 argument, got %d", len(args))
		}
		other, ok := args[0].(Iterable)
		if !ok {
			return newError("TypeError", "update: expects an iterable argument")
		}
		n := other.Length()
		for i := int64(0); i < n; i++ {
			l.Elements = append(l.Elements, other.Iter(i, nil))
		}
		return &Void{OfType: "Any"}
	}
	return newError("MethodError", "List has no method %q", selector)
}
