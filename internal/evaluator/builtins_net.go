package evaluator

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/descriptorpb"
)

// protoRegistry holds every descriptor loaded via net.loadProto:, shared
// across all dial:/call: calls in the run the way the teacher's own
// package-level registry works (builtins_grpc.go), trimmed to the
// client-only surface SPEC_FULL.md §7.5 scopes net to.
var (
	protoRegistry      = map[string]*desc.FileDescriptor{}
	protoRegistryMutex sync.RWMutex
)

// grpcHandle wraps a *grpc.ClientConn as a Module-shaped value.
type grpcHandle struct {
	conn *grpc.ClientConn
}

func (h *grpcHandle) Type() ObjectType { return MODULE_OBJ }
func (h *grpcHandle) Inspect() string {
	if h.conn == nil {
		return "Module(net.Handle closed)"
	}
	return fmt.Sprintf("Module(net.Handle %s)", h.conn.Target())
}
func (h *grpcHandle) Call(e *Evaluator, selector string, args []Object) Object {
	return newError("MethodError", "net.Handle has no method %q; use the net module's call:method:with:/close:", selector)
}

// newNetModule backs SPEC_FULL.md §7.5's client-only dynamic gRPC surface.
func newNetModule() *Module {
	m := NewModule("net")

	m.Methods["dial:"] = func(e *Evaluator, args []Object) Object {
		if len(args) != 1 {
			return newError("Exception", "dial: expects 1 argument, got %d", len(args))
		}
		target, ok := args[0].(*String)
		if !ok {
			return newError("TypeError", "dial: expects a String target")
		}
		conn, err := grpc.NewClient(target.Value, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return newError("Exception", "dial: %s", err)
		}
		return &grpcHandle{conn: conn}
	}

	m.Methods["loadProto:"] = func(e *Evaluator, args []Object) Object {
		if len(args) != 1 {
			return newError("Exception", "loadProto: expects 1 argument, got %d", len(args))
		}
		path, ok := args[0].(*String)
		if !ok {
			return newError("TypeError", "loadProto: expects a String path")
		}
		parser := protoparse.Parser{ImportPaths: []string{"."}}
		fds, err := parser.ParseFiles(path.Value)
		if err != nil {
			return newError("Exception", "loadProto: %s", err)
		}
		protoRegistryMutex.Lock()
		for _, fd := range fds {
			protoRegistry[fd.GetName()] = fd
		}
		protoRegistryMutex.Unlock()
		return &Void{OfType: "Any"}
	}

	m.Methods["call:method:with:"] = func(e *Evaluator, args []Object) Object {
		if len(args) != 3 {
			return newError("Exception", "call:method:with: expects 3 arguments, got %d", len(args))
		}
		h, ok := args[0].(*grpcHandle)
		if !ok || h.conn == nil {
			return newError("TypeError", "call:method:with: expects an open net.Handle")
		}
		path, ok := args[1].(*String)
		if !ok {
			return newError("TypeError", "call:method:with: expects a String method path")
		}
		pairs, ok := args[2].(*List)
		if !ok {
			return newError("TypeError", "call:method:with: expects a List of (name, value) pairs")
		}

		md, err := findMethodDescriptor(path.Value)
		if err != nil {
			return newError("Exception", "call:method:with: %s", err)
		}

		reqMsg := dynamic.NewMessage(md.GetInputType())
		if err := pairsToDynamicMessage(pairs, reqMsg); err != nil {
			return newError("Exception", "call:method:with: building request: %s", err)
		}
		respMsg := dynamic.NewMessage(md.GetOutputType())

		fullPath := path.Value
		if len(fullPath) == 0 || fullPath[0] != '/' {
			fullPath = "/" + fullPath
		}
		if err := h.conn.Invoke(context.Background(), fullPath, reqMsg, respMsg); err != nil {
			return newError("Exception", "call:method:with: RPC failed: %s", err)
		}
		return dynamicMessageToPairs(respMsg)
	}

	m.Methods["close:"] = func(e *Evaluator, args []Object) Object {
		if len(args) != 1 {
			return newError("Exception", "close: expects 1 argument, got %d", len(args))
		}
		h, ok := args[0].(*grpcHandle)
		if !ok {
			return newError("TypeError", "close: expects a net.Handle argument")
		}
		if h.conn != nil {
			err := h.conn.Close()
			h.conn = nil
			if err != nil {
				return newError("Exception", "close: %s", err)
			}
		}
		return &Void{OfType: "Any"}
	}

	return m
}

func findMethodDescriptor(path string) (*desc.MethodDescriptor, error) {
	sep := -1
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			sep = i
			break
		}
	}
	if sep < 0 {
		return nil, fmt.Errorf("invalid method path %q, expected 'package.Service/Method'", path)
	}
	serviceName, methodName := path[:sep], path[sep+1:]

	protoRegistryMutex.RLock()
	defer protoRegistryMutex.RUnlock()
	for _, fd := range protoRegistry {
		if svc := fd.FindService(serviceName); svc != nil {
			if method := svc.FindMethodByName(methodName); method != nil {
				return method, nil
			}
		}
	}
	return nil, fmt.Errorf("method %q not found (did you net.loadProto: it?)", path)
}

// pairsToDynamicMessage reads a List of (name, value) two-element Lists —
// the same shape data.decode: produces for a YAML mapping — into a
// dynamic protobuf message.
func pairsToDynamicMessage(pairs *List, msg *dynamic.Message) error {
	for _, item := range pairs.Elements {
		pair, ok := item.(*List)
		if !ok || len(pair.Elements) != 2 {
			return fmt.Errorf("expected a (name, value) pair, got %s", item.Inspect())
		}
		name, ok := pair.Elements[0].(*String)
		if !ok {
			return fmt.Errorf("pair key must be a String")
		}
		fd := msg.GetMessageDescriptor().FindFieldByName(name.Value)
		if fd == nil {
			continue
		}
		v, err := toProtoValue(pair.Elements[1], fd)
		if err != nil {
			return fmt.Errorf("field %s: %s", name.Value, err)
		}
		if v != nil {
			if err := msg.TrySetField(fd, v); err != nil {
				return fmt.Errorf("field %s: %s", name.Value, err)
			}
		}
	}
	return nil
}

func toProtoValue(val Object, fd *desc.FieldDescriptor) (interface{}, error) {
	if fd.IsRepeated() {
		list, ok := val.(*List)
		if !ok {
			return nil, fmt.Errorf("expected a List for a repeated field")
		}
		out := make([]interface{}, len(list.Elements))
		for i, el := range list.Elements {
			v, err := toProtoScalar(el, fd)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
	return toProtoScalar(val, fd)
}

func toProtoScalar(val Object, fd *desc.FieldDescriptor) (interface{}, error) {
	switch fd.GetType() {
	case descriptorpb.FieldDescriptorProto_TYPE_INT32, descriptorpb.FieldDescriptorProto_TYPE_SINT32, descriptorpb.FieldDescriptorProto_TYPE_SFIXED32:
		if i, ok := val.(*Int); ok {
			return int32(i.Value), nil
		}
	case descriptorpb.FieldDescriptorProto_TYPE_INT64, descriptorpb.FieldDescriptorProto_TYPE_SINT64, descriptorpb.FieldDescriptorProto_TYPE_SFIXED64:
		if i, ok := val.(*Int); ok {
			return i.Value, nil
		}
	case descriptorpb.FieldDescriptorProto_TYPE_UINT32, descriptorpb.FieldDescriptorProto_TYPE_FIXED32:
		if i, ok := val.(*Int); ok {
			return uint32(i.Value), nil
		}
	case descriptorpb.FieldDescriptorProto_TYPE_UINT64, descriptorpb.FieldDescriptorProto_TYPE_FIXED64:
		if i, ok := val.(*Int); ok {
			return uint64(i.Value), nil
		}
	case descriptorpb.FieldDescriptorProto_TYPE_FLOAT:
		if f, ok := val.(*Float); ok {
			return float32(f.Value), nil
		}
	case descriptorpb.FieldDescriptorProto_TYPE_DOUBLE:
		if f, ok := val.(*Float); ok {
			return f.Value, nil
		}
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		if b, ok := val.(*Bool); ok {
			return b.Value, nil
		}
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		if s, ok := val.(*String); ok {
			return s.Value, nil
		}
	case descriptorpb.FieldDescriptorProto_TYPE_MESSAGE:
		nested, ok := val.(*List)
		if !ok {
			return nil, fmt.Errorf("expected a List of pairs for a nested message")
		}
		msg := dynamic.NewMessage(fd.GetMessageType())
		if err := pairsToDynamicMessage(nested, msg); err != nil {
			return nil, err
		}
		return msg, nil
	}
	return nil, fmt.Errorf("unsupported value %s for field type %v", val.Inspect(), fd.GetType())
}

// dynamicMessageToPairs is the inverse of pairsToDynamicMessage, producing
// the same (name, value) pair-List shape data.decode: returns for mappings.
func dynamicMessageToPairs(msg *dynamic.Message) *List {
	fields := msg.GetMessageDescriptor().GetFields()
	pairs := make([]Object, 0, len(fields))
	for _, fd := range fields {
		val := msg.GetField(fd)
		pairs = append(pairs, &List{Elements: []Object{
			&String{Value: fd.GetName()},
			fromProtoValue(val, fd),
		}})
	}
	return &List{Elements: pairs}
}

func fromProtoValue(val interface{}, fd *desc.FieldDescriptor) Object {
	if fd.IsRepeated() {
		slice, ok := val.([]interface{})
		if !ok {
			return &List{}
		}
		elems := make([]Object, len(slice))
		for i, v := range slice {
			elems[i] = fromProtoScalar(v)
		}
		return &List{Elements: elems}
	}
	return fromProtoScalar(val)
}

func fromProtoScalar(val interface{}) Object {
	switch v := val.(type) {
	case int32:
		return &Int{Value: int64(v)}
	case int64:
		return &Int{Value: v}
	case uint32:
		return &Int{Value: int64(v)}
	case uint64:
		return &Int{Value: int64(v)}
	case float32:
		return &Float{Value: float64(v)}
	case float64:
		return &Float{Value: v}
	case bool:
		return &Bool{Value: v}
	case string:
		return &String{Value: v}
	case *dynamic.Message:
		return dynamicMessageToPairs(v)
	}
	return &Void{OfType: "Any"}
}
