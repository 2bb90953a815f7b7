package jsonrpc

import (
	"context"
	"fmt"
	"reflect"
)

// Capability names the adapter surface a handler needs (§4.5). The
// registry records it for introspection; the dispatcher itself does not
// enforce it (adapters are injected into the Handler at construction,
// not per-call), but tooling (docs, access audits) can read it off the
// registered Method.
type Capability string

const (
	CapabilityDatabase Capability = "db"
	CapabilityNetwork  Capability = "net"
	CapabilityVM       Capability = "vm"
	CapabilityArchive  Capability = "archive"
)

// ExecutionClass distinguishes pure reads from state-touching-adjacent
// simulation calls (§4.5).
type ExecutionClass int

const (
	ExecutionReadOnly ExecutionClass = iota
	ExecutionSimulate
)

// Parameter describes one named/positional handler argument (§4.5:
// "parameter schema (names, types, required/optional, constraints)").
// Constraints beyond required/optional (ranges, hex shape, etc.) are
// enforced by the handler body itself via go-playground/validator tags
// on the decoded argument struct, not by this descriptor.
type Parameter struct {
	Name     string
	Optional bool
}

// Method is a single registry entry: a JSON-RPC method name bound to a
// Go function, its parameter schema, the adapter capabilities it
// touches, and its execution class.
//
// Handler must be a func with signature:
//
//	func([ctx context.Context,] p1, p2, ... pN) (Result, *jsonrpc.Error)
//
// The leading context.Context parameter is optional and, when present,
// carries the request's ClientInfo/Conn. len(Params) must equal the
// number of non-context parameters.
type Method struct {
	Name         string
	Params       []Parameter
	Handler      any
	Capabilities []Capability
	Execution    ExecutionClass
}

var ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()

type compiledMethod struct {
	method   Method
	fn       reflect.Value
	wantsCtx bool
	argTypes []reflect.Type // non-context argument types, in order
}

func compileMethod(m Method) (*compiledMethod, error) {
	if m.Name == "" {
		return nil, fmt.Errorf("method name must not be empty")
	}
	fn := reflect.ValueOf(m.Handler)
	if fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("method %s: Handler must be a func", m.Name)
	}
	ft := fn.Type()
	if ft.NumOut() != 2 {
		return nil, fmt.Errorf("method %s: Handler must return (Result, *jsonrpc.Error)", m.Name)
	}
	if ft.Out(1) != reflect.TypeOf((*Error)(nil)) {
		return nil, fmt.Errorf("method %s: Handler's second return value must be *jsonrpc.Error", m.Name)
	}

	wantsCtx := ft.NumIn() > 0 && ft.In(0) == ctxType
	offset := 0
	if wantsCtx {
		offset = 1
	}

	argTypes := make([]reflect.Type, ft.NumIn()-offset)
	for i := range argTypes {
		argTypes[i] = ft.In(i + offset)
	}
	if len(argTypes) != len(m.Params) {
		return nil, fmt.Errorf("method %s: Handler takes %d params but %d are declared",
			m.Name, len(argTypes), len(m.Params))
	}

	return &compiledMethod{method: m, fn: fn, wantsCtx: wantsCtx, argTypes: argTypes}, nil
}

// invoke calls the compiled handler with ctx (if wanted) and the
// already-decoded argument values, and splits the two return values
// into a plain result and a *jsonrpc.Error.
func (c *compiledMethod) invoke(ctx context.Context, args []reflect.Value) (any, *Error) {
	in := args
	if c.wantsCtx {
		in = make([]reflect.Value, 0, len(args)+1)
		in = append(in, reflect.ValueOf(ctx))
		in = append(in, args...)
	}
	out := c.fn.Call(in)
	var rpcErr *Error
	if e, ok := out[1].Interface().(*Error); ok {
		rpcErr = e
	}
	return out[0].Interface(), rpcErr
}
