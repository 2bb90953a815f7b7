package jsonrpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// decodeParams turns a request's raw params (absent, a JSON array, or a
// JSON object) into argument values for a compiled method, per §4.5:
// positional or named decoding, missing required params fail with
// InvalidParams, type mismatches likewise, and (when strict is true) an
// extra named field is also rejected.
func decodeParams(raw json.RawMessage, m *compiledMethod, strict bool) ([]reflect.Value, *Error) {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0 || string(trimmed) == "null":
		return decodeMissing(m)
	case trimmed[0] == '[':
		return decodePositional(trimmed, m, strict)
	case trimmed[0] == '{':
		return decodeNamed(trimmed, m, strict)
	default:
		return nil, InvalidParams("params must be an array, object, or absent")
	}
}

func decodeMissing(m *compiledMethod) ([]reflect.Value, *Error) {
	args := make([]reflect.Value, len(m.argTypes))
	for i, p := range m.method.Params {
		if !p.Optional {
			return nil, InvalidParams(fmt.Sprintf("missing required parameter %q", p.Name))
		}
		args[i] = reflect.Zero(m.argTypes[i])
	}
	return args, nil
}

func decodePositional(raw json.RawMessage, m *compiledMethod, strict bool) ([]reflect.Value, *Error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, InvalidParams("invalid positional params: " + err.Error())
	}
	if strict && len(elems) > len(m.method.Params) {
		return nil, InvalidParams("too many positional parameters")
	}
	args := make([]reflect.Value, len(m.argTypes))
	for i, p := range m.method.Params {
		if i >= len(elems) || string(bytes.TrimSpace(elems[i])) == "null" {
			if !p.Optional {
				return nil, InvalidParams(fmt.Sprintf("missing required parameter %q", p.Name))
			}
			args[i] = reflect.Zero(m.argTypes[i])
			continue
		}
		v, derr := decodeOne(elems[i], m.argTypes[i], p.Name)
		if derr != nil {
			return nil, derr
		}
		args[i] = v
	}
	return args, nil
}

func decodeNamed(raw json.RawMessage, m *compiledMethod, strict bool) ([]reflect.Value, *Error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, InvalidParams("invalid named params: " + err.Error())
	}
	consumed := make(map[string]bool, len(m.method.Params))
	args := make([]reflect.Value, len(m.argTypes))
	for i, p := range m.method.Params {
		elem, ok := obj[p.Name]
		consumed[p.Name] = true
		if !ok || string(bytes.TrimSpace(elem)) == "null" {
			if !p.Optional {
				return nil, InvalidParams(fmt.Sprintf("missing required parameter %q", p.Name))
			}
			args[i] = reflect.Zero(m.argTypes[i])
			continue
		}
		v, derr := decodeOne(elem, m.argTypes[i], p.Name)
		if derr != nil {
			return nil, derr
		}
		args[i] = v
	}
	if strict {
		for key := range obj {
			if !consumed[key] {
				return nil, InvalidParams(fmt.Sprintf("unknown parameter %q", key))
			}
		}
	}
	return args, nil
}

func decodeOne(raw json.RawMessage, t reflect.Type, name string) (reflect.Value, *Error) {
	target := reflect.New(t)
	if err := json.Unmarshal(raw, target.Interface()); err != nil {
		return reflect.Value{}, InvalidParams(fmt.Sprintf("parameter %q: %s", name, err.Error()))
	}
	return target.Elem(), nil
}
