// Package jsonrpc implements the JSON-RPC 2.0 dispatch core: request
// parsing, method registry, parameter decoding, per-request timeouts,
// and ordered batch assembly (§4.5 Handler Registry, §4.6 Dispatcher).
package jsonrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sync"
	"time"

	"github.com/dusk-network/rusk/utils"
	"github.com/go-playground/validator/v10"
	"github.com/sourcegraph/conc/pool"
)

// Server is the JSON-RPC dispatcher (C6). Methods are registered once
// at startup; the registry (C5) is immutable thereafter (§4.5).
type Server struct {
	version int
	log     utils.SimpleLogger

	mu      sync.RWMutex
	methods map[string]*compiledMethod

	validate *validator.Validate
	handler  requestHandler

	strictParams   bool
	requestTimeout time.Duration
	maxBatchSize   int
	maxConcurrency int
}

// NewServer constructs a dispatcher. version is an internal tag stored
// on the Server; the dispatcher does not read it, and it is not part of
// the wire protocol (the wire "jsonrpc" field is always "2.0").
func NewServer(version int, log utils.SimpleLogger) *Server {
	return &Server{
		version:        version,
		log:            log,
		methods:        make(map[string]*compiledMethod),
		maxConcurrency: 16,
	}
}

// WithValidator attaches a go-playground/validator instance used to
// enforce struct-tag constraints on decoded parameter structs (§4.5
// "constraints").
func (s *Server) WithValidator(v *validator.Validate) *Server {
	s.validate = v
	return s
}

// WithStrictParams rejects named params containing fields not declared
// on the method's schema (§4.4 strict_parameter_validation).
func (s *Server) WithStrictParams(strict bool) *Server {
	s.strictParams = strict
	return s
}

// WithRequestTimeout bounds each handler invocation; on expiry the
// handler is dropped and RequestTimeout is returned (§4.6 step e, §5).
func (s *Server) WithRequestTimeout(d time.Duration) *Server {
	s.requestTimeout = d
	return s
}

// WithMaxBatchSize rejects batches larger than n whole (§4.4).
func (s *Server) WithMaxBatchSize(n int) *Server {
	s.maxBatchSize = n
	return s
}

// WithMaxConcurrency bounds how many batch entries run concurrently
// (§4.6 "entries may be dispatched in parallel").
func (s *Server) WithMaxConcurrency(n int) *Server {
	if n > 0 {
		s.maxConcurrency = n
	}
	return s
}

// RegisterMethod adds m to the registry. Call only during startup; the
// registry is not safe to mutate concurrently with Handle (§4.5
// "immutable after startup").
func (s *Server) RegisterMethod(m Method) error {
	compiled, err := compileMethod(m)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.methods[m.Name] = compiled
	return nil
}

// HandleReader reads the full body (bounded by the caller, e.g. via
// http.MaxBytesReader) and dispatches it.
func (s *Server) HandleReader(ctx context.Context, r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return s.Handle(ctx, data)
}

// Handle parses body as a single JSON-RPC request or a batch, dispatches
// each entry, and returns the serialized response (or nil if the
// request was purely notifications, §3). The returned error is non-nil
// only for a transport-level failure in the caller's favor (never for
// JSON-RPC-level errors, which are encoded into the returned bytes).
func (s *Server) Handle(ctx context.Context, body []byte) ([]byte, error) {
	parsed, err := parseBody(body)
	if err != nil {
		return json.Marshal(newErrorResponse(nullIDPtr(), Err(ParseError, err.Error())))
	}

	if parsed.batch {
		if len(parsed.entries) == 0 {
			return json.Marshal(newErrorResponse(nullIDPtr(), Err(InvalidRequest, "empty batch")))
		}
		if s.maxBatchSize > 0 && len(parsed.entries) > s.maxBatchSize {
			return json.Marshal(newErrorResponse(nullIDPtr(), Err(InvalidRequest, "batch exceeds max_batch_size")))
		}
		return s.handleBatch(ctx, parsed.entries)
	}

	resp := s.dispatchOne(ctx, parsed.single)
	if resp == nil {
		return nil, nil
	}
	return json.Marshal(resp)
}

func (s *Server) handleBatch(ctx context.Context, entries []request) ([]byte, error) {
	results := make([]*response, len(entries))
	p := pool.New().WithMaxGoroutines(s.maxConcurrency)
	for i := range entries {
		i := i
		p.Go(func() {
			results[i] = s.dispatchOne(ctx, &entries[i])
		})
	}
	p.Wait()

	out := make([]*response, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		// All entries were notifications (§3): the batch yields no body.
		return nil, nil
	}
	return json.Marshal(out)
}

// dispatchOne runs the full per-entry pipeline (§4.6 steps a-f) and
// returns nil for notifications.
func (s *Server) dispatchOne(ctx context.Context, req *request) *response {
	handler := s.handler
	if handler == nil {
		handler = s.handleRequest
	}
	resp, err := handler(ctx, req)
	if err != nil {
		s.log.Warnw("request handler returned transport error", "method", req.Method, "err", err)
		if resp == nil {
			resp = newErrorResponse(idOrNull(req), Err(InternalError, err.Error()))
		}
	}
	if req.isNotification() {
		return nil
	}
	return resp
}

func idOrNull(req *request) *json.RawMessage {
	if req.ID != nil {
		return req.ID
	}
	return nullIDPtr()
}

// handleRequest is the innermost request handler: structural
// validation, method resolution, parameter decode/validate, timeout-
// bounded invocation (§4.6 steps a,b,d,e,f — rate limiting, step c, is
// applied by RateLimiterMiddleware further out in the chain).
func (s *Server) handleRequest(ctx context.Context, req *request) (*response, error) {
	id := idOrNull(req)

	if req.Version != Version || req.Method == "" {
		return newErrorResponse(id, Err(InvalidRequest, "missing or invalid jsonrpc/method field")), nil
	}

	s.mu.RLock()
	method, ok := s.methods[req.Method]
	s.mu.RUnlock()
	if !ok {
		return newErrorResponse(id, Err(MethodNotFound, req.Method)), nil
	}

	args, decErr := decodeParams(req.Params, method, s.strictParams)
	if decErr != nil {
		return newErrorResponse(id, decErr), nil
	}

	if s.validate != nil {
		for _, a := range args {
			if validateErr := validateArg(s.validate, a); validateErr != nil {
				return newErrorResponse(id, InvalidParams(validateErr.Error())), nil
			}
		}
	}

	callCtx := ctx
	var cancel context.CancelFunc
	if s.requestTimeout > 0 {
		callCtx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}

	result, rpcErr := s.invokeWithTimeout(callCtx, method, args)
	if rpcErr != nil {
		return newErrorResponse(id, rpcErr), nil
	}
	return newResultResponse(id, result), nil
}

// invokeWithTimeout runs the handler on its own goroutine so a caller
// timeout/cancellation returns promptly even if the handler itself
// ignores ctx; well-behaved adapters are expected to select on ctx.Done
// internally (§5), but the dispatcher does not trust that.
func (s *Server) invokeWithTimeout(ctx context.Context, method *compiledMethod, args []reflect.Value) (any, *Error) {
	type invokeResult struct {
		result any
		rpcErr *Error
	}
	done := make(chan invokeResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- invokeResult{rpcErr: Err(InternalError, fmt.Sprintf("handler panic: %v", r))}
			}
		}()
		result, rpcErr := method.invoke(ctx, args)
		done <- invokeResult{result: result, rpcErr: rpcErr}
	}()

	select {
	case res := <-done:
		return res.result, res.rpcErr
	case <-ctx.Done():
		return nil, Err(RequestTimeout, nil)
	}
}

// validateArg runs struct-tag validation on a decoded argument when it
// is a struct or pointer-to-struct; scalar/slice/map arguments (the
// common case for single-value params) are not validator targets.
func validateArg(v *validator.Validate, val reflect.Value) error {
	target := val
	if target.Kind() == reflect.Ptr {
		if target.IsNil() {
			return nil
		}
		target = target.Elem()
	}
	if target.Kind() != reflect.Struct {
		return nil
	}
	return v.Struct(target.Interface())
}
