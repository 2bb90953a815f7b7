package jsonrpc

import (
	"context"
	"time"
)

type requestHandler func(ctx context.Context, req *request) (*response, error)

// requestMiddleware is a middleware between request and next requestHandler.
// the middleware needs to call the next
type requestMiddleware func(ctx context.Context, req *request, next requestHandler) (*response, error)

// WithRequestMiddleware registers a request middleware to intercept requests.
func (s *Server) WithRequestMiddleware(middleware requestMiddleware) *Server {
	handler := s.handler
	if handler == nil {
		handler = s.handleRequest
	}
	s.handler = func(ctx context.Context, req *request) (*response, error) { return middleware(ctx, req, handler) }
	return s
}

type requestReporter interface {
	ReportRequest(method string)
	ReportRequestError(method string, errCode int)
	ReportRequestDuration(method string, duration time.Duration)
}

// MetricsReporterMiddleware intercepts request and reports statistics to reporter.
func MetricsReporterMiddleware(reporter requestReporter) requestMiddleware {
	return func(ctx context.Context, req *request, next requestHandler) (*response, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		duration := time.Since(start)
		reporter.ReportRequest(req.Method)
		reporter.ReportRequestDuration(req.Method, duration)
		if resp != nil && resp.Error != nil {
			reporter.ReportRequestError(req.Method, resp.Error.Code)
		}
		return resp, err
	}
}

// rateLimiter is the minimal surface ratelimit.Limiter satisfies. It is
// defined here (rather than imported) to avoid jsonrpc depending on the
// ratelimit package, the same "small local interface" shape
// requestReporter already uses above.
type rateLimiter interface {
	Allow(remoteAddr, method string) bool
}

// RateLimiterMiddleware rejects a request with RateLimitExceeded when
// the per-(ClientInfo, method) bucket is empty (§4.3, §4.6 step c). It
// never invokes next in that case, so the handler (and any adapter
// calls it would make) never runs.
func RateLimiterMiddleware(limiter rateLimiter) requestMiddleware {
	return func(ctx context.Context, req *request, next requestHandler) (*response, error) {
		info, _ := ClientInfoFromContext(ctx)
		if !limiter.Allow(info.RemoteAddr, req.Method) {
			return newErrorResponse(idOrNull(req), Err(RateLimitExceeded, nil)), nil
		}
		return next(ctx, req)
	}
}

// versionChecker is the minimal surface validator.VersionChecker
// satisfies for the IncompatibleVersion check (§4.4).
type versionChecker interface {
	Check(versionHeader string) bool
}

// VersionMiddleware rejects requests carrying a missing/incompatible
// Rusk-Version header when strict version checking is enabled (§4.4).
func VersionMiddleware(checker versionChecker) requestMiddleware {
	return func(ctx context.Context, req *request, next requestHandler) (*response, error) {
		info, _ := ClientInfoFromContext(ctx)
		if !checker.Check(info.VersionHeader) {
			return newErrorResponse(idOrNull(req), Err(IncompatibleVersion, nil)), nil
		}
		return next(ctx, req)
	}
}

// sanitizer is the minimal surface validator.Sanitizer satisfies for
// egress error redaction (§4.4, §9 "sanitization is an egress filter,
// not embedded in handlers").
type sanitizer interface {
	SanitizeError(e *Error) *Error
}

// SanitizerMiddleware rewrites response errors at the dispatcher
// boundary, after the handler (and any method-specific error
// construction) has already run.
func SanitizerMiddleware(s sanitizer) requestMiddleware {
	return func(ctx context.Context, req *request, next requestHandler) (*response, error) {
		resp, err := next(ctx, req)
		if resp != nil && resp.Error != nil {
			resp.Error = s.SanitizeError(resp.Error)
		}
		return resp, err
	}
}
