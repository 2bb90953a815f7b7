package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/dusk-network/rusk/jsonrpc"
)

// pathPattern matches Unix and Windows file paths (§4.4 "collapsing
// file paths (Unix and Windows) matching a path-shape regex").
var pathPattern = regexp.MustCompile(`(?:[A-Za-z]:\\(?:[^\\/:*?"<>|\r\n]+\\)*[^\\/:*?"<>|\r\n]+|/(?:[^/\x00]+/)*[^/\x00]+\.[A-Za-z0-9]+)`)

// Sanitizer rewrites error.message and error.data at the dispatcher's
// egress boundary (§4.4, §9). It satisfies jsonrpc's local sanitizer
// interface.
type Sanitizer struct {
	enabled          bool
	terms            map[string]struct{}
	wholeWord        bool
	redactionMarker  string
	maxMessageLength int
	sanitizePaths    bool
	filter           *bloom.BloomFilter
}

// NewSanitizer builds a Sanitizer. terms is matched case-insensitively;
// wholeWord restricts matches to whole-word boundaries rather than
// substrings, per the sensitive_terms configuration knob in §6.3.
// sanitizePaths additionally gates the collapsePaths step, mirroring
// the sanitize_paths key in §6.3; when enabled is false no step runs,
// path collapsing included.
func NewSanitizer(enabled bool, terms []string, wholeWord bool, redactionMarker string, maxMessageLength int, sanitizePaths bool) *Sanitizer {
	set := make(map[string]struct{}, len(terms))
	filter := bloom.NewWithEstimates(uint(len(terms)+1), 0.01)
	for _, t := range terms {
		lower := strings.ToLower(t)
		set[lower] = struct{}{}
		filter.AddString(lower)
	}
	if redactionMarker == "" {
		redactionMarker = "[REDACTED]"
	}
	return &Sanitizer{
		enabled:          enabled,
		terms:            set,
		wholeWord:        wholeWord,
		redactionMarker:  redactionMarker,
		maxMessageLength: maxMessageLength,
		sanitizePaths:    sanitizePaths,
		filter:           filter,
	}
}

// SanitizeError rewrites e's message and data fields in place, per the
// three-step pipeline of §4.4: term redaction, path collapsing,
// truncation. A no-op Sanitizer (enabled=false) returns e unchanged.
func (s *Sanitizer) SanitizeError(e *jsonrpc.Error) *jsonrpc.Error {
	if e == nil || !s.enabled {
		return e
	}
	out := e.CloneWithData(e.Data)
	out.Message = s.scrub(out.Message)
	if data, ok := out.Data.(string); ok {
		out.Data = s.scrub(data)
	}
	return out
}

func (s *Sanitizer) scrub(msg string) string {
	msg = s.redactTerms(msg)
	if s.sanitizePaths {
		msg = s.collapsePaths(msg)
	}
	return s.truncate(msg)
}

// redactTerms replaces any configured sensitive term. The bloom filter
// is consulted per candidate word first: most words in an ordinary
// error message will definitely-not be in the term set, so the filter
// lets redactTerms skip the exact-match lookup for the common case
// instead of hashing into the map every time.
func (s *Sanitizer) redactTerms(msg string) string {
	if len(s.terms) == 0 {
		return msg
	}
	if s.wholeWord {
		fields := strings.Fields(msg)
		for i, f := range fields {
			trimmed := strings.ToLower(strings.Trim(f, ".,;:!?()[]{}\"'"))
			if !s.filter.TestString(trimmed) {
				continue
			}
			if _, ok := s.terms[trimmed]; ok {
				fields[i] = s.redactionMarker
			}
		}
		return strings.Join(fields, " ")
	}

	lower := strings.ToLower(msg)
	for term := range s.terms {
		if !strings.Contains(lower, term) {
			continue
		}
		msg = replaceCaseInsensitive(msg, term, s.redactionMarker)
		lower = strings.ToLower(msg)
	}
	return msg
}

func replaceCaseInsensitive(s, term, replacement string) string {
	lower := strings.ToLower(s)
	lowerTerm := strings.ToLower(term)
	var b strings.Builder
	for {
		idx := strings.Index(lower, lowerTerm)
		if idx < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:idx])
		b.WriteString(replacement)
		s = s[idx+len(lowerTerm):]
		lower = lower[idx+len(lowerTerm):]
	}
	return b.String()
}

// collapsePaths replaces a matched file path with its basename,
// further redacting the basename if it itself contains a sensitive
// term (§4.4 "redacting the tail if it contains a sensitive term").
func (s *Sanitizer) collapsePaths(msg string) string {
	return pathPattern.ReplaceAllStringFunc(msg, func(p string) string {
		base := p
		if idx := strings.LastIndexAny(p, `/\`); idx >= 0 {
			base = p[idx+1:]
		}
		lowerBase := strings.ToLower(base)
		for term := range s.terms {
			if strings.Contains(lowerBase, term) {
				return fmt.Sprintf(".../%s", s.redactionMarker)
			}
		}
		return fmt.Sprintf(".../%s", base)
	})
}

func (s *Sanitizer) truncate(msg string) string {
	if s.maxMessageLength <= 0 || len(msg) <= s.maxMessageLength {
		return msg
	}
	if s.maxMessageLength <= 3 {
		return msg[:s.maxMessageLength]
	}
	return msg[:s.maxMessageLength-3] + "..."
}
