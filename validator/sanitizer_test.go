package validator_test

import (
	"testing"

	"github.com/dusk-network/rusk/jsonrpc"
	"github.com/dusk-network/rusk/validator"
	"github.com/stretchr/testify/require"
)

func TestSanitizeErrorRedactsSensitiveTerm(t *testing.T) {
	s := validator.NewSanitizer(true, []string{"password"}, true, "[REDACTED]", 0, true)
	e := jsonrpc.Err(jsonrpc.InternalError, nil)
	e.Message = "failed to load password from disk"
	out := s.SanitizeError(e)
	require.Contains(t, out.Message, "[REDACTED]")
	require.NotContains(t, out.Message, "password")
}

func TestSanitizeErrorCollapsesPaths(t *testing.T) {
	s := validator.NewSanitizer(true, nil, false, "[REDACTED]", 0, true)
	e := jsonrpc.Err(jsonrpc.InternalError, nil)
	e.Message = "open failed: /var/lib/rusk/secret_keys/node.key: permission denied"
	out := s.SanitizeError(e)
	require.Contains(t, out.Message, ".../node.key")
	require.NotContains(t, out.Message, "/var/lib")
}

func TestSanitizeErrorTruncatesLongMessage(t *testing.T) {
	s := validator.NewSanitizer(true, nil, false, "[REDACTED]", 10, true)
	e := jsonrpc.Err(jsonrpc.InternalError, nil)
	e.Message = "this message is definitely longer than ten characters"
	out := s.SanitizeError(e)
	require.LessOrEqual(t, len(out.Message), 10)
	require.True(t, len(out.Message) == 10)
}

func TestSanitizeErrorNoopWhenDisabled(t *testing.T) {
	s := validator.NewSanitizer(false, []string{"password"}, true, "[REDACTED]", 5, true)
	e := jsonrpc.Err(jsonrpc.InternalError, nil)
	e.Message = "password leaked in full"
	out := s.SanitizeError(e)
	require.Equal(t, "password leaked in full", out.Message)
}
