package config_test

import (
	"testing"
	"time"

	"github.com/dusk-network/rusk/config"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestValidateRejectsPublicBindWithoutRateLimit(t *testing.T) {
	c := config.Default()
	c.HTTP.BindAddress = "0.0.0.0:8545"
	c.RateLimit.Enabled = false
	err := c.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "rate_limit.enabled")
}

func TestValidateRejectsPublicBindWithSanitizationDisabled(t *testing.T) {
	c := config.Default()
	c.HTTP.BindAddress = "203.0.113.10:8545"
	c.Sanitization.Enabled = false
	err := c.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "sanitization.enabled")
}

func TestValidateAllowsLoopbackBindWithoutRateLimit(t *testing.T) {
	c := config.Default()
	c.RateLimit.Enabled = false
	c.Sanitization.Enabled = false
	require.NoError(t, c.Validate())
}

func TestValidateRejectsWildcardOriginWithCredentials(t *testing.T) {
	c := config.Default()
	c.HTTP.CORS.AllowCredentials = true
	err := c.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "allowed_origins")
}

func TestValidateRejectsCertWithoutKey(t *testing.T) {
	c := config.Default()
	c.HTTP.CertFile = "/etc/rusk/tls.crt"
	err := c.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "cert set without key")
}

func TestValidateRejectsMaxBodySizeBelowMinimum(t *testing.T) {
	c := config.Default()
	c.HTTP.MaxBodySize = 16
	err := c.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "max_body_size")
}

func TestValidateRejectsMaxBodySizeAboveMaximum(t *testing.T) {
	c := config.Default()
	c.HTTP.MaxBodySize = 1 << 40
	err := c.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "max_body_size")
}

func TestValidateRejectsZeroWindowRateLimit(t *testing.T) {
	c := config.Default()
	c.RateLimit.DefaultLimit.Window = 0
	err := c.Validate()
	require.Error(t, err)
}

func TestHTTPConfigTLSEnabledRequiresBoth(t *testing.T) {
	h := config.HTTPConfig{}
	require.False(t, h.TLSEnabled())
	h.CertFile = "a"
	require.False(t, h.TLSEnabled())
	h.KeyFile = "b"
	require.True(t, h.TLSEnabled())
}

func TestValidateRejectsRequestTimeoutAboveMaximum(t *testing.T) {
	c := config.Default()
	c.HTTP.RequestTimeout = time.Hour
	err := c.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "request_timeout")
}
