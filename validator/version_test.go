package validator_test

import (
	"testing"

	"github.com/dusk-network/rusk/validator"
	"github.com/stretchr/testify/require"
)

func TestVersionCheckerAcceptsSatisfyingVersion(t *testing.T) {
	vc, err := validator.NewVersionChecker(">= 1.0.0, < 2.0.0", true)
	require.NoError(t, err)
	require.True(t, vc.Check("1.5.0"))
	require.False(t, vc.Check("2.0.0"))
}

func TestVersionCheckerRejectsMissingWhenRequired(t *testing.T) {
	vc, err := validator.NewVersionChecker(">= 1.0.0", true)
	require.NoError(t, err)
	require.False(t, vc.Check(""))
}

func TestVersionCheckerAllowsMissingWhenNotRequired(t *testing.T) {
	vc, err := validator.NewVersionChecker(">= 1.0.0", false)
	require.NoError(t, err)
	require.True(t, vc.Check(""))
}

func TestAlwaysCompatibleNeverRejects(t *testing.T) {
	vc := validator.AlwaysCompatible()
	require.True(t, vc.Check(""))
	require.True(t, vc.Check("anything"))
}
