// Package validator implements two of the checks of §4.4: a
// VersionChecker for the Rusk-Version compatibility gate and a
// Sanitizer for egress error redaction. The body-size and batch-size
// caps are not in this package; the transport and jsonrpc packages
// apply them.
package validator

import "github.com/Masterminds/semver/v3"

// VersionChecker enforces a minimum-compatible client version (§4.4).
// Satisfies jsonrpc's local versionChecker interface.
type VersionChecker struct {
	constraint *semver.Constraints
	required   bool
}

// NewVersionChecker parses constraintExpr (e.g. ">= 1.2.0, < 2.0.0") as
// a semver constraint. required controls whether a missing version
// header fails the check; when false, an absent header is treated as
// compatible (useful while rolling out version enforcement).
func NewVersionChecker(constraintExpr string, required bool) (*VersionChecker, error) {
	c, err := semver.NewConstraint(constraintExpr)
	if err != nil {
		return nil, err
	}
	return &VersionChecker{constraint: c, required: required}, nil
}

// Check reports whether versionHeader satisfies the configured
// constraint.
func (v *VersionChecker) Check(versionHeader string) bool {
	if v.constraint == nil {
		return true
	}
	if versionHeader == "" {
		return !v.required
	}
	ver, err := semver.NewVersion(versionHeader)
	if err != nil {
		return false
	}
	return v.constraint.Check(ver)
}

// AlwaysCompatible is a VersionChecker that never rejects a request,
// for deployments with strict_version_checking disabled (§6.3).
func AlwaysCompatible() *VersionChecker {
	return &VersionChecker{}
}
