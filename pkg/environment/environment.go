// Package environment names the deployment stage the process runs in.
//
// The stage decides how strictly configuration is validated: a token service
// started in Production refuses secrets that are only acceptable on a
// developer machine.
package environment

import "strings"

// Environment represents application environment.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Parse maps a configuration value to an Environment.
// Short aliases ("dev", "stage", "prod") are accepted; matching ignores case
// and surrounding spaces. Unknown or empty values fall back to Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool { return e == Production }

// IsDevelopment reports whether e is the development environment.
func (e Environment) IsDevelopment() bool { return e == Development }

// IsStaging reports whether e is the staging environment.
func (e Environment) IsStaging() bool { return e == Staging }

func (e Environment) String() string { return string(e) }
