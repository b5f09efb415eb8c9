// Package endpoints resolves the per-environment hosts the adapters reference.
package endpoints

import "strings"

// Environment is the deployment environment (NODE_ENV in the pipeline).
type Environment string

const (
	Production  Environment = "production"
	Staging     Environment = "staging"
	Development Environment = "development"
)

// ParseEnvironment maps a free-form value onto a known environment. Unknown
// values are treated as development.
func ParseEnvironment(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

// Endpoints groups the hosts one environment uses.
type Endpoints struct {
	// ClaimReferenceHost prefixes the default reference of a legacy claim.
	ClaimReferenceHost string
	// LeadConduitHost prefixes the default reference of consent and retain.
	LeadConduitHost string
	// AccountURL is the TrustedForm account lookup used by the configuration UI.
	AccountURL string
}

// For returns the endpoints of env.
func For(env Environment) Endpoints {
	switch env {
	case Production:
		return Endpoints{
			ClaimReferenceHost: "https://next.leadconduit.com",
			LeadConduitHost:    "https://app.leadconduit.com",
			AccountURL:         "https://app.trustedform.com/account",
		}
	case Staging:
		return Endpoints{
			ClaimReferenceHost: "https://next.leadconduit-staging.com",
			LeadConduitHost:    "https://app.leadconduit-staging.com",
			AccountURL:         "https://app.staging.trustedform.com/account",
		}
	default:
		return Endpoints{
			ClaimReferenceHost: "https://next.leadconduit-staging.com",
			LeadConduitHost:    "https://app.leadconduit-development.com",
			AccountURL:         "https://app.staging.trustedform.com/account",
		}
	}
}

// EventURL builds the LeadConduit event link used as a default reference.
func EventURL(host, leadID string) string {
	return host + "/events/" + leadID
}
