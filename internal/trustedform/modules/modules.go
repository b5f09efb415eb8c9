// Package modules registers every TrustedForm outbound adapter.
package modules

import (
	"trustedform/internal/trustedform/endpoints"
	"trustedform/internal/trustedform/providers"
	"trustedform/internal/trustedform/providers/claim"
	"trustedform/internal/trustedform/providers/consent"
	"trustedform/internal/trustedform/providers/dataservice"
	"trustedform/internal/trustedform/providers/insights"
	"trustedform/internal/trustedform/providers/unified"
)

// Registry returns a registry holding all adapters. token is the data service
// bearer token used by the v4 insights and data service modules.
func Registry(ep endpoints.Endpoints, token string) *providers.Registry {
	return providers.NewRegistry().MustRegister(
		claim.New(ep),
		consent.New(ep),
		consent.NewPlusData(ep),
		dataservice.New(dataservice.ID, token),
		dataservice.New(dataservice.DecisionServicePing, token),
		dataservice.New(dataservice.DecisionServicePost, token),
		insights.New(token),
		unified.New(ep),
	)
}
