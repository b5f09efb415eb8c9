package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trustedform/internal/trustedform/endpoints"
	"trustedform/internal/trustedform/providers"
)

func TestRegistry(t *testing.T) {
	r := Registry(endpoints.For(endpoints.Staging), "token")

	var ids []string
	for _, a := range r.All() {
		ids = append(ids, a.ID())
	}
	assert.Equal(t, []string{
		"claim",
		"consent",
		"consent_plus_data",
		"data_service",
		"decision_service_ping",
		"decision_service_post",
		"insights",
		"trustedform",
	}, ids)

	a, ok := r.Get(providers.ModuleID("data_service"))
	assert.True(t, ok)
	assert.Equal(t, "data_service", a.ID())
}
