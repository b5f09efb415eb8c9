package flow

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"trustedform/internal/trustedform/providers"
	"trustedform/internal/trustedform/providers/dataservice"
	"trustedform/internal/trustedform/providers/unified"
	dErrors "trustedform/pkg/domain-errors"
	tfstrings "trustedform/pkg/platform/strings"
)

// DefaultModuleID is used when the selection names no integration.
var DefaultModuleID = providers.ModuleID(dataservice.ID)

// Builder validates selections against the registered adapters.
type Builder struct {
	registry *providers.Registry
	newID    func() uuid.UUID
}

func NewBuilder(registry *providers.Registry) *Builder {
	return &Builder{registry: registry, newID: uuid.New}
}

// Build turns sel into a one-step flow.
func (b *Builder) Build(sel Selection, now time.Time) (*Flow, error) {
	sel.Entity.Name = strings.TrimSpace(sel.Entity.Name)
	sel.Entity.ID = strings.TrimSpace(sel.Entity.ID)
	if sel.Entity.Name == "" || sel.Entity.ID == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "entity name and id are required")
	}

	moduleID := strings.TrimSpace(sel.Integration)
	if moduleID == "" {
		moduleID = DefaultModuleID
	}
	adapter, ok := b.registry.Get(moduleID)
	if !ok {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown integration "+moduleID)
	}
	moduleID = providers.ModuleID(adapter.ID())

	mappings, err := mappingsFor(adapter.ID(), sel)
	if err != nil {
		return nil, err
	}

	integration := Integration{ModuleID: moduleID, Mappings: mappings}
	if _, err := integration.Vars(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "built mappings do not decode")
	}

	return &Flow{
		ID: b.newID(),
		Steps: []Step{{
			Type:        StepTypeRecipient,
			Entity:      sel.Entity,
			Integration: integration,
		}},
		CreatedAt: now.UTC(),
	}, nil
}

func mappingsFor(id string, sel Selection) ([]Mapping, error) {
	mappings := []Mapping{}
	if id != unified.ID {
		if sel.Retain || sel.Insights || sel.Verify || len(sel.Properties) > 0 {
			return nil, dErrors.New(dErrors.CodeValidation, "product selections require the "+providers.ModuleID(unified.ID)+" integration")
		}
		return appendScans(mappings, sel), nil
	}

	if !sel.Retain && !sel.Insights && !sel.Verify {
		return nil, dErrors.New(dErrors.CodeValidation, unified.MessageNoProduct)
	}
	if sel.Retain {
		mappings = append(mappings, Mapping{Property: "trustedform.retain", Value: "true"})
	}
	if sel.Insights {
		if len(sel.Properties) == 0 {
			return nil, dErrors.New(dErrors.CodeValidation, unified.MessageNoInsightsProp)
		}
		mappings = append(mappings, Mapping{Property: "trustedform.insights", Value: "true"})
		props, err := propertyMappings(sel.Properties)
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, props...)
	}
	if sel.Verify {
		mappings = append(mappings, Mapping{Property: "trustedform.verify", Value: "true"})
		if name := strings.TrimSpace(sel.AdvertiserName); name != "" {
			mappings = append(mappings, Mapping{Property: "trustedform.advertiser_name", Value: name})
		}
	}
	return appendScans(mappings, sel), nil
}

// propertyMappings emits selected insights properties in send order.
func propertyMappings(selected []string) ([]Mapping, error) {
	known := make(map[string]bool, len(InsightsCatalog))
	for _, f := range InsightsCatalog {
		known[f.Name] = true
	}
	for _, name := range selected {
		if !known[name] {
			return nil, dErrors.New(dErrors.CodeValidation, "unknown insights property "+name)
		}
	}

	var out []Mapping
	for _, f := range InsightsCatalog {
		if slices.Contains(selected, f.Name) {
			out = append(out, Mapping{Property: "insights." + f.Name, Value: "true"})
		}
	}
	return out, nil
}

func appendScans(mappings []Mapping, sel Selection) []Mapping {
	if v := keepTexts(sel.ScanRequiredText); len(v) > 0 {
		mappings = append(mappings, Mapping{Property: "trustedform.scan_required_text", Values: v})
	}
	if v := keepTexts(sel.ScanForbiddenText); len(v) > 0 {
		mappings = append(mappings, Mapping{Property: "trustedform.scan_forbidden_text", Values: v})
	}
	return mappings
}

// keepTexts drops blank scan texts. Each text stays its own scan; joining
// them would turn the delimiter into a wildcard.
func keepTexts(texts []string) []string {
	var kept []string
	for _, t := range texts {
		if t = strings.TrimSpace(t); t != "" {
			kept = append(kept, t)
		}
	}
	return tfstrings.Dedupe(kept)
}
