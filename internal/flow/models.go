// Package flow turns an operator's product selection into a declarative
// LeadConduit flow step and keeps the flows it built.
package flow

import (
	"time"

	"github.com/google/uuid"
)

// StepTypeRecipient is the only step type the builder emits.
const StepTypeRecipient = "recipient"

// Flow is a built flow definition.
type Flow struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	Steps     []Step    `json:"steps" yaml:"steps"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Step is one flow step.
type Step struct {
	Type        string      `json:"type" yaml:"type"`
	Entity      Entity      `json:"entity" yaml:"entity"`
	Integration Integration `json:"integration" yaml:"integration"`
}

// Entity is the recipient the step delivers to.
type Entity struct {
	Name string `json:"name" yaml:"name"`
	ID   string `json:"id" yaml:"id"`
}

// Integration names the outbound module and the values mapped into it.
type Integration struct {
	ModuleID string    `json:"module_id" yaml:"module_id"`
	Mappings []Mapping `json:"mappings" yaml:"mappings"`
}

// Mapping sets one integration variable. List variables such as scan texts
// carry Values instead of Value.
type Mapping struct {
	Property string   `json:"property" yaml:"property"`
	Value    string   `json:"value,omitempty" yaml:"value,omitempty"`
	Values   []string `json:"values,omitempty" yaml:"values,omitempty"`
}

// Selection is what the operator picked in the configuration UI.
type Selection struct {
	Entity Entity `json:"entity"`
	// Integration is the module id; empty means the data service.
	Integration string `json:"integration,omitempty"`

	Retain   bool `json:"retain,omitempty"`
	Insights bool `json:"insights,omitempty"`
	Verify   bool `json:"verify,omitempty"`

	// Properties are insights selections such as "age" or "page_scan".
	Properties []string `json:"properties,omitempty"`

	ScanRequiredText  []string `json:"scan_required_text,omitempty"`
	ScanForbiddenText []string `json:"scan_forbidden_text,omitempty"`
	AdvertiserName    string   `json:"advertiser_name,omitempty"`
}
