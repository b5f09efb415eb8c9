package audit

import "time"

// Action names an audited exchange step.
type Action string

const (
	ActionExchange Action = "exchange"
	ActionSkip     Action = "skip"
	ActionRejected Action = "circuit_rejected"
)

// Event records one adapter run. It carries no credentials or lead contact
// data; the lead is referenced by id only.
type Event struct {
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id,omitempty"`
	Action     Action    `json:"action"`
	Module     string    `json:"module"`
	LeadID     string    `json:"lead_id,omitempty"`
	Outcome    string    `json:"outcome"`
	Reason     string    `json:"reason,omitempty"`
	Status     int       `json:"status,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	Error      string    `json:"error,omitempty"`
}
