package providers

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"trustedform/internal/trustedform/lead"
	"trustedform/internal/trustedform/payload"
)

// ModulePrefix namespaces adapter ids the way pipeline flows reference them.
const ModulePrefix = "leadconduit-trustedform.outbound."

// Outcome values appended to every lead.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeError   = "error"
	// OutcomeSkip marks a lead the adapter refused before any request was sent.
	OutcomeSkip = "skip"
)

// Protocol is the body encoding an adapter speaks
type Protocol string

const (
	ProtocolForm Protocol = "form"
	ProtocolJSON Protocol = "json"
)

// VariableType describes the data type of a request or response variable
type VariableType string

const (
	TypeString     VariableType = "string"
	TypeBoolean    VariableType = "boolean"
	TypeNumber     VariableType = "number"
	TypeArray      VariableType = "array"
	TypeURL        VariableType = "url"
	TypeEmail      VariableType = "email"
	TypePhone      VariableType = "phone"
	TypeTime       VariableType = "time"
	TypeRange      VariableType = "range"
	TypeCredential VariableType = "credential"
)

// Variable documents one request or response field for the flow editor
type Variable struct {
	Name        string       `json:"name" yaml:"name"`
	Type        VariableType `json:"type,omitempty" yaml:"type,omitempty"`
	Required    bool         `json:"required,omitempty" yaml:"required,omitempty"`
	Description string       `json:"description" yaml:"description"`
}

// Capabilities describes what an adapter sends and appends
type Capabilities struct {
	Protocol          Protocol
	Version           string // TrustedForm API version
	Name              string
	RequestVariables  []Variable
	ResponseVariables []Variable
	EnvVariables      []string
}

// Request is a fully built outbound HTTP request.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Redacted returns the request headers with credentials masked, for logs.
func (r *Request) Redacted() map[string]string {
	out := make(map[string]string, len(r.Header))
	for k, v := range r.Header {
		val := strings.Join(v, ",")
		if strings.EqualFold(k, "Authorization") {
			scheme, _, _ := strings.Cut(val, " ")
			val = scheme + " ****"
		}
		out[k] = val
	}
	return out
}

// Response is the raw HTTP response an adapter normalizes.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Adapter is the interface every TrustedForm product implements
type Adapter interface {
	// ID is the module id without the package prefix, e.g. "claim".
	ID() string

	Capabilities() Capabilities

	// Validate returns a non-empty reason when the lead cannot be sent.
	Validate(vars *lead.Vars) string

	// Request builds the outbound request.
	Request(vars *lead.Vars) (*Request, error)

	// Response normalizes the API response into appended fields.
	Response(vars *lead.Vars, res *Response) payload.Appended
}

// TransportResponder lets an adapter shape the result of a failed exchange.
// Adapters without it get a flat error outcome.
type TransportResponder interface {
	TransportError(vars *lead.Vars, err error) payload.Appended
}

// Registry maintains all registered adapters
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry creates a new empty registry
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

// Register adds an adapter to the registry
func (r *Registry) Register(a Adapter) error {
	id := a.ID()
	if _, exists := r.adapters[id]; exists {
		return fmt.Errorf("adapter %s already registered", id)
	}
	r.adapters[id] = a
	return nil
}

// MustRegister registers every adapter and panics on duplicates.
func (r *Registry) MustRegister(adapters ...Adapter) *Registry {
	for _, a := range adapters {
		if err := r.Register(a); err != nil {
			panic(err)
		}
	}
	return r
}

// Get retrieves an adapter by id. Fully qualified module ids are accepted.
func (r *Registry) Get(id string) (Adapter, bool) {
	a, ok := r.adapters[strings.TrimPrefix(id, ModulePrefix)]
	return a, ok
}

// All returns all registered adapters ordered by id
func (r *Registry) All() []Adapter {
	result := make([]Adapter, 0, len(r.adapters))
	for _, a := range r.adapters {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })
	return result
}

// ModuleID qualifies an adapter id.
func ModuleID(id string) string {
	return ModulePrefix + id
}
