package flow_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"trustedform/internal/flow"
	"trustedform/internal/flow/mocks"
	dErrors "trustedform/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/flow-mocks.go -package=mocks FlowService

type FlowHandlerSuite struct {
	suite.Suite
	ctx context.Context
}

func TestFlowHandlerSuite(t *testing.T) {
	suite.Run(t, new(FlowHandlerSuite))
}

func (s *FlowHandlerSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *FlowHandlerSuite) newTestHandler() (http.Handler, *mocks.MockFlowService) {
	ctrl := gomock.NewController(s.T())
	svc := mocks.NewMockFlowService(ctrl)
	r := chi.NewRouter()
	flow.NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r, svc
}

func (s *FlowHandlerSuite) do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, reader).WithContext(s.ctx))
	return rec
}

func builtFlow() *flow.Flow {
	return &flow.Flow{
		ID: uuid.MustParse("9f1c0a52-8d3e-4c55-9a51-2b7c1f1d6a10"),
		Steps: []flow.Step{{
			Type:        flow.StepTypeRecipient,
			Entity:      flow.Entity{Name: "Acme", ID: "5fd4f7a5"},
			Integration: flow.Integration{ModuleID: flow.DefaultModuleID, Mappings: []flow.Mapping{}},
		}},
		CreatedAt: time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC),
	}
}

func (s *FlowHandlerSuite) TestInsightsFields() {
	h, _ := s.newTestHandler()
	rec := s.do(h, http.MethodGet, "/ui/api/fields/insights", "")

	s.Equal(http.StatusOK, rec.Code)
	var fields []flow.Field
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &fields))
	s.Equal(flow.InsightsCatalog, fields)
}

func (s *FlowHandlerSuite) TestDataServiceFields() {
	h, _ := s.newTestHandler()
	rec := s.do(h, http.MethodGet, "/ui/api/fields/data_service", "")

	s.Equal(http.StatusOK, rec.Code)
	var fields []flow.Field
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &fields))
	s.Len(fields, len(flow.DataServiceCatalog))
	s.Equal("age", fields[0].Name)
}

func (s *FlowHandlerSuite) TestCreate() {
	h, svc := s.newTestHandler()
	svc.EXPECT().
		Create(gomock.Any(), flow.Selection{Entity: flow.Entity{Name: "Acme", ID: "5fd4f7a5"}, Retain: true, Integration: "trustedform"}).
		Return(builtFlow(), nil)

	rec := s.do(h, http.MethodPost, "/ui/api/flows", `{"entity":{"name":"Acme","id":"5fd4f7a5"},"integration":"trustedform","retain":true}`)

	s.Equal(http.StatusCreated, rec.Code)
	s.JSONEq(`{
		"id": "9f1c0a52-8d3e-4c55-9a51-2b7c1f1d6a10",
		"steps": [{
			"type": "recipient",
			"entity": {"name": "Acme", "id": "5fd4f7a5"},
			"integration": {"module_id": "leadconduit-trustedform.outbound.data_service", "mappings": []}
		}],
		"created_at": "2024-03-01T18:00:00Z"
	}`, rec.Body.String())
}

func (s *FlowHandlerSuite) TestCreateRejectsMissingEntity() {
	h, _ := s.newTestHandler()
	rec := s.do(h, http.MethodPost, "/ui/api/flows", `{"retain":true}`)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.JSONEq(`{"error":"validation_error","error_description":"entity name and id are required"}`, rec.Body.String())
}

func (s *FlowHandlerSuite) TestCreateSurfacesBuilderErrors() {
	h, svc := s.newTestHandler()
	svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, dErrors.New(dErrors.CodeValidation, "unknown integration nope"))

	rec := s.do(h, http.MethodPost, "/ui/api/flows", `{"entity":{"name":"Acme","id":"1"},"integration":"nope"}`)

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.JSONEq(`{"error":"validation_error","error_description":"unknown integration nope"}`, rec.Body.String())
}

func (s *FlowHandlerSuite) TestGetAsYAML() {
	h, svc := s.newTestHandler()
	f := builtFlow()
	svc.EXPECT().Get(gomock.Any(), f.ID).Return(f, nil)

	rec := s.do(h, http.MethodGet, "/ui/api/flows/"+f.ID.String()+"?format=yaml", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/yaml", rec.Header().Get("Content-Type"))
	s.Contains(rec.Body.String(), "module_id: leadconduit-trustedform.outbound.data_service")
	s.NotContains(rec.Body.String(), "created_at")
}

func (s *FlowHandlerSuite) TestGetNotFound() {
	h, svc := s.newTestHandler()
	id := uuid.New()
	svc.EXPECT().Get(gomock.Any(), id).Return(nil, dErrors.New(dErrors.CodeNotFound, "flow not found"))

	rec := s.do(h, http.MethodGet, "/ui/api/flows/"+id.String(), "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *FlowHandlerSuite) TestGetBadID() {
	h, _ := s.newTestHandler()
	rec := s.do(h, http.MethodGet, "/ui/api/flows/not-a-uuid", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *FlowHandlerSuite) TestList() {
	h, svc := s.newTestHandler()
	svc.EXPECT().List(gomock.Any(), 5).Return(nil, nil)

	rec := s.do(h, http.MethodGet, "/ui/api/flows?limit=5", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *FlowHandlerSuite) TestListRejectsBadLimit() {
	h, _ := s.newTestHandler()
	rec := s.do(h, http.MethodGet, "/ui/api/flows?limit=-1", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}
