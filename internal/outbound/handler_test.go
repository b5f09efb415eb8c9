package outbound_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"trustedform/internal/outbound"
	"trustedform/internal/outbound/mocks"
	"trustedform/internal/trustedform/endpoints"
	"trustedform/internal/trustedform/lead"
	"trustedform/internal/trustedform/payload"
	"trustedform/internal/trustedform/providers"
	"trustedform/internal/trustedform/providers/claim"
	"trustedform/internal/trustedform/providers/insights"
	"trustedform/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/outbound-mocks.go -package=mocks Runner

type OutboundHandlerSuite struct {
	suite.Suite
	ctx    context.Context
	runner *mocks.MockRunner
	router http.Handler
}

func TestOutboundHandlerSuite(t *testing.T) {
	suite.Run(t, new(OutboundHandlerSuite))
}

func (s *OutboundHandlerSuite) SetupTest() {
	s.ctx = context.Background()
	ctrl := gomock.NewController(s.T())
	s.runner = mocks.NewMockRunner(ctrl)

	registry := providers.NewRegistry().MustRegister(
		claim.New(endpoints.For(endpoints.Production)),
		insights.New("token"),
	)
	r := chi.NewRouter()
	outbound.NewHandler(registry, s.runner, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	s.router = r
}

func (s *OutboundHandlerSuite) do(method, target, body string) *httptest.ResponseRecorder {
	req := testutil.NewRequestWithBody(s.T(), method, target, body).WithContext(s.ctx)
	return testutil.DoRequest(s.router, req)
}

func (s *OutboundHandlerSuite) TestList() {
	rec := s.do(http.MethodGet, "/outbound", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	modules := testutil.UnmarshalResponse[[]outbound.ModuleSummary](s.T(), rec)
	s.Require().Len(modules, 2)
	s.Equal("leadconduit-trustedform.outbound.claim", modules[0].ID)
	s.Equal(providers.ProtocolForm, modules[0].Protocol)
	s.Equal("leadconduit-trustedform.outbound.insights", modules[1].ID)
}

func (s *OutboundHandlerSuite) TestVariables() {
	rec := s.do(http.MethodGet, "/outbound/insights/variables", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	vars := testutil.UnmarshalResponse[outbound.VariablesResponse](s.T(), rec)
	s.Equal("leadconduit-trustedform.outbound.insights", vars.ID)
	s.NotEmpty(vars.RequestVariables)
	s.NotEmpty(vars.ResponseVariables)
	s.Equal([]string{"TRUSTEDFORM_DATA_SERVICE_TOKEN"}, vars.EnvVariables)
}

func (s *OutboundHandlerSuite) TestVariablesUnknownModule() {
	rec := s.do(http.MethodGet, "/outbound/nope/variables", "")
	testutil.AssertStatusAndError(s.T(), rec, http.StatusNotFound, "not_found")
}

func (s *OutboundHandlerSuite) TestRun() {
	s.runner.EXPECT().
		Run(gomock.Any(), "claim", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, vars *lead.Vars) (payload.Appended, error) {
			s.Equal("https://cert.trustedform.com/533c80270218239ec3000012", vars.Lead.TrustedFormCertURL)
			s.True(vars.TrustedForm.Retain.Enabled())
			return payload.Outcome(providers.OutcomeSuccess, ""), nil
		})

	rec := s.do(http.MethodPost, "/outbound/claim",
		`{"lead":{"trustedform_cert_url":"https://cert.trustedform.com/533c80270218239ec3000012"},"trustedform":{"retain":"true"}}`)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"outcome":"success"}`, rec.Body.String())
}

func (s *OutboundHandlerSuite) TestRunReturnsErrorOutcomesWith200() {
	s.runner.EXPECT().Run(gomock.Any(), "claim", gomock.Any()).
		Return(payload.Outcome(providers.OutcomeError, "request timed out"), nil)

	rec := s.do(http.MethodPost, "/outbound/claim", `{"lead":{}}`)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"outcome":"error","reason":"request timed out"}`, rec.Body.String())
}

func (s *OutboundHandlerSuite) TestRunUnknownModule() {
	s.runner.EXPECT().Run(gomock.Any(), "nope", gomock.Any()).
		Return(nil, fmt.Errorf("%w: nope", providers.ErrProviderNotFound))

	rec := s.do(http.MethodPost, "/outbound/nope", `{}`)
	testutil.AssertStatusAndError(s.T(), rec, http.StatusNotFound, "not_found")
}

func (s *OutboundHandlerSuite) TestRunRejectsBadJSON() {
	rec := s.do(http.MethodPost, "/outbound/claim", `{"trustedform":{"retain":"maybe"}}`)
	testutil.AssertStatusAndError(s.T(), rec, http.StatusBadRequest, "bad_request")

	rec = s.do(http.MethodPost, "/outbound/claim", "")
	testutil.AssertStatusAndError(s.T(), rec, http.StatusBadRequest, "bad_request")
}
