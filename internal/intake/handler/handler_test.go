package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"amply/internal/intake/engine"
	"amply/internal/intake/models"
	"amply/internal/intake/service"
	"amply/internal/intake/store"
	"amply/internal/intake/validation"
	"amply/internal/platform/config"
	"amply/internal/platform/metrics"
	"amply/pkg/testutil"
)

type IntakeHandlerSuite struct {
	suite.Suite
	router *chi.Mux
	now    time.Time
}

func TestIntakeHandlerSuite(t *testing.T) {
	suite.Run(t, new(IntakeHandlerSuite))
}

func (s *IntakeHandlerSuite) SetupTest() {
	s.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.New(prometheus.NewRegistry())

	ref := config.Reference{
		Countries:      []string{"GB", "FR"},
		RiskLevels:     []string{"LOW", "MEDIUM", "HIGH", "HUGE"},
		AllowedDomains: []string{"cia.gov"},
		MinYear:        1900,
	}
	svc := service.New(store.NewInMemoryEntryStore(), engine.New(validation.New(ref.Rules())),
		service.WithLogger(logger),
		service.WithMetrics(m),
	)

	s.router = chi.NewRouter()
	New(svc, ref, logger, m, 1024).Register(s.router)
}

func (s *IntakeHandlerSuite) do(req *http.Request) *httptest.ResponseRecorder {
	return testutil.DoRequest(s.router, testutil.WithRequestTime(req, s.now))
}

func validDraft() map[string]any {
	return map[string]any{
		"fullName": "Joe Bloggs",
		"country":  "GB",
		"yob":      "1970-01-01",
		"position": "Yes Minister",
		"url":      "https://cia.gov/bluebook/narnia",
		"risk":     "HUGE",
	}
}

func (s *IntakeHandlerSuite) submit(body any) (*httptest.ResponseRecorder, *submitResponse) {
	rr := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/entities", body))
	if rr.Code != http.StatusCreated && rr.Code != http.StatusUnprocessableEntity {
		return rr, nil
	}
	return rr, testutil.UnmarshalResponse[submitResponse](s.T(), rr)
}

func (s *IntakeHandlerSuite) TestSubmitValidEntry() {
	rr, resp := s.submit(validDraft())

	s.Equal(http.StatusCreated, rr.Code, rr.Body.String())
	s.True(resp.Accepted)
	s.Equal(models.StateAccepted, resp.State)
	s.Empty(resp.InvalidFields)
	s.Require().NotNil(resp.Entry)
	s.Equal("Joe Bloggs", resp.Entry.FullName)
	s.Equal(s.now, resp.Entry.CreatedAt)

	s.Run("feedback shows values, valid url and the confirmation", func() {
		fb := resp.Feedback
		s.Equal("Joe Bloggs", fb.Values["fullName"])
		s.Require().NotNil(fb.URLFeedback)
		s.Equal("valid-feedback", fb.URLFeedback.Class)
		s.Equal("Valid URL.", fb.URLFeedback.Message)
		s.True(fb.Confirmation.Visible)
		s.Equal("You added Joe Bloggs to the list of entities.", fb.Confirmation.Text)
		s.Empty(fb.Errors)
	})

	s.Run("entry is listed and retrievable", func() {
		list := s.do(httptest.NewRequest(http.MethodGet, "/entities", nil))
		s.Equal(http.StatusOK, list.Code)
		lr := testutil.UnmarshalResponse[listResponse](s.T(), list)
		s.Equal(1, lr.Count)
		s.Equal(resp.Entry.ID, lr.Entries[0].ID)

		get := s.do(httptest.NewRequest(http.MethodGet, "/entities/"+resp.Entry.ID.String(), nil))
		s.Equal(http.StatusOK, get.Code)
		e := testutil.UnmarshalResponse[models.Entry](s.T(), get)
		s.Equal("1970-01-01", e.YearOfBirth)
	})
}

func (s *IntakeHandlerSuite) TestSubmitEmptyForm() {
	rr, resp := s.submit(map[string]any{})

	s.Equal(http.StatusUnprocessableEntity, rr.Code)
	s.False(resp.Accepted)
	s.Equal(models.StateRejected, resp.State)
	s.Len(resp.InvalidFields, 6)
	s.Len(resp.Feedback.Errors, 6)
	s.Nil(resp.Feedback.URLFeedback, "no url key, no url feedback")
	s.False(resp.Feedback.Confirmation.Visible)

	list := testutil.UnmarshalResponse[listResponse](s.T(), s.do(httptest.NewRequest(http.MethodGet, "/entities", nil)))
	s.Equal(0, list.Count)
	s.NotNil(list.Entries)
}

func (s *IntakeHandlerSuite) TestSubmitInvalidFixtures() {
	fixtures := []struct {
		field string
		value any
	}{
		{"fullName", "'"},
		{"country", "'"},
		{"country", "Narnia"},
		{"yob", "2070-01-01"},
		{"yob", "1070-01-01"},
		{"yob", "1970-33-44"},
		{"position", "'"},
		{"position", "99"},
		{"url", "fttps://cia.gov/bluebook/narnia"},
		{"url", "http:/invalidslash.com"},
		{"url", "https://invaliddomain/nowhere"},
		{"url", "javascript:(alert('PWNED!'))"},
		{"risk", "NOT HUGE"},
		{"risk", float64(3)},
	}
	for _, f := range fixtures {
		draft := validDraft()
		draft[f.field] = f.value

		rr, resp := s.submit(draft)
		s.Equal(http.StatusUnprocessableEntity, rr.Code, "%s=%v", f.field, f.value)
		s.Equal([]models.FieldName{models.FieldName(f.field)}, resp.InvalidFields, "%s=%v", f.field, f.value)
		s.Contains(resp.Feedback.Errors, models.FieldName(f.field))
		s.Equal(f.value, resp.Feedback.Values[f.field], "value retained verbatim")

		if f.field == "url" {
			s.Equal("invalid-feedback", resp.Feedback.URLFeedback.Class)
			s.Equal("Invalid URL format.", resp.Feedback.URLFeedback.Message)
		}
	}

	list := testutil.UnmarshalResponse[listResponse](s.T(), s.do(httptest.NewRequest(http.MethodGet, "/entities", nil)))
	s.Equal(0, list.Count)
}

func (s *IntakeHandlerSuite) TestSubmitBobbyTables() {
	draft := validDraft()
	draft["fullName"] = "Robert'); DROP TABLE Politicians;--"

	rr, resp := s.submit(draft)

	s.Equal(http.StatusUnprocessableEntity, rr.Code)
	s.Equal("unsafe_content", string(resp.Results[models.FieldFullName].Kind))
	s.Equal("Robert'); DROP TABLE Politicians;--", resp.Feedback.Values["fullName"])
}

func (s *IntakeHandlerSuite) TestSubmitBadBodies() {
	cases := map[string]string{
		"malformed json": `{"fullName":`,
		"array":          `[1,2]`,
		"string":         `"hello"`,
		"null":           `null`,
		"empty":          ``,
		"trailing data":  `{} {}`,
		"too large":      `{"fullName":"` + strings.Repeat("a", 2048) + `"}`,
	}
	for name, body := range cases {
		s.Run(name, func() {
			rr := s.do(testutil.NewRequestWithBody(s.T(), http.MethodPost, "/entities", body))
			testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
		})
	}

	s.Run("wrong content type", func() {
		req := httptest.NewRequest(http.MethodPost, "/entities", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "text/plain")
		testutil.AssertStatusAndError(s.T(), s.do(req), http.StatusUnsupportedMediaType, "unsupported")
	})
}

func (s *IntakeHandlerSuite) TestFieldChanged() {
	s.Run("url is validated immediately", func() {
		rr := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/entities/fields/url", map[string]any{"value": "https://invaliddomain/nowhere"}))
		s.Equal(http.StatusOK, rr.Code)

		resp := testutil.UnmarshalResponse[fieldChangeResponse](s.T(), rr)
		s.True(resp.Immediate)
		s.Require().NotNil(resp.Result)
		s.False(resp.Result.Valid)
		s.Require().NotNil(resp.Feedback.URLFeedback)
		s.Equal("invalid-feedback", resp.Feedback.URLFeedback.Class)
	})

	s.Run("other fields wait for submit", func() {
		rr := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/entities/fields/fullName", map[string]any{"value": "'"}))
		s.Equal(http.StatusOK, rr.Code)

		resp := testutil.UnmarshalResponse[fieldChangeResponse](s.T(), rr)
		s.False(resp.Immediate)
		s.Nil(resp.Result)
		s.Empty(resp.Feedback.Errors)
	})

	s.Run("missing value is a missing url", func() {
		rr := s.do(testutil.NewRequestWithBody(s.T(), http.MethodPost, "/entities/fields/url", ``))
		s.Equal(http.StatusOK, rr.Code)
		resp := testutil.UnmarshalResponse[fieldChangeResponse](s.T(), rr)
		s.Equal(models.KindMissingField, resp.Result.Kind)
	})

	s.Run("unknown field", func() {
		rr := s.do(testutil.NewJSONRequest(s.T(), http.MethodPost, "/entities/fields/nickname", map[string]any{"value": "JB"}))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
	})
}

func (s *IntakeHandlerSuite) TestGetEntry() {
	s.Run("malformed id", func() {
		rr := s.do(httptest.NewRequest(http.MethodGet, "/entities/not-a-uuid", nil))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})

	s.Run("unknown id", func() {
		rr := s.do(httptest.NewRequest(http.MethodGet, "/entities/"+uuid.NewString(), nil))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
	})
}

func (s *IntakeHandlerSuite) TestReference() {
	rr := s.do(httptest.NewRequest(http.MethodGet, "/reference", nil))
	s.Equal(http.StatusOK, rr.Code)

	resp := testutil.UnmarshalResponse[referenceResponse](s.T(), rr)
	s.Equal([]string{"GB", "FR"}, resp.Countries)
	s.Equal([]string{"LOW", "MEDIUM", "HIGH", "HUGE"}, resp.RiskLevels)
	s.Equal(1900, resp.MinYear)
}

func (s *IntakeHandlerSuite) TestRequestIDEchoed() {
	req := httptest.NewRequest(http.MethodGet, "/entities", nil)
	req.Header.Set("X-Request-ID", "req-99")
	rr := s.do(req)
	s.Equal("req-99", rr.Header().Get("X-Request-ID"))
}
