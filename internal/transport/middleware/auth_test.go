package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heartmarshall/admincatalog-backend/pkg/ctxutil"
)

//go:generate moq -out token_validator_mock_test.go -pkg middleware . tokenValidator

func newValidator() *tokenValidatorMock {
	return &tokenValidatorMock{
		ValidateAccessTokenFunc: func(token string) (string, string, error) {
			switch token {
			case "admin-token":
				return "ops-alice", "admin", nil
			case "viewer-token":
				return "ops-bob", "viewer", nil
			}
			return "", "", errors.New("invalid token")
		},
	}
}

func TestAuth_ValidAdminToken(t *testing.T) {
	validator := newValidator()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, ok := ctxutil.SubjectFromCtx(r.Context())
		if !ok {
			t.Error("expected subject in context")
			return
		}
		if subject != "ops-alice" {
			t.Errorf("expected subject %q, got %q", "ops-alice", subject)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	rec := httptest.NewRecorder()

	Auth(validator, "admin")(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if calls := validator.ValidateAccessTokenCalls(); len(calls) != 1 || calls[0].Token != "admin-token" {
		t.Errorf("unexpected validator calls: %+v", calls)
	}
}

func TestAuth_Rejections(t *testing.T) {
	cases := []struct {
		name         string
		header       string
		wantStatus   int
		wantValidate bool
	}{
		{"no header", "", http.StatusUnauthorized, false},
		{"basic auth", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, false},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, false},
		{"invalid token", "Bearer garbage", http.StatusUnauthorized, true},
		{"wrong role", "Bearer viewer-token", http.StatusForbidden, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			validator := newValidator()
			called := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			Auth(validator, "admin")(handler).ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
			if called {
				t.Error("handler should not be called")
			}
			if !strings.Contains(rec.Body.String(), `"error"`) {
				t.Errorf("expected JSON error body, got %q", rec.Body.String())
			}
			if got := len(validator.ValidateAccessTokenCalls()) > 0; got != tc.wantValidate {
				t.Errorf("validator called = %v, want %v", got, tc.wantValidate)
			}
		})
	}
}

func TestExtractBearerToken_Cases(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", ""},
		{"bearer with token", "Bearer valid-token", "valid-token"},
		{"bearer lowercase", "bearer valid-token", "valid-token"},
		{"bearer mixed case", "BEARER valid-token", "valid-token"},
		{"basic auth", "Basic dXNlcjpwYXNz", ""},
		{"bearer no space", "Bearertoken", ""},
		{"bearer empty token", "Bearer ", ""},
		{"just bearer", "Bearer", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			got := extractBearerToken(req)
			if got != tc.want {
				t.Errorf("extractBearerToken(%q) = %q, want %q", tc.header, got, tc.want)
			}
		})
	}
}
