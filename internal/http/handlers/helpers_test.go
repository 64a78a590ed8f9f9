package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skmobile/csc-center-api/internal/auth"
	"github.com/skmobile/csc-center-api/internal/middleware"
	"github.com/skmobile/csc-center-api/internal/models"
)

const testSecret = "test-signing-secret"

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager(testSecret, time.Hour)
}

// expiredTokens issues tokens that are already past their expiry.
func expiredTokens() *auth.TokenManager {
	return auth.NewTokenManager(testSecret, -time.Hour)
}

type testStores struct {
	admins      *fakeAdminStore
	services    *fakeServiceStore
	accessories *fakeAccessoryStore
	repairs     *fakeRepairStore
}

func newTestStores() testStores {
	return testStores{
		admins:      &fakeAdminStore{admins: make(map[string]models.AdminUser)},
		services:    newFakeServiceStore(),
		accessories: newFakeAccessoryStore(),
		repairs:     newFakeRepairStore(),
	}
}

// newTestRouter mirrors the production route wiring with fake stores.
func newTestRouter(st testStores, tokens *auth.TokenManager) http.Handler {
	guard := middleware.RequireAdmin(tokens)
	logger := zap.NewNop()

	r := chi.NewRouter()
	r.MethodNotAllowed(MethodNotAllowed)
	NewLoginHandler(st.admins, tokens, logger).Register(r)
	NewServiceHandler(st.services, logger).Register(r, guard)
	NewAccessoryHandler(st.accessories, logger).Register(r, guard)
	NewRepairHandler(st.repairs, logger).Register(r, guard)
	return r
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, rec, &body)
	return body.Error
}

func mustIssue(t *testing.T, tokens *auth.TokenManager) string {
	t.Helper()
	token, err := tokens.Issue("admin-1", "admin")
	require.NoError(t, err)
	return token
}
