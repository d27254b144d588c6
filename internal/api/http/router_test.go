package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshelf-backend/internal/domain"
	"gameshelf-backend/internal/repository/file"
	"gameshelf-backend/internal/security"
	"gameshelf-backend/internal/service"
	"gameshelf-backend/internal/utils"
)

// nopEmail satisfies service.EmailService without touching SMTP.
type nopEmail struct{}

func (nopEmail) SendRentalConfirmation(ctx context.Context, to string, rental domain.Rental) error {
	return nil
}

func (nopEmail) SendReminder(ctx context.Context, to, title, body string) error { return nil }

// newTestServer wires the full API over a file store in a temp directory.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := file.NewStore(t.TempDir())
	require.NoError(t, err)

	state := service.NewAppState(store)
	state.Restore(context.Background())

	tokens := security.NewTokenManager("router-test-secret-key-long-enough-1234", 60)
	email := nopEmail{}
	notifier := service.NewReminderScheduler(email, func() string { return "" })

	onboardingSvc := service.NewOnboardingService(state, "Orlando", 0)
	authSvc := service.NewAuthService(store, tokens, onboardingSvc)
	rentalSvc := service.NewRentalService(state, utils.SystemCalendar(), notifier, email, "BG", 60, 9)

	router := NewRouter(
		NewOnboardingHandler(authSvc, onboardingSvc, service.NewMockLocationResolver()),
		NewRentalHandler(rentalSvc),
		tokens,
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func signIn(t *testing.T, server *httptest.Server) string {
	t.Helper()
	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/signin", "", map[string]string{
		"email":    "jane@example.com",
		"password": "sekret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]any](t, resp)
	return body["token"].(string)
}

// onboardToMain walks the machine to the MAIN stage.
func onboardToMain(t *testing.T, server *httptest.Server, token string) {
	t.Helper()

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/onboarding/profile", token, map[string]string{
		"first_name": "Jane", "last_name": "Doe", "phone": "407-555-0142",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/onboarding/location", token, map[string]string{
		"location": "Orlando, FL",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]any](t, resp)
	require.Equal(t, string(domain.StageCelebration), body["stage"])

	// Zero celebration delay in the fixture, so MAIN arrives almost at once.
	require.Eventually(t, func() bool {
		resp := doJSON(t, http.MethodGet, server.URL+"/api/v1/onboarding/status", token, nil)
		status := decodeBody[map[string]any](t, resp)
		return status["stage"] == string(domain.StageMain)
	}, time.Second, 10*time.Millisecond)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/rentals/active")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Catalog is public.
	resp, err = http.Get(server.URL + "/api/v1/catalog")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSignInRejectsWrongPassword(t *testing.T) {
	server := newTestServer(t)
	signIn(t, server)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/auth/signin", "", map[string]string{
		"email": "jane@example.com", "password": "wrong",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestOnboardingFlow(t *testing.T) {
	server := newTestServer(t)
	token := signIn(t, server)
	onboardToMain(t, server, token)

	resp := doJSON(t, http.MethodGet, server.URL+"/api/v1/onboarding/status", token, nil)
	status := decodeBody[map[string]any](t, resp)
	profile := status["profile"].(map[string]any)
	assert.Equal(t, "jane@example.com", profile["email"])
	assert.Equal(t, "Orlando, FL", profile["location"])
	assert.NotEmpty(t, status["fact"])
}

func TestSetLocationByCoordinates(t *testing.T) {
	server := newTestServer(t)
	token := signIn(t, server)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/onboarding/profile", token, map[string]string{
		"first_name": "Jane", "last_name": "Doe", "phone": "407-555-0142",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/onboarding/location", token, map[string]any{
		"latitude": 28.5384, "longitude": -81.3789,
	})
	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "Orlando, FL, United States", body["location"])
	assert.Equal(t, string(domain.StageCelebration), body["stage"])
}

func TestUnsupportedLocationThenChange(t *testing.T) {
	server := newTestServer(t)
	token := signIn(t, server)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/onboarding/profile", token, map[string]string{
		"first_name": "Jane", "last_name": "Doe", "phone": "407-555-0142",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/onboarding/location", token, map[string]string{
		"location": "Fargo, ND",
	})
	body := decodeBody[map[string]any](t, resp)
	assert.Equal(t, string(domain.StageUnavailable), body["stage"])

	resp = doJSON(t, http.MethodPost, server.URL+"/api/v1/onboarding/location/change", token, nil)
	body = decodeBody[map[string]any](t, resp)
	assert.Equal(t, string(domain.StageLocation), body["stage"])
}

func TestQuoteSingleGame(t *testing.T) {
	server := newTestServer(t)
	token := signIn(t, server)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/quotes", token, map[string]any{
		"game_ids": []string{"catan"}, "days": 3,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	quote := decodeBody[map[string]any](t, resp)
	assert.Greater(t, quote["total"].(float64), 0.0)
	assert.Equal(t, false, quote["bundle"])
}

func TestQuoteBundle(t *testing.T) {
	server := newTestServer(t)
	token := signIn(t, server)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/quotes", token, map[string]any{
		"game_ids": []string{"catan", "azul", "codenames"}, "days": 5,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	quote := decodeBody[map[string]any](t, resp)

	assert.Equal(t, true, quote["bundle"])
	subtotal := quote["subtotal"].(float64)
	deposits := quote["deposit_sum"].(float64)
	total := quote["total"].(float64)
	// Discounts make a bundle strictly cheaper than three singles.
	assert.Less(t, total, subtotal+deposits)
}

func TestQuoteRejectsIncompleteBundle(t *testing.T) {
	server := newTestServer(t)
	token := signIn(t, server)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/quotes", token, map[string]any{
		"game_ids": []string{"catan", "azul"}, "days": 5,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestQuoteRejectsDuplicateBundleGames(t *testing.T) {
	server := newTestServer(t)
	token := signIn(t, server)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/quotes", token, map[string]any{
		"game_ids": []string{"catan", "catan", "catan"}, "days": 5,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRentalLifecycleOverHTTP(t *testing.T) {
	server := newTestServer(t)
	token := signIn(t, server)
	onboardToMain(t, server, token)

	pickup := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/rentals", token, map[string]any{
		"game_id": "catan", "pickup": pickup, "days": 3,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	rental := decodeBody[map[string]any](t, resp)
	id := rental["id"].(string)
	require.NotEmpty(t, id)

	resp = doJSON(t, http.MethodPost, fmt.Sprintf("%s/api/v1/rentals/%s/pickup", server.URL, id), token, nil)
	picked := decodeBody[map[string]any](t, resp)
	assert.Equal(t, string(domain.RentalStatusPickedUp), picked["status"])

	resp = doJSON(t, http.MethodPost, fmt.Sprintf("%s/api/v1/rentals/%s/return", server.URL, id), token, nil)
	returned := decodeBody[map[string]any](t, resp)
	assert.Equal(t, string(domain.RentalStatusReturned), returned["status"])

	resp = doJSON(t, http.MethodGet, server.URL+"/api/v1/rentals/active", token, nil)
	active := decodeBody[[]map[string]any](t, resp)
	assert.Empty(t, active)

	resp = doJSON(t, http.MethodGet, server.URL+"/api/v1/rentals/past", token, nil)
	past := decodeBody[[]map[string]any](t, resp)
	require.Len(t, past, 1)
	assert.Equal(t, id, past[0]["id"])

	// Returning again is a benign no-op.
	resp = doJSON(t, http.MethodPost, fmt.Sprintf("%s/api/v1/rentals/%s/return", server.URL, id), token, nil)
	noop := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "no-op", noop["result"])
}

func TestCreateRentalRejectsBadDuration(t *testing.T) {
	server := newTestServer(t)
	token := signIn(t, server)

	pickup := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/rentals", token, map[string]any{
		"game_id": "catan", "pickup": pickup, "days": 30,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateBundleOverHTTP(t *testing.T) {
	server := newTestServer(t)
	token := signIn(t, server)

	pickup := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/rentals/bundle", token, map[string]any{
		"game_ids": []string{"catan", "azul", "codenames"}, "pickup": pickup, "days": 5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody[map[string]any](t, resp)
	assert.Len(t, body["rentals"].([]any), 3)
}

func TestCreateBundleRejectsDuplicateGames(t *testing.T) {
	server := newTestServer(t)
	token := signIn(t, server)

	pickup := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	resp := doJSON(t, http.MethodPost, server.URL+"/api/v1/rentals/bundle", token, map[string]any{
		"game_ids": []string{"catan", "azul", "catan"}, "pickup": pickup, "days": 5,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Nothing was booked.
	resp = doJSON(t, http.MethodGet, server.URL+"/api/v1/rentals/active", token, nil)
	active := decodeBody[[]map[string]any](t, resp)
	assert.Empty(t, active)
}
