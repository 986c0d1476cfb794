package workflow

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"handmeup-backend/internal/apiclient"
	"handmeup-backend/internal/domain"
)

// newTestSession builds a session for account "acct-1" against the given
// handler. The returned server is cleaned up by the test.
func newTestSession(t interface{ Cleanup(func()) }, handler http.Handler) *Session {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := apiclient.NewClient(server.URL)
	client.SetToken("test-token")

	return NewSession(client, &domain.Account{
		ID:          "acct-1",
		Email:       "acct-1@example.com",
		DisplayName: "Alice",
	})
}

func writeTestJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
