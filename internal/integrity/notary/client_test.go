package notary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worktime/internal/platform/config"
)

type fakeQTSP struct {
	mux        *http.ServeMux
	server     *httptest.Server
	tokenCalls atomic.Int32
	polls      atomic.Int32
}

func newFakeQTSP(t *testing.T) *fakeQTSP {
	f := &fakeQTSP{mux: http.NewServeMux()}
	f.mux.HandleFunc("POST /oauth/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		require.NoError(t, r.ParseForm())
		if r.Form.Get("client_secret") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
			return
		}
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))
		assert.Equal(t, "worktime", r.Form.Get("client_id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-1","token_type":"bearer","expires_in":3600}`))
	})
	f.server = httptest.NewServer(f.authenticated(f.mux))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeQTSP) authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/oauth/token" && r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *fakeQTSP) client(secret string) *Client {
	return NewClient(config.QTSPConfig{
		BaseURL:      f.server.URL + "/api/",
		TokenURL:     f.server.URL + "/oauth/token",
		ClientID:     "worktime",
		ClientSecret: secret,
		Timeout:      2 * time.Second,
		PollInterval: time.Millisecond,
		PollAttempts: 3,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClientCreatesResources(t *testing.T) {
	f := newFakeQTSP(t)
	f.mux.HandleFunc("POST /api/case-files", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Acme time records", body["name"])
		writeJSON(w, http.StatusCreated, map[string]string{"id": "cf-1", "name": body["name"]})
	})
	f.mux.HandleFunc("POST /api/case-files/cf-1/evidence-groups", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]string{"id": "grp-1"})
	})
	f.mux.HandleFunc("POST /api/evidence-groups/grp-1/evidences", func(w http.ResponseWriter, r *http.Request) {
		var body evidenceBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "abc123", body.Data)
		assert.Equal(t, tspBody{Provider: "EADTRUST", Type: "TIMESTAMP"}, body.TSP)
		writeJSON(w, http.StatusCreated, map[string]string{"id": "ev-1"})
	})

	c := f.client("secret")
	ctx := context.Background()

	caseFile, err := c.CreateCaseFile(ctx, "Acme time records", "clock evidence")
	require.NoError(t, err)
	assert.Equal(t, "cf-1", caseFile)

	group, err := c.CreateEvidenceGroup(ctx, caseFile, "2024-03")
	require.NoError(t, err)
	assert.Equal(t, "grp-1", group)

	evidence, err := c.CreateEvidence(ctx, group, EvidenceRequest{Name: "Merkle root 2024-03-04", Data: "abc123"})
	require.NoError(t, err)
	assert.Equal(t, "ev-1", evidence)

	assert.Equal(t, int32(1), f.tokenCalls.Load(), "access token must be reused")
}

func TestClientAwaitToken(t *testing.T) {
	t.Run("returns the token once issued", func(t *testing.T) {
		f := newFakeQTSP(t)
		f.mux.HandleFunc("GET /api/evidences/ev-1", func(w http.ResponseWriter, r *http.Request) {
			if f.polls.Add(1) < 2 {
				writeJSON(w, http.StatusOK, map[string]string{"id": "ev-1"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{
				"id": "ev-1", "tspToken": "TSP-TOKEN", "tspTimestamp": "2024-03-05T00:00:05Z",
			})
		})

		token, err := f.client("secret").AwaitToken(context.Background(), "ev-1")
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, "TSP-TOKEN", token.Value)
		assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 5, 0, time.UTC), token.Timestamp)
		assert.Equal(t, int32(2), f.polls.Load())
	})

	t.Run("pending after all attempts is not an error", func(t *testing.T) {
		f := newFakeQTSP(t)
		f.mux.HandleFunc("GET /api/evidences/ev-1", func(w http.ResponseWriter, r *http.Request) {
			f.polls.Add(1)
			writeJSON(w, http.StatusOK, map[string]string{"id": "ev-1"})
		})

		token, err := f.client("secret").AwaitToken(context.Background(), "ev-1")
		require.NoError(t, err)
		assert.Nil(t, token)
		assert.Equal(t, int32(3), f.polls.Load())
	})

	t.Run("provider errors stop polling", func(t *testing.T) {
		f := newFakeQTSP(t)
		f.mux.HandleFunc("GET /api/evidences/ev-1", func(w http.ResponseWriter, r *http.Request) {
			f.polls.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := f.client("secret").AwaitToken(context.Background(), "ev-1")
		require.Error(t, err)
		assert.Equal(t, ErrorProviderOutage, CategoryOf(err))
		assert.Equal(t, int32(1), f.polls.Load())
	})
}

func TestClientErrorCategories(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		category  ErrorCategory
		retryable bool
	}{
		{name: "server error", status: http.StatusInternalServerError, category: ErrorProviderOutage, retryable: true},
		{name: "rate limited", status: http.StatusTooManyRequests, category: ErrorRateLimited, retryable: true},
		{name: "forbidden", status: http.StatusForbidden, category: ErrorAuthentication},
		{name: "bad request", status: http.StatusBadRequest, category: ErrorBadData},
		{name: "gateway timeout", status: http.StatusGatewayTimeout, category: ErrorTimeout, retryable: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeQTSP(t)
			f.mux.HandleFunc("POST /api/case-files", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			})

			_, err := f.client("secret").CreateCaseFile(context.Background(), "Acme", "")
			require.Error(t, err)
			assert.Equal(t, tt.category, CategoryOf(err))
			assert.Equal(t, tt.retryable, IsRetryable(err))
		})
	}

	t.Run("rejected credentials", func(t *testing.T) {
		f := newFakeQTSP(t)
		_, err := f.client("wrong").CreateCaseFile(context.Background(), "Acme", "")
		require.Error(t, err)
		assert.Equal(t, ErrorAuthentication, CategoryOf(err))
		assert.False(t, IsRetryable(err))
	})

	t.Run("context deadline", func(t *testing.T) {
		f := newFakeQTSP(t)
		f.mux.HandleFunc("POST /api/case-files", func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := f.client("secret").CreateCaseFile(ctx, "Acme", "")
		require.Error(t, err)
		assert.Equal(t, ErrorTimeout, CategoryOf(err))
	})

	t.Run("missing id is bad data", func(t *testing.T) {
		f := newFakeQTSP(t)
		f.mux.HandleFunc("POST /api/case-files", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusCreated, map[string]string{})
		})
		_, err := f.client("secret").CreateCaseFile(context.Background(), "Acme", "")
		assert.Equal(t, ErrorBadData, CategoryOf(err))
	})
}
