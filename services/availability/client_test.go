package availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestProviderClientGetOpenSlots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/availability", r.URL.Path)
		require.Equal(t, "alice", r.URL.Query().Get("user"))
		require.Equal(t, "2025-06-10", r.URL.Query().Get("date"))
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"user": "alice",
			"date": "2025-06-10",
			"slots": [
				{"start_time": "2025-06-10T09:00:00Z", "end_time": "2025-06-10T09:30:00Z"},
				{"start_time": "bogus", "end_time": "2025-06-10T10:00:00Z"}
			]
		}`))
	}))
	defer srv.Close()

	client := &ProviderClient{
		BaseURL:  srv.URL,
		APIToken: "test-token",
		HTTP:     &http.Client{Timeout: 5 * time.Second},
	}

	slots, err := client.GetOpenSlots(context.Background(), "alice", "2025-06-10")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	require.Equal(t, 9, slots[0].Start.Hour())
}

func TestProviderClientNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := &ProviderClient{
		BaseURL: srv.URL,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}

	_, err := client.GetOpenSlots(context.Background(), "alice", "2025-06-10")
	require.Error(t, err)
}
