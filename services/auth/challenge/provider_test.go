package challenge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpclient "github.com/souqin/souqin/internal/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIFactory_SingleUseProof(t *testing.T) {
	clearCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/challenges":
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{"id": "ch-1", "token": "proof-1"})
		case "/v1/challenges/ch-1/clear":
			clearCalls++
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	factory := NewAPIFactory(httpclient.NewClient(server.URL, 5*time.Second), "secret")

	inst, err := factory(context.Background())
	require.NoError(t, err)

	token, err := inst.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "proof-1", token)

	// The proof is single use
	_, err = inst.Token(context.Background())
	assert.Error(t, err)

	// Clear releases the provider-side challenge exactly once
	require.NoError(t, inst.Clear())
	require.NoError(t, inst.Clear())
	assert.Equal(t, 1, clearCalls)

	// A cleared instance cannot mint proofs
	_, err = inst.Token(context.Background())
	assert.Error(t, err)
}

func TestAPIFactory_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	factory := NewAPIFactory(httpclient.NewClient(server.URL, 5*time.Second), "secret")

	_, err := factory(context.Background())
	assert.Error(t, err)
}
