package challenge

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	httpclient "github.com/souqin/souqin/internal/pkg/http"
)

// NewAPIFactory returns a Factory that obtains single-use proof tokens from
// the challenge provider's server-side API.
func NewAPIFactory(client *httpclient.Client, secret string) Factory {
	return func(ctx context.Context) (Instance, error) {
		var out struct {
			ID    string `json:"id"`
			Token string `json:"token"`
		}

		status, err := client.PostJSON(ctx, "/v1/challenges", map[string]string{"secret": secret}, &out)
		if err != nil {
			return nil, fmt.Errorf("challenge provider request failed: %w", err)
		}
		if status != http.StatusOK && status != http.StatusCreated {
			return nil, fmt.Errorf("challenge provider returned status %d", status)
		}

		return &apiInstance{
			client: client,
			id:     out.ID,
			token:  out.Token,
		}, nil
	}
}

// apiInstance is a provider-issued challenge whose proof token may be
// consumed exactly once.
type apiInstance struct {
	client *httpclient.Client
	id     string

	mu       sync.Mutex
	token    string
	consumed bool
	cleared  bool
}

// Token returns the single-use proof. A second call fails; callers must
// re-initialize the manager for a fresh instance.
func (i *apiInstance) Token(ctx context.Context) (string, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.cleared {
		return "", fmt.Errorf("challenge instance already cleared")
	}
	if i.consumed {
		return "", fmt.Errorf("challenge proof already consumed")
	}

	i.consumed = true
	return i.token, nil
}

// Clear releases the provider-side challenge. Idempotent.
func (i *apiInstance) Clear() error {
	i.mu.Lock()
	if i.cleared {
		i.mu.Unlock()
		return nil
	}
	i.cleared = true
	i.mu.Unlock()

	_, err := i.client.PostJSON(context.Background(), "/v1/challenges/"+i.id+"/clear", nil, nil)
	if err != nil {
		return fmt.Errorf("failed to clear challenge %s: %w", i.id, err)
	}
	return nil
}
