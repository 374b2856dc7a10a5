package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/webbasics/gin-examples/config"
)

// ErrAPINotConfigured is returned when the upstream base URL or secret key is missing.
var ErrAPINotConfigured = errors.New("animal API base URL or secret key not configured")

// AnimalAPI is the client for the external animal-data collaborator. The response
// body is treated as opaque JSON and passed through unmodified.
type AnimalAPI struct {
	baseURL string
	key     string
	client  *http.Client
}

// NewAnimalAPI builds a client from configuration. The timeout is always explicit;
// an upstream call never blocks a request indefinitely.
func NewAnimalAPI(cfg config.AppConfig) *AnimalAPI {
	timeout := time.Duration(cfg.APITimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AnimalAPI{
		baseURL: cfg.APIBaseURL,
		key:     cfg.APISecretKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// Fetch requests num animals from the upstream API.
func (a *AnimalAPI) Fetch(ctx context.Context, num int) ([]byte, error) {
	q := url.Values{}
	q.Set("num", strconv.Itoa(num))
	return a.get(ctx, q)
}

// FetchByID requests a single animal by its upstream identifier.
func (a *AnimalAPI) FetchByID(ctx context.Context, id string) ([]byte, error) {
	q := url.Values{}
	q.Set("num", "1")
	q.Set("id", id)
	return a.get(ctx, q)
}

func (a *AnimalAPI) get(ctx context.Context, q url.Values) ([]byte, error) {
	if a.baseURL == "" || a.key == "" {
		return nil, ErrAPINotConfigured
	}
	q.Set("key", a.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("animal API returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
