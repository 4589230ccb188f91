package probe

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// healthPath is fixed; only the base URL is configurable.
const healthPath = "/health"

// ErrPrefix starts every failure result, whatever the underlying cause.
const ErrPrefix = "Error connecting to API: "

// Runner performs a single connectivity probe and returns the display text.
type Runner interface {
	Run(ctx context.Context) string
}

// Prober checks reachability of the bank API by fetching its health endpoint.
// The base URL is set at construction and never changes afterwards.
type Prober struct {
	baseURL string
	Client  *http.Client
}

// New returns a Prober for the given base URL. The default client keeps the
// transport's own timeout behavior; set Client to override.
func New(baseURL string) *Prober {
	return &Prober{
		baseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{},
	}
}

func (p *Prober) BaseURL() string { return p.baseURL }

// Run issues one GET against <base>/health and returns either the response
// body pretty-printed as JSON, or an error message. It never retries and
// never returns an error value: any failure, transport or decode, becomes
// display text.
func (p *Prober) Run(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+healthPath, nil)
	if err != nil {
		return ErrPrefix + err.Error()
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return ErrPrefix + err.Error()
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ErrPrefix + err.Error()
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return ErrPrefix + err.Error()
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ErrPrefix + err.Error()
	}
	return string(out)
}
