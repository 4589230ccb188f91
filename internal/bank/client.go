package bank

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bankprobe/internal/domain"
)

// Client executes requests against the Digital Bank API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a bank API client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    normalized,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// WithHTTPClient overrides the default http.Client. Primarily useful for testing.
func (c *Client) WithHTTPClient(httpClient *http.Client) {
	if httpClient != nil {
		c.httpClient = httpClient
	}
}

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New("bank base URL is required")
	}

	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid bank base URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid bank base URL: %s", raw)
	}

	parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	parsed.RawQuery = ""
	parsed.Fragment = ""

	return strings.TrimSuffix(parsed.String(), "/"), nil
}

// Health fetches the backend health summary.
func (c *Client) Health(ctx context.Context) (*domain.HealthInfo, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, fmt.Errorf("create health request: %w", err)
	}
	var out domain.HealthInfo
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAccountRequest is the payload for opening an account.
type CreateAccountRequest struct {
	FirstName      string             `json:"first_name"`
	LastName       string             `json:"last_name"`
	Email          string             `json:"email"`
	Phone          string             `json:"phone"`
	Address        domain.Address     `json:"address"`
	DateOfBirth    string             `json:"date_of_birth"`
	AccountType    domain.AccountType `json:"account_type"`
	InitialDeposit float64            `json:"initial_deposit"`
}

// CreateAccount opens a new account and returns its number.
func (c *Client) CreateAccount(ctx context.Context, r CreateAccountRequest) (domain.AccountNumber, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/accounts", r)
	if err != nil {
		return "", fmt.Errorf("create account request: %w", err)
	}
	var out struct {
		AccountNumber domain.AccountNumber `json:"account_number"`
	}
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	if out.AccountNumber == "" {
		return "", errors.New("create account response did not contain account number")
	}
	return out.AccountNumber, nil
}

// Account fetches one account with its transaction history.
func (c *Client) Account(ctx context.Context, number domain.AccountNumber) (*domain.Account, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/accounts/"+string(number), nil)
	if err != nil {
		return nil, fmt.Errorf("create account request: %w", err)
	}
	var out struct {
		Account domain.Account `json:"account"`
	}
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out.Account, nil
}

type amountPayload struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

// Deposit adds funds and returns the new balance.
func (c *Client) Deposit(ctx context.Context, number domain.AccountNumber, amount float64, description string) (float64, error) {
	return c.postAmount(ctx, "/api/accounts/"+string(number)+"/deposit", amountPayload{Amount: amount, Description: description})
}

// Withdraw removes funds and returns the new balance.
func (c *Client) Withdraw(ctx context.Context, number domain.AccountNumber, amount float64, description string) (float64, error) {
	return c.postAmount(ctx, "/api/accounts/"+string(number)+"/withdraw", amountPayload{Amount: amount, Description: description})
}

func (c *Client) postAmount(ctx context.Context, path string, p amountPayload) (float64, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, p)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	var out struct {
		NewBalance float64 `json:"new_balance"`
	}
	if err := c.do(req, &out); err != nil {
		return 0, err
	}
	return out.NewBalance, nil
}

// Transfer moves funds between two accounts.
func (c *Client) Transfer(ctx context.Context, from, to domain.AccountNumber, amount float64, description string) error {
	body := struct {
		ToAccount   domain.AccountNumber `json:"to_account"`
		Amount      float64              `json:"amount"`
		Description string               `json:"description,omitempty"`
	}{ToAccount: to, Amount: amount, Description: description}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/accounts/"+string(from)+"/transfer", body)
	if err != nil {
		return fmt.Errorf("create transfer request: %w", err)
	}
	return c.do(req, nil)
}

// Transactions lists an account's history for the past N days.
func (c *Client) Transactions(ctx context.Context, number domain.AccountNumber, days int) ([]domain.Transaction, error) {
	path := fmt.Sprintf("/api/accounts/%s/transactions?days=%d", number, days)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("create transactions request: %w", err)
	}
	var out struct {
		Transactions []domain.Transaction `json:"transactions"`
	}
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do runs the request and decodes the response into out. The backend
// wraps banking responses in a {"success": ..., "error": ...} envelope;
// a false envelope or a non-2xx status becomes an error.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("bank request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read bank response: %w", err)
	}

	var env struct {
		Success *bool  `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode bank response: %w", err)
	}
	if env.Success != nil && !*env.Success {
		if env.Error == "" {
			env.Error = resp.Status
		}
		return fmt.Errorf("bank API: %s", env.Error)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("bank API: unexpected status %s", resp.Status)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode bank response: %w", err)
		}
	}
	return nil
}
