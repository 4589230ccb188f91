package bank

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bankprobe/internal/domain"
)

func TestNormalizeBaseURL(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"http://localhost:10000", "http://localhost:10000", false},
		{"localhost:10000", "http://localhost:10000", false},
		{"https://bank.example.com/", "https://bank.example.com", false},
		{"https://bank.example.com/api/?q=1#f", "https://bank.example.com/api", false},
		{"", "", true},
		{"   ", "", true},
	}
	for _, c := range cases {
		got, err := normalizeBaseURL(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("normalizeBaseURL(%q): want error, got %q", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("normalizeBaseURL(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("normalizeBaseURL(%q)=%q want %q", c.in, got, c.want)
		}
	}
}

func TestClient_HealthAndDeposit(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/health":
			json.NewEncoder(w).Encode(domain.HealthInfo{
				Status: "healthy", BankName: "Digital Bank", TotalAccounts: 1, TotalCustomers: 1,
			})
		case r.Method == http.MethodPost && r.URL.Path == "/api/accounts/11112222/deposit":
			var p struct {
				Amount float64 `json:"amount"`
			}
			if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
				t.Errorf("decode deposit payload: %v", err)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"success": true, "new_balance": 100 + p.Amount, "message": "Deposit successful",
			})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	defer s.Close()

	c, err := NewClient(s.URL, 2*time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	h, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if !h.Healthy() || h.BankName != "Digital Bank" {
		t.Fatalf("unexpected health: %+v", h)
	}

	bal, err := c.Deposit(context.Background(), "11112222", 50, "rent")
	if err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if bal != 150 {
		t.Fatalf("want balance 150, got %v", bal)
	}
}

func TestClient_ErrorEnvelope(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Insufficient funds"})
	}))
	defer s.Close()

	c, err := NewClient(s.URL, 2*time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = c.Withdraw(context.Background(), "11112222", 1000, "")
	if err == nil {
		t.Fatal("want error from false envelope")
	}
	if !strings.Contains(err.Error(), "Insufficient funds") {
		t.Fatalf("want backend message in error, got %v", err)
	}
}

func TestClient_CreateAccountMissingNumber(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "ok"})
	}))
	defer s.Close()

	c, _ := NewClient(s.URL, time.Second)
	_, err := c.CreateAccount(context.Background(), CreateAccountRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		AccountType: domain.AccountSavings,
	})
	if err == nil {
		t.Fatal("want error when response lacks account number")
	}
}
