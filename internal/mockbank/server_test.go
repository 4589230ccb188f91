package mockbank

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"bankprobe/internal/domain"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := NewServer(zap.NewNop(), NewBank("Digital Bank", "123456789"))
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(payload)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func createAccount(t *testing.T, ts *httptest.Server, deposit float64) domain.AccountNumber {
	t.Helper()
	resp := postJSON(t, ts.URL+"/api/accounts", map[string]any{
		"first_name": "Ada", "last_name": "Lovelace",
		"email": "ada@example.com", "phone": "555-0100",
		"address": map[string]string{
			"street": "1 Analytical Way", "city": "London", "state": "LN", "zip_code": "00001",
		},
		"date_of_birth": "1815-12-10",
		"account_type":  "savings", "initial_deposit": deposit,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create account: want 200, got %d", resp.StatusCode)
	}
	var out struct {
		Success       bool                 `json:"success"`
		AccountNumber domain.AccountNumber `json:"account_number"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode create resp: %v", err)
	}
	if !out.Success || out.AccountNumber == "" {
		t.Fatalf("bad create response: %+v", out)
	}
	return out.AccountNumber
}

func TestHealth_CountsAccountsAndCustomers(t *testing.T) {
	ts := setupServer(t)

	createAccount(t, ts, 100)

	for _, path := range []string{"/health", "/api/health"} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		var h domain.HealthInfo
		if err := json.NewDecoder(resp.Body).Decode(&h); err != nil {
			t.Fatalf("decode health: %v", err)
		}
		resp.Body.Close()
		if !h.Healthy() || h.BankName != "Digital Bank" || h.TotalAccounts != 1 || h.TotalCustomers != 1 {
			t.Fatalf("unexpected health at %s: %+v", path, h)
		}
	}
}

func TestDepositWithdraw_Flow(t *testing.T) {
	ts := setupServer(t)
	num := createAccount(t, ts, 100)

	resp := postJSON(t, ts.URL+"/api/accounts/"+string(num)+"/deposit", map[string]any{"amount": 50.0})
	var dep struct {
		Success    bool    `json:"success"`
		NewBalance float64 `json:"new_balance"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&dep); err != nil {
		t.Fatalf("decode deposit: %v", err)
	}
	resp.Body.Close()
	if !dep.Success || dep.NewBalance != 150 {
		t.Fatalf("deposit: %+v", dep)
	}

	// Overdraw must be rejected with the backend's message.
	resp = postJSON(t, ts.URL+"/api/accounts/"+string(num)+"/withdraw", map[string]any{"amount": 1000.0})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("overdraw: want 400, got %d", resp.StatusCode)
	}
	var fail struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&fail); err != nil {
		t.Fatalf("decode overdraw: %v", err)
	}
	resp.Body.Close()
	if fail.Success || fail.Error != "Insufficient funds" {
		t.Fatalf("overdraw envelope: %+v", fail)
	}

	// Negative amounts are rejected too.
	resp = postJSON(t, ts.URL+"/api/accounts/"+string(num)+"/deposit", map[string]any{"amount": -5.0})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("negative deposit: want 400, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestTransfer_MovesFundsAndRecordsHistory(t *testing.T) {
	ts := setupServer(t)
	src := createAccount(t, ts, 200)
	dst := createAccount(t, ts, 0)

	resp := postJSON(t, ts.URL+"/api/accounts/"+string(src)+"/transfer", map[string]any{
		"to_account": dst, "amount": 75.0, "description": "rent",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("transfer: want 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	getBalance := func(n domain.AccountNumber) float64 {
		r, err := http.Get(ts.URL + "/api/accounts/" + string(n))
		if err != nil {
			t.Fatalf("GET account: %v", err)
		}
		defer r.Body.Close()
		var out struct {
			Account domain.Account `json:"account"`
		}
		if err := json.NewDecoder(r.Body).Decode(&out); err != nil {
			t.Fatalf("decode account: %v", err)
		}
		return out.Account.Balance
	}
	if got := getBalance(src); got != 125 {
		t.Fatalf("source balance: want 125, got %v", got)
	}
	if got := getBalance(dst); got != 75 {
		t.Fatalf("destination balance: want 75, got %v", got)
	}

	r, err := http.Get(ts.URL + "/api/accounts/" + string(dst) + "/transactions?days=7")
	if err != nil {
		t.Fatalf("GET transactions: %v", err)
	}
	defer r.Body.Close()
	var hist struct {
		Transactions []domain.Transaction `json:"transactions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&hist); err != nil {
		t.Fatalf("decode transactions: %v", err)
	}
	if len(hist.Transactions) != 1 || hist.Transactions[0].Type != domain.TxDeposit {
		t.Fatalf("unexpected history: %+v", hist.Transactions)
	}
}

func TestGetAccount_UnknownIs404(t *testing.T) {
	ts := setupServer(t)
	resp, err := http.Get(ts.URL + "/api/accounts/00000000")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}
