package mockbank

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"bankprobe/internal/domain"
)

type Server struct {
	Logger *zap.Logger
	Bank   *Bank
}

func NewServer(l *zap.Logger, b *Bank) *Server {
	return &Server{Logger: l, Bank: b}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	// The real backend serves the health payload under /api/health; the
	// probe hits /health. Serve both.
	r.Get("/health", s.handleHealth)
	r.Get("/api/health", s.handleHealth)

	r.Post("/api/accounts", s.handleCreateAccount)
	r.Get("/api/accounts/{number}", s.handleGetAccount)
	r.Post("/api/accounts/{number}/deposit", s.handleDeposit)
	r.Post("/api/accounts/{number}/withdraw", s.handleWithdraw)
	r.Post("/api/accounts/{from}/transfer", s.handleTransfer)
	r.Get("/api/accounts/{number}/transactions", s.handleTransactions)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	accounts, customers := s.Bank.Totals()
	writeJSON(w, http.StatusOK, domain.HealthInfo{
		Status:         "healthy",
		BankName:       s.Bank.Name(),
		TotalAccounts:  accounts,
		TotalCustomers: customers,
	})
}

type createAccountPayload struct {
	FirstName      string             `json:"first_name"`
	LastName       string             `json:"last_name"`
	Email          string             `json:"email"`
	Phone          string             `json:"phone"`
	Address        domain.Address     `json:"address"`
	DateOfBirth    string             `json:"date_of_birth"`
	AccountType    domain.AccountType `json:"account_type"`
	InitialDeposit float64            `json:"initial_deposit"`
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var p createAccountPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.fail(w, http.StatusBadRequest, "bad payload")
		return
	}

	holder := domain.Person{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		Phone:       p.Phone,
		Address:     p.Address,
		DateOfBirth: p.DateOfBirth,
	}
	acct, err := s.Bank.CreateAccount(holder, p.AccountType, p.InitialDeposit)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	s.Logger.Info("account_created",
		zap.String("account_number", string(acct.AccountNumber)),
		zap.String("account_type", string(acct.AccountType)),
	)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"account_number": acct.AccountNumber,
		"message":        "Account created successfully",
	})
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	number := domain.AccountNumber(chi.URLParam(r, "number"))
	acct, err := s.Bank.Account(number)
	if err != nil {
		s.fail(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "account": acct})
}

type amountPayload struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

func (s *Server) handleDeposit(w http.ResponseWriter, r *http.Request) {
	s.handleAmountOp(w, r, s.Bank.Deposit, "Deposit successful")
}

func (s *Server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	s.handleAmountOp(w, r, s.Bank.Withdraw, "Withdrawal successful")
}

func (s *Server) handleAmountOp(w http.ResponseWriter, r *http.Request, op func(domain.AccountNumber, float64, string) (float64, error), msg string) {
	number := domain.AccountNumber(chi.URLParam(r, "number"))
	var p amountPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.fail(w, http.StatusBadRequest, "bad payload")
		return
	}

	balance, err := op(number, p.Amount, p.Description)
	if err != nil {
		s.fail(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true, "new_balance": balance, "message": msg,
	})
}

type transferPayload struct {
	ToAccount   domain.AccountNumber `json:"to_account"`
	Amount      float64              `json:"amount"`
	Description string               `json:"description"`
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	from := domain.AccountNumber(chi.URLParam(r, "from"))
	var p transferPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.fail(w, http.StatusBadRequest, "bad payload")
		return
	}

	if err := s.Bank.Transfer(from, p.ToAccount, p.Amount, p.Description); err != nil {
		s.fail(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Transfer successful"})
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	number := domain.AccountNumber(chi.URLParam(r, "number"))
	days := 30
	if v := r.URL.Query().Get("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			days = n
		}
	}

	txs, err := s.Bank.Transactions(number, days)
	if err != nil {
		s.fail(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "transactions": txs})
}

func (s *Server) fail(w http.ResponseWriter, code int, msg string) {
	s.Logger.Info("request_failed", zap.Int("status", code), zap.String("error", msg))
	writeJSON(w, code, map[string]any{"success": false, "error": msg})
}

func statusFor(err error) int {
	if errors.Is(err, ErrAccountNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
