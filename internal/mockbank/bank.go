package mockbank

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"bankprobe/internal/domain"
)

// Error messages match the real backend so the client sees identical text.
var (
	ErrAccountNotFound   = errors.New("Account not found")
	ErrInsufficientFunds = errors.New("Insufficient funds")
	ErrInactiveAccount   = errors.New("Account is not active")
)

var interestRates = map[domain.AccountType]float64{
	domain.AccountSavings:  0.02,
	domain.AccountChecking: 0.001,
	domain.AccountBusiness: 0.015,
	domain.AccountStudent:  0.025,
}

// Bank is an in-memory stand-in for the Digital Bank backend, used by
// cmd/mockbank for local development.
type Bank struct {
	mu            sync.RWMutex
	name          string
	routingNumber string
	accounts      map[domain.AccountNumber]*domain.Account
	customers     map[string]domain.Person
}

func NewBank(name, routingNumber string) *Bank {
	return &Bank{
		name:          name,
		routingNumber: routingNumber,
		accounts:      make(map[domain.AccountNumber]*domain.Account),
		customers:     make(map[string]domain.Person),
	}
}

func (b *Bank) Name() string { return b.name }

// Totals reports account and customer counts for the health payload.
func (b *Bank) Totals() (accounts, customers int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.accounts), len(b.customers)
}

func (b *Bank) CreateAccount(holder domain.Person, typ domain.AccountType, initialDeposit float64) (*domain.Account, error) {
	if initialDeposit < 0 {
		return nil, errors.New("Initial deposit cannot be negative")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	rate, ok := interestRates[typ]
	if !ok {
		rate = 0.01
	}
	acct := &domain.Account{
		AccountNumber: b.nextAccountNumber(),
		AccountHolder: holder,
		AccountType:   typ,
		Balance:       initialDeposit,
		InterestRate:  rate,
		IsActive:      true,
		DateOpened:    time.Now().UTC(),
		Transactions:  []domain.Transaction{},
	}
	b.accounts[acct.AccountNumber] = acct
	b.customers[holder.Email] = holder

	cp := *acct
	return &cp, nil
}

// Account returns a snapshot of one account, history included.
func (b *Bank) Account(number domain.AccountNumber) (*domain.Account, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	acct, ok := b.accounts[number]
	if !ok {
		return nil, ErrAccountNotFound
	}
	cp := *acct
	cp.Transactions = append([]domain.Transaction(nil), acct.Transactions...)
	return &cp, nil
}

func (b *Bank) Deposit(number domain.AccountNumber, amount float64, description string) (float64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.deposit(number, amount, description)
}

func (b *Bank) Withdraw(number domain.AccountNumber, amount float64, description string) (float64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.withdraw(number, amount, description)
}

// Transfer records a withdrawal on the source and a deposit on the
// destination, both under one lock so the two sides can't be observed apart.
func (b *Bank) Transfer(from, to domain.AccountNumber, amount float64, description string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.accounts[from]; !ok {
		return errors.New("Source account not found")
	}
	if _, ok := b.accounts[to]; !ok {
		return errors.New("Destination account not found")
	}

	if _, err := b.withdraw(from, amount, fmt.Sprintf("Transfer to %s", to)); err != nil {
		return err
	}
	if _, err := b.deposit(to, amount, fmt.Sprintf("Transfer from %s", from)); err != nil {
		// Roll the withdrawal back so a failed deposit doesn't lose money.
		acct := b.accounts[from]
		acct.Balance += amount
		return err
	}
	return nil
}

// Transactions lists an account's history within the past `days` days.
func (b *Bank) Transactions(number domain.AccountNumber, days int) ([]domain.Transaction, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	acct, ok := b.accounts[number]
	if !ok {
		return nil, ErrAccountNotFound
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	out := make([]domain.Transaction, 0, len(acct.Transactions))
	for _, tx := range acct.Transactions {
		if !tx.Timestamp.Before(cutoff) {
			out = append(out, tx)
		}
	}
	return out, nil
}

// deposit and withdraw assume b.mu is held.

func (b *Bank) deposit(number domain.AccountNumber, amount float64, description string) (float64, error) {
	acct, ok := b.accounts[number]
	if !ok {
		return 0, ErrAccountNotFound
	}
	if amount <= 0 {
		return 0, errors.New("Deposit amount must be positive")
	}
	if !acct.IsActive {
		return 0, ErrInactiveAccount
	}

	acct.Balance += amount
	acct.Transactions = append(acct.Transactions, b.newTransaction(number, domain.TxDeposit, amount, description))
	return acct.Balance, nil
}

func (b *Bank) withdraw(number domain.AccountNumber, amount float64, description string) (float64, error) {
	acct, ok := b.accounts[number]
	if !ok {
		return 0, ErrAccountNotFound
	}
	if amount <= 0 {
		return 0, errors.New("Withdrawal amount must be positive")
	}
	if !acct.IsActive {
		return 0, ErrInactiveAccount
	}
	if amount > acct.Balance {
		return 0, ErrInsufficientFunds
	}

	acct.Balance -= amount
	acct.Transactions = append(acct.Transactions, b.newTransaction(number, domain.TxWithdrawal, amount, description))
	return acct.Balance, nil
}

func (b *Bank) newTransaction(number domain.AccountNumber, typ domain.TransactionType, amount float64, description string) domain.Transaction {
	now := time.Now().UTC()
	return domain.Transaction{
		TransactionID: fmt.Sprintf("TXN%s%04d", now.Format("20060102150405"), rand.Intn(10000)),
		AccountNumber: number,
		Type:          typ,
		Amount:        amount,
		Description:   description,
		Timestamp:     now,
		Status:        "completed",
	}
}

func (b *Bank) nextAccountNumber() domain.AccountNumber {
	for {
		n := domain.AccountNumber(fmt.Sprintf("%08d", 10000000+rand.Intn(90000000)))
		if _, taken := b.accounts[n]; !taken {
			return n
		}
	}
}
