package domain

import "time"

type AccountNumber string

// AccountType mirrors the backend's account categories. The string values
// travel over the wire in both requests and responses.
type AccountType string

const (
	AccountSavings  AccountType = "savings"
	AccountChecking AccountType = "checking"
	AccountBusiness AccountType = "business"
	AccountStudent  AccountType = "student"
)

type TransactionType string

const (
	TxDeposit    TransactionType = "deposit"
	TxWithdrawal TransactionType = "withdrawal"
	TxTransfer   TransactionType = "transfer"
	TxInterest   TransactionType = "interest"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country,omitempty"`
}

type Person struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     Address `json:"address"`
	DateOfBirth string  `json:"date_of_birth"`
}

func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

type Transaction struct {
	TransactionID string          `json:"transaction_id"`
	AccountNumber AccountNumber   `json:"account_number"`
	Type          TransactionType `json:"transaction_type"`
	Amount        float64         `json:"amount"`
	Description   string          `json:"description"`
	Timestamp     time.Time       `json:"timestamp"`
	Status        string          `json:"status"`
}

type Account struct {
	AccountNumber AccountNumber `json:"account_number"`
	AccountHolder Person        `json:"account_holder"`
	AccountType   AccountType   `json:"account_type"`
	Balance       float64       `json:"balance"`
	InterestRate  float64       `json:"interest_rate"`
	IsActive      bool          `json:"is_active"`
	DateOpened    time.Time     `json:"date_opened"`
	Transactions  []Transaction `json:"transactions"`
}
