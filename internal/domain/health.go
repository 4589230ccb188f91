package domain

// HealthInfo is the payload of the backend's health endpoint.
type HealthInfo struct {
	Status         string `json:"status"`
	BankName       string `json:"bank_name"`
	TotalAccounts  int    `json:"total_accounts"`
	TotalCustomers int    `json:"total_customers"`
}

func (h HealthInfo) Healthy() bool {
	return h.Status == "healthy"
}
