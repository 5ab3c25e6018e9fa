package domain

import "time"

// ComparisonRecord is the stored summary of one comparison run.
type ComparisonRecord struct {
	ID               string    `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	Amount           float64   `json:"amount"`
	TenureMonths     int       `json:"tenure_months"`
	RegularBank      BankID    `json:"regular_bank"`
	OverdraftBank    BankID    `json:"overdraft_bank"`
	RegularRate      float64   `json:"regular_rate"`
	OverdraftRate    float64   `json:"overdraft_rate"`
	RegularNetCost   float64   `json:"regular_net_cost"`
	OverdraftNetCost float64   `json:"overdraft_net_cost"`
	NetSavings       float64   `json:"net_savings"`
	Cheaper          LoanKind  `json:"cheaper"`
}
