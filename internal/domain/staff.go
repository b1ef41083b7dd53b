package domain

import "time"

// Employee is a member of the agency's own staff (not a represented player).
type Employee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NameAr    string    `json:"name_ar,omitempty"`
	Title     string    `json:"title"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Salary    int64     `json:"salary"`
	HireDate  time.Time `json:"hire_date"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FinanceType classifies a financial record.
type FinanceType string

const (
	FinanceIncome  FinanceType = "income"
	FinanceExpense FinanceType = "expense"
)

// FinancialRecord is a single income or expense entry in the agency ledger.
type FinancialRecord struct {
	ID          string      `json:"id"`
	Type        FinanceType `json:"type"`
	Amount      int64       `json:"amount"`
	Category    string      `json:"category"`
	Description string      `json:"description,omitempty"`
	PlayerID    string      `json:"player_id,omitempty"`
	Date        time.Time   `json:"date"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// User is a console account. Agents get an AgentID linking them to the
// agent record whose players they may see.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	AgentID      string    `json:"agent_id,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
