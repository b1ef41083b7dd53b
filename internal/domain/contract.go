package domain

import "time"

// ContractType is the closed set of contract kinds the agency negotiates.
type ContractType string

const (
	ContractProfessional ContractType = "professional"
	ContractYouth        ContractType = "youth"
	ContractLoan         ContractType = "loan"
)

// ContractStatus tracks where a contract is in its lifecycle.
type ContractStatus string

const (
	ContractActive      ContractStatus = "active"
	ContractPending     ContractStatus = "pending"
	ContractExpired     ContractStatus = "expired"
	ContractNegotiation ContractStatus = "negotiation"
)

// Contract is an engagement between a player and a club.
// PlayerName is cached for display and can drift from the player record.
type Contract struct {
	ID           string         `json:"id"`
	PlayerID     string         `json:"player_id"`
	PlayerName   string         `json:"player_name,omitempty"`
	AgentID      string         `json:"agent_id,omitempty"`
	Type         ContractType   `json:"type"`
	StartDate    time.Time      `json:"start_date"`
	EndDate      time.Time      `json:"end_date"`
	AnnualSalary int64          `json:"annual_salary"`
	SigningBonus *int64         `json:"signing_bonus,omitempty"`
	Status       ContractStatus `json:"status"`
	FileURL      string         `json:"file_url,omitempty"`
	Notes        string         `json:"notes,omitempty"`
	NotesAr      string         `json:"notes_ar,omitempty"`
	Visible      bool           `json:"visible"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// Agent represents a licensed agent and the players assigned to them.
// The assignment list is one-directional; players only cache the agent's
// name/id pair, so the two sides can drift out of sync.
type Agent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NameAr    string    `json:"name_ar,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	PlayerIDs []string  `json:"player_ids,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
