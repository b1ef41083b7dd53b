package domain

import (
	"fmt"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var validSports = map[Sport]bool{
	SportFootball:   true,
	SportBasketball: true,
	SportHandball:   true,
	SportVolleyball: true,
}

var validPositions = map[Position]bool{
	PositionGoalkeeper: true,
	PositionDefender:   true,
	PositionMidfielder: true,
	PositionForward:    true,
}

var validDealStatuses = map[DealStatus]bool{
	DealSigned:         true,
	DealFreeAgent:      true,
	DealTransferListed: true,
	DealNegotiation:    true,
}

var validContractTypes = map[ContractType]bool{
	ContractProfessional: true,
	ContractYouth:        true,
	ContractLoan:         true,
}

var validContractStatuses = map[ContractStatus]bool{
	ContractActive:      true,
	ContractPending:     true,
	ContractExpired:     true,
	ContractNegotiation: true,
}

// ValidateEmail checks if an email address is valid.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// Validate checks the fields an admin form must fill before a player
// record is accepted.
func (p *Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if !validSports[p.Sport] {
		return fmt.Errorf("invalid sport: %s", p.Sport)
	}
	if p.Role != RolePlayer && p.Role != RoleCoach {
		return fmt.Errorf("invalid role: %s", p.Role)
	}
	if p.Position != "" && !validPositions[p.Position] {
		return fmt.Errorf("invalid position: %s", p.Position)
	}
	if p.DealStatus != "" && !validDealStatuses[p.DealStatus] {
		return fmt.Errorf("invalid deal status: %s", p.DealStatus)
	}
	if p.PreferredFoot != "" && p.PreferredFoot != FootLeft && p.PreferredFoot != FootRight && p.PreferredFoot != FootBoth {
		return fmt.Errorf("invalid preferred foot: %s", p.PreferredFoot)
	}
	if p.MarketValue < 0 {
		return fmt.Errorf("market value must not be negative")
	}
	if mains := countMainPhotos(p.Photos); mains > 1 {
		return fmt.Errorf("at most one photo may be marked main, got %d", mains)
	}
	return nil
}

func countMainPhotos(photos []Photo) int {
	n := 0
	for _, ph := range photos {
		if ph.IsMain {
			n++
		}
	}
	return n
}

// Validate checks the fields a contract form must fill.
func (c *Contract) Validate() error {
	if c.PlayerID == "" {
		return fmt.Errorf("contract player is required")
	}
	if !validContractTypes[c.Type] {
		return fmt.Errorf("invalid contract type: %s", c.Type)
	}
	if c.Status != "" && !validContractStatuses[c.Status] {
		return fmt.Errorf("invalid contract status: %s", c.Status)
	}
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return fmt.Errorf("contract start and end dates are required")
	}
	if !c.EndDate.After(c.StartDate) {
		return fmt.Errorf("contract end date must be after start date")
	}
	if c.AnnualSalary < 0 {
		return fmt.Errorf("annual salary must not be negative")
	}
	return nil
}

// Validate checks the fields an agent form must fill.
func (a *Agent) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("agent name is required")
	}
	return ValidateEmail(a.Email)
}

// Validate checks the fields an employee form must fill.
func (e *Employee) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("employee name is required")
	}
	if e.Title == "" {
		return fmt.Errorf("employee title is required")
	}
	if err := ValidateEmail(e.Email); err != nil {
		return err
	}
	if e.Salary < 0 {
		return fmt.Errorf("salary must not be negative")
	}
	return nil
}

// Validate checks a finance ledger entry.
func (r *FinancialRecord) Validate() error {
	if r.Type != FinanceIncome && r.Type != FinanceExpense {
		return fmt.Errorf("invalid record type: %s", r.Type)
	}
	if r.Amount <= 0 {
		return fmt.Errorf("amount must be positive, got %d", r.Amount)
	}
	if r.Category == "" {
		return fmt.Errorf("category is required")
	}
	if r.Date.IsZero() {
		return fmt.Errorf("record date is required")
	}
	return nil
}
