package service

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/ashkanani/agency/internal/domain"
	"github.com/ashkanani/agency/internal/format"
	"github.com/ashkanani/agency/internal/store"
)

// DashboardStats is the aggregate snapshot shown on the console home page.
type DashboardStats struct {
	TotalPlayers  int `json:"total_players"`
	PublicPlayers int `json:"public_players"`
	TotalAgents   int `json:"total_agents"`
	TotalStaff    int `json:"total_staff"`

	PlayersBySport    map[domain.Sport]int          `json:"players_by_sport"`
	ContractsByStatus map[domain.ContractStatus]int `json:"contracts_by_status"`
	ExpiringContracts int                           `json:"expiring_contracts"`

	TotalMarketValue   int64 `json:"total_market_value"`
	AverageMarketValue int64 `json:"average_market_value"`

	TotalIncome   int64 `json:"total_income"`
	TotalExpenses int64 `json:"total_expenses"`
	NetBalance    int64 `json:"net_balance"`
}

// DashboardService derives console statistics from the stores.
type DashboardService struct {
	store *store.Store
	clock clockwork.Clock
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(st *store.Store, clock clockwork.Clock) *DashboardService {
	return &DashboardService{store: st, clock: clock}
}

// Stats computes a fresh snapshot. Nothing is cached; the numbers are
// cheap to recompute against the store sizes this console deals with.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	now := s.clock.Now()

	players, err := s.store.Players.List(ctx)
	if err != nil {
		return nil, domain.ErrInternal("list players", err)
	}
	contracts, err := s.store.Contracts.List(ctx)
	if err != nil {
		return nil, domain.ErrInternal("list contracts", err)
	}
	agents, err := s.store.Agents.List(ctx)
	if err != nil {
		return nil, domain.ErrInternal("list agents", err)
	}
	employees, err := s.store.Employees.List(ctx)
	if err != nil {
		return nil, domain.ErrInternal("list employees", err)
	}
	records, err := s.store.Finance.List(ctx)
	if err != nil {
		return nil, domain.ErrInternal("list finance records", err)
	}

	stats := &DashboardStats{
		TotalPlayers:      len(players),
		TotalAgents:       len(agents),
		TotalStaff:        len(employees),
		PlayersBySport:    make(map[domain.Sport]int),
		ContractsByStatus: make(map[domain.ContractStatus]int),
	}

	for _, p := range players {
		if p.Public {
			stats.PublicPlayers++
		}
		stats.PlayersBySport[p.Sport]++
		stats.TotalMarketValue += p.MarketValue
	}
	if len(players) > 0 {
		stats.AverageMarketValue = stats.TotalMarketValue / int64(len(players))
	}

	for _, c := range contracts {
		stats.ContractsByStatus[c.Status]++
		if c.Status == domain.ContractActive && format.ExpiringSoon(c.EndDate, now) {
			stats.ExpiringContracts++
		}
	}

	for _, r := range records {
		switch r.Type {
		case domain.FinanceIncome:
			stats.TotalIncome += r.Amount
		case domain.FinanceExpense:
			stats.TotalExpenses += r.Amount
		}
	}
	stats.NetBalance = stats.TotalIncome - stats.TotalExpenses

	return stats, nil
}
