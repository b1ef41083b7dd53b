// Package store defines the persistence boundary. The console's data
// lives behind these interfaces; the memory driver carries the reference
// semantics and the postgres driver persists the same shapes.
package store

import (
	"context"

	"github.com/ashkanani/agency/internal/domain"
)

// PlayerStore provides access to player records.
// Get returns (nil, nil) when the id is unknown.
type PlayerStore interface {
	Get(ctx context.Context, id string) (*domain.Player, error)
	List(ctx context.Context) ([]domain.Player, error)
	Create(ctx context.Context, p *domain.Player) error
	Update(ctx context.Context, p *domain.Player) error
	Delete(ctx context.Context, id string) error
}

// ContractStore provides access to contract records.
type ContractStore interface {
	Get(ctx context.Context, id string) (*domain.Contract, error)
	List(ctx context.Context) ([]domain.Contract, error)
	ListByPlayer(ctx context.Context, playerID string) ([]domain.Contract, error)
	Create(ctx context.Context, c *domain.Contract) error
	Update(ctx context.Context, c *domain.Contract) error
	Delete(ctx context.Context, id string) error
}

// AgentStore provides access to agent records.
type AgentStore interface {
	Get(ctx context.Context, id string) (*domain.Agent, error)
	List(ctx context.Context) ([]domain.Agent, error)
	Create(ctx context.Context, a *domain.Agent) error
	Update(ctx context.Context, a *domain.Agent) error
	Delete(ctx context.Context, id string) error
}

// EmployeeStore provides access to agency staff records.
type EmployeeStore interface {
	Get(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Create(ctx context.Context, e *domain.Employee) error
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id string) error
}

// FinanceStore provides access to the agency ledger.
type FinanceStore interface {
	Get(ctx context.Context, id string) (*domain.FinancialRecord, error)
	List(ctx context.Context) ([]domain.FinancialRecord, error)
	Create(ctx context.Context, r *domain.FinancialRecord) error
	Update(ctx context.Context, r *domain.FinancialRecord) error
	Delete(ctx context.Context, id string) error
}

// UserStore provides access to console accounts.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

// Store bundles every entity store behind one injection point.
type Store struct {
	Players   PlayerStore
	Contracts ContractStore
	Agents    AgentStore
	Employees EmployeeStore
	Finance   FinanceStore
	Users     UserStore
}
