// Package memory implements the store interfaces over mutex-guarded maps.
// It is the default driver and stands in for the console's original mock
// arrays: insertion order is preserved and reads return copies so callers
// can never reach the store's own records.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/ashkanani/agency/internal/domain"
	"github.com/ashkanani/agency/internal/store"
)

// New returns an empty in-memory store bundle.
func New() *store.Store {
	return &store.Store{
		Players:   &playerStore{records: map[string]domain.Player{}},
		Contracts: &contractStore{records: map[string]domain.Contract{}},
		Agents:    &agentStore{records: map[string]domain.Agent{}},
		Employees: &employeeStore{records: map[string]domain.Employee{}},
		Finance:   &financeStore{records: map[string]domain.FinancialRecord{}},
		Users:     &userStore{records: map[string]domain.User{}},
	}
}

// --- players ---

type playerStore struct {
	mu      sync.RWMutex
	order   []string
	records map[string]domain.Player
}

func (s *playerStore) Get(_ context.Context, id string) (*domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	cp := clonePlayer(p)
	return &cp, nil
}

func (s *playerStore) List(_ context.Context) ([]domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Player, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, clonePlayer(s.records[id]))
	}
	return out, nil
}

func (s *playerStore) Create(_ context.Context, p *domain.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[p.ID]; exists {
		return domain.ErrConflict("player id already exists: " + p.ID)
	}
	s.records[p.ID] = clonePlayer(*p)
	s.order = append(s.order, p.ID)
	return nil
}

func (s *playerStore) Update(_ context.Context, p *domain.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[p.ID]; !exists {
		return domain.ErrNotFound("player", p.ID)
	}
	s.records[p.ID] = clonePlayer(*p)
	return nil
}

func (s *playerStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[id]; !exists {
		return domain.ErrNotFound("player", id)
	}
	delete(s.records, id)
	s.order = remove(s.order, id)
	return nil
}

// --- contracts ---

type contractStore struct {
	mu      sync.RWMutex
	order   []string
	records map[string]domain.Contract
}

func (s *contractStore) Get(_ context.Context, id string) (*domain.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	cp := cloneContract(c)
	return &cp, nil
}

func (s *contractStore) List(_ context.Context) ([]domain.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Contract, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneContract(s.records[id]))
	}
	return out, nil
}

func (s *contractStore) ListByPlayer(_ context.Context, playerID string) ([]domain.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Contract
	for _, id := range s.order {
		if s.records[id].PlayerID == playerID {
			out = append(out, cloneContract(s.records[id]))
		}
	}
	return out, nil
}

func (s *contractStore) Create(_ context.Context, c *domain.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[c.ID]; exists {
		return domain.ErrConflict("contract id already exists: " + c.ID)
	}
	s.records[c.ID] = cloneContract(*c)
	s.order = append(s.order, c.ID)
	return nil
}

func (s *contractStore) Update(_ context.Context, c *domain.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[c.ID]; !exists {
		return domain.ErrNotFound("contract", c.ID)
	}
	s.records[c.ID] = cloneContract(*c)
	return nil
}

func (s *contractStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[id]; !exists {
		return domain.ErrNotFound("contract", id)
	}
	delete(s.records, id)
	s.order = remove(s.order, id)
	return nil
}

// --- agents ---

type agentStore struct {
	mu      sync.RWMutex
	order   []string
	records map[string]domain.Agent
}

func (s *agentStore) Get(_ context.Context, id string) (*domain.Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	cp := cloneAgent(a)
	return &cp, nil
}

func (s *agentStore) List(_ context.Context) ([]domain.Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Agent, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneAgent(s.records[id]))
	}
	return out, nil
}

func (s *agentStore) Create(_ context.Context, a *domain.Agent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[a.ID]; exists {
		return domain.ErrConflict("agent id already exists: " + a.ID)
	}
	s.records[a.ID] = cloneAgent(*a)
	s.order = append(s.order, a.ID)
	return nil
}

func (s *agentStore) Update(_ context.Context, a *domain.Agent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[a.ID]; !exists {
		return domain.ErrNotFound("agent", a.ID)
	}
	s.records[a.ID] = cloneAgent(*a)
	return nil
}

func (s *agentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[id]; !exists {
		return domain.ErrNotFound("agent", id)
	}
	delete(s.records, id)
	s.order = remove(s.order, id)
	return nil
}

// --- employees ---

type employeeStore struct {
	mu      sync.RWMutex
	order   []string
	records map[string]domain.Employee
}

func (s *employeeStore) Get(_ context.Context, id string) (*domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s *employeeStore) List(_ context.Context) ([]domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Employee, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out, nil
}

func (s *employeeStore) Create(_ context.Context, e *domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[e.ID]; exists {
		return domain.ErrConflict("employee id already exists: " + e.ID)
	}
	s.records[e.ID] = *e
	s.order = append(s.order, e.ID)
	return nil
}

func (s *employeeStore) Update(_ context.Context, e *domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[e.ID]; !exists {
		return domain.ErrNotFound("employee", e.ID)
	}
	s.records[e.ID] = *e
	return nil
}

func (s *employeeStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[id]; !exists {
		return domain.ErrNotFound("employee", id)
	}
	delete(s.records, id)
	s.order = remove(s.order, id)
	return nil
}

// --- finance ---

type financeStore struct {
	mu      sync.RWMutex
	order   []string
	records map[string]domain.FinancialRecord
}

func (s *financeStore) Get(_ context.Context, id string) (*domain.FinancialRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s *financeStore) List(_ context.Context) ([]domain.FinancialRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.FinancialRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out, nil
}

func (s *financeStore) Create(_ context.Context, r *domain.FinancialRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[r.ID]; exists {
		return domain.ErrConflict("finance record id already exists: " + r.ID)
	}
	s.records[r.ID] = *r
	s.order = append(s.order, r.ID)
	return nil
}

func (s *financeStore) Update(_ context.Context, r *domain.FinancialRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[r.ID]; !exists {
		return domain.ErrNotFound("finance record", r.ID)
	}
	s.records[r.ID] = *r
	return nil
}

func (s *financeStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[id]; !exists {
		return domain.ErrNotFound("finance record", id)
	}
	delete(s.records, id)
	s.order = remove(s.order, id)
	return nil
}

// --- users ---

type userStore struct {
	mu      sync.RWMutex
	records map[string]domain.User // keyed by lowercase email
}

func (s *userStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.records[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *userStore) Create(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(u.Email)
	if _, exists := s.records[key]; exists {
		return domain.ErrConflict("email already registered")
	}
	s.records[key] = *u
	return nil
}

// --- copy helpers ---

func clonePlayer(p domain.Player) domain.Player {
	p.PreviousClubs = append([]string(nil), p.PreviousClubs...)
	p.Photos = append([]domain.Photo(nil), p.Photos...)
	p.Documents = append([]domain.Document(nil), p.Documents...)
	p.Achievements = append([]string(nil), p.Achievements...)
	if p.JerseyNumber != nil {
		n := *p.JerseyNumber
		p.JerseyNumber = &n
	}
	if p.Stats != nil {
		st := *p.Stats
		p.Stats = &st
	}
	return p
}

func cloneContract(c domain.Contract) domain.Contract {
	if c.SigningBonus != nil {
		b := *c.SigningBonus
		c.SigningBonus = &b
	}
	return c
}

func cloneAgent(a domain.Agent) domain.Agent {
	a.PlayerIDs = append([]string(nil), a.PlayerIDs...)
	return a
}

func remove(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
