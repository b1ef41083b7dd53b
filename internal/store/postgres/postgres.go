// Package postgres implements the store interfaces over pgx. Nested
// player structures (photos, documents, visibility, stats) live in jsonb
// columns; everything the filter engine touches is a plain column.
package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ashkanani/agency/internal/store"
)

// New returns a postgres-backed store bundle sharing one pool.
func New(pool *pgxpool.Pool) *store.Store {
	return &store.Store{
		Players:   &playerStore{pool: pool},
		Contracts: &contractStore{pool: pool},
		Agents:    &agentStore{pool: pool},
		Employees: &employeeStore{pool: pool},
		Finance:   &financeStore{pool: pool},
		Users:     &userStore{pool: pool},
	}
}

func marshalJSON(v interface{}) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb: %w", err)
	}
	return b, nil
}

func unmarshalJSON(data []byte, dst interface{}) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshal jsonb: %w", err)
	}
	return nil
}
