package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ashkanani/agency/internal/domain"
)

const agentColumns = `id, name, name_ar, email, phone, company, player_ids, created_at, updated_at`

type agentStore struct {
	pool *pgxpool.Pool
}

func (s *agentStore) Get(ctx context.Context, id string) (*domain.Agent, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+agentColumns+` FROM agents WHERE id = $1`, id)
	return scanAgent(row)
}

func (s *agentStore) List(ctx context.Context) ([]domain.Agent, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+agentColumns+` FROM agents ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query agents: %w", err)
	}
	defer rows.Close()

	var out []domain.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *agentStore) Create(ctx context.Context, a *domain.Agent) error {
	playerIDs, err := marshalJSON(a.PlayerIDs)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO agents (`+agentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.Name, a.NameAr, a.Email, a.Phone, a.Company, playerIDs,
		a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert agent: %w", err)
	}
	return nil
}

func (s *agentStore) Update(ctx context.Context, a *domain.Agent) error {
	playerIDs, err := marshalJSON(a.PlayerIDs)
	if err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, `
		UPDATE agents SET
			name = $2, name_ar = $3, email = $4, phone = $5, company = $6,
			player_ids = $7, updated_at = $8
		WHERE id = $1`,
		a.ID, a.Name, a.NameAr, a.Email, a.Phone, a.Company, playerIDs, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update agent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound("agent", a.ID)
	}
	return nil
}

func (s *agentStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM agents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete agent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound("agent", id)
	}
	return nil
}

func scanAgent(row pgx.Row) (*domain.Agent, error) {
	var a domain.Agent
	var playerIDs []byte
	err := row.Scan(&a.ID, &a.Name, &a.NameAr, &a.Email, &a.Phone, &a.Company,
		&playerIDs, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan agent: %w", err)
	}
	if err := unmarshalJSON(playerIDs, &a.PlayerIDs); err != nil {
		return nil, err
	}
	return &a, nil
}
