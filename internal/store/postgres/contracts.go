package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ashkanani/agency/internal/domain"
)

const contractColumns = `id, player_id, player_name, agent_id, type, start_date, end_date,
	annual_salary, signing_bonus, status, file_url, notes, notes_ar, visible, created_at, updated_at`

type contractStore struct {
	pool *pgxpool.Pool
}

func (s *contractStore) Get(ctx context.Context, id string) (*domain.Contract, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+contractColumns+` FROM contracts WHERE id = $1`, id)
	return scanContract(row)
}

func (s *contractStore) List(ctx context.Context) ([]domain.Contract, error) {
	return s.list(ctx, `SELECT `+contractColumns+` FROM contracts ORDER BY created_at, id`)
}

func (s *contractStore) ListByPlayer(ctx context.Context, playerID string) ([]domain.Contract, error) {
	return s.list(ctx,
		`SELECT `+contractColumns+` FROM contracts WHERE player_id = $1 ORDER BY created_at, id`,
		playerID)
}

func (s *contractStore) list(ctx context.Context, query string, args ...interface{}) ([]domain.Contract, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query contracts: %w", err)
	}
	defer rows.Close()

	var out []domain.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (s *contractStore) Create(ctx context.Context, c *domain.Contract) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO contracts (`+contractColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		c.ID, c.PlayerID, c.PlayerName, c.AgentID, c.Type, c.StartDate, c.EndDate,
		c.AnnualSalary, c.SigningBonus, c.Status, c.FileURL, c.Notes, c.NotesAr,
		c.Visible, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

func (s *contractStore) Update(ctx context.Context, c *domain.Contract) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE contracts SET
			player_id = $2, player_name = $3, agent_id = $4, type = $5, start_date = $6,
			end_date = $7, annual_salary = $8, signing_bonus = $9, status = $10,
			file_url = $11, notes = $12, notes_ar = $13, visible = $14, updated_at = $15
		WHERE id = $1`,
		c.ID, c.PlayerID, c.PlayerName, c.AgentID, c.Type, c.StartDate, c.EndDate,
		c.AnnualSalary, c.SigningBonus, c.Status, c.FileURL, c.Notes, c.NotesAr,
		c.Visible, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound("contract", c.ID)
	}
	return nil
}

func (s *contractStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound("contract", id)
	}
	return nil
}

func scanContract(row pgx.Row) (*domain.Contract, error) {
	var c domain.Contract
	err := row.Scan(
		&c.ID, &c.PlayerID, &c.PlayerName, &c.AgentID, &c.Type, &c.StartDate, &c.EndDate,
		&c.AnnualSalary, &c.SigningBonus, &c.Status, &c.FileURL, &c.Notes, &c.NotesAr,
		&c.Visible, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan contract: %w", err)
	}
	return &c, nil
}
