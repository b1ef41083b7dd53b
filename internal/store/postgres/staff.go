package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ashkanani/agency/internal/domain"
)

const employeeColumns = `id, name, name_ar, title, email, phone, salary, hire_date, active, created_at, updated_at`

type employeeStore struct {
	pool *pgxpool.Pool
}

func (s *employeeStore) Get(ctx context.Context, id string) (*domain.Employee, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
	return scanEmployee(row)
}

func (s *employeeStore) List(ctx context.Context) ([]domain.Employee, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+employeeColumns+` FROM employees ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	var out []domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (s *employeeStore) Create(ctx context.Context, e *domain.Employee) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO employees (`+employeeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		e.ID, e.Name, e.NameAr, e.Title, e.Email, e.Phone, e.Salary,
		e.HireDate, e.Active, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func (s *employeeStore) Update(ctx context.Context, e *domain.Employee) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE employees SET
			name = $2, name_ar = $3, title = $4, email = $5, phone = $6,
			salary = $7, hire_date = $8, active = $9, updated_at = $10
		WHERE id = $1`,
		e.ID, e.Name, e.NameAr, e.Title, e.Email, e.Phone, e.Salary,
		e.HireDate, e.Active, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound("employee", e.ID)
	}
	return nil
}

func (s *employeeStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound("employee", id)
	}
	return nil
}

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(&e.ID, &e.Name, &e.NameAr, &e.Title, &e.Email, &e.Phone,
		&e.Salary, &e.HireDate, &e.Active, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan employee: %w", err)
	}
	return &e, nil
}

const financeColumns = `id, type, amount, category, description, player_id, date, created_at, updated_at`

type financeStore struct {
	pool *pgxpool.Pool
}

func (s *financeStore) Get(ctx context.Context, id string) (*domain.FinancialRecord, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+financeColumns+` FROM financial_records WHERE id = $1`, id)
	return scanFinancialRecord(row)
}

func (s *financeStore) List(ctx context.Context) ([]domain.FinancialRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+financeColumns+` FROM financial_records ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query financial records: %w", err)
	}
	defer rows.Close()

	var out []domain.FinancialRecord
	for rows.Next() {
		r, err := scanFinancialRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func (s *financeStore) Create(ctx context.Context, r *domain.FinancialRecord) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO financial_records (`+financeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		r.ID, r.Type, r.Amount, r.Category, r.Description, r.PlayerID,
		r.Date, r.CreatedAt, r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert financial record: %w", err)
	}
	return nil
}

func (s *financeStore) Update(ctx context.Context, r *domain.FinancialRecord) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE financial_records SET
			type = $2, amount = $3, category = $4, description = $5,
			player_id = $6, date = $7, updated_at = $8
		WHERE id = $1`,
		r.ID, r.Type, r.Amount, r.Category, r.Description, r.PlayerID,
		r.Date, r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update financial record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound("financial record", r.ID)
	}
	return nil
}

func (s *financeStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM financial_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete financial record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound("financial record", id)
	}
	return nil
}

func scanFinancialRecord(row pgx.Row) (*domain.FinancialRecord, error) {
	var r domain.FinancialRecord
	err := row.Scan(&r.ID, &r.Type, &r.Amount, &r.Category, &r.Description,
		&r.PlayerID, &r.Date, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan financial record: %w", err)
	}
	return &r, nil
}

const userColumns = `id, email, password_hash, name, role, agent_id, active, created_at, updated_at`

type userStore struct {
	pool *pgxpool.Pool
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := s.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		strings.ToLower(email)).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.AgentID,
		&u.Active, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

func (s *userStore) Create(ctx context.Context, u *domain.User) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, strings.ToLower(u.Email), u.PasswordHash, u.Name, u.Role,
		u.AgentID, u.Active, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}
