package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ashkanani/agency/internal/domain"
)

const playerColumns = `id, name, name_ar, sport, role, nationality, nationality_ar,
	date_of_birth, position, club, club_ar, market_value, preferred_foot, deal_status,
	height_cm, weight_kg, previous_clubs, jersey_number, agent_id, agent_name,
	photos, documents, stats, achievements, visibility, public, created_at, updated_at`

type playerStore struct {
	pool *pgxpool.Pool
}

func (s *playerStore) Get(ctx context.Context, id string) (*domain.Player, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+playerColumns+` FROM players WHERE id = $1`, id)
	return scanPlayer(row)
}

func (s *playerStore) List(ctx context.Context) ([]domain.Player, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+playerColumns+` FROM players ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	var out []domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (s *playerStore) Create(ctx context.Context, p *domain.Player) error {
	args, err := playerArgs(p)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO players (`+playerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)`,
		args...)
	if err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

func (s *playerStore) Update(ctx context.Context, p *domain.Player) error {
	args, err := playerArgs(p)
	if err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, `
		UPDATE players SET
			name = $2, name_ar = $3, sport = $4, role = $5, nationality = $6,
			nationality_ar = $7, date_of_birth = $8, position = $9, club = $10,
			club_ar = $11, market_value = $12, preferred_foot = $13, deal_status = $14,
			height_cm = $15, weight_kg = $16, previous_clubs = $17, jersey_number = $18,
			agent_id = $19, agent_name = $20, photos = $21, documents = $22, stats = $23,
			achievements = $24, visibility = $25, public = $26, created_at = $27, updated_at = $28
		WHERE id = $1`,
		args...)
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound("player", p.ID)
	}
	return nil
}

func (s *playerStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound("player", id)
	}
	return nil
}

func playerArgs(p *domain.Player) ([]interface{}, error) {
	previousClubs, err := marshalJSON(p.PreviousClubs)
	if err != nil {
		return nil, err
	}
	photos, err := marshalJSON(p.Photos)
	if err != nil {
		return nil, err
	}
	documents, err := marshalJSON(p.Documents)
	if err != nil {
		return nil, err
	}
	var stats []byte
	if p.Stats != nil {
		if stats, err = marshalJSON(p.Stats); err != nil {
			return nil, err
		}
	}
	achievements, err := marshalJSON(p.Achievements)
	if err != nil {
		return nil, err
	}
	visibility, err := marshalJSON(p.Visibility)
	if err != nil {
		return nil, err
	}

	return []interface{}{
		p.ID, p.Name, p.NameAr, p.Sport, p.Role, p.Nationality, p.NationalityAr,
		p.DateOfBirth, p.Position, p.Club, p.ClubAr, p.MarketValue, p.PreferredFoot,
		p.DealStatus, p.HeightCm, p.WeightKg, previousClubs, p.JerseyNumber,
		p.AgentID, p.AgentName, photos, documents, stats, achievements, visibility,
		p.Public, p.CreatedAt, p.UpdatedAt,
	}, nil
}

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	var previousClubs, photos, documents, stats, achievements, visibility []byte

	err := row.Scan(
		&p.ID, &p.Name, &p.NameAr, &p.Sport, &p.Role, &p.Nationality, &p.NationalityAr,
		&p.DateOfBirth, &p.Position, &p.Club, &p.ClubAr, &p.MarketValue, &p.PreferredFoot,
		&p.DealStatus, &p.HeightCm, &p.WeightKg, &previousClubs, &p.JerseyNumber,
		&p.AgentID, &p.AgentName, &photos, &documents, &stats, &achievements, &visibility,
		&p.Public, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan player: %w", err)
	}

	if err := unmarshalJSON(previousClubs, &p.PreviousClubs); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(photos, &p.Photos); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(documents, &p.Documents); err != nil {
		return nil, err
	}
	if len(stats) > 0 {
		p.Stats = &domain.PlayerStats{}
		if err := unmarshalJSON(stats, p.Stats); err != nil {
			return nil, err
		}
	}
	if err := unmarshalJSON(achievements, &p.Achievements); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(visibility, &p.Visibility); err != nil {
		return nil, err
	}

	return &p, nil
}
