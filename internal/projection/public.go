// Package projection derives the reduced public view of a player.
//
// Fields are allow-listed rather than deny-listed: every optionally
// sensitive attribute must have its visibility flag set for it to appear,
// so the projection fails closed when a new field is added to Player.
package projection

import (
	"github.com/jonboulle/clockwork"

	"github.com/ashkanani/agency/internal/domain"
	"github.com/ashkanani/agency/internal/format"
)

// Projector maps full player records to their public view.
type Projector struct {
	clock clockwork.Clock
}

// NewProjector returns a projector that evaluates ages against the given
// clock.
func NewProjector(clock clockwork.Clock) *Projector {
	return &Projector{clock: clock}
}

// Project returns the role-appropriate public view of p. It never mutates
// its input and never fails: absent optional fields are simply omitted.
func (pr *Projector) Project(p domain.Player) domain.PublicPlayer {
	out := domain.PublicPlayer{
		ID:            p.ID,
		Name:          p.Name,
		NameAr:        p.NameAr,
		Sport:         p.Sport,
		NationalityAr: localizeCountry(p.Nationality, p.NationalityAr),
		ClubAr:        localizeClub(p.Club, p.ClubAr),
	}

	v := p.Visibility
	if v.Nationality {
		out.Nationality = ptr(p.Nationality)
	}
	if v.Age && !p.DateOfBirth.IsZero() {
		out.Age = ptr(format.Age(p.DateOfBirth, pr.clock.Now()))
	}
	if v.Position && p.Position != "" {
		out.Position = ptr(p.Position)
	}
	if v.Club && p.Club != "" {
		out.Club = ptr(p.Club)
	}
	if v.MarketValue {
		out.MarketValue = ptr(p.MarketValue)
	}
	if v.PreferredFoot && p.PreferredFoot != "" {
		out.PreferredFoot = ptr(p.PreferredFoot)
	}
	if v.Height && p.HeightCm > 0 {
		out.HeightCm = ptr(p.HeightCm)
	}
	if v.Weight && p.WeightKg > 0 {
		out.WeightKg = ptr(p.WeightKg)
	}
	if v.PreviousClubs && len(p.PreviousClubs) > 0 {
		out.PreviousClubs = append([]string(nil), p.PreviousClubs...)
	}
	if v.DealStatus && p.DealStatus != "" {
		out.DealStatus = ptr(p.DealStatus)
	}
	if v.Achievements && len(p.Achievements) > 0 {
		out.Achievements = append([]string(nil), p.Achievements...)
	}
	if v.Stats && p.Stats != nil {
		stats := *p.Stats
		out.Stats = &stats
	}
	if v.Photos {
		if main := p.MainPhoto(); main != nil {
			out.Photos = []domain.Photo{*main}
		}
	}

	return out
}

func ptr[T any](v T) *T { return &v }
