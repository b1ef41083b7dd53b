// Package filter evaluates players against the console's composite filter
// object. All dimensions are AND-combined; array-valued dimensions are OR
// within themselves. Filtering is pure, stable and never reorders input.
package filter

import (
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/ashkanani/agency/internal/domain"
	"github.com/ashkanani/agency/internal/format"
)

// daysPerYear is used only for total contract length classification.
const daysPerYear = 365.25

// oneYearBucketMax: a contract of up to 1.1 years still counts as a
// one-year deal (season contracts routinely run a few weeks over).
const oneYearBucketMax = 1.1

// Engine filters player collections. The injected clock pins "now" for
// age and remaining-duration dimensions.
type Engine struct {
	clock clockwork.Clock
}

// NewEngine returns an engine evaluating time-dependent dimensions
// against the given clock.
func NewEngine(clock clockwork.Clock) *Engine {
	return &Engine{clock: clock}
}

// FilterPlayers returns the players satisfying every set dimension of f,
// in their original order. Contracts are only consulted when a
// contract-derived dimension is present; a player with no contract in the
// supplied collection is then excluded outright.
func (e *Engine) FilterPlayers(players []domain.Player, f domain.PlayerFilters, contracts []domain.Contract) []domain.Player {
	now := e.clock.Now()
	needContract := f.HasContractDimensions()

	var out []domain.Player
	for _, p := range players {
		if !e.matchPlayer(p, f, now) {
			continue
		}
		if needContract {
			c := firstContractFor(contracts, p.ID)
			if c == nil || !matchContract(*c, f, now) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

func (e *Engine) matchPlayer(p domain.Player, f domain.PlayerFilters, now time.Time) bool {
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		if !matchSearch(p, term) {
			return false
		}
	}

	if len(f.Sports) > 0 && !contains(f.Sports, p.Sport) {
		return false
	}
	if len(f.Roles) > 0 && !contains(f.Roles, p.Role) {
		return false
	}
	if len(f.Nationalities) > 0 && !contains(f.Nationalities, p.Nationality) {
		return false
	}
	if len(f.Positions) > 0 && !contains(f.Positions, p.Position) {
		return false
	}
	if len(f.DealStatuses) > 0 && !contains(f.DealStatuses, p.DealStatus) {
		return false
	}
	if len(f.Clubs) > 0 && !contains(f.Clubs, p.Club) {
		return false
	}
	if len(f.PreferredFeet) > 0 && !contains(f.PreferredFeet, p.PreferredFoot) {
		return false
	}

	if f.AgeMin != nil || f.AgeMax != nil {
		if p.DateOfBirth.IsZero() {
			return false
		}
		age := format.Age(p.DateOfBirth, now)
		if f.AgeMin != nil && age < *f.AgeMin {
			return false
		}
		if f.AgeMax != nil && age > *f.AgeMax {
			return false
		}
	}

	if f.MarketValueMin != nil && p.MarketValue < *f.MarketValueMin {
		return false
	}
	if f.MarketValueMax != nil && p.MarketValue > *f.MarketValueMax {
		return false
	}

	if f.AgentID != "" && p.AgentID != f.AgentID {
		return false
	}

	return true
}

// matchSearch tests the normalized term against all six name/club/country
// fields; a hit on any one of them is enough. Localized fields are checked
// independently of their Latin counterparts.
func matchSearch(p domain.Player, term string) bool {
	for _, field := range []string{p.Name, p.NameAr, p.Club, p.ClubAr, p.Nationality, p.NationalityAr} {
		if field != "" && strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// firstContractFor picks the first contract in input order for the player.
// When a player holds several contracts the tie-break stays "first in
// array order" to match the console's historical behavior.
func firstContractFor(contracts []domain.Contract, playerID string) *domain.Contract {
	for i := range contracts {
		if contracts[i].PlayerID == playerID {
			return &contracts[i]
		}
	}
	return nil
}

func matchContract(c domain.Contract, f domain.PlayerFilters, now time.Time) bool {
	if len(f.ContractExpiryYears) > 0 {
		if c.EndDate.IsZero() || !contains(f.ContractExpiryYears, c.EndDate.Year()) {
			return false
		}
	}
	if len(f.ContractStartYears) > 0 {
		if c.StartDate.IsZero() || !contains(f.ContractStartYears, c.StartDate.Year()) {
			return false
		}
	}
	if len(f.ContractDurations) > 0 && !matchDuration(c, f.ContractDurations) {
		return false
	}
	if len(f.RemainingDurations) > 0 && !matchRemaining(c, f.RemainingDurations, now) {
		return false
	}
	if len(f.ContractTypes) > 0 && !contains(f.ContractTypes, c.Type) {
		return false
	}
	return true
}

func matchDuration(c domain.Contract, buckets []domain.DurationBucket) bool {
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return false
	}
	years := c.EndDate.Sub(c.StartDate).Hours() / (24 * daysPerYear)
	bucket := domain.DurationMoreThanYear
	if years <= oneYearBucketMax {
		bucket = domain.DurationOneYear
	}
	return contains(buckets, bucket)
}

// matchRemaining checks the requested buckets against the contract's
// remaining term. The buckets overlap on purpose: a contract three months
// from expiry is simultaneously within "6months", "1year" and "2years".
// All boundaries are inclusive, and anything already expired matches
// nothing.
func matchRemaining(c domain.Contract, buckets []domain.RemainingBucket, now time.Time) bool {
	if c.EndDate.IsZero() {
		return false
	}
	end := c.EndDate
	if end.Before(now) {
		return false
	}
	for _, b := range buckets {
		switch b {
		case domain.RemainingSixMonths:
			if !end.After(now.AddDate(0, 6, 0)) {
				return true
			}
		case domain.RemainingOneYear:
			if !end.After(now.AddDate(1, 0, 0)) {
				return true
			}
		case domain.RemainingTwoYears:
			if !end.After(now.AddDate(2, 0, 0)) {
				return true
			}
		case domain.RemainingMoreThanTwo:
			if end.After(now.AddDate(2, 0, 0)) {
				return true
			}
		}
	}
	return false
}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
