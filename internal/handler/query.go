package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ashkanani/agency/internal/domain"
)

// ParsePlayerFilters builds a PlayerFilters from list-endpoint query
// parameters. Array dimensions accept repeated parameters and
// comma-separated values interchangeably; absent parameters leave the
// dimension unset.
func ParsePlayerFilters(r *http.Request) (domain.PlayerFilters, error) {
	q := r.URL.Query()
	f := domain.PlayerFilters{
		Search:  q.Get("search"),
		AgentID: q.Get("agent_id"),
	}

	for _, v := range list(q, "sport") {
		f.Sports = append(f.Sports, domain.Sport(v))
	}
	for _, v := range list(q, "role") {
		f.Roles = append(f.Roles, domain.Role(v))
	}
	f.Nationalities = list(q, "nationality")
	for _, v := range list(q, "position") {
		f.Positions = append(f.Positions, domain.Position(v))
	}
	for _, v := range list(q, "deal_status") {
		f.DealStatuses = append(f.DealStatuses, domain.DealStatus(v))
	}
	f.Clubs = list(q, "club")
	for _, v := range list(q, "preferred_foot") {
		f.PreferredFeet = append(f.PreferredFeet, domain.Foot(v))
	}

	var err error
	if f.AgeMin, err = intParam(q, "age_min"); err != nil {
		return f, err
	}
	if f.AgeMax, err = intParam(q, "age_max"); err != nil {
		return f, err
	}
	if f.MarketValueMin, err = int64Param(q, "market_value_min"); err != nil {
		return f, err
	}
	if f.MarketValueMax, err = int64Param(q, "market_value_max"); err != nil {
		return f, err
	}

	for _, v := range list(q, "contract_expiry_year") {
		year, err := strconv.Atoi(v)
		if err != nil {
			return f, domain.ErrValidation("invalid contract_expiry_year: " + v)
		}
		f.ContractExpiryYears = append(f.ContractExpiryYears, year)
	}
	for _, v := range list(q, "contract_start_year") {
		year, err := strconv.Atoi(v)
		if err != nil {
			return f, domain.ErrValidation("invalid contract_start_year: " + v)
		}
		f.ContractStartYears = append(f.ContractStartYears, year)
	}
	for _, v := range list(q, "contract_duration") {
		f.ContractDurations = append(f.ContractDurations, domain.DurationBucket(v))
	}
	for _, v := range list(q, "remaining_duration") {
		f.RemainingDurations = append(f.RemainingDurations, domain.RemainingBucket(v))
	}
	for _, v := range list(q, "contract_type") {
		f.ContractTypes = append(f.ContractTypes, domain.ContractType(v))
	}

	return f, nil
}

func list(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func intParam(q url.Values, key string) (*int, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.ErrValidation("invalid " + key + ": " + raw)
	}
	return &v, nil
}

func int64Param(q url.Values, key string) (*int64, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domain.ErrValidation("invalid " + key + ": " + raw)
	}
	return &v, nil
}
