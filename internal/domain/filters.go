package domain

// DurationBucket classifies a contract's total length.
type DurationBucket string

const (
	DurationOneYear      DurationBucket = "1year"
	DurationMoreThanYear DurationBucket = "moreThan1year"
)

// RemainingBucket classifies how much of a contract is left. The buckets
// deliberately overlap: a contract with 3 months remaining satisfies
// "6months", "1year" and "2years" at once. This mirrors how the console
// has always behaved and must not be collapsed into exclusive ranges.
type RemainingBucket string

const (
	RemainingSixMonths    RemainingBucket = "6months"
	RemainingOneYear      RemainingBucket = "1year"
	RemainingTwoYears     RemainingBucket = "2years"
	RemainingMoreThanTwo  RemainingBucket = "moreThan2years"
)

// PlayerFilters describes one filter pass over the player collection.
// Every field is optional: a nil/empty slice or nil pointer means the
// dimension is not applied. Array fields are OR within the dimension;
// the filter as a whole is AND across dimensions.
type PlayerFilters struct {
	Search string `json:"search,omitempty"`

	Sports        []Sport      `json:"sports,omitempty"`
	Roles         []Role       `json:"roles,omitempty"`
	Nationalities []string     `json:"nationalities,omitempty"`
	Positions     []Position   `json:"positions,omitempty"`
	DealStatuses  []DealStatus `json:"deal_statuses,omitempty"`
	Clubs         []string     `json:"clubs,omitempty"`
	PreferredFeet []Foot       `json:"preferred_feet,omitempty"`

	AgeMin         *int   `json:"age_min,omitempty"`
	AgeMax         *int   `json:"age_max,omitempty"`
	MarketValueMin *int64 `json:"market_value_min,omitempty"`
	MarketValueMax *int64 `json:"market_value_max,omitempty"`

	AgentID string `json:"agent_id,omitempty"`

	ContractExpiryYears []int             `json:"contract_expiry_years,omitempty"`
	ContractStartYears  []int             `json:"contract_start_years,omitempty"`
	ContractDurations   []DurationBucket  `json:"contract_durations,omitempty"`
	RemainingDurations  []RemainingBucket `json:"remaining_durations,omitempty"`
	ContractTypes       []ContractType    `json:"contract_types,omitempty"`
}

// HasContractDimensions reports whether any contract-derived dimension is
// set. Only then does filtering join players to their contracts.
func (f PlayerFilters) HasContractDimensions() bool {
	return len(f.ContractExpiryYears) > 0 ||
		len(f.ContractStartYears) > 0 ||
		len(f.ContractDurations) > 0 ||
		len(f.RemainingDurations) > 0 ||
		len(f.ContractTypes) > 0
}
