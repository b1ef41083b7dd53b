package filter

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashkanani/agency/internal/domain"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	return NewEngine(clockwork.NewFakeClockAt(testNow))
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func intp(v int) *int       { return &v }
func int64p(v int64) *int64 { return &v }

func testPlayers() []domain.Player {
	return []domain.Player{
		{
			ID: "p-salah", Name: "Mohamed Salah", NameAr: "محمد صلاح",
			Sport: domain.SportFootball, Role: domain.RolePlayer,
			Nationality: "Egypt", DateOfBirth: date(1992, 6, 15),
			Position: domain.PositionForward, Club: "Liverpool FC",
			MarketValue: 85_000_000, PreferredFoot: domain.FootLeft,
			DealStatus: domain.DealSigned, AgentID: "agent-a",
		},
		{
			ID: "p-benzema", Name: "Karim Benzema",
			Sport: domain.SportFootball, Role: domain.RolePlayer,
			Nationality: "France", DateOfBirth: date(1987, 12, 19),
			Position: domain.PositionForward, Club: "Al Ittihad", ClubAr: "الاتحاد",
			MarketValue: 25_000_000, PreferredFoot: domain.FootRight,
			DealStatus: domain.DealSigned, AgentID: "agent-a",
		},
		{
			ID: "p-laila", Name: "Laila Hassan",
			Sport: domain.SportBasketball, Role: domain.RoleCoach,
			Nationality: "Egypt", DateOfBirth: date(1978, 9, 2),
			Club:        "Al Arabi",
			MarketValue: 200_000, AgentID: "agent-b",
		},
	}
}

func testContracts() []domain.Contract {
	return []domain.Contract{
		{
			ID: "c-salah", PlayerID: "p-salah", Type: domain.ContractProfessional,
			StartDate: date(2023, 7, 1), EndDate: date(2027, 6, 30),
			Status: domain.ContractActive,
		},
		{
			ID: "c-benzema", PlayerID: "p-benzema", Type: domain.ContractProfessional,
			StartDate: date(2024, 8, 1), EndDate: date(2025, 7, 31),
			Status: domain.ContractActive,
		},
	}
}

func ids(players []domain.Player) []string {
	var out []string
	for _, p := range players {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterPlayers_EmptyFilterReturnsAll(t *testing.T) {
	e := newTestEngine()
	players := testPlayers()

	got := e.FilterPlayers(players, domain.PlayerFilters{}, nil)

	assert.Equal(t, ids(players), ids(got))
}

func TestFilterPlayers_PreservesInputOrder(t *testing.T) {
	e := newTestEngine()
	players := testPlayers()

	got := e.FilterPlayers(players, domain.PlayerFilters{
		Nationalities: []string{"Egypt", "France"},
	}, nil)

	assert.Equal(t, []string{"p-salah", "p-benzema", "p-laila"}, ids(got))
}

func TestFilterPlayers_Idempotent(t *testing.T) {
	e := newTestEngine()
	f := domain.PlayerFilters{Sports: []domain.Sport{domain.SportFootball}}

	once := e.FilterPlayers(testPlayers(), f, nil)
	twice := e.FilterPlayers(once, f, nil)

	assert.Equal(t, ids(once), ids(twice))
}

func TestFilterPlayers_DoesNotMutateInput(t *testing.T) {
	e := newTestEngine()
	players := testPlayers()
	before := ids(players)

	e.FilterPlayers(players, domain.PlayerFilters{Search: "salah"}, nil)

	assert.Equal(t, before, ids(players))
}

func TestFilterPlayers_SearchMatchesLatinAndArabicFields(t *testing.T) {
	e := newTestEngine()
	players := testPlayers()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"latin club substring", "liverpool", []string{"p-salah"}},
		{"arabic name", "محمد", []string{"p-salah"}},
		{"arabic club", "الاتحاد", []string{"p-benzema"}},
		{"case insensitive", "BENZEMA", []string{"p-benzema"}},
		{"no match", "ronaldo", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.FilterPlayers(players, domain.PlayerFilters{Search: tt.search}, nil)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterPlayers_ArrayDimensionsAreORWithin(t *testing.T) {
	e := newTestEngine()

	got := e.FilterPlayers(testPlayers(), domain.PlayerFilters{
		Sports: []domain.Sport{domain.SportFootball, domain.SportBasketball},
	}, nil)

	assert.Len(t, got, 3)
}

func TestFilterPlayers_DimensionsAreANDAcross(t *testing.T) {
	e := newTestEngine()

	// Egypt alone matches Salah and Laila; adding the forward position
	// narrows it to Salah only.
	got := e.FilterPlayers(testPlayers(), domain.PlayerFilters{
		Nationalities: []string{"Egypt"},
		Positions:     []domain.Position{domain.PositionForward},
	}, nil)

	assert.Equal(t, []string{"p-salah"}, ids(got))
}

func TestFilterPlayers_AgeRangeInclusiveBoundaries(t *testing.T) {
	e := newTestEngine()
	players := testPlayers()

	// At testNow Salah is 32 (birthday 1992-06-15 not yet reached),
	// Benzema is 37, Laila is 46.
	tests := []struct {
		name string
		min  *int
		max  *int
		want []string
	}{
		{"min inclusive", intp(32), nil, []string{"p-salah", "p-benzema", "p-laila"}},
		{"max inclusive", nil, intp(32), []string{"p-salah"}},
		{"band", intp(33), intp(40), []string{"p-benzema"}},
		{"excludes below min", intp(38), nil, []string{"p-laila"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.FilterPlayers(players, domain.PlayerFilters{AgeMin: tt.min, AgeMax: tt.max}, nil)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterPlayers_AgeFilterExcludesUnknownBirthDate(t *testing.T) {
	e := newTestEngine()
	players := []domain.Player{{ID: "p-nodob", Name: "Unknown", Sport: domain.SportFootball}}

	got := e.FilterPlayers(players, domain.PlayerFilters{AgeMin: intp(0)}, nil)

	assert.Empty(t, got)
}

func TestFilterPlayers_MarketValueRange(t *testing.T) {
	e := newTestEngine()

	got := e.FilterPlayers(testPlayers(), domain.PlayerFilters{
		MarketValueMin: int64p(1_000_000),
		MarketValueMax: int64p(30_000_000),
	}, nil)

	assert.Equal(t, []string{"p-benzema"}, ids(got))
}

func TestFilterPlayers_AgentScope(t *testing.T) {
	e := newTestEngine()

	got := e.FilterPlayers(testPlayers(), domain.PlayerFilters{AgentID: "agent-b"}, nil)

	assert.Equal(t, []string{"p-laila"}, ids(got))
}

func TestFilterPlayers_ContractDimensionExcludesPlayersWithoutContract(t *testing.T) {
	e := newTestEngine()

	// Laila has no contract in the collection, so any contract dimension
	// drops her even though her player fields match.
	got := e.FilterPlayers(testPlayers(), domain.PlayerFilters{
		ContractTypes: []domain.ContractType{domain.ContractProfessional},
	}, testContracts())

	assert.Equal(t, []string{"p-salah", "p-benzema"}, ids(got))
}

func TestFilterPlayers_ContractExpiryYear(t *testing.T) {
	e := newTestEngine()

	got := e.FilterPlayers(testPlayers(), domain.PlayerFilters{
		ContractExpiryYears: []int{2025},
	}, testContracts())

	assert.Equal(t, []string{"p-benzema"}, ids(got))
}

func TestFilterPlayers_ContractStartYear(t *testing.T) {
	e := newTestEngine()

	got := e.FilterPlayers(testPlayers(), domain.PlayerFilters{
		ContractStartYears: []int{2023, 2022},
	}, testContracts())

	assert.Equal(t, []string{"p-salah"}, ids(got))
}

func TestFilterPlayers_UsesFirstContractInInputOrder(t *testing.T) {
	e := newTestEngine()
	players := []domain.Player{{ID: "p-multi", Name: "Multi", Sport: domain.SportFootball}}
	contracts := []domain.Contract{
		{ID: "c-old", PlayerID: "p-multi", Type: domain.ContractYouth,
			StartDate: date(2020, 1, 1), EndDate: date(2021, 1, 1)},
		{ID: "c-new", PlayerID: "p-multi", Type: domain.ContractProfessional,
			StartDate: date(2024, 1, 1), EndDate: date(2027, 1, 1)},
	}

	// The youth contract comes first in input order, so the professional
	// one is never consulted.
	got := e.FilterPlayers(players, domain.PlayerFilters{
		ContractTypes: []domain.ContractType{domain.ContractProfessional},
	}, contracts)
	assert.Empty(t, got)

	got = e.FilterPlayers(players, domain.PlayerFilters{
		ContractTypes: []domain.ContractType{domain.ContractYouth},
	}, contracts)
	assert.Equal(t, []string{"p-multi"}, ids(got))
}

func TestMatchDuration_OneYearBucketAllowsSeasonOverrun(t *testing.T) {
	buckets := []domain.DurationBucket{domain.DurationOneYear}

	oneSeason := domain.Contract{StartDate: date(2024, 8, 1), EndDate: date(2025, 7, 31)}
	assert.True(t, matchDuration(oneSeason, buckets))

	// 1.1 fractional years is the cutoff; 13 months squeaks under it.
	thirteenMonths := domain.Contract{StartDate: date(2024, 6, 1), EndDate: date(2025, 7, 1)}
	assert.True(t, matchDuration(thirteenMonths, buckets))

	twoYears := domain.Contract{StartDate: date(2024, 6, 1), EndDate: date(2026, 6, 1)}
	assert.False(t, matchDuration(twoYears, buckets))
	assert.True(t, matchDuration(twoYears, []domain.DurationBucket{domain.DurationMoreThanYear}))
}

func TestMatchDuration_MissingDatesNeverMatch(t *testing.T) {
	c := domain.Contract{EndDate: date(2026, 1, 1)}
	assert.False(t, matchDuration(c, []domain.DurationBucket{domain.DurationOneYear, domain.DurationMoreThanYear}))
}

func TestMatchRemaining_BucketsOverlap(t *testing.T) {
	// Three months remaining sits inside every cumulative bucket.
	c := domain.Contract{EndDate: testNow.AddDate(0, 3, 0)}

	for _, b := range []domain.RemainingBucket{
		domain.RemainingSixMonths, domain.RemainingOneYear, domain.RemainingTwoYears,
	} {
		assert.True(t, matchRemaining(c, []domain.RemainingBucket{b}, testNow), string(b))
	}
	assert.False(t, matchRemaining(c, []domain.RemainingBucket{domain.RemainingMoreThanTwo}, testNow))
}

func TestMatchRemaining_SixMonthBoundaryInclusive(t *testing.T) {
	buckets := []domain.RemainingBucket{domain.RemainingSixMonths}

	exactly := domain.Contract{EndDate: testNow.AddDate(0, 6, 0)}
	assert.True(t, matchRemaining(exactly, buckets, testNow))

	oneDayOver := domain.Contract{EndDate: testNow.AddDate(0, 6, 0).AddDate(0, 0, 1)}
	assert.False(t, matchRemaining(oneDayOver, buckets, testNow))
}

func TestMatchRemaining_ExpiredMatchesNothing(t *testing.T) {
	expired := domain.Contract{EndDate: testNow.AddDate(0, -1, 0)}

	all := []domain.RemainingBucket{
		domain.RemainingSixMonths, domain.RemainingOneYear,
		domain.RemainingTwoYears, domain.RemainingMoreThanTwo,
	}
	assert.False(t, matchRemaining(expired, all, testNow))
}

func TestMatchRemaining_MoreThanTwoYears(t *testing.T) {
	long := domain.Contract{EndDate: testNow.AddDate(3, 0, 0)}

	assert.True(t, matchRemaining(long, []domain.RemainingBucket{domain.RemainingMoreThanTwo}, testNow))
	assert.False(t, matchRemaining(long, []domain.RemainingBucket{domain.RemainingTwoYears}, testNow))
}

func TestFilterPlayers_RemainingDurationEndToEnd(t *testing.T) {
	e := newTestEngine()

	// Benzema's contract ends 2025-07-31, two months from testNow.
	got := e.FilterPlayers(testPlayers(), domain.PlayerFilters{
		RemainingDurations: []domain.RemainingBucket{domain.RemainingSixMonths},
	}, testContracts())
	assert.Equal(t, []string{"p-benzema"}, ids(got))

	// Salah's runs to 2027-06-30, just over two years out.
	got = e.FilterPlayers(testPlayers(), domain.PlayerFilters{
		RemainingDurations: []domain.RemainingBucket{domain.RemainingMoreThanTwo},
	}, testContracts())
	assert.Equal(t, []string{"p-salah"}, ids(got))
}

func TestHasContractDimensions(t *testing.T) {
	assert.False(t, domain.PlayerFilters{Search: "x", AgentID: "a"}.HasContractDimensions())
	assert.True(t, domain.PlayerFilters{ContractExpiryYears: []int{2026}}.HasContractDimensions())
	assert.True(t, domain.PlayerFilters{RemainingDurations: []domain.RemainingBucket{domain.RemainingOneYear}}.HasContractDimensions())
}

func TestFilterPlayers_CombinedPlayerAndContractDimensions(t *testing.T) {
	e := newTestEngine()

	got := e.FilterPlayers(testPlayers(), domain.PlayerFilters{
		Sports:              []domain.Sport{domain.SportFootball},
		AgeMax:              intp(40),
		ContractExpiryYears: []int{2027},
	}, testContracts())

	require.Len(t, got, 1)
	assert.Equal(t, "p-salah", got[0].ID)
}
