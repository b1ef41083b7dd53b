package projection

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashkanani/agency/internal/domain"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestProjector() *Projector {
	return NewProjector(clockwork.NewFakeClockAt(testNow))
}

func fullVisibility() domain.Visibility {
	return domain.Visibility{
		Nationality: true, Age: true, Position: true, Club: true,
		MarketValue: true, PreferredFoot: true, Height: true, Weight: true,
		PreviousClubs: true, DealStatus: true, Achievements: true,
		Stats: true, Photos: true,
	}
}

func samplePlayer() domain.Player {
	return domain.Player{
		ID: "p-1", Name: "Mohamed Salah", NameAr: "محمد صلاح",
		Sport:       domain.SportFootball,
		Nationality: "Egypt",
		DateOfBirth: time.Date(1992, 6, 15, 0, 0, 0, 0, time.UTC),
		Position:    domain.PositionForward,
		Club:        "Liverpool FC",
		MarketValue: 85_000_000, PreferredFoot: domain.FootLeft,
		DealStatus: domain.DealSigned, HeightCm: 175, WeightKg: 71,
		PreviousClubs: []string{"Basel", "Chelsea"},
		AgentID:       "agent-1", AgentName: "Ramla Ali",
		Photos: []domain.Photo{
			{URL: "https://cdn.example.com/main.jpg", IsMain: true},
			{URL: "https://cdn.example.com/training.jpg"},
		},
		Documents:    []domain.Document{{Name: "passport", URL: "https://cdn.example.com/doc.pdf"}},
		Stats:        &domain.PlayerStats{Appearances: 346, Goals: 211, Assists: 91},
		Achievements: []string{"Golden Boot"},
		Visibility:   fullVisibility(),
		Public:       true,
	}
}

func TestProject_AlwaysPublicFields(t *testing.T) {
	pr := newTestProjector()
	p := samplePlayer()
	p.Visibility = domain.Visibility{}

	got := pr.Project(p)

	assert.Equal(t, "p-1", got.ID)
	assert.Equal(t, "Mohamed Salah", got.Name)
	assert.Equal(t, "محمد صلاح", got.NameAr)
	assert.Equal(t, domain.SportFootball, got.Sport)
}

func TestProject_ZeroVisibilityHidesEverythingGated(t *testing.T) {
	pr := newTestProjector()
	p := samplePlayer()
	p.Visibility = domain.Visibility{}

	got := pr.Project(p)

	assert.Nil(t, got.Nationality)
	assert.Nil(t, got.Age)
	assert.Nil(t, got.Position)
	assert.Nil(t, got.Club)
	assert.Nil(t, got.MarketValue)
	assert.Nil(t, got.PreferredFoot)
	assert.Nil(t, got.HeightCm)
	assert.Nil(t, got.WeightKg)
	assert.Nil(t, got.PreviousClubs)
	assert.Nil(t, got.DealStatus)
	assert.Nil(t, got.Achievements)
	assert.Nil(t, got.Stats)
	assert.Nil(t, got.Photos)
}

func TestProject_FullVisibilityExposesEveryGatedField(t *testing.T) {
	pr := newTestProjector()
	got := pr.Project(samplePlayer())

	require.NotNil(t, got.Nationality)
	assert.Equal(t, "Egypt", *got.Nationality)
	require.NotNil(t, got.Age)
	assert.Equal(t, 32, *got.Age)
	require.NotNil(t, got.Position)
	assert.Equal(t, domain.PositionForward, *got.Position)
	require.NotNil(t, got.Club)
	assert.Equal(t, "Liverpool FC", *got.Club)
	require.NotNil(t, got.MarketValue)
	assert.Equal(t, int64(85_000_000), *got.MarketValue)
	require.NotNil(t, got.PreferredFoot)
	assert.Equal(t, domain.FootLeft, *got.PreferredFoot)
	require.NotNil(t, got.HeightCm)
	assert.Equal(t, 175, *got.HeightCm)
	require.NotNil(t, got.WeightKg)
	assert.Equal(t, 71, *got.WeightKg)
	assert.Equal(t, []string{"Basel", "Chelsea"}, got.PreviousClubs)
	require.NotNil(t, got.DealStatus)
	assert.Equal(t, domain.DealSigned, *got.DealStatus)
	assert.Equal(t, []string{"Golden Boot"}, got.Achievements)
	require.NotNil(t, got.Stats)
	assert.Equal(t, 211, got.Stats.Goals)
}

func TestProject_SingleFlagExposesOnlyThatField(t *testing.T) {
	pr := newTestProjector()
	p := samplePlayer()
	p.Visibility = domain.Visibility{MarketValue: true}

	got := pr.Project(p)

	require.NotNil(t, got.MarketValue)
	assert.Equal(t, int64(85_000_000), *got.MarketValue)
	assert.Nil(t, got.Nationality)
	assert.Nil(t, got.Age)
	assert.Nil(t, got.Stats)
	assert.Nil(t, got.Photos)
}

func TestProject_OnlyMainPhotoSurvives(t *testing.T) {
	pr := newTestProjector()
	got := pr.Project(samplePlayer())

	require.Len(t, got.Photos, 1)
	assert.Equal(t, "https://cdn.example.com/main.jpg", got.Photos[0].URL)
	assert.True(t, got.Photos[0].IsMain)
}

func TestProject_NoMainPhotoMeansNoPhotos(t *testing.T) {
	pr := newTestProjector()
	p := samplePlayer()
	p.Photos = []domain.Photo{{URL: "https://cdn.example.com/a.jpg"}}

	got := pr.Project(p)

	assert.Nil(t, got.Photos)
}

func TestProject_AgeHiddenWhenBirthDateUnknown(t *testing.T) {
	pr := newTestProjector()
	p := samplePlayer()
	p.DateOfBirth = time.Time{}

	got := pr.Project(p)

	assert.Nil(t, got.Age)
}

func TestProject_DocumentsNeverAppear(t *testing.T) {
	pr := newTestProjector()
	got := pr.Project(samplePlayer())

	// PublicPlayer has no document field at all; this guards the JSON
	// shape against accidental leaks through an added field.
	assert.NotContains(t, mustJSON(t, got), "passport")
	assert.NotContains(t, mustJSON(t, got), "agent")
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	pr := newTestProjector()
	p := samplePlayer()

	got := pr.Project(p)
	got.PreviousClubs[0] = "changed"
	got.Stats.Goals = 0
	got.Achievements[0] = "changed"

	assert.Equal(t, "Basel", p.PreviousClubs[0])
	assert.Equal(t, 211, p.Stats.Goals)
	assert.Equal(t, "Golden Boot", p.Achievements[0])
	assert.Len(t, p.Photos, 2)
}

func TestProject_LocalizationFallbacks(t *testing.T) {
	pr := newTestProjector()

	tests := []struct {
		name          string
		player        domain.Player
		wantCountryAr string
		wantClubAr    string
	}{
		{
			name: "explicit values win",
			player: domain.Player{
				Nationality: "Egypt", NationalityAr: "جمهورية مصر",
				Club: "Liverpool FC", ClubAr: "نادي ليفربول",
			},
			wantCountryAr: "جمهورية مصر",
			wantClubAr:    "نادي ليفربول",
		},
		{
			name:          "table fallback",
			player:        domain.Player{Nationality: "France", Club: "Real Madrid"},
			wantCountryAr: "فرنسا",
			wantClubAr:    "ريال مدريد",
		},
		{
			name:          "unknown passes through",
			player:        domain.Player{Nationality: "Iceland", Club: "KR Reykjavik"},
			wantCountryAr: "Iceland",
			wantClubAr:    "KR Reykjavik",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pr.Project(tt.player)
			assert.Equal(t, tt.wantCountryAr, got.NationalityAr)
			assert.Equal(t, tt.wantClubAr, got.ClubAr)
		})
	}
}
