package domain

import "time"

// Sport is the discipline a player competes in.
type Sport string

const (
	SportFootball   Sport = "football"
	SportBasketball Sport = "basketball"
	SportHandball   Sport = "handball"
	SportVolleyball Sport = "volleyball"
)

// Role distinguishes the kind of person the agency represents.
type Role string

const (
	RolePlayer Role = "player"
	RoleCoach  Role = "coach"
)

// Position on the pitch/court.
type Position string

const (
	PositionGoalkeeper Position = "goalkeeper"
	PositionDefender   Position = "defender"
	PositionMidfielder Position = "midfielder"
	PositionForward    Position = "forward"
)

// Foot is a player's preferred foot.
type Foot string

const (
	FootLeft  Foot = "left"
	FootRight Foot = "right"
	FootBoth  Foot = "both"
)

// DealStatus is a player's current market/representation state.
type DealStatus string

const (
	DealSigned         DealStatus = "signed"
	DealFreeAgent      DealStatus = "free_agent"
	DealTransferListed DealStatus = "transfer_listed"
	DealNegotiation    DealStatus = "negotiation"
)

// Photo is a media item attached to a player. At most one photo is marked main.
type Photo struct {
	URL    string `json:"url"`
	IsMain bool   `json:"is_main"`
}

// Document is an uploaded file reference (passport, medical, ID card).
type Document struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type,omitempty"`
}

// PlayerStats holds optional performance counters.
type PlayerStats struct {
	Appearances int `json:"appearances"`
	Goals       int `json:"goals"`
	Assists     int `json:"assists"`
}

// Visibility controls which player attributes appear in public-facing views.
// The flag set is fixed by construction: one field per optionally-sensitive
// attribute, so adding a new sensitive field forces an explicit visibility
// decision here.
type Visibility struct {
	Nationality   bool `json:"nationality"`
	Age           bool `json:"age"`
	Position      bool `json:"position"`
	Club          bool `json:"club"`
	MarketValue   bool `json:"market_value"`
	PreferredFoot bool `json:"preferred_foot"`
	Height        bool `json:"height"`
	Weight        bool `json:"weight"`
	PreviousClubs bool `json:"previous_clubs"`
	DealStatus    bool `json:"deal_status"`
	Achievements  bool `json:"achievements"`
	Stats         bool `json:"stats"`
	Photos        bool `json:"photos"`
	ContractInfo  bool `json:"contract_info"`
}

// Player is a represented athlete (or coach) on the agency's books.
type Player struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	NameAr        string       `json:"name_ar,omitempty"`
	Sport         Sport        `json:"sport"`
	Role          Role         `json:"role"`
	Nationality   string       `json:"nationality"`
	NationalityAr string       `json:"nationality_ar,omitempty"`
	DateOfBirth   time.Time    `json:"date_of_birth"`
	Position      Position     `json:"position,omitempty"`
	Club          string       `json:"club,omitempty"`
	ClubAr        string       `json:"club_ar,omitempty"`
	MarketValue   int64        `json:"market_value"`
	PreferredFoot Foot         `json:"preferred_foot,omitempty"`
	DealStatus    DealStatus   `json:"deal_status"`
	HeightCm      int          `json:"height_cm,omitempty"`
	WeightKg      int          `json:"weight_kg,omitempty"`
	PreviousClubs []string     `json:"previous_clubs,omitempty"`
	JerseyNumber  *int         `json:"jersey_number,omitempty"`
	AgentID       string       `json:"agent_id,omitempty"`
	AgentName     string       `json:"agent_name,omitempty"`
	Photos        []Photo      `json:"photos,omitempty"`
	Documents     []Document   `json:"documents,omitempty"`
	Stats         *PlayerStats `json:"stats,omitempty"`
	Achievements  []string     `json:"achievements,omitempty"`
	Visibility    Visibility   `json:"visibility"`
	Public        bool         `json:"public"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// MainPhoto returns the photo marked main, or nil if none is.
func (p *Player) MainPhoto() *Photo {
	for i := range p.Photos {
		if p.Photos[i].IsMain {
			return &p.Photos[i]
		}
	}
	return nil
}

// PublicPlayer is the reduced, role-appropriate view of a Player.
// Always-public fields are plain values; everything else is a pointer or
// slice left nil unless the matching visibility flag allows it.
type PublicPlayer struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	NameAr        string       `json:"name_ar,omitempty"`
	Sport         Sport        `json:"sport"`
	NationalityAr string       `json:"nationality_ar,omitempty"`
	ClubAr        string       `json:"club_ar,omitempty"`
	Nationality   *string      `json:"nationality,omitempty"`
	Age           *int         `json:"age,omitempty"`
	Position      *Position    `json:"position,omitempty"`
	Club          *string      `json:"club,omitempty"`
	MarketValue   *int64       `json:"market_value,omitempty"`
	PreferredFoot *Foot        `json:"preferred_foot,omitempty"`
	HeightCm      *int         `json:"height_cm,omitempty"`
	WeightKg      *int         `json:"weight_kg,omitempty"`
	PreviousClubs []string     `json:"previous_clubs,omitempty"`
	DealStatus    *DealStatus  `json:"deal_status,omitempty"`
	Achievements  []string     `json:"achievements,omitempty"`
	Stats         *PlayerStats `json:"stats,omitempty"`
	Photos        []Photo      `json:"photos,omitempty"`
}
