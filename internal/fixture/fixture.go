// Package fixture seeds the memory store with the demo data set the
// console ships with. Production deployments run against postgres and
// never load this.
package fixture

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ashkanani/agency/internal/auth"
	"github.com/ashkanani/agency/internal/domain"
	"github.com/ashkanani/agency/internal/store"
)

// DemoPassword is the password of every seeded console account.
const DemoPassword = "agency-demo-2024"

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func intp(v int) *int       { return &v }
func int64p(v int64) *int64 { return &v }

// allVisible flips every flag except contract info, which stays private
// for every demo player.
func allVisible() domain.Visibility {
	return domain.Visibility{
		Nationality:   true,
		Age:           true,
		Position:      true,
		Club:          true,
		MarketValue:   true,
		PreferredFoot: true,
		Height:        true,
		Weight:        true,
		PreviousClubs: true,
		DealStatus:    true,
		Achievements:  true,
		Stats:         true,
		Photos:        true,
	}
}

// Seed loads the demo data set. It fails on the first store error.
func Seed(ctx context.Context, st *store.Store) error {
	agents := []domain.Agent{
		{
			ID: "agent-ramla", Name: "Ramla Ali", NameAr: "رملة علي",
			Email: "ramla@ashkanani.agency", Phone: "+965 5000 1111",
			Company: "Ashkanani Sports Group",
			PlayerIDs: []string{"player-salah", "player-benzema"},
		},
		{
			ID: "agent-yousef", Name: "Yousef Al-Mutairi", NameAr: "يوسف المطيري",
			Email: "yousef@ashkanani.agency", Phone: "+965 5000 2222",
			Company: "Ashkanani Sports Group",
			PlayerIDs: []string{"player-bader", "player-fahad"},
		},
	}

	players := []domain.Player{
		{
			ID: "player-salah", Name: "Mohamed Salah", NameAr: "محمد صلاح",
			Sport: domain.SportFootball, Role: domain.RolePlayer,
			Nationality: "Egypt", DateOfBirth: date(1992, 6, 15),
			Position: domain.PositionForward, Club: "Liverpool FC",
			MarketValue: 85_000_000, PreferredFoot: domain.FootLeft,
			DealStatus: domain.DealSigned, HeightCm: 175, WeightKg: 71,
			PreviousClubs: []string{"Basel", "Chelsea", "Fiorentina", "AS Roma"},
			JerseyNumber:  intp(11),
			AgentID:       "agent-ramla", AgentName: "Ramla Ali",
			Photos: []domain.Photo{
				{URL: "https://cdn.ashkanani.agency/players/salah-main.jpg", IsMain: true},
				{URL: "https://cdn.ashkanani.agency/players/salah-training.jpg"},
			},
			Stats:        &domain.PlayerStats{Appearances: 346, Goals: 211, Assists: 91},
			Achievements: []string{"Premier League Golden Boot", "CAF Player of the Year"},
			Visibility:   allVisible(), Public: true,
		},
		{
			ID: "player-benzema", Name: "Karim Benzema", NameAr: "كريم بنزيما",
			Sport: domain.SportFootball, Role: domain.RolePlayer,
			Nationality: "France", DateOfBirth: date(1987, 12, 19),
			Position: domain.PositionForward, Club: "Al Ittihad", ClubAr: "الاتحاد",
			MarketValue: 25_000_000, PreferredFoot: domain.FootRight,
			DealStatus: domain.DealSigned, HeightCm: 185, WeightKg: 81,
			PreviousClubs: []string{"Lyon", "Real Madrid"},
			JerseyNumber:  intp(9),
			AgentID:       "agent-ramla", AgentName: "Ramla Ali",
			Photos: []domain.Photo{
				{URL: "https://cdn.ashkanani.agency/players/benzema-main.jpg", IsMain: true},
			},
			Stats:        &domain.PlayerStats{Appearances: 648, Goals: 354, Assists: 165},
			Achievements: []string{"Ballon d'Or 2022", "UEFA Champions League x5"},
			Visibility:   allVisible(), Public: true,
		},
		{
			ID: "player-bader", Name: "Bader Al-Mutawa", NameAr: "بدر المطوع",
			Sport: domain.SportFootball, Role: domain.RolePlayer,
			Nationality: "Kuwait", NationalityAr: "الكويت",
			DateOfBirth: date(1985, 1, 10),
			Position:    domain.PositionMidfielder, Club: "Al Qadsia",
			MarketValue: 500_000, PreferredFoot: domain.FootRight,
			DealStatus: domain.DealNegotiation, HeightCm: 172, WeightKg: 67,
			PreviousClubs: []string{"Qatar SC"},
			AgentID:       "agent-yousef", AgentName: "Yousef Al-Mutairi",
			Stats:         &domain.PlayerStats{Appearances: 196, Goals: 56, Assists: 40},
			// Veteran in contract talks: hide valuation and deal state.
			Visibility: func() domain.Visibility {
				v := allVisible()
				v.MarketValue = false
				v.DealStatus = false
				return v
			}(),
			Public: true,
		},
		{
			ID: "player-fahad", Name: "Fahad Al-Rashidi", NameAr: "فهد الرشيدي",
			Sport: domain.SportHandball, Role: domain.RolePlayer,
			Nationality: "Kuwait", NationalityAr: "الكويت",
			DateOfBirth: date(2001, 3, 22),
			Club:        "Kuwait SC",
			MarketValue: 150_000,
			DealStatus:  domain.DealFreeAgent, HeightCm: 190, WeightKg: 88,
			AgentID: "agent-yousef", AgentName: "Yousef Al-Mutairi",
			// Unsigned prospect: keep the whole card private.
			Visibility: domain.Visibility{},
			Public:     false,
		},
		{
			ID: "coach-laila", Name: "Laila Hassan", NameAr: "ليلى حسن",
			Sport: domain.SportBasketball, Role: domain.RoleCoach,
			Nationality: "Egypt", DateOfBirth: date(1978, 9, 2),
			Club:        "Al Arabi", ClubAr: "العربي",
			MarketValue: 200_000,
			DealStatus:  domain.DealSigned,
			Visibility: domain.Visibility{
				Nationality: true, Club: true, Achievements: true,
			},
			Achievements: []string{"Kuwait League Champion 2023"},
			Public:       true,
		},
	}

	contracts := []domain.Contract{
		{
			ID: "contract-salah", PlayerID: "player-salah", PlayerName: "Mohamed Salah",
			AgentID: "agent-ramla", Type: domain.ContractProfessional,
			StartDate: date(2023, 7, 1), EndDate: date(2027, 6, 30),
			AnnualSalary: 18_200_000, SigningBonus: int64p(4_000_000),
			Status: domain.ContractActive,
			Notes:  "Release clause under review", NotesAr: "شرط جزائي قيد المراجعة",
		},
		{
			ID: "contract-benzema", PlayerID: "player-benzema", PlayerName: "Karim Benzema",
			AgentID: "agent-ramla", Type: domain.ContractProfessional,
			StartDate: date(2023, 6, 6), EndDate: date(2026, 6, 5),
			AnnualSalary: 100_000_000,
			Status:       domain.ContractActive,
		},
		{
			ID: "contract-bader", PlayerID: "player-bader", PlayerName: "Bader Al-Mutawa",
			AgentID: "agent-yousef", Type: domain.ContractProfessional,
			StartDate: date(2024, 8, 1), EndDate: date(2025, 7, 31),
			AnnualSalary: 240_000,
			Status:       domain.ContractNegotiation,
		},
		{
			ID: "contract-laila", PlayerID: "coach-laila", PlayerName: "Laila Hassan",
			Type:      domain.ContractYouth,
			StartDate: date(2022, 9, 1), EndDate: date(2024, 8, 31),
			AnnualSalary: 96_000,
			Status:       domain.ContractExpired,
		},
	}

	employees := []domain.Employee{
		{
			ID: "emp-fatma", Name: "Fatma Ashkanani", NameAr: "فاطمة أشكناني",
			Title: "Managing Director", Email: "fatma@ashkanani.agency",
			Salary: 96_000, HireDate: date(2018, 1, 15), Active: true,
		},
		{
			ID: "emp-omar", Name: "Omar Khalil", Title: "Scouting Lead",
			Email: "omar@ashkanani.agency",
			Salary: 54_000, HireDate: date(2021, 4, 1), Active: true,
		},
		{
			ID: "emp-sara", Name: "Sara Mahmoud", Title: "Accountant",
			Email: "sara@ashkanani.agency",
			Salary: 42_000, HireDate: date(2022, 10, 3), Active: true,
		},
	}

	records := []domain.FinancialRecord{
		{
			ID: "fin-1", Type: domain.FinanceIncome, Amount: 910_000,
			Category: "commission", Description: "Salah renewal commission",
			PlayerID: "player-salah", Date: date(2024, 7, 15),
		},
		{
			ID: "fin-2", Type: domain.FinanceIncome, Amount: 5_000_000,
			Category: "commission", Description: "Benzema transfer fee share",
			PlayerID: "player-benzema", Date: date(2023, 6, 20),
		},
		{
			ID: "fin-3", Type: domain.FinanceExpense, Amount: 36_000,
			Category: "travel", Description: "Scouting trip, North Africa",
			Date: date(2024, 11, 2),
		},
		{
			ID: "fin-4", Type: domain.FinanceExpense, Amount: 12_500,
			Category: "legal", Description: "Contract review retainer",
			Date: date(2025, 1, 9),
		},
	}

	users := []domain.User{
		{ID: "user-owner", Email: "owner@ashkanani.agency", Name: "Fatma Ashkanani", Role: auth.RoleOwner, Active: true},
		{ID: "user-admin", Email: "admin@ashkanani.agency", Name: "Omar Khalil", Role: auth.RoleAdmin, Active: true},
		{ID: "user-ramla", Email: "ramla@ashkanani.agency", Name: "Ramla Ali", Role: auth.RoleAgent, AgentID: "agent-ramla", Active: true},
		{ID: "user-yousef", Email: "yousef@ashkanani.agency", Name: "Yousef Al-Mutairi", Role: auth.RoleAgent, AgentID: "agent-yousef", Active: true},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	now := time.Now().UTC()

	for i := range agents {
		agents[i].CreatedAt, agents[i].UpdatedAt = now, now
		if err := st.Agents.Create(ctx, &agents[i]); err != nil {
			return fmt.Errorf("seed agent %s: %w", agents[i].ID, err)
		}
	}
	for i := range players {
		players[i].CreatedAt, players[i].UpdatedAt = now, now
		if err := st.Players.Create(ctx, &players[i]); err != nil {
			return fmt.Errorf("seed player %s: %w", players[i].ID, err)
		}
	}
	for i := range contracts {
		contracts[i].CreatedAt, contracts[i].UpdatedAt = now, now
		if err := st.Contracts.Create(ctx, &contracts[i]); err != nil {
			return fmt.Errorf("seed contract %s: %w", contracts[i].ID, err)
		}
	}
	for i := range employees {
		employees[i].CreatedAt, employees[i].UpdatedAt = now, now
		if err := st.Employees.Create(ctx, &employees[i]); err != nil {
			return fmt.Errorf("seed employee %s: %w", employees[i].ID, err)
		}
	}
	for i := range records {
		records[i].CreatedAt, records[i].UpdatedAt = now, now
		if err := st.Finance.Create(ctx, &records[i]); err != nil {
			return fmt.Errorf("seed finance record %s: %w", records[i].ID, err)
		}
	}
	for i := range users {
		users[i].PasswordHash = string(hash)
		users[i].CreatedAt, users[i].UpdatedAt = now, now
		if err := st.Users.Create(ctx, &users[i]); err != nil {
			return fmt.Errorf("seed user %s: %w", users[i].Email, err)
		}
	}

	return nil
}
