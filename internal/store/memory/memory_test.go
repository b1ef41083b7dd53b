package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashkanani/agency/internal/domain"
)

func TestPlayerStore_CRUD(t *testing.T) {
	st := New()
	ctx := context.Background()

	p := domain.Player{ID: "p-1", Name: "Test", Sport: domain.SportFootball, Role: domain.RolePlayer}
	require.NoError(t, st.Players.Create(ctx, &p))

	got, err := st.Players.Get(ctx, "p-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Test", got.Name)

	got.Name = "Updated"
	require.NoError(t, st.Players.Update(ctx, got))
	got, err = st.Players.Get(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Updated", got.Name)

	require.NoError(t, st.Players.Delete(ctx, "p-1"))
	got, err = st.Players.Get(ctx, "p-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPlayerStore_GetMissingReturnsNilNil(t *testing.T) {
	st := New()

	got, err := st.Players.Get(context.Background(), "nope")

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestPlayerStore_CreateDuplicateConflicts(t *testing.T) {
	st := New()
	ctx := context.Background()

	p := domain.Player{ID: "p-1", Name: "A"}
	require.NoError(t, st.Players.Create(ctx, &p))
	err := st.Players.Create(ctx, &p)

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Status)
}

func TestPlayerStore_UpdateMissingNotFound(t *testing.T) {
	st := New()

	err := st.Players.Update(context.Background(), &domain.Player{ID: "ghost"})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)

	err = st.Players.Delete(context.Background(), "ghost")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}

func TestPlayerStore_ListPreservesInsertionOrder(t *testing.T) {
	st := New()
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, st.Players.Create(ctx, &domain.Player{ID: id}))
	}
	require.NoError(t, st.Players.Delete(ctx, "a"))
	require.NoError(t, st.Players.Create(ctx, &domain.Player{ID: "d"}))

	list, err := st.Players.List(ctx)
	require.NoError(t, err)
	ids := make([]string, len(list))
	for i, p := range list {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"c", "b", "d"}, ids)
}

func TestPlayerStore_ReadsAreCopies(t *testing.T) {
	st := New()
	ctx := context.Background()

	stats := &domain.PlayerStats{Goals: 10}
	p := domain.Player{
		ID: "p-1", Name: "Test",
		PreviousClubs: []string{"Basel"},
		Photos:        []domain.Photo{{URL: "a", IsMain: true}},
		Stats:         stats,
	}
	require.NoError(t, st.Players.Create(ctx, &p))

	// Mutating the caller's record after Create must not reach the store.
	p.PreviousClubs[0] = "mutated"
	stats.Goals = 99

	got, err := st.Players.Get(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Basel", got.PreviousClubs[0])
	assert.Equal(t, 10, got.Stats.Goals)

	// Mutating a read result must not affect later reads.
	got.Photos[0].URL = "mutated"
	got.Stats.Goals = 50

	again, err := st.Players.Get(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "a", again.Photos[0].URL)
	assert.Equal(t, 10, again.Stats.Goals)
}

func TestContractStore_ListByPlayer(t *testing.T) {
	st := New()
	ctx := context.Background()

	contracts := []domain.Contract{
		{ID: "c-1", PlayerID: "p-1"},
		{ID: "c-2", PlayerID: "p-2"},
		{ID: "c-3", PlayerID: "p-1"},
	}
	for i := range contracts {
		require.NoError(t, st.Contracts.Create(ctx, &contracts[i]))
	}

	got, err := st.Contracts.ListByPlayer(ctx, "p-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c-1", got[0].ID)
	assert.Equal(t, "c-3", got[1].ID)

	none, err := st.Contracts.ListByPlayer(ctx, "p-404")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAgentStore_CloneIsolatesPlayerIDs(t *testing.T) {
	st := New()
	ctx := context.Background()

	a := domain.Agent{ID: "a-1", Name: "Ramla", Email: "r@example.com", PlayerIDs: []string{"p-1"}}
	require.NoError(t, st.Agents.Create(ctx, &a))

	got, err := st.Agents.Get(ctx, "a-1")
	require.NoError(t, err)
	got.PlayerIDs[0] = "mutated"

	again, err := st.Agents.Get(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, "p-1", again.PlayerIDs[0])
}

func TestUserStore_FindByEmailIsCaseInsensitive(t *testing.T) {
	st := New()
	ctx := context.Background()

	u := domain.User{ID: "u-1", Email: "Owner@Example.com", Role: "owner", Active: true}
	require.NoError(t, st.Users.Create(ctx, &u))

	got, err := st.Users.FindByEmail(ctx, "owner@example.COM")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u-1", got.ID)

	missing, err := st.Users.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserStore_DuplicateEmailConflicts(t *testing.T) {
	st := New()
	ctx := context.Background()

	require.NoError(t, st.Users.Create(ctx, &domain.User{ID: "u-1", Email: "x@example.com"}))
	err := st.Users.Create(ctx, &domain.User{ID: "u-2", Email: "X@example.com"})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Status)
}

func TestEmployeeAndFinanceStores_CRUD(t *testing.T) {
	st := New()
	ctx := context.Background()

	e := domain.Employee{ID: "e-1", Name: "Sara", Title: "Accountant"}
	require.NoError(t, st.Employees.Create(ctx, &e))
	gotE, err := st.Employees.Get(ctx, "e-1")
	require.NoError(t, err)
	assert.Equal(t, "Sara", gotE.Name)
	require.NoError(t, st.Employees.Delete(ctx, "e-1"))

	r := domain.FinancialRecord{ID: "f-1", Type: domain.FinanceIncome, Amount: 100, Category: "commission"}
	require.NoError(t, st.Finance.Create(ctx, &r))
	r.Amount = 200
	require.NoError(t, st.Finance.Update(ctx, &r))
	gotR, err := st.Finance.Get(ctx, "f-1")
	require.NoError(t, err)
	assert.Equal(t, int64(200), gotR.Amount)
}
