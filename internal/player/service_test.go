// AngelaMos | 2026
// service_test.go

package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isiolocityfc/backend/internal/core"
	"github.com/isiolocityfc/backend/internal/ids"
)

type memRepo struct {
	mu           sync.Mutex
	players      []*Player
	stats        []Stats
	achievements []Achievement
	failCreate   map[string]error
}

func newMemRepo() *memRepo {
	return &memRepo{failCreate: map[string]error{}}
}

func (m *memRepo) List(
	_ context.Context,
	position *string,
	status string,
) ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Player
	for _, p := range m.players {
		if p.Status != status {
			continue
		}
		if position != nil && p.Position != *position {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].JerseyNumber < out[j].JerseyNumber
	})
	return out, nil
}

func (m *memRepo) GetByID(_ context.Context, id string) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.players {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("get player: %w", core.ErrNotFound)
}

func (m *memRepo) FindActiveByJersey(_ context.Context, jersey int) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.players {
		if p.JerseyNumber == jersey && p.Status != StatusRetired {
			cp := *p
			return &cp, nil
		}
	}
	return nil, core.ErrNotFound
}

func (m *memRepo) Create(_ context.Context, p *Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.failCreate[p.DisplayName]; ok {
		return fmt.Errorf("create player: %w", err)
	}
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	cp := *p
	m.players = append(m.players, &cp)
	return nil
}

func (m *memRepo) Update(_ context.Context, p *Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.players {
		if existing.ID == p.ID {
			cp := *p
			m.players[i] = &cp
			return nil
		}
	}
	return fmt.Errorf("update player: %w", core.ErrNotFound)
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.players {
		if p.ID == id {
			m.players = append(m.players[:i], m.players[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete player: %w", core.ErrNotFound)
}

func (m *memRepo) LatestStats(_ context.Context, playerID string) (*Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var latest *Stats
	for i := range m.stats {
		s := m.stats[i]
		if s.PlayerID == playerID && (latest == nil || s.Season > latest.Season) {
			latest = &s
		}
	}
	if latest == nil {
		return nil, fmt.Errorf("get player stats: %w", core.ErrNotFound)
	}
	return latest, nil
}

func (m *memRepo) Achievements(_ context.Context, playerID string) ([]Achievement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []Achievement{}
	for _, a := range m.achievements {
		if a.PlayerID == playerID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AwardedAt.After(out[j].AwardedAt)
	})
	return out, nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func playerInput(name string, jersey int) CreatePlayerInput {
	return CreatePlayerInput{
		FirstName:    name,
		LastName:     "Ekai",
		DisplayName:  name,
		Position:     PositionMidfielder,
		JerseyNumber: jersey,
		Nationality:  "Kenya",
		DateOfBirth:  time.Date(2001, 5, 4, 0, 0, 0, 0, time.UTC),
		JoinedDate:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateStartsActive(t *testing.T) {
	svc := newTestService(newMemRepo())

	p, err := svc.Create(context.Background(), playerInput("Lomuria", 8))
	require.NoError(t, err)

	assert.Equal(t, StatusActive, p.Status)
	model, ok := ids.ExtractModel(p.ID)
	require.True(t, ok)
	assert.Equal(t, "player", model)
	assert.NotNil(t, p.PhotoURLs)
}

func TestCreateSkipsJerseyCheck(t *testing.T) {
	svc := newTestService(newMemRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, playerInput("First", 10))
	require.NoError(t, err)
	_, err = svc.Create(ctx, playerInput("Second", 10))
	require.NoError(t, err)
}

func TestBulkCreateReportsJerseyConflict(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, playerInput("Veteran", 7))
	require.NoError(t, err)

	result := svc.BulkCreate(ctx, []CreatePlayerInput{
		playerInput("Alpha", 2),
		playerInput("Bravo", 7),
		playerInput("Charlie", 9),
	})

	assert.False(t, result.Success)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Player 2: Jersey number 7 is already taken by Veteran", result.Errors[0])
	require.Len(t, result.Players, 2)
	assert.Equal(t, "Alpha", result.Players[0].DisplayName)
	assert.Equal(t, "Charlie", result.Players[1].DisplayName)
}

func TestBulkCreateConflictWithinBatch(t *testing.T) {
	svc := newTestService(newMemRepo())

	result := svc.BulkCreate(context.Background(), []CreatePlayerInput{
		playerInput("One", 4),
		playerInput("Two", 4),
	})

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, []string{"Player 2: Jersey number 4 is already taken by One"}, result.Errors)
}

func TestBulkCreateIgnoresRetiredJerseys(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	legend, err := svc.Create(ctx, playerInput("Legend", 11))
	require.NoError(t, err)

	retired := StatusRetired
	_, err = svc.Update(ctx, legend.ID, UpdatePlayerInput{Status: &retired})
	require.NoError(t, err)

	result := svc.BulkCreate(ctx, []CreatePlayerInput{playerInput("Rookie", 11)})
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Created)
}

func TestBulkCreateContinuesAfterStoreFailure(t *testing.T) {
	repo := newMemRepo()
	repo.failCreate["Broken"] = errors.New("connection reset")
	svc := newTestService(repo)

	result := svc.BulkCreate(context.Background(), []CreatePlayerInput{
		playerInput("Broken", 3),
		playerInput("Fine", 5),
	})

	assert.False(t, result.Success)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Player 1 (Broken): ")
	assert.Contains(t, result.Errors[0], "connection reset")
}

func TestBulkCreateAccounting(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		collideAt int
	}{
		{"no collision", 5, 0},
		{"collision first", 5, 1},
		{"collision last", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newMemRepo())

			var inputs []CreatePlayerInput
			for i := 1; i <= tt.size; i++ {
				jersey := 20 + i
				if i == tt.collideAt && i > 1 {
					jersey = 21
				}
				inputs = append(inputs, playerInput(fmt.Sprintf("P%d", i), jersey))
			}
			if tt.collideAt == 1 {
				_, err := svc.Create(context.Background(), playerInput("Holder", 21))
				require.NoError(t, err)
			}

			result := svc.BulkCreate(context.Background(), inputs)

			assert.Equal(t, tt.size, result.Created+result.Failed)
			assert.Len(t, result.Errors, result.Failed)
			assert.Len(t, result.Players, result.Created)
			assert.Equal(t, result.Failed == 0, result.Success)
			if tt.collideAt > 0 {
				assert.Equal(t, 1, result.Failed)
				assert.Contains(t, result.Errors[0], fmt.Sprintf("Player %d:", tt.collideAt))
			}
		})
	}
}

func TestListDefaultsToActive(t *testing.T) {
	svc := newTestService(newMemRepo())
	ctx := context.Background()

	keeper := playerInput("Keeper", 1)
	keeper.Position = PositionGoalkeeper
	_, err := svc.Create(ctx, keeper)
	require.NoError(t, err)

	injured, err := svc.Create(ctx, playerInput("Hurt", 6))
	require.NoError(t, err)
	status := StatusInjured
	_, err = svc.Update(ctx, injured.ID, UpdatePlayerInput{Status: &status})
	require.NoError(t, err)

	_, err = svc.Create(ctx, playerInput("Mid", 14))
	require.NoError(t, err)

	active, err := svc.List(ctx, ListParams{})
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, 1, active[0].JerseyNumber)

	hurt, err := svc.List(ctx, ListParams{Status: &status})
	require.NoError(t, err)
	require.Len(t, hurt, 1)

	keepers, err := svc.ListByPosition(ctx, PositionGoalkeeper)
	require.NoError(t, err)
	require.Len(t, keepers, 1)
	assert.Equal(t, "Keeper", keepers[0].DisplayName)
}

func TestUpdateRejectsInvalidStatus(t *testing.T) {
	svc := newTestService(newMemRepo())
	ctx := context.Background()

	p, err := svc.Create(ctx, playerInput("Target", 19))
	require.NoError(t, err)

	bogus := "BENCHED"
	_, err = svc.Update(ctx, p.ID, UpdatePlayerInput{Status: &bogus})
	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, core.CodeBadUserInput, appErr.Code)
}

func TestStatsLatestSeason(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	none, err := svc.Stats(ctx, "icfc_player_x")
	require.NoError(t, err)
	assert.Nil(t, none)

	repo.stats = []Stats{
		{ID: "s1", PlayerID: "icfc_player_x", Season: "2024/25", Goals: 3},
		{ID: "s2", PlayerID: "icfc_player_x", Season: "2025/26", Goals: 9},
	}

	latest, err := svc.Stats(ctx, "icfc_player_x")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 9, latest.Goals)
}

func TestGetAndDeleteMissing(t *testing.T) {
	svc := newTestService(newMemRepo())
	ctx := context.Background()

	_, err := svc.Get(ctx, "nope")
	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Player not found", appErr.Message)

	err = svc.Delete(ctx, "nope")
	appErr, ok = core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, core.CodeNotFound, appErr.Code)
}
