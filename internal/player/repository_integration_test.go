// AngelaMos | 2026
// repository_integration_test.go

//go:build integration

package player

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isiolocityfc/backend/internal/core"
	"github.com/isiolocityfc/backend/internal/ids"
	"github.com/isiolocityfc/backend/internal/testdb"
)

func storedPlayer(jersey int, status string) *Player {
	joined := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	return &Player{
		ID:           ids.For("player"),
		FirstName:    "Abdi",
		LastName:     "Galgalo",
		DisplayName:  "Abdi Galgalo",
		Position:     PositionForward,
		JerseyNumber: jersey,
		Nationality:  "Kenyan",
		DateOfBirth:  time.Date(2001, 3, 14, 0, 0, 0, 0, time.UTC),
		Status:       status,
		JoinedDate:   joined,
		PhotoURLs:    core.StringArray{},
	}
}

func TestRepositoryFindActiveByJerseyIgnoresRetired(t *testing.T) {
	db := testdb.Open(t)
	repo := NewRepository(db.DB)
	ctx := context.Background()

	retired := storedPlayer(9, StatusRetired)
	require.NoError(t, repo.Create(ctx, retired))

	_, err := repo.FindActiveByJersey(ctx, 9)
	assert.True(t, errors.Is(err, core.ErrNotFound),
		"a retired holder leaves the number free")

	injured := storedPlayer(9, StatusInjured)
	require.NoError(t, repo.Create(ctx, injured))

	got, err := repo.FindActiveByJersey(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, injured.ID, got.ID)

	_, err = repo.FindActiveByJersey(ctx, 10)
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestRepositoryCreateRoundTripsPhotos(t *testing.T) {
	db := testdb.Open(t)
	repo := NewRepository(db.DB)
	ctx := context.Background()

	p := storedPlayer(4, StatusActive)
	p.PhotoURLs = core.StringArray{"https://cdn.example/a.jpg", "https://cdn.example/b.jpg"}
	require.NoError(t, repo.Create(ctx, p))
	assert.False(t, p.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.PhotoURLs, got.PhotoURLs)
	assert.Nil(t, got.ContractEndDate)

	_, err = repo.GetByID(ctx, ids.For("player"))
	assert.True(t, errors.Is(err, core.ErrNotFound))
}
