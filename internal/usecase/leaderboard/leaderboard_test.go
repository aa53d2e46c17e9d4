package usecase_leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/biofact005-rgb/neetquiz/internal/model"
	aggregator_mocks "github.com/biofact005-rgb/neetquiz/internal/usecase/leaderboard/mocks/leaderboard/aggregator"
	ranking_mocks "github.com/biofact005-rgb/neetquiz/internal/usecase/leaderboard/mocks/leaderboard/ranking"
)

// memoryCache is a map-backed stand-in for the redis driver.
type memoryCache struct {
	values map[string]string
	sets   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string]string)}
}

func (c *memoryCache) Get(key string) (string, error) {
	return c.values[key], nil
}

func (c *memoryCache) Set(key, value string, _ time.Duration) error {
	c.values[key] = value
	c.sets++
	return nil
}

func rankedRows() []model.LeaderboardRow {
	return []model.LeaderboardRow{
		{UserID: "1", Name: "A", Score: 300},
		{UserID: "2", Name: "B", Score: 200},
		{UserID: "3", Name: "C", Score: 100},
	}
}

func TestTop(t *testing.T) {
	ctx := context.Background()

	t.Run("all-time ranks come from user XP", func(t *testing.T) {
		ranking := ranking_mocks.NewUserRanking(t)
		aggregator := aggregator_mocks.NewScoreAggregator(t)
		ranking.On("TopByXP", ctx, 100).Return(rankedRows(), nil).Once()

		board, err := New(ranking, aggregator, nil).Top(ctx, model.PeriodAll, "2")
		require.NoError(t, err)

		require.Len(t, board.Top, 3)
		assert.Equal(t, 1, board.Top[0].Rank)
		assert.Equal(t, 3, board.Top[2].Rank)

		require.NotNil(t, board.User)
		assert.Equal(t, 2, board.User.Rank)
		assert.Equal(t, "B", board.User.Name)
	})

	t.Run("daily aggregates the last 24 hours", func(t *testing.T) {
		ranking := ranking_mocks.NewUserRanking(t)
		aggregator := aggregator_mocks.NewScoreAggregator(t)
		aggregator.On("TopSince", ctx, mock.MatchedBy(func(since time.Time) bool {
			return time.Since(since) > 23*time.Hour && time.Since(since) < 25*time.Hour
		}), 100).Return(rankedRows(), nil).Once()

		board, err := New(ranking, aggregator, nil).Top(ctx, model.PeriodDaily, "")
		require.NoError(t, err)
		assert.Len(t, board.Top, 3)
		assert.Nil(t, board.User)
	})

	t.Run("second read hits the cache", func(t *testing.T) {
		ranking := ranking_mocks.NewUserRanking(t)
		aggregator := aggregator_mocks.NewScoreAggregator(t)
		cache := newMemoryCache()
		ranking.On("TopByXP", ctx, 100).Return(rankedRows(), nil).Once()

		uc := New(ranking, aggregator, cache)

		first, err := uc.Top(ctx, model.PeriodAll, "")
		require.NoError(t, err)
		second, err := uc.Top(ctx, model.PeriodAll, "")
		require.NoError(t, err)

		assert.Equal(t, first.Top, second.Top)
		assert.Equal(t, 1, cache.sets)
	})

	t.Run("requester outside the top has no own row", func(t *testing.T) {
		ranking := ranking_mocks.NewUserRanking(t)
		aggregator := aggregator_mocks.NewScoreAggregator(t)
		ranking.On("TopByXP", ctx, 100).Return(rankedRows(), nil).Once()

		board, err := New(ranking, aggregator, nil).Top(ctx, model.PeriodAll, "99")
		require.NoError(t, err)
		assert.Nil(t, board.User)
	})

	t.Run("unknown period", func(t *testing.T) {
		ranking := ranking_mocks.NewUserRanking(t)
		aggregator := aggregator_mocks.NewScoreAggregator(t)

		_, err := New(ranking, aggregator, nil).Top(ctx, "hourly", "")
		assert.ErrorIs(t, err, ErrUnknownPeriod)
	})
}
