package usecase_leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/biofact005-rgb/neetquiz/internal/model"
)

var (
	ErrUnknownPeriod = errors.New("unknown leaderboard period")
	ErrInternal      = errors.New("internal error")
)

const (
	topLimit = 100
	cacheTTL = 30 * time.Second
)

//go:generate mockery --name=UserRanking --output=./mocks/leaderboard/ranking --filename=ranking.go
type UserRanking interface {
	TopByXP(ctx context.Context, limit int) ([]model.LeaderboardRow, error)
}

//go:generate mockery --name=ScoreAggregator --output=./mocks/leaderboard/aggregator --filename=aggregator.go
type ScoreAggregator interface {
	TopSince(ctx context.Context, since time.Time, limit int) ([]model.LeaderboardRow, error)
}

// Cache sits in front of the aggregate queries; a miss is a ("", nil)
// pair, matching the redis driver.
type Cache interface {
	Get(key string) (string, error)
	Set(key string, value string, ttl time.Duration) error
}

type Board struct {
	Top  []model.LeaderboardRow
	User *model.LeaderboardRow
}

type Usecase struct {
	ranking    UserRanking
	aggregator ScoreAggregator
	cache      Cache
	logger     *slog.Logger
}

type UsecaseOption func(*Usecase)

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(ranking UserRanking, aggregator ScoreAggregator, cache Cache, opts ...UsecaseOption) *Usecase {
	u := &Usecase{
		ranking:    ranking,
		aggregator: aggregator,
		cache:      cache,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Top returns the ranked top 100 for a period plus the requester's own
// row when it made the cut. All-time ranks come straight off user XP;
// daily and weekly aggregate the score log.
func (u *Usecase) Top(ctx context.Context, period model.LeaderboardPeriod, requesterID string) (Board, error) {
	rows, err := u.rows(ctx, period)
	if err != nil {
		return Board{}, err
	}

	board := Board{Top: rows}
	if requesterID != "" {
		for i := range rows {
			if rows[i].UserID == requesterID {
				board.User = &rows[i]
				break
			}
		}
	}
	return board, nil
}

func (u *Usecase) rows(ctx context.Context, period model.LeaderboardPeriod) ([]model.LeaderboardRow, error) {
	if cached := u.fromCache(period); cached != nil {
		return cached, nil
	}

	var (
		rows []model.LeaderboardRow
		err  error
	)
	switch period {
	case model.PeriodAll:
		rows, err = u.ranking.TopByXP(ctx, topLimit)
	case model.PeriodDaily:
		rows, err = u.aggregator.TopSince(ctx, time.Now().Add(-24*time.Hour), topLimit)
	case model.PeriodWeekly:
		rows, err = u.aggregator.TopSince(ctx, time.Now().Add(-7*24*time.Hour), topLimit)
	default:
		return nil, ErrUnknownPeriod
	}
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	for i := range rows {
		rows[i].Rank = i + 1
	}

	u.toCache(period, rows)
	return rows, nil
}

func (u *Usecase) fromCache(period model.LeaderboardPeriod) []model.LeaderboardRow {
	if u.cache == nil {
		return nil
	}

	cached, err := u.cache.Get(period)
	if err != nil || cached == "" {
		return nil
	}

	var rows []model.LeaderboardRow
	if err := json.Unmarshal([]byte(cached), &rows); err != nil {
		return nil
	}
	return rows
}

func (u *Usecase) toCache(period model.LeaderboardPeriod, rows []model.LeaderboardRow) {
	if u.cache == nil {
		return
	}

	encoded, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := u.cache.Set(period, string(encoded), cacheTTL); err != nil {
		u.logger.Error("failed to cache leaderboard",
			"period", period,
			"error", err.Error())
	}
}
