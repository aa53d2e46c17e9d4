package infra_postgres_scorelog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/biofact005-rgb/neetquiz/internal/model"
	usecase_battle "github.com/biofact005-rgb/neetquiz/internal/usecase/battle"
)

// Driver appends score log rows and aggregates them for the periodic
// leaderboards. It also records battle results, which is why finished
// matches show up in the daily ranking.
type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type entryDTO struct {
	ID     uuid.UUID `db:"id"`
	UserID string    `db:"user_id"`
	Name   string    `db:"name"`
	Score  int       `db:"score"`
	TS     time.Time `db:"ts"`
}

func (d *Driver) Append(ctx context.Context, entry model.ScoreEntry) error {
	dto := entryDTO{
		ID:     entry.ID,
		UserID: entry.UserID,
		Name:   entry.Name,
		Score:  entry.Score,
		TS:     entry.TS,
	}

	query := `
		INSERT INTO score_logs (id, user_id, name, score, ts)
		VALUES (:id, :user_id, :name, :score, :ts)
	`

	_, err := d.db.NamedExecContext(ctx, query, dto)
	return err
}

func (d *Driver) TopSince(ctx context.Context, since time.Time, limit int) ([]model.LeaderboardRow, error) {
	var dtos []struct {
		UserID string `db:"user_id"`
		Name   string `db:"name"`
		Score  int    `db:"score"`
	}

	query := `
        SELECT user_id, MAX(name) AS name, SUM(score) AS score
        FROM score_logs
        WHERE ts > $1
        GROUP BY user_id
        ORDER BY score DESC
        LIMIT $2
    `

	if err := d.db.SelectContext(ctx, &dtos, query, since, limit); err != nil {
		return nil, err
	}

	rows := make([]model.LeaderboardRow, 0, len(dtos))
	for _, dto := range dtos {
		rows = append(rows, model.LeaderboardRow{
			UserID: dto.UserID,
			Name:   dto.Name,
			Score:  dto.Score,
		})
	}
	return rows, nil
}

// Record persists the final scores of a finished match as ordinary
// score log entries, one per player.
func (d *Driver) Record(ctx context.Context, result usecase_battle.Result) error {
	now := time.Now()

	players := []usecase_battle.Player{result.PlayerOne}
	if result.PlayerTwo != nil {
		players = append(players, *result.PlayerTwo)
	}

	for _, player := range players {
		if player.Score <= 0 {
			continue
		}
		entry := model.ScoreEntry{
			ID:     uuid.New(),
			UserID: player.UserID,
			Name:   player.Name,
			Score:  player.Score,
			TS:     now,
		}
		if err := d.Append(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}
