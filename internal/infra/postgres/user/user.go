package infra_postgres_user

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/jmoiron/sqlx"

	"github.com/biofact005-rgb/neetquiz/internal/model"
	usecase_progress "github.com/biofact005-rgb/neetquiz/internal/usecase/progress"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type userDTO struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	XP       int    `db:"xp"`
	Mistakes []byte `db:"mistakes"`
}

func (d *Driver) ByID(ctx context.Context, id string) (model.User, error) {
	var dto userDTO

	query := `
        SELECT id, name, xp, mistakes
        FROM users
        WHERE id = $1
    `

	err := d.db.GetContext(ctx, &dto, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, usecase_progress.ErrUserNotFound
		}
		return model.User{}, err
	}

	user := model.User{
		ID:   dto.ID,
		Name: dto.Name,
		XP:   dto.XP,
	}
	if len(dto.Mistakes) > 0 {
		if err := json.Unmarshal(dto.Mistakes, &user.Mistakes); err != nil {
			return model.User{}, err
		}
	}
	return user, nil
}

func (d *Driver) Create(ctx context.Context, user model.User) error {
	dto, err := toDTO(user)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (id, name, xp, mistakes)
		VALUES (:id, :name, :xp, :mistakes)
	`

	_, err = d.db.NamedExecContext(ctx, query, dto)
	return err
}

func (d *Driver) Update(ctx context.Context, user model.User) error {
	dto, err := toDTO(user)
	if err != nil {
		return err
	}

	query := `
        UPDATE users
        SET name = :name, xp = :xp, mistakes = :mistakes
        WHERE id = :id
    `

	result, err := d.db.NamedExecContext(ctx, query, dto)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_progress.ErrUserNotFound
	}
	return nil
}

// TopByXP serves the all-time leaderboard straight off user profiles.
func (d *Driver) TopByXP(ctx context.Context, limit int) ([]model.LeaderboardRow, error) {
	var dtos []struct {
		ID   string `db:"id"`
		Name string `db:"name"`
		XP   int    `db:"xp"`
	}

	query := `
        SELECT id, name, xp
        FROM users
        ORDER BY xp DESC
        LIMIT $1
    `

	if err := d.db.SelectContext(ctx, &dtos, query, limit); err != nil {
		return nil, err
	}

	rows := make([]model.LeaderboardRow, 0, len(dtos))
	for _, dto := range dtos {
		rows = append(rows, model.LeaderboardRow{
			UserID: dto.ID,
			Name:   dto.Name,
			Score:  dto.XP,
		})
	}
	return rows, nil
}

func toDTO(user model.User) (userDTO, error) {
	mistakes, err := json.Marshal(user.Mistakes)
	if err != nil {
		return userDTO{}, err
	}
	return userDTO{
		ID:       user.ID,
		Name:     user.Name,
		XP:       user.XP,
		Mistakes: mistakes,
	}, nil
}
