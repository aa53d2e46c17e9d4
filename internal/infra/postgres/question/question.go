package infra_postgres_question

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/biofact005-rgb/neetquiz/internal/model"
	usecase_content "github.com/biofact005-rgb/neetquiz/internal/usecase/content"
)

// Driver stores one row per chapter with its questions as a jsonb
// array, mirroring the upload unit. It doubles as the battle question
// source by flattening topic-matching chapters.
type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type chapterDTO struct {
	ID      uuid.UUID `db:"id"`
	Source  string    `db:"source"`
	QType   string    `db:"qtype"`
	Chapter string    `db:"chapter"`
	Data    []byte    `db:"data"`
}

func (d *Driver) Upsert(ctx context.Context, chapter model.Chapter) error {
	data, err := json.Marshal(chapter.Questions)
	if err != nil {
		return err
	}

	dto := chapterDTO{
		ID:      uuid.New(),
		Source:  chapter.Source,
		QType:   chapter.Type,
		Chapter: chapter.Name,
		Data:    data,
	}

	query := `
		INSERT INTO chapters (id, source, qtype, chapter, data)
		VALUES (:id, :source, :qtype, :chapter, :data)
		ON CONFLICT (source, qtype, chapter)
		DO UPDATE SET data = EXCLUDED.data
	`

	_, err = d.db.NamedExecContext(ctx, query, dto)
	return err
}

func (d *Driver) All(ctx context.Context) ([]model.Chapter, error) {
	var dtos []chapterDTO

	query := `
        SELECT id, source, qtype, chapter, data
        FROM chapters
        ORDER BY source, qtype, chapter
    `

	if err := d.db.SelectContext(ctx, &dtos, query); err != nil {
		return nil, err
	}

	chapters := make([]model.Chapter, 0, len(dtos))
	for _, dto := range dtos {
		chapter, err := fromDTO(dto)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, chapter)
	}
	return chapters, nil
}

func (d *Driver) DeleteSource(ctx context.Context, source string) error {
	query := `
        DELETE FROM chapters
        WHERE source = $1
    `
	return d.deleteExec(ctx, query, source)
}

func (d *Driver) DeleteType(ctx context.Context, source, qtype string) error {
	query := `
        DELETE FROM chapters
        WHERE source = $1 AND qtype = $2
    `
	return d.deleteExec(ctx, query, source, qtype)
}

func (d *Driver) DeleteChapter(ctx context.Context, source, qtype, chapter string) error {
	query := `
        DELETE FROM chapters
        WHERE source = $1 AND qtype = $2 AND chapter = $3
    `
	return d.deleteExec(ctx, query, source, qtype, chapter)
}

func (d *Driver) deleteExec(ctx context.Context, query string, args ...any) error {
	result, err := d.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_content.ErrResourceNotFound
	}
	return nil
}

// Fetch flattens the questions of every chapter matching the topic
// filter (an empty topic matches all sources) into one bounded batch.
func (d *Driver) Fetch(ctx context.Context, topic string, max int) ([]model.Question, error) {
	var dtos []chapterDTO

	query := `
        SELECT id, source, qtype, chapter, data
        FROM chapters
        WHERE $1 = '' OR source = $1
    `

	if err := d.db.SelectContext(ctx, &dtos, query, topic); err != nil {
		return nil, err
	}

	batch := make([]model.Question, 0, max)
	for _, dto := range dtos {
		chapter, err := fromDTO(dto)
		if err != nil {
			return nil, err
		}
		for _, question := range chapter.Questions {
			if len(batch) >= max {
				return batch, nil
			}
			batch = append(batch, question)
		}
	}
	return batch, nil
}

func fromDTO(dto chapterDTO) (model.Chapter, error) {
	chapter := model.Chapter{
		ID:     dto.ID,
		Source: dto.Source,
		Type:   dto.QType,
		Name:   dto.Chapter,
	}
	if len(dto.Data) > 0 {
		if err := json.Unmarshal(dto.Data, &chapter.Questions); err != nil {
			return model.Chapter{}, err
		}
	}
	return chapter, nil
}
