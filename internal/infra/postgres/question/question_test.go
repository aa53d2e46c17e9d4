package infra_postgres_question

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biofact005-rgb/neetquiz/internal/model"
	usecase_content "github.com/biofact005-rgb/neetquiz/internal/usecase/content"
)

func initDriver(t *testing.T) (*Driver, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(sqlx.NewDb(db, "postgres")), mock
}

func TestUpsert(t *testing.T) {
	driver, mock := initDriver(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO chapters")).
		WithArgs(sqlmock.AnyArg(), "NCERT", "Botany", "Cells", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := driver.Upsert(context.Background(), model.Chapter{
		Source: "NCERT",
		Type:   "Botany",
		Name:   "Cells",
		Questions: []model.Question{
			{Prompt: "q", Options: []string{"a", "b", "c", "d"}, Answer: 1},
		},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetch(t *testing.T) {
	driver, mock := initDriver(t)

	data := `[{"q":"one","opts":["a","b","c","d"],"ans":0},{"q":"two","opts":["a","b","c","d"],"ans":3}]`
	rows := sqlmock.NewRows([]string{"id", "source", "qtype", "chapter", "data"}).
		AddRow(uuid.New(), "NCERT", "Botany", "Cells", []byte(data)).
		AddRow(uuid.New(), "NCERT", "Zoology", "Worms", []byte(data))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, source, qtype, chapter, data")).
		WithArgs("NCERT").
		WillReturnRows(rows)

	batch, err := driver.Fetch(context.Background(), "NCERT", 3)
	require.NoError(t, err)

	// Bounded at max even across chapters.
	require.Len(t, batch, 3)
	assert.Equal(t, "one", batch[0].Prompt)
	assert.Equal(t, 3, batch[1].Answer)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	t.Run("scoped delete", func(t *testing.T) {
		driver, mock := initDriver(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM chapters")).
			WithArgs("NCERT", "Botany").
			WillReturnResult(sqlmock.NewResult(0, 2))

		require.NoError(t, driver.DeleteType(context.Background(), "NCERT", "Botany"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing matched", func(t *testing.T) {
		driver, mock := initDriver(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM chapters")).
			WithArgs("ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := driver.DeleteSource(context.Background(), "ghost")
		assert.ErrorIs(t, err, usecase_content.ErrResourceNotFound)
	})
}
