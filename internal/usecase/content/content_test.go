package usecase_content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/biofact005-rgb/neetquiz/internal/model"
	repo_mocks "github.com/biofact005-rgb/neetquiz/internal/usecase/content/mocks/content/repository"
)

func TestUploadTXT(t *testing.T) {
	ctx := context.Background()

	t.Run("parsed chapter is upserted", func(t *testing.T) {
		repo := repo_mocks.NewChapterRepository(t)
		repo.On("Upsert", ctx, mock.MatchedBy(func(c model.Chapter) bool {
			return c.Source == "NCERT" && len(c.Questions) == 2
		})).Return(nil).Once()

		chapter, err := New(repo).UploadTXT(ctx, sampleUpload)
		require.NoError(t, err)
		assert.Equal(t, "Cell Structure", chapter.Name)
	})

	t.Run("bad header never reaches the repository", func(t *testing.T) {
		repo := repo_mocks.NewChapterRepository(t)

		_, err := New(repo).UploadTXT(ctx, "just text")
		assert.ErrorIs(t, err, ErrInvalidHeader)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestTree(t *testing.T) {
	ctx := context.Background()

	repo := repo_mocks.NewChapterRepository(t)
	repo.On("All", ctx).Return([]model.Chapter{
		{Source: "NCERT", Type: "Botany", Name: "Cells", Questions: questionList(2)},
		{Source: "NCERT", Type: "Botany", Name: "Roots", Questions: questionList(1)},
		{Source: "NCERT", Type: "Zoology", Name: "Worms", Questions: questionList(3)},
		{Source: "PYQ", Type: "Mixed", Name: "2024", Questions: questionList(4)},
	}, nil).Once()

	tree, err := New(repo).Tree(ctx)
	require.NoError(t, err)

	require.Contains(t, tree, "NCERT")
	require.Contains(t, tree, "PYQ")
	assert.Len(t, tree["NCERT"]["Botany"], 2)
	assert.Len(t, tree["NCERT"]["Zoology"]["Worms"], 3)
	assert.Len(t, tree["PYQ"]["Mixed"]["2024"], 4)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("path depth selects the scope", func(t *testing.T) {
		repo := repo_mocks.NewChapterRepository(t)
		repo.On("DeleteSource", ctx, "NCERT").Return(nil).Once()
		repo.On("DeleteType", ctx, "NCERT", "Botany").Return(nil).Once()
		repo.On("DeleteChapter", ctx, "NCERT", "Botany", "Cells").Return(nil).Once()

		uc := New(repo)
		require.NoError(t, uc.Delete(ctx, nil, "NCERT"))
		require.NoError(t, uc.Delete(ctx, []string{"NCERT"}, "Botany"))
		require.NoError(t, uc.Delete(ctx, []string{"NCERT", "Botany"}, "Cells"))
	})

	t.Run("deeper paths are rejected", func(t *testing.T) {
		repo := repo_mocks.NewChapterRepository(t)

		err := New(repo).Delete(ctx, []string{"a", "b", "c"}, "d")
		assert.ErrorIs(t, err, ErrResourceNotFound)
	})
}

func questionList(n int) []model.Question {
	questions := make([]model.Question, n)
	for i := range questions {
		questions[i] = model.Question{
			Prompt:  "q",
			Options: []string{"a", "b", "c", "d"},
		}
	}
	return questions
}
