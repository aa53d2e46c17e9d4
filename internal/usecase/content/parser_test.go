package usecase_content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biofact005-rgb/neetquiz/internal/model"
)

const sampleUpload = `SOURCE: NCERT
TYPE: Botany
CHAPTER: Cell Structure

Which organelle is the powerhouse of the cell? | Nucleus | Mitochondria | Ribosome | Golgi body | 2
Which of these is absent in animal cells? | Cell wall | Cell membrane | Cytoplasm | Nucleus | 1
`

func TestParseTXT(t *testing.T) {
	t.Run("valid upload", func(t *testing.T) {
		chapter, err := ParseTXT(sampleUpload)
		require.NoError(t, err)

		assert.Equal(t, "NCERT", chapter.Source)
		assert.Equal(t, "Botany", chapter.Type)
		assert.Equal(t, "Cell Structure", chapter.Name)

		require.Len(t, chapter.Questions, 2)
		assert.Equal(t, model.Question{
			Prompt:  "Which organelle is the powerhouse of the cell?",
			Options: []string{"Nucleus", "Mitochondria", "Ribosome", "Golgi body"},
			Answer:  1,
		}, chapter.Questions[0])
		assert.Equal(t, 0, chapter.Questions[1].Answer)
	})

	t.Run("header casing and spacing are forgiven", func(t *testing.T) {
		chapter, err := ParseTXT("source:  ncert \ntype:Zoology\nChapter: Worms\n")
		require.NoError(t, err)
		assert.Equal(t, "ncert", chapter.Source)
		assert.Equal(t, "Zoology", chapter.Type)
		assert.Equal(t, "Worms", chapter.Name)
	})

	t.Run("missing header field", func(t *testing.T) {
		_, err := ParseTXT("SOURCE: NCERT\nTYPE: Botany\n\nq | a | b | c | d | 1\n")
		assert.ErrorIs(t, err, ErrInvalidHeader)
	})

	t.Run("header too far down is not found", func(t *testing.T) {
		content := "\n\n\n\n\n\n\n\n\n\nSOURCE: X\nTYPE: Y\nCHAPTER: Z\n"
		_, err := ParseTXT(content)
		assert.ErrorIs(t, err, ErrInvalidHeader)
	})

	t.Run("malformed question lines are skipped", func(t *testing.T) {
		content := "SOURCE: S\nTYPE: T\nCHAPTER: C\n" +
			"too | few | fields | 1\n" + // not enough parts
			"q | a | b | c | d | five\n" + // answer not a number
			"q | a | b | c | d | 0\n" + // answer out of range
			"q | a | b | c | d | 5\n" + // answer out of range
			"kept? | a | b | c | d | 4\n"

		chapter, err := ParseTXT(content)
		require.NoError(t, err)
		require.Len(t, chapter.Questions, 1)
		assert.Equal(t, "kept?", chapter.Questions[0].Prompt)
		assert.Equal(t, 3, chapter.Questions[0].Answer)
	})

	t.Run("no question lines still parses", func(t *testing.T) {
		chapter, err := ParseTXT("SOURCE: S\nTYPE: T\nCHAPTER: C\n")
		require.NoError(t, err)
		assert.Empty(t, chapter.Questions)
	})
}
