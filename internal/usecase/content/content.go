package usecase_content

import (
	"context"
	"errors"

	"github.com/biofact005-rgb/neetquiz/internal/model"
)

var (
	ErrInvalidHeader    = errors.New("header missing, expected SOURCE | TYPE | CHAPTER")
	ErrResourceNotFound = errors.New("no such resource")
	ErrInternal         = errors.New("internal error")
)

//go:generate mockery --name=ChapterRepository --output=./mocks/content/repository --filename=repository.go
type ChapterRepository interface {
	Upsert(ctx context.Context, chapter model.Chapter) error
	All(ctx context.Context) ([]model.Chapter, error)
	DeleteSource(ctx context.Context, source string) error
	DeleteType(ctx context.Context, source, qtype string) error
	DeleteChapter(ctx context.Context, source, qtype, chapter string) error
}

type Usecase struct {
	chapterRepository ChapterRepository
}

func New(r ChapterRepository) *Usecase {
	return &Usecase{
		chapterRepository: r,
	}
}

// UploadTXT parses an uploaded file and overwrites the chapter it
// addresses. Re-uploading the same (source, type, chapter) triple
// replaces its questions.
func (u *Usecase) UploadTXT(ctx context.Context, content string) (model.Chapter, error) {
	chapter, err := ParseTXT(content)
	if err != nil {
		return model.Chapter{}, err
	}

	if err := u.chapterRepository.Upsert(ctx, chapter); err != nil {
		return model.Chapter{}, errors.Join(ErrInternal, err)
	}
	return chapter, nil
}

// Tree returns the nested source -> type -> chapter listing the web
// app renders as its study menu.
func (u *Usecase) Tree(ctx context.Context) (model.ContentTree, error) {
	chapters, err := u.chapterRepository.All(ctx)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	tree := make(model.ContentTree)
	for _, chapter := range chapters {
		if _, ok := tree[chapter.Source]; !ok {
			tree[chapter.Source] = make(map[string]map[string][]model.Question)
		}
		if _, ok := tree[chapter.Source][chapter.Type]; !ok {
			tree[chapter.Source][chapter.Type] = make(map[string][]model.Question)
		}
		tree[chapter.Source][chapter.Type][chapter.Name] = chapter.Questions
	}
	return tree, nil
}

// Delete removes content addressed by path depth: an empty path drops
// a whole source, one element a type within it, two a single chapter.
func (u *Usecase) Delete(ctx context.Context, path []string, target string) error {
	var err error
	switch len(path) {
	case 0:
		err = u.chapterRepository.DeleteSource(ctx, target)
	case 1:
		err = u.chapterRepository.DeleteType(ctx, path[0], target)
	case 2:
		err = u.chapterRepository.DeleteChapter(ctx, path[0], path[1], target)
	default:
		return ErrResourceNotFound
	}

	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return ErrResourceNotFound
		}
		return errors.Join(ErrInternal, err)
	}
	return nil
}
