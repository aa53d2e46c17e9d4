package usecase_progress

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/biofact005-rgb/neetquiz/internal/model"
)

var (
	ErrInternal = errors.New("internal error")

	// ErrUserNotFound is what repositories return for an unknown user
	// ID; Sync treats it as "first sight" and creates the profile.
	ErrUserNotFound = errors.New("user not found")
)

//go:generate mockery --name=UserRepository --output=./mocks/progress/repository --filename=repository.go
type UserRepository interface {
	ByID(ctx context.Context, id string) (model.User, error)
	Create(ctx context.Context, user model.User) error
	Update(ctx context.Context, user model.User) error
}

//go:generate mockery --name=ScoreLog --output=./mocks/progress/scorelog --filename=scorelog.go
type ScoreLog interface {
	Append(ctx context.Context, entry model.ScoreEntry) error
}

type Usecase struct {
	userRepository UserRepository
	scoreLog       ScoreLog
}

func New(userRepository UserRepository, scoreLog ScoreLog) *Usecase {
	return &Usecase{
		userRepository: userRepository,
		scoreLog:       scoreLog,
	}
}

// Grade breaks a raw XP total down against the level curve: the first
// level costs 100 XP and every next one 20 more.
func Grade(xp int) model.Grade {
	level := 1
	cost := 100
	for xp >= cost {
		xp -= cost
		level++
		cost += 20
	}

	percent := float64(xp) / float64(cost) * 100
	if percent > 100 {
		percent = 100
	}

	return model.Grade{
		Level:      level,
		CurrentXP:  xp,
		RequiredXP: cost,
		Percent:    percent,
	}
}

type SyncResult struct {
	Grade    model.Grade
	Mistakes []model.Mistake
}

// Sync applies one client report: XP delta (floored at zero overall),
// freshly failed questions and prompts the user has since solved. A
// positive delta is also appended to the score log for the periodic
// leaderboards.
func (u *Usecase) Sync(ctx context.Context, userID, name string, addScore int, mistakes []model.Mistake, solved []string) (SyncResult, error) {
	user, err := u.userRepository.ByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			return SyncResult{}, errors.Join(ErrInternal, err)
		}
		user = model.User{ID: userID, Name: name}
		if err := u.userRepository.Create(ctx, user); err != nil {
			return SyncResult{}, errors.Join(ErrInternal, err)
		}
	}

	user.XP += addScore
	if user.XP < 0 {
		user.XP = 0
	}
	user.Name = name
	user.Mistakes = mergeMistakes(user.Mistakes, mistakes, solved)

	if addScore > 0 {
		entry := model.ScoreEntry{
			ID:     uuid.New(),
			UserID: userID,
			Name:   name,
			Score:  addScore,
			TS:     time.Now(),
		}
		if err := u.scoreLog.Append(ctx, entry); err != nil {
			return SyncResult{}, errors.Join(ErrInternal, err)
		}
	}

	if err := u.userRepository.Update(ctx, user); err != nil {
		return SyncResult{}, errors.Join(ErrInternal, err)
	}

	return SyncResult{
		Grade:    Grade(user.XP),
		Mistakes: user.Mistakes,
	}, nil
}

// mergeMistakes appends unseen failures (keyed by prompt) and drops
// everything reported solved.
func mergeMistakes(current, incoming []model.Mistake, solved []string) []model.Mistake {
	seen := make(map[string]bool, len(current))
	for _, m := range current {
		seen[m.Prompt] = true
	}
	for _, m := range incoming {
		if !seen[m.Prompt] {
			current = append(current, m)
			seen[m.Prompt] = true
		}
	}

	if len(solved) == 0 {
		return current
	}
	solvedSet := make(map[string]bool, len(solved))
	for _, prompt := range solved {
		solvedSet[prompt] = true
	}

	kept := current[:0]
	for _, m := range current {
		if !solvedSet[m.Prompt] {
			kept = append(kept, m)
		}
	}
	return kept
}
