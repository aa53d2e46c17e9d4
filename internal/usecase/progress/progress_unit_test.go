package usecase_progress

import (
	"context"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/biofact005-rgb/neetquiz/internal/model"
	repo_mocks "github.com/biofact005-rgb/neetquiz/internal/usecase/progress/mocks/progress/repository"
	scorelog_mocks "github.com/biofact005-rgb/neetquiz/internal/usecase/progress/mocks/progress/scorelog"
)

type UsecaseProgressUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase  *Usecase
	userRepo *repo_mocks.UserRepository
	scoreLog *scorelog_mocks.ScoreLog
	ctx      context.Context
}

func initResources(t provider.T) *resources {
	userRepo := repo_mocks.NewUserRepository(t)
	scoreLog := scorelog_mocks.NewScoreLog(t)
	usecase := New(userRepo, scoreLog)

	return &resources{
		usecase:  usecase,
		userRepo: userRepo,
		scoreLog: scoreLog,
		ctx:      context.Background(),
	}
}

func (s *UsecaseProgressUnitSuite) TestGrade(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name            string
		xp              int
		expectedLevel   int
		expectedCurrent int
		expectedReq     int
	}{
		{name: "fresh account", xp: 0, expectedLevel: 1, expectedCurrent: 0, expectedReq: 100},
		{name: "mid first level", xp: 50, expectedLevel: 1, expectedCurrent: 50, expectedReq: 100},
		{name: "exactly one level", xp: 100, expectedLevel: 2, expectedCurrent: 0, expectedReq: 120},
		{name: "two levels deep", xp: 250, expectedLevel: 3, expectedCurrent: 30, expectedReq: 140},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			grade := Grade(tc.xp)

			assert.Equal(t, tc.expectedLevel, grade.Level)
			assert.Equal(t, tc.expectedCurrent, grade.CurrentXP)
			assert.Equal(t, tc.expectedReq, grade.RequiredXP)
			assert.InDelta(t, float64(tc.expectedCurrent)/float64(tc.expectedReq)*100, grade.Percent, 0.01)
		})
	}
}

func (s *UsecaseProgressUnitSuite) TestSync(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		addScore      int
		mistakes      []model.Mistake
		solved        []string
		setupMocks    func(r *resources)
		validate      func(t provider.T, result SyncResult)
		expectError   bool
		expectedError error
	}{
		{
			name:     "existing user gains score and a log entry",
			addScore: 20,
			setupMocks: func(r *resources) {
				r.userRepo.On("ByID", r.ctx, "42").
					Return(model.User{ID: "42", Name: "old name", XP: 90}, nil).Once()
				r.scoreLog.On("Append", r.ctx, mock.MatchedBy(func(e model.ScoreEntry) bool {
					return e.UserID == "42" && e.Score == 20
				})).Return(nil).Once()
				r.userRepo.On("Update", r.ctx, mock.MatchedBy(func(u model.User) bool {
					return u.XP == 110 && u.Name == "doctor"
				})).Return(nil).Once()
			},
			validate: func(t provider.T, result SyncResult) {
				assert.Equal(t, 2, result.Grade.Level)
				assert.Equal(t, 10, result.Grade.CurrentXP)
			},
		},
		{
			name:     "unknown user is created on first sync",
			addScore: 0,
			setupMocks: func(r *resources) {
				r.userRepo.On("ByID", r.ctx, "42").
					Return(model.User{}, ErrUserNotFound).Once()
				r.userRepo.On("Create", r.ctx, mock.MatchedBy(func(u model.User) bool {
					return u.ID == "42" && u.XP == 0
				})).Return(nil).Once()
				r.userRepo.On("Update", r.ctx, mock.AnythingOfType("model.User")).
					Return(nil).Once()
			},
			validate: func(t provider.T, result SyncResult) {
				assert.Equal(t, 1, result.Grade.Level)
			},
		},
		{
			name:     "negative score never drops XP below zero",
			addScore: -50,
			setupMocks: func(r *resources) {
				r.userRepo.On("ByID", r.ctx, "42").
					Return(model.User{ID: "42", XP: 10}, nil).Once()
				r.userRepo.On("Update", r.ctx, mock.MatchedBy(func(u model.User) bool {
					return u.XP == 0
				})).Return(nil).Once()
			},
			validate: func(t provider.T, result SyncResult) {
				assert.Equal(t, 0, result.Grade.CurrentXP)
			},
		},
		{
			name:     "mistakes merge by prompt and solved ones drop",
			addScore: 0,
			mistakes: []model.Mistake{
				{Prompt: "osmosis"},
				{Prompt: "mitosis"},
			},
			solved: []string{"meiosis"},
			setupMocks: func(r *resources) {
				r.userRepo.On("ByID", r.ctx, "42").
					Return(model.User{ID: "42", Mistakes: []model.Mistake{
						{Prompt: "mitosis"},
						{Prompt: "meiosis"},
					}}, nil).Once()
				r.userRepo.On("Update", r.ctx, mock.AnythingOfType("model.User")).
					Return(nil).Once()
			},
			validate: func(t provider.T, result SyncResult) {
				prompts := make([]string, 0, len(result.Mistakes))
				for _, m := range result.Mistakes {
					prompts = append(prompts, m.Prompt)
				}
				assert.ElementsMatch(t, []string{"mitosis", "osmosis"}, prompts)
			},
		},
		{
			name:     "repository failure surfaces as internal",
			addScore: 5,
			setupMocks: func(r *resources) {
				r.userRepo.On("ByID", r.ctx, "42").
					Return(model.User{}, assert.AnError).Once()
			},
			expectError:   true,
			expectedError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			result, err := r.usecase.Sync(r.ctx, "42", "doctor", tc.addScore, tc.mistakes, tc.solved)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
				tc.validate(t, result)
			}
			r.userRepo.AssertExpectations(t)
			r.scoreLog.AssertExpectations(t)
		})
	}
}

func TestUsecaseProgressUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseProgressUnitSuite))
}
