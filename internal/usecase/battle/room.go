package usecase_battle

import (
	"sync"
	"time"

	"github.com/biofact005-rgb/neetquiz/internal/model"
)

type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusReady    Status = "ready"
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
)

// Conn is an opaque handle to one connected client. The transport hands
// it out on registration and is the only party able to resolve it back
// to a live channel.
type Conn any

type Player struct {
	UserID string
	Name   string
	Score  int
	Conn   Conn
}

// Result is the final state handed to the ResultRecorder on game over.
type Result struct {
	Code      string
	PlayerOne Player
	PlayerTwo *Player
}

// Room is one in-memory two-player match. All state transitions go
// through its mutex; status never moves backwards.
type Room struct {
	mu        sync.Mutex
	code      string
	status    Status
	playerOne Player
	playerTwo *Player
	questions []model.Question
	createdAt time.Time
}

func newRoom(code string, playerOne Player) *Room {
	return &Room{
		code:      code,
		status:    StatusWaiting,
		playerOne: playerOne,
		createdAt: time.Now(),
	}
}

func (r *Room) Code() string {
	return r.code
}

func (r *Room) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Room) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

func (r *Room) Questions() []model.Question {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.questions
}

// Players returns a snapshot of both slots. The second value is nil
// while nobody has joined yet.
func (r *Room) Players() (Player, *Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.playerTwo == nil {
		return r.playerOne, nil
	}
	playerTwo := *r.playerTwo
	return r.playerOne, &playerTwo
}

// Join fills the second slot exactly once and advances the room to
// ready. Any later attempt, or an attempt against a non-waiting room,
// fails with ErrRoomUnavailable.
func (r *Room) Join(playerTwo Player) (PlayerJoinedPayload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != StatusWaiting || r.playerTwo != nil {
		return PlayerJoinedPayload{}, ErrRoomUnavailable
	}

	r.playerTwo = &playerTwo
	r.status = StatusReady

	return PlayerJoinedPayload{
		PlayerOneName: r.playerOne.Name,
		PlayerTwoName: playerTwo.Name,
	}, nil
}

// InstallQuestions moves the room from ready to playing. The caller
// fetches the batch without holding the lock; a start that lost the
// race simply finds the room no longer ready.
func (r *Room) InstallQuestions(questions []model.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != StatusReady {
		return ErrInvalidTransition
	}

	r.questions = questions
	r.status = StatusPlaying
	return nil
}

// SetScore overwrites the score of whichever slot matches userID and
// returns the opponent's snapshot for targeted delivery. Unknown user
// IDs are ignored.
func (r *Room) SetScore(userID string, score int) (opponent *Player, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case r.playerOne.UserID == userID:
		r.playerOne.Score = score
		if r.playerTwo == nil {
			return nil, true
		}
		playerTwo := *r.playerTwo
		return &playerTwo, true
	case r.playerTwo != nil && r.playerTwo.UserID == userID:
		r.playerTwo.Score = score
		playerOne := r.playerOne
		return &playerOne, true
	default:
		return nil, false
	}
}

// Finish marks a playing room as finished and returns the final scores.
func (r *Room) Finish() (Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != StatusPlaying {
		return Result{}, ErrInvalidTransition
	}
	r.status = StatusFinished

	result := Result{Code: r.code, PlayerOne: r.playerOne}
	if r.playerTwo != nil {
		playerTwo := *r.playerTwo
		result.PlayerTwo = &playerTwo
	}
	return result, nil
}
