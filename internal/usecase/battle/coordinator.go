package usecase_battle

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"

	"github.com/biofact005-rgb/neetquiz/internal/model"
)

// How many records to pull from the source before sampling the match
// batch out of them.
const fetchLimit = 100

//go:generate mockery --name=QuestionSource --output=./mocks/battle/source --filename=source.go
type QuestionSource interface {
	Fetch(ctx context.Context, topic string, max int) ([]model.Question, error)
}

//go:generate mockery --name=ResultRecorder --output=./mocks/battle/recorder --filename=recorder.go
type ResultRecorder interface {
	Record(ctx context.Context, result Result) error
}

// Transport delivers outbound events. Join associates a connection
// with a room so later Broadcast calls reach it.
//
//go:generate mockery --name=Transport --output=./mocks/battle/transport --filename=transport.go
type Transport interface {
	Join(conn Conn, code string)
	Reply(conn Conn, event Event)
	Broadcast(code string, event Event)
}

// Coordinator translates connection-scoped events into Room state
// transitions and pushes the results back through the transport. It
// never keeps a Room reference beyond a single call.
type Coordinator struct {
	registry  *Registry
	source    QuestionSource
	recorder  ResultRecorder
	transport Transport

	topic     string
	batchSize int

	logger *slog.Logger
}

type CoordinatorOption func(*Coordinator)

func WithLogger(logger *slog.Logger) CoordinatorOption {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

func New(
	registry *Registry,
	source QuestionSource,
	recorder ResultRecorder,
	transport Transport,
	topic string,
	batchSize int,
	opts ...CoordinatorOption,
) *Coordinator {
	if batchSize <= 0 {
		batchSize = 5 /* default */
	}

	c := &Coordinator{
		registry:  registry,
		source:    source,
		recorder:  recorder,
		transport: transport,
		topic:     topic,
		batchSize: batchSize,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateRoom allocates a waiting room owned by the caller and replies
// with its code. Nobody else is notified.
func (c *Coordinator) CreateRoom(conn Conn, userID, name string) (string, error) {
	room, err := c.registry.Create(Player{UserID: userID, Name: name, Conn: conn})
	if err != nil {
		c.logger.Error("failed to create room",
			"user_id", userID,
			"error", err.Error())
		c.transport.Reply(conn, errorEvent("could not create room"))
		return "", err
	}

	c.transport.Join(conn, room.Code())
	c.transport.Reply(conn, Event{
		Type:    EventRoomCreated,
		Payload: RoomCreatedPayload{Code: room.Code()},
	})

	c.logger.Info("room created",
		"code", room.Code(),
		"user_id", userID)

	return room.Code(), nil
}

// JoinRoom fills the second slot of a waiting room. The caller alone
// hears about failures; a success is announced to the whole room.
func (c *Coordinator) JoinRoom(conn Conn, code, userID, name string) error {
	room, err := c.registry.Get(code)
	if err != nil {
		c.transport.Reply(conn, errorEvent("room not found"))
		return err
	}

	payload, err := room.Join(Player{UserID: userID, Name: name, Conn: conn})
	if err != nil {
		c.transport.Reply(conn, errorEvent("room unavailable"))
		return err
	}

	c.transport.Join(conn, code)
	c.transport.Broadcast(code, Event{Type: EventPlayerJoined, Payload: payload})

	c.logger.Info("player joined",
		"code", code,
		"user_id", userID)

	return nil
}

// StartGame fetches a question batch, installs a random subset and
// announces it to the room. A start against a missing or non-ready
// room changes nothing; an empty batch leaves the room in ready and is
// reported to the caller only.
func (c *Coordinator) StartGame(ctx context.Context, conn Conn, code string) error {
	room, err := c.registry.Get(code)
	if err != nil {
		return nil
	}
	if room.Status() != StatusReady {
		return nil
	}

	// The fetch is the only blocking call in this path; it runs
	// without holding the room lock.
	batch, err := c.source.Fetch(ctx, c.topic, fetchLimit)
	if err != nil {
		c.logger.Error("question fetch failed",
			"code", code,
			"topic", c.topic,
			"error", err.Error())
		return errors.Join(ErrInternal, err)
	}
	if len(batch) == 0 {
		c.transport.Reply(conn, errorEvent("no questions available"))
		return ErrEmptyQuestionBatch
	}

	picked := sampleQuestions(batch, c.batchSize)
	if err := room.InstallQuestions(picked); err != nil {
		// Lost the race against another start; that one broadcasts.
		return nil
	}

	c.transport.Broadcast(code, Event{
		Type:    EventGameStarted,
		Payload: GameStartedPayload{Questions: picked},
	})

	c.logger.Info("game started",
		"code", code,
		"questions", len(picked))

	return nil
}

// SubmitAnswer overwrites the caller's running total and forwards it
// to the opponent. Scores are client-reported and taken as-is.
func (c *Coordinator) SubmitAnswer(conn Conn, code, userID string, score int) error {
	room, err := c.registry.Get(code)
	if err != nil {
		c.transport.Reply(conn, errorEvent("room not found"))
		return err
	}

	opponent, ok := room.SetScore(userID, score)
	if !ok {
		return nil
	}
	if opponent != nil {
		c.transport.Reply(opponent.Conn, Event{
			Type:    EventOpponentUpdate,
			Payload: OpponentUpdatePayload{UserID: userID, Score: score},
		})
	}
	return nil
}

// GameOver finishes a playing room, hands the result to the recorder
// and releases the room so memory stays bounded.
func (c *Coordinator) GameOver(ctx context.Context, code string) error {
	room, err := c.registry.Get(code)
	if err != nil {
		return nil
	}

	result, err := room.Finish()
	if err != nil {
		return nil
	}

	if c.recorder != nil {
		if err := c.recorder.Record(ctx, result); err != nil {
			c.logger.Error("failed to record match result",
				"code", code,
				"error", err.Error())
		}
	}

	c.registry.Remove(code)

	c.logger.Info("game over",
		"code", code)

	return nil
}

// sampleQuestions picks up to n records without replacement.
func sampleQuestions(batch []model.Question, n int) []model.Question {
	if n > len(batch) {
		n = len(batch)
	}
	picked := make([]model.Question, 0, n)
	for _, i := range rand.Perm(len(batch))[:n] {
		picked = append(picked, batch[i])
	}
	return picked
}
