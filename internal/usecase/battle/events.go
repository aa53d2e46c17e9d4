package usecase_battle

import "github.com/biofact005-rgb/neetquiz/internal/model"

type EventType string

const (
	EventRoomCreated    EventType = "room_created"
	EventPlayerJoined   EventType = "player_joined"
	EventGameStarted    EventType = "game_started"
	EventOpponentUpdate EventType = "opponent_update"
	EventError          EventType = "error"
)

// Event is one outbound frame, either targeted at a single connection
// or broadcast to every connection of a room.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}

type RoomCreatedPayload struct {
	Code string `json:"code"`
}

type PlayerJoinedPayload struct {
	PlayerOneName string `json:"p1_name"`
	PlayerTwoName string `json:"p2_name"`
}

type GameStartedPayload struct {
	Questions []model.Question `json:"questions"`
}

type OpponentUpdatePayload struct {
	UserID string `json:"user_id"`
	Score  int    `json:"score"`
}

type ErrorPayload struct {
	Message string `json:"msg"`
}

func errorEvent(msg string) Event {
	return Event{Type: EventError, Payload: ErrorPayload{Message: msg}}
}
