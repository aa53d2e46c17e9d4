package ws_battle

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/skip2/go-qrcode"

	usecase_battle "github.com/biofact005-rgb/neetquiz/internal/usecase/battle"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Inbound frames carry the event name, the room code and, for answer
// submissions, the client's running total.
type commandType string

const (
	commandCreateRoom   commandType = "create_room"
	commandJoinRoom     commandType = "join_room_request"
	commandStartGame    commandType = "start_game"
	commandSubmitAnswer commandType = "submit_answer"
	commandGameOver     commandType = "game_over"
)

type commandFrame struct {
	Type  commandType `json:"type"`
	Code  string      `json:"code,omitempty"`
	Score int         `json:"score,omitempty"`
}

type Controller struct {
	coordinator *usecase_battle.Coordinator
	registry    *usecase_battle.Registry
	hub         *Hub
	webAppURL   string

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func NewController(
	coordinator *usecase_battle.Coordinator,
	registry *usecase_battle.Registry,
	hub *Hub,
	webAppURL string,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		coordinator: coordinator,
		registry:    registry,
		hub:         hub,
		webAppURL:   webAppURL,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	battle := router.Group("/battle")
	battle.GET("/ws", c.battleWS)
	battle.GET("/:code/qr", c.roomQR)
}

// battleWS upgrades the connection and starts the read/write pumps.
// The caller identity is fixed at upgrade time; every later frame acts
// on it.
func (c *Controller) battleWS(ctx *gin.Context) {
	userID := ctx.Query("uid")
	name := ctx.Query("name")
	if userID == "" || name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "uid and name are required"})
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("failed to upgrade to websocket",
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	client := &Client{
		conn:   conn,
		send:   make(chan usecase_battle.Event, 16),
		userID: userID,
		name:   name,
	}

	c.hub.register(client)

	go c.startClientWriting(client)
	go c.startClientReading(client)
}

// roomQR renders the web-app join link of a live room as a PNG so the
// creator can hand their opponent a scannable code.
func (c *Controller) roomQR(ctx *gin.Context) {
	code := ctx.Param("code")

	if _, err := c.registry.Get(code); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}

	png, err := qrcode.Encode(c.webAppURL+"/battle.html?room="+code, qrcode.Medium, 256)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}

func (c *Controller) startClientReading(client *Client) {
	defer func() {
		c.hub.remove(client)
		client.conn.Close()
	}()

	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			break
		}
		c.dispatch(client, raw)
	}
}

func (c *Controller) startClientWriting(client *Client) {
	defer client.conn.Close()

	for event := range client.send {
		if err := client.conn.WriteJSON(event); err != nil {
			break
		}
	}
}

// dispatch routes one inbound frame to its coordinator handler. Every
// failure mode is already answered through the transport, so returned
// errors are dropped here.
func (c *Controller) dispatch(client *Client, raw []byte) {
	var frame commandFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		c.hub.Reply(client, usecase_battle.Event{
			Type:    usecase_battle.EventError,
			Payload: usecase_battle.ErrorPayload{Message: "malformed frame"},
		})
		return
	}

	ctx := context.Background()

	switch frame.Type {
	case commandCreateRoom:
		_, _ = c.coordinator.CreateRoom(client, client.userID, client.name)
	case commandJoinRoom:
		_ = c.coordinator.JoinRoom(client, frame.Code, client.userID, client.name)
	case commandStartGame:
		_ = c.coordinator.StartGame(ctx, client, frame.Code)
	case commandSubmitAnswer:
		_ = c.coordinator.SubmitAnswer(client, frame.Code, client.userID, frame.Score)
	case commandGameOver:
		_ = c.coordinator.GameOver(ctx, frame.Code)
	default:
		c.hub.Reply(client, usecase_battle.Event{
			Type:    usecase_battle.EventError,
			Payload: usecase_battle.ErrorPayload{Message: "unknown event type"},
		})
	}
}
