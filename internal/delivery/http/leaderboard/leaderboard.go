package http_leaderboard

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/biofact005-rgb/neetquiz/internal/model"
	usecase_leaderboard "github.com/biofact005-rgb/neetquiz/internal/usecase/leaderboard"
)

type Controller struct {
	uc *usecase_leaderboard.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_leaderboard.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	leaderboard := router.Group("/leaderboard")
	leaderboard.GET("/:period", c.top)
}

type boardResponseDTO struct {
	Top  []model.LeaderboardRow `json:"top"`
	User *model.LeaderboardRow  `json:"user"`
}

func (c *Controller) top(ctx *gin.Context) {
	period := ctx.Param("period")
	requesterID := ctx.Query("uid")

	board, err := c.uc.Top(ctx.Request.Context(), period, requesterID)
	if err != nil {
		if errors.Is(err, usecase_leaderboard.ErrUnknownPeriod) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown period"})
			return
		}
		c.logger.Error("failed to build leaderboard",
			slog.String("period", period),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	ctx.JSON(http.StatusOK, boardResponseDTO{
		Top:  board.Top,
		User: board.User,
	})
}
