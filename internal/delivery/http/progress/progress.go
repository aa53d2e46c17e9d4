package http_progress

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/biofact005-rgb/neetquiz/internal/model"
	usecase_progress "github.com/biofact005-rgb/neetquiz/internal/usecase/progress"
)

type Controller struct {
	uc *usecase_progress.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_progress.Usecase, opts ...ControllerOption) *Controller {
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
	users := router.Group("/users")
	users.POST("/sync", c.sync)
}

type syncRequestDTO struct {
	ID       string          `json:"id" binding:"required"`
	Name     string          `json:"name"`
	AddScore int             `json:"add_score"`
	Mistakes []model.Mistake `json:"mistakes"`
	Solved   []string        `json:"solved"`
}

type syncResponseDTO struct {
	Grade        string          `json:"grade"`
	CurrentXP    int             `json:"current_xp"`
	ReqXP        int             `json:"req_xp"`
	Percent      float64         `json:"percent"`
	MistakeCount int             `json:"mistake_count"`
	MistakesList []model.Mistake `json:"mistakes_list"`
}

func (c *Controller) sync(ctx *gin.Context) {
	var req syncRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "incorrect request"})
		return
	}

	result, err := c.uc.Sync(ctx.Request.Context(),
		req.ID, req.Name, req.AddScore, req.Mistakes, req.Solved)
	if err != nil {
		c.logger.Error("failed to sync user",
			slog.String("user_id", req.ID),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	ctx.JSON(http.StatusOK, syncResponseDTO{
		Grade:        fmt.Sprintf("Grade %d", result.Grade.Level),
		CurrentXP:    result.Grade.CurrentXP,
		ReqXP:        result.Grade.RequiredXP,
		Percent:      result.Grade.Percent,
		MistakeCount: len(result.Mistakes),
		MistakesList: result.Mistakes,
	})
}
