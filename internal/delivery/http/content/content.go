package http_content

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	usecase_content "github.com/biofact005-rgb/neetquiz/internal/usecase/content"
)

type Controller struct {
	uc      *usecase_content.Usecase
	adminID int64

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_content.Usecase, adminID int64, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:      uc,
		adminID: adminID,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	content := router.Group("/content")
	content.GET("/tree", c.tree)
	content.POST("/delete", c.deleteContent)
}

func (c *Controller) tree(ctx *gin.Context) {
	tree, err := c.uc.Tree(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to build content tree",
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	ctx.JSON(http.StatusOK, tree)
}

type deleteRequestDTO struct {
	UID    string   `json:"uid"`
	Path   []string `json:"path"`
	Target string   `json:"target"`
}

func (c *Controller) deleteContent(ctx *gin.Context) {
	var req deleteRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "incorrect request"})
		return
	}

	if req.UID != strconv.FormatInt(c.adminID, 10) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "unauthorized"})
		return
	}

	if err := c.uc.Delete(ctx.Request.Context(), req.Path, req.Target); err != nil {
		if errors.Is(err, usecase_content.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "no such content"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
