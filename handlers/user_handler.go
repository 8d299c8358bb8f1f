package handlers

import (
	"net/http"

	"live-backend/config"
	"live-backend/models"
	"live-backend/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
	cfg         *config.Config
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{userService: userService, cfg: cfg}
}

// ListUsers returns the ranked user leaderboard
// GET /api/v1/users?orderBy=popularity&keyWord=...&nowPage=1&pageSize=10
func (h *UserHandler) ListUsers(c *gin.Context) {
	var req models.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	ctx, cancel := requestContext(c, h.cfg.QueryTimeout)
	defer cancel()

	page, err := h.userService.ListUsers(ctx, req)
	if err != nil {
		respondListError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
