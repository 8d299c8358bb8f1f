package handlers

import (
	"net/http"

	"live-backend/config"
	"live-backend/models"
	"live-backend/services"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService        *services.RoomService
	contributorService *services.ContributorService
	cfg                *config.Config
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomService *services.RoomService, contributorService *services.ContributorService, cfg *config.Config) *RoomHandler {
	return &RoomHandler{
		roomService:        roomService,
		contributorService: contributorService,
		cfg:                cfg,
	}
}

// ListRooms returns the ranked discovery feed
// GET /api/v1/rooms?orderBy=...&rankType=weekly&keyWord=...&nowPage=1&pageSize=10
func (h *RoomHandler) ListRooms(c *gin.Context) {
	var req models.ListRoomsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	ctx, cancel := requestContext(c, h.cfg.QueryTimeout)
	defer cancel()

	page, err := h.roomService.ListRooms(ctx, req)
	if err != nil {
		respondListError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// ListContributors returns a room's contributor leaderboard
// GET /api/v1/rooms/:id/contributors?orderBy=giftAmount&rankType=daily
func (h *RoomHandler) ListContributors(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.ListContributorsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	ctx, cancel := requestContext(c, h.cfg.QueryTimeout)
	defer cancel()

	page, err := h.contributorService.ListRoomContributors(ctx, roomID, req)
	if err != nil {
		respondListError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// HealthCheck is a simple health check endpoint
// GET /api/v1/health
func (h *RoomHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "live-backend",
		"version": "1.0.0",
	})
}
