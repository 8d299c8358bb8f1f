package handlers

import (
	"net/http"

	"live-backend/config"
	"live-backend/models"
	"live-backend/services"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoService *services.VideoService
	cfg          *config.Config
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(videoService *services.VideoService, cfg *config.Config) *VideoHandler {
	return &VideoHandler{videoService: videoService, cfg: cfg}
}

// ListVideos returns the ranked video listing
// GET /api/v1/videos?orderBy=mostPlay&userId=...&nowPage=1&pageSize=10
func (h *VideoHandler) ListVideos(c *gin.Context) {
	var req models.ListVideosRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	ctx, cancel := requestContext(c, h.cfg.QueryTimeout)
	defer cancel()

	page, err := h.videoService.ListVideos(ctx, req)
	if err != nil {
		respondListError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
