package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tweetsink/ingest-service/internal/dto"
)

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Message: "Service is running"})
}

func (h *Handler) tweetsCreate(c *gin.Context) {
	var input []dto.TweetRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	stored, err := h.services.Tweet.Ingest(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, dto.NewIngestResponse(stored))
}
