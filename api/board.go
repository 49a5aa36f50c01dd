package api

import (
	"net/http"

	"github.com/Domenick1991/airboard/internal/report"
	"github.com/Domenick1991/airboard/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	service flights.FlightUseCase
}

func NewBoardHandler(service flights.FlightUseCase) *BoardHandler {
	return &BoardHandler{service: service}
}

func (h *BoardHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.board)
	router.GET("/diagnostics", h.diagnostics)
	router.GET("/summary", h.summary)
}

// board returns all three views.
func (h *BoardHandler) board(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report.Build(list))
}

func (h *BoardHandler) diagnostics(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report.Diagnostics(list))
}

func (h *BoardHandler) summary(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s := report.Summarize(list)
	if s == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, s)
}
