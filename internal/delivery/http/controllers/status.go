package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	version string
}

func NewStatusHandler(version string) *StatusHandler {
	return &StatusHandler{version: version}
}

func (h *StatusHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Available", "version": h.version})
}
