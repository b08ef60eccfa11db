package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gogpu/genvec"
)

// Capture axes.
const (
	axisX = "x"
	axisY = "y"
	axisV = "v"
)

// CaptureRequest captures a coordinate. Axis x needs X, axis y needs Y and
// axis v needs both.
type CaptureRequest struct {
	Axis string   `json:"axis" binding:"required,oneof=x y v"`
	X    *float64 `json:"x"`
	Y    *float64 `json:"y"`
}

// CursorRequest reports the live pointer position.
type CursorRequest struct {
	X *float64 `json:"x" binding:"required"`
	Y *float64 `json:"y" binding:"required"`
}

// PointerHandler feeds pointer input into the session.
type PointerHandler struct {
	session *genvec.Session
}

// NewPointerHandler returns a handler over session.
func NewPointerHandler(session *genvec.Session) *PointerHandler {
	return &PointerHandler{session: session}
}

// Capture stores a captured coordinate and returns all captured values.
func (h *PointerHandler) Capture(c *gin.Context) {
	var req CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch {
	case req.Axis == axisX && req.X != nil:
		h.session.CaptureX(*req.X)
	case req.Axis == axisY && req.Y != nil:
		h.session.CaptureY(*req.Y)
	case req.Axis == axisV && req.X != nil && req.Y != nil:
		h.session.CaptureV(*req.X, *req.Y)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing coordinate for axis " + req.Axis})
		return
	}
	c.JSON(http.StatusOK, gin.H{"captured": h.session.Captured()})
}

// ClearCaptured forgets all captured coordinates.
func (h *PointerHandler) ClearCaptured(c *gin.Context) {
	h.session.ClearCaptured()
	c.Status(http.StatusNoContent)
}

// Cursor records the live pointer position used by cursor seeding.
func (h *PointerHandler) Cursor(c *gin.Context) {
	var req CursorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.session.SetCursor(*req.X, *req.Y)
	c.Status(http.StatusNoContent)
}
