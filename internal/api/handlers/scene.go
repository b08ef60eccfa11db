package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gogpu/genvec"
	"github.com/gogpu/genvec/internal/api/middleware"
	"github.com/gogpu/genvec/internal/cache"
	"github.com/gogpu/genvec/internal/metrics"
)

// Export formats and their content types.
var exportTypes = map[string]string{
	"svg": "image/svg+xml",
	"png": "image/png",
}

// GenerateRequest is the body of POST /api/generate. Omitted option fields
// keep their defaults.
type GenerateRequest struct {
	Options genvec.Options          `json:"options"`
	Palette genvec.PaletteSelection `json:"palette"`
}

// GenerateResponse is returned by a successful generation.
type GenerateResponse struct {
	Revision    uint64              `json:"revision"`
	Generations int                 `json:"generations"`
	Report      *genvec.SceneReport `json:"report"`
}

// SceneHandler serves generation, export and animation control for one
// shared session.
type SceneHandler struct {
	session     *genvec.Session
	exports     *cache.Cache[cache.ExportKey, []byte]
	metrics     *metrics.Client
	maxViewport int
	log         *slog.Logger
}

// NewSceneHandler returns a handler over session. Rendered exports of
// static scenes are kept in exports; m may be nil.
func NewSceneHandler(session *genvec.Session, exports *cache.Cache[cache.ExportKey, []byte], m *metrics.Client, maxViewport int, log *slog.Logger) *SceneHandler {
	if exports == nil {
		exports = cache.New[cache.ExportKey, []byte](0)
	}
	return &SceneHandler{
		session:     session,
		exports:     exports,
		metrics:     m,
		maxViewport: maxViewport,
		log:         log,
	}
}

// Generate builds a new scene from the request options.
func (h *SceneHandler) Generate(c *gin.Context) {
	req := GenerateRequest{Options: genvec.DefaultOptions()}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validate(req.Options); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	report, err := h.session.Generate(req.Options, req.Palette)
	pattern := req.Options.Pattern.String()
	if report != nil {
		h.metrics.RecordGeneration(pattern, report.TotalElements, time.Since(start), err == nil)
	}
	if err != nil {
		middleware.CaptureError(c, err)
		h.log.Error("generation failed", "request_id", c.GetString(middleware.RequestIDKey), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  err.Error(),
			"report": report,
		})
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{
		Revision:    h.session.Revision(),
		Generations: h.session.Generations(),
		Report:      report,
	})
}

func (h *SceneHandler) validate(o genvec.Options) error {
	var errs []error
	if err := o.Validate(); err != nil {
		errs = append(errs, err)
	}
	if h.maxViewport > 0 && (o.Viewport.Width > h.maxViewport || o.Viewport.Height > h.maxViewport) {
		errs = append(errs, fmt.Errorf("%w: viewport %s exceeds %d", genvec.ErrInvalidOptions, o.Viewport, h.maxViewport))
	}
	return errors.Join(errs...)
}

// SVG writes the current scene as SVG.
func (h *SceneHandler) SVG(c *gin.Context) { h.export(c, "svg") }

// PNG writes the current scene as PNG.
func (h *SceneHandler) PNG(c *gin.Context) { h.export(c, "png") }

// export renders the scene in its current animation state. Static scenes
// are cached per revision; a render that raced a new generation is not
// cached.
func (h *SceneHandler) export(c *gin.Context, format string) {
	key := cache.ExportKey{Revision: h.session.Revision(), Format: format}
	static := !h.session.Animating()
	if static {
		if data, ok := h.exports.Get(key); ok {
			c.Data(http.StatusOK, exportTypes[format], data)
			return
		}
	}

	var buf bytes.Buffer
	if err := h.session.Render(format, &buf); err != nil {
		if errors.Is(err, genvec.ErrNoScene) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		middleware.CaptureError(c, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if static && h.session.Revision() == key.Revision {
		h.exports.Set(key, buf.Bytes())
	}
	c.Data(http.StatusOK, exportTypes[format], buf.Bytes())
}

// Snapshot writes the JSON metadata export of the last generation.
func (h *SceneHandler) Snapshot(c *gin.Context) {
	snap, err := h.session.Snapshot()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	name := fmt.Sprintf("pattern-metadata-%d.json", snap.Timestamp.UnixMilli())
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.JSON(http.StatusOK, snap)
}

// StopAnimation stops the running animation.
func (h *SceneHandler) StopAnimation(c *gin.Context) {
	h.session.StopAnimation()
	c.Status(http.StatusNoContent)
}

// Stats reports the session counters and export cache statistics.
func (h *SceneHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"generations": h.session.Generations(),
		"revision":    h.session.Revision(),
		"animating":   h.session.Animating(),
		"exportCache": h.exports.Stats(),
	})
}
