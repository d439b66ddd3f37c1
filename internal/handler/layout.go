package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/louis5103/st-booking-system/internal/config"
	"github.com/louis5103/st-booking-system/internal/layout"
	"github.com/louis5103/st-booking-system/internal/middleware"
	"github.com/louis5103/st-booking-system/internal/queue"
	"github.com/louis5103/st-booking-system/internal/repository"
	queue_publisher "github.com/louis5103/st-booking-system/internal/service"
)

// saveGuardTTL bounds how long a venue's save lock can outlive a
// crashed request.
const saveGuardTTL = 10 * time.Second

// LayoutHandler serves a venue's seat layout document: fetch with
// template fallback, validated whole-document save, and template
// application.
type LayoutHandler struct {
	Cfg      config.Config
	CacheCfg config.CacheConfig
	Venues   *repository.VenueRepo
	Layouts  *repository.LayoutRepo
	Rdb      *redis.Client // nil disables the save guard and cache eviction

	// Publish is swappable in tests; defaults to the RabbitMQ publisher.
	Publish func(ctx context.Context, ev queue.LayoutSavedEvent) error
}

func NewLayoutHandler(cfg config.Config, cacheCfg config.CacheConfig, v *repository.VenueRepo, l *repository.LayoutRepo, rdb *redis.Client) *LayoutHandler {
	return &LayoutHandler{
		Cfg:      cfg,
		CacheCfg: cacheCfg,
		Venues:   v,
		Layouts:  l,
		Rdb:      rdb,
		Publish:  queue_publisher.PublishLayoutSaved,
	}
}

// layoutResp is the common response body for all layout endpoints.
type layoutResp struct {
	VenueID    uint64            `json:"venue_id"`
	Source     string            `json:"source"` // "stored" or "template"
	Layout     layout.Document   `json:"layout"`
	Statistics layout.Statistics `json:"statistics"`
	UpdatedAt  *time.Time        `json:"updated_at,omitempty"`
}

func respFromEditor(venueID uint64, source string, ed *layout.Editor, updatedAt *time.Time) layoutResp {
	return layoutResp{
		VenueID:    venueID,
		Source:     source,
		Layout:     ed.Document(),
		Statistics: ed.Statistics(),
		UpdatedAt:  updatedAt,
	}
}

// fallbackEditor builds a fresh layout from the configured default
// template. An unknown configured key falls through to the first
// catalogue entry so the endpoint always has something to return.
func (h *LayoutHandler) fallbackEditor() *layout.Editor {
	t, err := layout.TemplateByKey(h.Cfg.DefaultTemplate)
	if err != nil {
		t = layout.Templates[0]
	}
	return layout.NewFromTemplate(t)
}

// GetLayout handles GET /v1/venues/:id/layout. A venue with no stored
// document (or one that no longer parses) gets the default template
// instead of an error, matching what a fresh editor shows.
func (h *LayoutHandler) GetLayout(c echo.Context) error {
	id, err := venueIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	if _, err := h.Venues.GetByID(ctx, id); err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	rec, err := h.Layouts.Get(ctx, id)
	if err != nil {
		if err == repository.ErrLayoutNotFound {
			return c.JSON(http.StatusOK, respFromEditor(id, "template", h.fallbackEditor(), nil))
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	var doc layout.Document
	if err := json.Unmarshal(rec.Document, &doc); err != nil || len(doc.Seats) == 0 {
		return c.JSON(http.StatusOK, respFromEditor(id, "template", h.fallbackEditor(), nil))
	}
	return c.JSON(http.StatusOK, respFromEditor(id, "stored", layout.FromDocument(doc), &rec.UpdatedAt))
}

// SaveLayout handles PUT /v1/venues/:id/layout. The document is
// validated first and rejected wholesale on any violation; nothing is
// persisted from a bad request. A short-lived Redis SETNX lock turns a
// concurrent save of the same venue into a 409.
func (h *LayoutHandler) SaveLayout(c echo.Context) error {
	uid := middleware.UserID(c)
	id, err := venueIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	venue, err := h.Venues.GetByIDAndOwner(ctx, id, uid)
	if err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	var doc layout.Document
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if errs := layout.ValidateDocument(doc); len(errs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error":         "invalid layout",
			"invalid_count": len(errs),
			"details":       errs,
		})
	}

	if h.Rdb != nil {
		guard := fmt.Sprintf("layout:save:%d", id)
		ok, err := h.Rdb.SetNX(ctx, guard, "1", saveGuardTTL).Result()
		if err == nil && !ok {
			return c.JSON(http.StatusConflict, echo.Map{"error": "save already in progress"})
		}
		if err == nil {
			defer h.Rdb.Del(context.Background(), guard)
		}
		// Redis errors fail open: a cache outage must not block saving.
	}

	ed := layout.FromDocument(doc)
	norm := ed.Document()
	payload, err := json.Marshal(norm)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "encode failed"})
	}
	if err := h.Layouts.Upsert(ctx, id, payload, len(norm.Seats)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}
	h.evictCache(ctx, id)

	stats := ed.Statistics()
	ev := queue.LayoutSavedEvent{
		VenueID:      id,
		VenueName:    venue.Name,
		SeatCount:    stats.TotalSeats,
		SectionCount: len(stats.Sections),
		TotalRevenue: stats.TotalRevenue,
		SavedBy:      uid,
		SavedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	if h.Publish != nil {
		if err := h.Publish(ctx, ev); err != nil {
			log.Printf("layout: publish layout.saved failed for venue %d: %v", id, err)
		}
	}

	now := time.Now().UTC()
	return c.JSON(http.StatusOK, respFromEditor(id, "stored", ed, &now))
}

// ApplyTemplate handles POST /v1/venues/:id/layout/template. The
// generated document replaces whatever was stored.
func (h *LayoutHandler) ApplyTemplate(c echo.Context) error {
	uid := middleware.UserID(c)
	id, err := venueIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	if _, err := h.Venues.GetByIDAndOwner(ctx, id, uid); err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	var body struct {
		TemplateKey string `json:"templateKey"`
		Template    string `json:"template"` // legacy alias
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	key := strings.TrimSpace(body.TemplateKey)
	if key == "" {
		key = strings.TrimSpace(body.Template)
	}
	t, err := layout.TemplateByKey(key)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown template"})
	}

	ed := layout.NewFromTemplate(t)
	doc := ed.Document()
	payload, err := json.Marshal(doc)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "encode failed"})
	}
	if err := h.Layouts.Upsert(ctx, id, payload, len(doc.Seats)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}
	h.evictCache(ctx, id)

	now := time.Now().UTC()
	return c.JSON(http.StatusOK, respFromEditor(id, "template", ed, &now))
}

// evictCache drops the venue's cached GET response after a write.
func (h *LayoutHandler) evictCache(ctx context.Context, venueID uint64) {
	if h.Rdb == nil {
		return
	}
	key := middleware.CacheKey(h.CacheCfg.Prefix, fmt.Sprintf("/v1/venues/%d/layout", venueID))
	_ = h.Rdb.Del(ctx, key).Err()
}
