package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/louis5103/st-booking-system/internal/middleware"
	"github.com/louis5103/st-booking-system/internal/repository"
)

// VenueHandler serves the venue CRUD that layouts hang off of.
type VenueHandler struct {
	Venues  *repository.VenueRepo
	Layouts *repository.LayoutRepo
}

func NewVenueHandler(v *repository.VenueRepo, l *repository.LayoutRepo) *VenueHandler {
	return &VenueHandler{Venues: v, Layouts: l}
}

type venueResp struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toVenueResp(v *repository.Venue) venueResp {
	return venueResp{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		IsActive:    v.IsActive,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func venueIDParam(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// CreateVenue handles POST /v1/venues.
func (h *VenueHandler) CreateVenue(c echo.Context) error {
	ownerID := middleware.UserID(c)
	if ownerID == 0 {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	var desc *string
	if body.Description != nil {
		if s := strings.TrimSpace(*body.Description); s != "" {
			desc = &s
		}
	}

	v := &repository.Venue{OwnerID: ownerID, Name: name, Description: desc, IsActive: true}
	if err := h.Venues.Create(c.Request().Context(), v); err != nil {
		if err == repository.ErrConflict {
			return c.JSON(http.StatusConflict, echo.Map{"error": "venue name already in use"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create venue"})
	}
	created, err := h.Venues.GetByID(c.Request().Context(), v.ID)
	if err != nil {
		return c.JSON(http.StatusCreated, toVenueResp(v))
	}
	return c.JSON(http.StatusCreated, toVenueResp(created))
}

// ListVenues handles GET /v1/venues and lists active venues.
func (h *VenueHandler) ListVenues(c echo.Context) error {
	items, err := h.Venues.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	out := make([]venueResp, 0, len(items))
	for i := range items {
		out = append(out, toVenueResp(&items[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetVenue handles GET /v1/venues/:id.
func (h *VenueHandler) GetVenue(c echo.Context) error {
	id, err := venueIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.Venues.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, toVenueResp(v))
}

// UpdateVenue handles PUT /v1/venues/:id. Only the owner may update.
func (h *VenueHandler) UpdateVenue(c echo.Context) error {
	ownerID := middleware.UserID(c)
	id, err := venueIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	cur, err := h.Venues.GetByIDAndOwner(c.Request().Context(), id, ownerID)
	if err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	var body struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		IsActive    *bool   `json:"is_active"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	name := cur.Name
	if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
		name = strings.TrimSpace(*body.Name)
	}
	desc := cur.Description
	if body.Description != nil {
		if s := strings.TrimSpace(*body.Description); s != "" {
			desc = &s
		} else {
			desc = nil // empty string clears the description
		}
	}
	active := cur.IsActive
	if body.IsActive != nil {
		active = *body.IsActive
	}

	if err := h.Venues.UpdateByIDAndOwner(c.Request().Context(), id, ownerID, name, desc, active); err != nil {
		switch err {
		case repository.ErrVenueNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		case repository.ErrConflict:
			return c.JSON(http.StatusConflict, echo.Map{"error": "venue name already in use"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	fresh, err := h.Venues.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, toVenueResp(fresh))
}

// DeleteVenue handles DELETE /v1/venues/:id. The stored layout is
// removed first so the venue row never dangles a document.
func (h *VenueHandler) DeleteVenue(c echo.Context) error {
	ownerID := middleware.UserID(c)
	id, err := venueIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if _, err := h.Venues.GetByIDAndOwner(c.Request().Context(), id, ownerID); err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if err := h.Layouts.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	if err := h.Venues.DeleteByIDAndOwner(c.Request().Context(), id, ownerID); err != nil {
		if err == repository.ErrVenueNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "venue not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
