// README: Trip HTTP handlers (generation plus store mutations).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"travelgenie/internal/modules/account"
	"travelgenie/internal/modules/trip"
)

const dateLayout = "2006-01-02"

type TripHandler struct {
	trips    *trip.Service
	store    *trip.Store
	accounts *account.Service
	timeout  time.Duration
}

func NewTripHandler(trips *trip.Service, store *trip.Store, accounts *account.Service, timeout time.Duration) *TripHandler {
	return &TripHandler{trips: trips, store: store, accounts: accounts, timeout: timeout}
}

type generateReq struct {
	Destination string `json:"destination"`
	Origin      string `json:"origin"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// Generate handles POST /api/trips/generate.
func (h *TripHandler) Generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Destination = strings.TrimSpace(req.Destination)
	req.Origin = strings.TrimSpace(req.Origin)
	if req.Destination == "" || req.Origin == "" {
		writeError(c, http.StatusBadRequest, "missing origin or destination")
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid startDate, want yyyy-MM-dd")
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid endDate, want yyyy-MM-dd")
		return
	}

	requesterName := "Traveler"
	if user, ok := h.accounts.CurrentUser(); ok {
		requesterName = user.Name
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	t, err := h.trips.Generate(ctx, trip.GenerateCommand{
		Destination:   req.Destination,
		Origin:        req.Origin,
		StartDate:     start,
		EndDate:       end,
		RequesterName: requesterName,
	})
	if err != nil {
		writeGenerationError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, t)
}

// List handles GET /api/trips.
func (h *TripHandler) List(c *gin.Context) {
	currentID, _ := h.store.CurrentID()
	writeJSON(c, http.StatusOK, gin.H{
		"trips":         h.store.Trips(),
		"currentTripId": nilIfZero(currentID),
	})
}

// Current handles GET /api/trips/current.
func (h *TripHandler) Current(c *gin.Context) {
	t, ok := h.store.Current()
	if !ok {
		writeError(c, http.StatusNotFound, "no trip selected")
		return
	}
	writeJSON(c, http.StatusOK, t)
}

// Select handles POST /api/trips/:id/select.
func (h *TripHandler) Select(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid trip id")
		return
	}
	h.store.Select(id)
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/trips/:id.
func (h *TripHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid trip id")
		return
	}
	if !h.store.Delete(id) {
		writeError(c, http.StatusNotFound, "trip not found")
		return
	}
	c.Status(http.StatusNoContent)
}

type addItemReq struct {
	Title  string  `json:"title"`
	Notes  *string `json:"notes,omitempty"`
	Target string  `json:"target"`
}

// AddItem handles POST /api/trips/items.
func (h *TripHandler) AddItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(c, http.StatusBadRequest, "missing title")
		return
	}
	target, ok := parseTarget(req.Target)
	if !ok {
		writeError(c, http.StatusBadRequest, "target must be checklist or mustSee")
		return
	}

	item, ok := h.store.AddItem(req.Title, req.Notes, target)
	if !ok {
		writeError(c, http.StatusConflict, "no trip selected")
		return
	}
	writeJSON(c, http.StatusCreated, item)
}

// ToggleItem handles POST /api/trips/items/:id/toggle.
func (h *TripHandler) ToggleItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid item id")
		return
	}
	if !h.store.ToggleDone(id) {
		writeError(c, http.StatusNotFound, "item not found on selected trip")
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/trips/items/:id?target=checklist|mustSee.
func (h *TripHandler) RemoveItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid item id")
		return
	}
	target, ok := parseTarget(c.Query("target"))
	if !ok {
		writeError(c, http.StatusBadRequest, "target must be checklist or mustSee")
		return
	}
	if !h.store.RemoveItem(id, target) {
		writeError(c, http.StatusNotFound, "item not found in target list")
		return
	}
	c.Status(http.StatusNoContent)
}

func parseTarget(raw string) (trip.ListTarget, bool) {
	switch trip.ListTarget(raw) {
	case trip.TargetChecklist:
		return trip.TargetChecklist, true
	case trip.TargetMustSee:
		return trip.TargetMustSee, true
	}
	return "", false
}

func nilIfZero(id uuid.UUID) any {
	if id == uuid.Nil {
		return nil
	}
	return id
}
