package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventplanner/internal/model"
)

func (h *Handler) CreateEvent(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		jsonError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req model.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	ev, err := h.store.CreateEvent(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ev)
}

func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.store.Events()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *Handler) GetEvent(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	ev, err := h.store.Event(eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var patch model.EventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	ev, err := h.store.UpdateEvent(eventID, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.graph.DeleteEvent(eventID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully."})
}

// GetEventDetail returns the composite document: the event plus all of its
// dependent collections and the owning user.
func (h *Handler) GetEventDetail(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.reports.EventDetail(eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
