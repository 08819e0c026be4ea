package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventplanner/internal/model"
)

func (h *Handler) CreateParticipant(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req model.CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	p, err := h.graph.CreateParticipant(eventID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) ListParticipants(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	participants, err := h.graph.Participants(eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participants)
}

func (h *Handler) GetParticipant(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	participantID, ok := idParam(c, "participant_id")
	if !ok {
		return
	}
	p, err := h.graph.Participant(eventID, participantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdateParticipant(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	participantID, ok := idParam(c, "participant_id")
	if !ok {
		return
	}
	var patch model.ParticipantPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	p, err := h.graph.UpdateParticipant(eventID, participantID, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteParticipant(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	participantID, ok := idParam(c, "participant_id")
	if !ok {
		return
	}
	if err := h.graph.DeleteParticipant(eventID, participantID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Participant removed successfully."})
}
