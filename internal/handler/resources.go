package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventplanner/internal/model"
)

func (h *Handler) CreateResource(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req model.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	res, err := h.graph.CreateResource(eventID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) ListResources(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	resources, err := h.graph.Resources(eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resources)
}

func (h *Handler) GetResource(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	resourceID, ok := idParam(c, "resource_id")
	if !ok {
		return
	}
	res, err := h.graph.Resource(eventID, resourceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) UpdateResource(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	resourceID, ok := idParam(c, "resource_id")
	if !ok {
		return
	}
	var patch model.ResourcePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	res, err := h.graph.UpdateResource(eventID, resourceID, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) DeleteResource(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	resourceID, ok := idParam(c, "resource_id")
	if !ok {
		return
	}
	if err := h.graph.DeleteResource(eventID, resourceID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resource removed successfully."})
}
