package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetTaskCompletion(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	report, err := h.reports.TaskCompletion(eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) GetBudgetReport(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	report, err := h.reports.BudgetReport(eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
