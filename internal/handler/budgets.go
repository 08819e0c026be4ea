package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventplanner/internal/model"
)

func (h *Handler) CreateBudget(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req model.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	budget, err := h.graph.CreateBudget(eventID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, budget)
}

func (h *Handler) ListBudgets(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	budgets, err := h.graph.Budgets(eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, budgets)
}

func (h *Handler) GetBudget(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	budgetID, ok := idParam(c, "budget_id")
	if !ok {
		return
	}
	budget, err := h.graph.Budget(eventID, budgetID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, budget)
}

func (h *Handler) UpdateBudget(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	budgetID, ok := idParam(c, "budget_id")
	if !ok {
		return
	}
	var patch model.BudgetPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	budget, err := h.graph.UpdateBudget(eventID, budgetID, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, budget)
}

func (h *Handler) DeleteBudget(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	budgetID, ok := idParam(c, "budget_id")
	if !ok {
		return
	}
	if err := h.graph.DeleteBudget(eventID, budgetID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully."})
}
