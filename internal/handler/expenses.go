package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventplanner/internal/model"
)

func (h *Handler) CreateExpense(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req model.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	exp, err := h.graph.CreateExpense(eventID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exp)
}

func (h *Handler) ListExpenses(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	expenses, err := h.graph.Expenses(eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *Handler) GetExpense(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	expenseID, ok := idParam(c, "expense_id")
	if !ok {
		return
	}
	exp, err := h.graph.Expense(eventID, expenseID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exp)
}

func (h *Handler) UpdateExpense(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	expenseID, ok := idParam(c, "expense_id")
	if !ok {
		return
	}
	var patch model.ExpensePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	exp, err := h.graph.UpdateExpense(eventID, expenseID, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exp)
}

func (h *Handler) DeleteExpense(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	expenseID, ok := idParam(c, "expense_id")
	if !ok {
		return
	}
	if err := h.graph.DeleteExpense(eventID, expenseID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully."})
}
