// Package handler wires the planner's operations onto gin routes and maps
// store errors to HTTP statuses.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"eventplanner/internal/store"
)

type Handler struct {
	store       *store.Store
	graph       *store.EventGraph
	assignments *store.AssignmentManager
	reports     *store.Reports
	jwtSecret   string
}

func New(s *store.Store, g *store.EventGraph, a *store.AssignmentManager, r *store.Reports, jwtSecret string) *Handler {
	return &Handler{
		store:       s,
		graph:       g,
		assignments: a,
		reports:     r,
		jwtSecret:   jwtSecret,
	}
}

func jsonError(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"error": msg})
}

// respondError translates store errors into stable HTTP statuses so callers
// can tell bad input from not-found from conflict.
func respondError(c *gin.Context, err error) {
	var ve *store.ValidationError
	switch {
	case errors.As(err, &ve):
		jsonError(c, http.StatusBadRequest, ve.Error())
	case errors.Is(err, store.ErrUsernameTaken),
		errors.Is(err, store.ErrEmailTaken),
		errors.Is(err, store.ErrDuplicateUser):
		jsonError(c, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrEventNotFound),
		errors.Is(err, store.ErrTaskNotFound),
		errors.Is(err, store.ErrResourceNotFound),
		errors.Is(err, store.ErrBudgetNotFound),
		errors.Is(err, store.ErrExpenseNotFound),
		errors.Is(err, store.ErrParticipantNotFound):
		jsonError(c, http.StatusNotFound, err.Error())
	default:
		jsonError(c, http.StatusInternalServerError, err.Error())
	}
}

// getUserIDFromContext expects AuthMiddleware to set "user_id" in context.
func getUserIDFromContext(c *gin.Context) (uint, bool) {
	uid, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := uid.(uint)
	return id, ok
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id64), true
}
