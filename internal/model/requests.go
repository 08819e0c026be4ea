package model

import "github.com/shopspring/decimal"

// Request bodies for create operations. Date and time fields arrive as
// canonical text (date "YYYY-MM-DD", time "HH:MM:SS", date-time
// "YYYY-MM-DDTHH:MM:SS") and are parsed by the store, which rejects the
// whole operation on a malformed value.

type SignupRequest struct {
	Username   string `json:"username" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Firstname  string `json:"firstname" binding:"required"`
	Lastname   string `json:"lastname" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	Country    string `json:"country" binding:"required"`
	PostalCode int    `json:"postal_code" binding:"required"`
	Aboutme    string `json:"aboutme" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time"`
	Image       string `json:"image"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Deadline    string `json:"deadline" binding:"required"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	AssignedTo  *uint  `json:"assigned_to"`
	Dependency  string `json:"dependency"`
}

type CreateResourceRequest struct {
	Name            string `json:"name" binding:"required"`
	Type            string `json:"type" binding:"required"`
	Availability    *bool  `json:"availability"`
	ReservationDate string `json:"reservation_date"`
}

type CreateBudgetRequest struct {
	AllocatedBudget decimal.Decimal `json:"allocated_budget" binding:"required"`
}

type CreateExpenseRequest struct {
	BudgetID uint            `json:"budget_id" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Date     string          `json:"date" binding:"required"`
}

type CreateParticipantRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Status string `json:"status"`
	Role   string `json:"role"`
}

// Patch structs implement merge-patch updates: only non-nil fields
// overwrite the stored value, everything else passes through unchanged.

type EventPatch struct {
	Title       *string `json:"title"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Image       *string `json:"image"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

type TaskPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	AssignedTo  *uint   `json:"assigned_to"`
	Dependency  *string `json:"dependency"`
}

type ResourcePatch struct {
	Name            *string `json:"name"`
	Type            *string `json:"type"`
	Availability    *bool   `json:"availability"`
	ReservationDate *string `json:"reservation_date"`
}

type BudgetPatch struct {
	AllocatedBudget *decimal.Decimal `json:"allocated_budget"`
}

type ExpensePatch struct {
	Name   *string          `json:"name"`
	Amount *decimal.Decimal `json:"amount"`
	Date   *string          `json:"date"`
}

type ParticipantPatch struct {
	Status *string `json:"status"`
	Role   *string `json:"role"`
}

type AssignTaskRequest struct {
	TaskID   uint   `json:"task_id" binding:"required"`
	Username string `json:"username" binding:"required"`
}

type UpdateTaskStatusRequest struct {
	TaskID uint   `json:"task_id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type CompleteTaskRequest struct {
	TaskID uint `json:"task_id" binding:"required"`
}
