package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a registered user. The password column holds the bcrypt
// hash and is never serialized.
type User struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Firstname  string    `json:"firstname" gorm:"not null"`
	Lastname   string    `json:"lastname" gorm:"not null"`
	Username   string    `json:"username" gorm:"size:80;uniqueIndex;not null"`
	Address    string    `json:"address" gorm:"not null"`
	City       string    `json:"city" gorm:"not null"`
	Country    string    `json:"country" gorm:"not null"`
	PostalCode int       `json:"postal_code" gorm:"not null"`
	Aboutme    string    `json:"aboutme" gorm:"not null"`
	Email      string    `json:"email" gorm:"size:120;uniqueIndex;not null"`
	Password   string    `json:"-" gorm:"size:128;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Event is the top-level planning unit. Time holds the time of day as
// "HH:MM:SS" text next to the calendar date.
type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index"`
	Title       string    `json:"title" gorm:"size:128;not null"`
	Date        time.Time `json:"date" gorm:"type:date"`
	Time        string    `json:"time" gorm:"size:8"`
	Image       string    `json:"image" gorm:"size:128"`
	Location    string    `json:"location" gorm:"size:128"`
	Description string    `json:"description" gorm:"type:text"`
	Category    string    `json:"category" gorm:"size:64"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Recognized task status values. Transitions between them are not
// constrained; any status may be overwritten with any other.
const (
	StatusNotStarted = "Not Started"
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Task belongs to one event and is optionally assigned to one user.
// Dependency is opaque free text, not a reference to another task.
type Task struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	EventID     uint      `json:"event_id" gorm:"index;not null"`
	AssignedTo  *uint     `json:"assigned_to" gorm:"index"`
	Title       string    `json:"title" gorm:"size:128;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Deadline    time.Time `json:"deadline"`
	Priority    string    `json:"priority" gorm:"size:64"`
	Status      string    `json:"status" gorm:"size:64"`
	Dependency  string    `json:"dependency" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventResource is a physical or service resource reserved for an event.
type EventResource struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	EventID         uint       `json:"event_id" gorm:"index;not null"`
	Name            string     `json:"name" gorm:"size:128;not null"`
	Type            string     `json:"type" gorm:"size:64"`
	Availability    bool       `json:"availability"`
	ReservationDate *time.Time `json:"reservation_date"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Budget allocates money to an event. An event may carry more than one
// budget row; there is no uniqueness constraint.
type Budget struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	EventID         uint            `json:"event_id" gorm:"index;not null"`
	AllocatedBudget decimal.Decimal `json:"allocated_budget" gorm:"type:decimal(10,2)"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Expense records spend against a budget. It carries both the budget and
// the event it was filed under.
type Expense struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	BudgetID  uint            `json:"budget_id" gorm:"index;not null"`
	EventID   uint            `json:"event_id" gorm:"index;not null"`
	Name      string          `json:"name" gorm:"type:text"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(10,2)"`
	Date      time.Time       `json:"date" gorm:"type:date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Participant links a user to an event with a role and an attendance status.
type Participant struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	EventID   uint      `json:"event_id" gorm:"index;not null"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Status    string    `json:"status" gorm:"size:64"`
	Role      string    `json:"role" gorm:"size:64"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
