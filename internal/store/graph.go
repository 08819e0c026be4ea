package store

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"eventplanner/internal/model"
)

// EventGraph is the event-scoped facade over the five dependent collections.
// Every child write or read-by-ancestor checks that the event exists first,
// and every scoped lookup requires both the event id and the child id to
// match, so a child living under a different event is not found here.
type EventGraph struct {
	db *gorm.DB
}

func NewEventGraph(db *gorm.DB) *EventGraph {
	return &EventGraph{db: db}
}

func (g *EventGraph) ensureEvent(eventID uint) error {
	var ev model.Event
	if err := g.db.Select("id").First(&ev, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return storageErr("get event", err)
	}
	return nil
}

func listByEvent[T any](db *gorm.DB, eventID uint) ([]T, error) {
	out := make([]T, 0)
	if err := db.Where("event_id = ?", eventID).Find(&out).Error; err != nil {
		return nil, storageErr("list", err)
	}
	return out, nil
}

func childByID[T any](db *gorm.DB, eventID, childID uint, notFound error) (*T, error) {
	var out T
	if err := db.Where("event_id = ? AND id = ?", eventID, childID).First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, storageErr("get", err)
	}
	return &out, nil
}

func deleteChild[T any](db *gorm.DB, eventID, childID uint, notFound error) error {
	res := db.Where("event_id = ? AND id = ?", eventID, childID).Delete(new(T))
	if res.Error != nil {
		return storageErr("delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound
	}
	return nil
}

// DeleteEvent removes the event and cascades across the five child kinds in
// one transaction, so a failed commit leaves everything in place.
func (g *EventGraph) DeleteEvent(eventID uint) error {
	if err := g.ensureEvent(eventID); err != nil {
		return err
	}
	err := g.db.Transaction(func(tx *gorm.DB) error {
		for _, kind := range []any{
			&model.Task{}, &model.EventResource{}, &model.Budget{},
			&model.Expense{}, &model.Participant{},
		} {
			if err := tx.Where("event_id = ?", eventID).Delete(kind).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Event{}, eventID).Error
	})
	if err != nil {
		return storageErr("delete event", err)
	}
	return nil
}

// -----------------------------
// Tasks
// -----------------------------

func (g *EventGraph) CreateTask(eventID uint, req model.CreateTaskRequest) (*model.Task, error) {
	if err := g.ensureEvent(eventID); err != nil {
		return nil, err
	}
	deadline, err := parseDateTime("deadline", req.Deadline)
	if err != nil {
		return nil, err
	}
	if req.AssignedTo != nil {
		if _, err := firstByID[model.User](g.db, *req.AssignedTo, ErrUserNotFound); err != nil {
			return nil, err
		}
	}

	priority := req.Priority
	if priority == "" {
		priority = "Medium"
	}
	status := req.Status
	if status == "" {
		status = model.StatusPending
	}

	task := model.Task{
		EventID:     eventID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Deadline:    deadline,
		Priority:    priority,
		Status:      status,
		AssignedTo:  req.AssignedTo,
		Dependency:  req.Dependency,
	}
	if err := g.db.Create(&task).Error; err != nil {
		return nil, storageErr("create task", err)
	}
	return &task, nil
}

func (g *EventGraph) Tasks(eventID uint) ([]model.Task, error) {
	if err := g.ensureEvent(eventID); err != nil {
		return nil, err
	}
	return listByEvent[model.Task](g.db, eventID)
}

func (g *EventGraph) Task(eventID, taskID uint) (*model.Task, error) {
	return childByID[model.Task](g.db, eventID, taskID, ErrTaskNotFound)
}

func (g *EventGraph) UpdateTask(eventID, taskID uint, patch model.TaskPatch) (*model.Task, error) {
	task, err := g.Task(eventID, taskID)
	if err != nil {
		return nil, err
	}
	if patch.Deadline != nil {
		if task.Deadline, err = parseDateTime("deadline", *patch.Deadline); err != nil {
			return nil, err
		}
	}
	if patch.AssignedTo != nil {
		if _, err := firstByID[model.User](g.db, *patch.AssignedTo, ErrUserNotFound); err != nil {
			return nil, err
		}
		task.AssignedTo = patch.AssignedTo
	}
	if patch.Title != nil {
		task.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Dependency != nil {
		task.Dependency = *patch.Dependency
	}
	if err := g.db.Save(task).Error; err != nil {
		return nil, storageErr("update task", err)
	}
	return task, nil
}

func (g *EventGraph) DeleteTask(eventID, taskID uint) error {
	return deleteChild[model.Task](g.db, eventID, taskID, ErrTaskNotFound)
}

// -----------------------------
// Resources
// -----------------------------

func (g *EventGraph) CreateResource(eventID uint, req model.CreateResourceRequest) (*model.EventResource, error) {
	if err := g.ensureEvent(eventID); err != nil {
		return nil, err
	}
	var reserved *time.Time
	if req.ReservationDate != "" {
		t, err := parseDateTime("reservation_date", req.ReservationDate)
		if err != nil {
			return nil, err
		}
		reserved = &t
	}

	availability := true
	if req.Availability != nil {
		availability = *req.Availability
	}

	res := model.EventResource{
		EventID:         eventID,
		Name:            strings.TrimSpace(req.Name),
		Type:            req.Type,
		Availability:    availability,
		ReservationDate: reserved,
	}
	if err := g.db.Create(&res).Error; err != nil {
		return nil, storageErr("create resource", err)
	}
	return &res, nil
}

func (g *EventGraph) Resources(eventID uint) ([]model.EventResource, error) {
	if err := g.ensureEvent(eventID); err != nil {
		return nil, err
	}
	return listByEvent[model.EventResource](g.db, eventID)
}

func (g *EventGraph) Resource(eventID, resourceID uint) (*model.EventResource, error) {
	return childByID[model.EventResource](g.db, eventID, resourceID, ErrResourceNotFound)
}

func (g *EventGraph) UpdateResource(eventID, resourceID uint, patch model.ResourcePatch) (*model.EventResource, error) {
	res, err := g.Resource(eventID, resourceID)
	if err != nil {
		return nil, err
	}
	if patch.ReservationDate != nil {
		t, err := parseDateTime("reservation_date", *patch.ReservationDate)
		if err != nil {
			return nil, err
		}
		res.ReservationDate = &t
	}
	if patch.Name != nil {
		res.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Type != nil {
		res.Type = *patch.Type
	}
	if patch.Availability != nil {
		res.Availability = *patch.Availability
	}
	if err := g.db.Save(res).Error; err != nil {
		return nil, storageErr("update resource", err)
	}
	return res, nil
}

func (g *EventGraph) DeleteResource(eventID, resourceID uint) error {
	return deleteChild[model.EventResource](g.db, eventID, resourceID, ErrResourceNotFound)
}

// -----------------------------
// Budgets
// -----------------------------

func (g *EventGraph) CreateBudget(eventID uint, req model.CreateBudgetRequest) (*model.Budget, error) {
	if err := g.ensureEvent(eventID); err != nil {
		return nil, err
	}
	budget := model.Budget{
		EventID:         eventID,
		AllocatedBudget: req.AllocatedBudget,
	}
	if err := g.db.Create(&budget).Error; err != nil {
		return nil, storageErr("create budget", err)
	}
	return &budget, nil
}

func (g *EventGraph) Budgets(eventID uint) ([]model.Budget, error) {
	if err := g.ensureEvent(eventID); err != nil {
		return nil, err
	}
	return listByEvent[model.Budget](g.db, eventID)
}

func (g *EventGraph) Budget(eventID, budgetID uint) (*model.Budget, error) {
	return childByID[model.Budget](g.db, eventID, budgetID, ErrBudgetNotFound)
}

func (g *EventGraph) UpdateBudget(eventID, budgetID uint, patch model.BudgetPatch) (*model.Budget, error) {
	budget, err := g.Budget(eventID, budgetID)
	if err != nil {
		return nil, err
	}
	if patch.AllocatedBudget != nil {
		budget.AllocatedBudget = *patch.AllocatedBudget
	}
	if err := g.db.Save(budget).Error; err != nil {
		return nil, storageErr("update budget", err)
	}
	return budget, nil
}

func (g *EventGraph) DeleteBudget(eventID, budgetID uint) error {
	return deleteChild[model.Budget](g.db, eventID, budgetID, ErrBudgetNotFound)
}

// -----------------------------
// Expenses
// -----------------------------

// CreateExpense requires the referenced budget to exist. The budget is not
// required to belong to the same event; the report side sums by budget_id
// alone and this keeps writes consistent with that.
func (g *EventGraph) CreateExpense(eventID uint, req model.CreateExpenseRequest) (*model.Expense, error) {
	if err := g.ensureEvent(eventID); err != nil {
		return nil, err
	}
	if _, err := firstByID[model.Budget](g.db, req.BudgetID, ErrBudgetNotFound); err != nil {
		return nil, err
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	exp := model.Expense{
		EventID:  eventID,
		BudgetID: req.BudgetID,
		Name:     req.Name,
		Amount:   req.Amount,
		Date:     date,
	}
	if err := g.db.Create(&exp).Error; err != nil {
		return nil, storageErr("create expense", err)
	}
	return &exp, nil
}

func (g *EventGraph) Expenses(eventID uint) ([]model.Expense, error) {
	if err := g.ensureEvent(eventID); err != nil {
		return nil, err
	}
	return listByEvent[model.Expense](g.db, eventID)
}

func (g *EventGraph) Expense(eventID, expenseID uint) (*model.Expense, error) {
	return childByID[model.Expense](g.db, eventID, expenseID, ErrExpenseNotFound)
}

func (g *EventGraph) UpdateExpense(eventID, expenseID uint, patch model.ExpensePatch) (*model.Expense, error) {
	exp, err := g.Expense(eventID, expenseID)
	if err != nil {
		return nil, err
	}
	if patch.Date != nil {
		if exp.Date, err = parseDate("date", *patch.Date); err != nil {
			return nil, err
		}
	}
	if patch.Name != nil {
		exp.Name = *patch.Name
	}
	if patch.Amount != nil {
		exp.Amount = *patch.Amount
	}
	if err := g.db.Save(exp).Error; err != nil {
		return nil, storageErr("update expense", err)
	}
	return exp, nil
}

func (g *EventGraph) DeleteExpense(eventID, expenseID uint) error {
	return deleteChild[model.Expense](g.db, eventID, expenseID, ErrExpenseNotFound)
}

// -----------------------------
// Participants
// -----------------------------

func (g *EventGraph) CreateParticipant(eventID uint, req model.CreateParticipantRequest) (*model.Participant, error) {
	if err := g.ensureEvent(eventID); err != nil {
		return nil, err
	}
	if _, err := firstByID[model.User](g.db, req.UserID, ErrUserNotFound); err != nil {
		return nil, err
	}
	p := model.Participant{
		EventID: eventID,
		UserID:  req.UserID,
		Status:  req.Status,
		Role:    req.Role,
	}
	if err := g.db.Create(&p).Error; err != nil {
		return nil, storageErr("create participant", err)
	}
	return &p, nil
}

func (g *EventGraph) Participants(eventID uint) ([]model.Participant, error) {
	if err := g.ensureEvent(eventID); err != nil {
		return nil, err
	}
	return listByEvent[model.Participant](g.db, eventID)
}

func (g *EventGraph) Participant(eventID, participantID uint) (*model.Participant, error) {
	return childByID[model.Participant](g.db, eventID, participantID, ErrParticipantNotFound)
}

func (g *EventGraph) UpdateParticipant(eventID, participantID uint, patch model.ParticipantPatch) (*model.Participant, error) {
	p, err := g.Participant(eventID, participantID)
	if err != nil {
		return nil, err
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Role != nil {
		p.Role = *patch.Role
	}
	if err := g.db.Save(p).Error; err != nil {
		return nil, storageErr("update participant", err)
	}
	return p, nil
}

func (g *EventGraph) DeleteParticipant(eventID, participantID uint) error {
	return deleteChild[model.Participant](g.db, eventID, participantID, ErrParticipantNotFound)
}
