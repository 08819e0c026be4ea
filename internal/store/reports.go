package store

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"eventplanner/internal/model"
)

// Reports computes the derived read-only views. Nothing here mutates, and
// the multi-read views are not snapshot-consistent across their reads.
type Reports struct {
	db *gorm.DB
}

func NewReports(db *gorm.DB) *Reports {
	return &Reports{db: db}
}

type TaskCompletionReport struct {
	EventID              uint    `json:"event_id"`
	TotalTasks           int64   `json:"total_tasks"`
	CompletedTasks       int64   `json:"completed_tasks"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

// TaskCompletion counts the event's tasks and the Completed subset. An
// event with zero tasks reports 0%, not a division error.
func (r *Reports) TaskCompletion(eventID uint) (*TaskCompletionReport, error) {
	var total, completed int64
	if err := r.db.Model(&model.Task{}).Where("event_id = ?", eventID).Count(&total).Error; err != nil {
		return nil, storageErr("task completion", err)
	}
	if err := r.db.Model(&model.Task{}).
		Where("event_id = ? AND status = ?", eventID, model.StatusCompleted).
		Count(&completed).Error; err != nil {
		return nil, storageErr("task completion", err)
	}

	report := &TaskCompletionReport{
		EventID:        eventID,
		TotalTasks:     total,
		CompletedTasks: completed,
	}
	if total > 0 {
		report.CompletionPercentage = float64(completed) / float64(total) * 100
	}
	return report, nil
}

type BudgetReport struct {
	EventID         uint    `json:"event_id"`
	AllocatedBudget float64 `json:"allocated_budget"`
	TotalSpent      float64 `json:"total_spent_amount"`
	RemainingBudget float64 `json:"remaining_budget"`
}

// BudgetReport sums every expense filed against the event's budget and
// reports the remainder. When an event carries several budget rows the one
// with the lowest id wins. Expenses are matched by budget_id alone, not
// re-filtered by event. All arithmetic is decimal; the float conversion
// happens only on the outgoing payload.
func (r *Reports) BudgetReport(eventID uint) (*BudgetReport, error) {
	var budget model.Budget
	err := r.db.Where("event_id = ?", eventID).Order("id asc").First(&budget).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBudgetNotFound
	}
	if err != nil {
		return nil, storageErr("budget report", err)
	}

	var expenses []model.Expense
	if err := r.db.Where("budget_id = ?", budget.ID).Find(&expenses).Error; err != nil {
		return nil, storageErr("budget report", err)
	}
	spent := decimal.Zero
	for _, exp := range expenses {
		spent = spent.Add(exp.Amount)
	}
	remaining := budget.AllocatedBudget.Sub(spent)

	return &BudgetReport{
		EventID:         eventID,
		AllocatedBudget: budget.AllocatedBudget.InexactFloat64(),
		TotalSpent:      spent.InexactFloat64(),
		RemainingBudget: remaining.InexactFloat64(),
	}, nil
}

// EventDetail is the composite document: the event, its owner and all five
// dependent collections. The owner rides the model.User type, whose
// password column is never serialized.
type EventDetail struct {
	model.Event
	Owner        *model.User           `json:"user,omitempty"`
	Tasks        []model.Task          `json:"tasks"`
	Resources    []model.EventResource `json:"resources"`
	Budgets      []model.Budget        `json:"budgets"`
	Expenses     []model.Expense       `json:"expenses"`
	Participants []model.Participant   `json:"participants"`
}

func (r *Reports) EventDetail(eventID uint) (*EventDetail, error) {
	ev, err := firstByID[model.Event](r.db, eventID, ErrEventNotFound)
	if err != nil {
		return nil, err
	}

	detail := &EventDetail{Event: *ev}
	if ev.UserID != 0 {
		owner, err := firstByID[model.User](r.db, ev.UserID, ErrUserNotFound)
		switch {
		case err == nil:
			detail.Owner = owner
		case !errors.Is(err, ErrUserNotFound):
			return nil, err
		}
	}

	if detail.Tasks, err = listByEvent[model.Task](r.db, eventID); err != nil {
		return nil, err
	}
	if detail.Resources, err = listByEvent[model.EventResource](r.db, eventID); err != nil {
		return nil, err
	}
	if detail.Budgets, err = listByEvent[model.Budget](r.db, eventID); err != nil {
		return nil, err
	}
	if detail.Expenses, err = listByEvent[model.Expense](r.db, eventID); err != nil {
		return nil, err
	}
	if detail.Participants, err = listByEvent[model.Participant](r.db, eventID); err != nil {
		return nil, err
	}
	return detail, nil
}
