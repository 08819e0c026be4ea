package store

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"eventplanner/internal/model"
)

func TestTaskCompletionZeroTasks(t *testing.T) {
	db := testDB(t)
	s, r := New(db), NewReports(db)
	ev := seedEvent(t, s, 1)

	report, err := r.TaskCompletion(ev.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, report.TotalTasks)
	require.EqualValues(t, 0, report.CompletedTasks)
	require.Equal(t, 0.0, report.CompletionPercentage)
}

func TestTaskCompletionQuarter(t *testing.T) {
	db := testDB(t)
	s, g, r := New(db), NewEventGraph(db), NewReports(db)
	ev := seedEvent(t, s, 1)

	for i, title := range []string{"a", "b", "c", "d"} {
		req := taskRequest(title)
		if i == 0 {
			req.Status = model.StatusCompleted
		}
		_, err := g.CreateTask(ev.ID, req)
		require.NoError(t, err)
	}

	report, err := r.TaskCompletion(ev.ID)
	require.NoError(t, err)
	require.EqualValues(t, 4, report.TotalTasks)
	require.EqualValues(t, 1, report.CompletedTasks)
	require.Equal(t, 25.0, report.CompletionPercentage)
}

func TestAssignCompleteFlow(t *testing.T) {
	db := testDB(t)
	s, g, m, r := New(db), NewEventGraph(db), NewAssignmentManager(db), NewReports(db)

	user, err := s.CreateUser(signup("john_doe", "john@example.com"))
	require.NoError(t, err)
	ev := seedEvent(t, s, user.ID)

	task, err := g.CreateTask(ev.ID, model.CreateTaskRequest{
		Title: "book venue", Deadline: "2025-01-01T10:00:00",
	})
	require.NoError(t, err)

	assigned, err := m.Assign(task.ID, "john_doe")
	require.NoError(t, err)
	require.Equal(t, user.ID, *assigned.AssignedTo)

	report, err := r.TaskCompletion(ev.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, report.TotalTasks)
	require.EqualValues(t, 0, report.CompletedTasks)
	require.Equal(t, 0.0, report.CompletionPercentage)

	_, err = m.Complete(task.ID)
	require.NoError(t, err)

	report, err = r.TaskCompletion(ev.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, report.CompletedTasks)
	require.Equal(t, 100.0, report.CompletionPercentage)
}

func TestBudgetReportExactArithmetic(t *testing.T) {
	db := testDB(t)
	s, g, r := New(db), NewEventGraph(db), NewReports(db)
	ev := seedEvent(t, s, 1)

	budget, err := g.CreateBudget(ev.ID, model.CreateBudgetRequest{
		AllocatedBudget: decimal.RequireFromString("10000.00"),
	})
	require.NoError(t, err)
	for _, amount := range []string{"1500.00", "2500.00"} {
		_, err := g.CreateExpense(ev.ID, model.CreateExpenseRequest{
			BudgetID: budget.ID, Name: "venue", Amount: decimal.RequireFromString(amount), Date: "2025-05-01",
		})
		require.NoError(t, err)
	}

	report, err := r.BudgetReport(ev.ID)
	require.NoError(t, err)
	require.Equal(t, 10000.0, report.AllocatedBudget)
	require.Equal(t, 4000.0, report.TotalSpent)
	require.Equal(t, 6000.0, report.RemainingBudget)
}

func TestBudgetReportRequiresBudget(t *testing.T) {
	db := testDB(t)
	s, r := New(db), NewReports(db)
	ev := seedEvent(t, s, 1)

	_, err := r.BudgetReport(ev.ID)
	require.ErrorIs(t, err, ErrBudgetNotFound)
}

func TestBudgetReportPicksLowestID(t *testing.T) {
	db := testDB(t)
	s, g, r := New(db), NewEventGraph(db), NewReports(db)
	ev := seedEvent(t, s, 1)

	first, err := g.CreateBudget(ev.ID, model.CreateBudgetRequest{
		AllocatedBudget: decimal.RequireFromString("100.00"),
	})
	require.NoError(t, err)
	second, err := g.CreateBudget(ev.ID, model.CreateBudgetRequest{
		AllocatedBudget: decimal.RequireFromString("900.00"),
	})
	require.NoError(t, err)
	require.Greater(t, second.ID, first.ID)

	_, err = g.CreateExpense(ev.ID, model.CreateExpenseRequest{
		BudgetID: second.ID, Name: "flowers", Amount: decimal.RequireFromString("50.00"), Date: "2025-05-01",
	})
	require.NoError(t, err)

	report, err := r.BudgetReport(ev.ID)
	require.NoError(t, err)
	require.Equal(t, 100.0, report.AllocatedBudget, "lowest-id budget wins")
	require.Equal(t, 0.0, report.TotalSpent, "expenses against the other budget are not counted")
}

func TestBudgetReportSumsByBudgetAlone(t *testing.T) {
	db := testDB(t)
	s, g, r := New(db), NewEventGraph(db), NewReports(db)
	ev := seedEvent(t, s, 1)
	other, err := s.CreateEvent(1, model.CreateEventRequest{Title: "Other", Date: "2025-07-01"})
	require.NoError(t, err)

	budget, err := g.CreateBudget(ev.ID, model.CreateBudgetRequest{
		AllocatedBudget: decimal.RequireFromString("100.00"),
	})
	require.NoError(t, err)

	// an expense filed under another event but against this budget still counts
	_, err = g.CreateExpense(other.ID, model.CreateExpenseRequest{
		BudgetID: budget.ID, Name: "crossover", Amount: decimal.RequireFromString("25.00"), Date: "2025-05-01",
	})
	require.NoError(t, err)

	report, err := r.BudgetReport(ev.ID)
	require.NoError(t, err)
	require.Equal(t, 25.0, report.TotalSpent)
	require.Equal(t, 75.0, report.RemainingBudget)
}

func TestEventDetailNeverExposesPassword(t *testing.T) {
	db := testDB(t)
	s, g, r := New(db), NewEventGraph(db), NewReports(db)

	user, err := s.CreateUser(signup("john_doe", "john@example.com"))
	require.NoError(t, err)
	ev := seedEvent(t, s, user.ID)
	_, err = g.CreateTask(ev.ID, taskRequest("decorations"))
	require.NoError(t, err)
	_, err = g.CreateParticipant(ev.ID, model.CreateParticipantRequest{UserID: user.ID, Role: "organizer"})
	require.NoError(t, err)

	detail, err := r.EventDetail(ev.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Owner)
	require.Equal(t, user.ID, detail.Owner.ID)
	require.Len(t, detail.Tasks, 1)
	require.Len(t, detail.Participants, 1)
	require.Empty(t, detail.Resources)
	require.Empty(t, detail.Budgets)
	require.Empty(t, detail.Expenses)

	raw, err := json.Marshal(detail)
	require.NoError(t, err)
	require.False(t, strings.Contains(string(raw), "password"), "credential must never serialize")
	require.False(t, strings.Contains(string(raw), "hashed-secret"))
}

func TestEventDetailUnknownEvent(t *testing.T) {
	r := NewReports(testDB(t))

	_, err := r.EventDetail(404)
	require.ErrorIs(t, err, ErrEventNotFound)
}
