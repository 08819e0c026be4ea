package handler

import (
	"github.com/gin-gonic/gin"

	"eventplanner/internal/middleware"
)

func (h *Handler) SetupRoutes(r *gin.Engine) {

	// Public Routes
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)

	// Protected Routes
	authorized := r.Group("/api")
	authorized.Use(middleware.AuthMiddleware(h.jwtSecret))
	{
		authorized.GET("/checksession", h.CheckSession)

		// EVENTS
		authorized.POST("/events", h.CreateEvent)
		authorized.GET("/events", h.ListEvents)
		authorized.GET("/events/:id", h.GetEvent)
		authorized.PUT("/events/:id", h.UpdateEvent)
		authorized.DELETE("/events/:id", h.DeleteEvent)
		authorized.GET("/events/:id/detail", h.GetEventDetail)

		// TASKS
		authorized.POST("/events/:id/tasks", h.CreateTask)
		authorized.GET("/events/:id/tasks", h.ListTasks)
		authorized.GET("/events/:id/tasks/:task_id", h.GetTask)
		authorized.PUT("/events/:id/tasks/:task_id", h.UpdateTask)
		authorized.DELETE("/events/:id/tasks/:task_id", h.DeleteTask)
		authorized.PUT("/tasks/assign", h.AssignTask)
		authorized.PUT("/tasks/update-status", h.UpdateTaskStatus)
		authorized.PUT("/tasks/complete", h.CompleteTask)

		// RESOURCES
		authorized.POST("/events/:id/resources", h.CreateResource)
		authorized.GET("/events/:id/resources", h.ListResources)
		authorized.GET("/events/:id/resources/:resource_id", h.GetResource)
		authorized.PUT("/events/:id/resources/:resource_id", h.UpdateResource)
		authorized.DELETE("/events/:id/resources/:resource_id", h.DeleteResource)

		// BUDGETS
		authorized.POST("/events/:id/budgets", h.CreateBudget)
		authorized.GET("/events/:id/budgets", h.ListBudgets)
		authorized.GET("/events/:id/budgets/:budget_id", h.GetBudget)
		authorized.PUT("/events/:id/budgets/:budget_id", h.UpdateBudget)
		authorized.DELETE("/events/:id/budgets/:budget_id", h.DeleteBudget)

		// EXPENSES
		authorized.POST("/events/:id/expenses", h.CreateExpense)
		authorized.GET("/events/:id/expenses", h.ListExpenses)
		authorized.GET("/events/:id/expenses/:expense_id", h.GetExpense)
		authorized.PUT("/events/:id/expenses/:expense_id", h.UpdateExpense)
		authorized.DELETE("/events/:id/expenses/:expense_id", h.DeleteExpense)

		// PARTICIPANTS
		authorized.POST("/events/:id/participants", h.CreateParticipant)
		authorized.GET("/events/:id/participants", h.ListParticipants)
		authorized.GET("/events/:id/participants/:participant_id", h.GetParticipant)
		authorized.PUT("/events/:id/participants/:participant_id", h.UpdateParticipant)
		authorized.DELETE("/events/:id/participants/:participant_id", h.DeleteParticipant)

		// REPORTS
		authorized.GET("/events/:id/tasks/completion", h.GetTaskCompletion)
		authorized.GET("/events/:id/budget/report", h.GetBudgetReport)
	}
}
