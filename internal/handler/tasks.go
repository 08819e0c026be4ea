package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventplanner/internal/model"
)

func (h *Handler) CreateTask(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req model.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	task, err := h.graph.CreateTask(eventID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	tasks, err := h.graph.Tasks(eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	taskID, ok := idParam(c, "task_id")
	if !ok {
		return
	}
	task, err := h.graph.Task(eventID, taskID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	taskID, ok := idParam(c, "task_id")
	if !ok {
		return
	}
	var patch model.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	task, err := h.graph.UpdateTask(eventID, taskID, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	eventID, ok := idParam(c, "id")
	if !ok {
		return
	}
	taskID, ok := idParam(c, "task_id")
	if !ok {
		return
	}
	if err := h.graph.DeleteTask(eventID, taskID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully."})
}

// AssignTask resolves the username and records the assignment.
func (h *Handler) AssignTask(c *gin.Context) {
	var req model.AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	task, err := h.assignments.Assign(req.TaskID, req.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task assigned successfully", "task": task})
}

func (h *Handler) UpdateTaskStatus(c *gin.Context) {
	var req model.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	task, err := h.assignments.SetStatus(req.TaskID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task status updated successfully", "task": task})
}

func (h *Handler) CompleteTask(c *gin.Context) {
	var req model.CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	task, err := h.assignments.Complete(req.TaskID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task marked as completed successfully", "task": task})
}
