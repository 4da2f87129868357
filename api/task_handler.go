package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tracker/database"
	"tracker/errs"
	"tracker/models"
)

type taskHandler struct {
	responder Responder
	logger    zerolog.Logger
	taskRepo  *database.TaskRepo
}

func newTaskHandler(taskRepo *database.TaskRepo) taskHandler {
	logger := log.With().Str("handlerName", "taskHandler").Logger()

	return taskHandler{
		responder: NewResponder(logger),
		logger:    logger,
		taskRepo:  taskRepo,
	}
}

type taskRequest struct {
	Title    *string `json:"title"`
	State    *string `json:"state"`
	Priority *int    `json:"priority"`
	Points   *int    `json:"points"`
}

func validateTaskTitle(title string) *errs.ApiErr {
	if title == "" {
		return errs.NewValidationError("title", "title is required")
	}
	if len(title) > models.MaxTaskTitleLen {
		return errs.NewValidationError("title", "title must be at most 25 characters")
	}
	return nil
}

func validateTaskState(state string) (models.TaskState, *errs.ApiErr) {
	taskState := models.TaskState(state)
	if !taskState.Valid() {
		return "", errs.NewValidationError("state", "state must be planning, in_progress, in_qa or done")
	}
	return taskState, nil
}

// getAllTasks lists tasks on the board, optionally filtered by state
// @Summary Get all tasks
// @Description Retrieves all tasks, filterable by board state
// @Tags Tasks
// @Accept json
// @Produce json
// @Param state query string false "Filter by state (planning/in_progress/in_qa/done)"
// @Success 200 {object} TaskCollection "List of tasks"
// @Router /tasks [get]
func (h taskHandler) getAllTasks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var state models.TaskState
		if raw := r.URL.Query().Get("state"); raw != "" {
			validated, apiErr := validateTaskState(raw)
			if apiErr != nil {
				h.responder.WriteError(w, apiErr)
				return
			}
			state = validated
		}

		tasks, err := h.taskRepo.FindAll(state)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "tasks", err))
			return
		}

		if tasks == nil {
			tasks = []*models.Task{}
		}
		h.responder.WriteJSON(w, TaskCollection{
			Tasks: tasks,
			Total: len(tasks),
		})
	}
}

// getTask retrieves a specific task by ID
// @Summary Get task
// @Description Retrieves a task by ID
// @Tags Tasks
// @Accept json
// @Produce json
// @Param taskID path string true "Task ID" format(uuid)
// @Success 200 {object} models.Task "Task details"
// @Failure 404 {object} ErrorResponse "Not Found - Task not found"
// @Router /task/{taskID} [get]
func (h taskHandler) getTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, apiErr := parseUUIDParam(r, "taskID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		task, err := h.taskRepo.FindByID(taskID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "task", err))
			return
		}

		h.responder.WriteJSON(w, task)
	}
}

// createTask creates a new task on the board
// @Summary Create task
// @Description Creates a new task; state defaults to planning
// @Tags Tasks
// @Accept json
// @Produce json
// @Param task body taskRequest true "Task data"
// @Success 201 {object} models.Task "Created task"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid task data"
// @Router /task [post]
func (h taskHandler) createTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req taskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode task request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title == nil {
			h.responder.WriteError(w, errs.NewValidationError("title", "title is required"))
			return
		}
		if apiErr := validateTaskTitle(*req.Title); apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		task := models.Task{
			Title: *req.Title,
			State: models.TaskStatePlanning,
		}
		if req.State != nil {
			state, apiErr := validateTaskState(*req.State)
			if apiErr != nil {
				h.responder.WriteError(w, apiErr)
				return
			}
			task.State = state
		}
		if req.Priority != nil {
			task.Priority = *req.Priority
		}
		if req.Points != nil {
			task.Points = *req.Points
		}

		if err := h.taskRepo.Add(&task); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "task", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, task)
	}
}

// updateTask updates an existing task
// @Summary Update task
// @Description Updates a task's fields; absent fields are left unchanged
// @Tags Tasks
// @Accept json
// @Produce json
// @Param taskID path string true "Task ID" format(uuid)
// @Param task body taskRequest true "Updated task data"
// @Success 200 {object} models.Task "Updated task"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid task data"
// @Failure 404 {object} ErrorResponse "Not Found - Task not found"
// @Router /task/{taskID} [put]
func (h taskHandler) updateTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, apiErr := parseUUIDParam(r, "taskID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		task, err := h.taskRepo.FindByID(taskID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "task", err))
			return
		}

		var req taskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode task request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Title != nil {
			if apiErr := validateTaskTitle(*req.Title); apiErr != nil {
				h.responder.WriteError(w, apiErr)
				return
			}
			task.Title = *req.Title
		}
		if req.State != nil {
			state, apiErr := validateTaskState(*req.State)
			if apiErr != nil {
				h.responder.WriteError(w, apiErr)
				return
			}
			task.State = state
		}
		if req.Priority != nil {
			task.Priority = *req.Priority
		}
		if req.Points != nil {
			task.Points = *req.Points
		}

		if err := h.taskRepo.Update(task); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "task", err))
			return
		}

		h.responder.WriteJSON(w, task)
	}
}

// deleteTask deletes a task by ID
// @Summary Delete task
// @Description Deletes a task from the board
// @Tags Tasks
// @Accept json
// @Produce json
// @Param taskID path string true "Task ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 404 {object} ErrorResponse "Not Found - Task not found"
// @Router /task/{taskID} [delete]
func (h taskHandler) deleteTask() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, apiErr := parseUUIDParam(r, "taskID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		if _, err := h.taskRepo.FindByID(taskID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "task", err))
			return
		}

		if err := h.taskRepo.Delete(taskID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "task", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"message": "task deleted"})
	}
}
