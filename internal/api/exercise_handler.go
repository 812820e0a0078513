package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/repository"
	"exercise-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// requestDateLayout is the calendar date format accepted in request bodies
// and query parameters.
const requestDateLayout = "2006-01-02"

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs for API (Data Transfer Objects) ---

// AddExerciseRequest defines the expected form body for logging an exercise.
// Duration binds as an integer, so non-numeric input is rejected at the
// binding step rather than persisted as garbage.
type AddExerciseRequest struct {
	Description string `form:"description" binding:"required"`
	Duration    int    `form:"duration" binding:"required,min=1"`
	Date        string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// AddExerciseResponse echoes the logged exercise together with the owning
// user. "_id" carries the user's id, not the exercise's.
type AddExerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

// LogEntryResponse is a single exercise inside a log response.
type LogEntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse is the DTO for returning a user's exercise log.
type LogResponse struct {
	Username string             `json:"username"`
	Count    int                `json:"count"`
	ID       string             `json:"_id"`
	Log      []LogEntryResponse `json:"log"`
}

// MapExercisesToLogEntries converts domain exercises to log entry DTOs.
func MapExercisesToLogEntries(exercises []domain.Exercise) []LogEntryResponse {
	entries := make([]LogEntryResponse, len(exercises))
	for i, ex := range exercises {
		entries[i] = LogEntryResponse{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        ex.DateString(),
		}
	}
	return entries
}

// --- Handler Methods ---

// AddExercise handles POST /api/users/:id/exercises.
func (h *ExerciseHandler) AddExercise(c *gin.Context) {
	// A malformed id can never reference a user, so it gets the same 404
	// surface as an unknown one.
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "User not found")
		return
	}

	var req AddExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	var date time.Time
	if req.Date != "" {
		date, err = time.Parse(requestDateLayout, req.Date)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid date: expected YYYY-MM-DD")
			return
		}
	}

	user, exercise, err := h.exerciseService.AddExercise(c.Request.Context(), userID, req.Description, req.Duration, date)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, AddExerciseResponse{
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.DateString(),
		ID:          user.ID.Hex(),
	})
}

// GetLogs handles GET /api/users/:id/logs.
func (h *ExerciseHandler) GetLogs(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, "User not found")
		return
	}

	filter, err := parseLogFilter(c)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, exercises, err := h.exerciseService.GetLog(c.Request.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, "User not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, LogResponse{
		Username: user.Username,
		Count:    len(exercises),
		ID:       user.ID.Hex(),
		Log:      MapExercisesToLogEntries(exercises),
	})
}

// parseLogFilter reads the optional from/to/limit query parameters.
func parseLogFilter(c *gin.Context) (repository.LogFilter, error) {
	var filter repository.LogFilter

	if v := c.Query("from"); v != "" {
		from, err := time.Parse(requestDateLayout, v)
		if err != nil {
			return filter, fmt.Errorf("invalid from date %q: expected YYYY-MM-DD", v)
		}
		filter.From = &from
	}

	if v := c.Query("to"); v != "" {
		to, err := time.Parse(requestDateLayout, v)
		if err != nil {
			return filter, fmt.Errorf("invalid to date %q: expected YYYY-MM-DD", v)
		}
		filter.To = &to
	}

	if v := c.Query("limit"); v != "" {
		limit, err := strconv.ParseInt(v, 10, 64)
		if err != nil || limit < 1 {
			return filter, fmt.Errorf("invalid limit %q: expected a positive integer", v)
		}
		filter.Limit = limit
	}

	return filter, nil
}
