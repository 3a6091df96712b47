package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// LogHandler holds the log service dependency.
type LogHandler struct {
	logService service.LogService
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(logService service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// --- DTOs for API ---

// DurationInput keeps the submitted duration as raw text. In JSON it may be
// a number or any string; the service reads the leading integer.
type DurationInput string

// UnmarshalJSON accepts a JSON number, a JSON string or null.
func (d *DurationInput) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*d = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = DurationInput(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		*d = DurationInput(data)
	default:
		return errors.New("duration must be a number or a string")
	}
	return nil
}

// AddExerciseRequest accepts form or JSON bodies.
type AddExerciseRequest struct {
	Description string        `form:"description" json:"description" binding:"required"`
	Duration    DurationInput `form:"duration" json:"duration" binding:"required"`
	Date        string        `form:"date" json:"date"`
}

type ExerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"id"`
}

// LogQueryRequest holds the optional filters of GET /logs.
type LogQueryRequest struct {
	From  string `form:"from"`
	To    string `form:"to"`
	Limit string `form:"limit"`
}

type LogEntryResponse struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

type LogResponse struct {
	ID       string             `json:"id"`
	Username string             `json:"username"`
	Count    int                `json:"count"`
	Entries  []LogEntryResponse `json:"entries"`
}

// MapLogToResponse converts a domain.Log to LogResponse DTO.
func MapLogToResponse(l *domain.Log) LogResponse {
	if l == nil {
		return LogResponse{Entries: []LogEntryResponse{}}
	}
	entries := make([]LogEntryResponse, len(l.Entries))
	for i, e := range l.Entries {
		entries[i] = LogEntryResponse{Description: e.Description, Duration: e.Duration, Date: e.Date}
	}
	return LogResponse{
		ID:       l.ID,
		Username: l.Username,
		Count:    l.Count,
		Entries:  entries,
	}
}

// --- Handler Methods ---

// AddExercise godoc
// @Summary Record an exercise
// @Description Appends an exercise to the user's log. Date defaults to today.
// @Tags Logs
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param id path string true "User ID"
// @Param description formData string true "Description"
// @Param duration formData integer true "Duration"
// @Param date formData string false "Date (yyyy-mm-dd)"
// @Success 200 {object} ExerciseResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "User not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /users/{id}/exercises [post]
func (h *LogHandler) AddExercise(c *gin.Context) {
	var req AddExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	rec, err := h.logService.AddExercise(c.Request.Context(), c.Param("id"), service.AddExerciseInput{
		Description: req.Description,
		Duration:    string(req.Duration),
		Date:        req.Date,
	})
	if err != nil {
		respondServiceError(c, "add exercise", err)
		return
	}

	c.JSON(http.StatusOK, ExerciseResponse{
		Username:    rec.Username,
		Description: rec.Description,
		Duration:    rec.Duration,
		Date:        rec.Date,
		ID:          rec.UserID,
	})
}

// GetLog godoc
// @Summary Read a user's exercise log
// @Description Entries can be filtered by an inclusive date range (both from and to required) and truncated by limit. count is always the full log size.
// @Tags Logs
// @Produce json
// @Param id path string true "User ID"
// @Param from query string false "Start date (yyyy-mm-dd)"
// @Param to query string false "End date (yyyy-mm-dd)"
// @Param limit query integer false "Maximum entries"
// @Success 200 {object} LogResponse
// @Failure 400 {object} gin.H "Invalid filter"
// @Failure 404 {object} gin.H "User not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /users/{id}/logs [get]
func (h *LogHandler) GetLog(c *gin.Context) {
	var q LogQueryRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	l, err := h.logService.GetLog(c.Request.Context(), c.Param("id"), service.LogQuery{
		From:  q.From,
		To:    q.To,
		Limit: q.Limit,
	})
	if err != nil {
		respondServiceError(c, "get log", err)
		return
	}

	c.JSON(http.StatusOK, MapLogToResponse(l))
}
