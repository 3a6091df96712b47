package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- DTOs for API ---

// CreateUserRequest accepts form or JSON bodies.
type CreateUserRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
}

type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}

// MapUserToResponse converts a domain.User to UserResponse DTO.
func MapUserToResponse(u *domain.User) UserResponse {
	if u == nil {
		return UserResponse{}
	}
	return UserResponse{Username: u.Username, ID: u.ID}
}

// MapUsersToResponse converts a slice of domain.User to a slice of UserResponse DTO.
func MapUsersToResponse(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = MapUserToResponse(&users[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateUser godoc
// @Summary Register a user
// @Description Creates a user and an empty exercise log under a generated id.
// @Tags Users
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param username formData string true "Username"
// @Success 200 {object} UserResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		respondServiceError(c, "create user", err)
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// ListUsers godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {array} UserResponse
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, "list users", err)
		return
	}

	c.JSON(http.StatusOK, MapUsersToResponse(users))
}
