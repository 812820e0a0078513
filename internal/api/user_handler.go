package api

import (
	"errors"
	"net/http"

	"exercise-tracker/internal/domain"
	"exercise-tracker/internal/service"

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

// --- DTOs for API (Data Transfer Objects) ---

// CreateUserRequest defines the expected form body for creating a user.
type CreateUserRequest struct {
	Username string `form:"username" binding:"required"`
}

// UserResponse is the DTO for returning a user. The id is exposed under the
// "_id" key that API clients expect.
type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// MapUserToResponse converts a domain.User to UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		Username: user.Username,
		ID:       user.ID.Hex(),
	}
}

// MapUsersToResponse converts a slice of domain.User to a slice of UserResponse DTO.
func MapUsersToResponse(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = MapUserToResponse(&user)
	}
	return responses
}

// --- Handler Methods ---

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, MapUsersToResponse(users))
}
