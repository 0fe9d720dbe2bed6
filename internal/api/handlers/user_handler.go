package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/grant-tracker/internal/api/middleware"
	"github.com/linskybing/grant-tracker/internal/application"
	"github.com/linskybing/grant-tracker/internal/config"
	"github.com/linskybing/grant-tracker/internal/domain/user"
	"github.com/linskybing/grant-tracker/pkg/response"
)

const tokenCookie = "token"

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary User registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.CreateUserInput true "User registration info"
// @Success 201 {object} user.UserDTO
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Username already taken"
// @Failure 500 {object} response.ErrorResponse "Failed to create user"
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.CreateUserInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}

	u, err := h.svc.RegisterUser(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user.ToDTO(u))
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse "JWT token and user info"
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid username or password"
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}

	u, token, err := h.svc.LoginUser(input.Username, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		tokenCookie,
		token,
		int(config.JwtExpiry.Seconds()),
		"/",
		"",
		config.Env == "production", // Secure only in production
		true,
	)

	c.JSON(http.StatusOK, response.TokenResponse{
		Token: token,
		User:  user.ToDTO(u),
	})
}

// Logout godoc
// @Summary User logout
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse "Logout successful"
// @Router /logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(tokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// ListUsers godoc
// @Summary List users with their ticket totals
// @Tags users
// @Produce json
// @Success 200 {object} user.UserListDTO
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	list, err := h.svc.ListUsersWithTotals()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetUser godoc
// @Summary Get a user with their tickets
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} application.UserDetail
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /users/{username} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	detail, err := h.svc.GetUserDetail(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetMyDetails godoc
// @Summary Current user's account and profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} user.DetailsDTO
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Router /my/details [get]
func (h *UserHandler) GetMyDetails(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	details, err := h.svc.GetDetails(actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// UpdateMyDetails godoc
// @Summary Change the current user's name, email and profile
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body user.UpdateDetailsInput true "Details"
// @Success 200 {object} user.DetailsDTO
// @Failure 400 {object} response.ValidationErrorResponse "Invalid input"
// @Router /my/details [put]
func (h *UserHandler) UpdateMyDetails(c *gin.Context) {
	var input user.UpdateDetailsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	actor := middleware.ActorFrom(c)
	details, err := h.svc.UpdateDetails(c, actor.UserID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// AdminListUsers godoc
// @Summary List user accounts for staff
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} user.AdminUserListDTO
// @Failure 403 {object} response.ErrorResponse "Staff access required"
// @Router /admin/users [get]
func (h *UserHandler) AdminListUsers(c *gin.Context) {
	list, err := h.svc.AdminListUsers(middleware.ActorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
