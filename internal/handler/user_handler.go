package handler

import (
	"net/http"
	"time"

	"mis/internal/middleware"
	"mis/internal/model"
	"mis/internal/service"
	"mis/internal/session"
	"mis/pkg/apperror"
	"mis/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
	auth        *middleware.Auth
	ttl         time.Duration
	cookie      session.CookieOptions
}

// NewUserHandler sets up the routing dependencies for auth and User endpoints
func NewUserHandler(userService service.UserService, auth *middleware.Auth, issuer *session.Issuer, cookie session.CookieOptions) *UserHandler {
	return &UserHandler{
		userService: userService,
		auth:        auth,
		ttl:         issuer.TTL(),
		cookie:      cookie,
	}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	// Public routes
	router.POST("/api/login", h.Login)
	router.POST("/api/logout", h.Logout)
	router.GET("/logout", h.LogoutRedirect)

	// Any valid session
	router.GET("/api/user-info", h.auth.RequireSession(), h.GetUserInfo)
	router.GET("/api/user-profile", h.auth.RequireSession(), h.GetUserProfile)

	users := router.Group("/api/users")
	users.Use(h.auth.RequireLevel(model.LevelAdmin))
	{
		users.GET("", h.ListUsers)
		users.PUT("/:username", h.UpdateUser)
	}
}

// Login handles POST /api/login and sets the session cookie
// @Summary      Login user
// @Description  Authenticates by username or email and password, then sets the auth cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginRequest  true  "Login Credentials"
// @Success      200      {object}  response.Response{user=service.UserInfo}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /api/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.BadRequest("Invalid request payload"))
		return
	}

	res, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	session.SetCookie(c, res.Token, h.ttl, h.cookie)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    res.User,
	})
}

// Logout handles POST /api/logout
// @Summary      Logout user
// @Description  Clears the auth cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	session.ClearCookie(c, h.cookie)
	response.OK(c, "Logged out successfully")
}

// LogoutRedirect handles GET /logout for plain links in the pages
func (h *UserHandler) LogoutRedirect(c *gin.Context) {
	session.ClearCookie(c, h.cookie)
	c.Redirect(http.StatusFound, "/login")
}

// GetUserInfo returns the compact principal summary
// @Summary      Current user summary
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{user=service.UserInfo}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/user-info [get]
func (h *UserHandler) GetUserInfo(c *gin.Context) {
	user, err := middleware.Principal(c)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.With("user", h.userService.Info(user)))
}

// GetUserProfile returns the full profile of the current principal
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{profile=model.User}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/user-profile [get]
func (h *UserHandler) GetUserProfile(c *gin.Context) {
	user, err := middleware.Principal(c)
	if err != nil {
		response.Fail(c, err)
		return
	}
	profile, err := h.userService.Profile(c.Request.Context(), user.Username)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.With("profile", profile))
}

// ListUsers handles GET /api/users
// @Summary      List users
// @Description  Lists principals, filtered by department, region, level or search
// @Tags         users
// @Produce      json
// @Param        department  query     string  false  "Department"
// @Param        region      query     string  false  "Region"
// @Param        level       query     string  false  "admin or user"
// @Param        search      query     string  false  "Username, name or email substring"
// @Success      200         {object}  response.Response{users=[]model.User}
// @Failure      401         {object}  response.Response
// @Failure      403         {object}  response.Response
// @Router       /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context(), queryParams(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.With("users", users))
}

// UpdateUser handles PUT /api/users/:username
// @Summary      Update a user
// @Description  Changes profile fields, level or capability flags of a principal
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Param        payload   body      object  true  "Fields to change"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /api/users/{username} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	fields, err := bindFields(c)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if err := h.userService.UpdateUser(c.Request.Context(), middleware.Actor(c), c.Param("username"), fields); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "User updated successfully")
}
