package controllers

import (
	"errors"
	"net/http"

	"github.com/Engel1110/gaming-room-cust/middleware"
	"github.com/Engel1110/gaming-room-cust/services"

	"github.com/gin-gonic/gin"
)

// invalidLoginBody is the exact failure text the storefront has always
// returned; clients match on it.
const invalidLoginBody = "Invalid username or password"

type credentialsRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// AuthController handles registration, login, and logout.
type AuthController struct {
	auth     *services.AuthService
	sessions *services.SessionService
}

// NewAuthController creates a new AuthController.
func NewAuthController(auth *services.AuthService, sessions *services.SessionService) *AuthController {
	return &AuthController{auth: auth, sessions: sessions}
}

// ShowRegister handles GET /register.
func (ac *AuthController) ShowRegister(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "POST username and password to /register"})
}

// Register handles POST /register. On success the caller is redirected to
// the login route.
func (ac *AuthController) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	if _, err := ac.auth.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

// ShowLogin handles GET /login.
func (ac *AuthController) ShowLogin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "POST username and password to /login"})
}

// Login handles POST /login. Success sets the session cookie and redirects
// to the index; failure returns the literal error body with no redirect.
func (ac *AuthController) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	user, err := ac.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.String(http.StatusUnauthorized, invalidLoginBody)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	token, err := ac.sessions.Issue(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to establish session"})
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(ac.sessions.TTL().Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// Logout handles GET /logout. Revokes the server-side session, clears the
// cookie, and redirects to login. Safe to repeat.
func (ac *AuthController) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil {
		_ = ac.sessions.Revoke(c.Request.Context(), token)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
