package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/petsphere/petsphere-api/internal/auth"
	"github.com/petsphere/petsphere-api/internal/models"
	"github.com/petsphere/petsphere-api/internal/store"
)

//
// --- Account & Session Handlers ---
//

// RegisterInput holds the payload for creating an account. It deliberately
// carries no id: server-assigned fields are never accepted from callers.
type RegisterInput struct {
	Username  string  `json:"username" binding:"required"`
	Password  string  `json:"password" binding:"required,min=6"`
	Email     string  `json:"email" binding:"required,email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	ZipCode   *string `json:"zipCode"`
	Phone     *string `json:"phone"`
}

// Register is the handler for POST /api/register.
// Username and email uniqueness are checked here, before the store is
// touched; the store itself only enforces username lookups.
func (h *Handlers) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if h.Store.GetUserByUsername(input.Username) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		return
	}
	if h.Store.GetUserByEmail(input.Email) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := h.Store.CreateUser(models.User{
		Username:  input.Username,
		Password:  hashed,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		ZipCode:   input.ZipCode,
		Phone:     input.Phone,
	})

	// Log the new account straight in.
	token, err := h.Auth.IssueSession(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login after registration failed"})
		return
	}
	h.setSessionCookie(c, token)

	c.JSON(http.StatusCreated, user)
}

// LoginInput holds the payload for POST /api/login.
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /api/login. Unknown usernames and wrong
// passwords produce the identical response.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	user, err := h.Auth.Authenticate(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := h.Auth.IssueSession(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}
	h.setSessionCookie(c, token)

	c.JSON(http.StatusOK, user)
}

// Logout is the handler for POST /api/logout. It revokes the server-side
// session and clears the cookie; logging out without a session still
// succeeds.
func (h *Handlers) Logout(c *gin.Context) {
	if token, err := c.Cookie(auth.SessionCookie); err == nil && token != "" {
		h.Auth.RevokeSession(token)
	}
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetCurrentUser is the handler for GET /api/user.
func (h *Handlers) GetCurrentUser(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

// UpdateProfileInput holds the payload for PUT /api/user. Every field is
// optional; absent fields are left untouched.
type UpdateProfileInput struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	ZipCode   *string `json:"zipCode"`
	Phone     *string `json:"phone"`
}

// UpdateProfile is the handler for PUT /api/user.
func (h *Handlers) UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	user := h.Store.UpdateUser(currentUser(c).ID, store.UserPatch{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		ZipCode:   input.ZipCode,
		Phone:     input.Phone,
	})
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// setSessionCookie attaches the session token to the response. The cookie
// lives as long as the server-side session window.
func (h *Handlers) setSessionCookie(c *gin.Context, token string) {
	maxAge := int(h.Auth.Sessions.TTL().Seconds())
	c.SetCookie(auth.SessionCookie, token, maxAge, "/", "", false, true)
}
