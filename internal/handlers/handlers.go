package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/petsphere/petsphere-api/internal/auth"
	"github.com/petsphere/petsphere-api/internal/middleware"
	"github.com/petsphere/petsphere-api/internal/models"
	"github.com/petsphere/petsphere-api/internal/store"
)

// Handlers bundles the dependencies every handler needs. All state is
// injected here once at startup; there are no package-level singletons.
type Handlers struct {
	Store *store.Store
	Auth  *auth.Gateway
}

// currentUser returns the user RequireAuth attached to the request.
// Only valid on routes behind the auth middleware.
func currentUser(c *gin.Context) *models.User {
	raw, _ := c.Get(middleware.ContextUserKey)
	return raw.(*models.User)
}
