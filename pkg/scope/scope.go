package scope

import (
	"github.com/gin-gonic/gin"

	"smart-focus-suggestion/internal/model"
)

const ginKey = "request_scope"

// SetGin attaches the resolved scope to the gin context.
func SetGin(c *gin.Context, sc model.Scope) {
	c.Set(ginKey, sc)
}

// FromGin retrieves the scope a middleware attached earlier.
func FromGin(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(ginKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
