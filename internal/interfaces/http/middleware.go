package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// EditCapability gates mutating endpoints on the caller's edit permission.
// The capability is granted when the X-API-Key header matches one of the
// configured editor keys. With no keys configured every caller may edit,
// which is the single-operator dev setup.
func EditCapability(editorKeys []string) gin.HandlerFunc {
	keys := make(map[string]bool, len(editorKeys))
	for _, key := range editorKeys {
		keys[key] = true
	}

	return func(c *gin.Context) {
		if len(keys) == 0 {
			c.Next()
			return
		}
		if !keys[c.GetHeader("X-API-Key")] {
			c.AbortWithStatusJSON(http.StatusForbidden, Response{
				Success: false,
				Error:   "edit permission required",
			})
			return
		}
		c.Next()
	}
}
