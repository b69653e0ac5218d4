package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"picstash/models"
)

// SessionUserKey is the session attribute holding the logged in user's id.
const SessionUserKey = "loggeduser"

const contextUserKey = "currentUser"

// CurrentUser resolves the session's logged in user once per request and
// exposes it on the gin context. Handlers read the user through UserFrom
// instead of reaching into the session themselves.
func CurrentUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if id, ok := session.Get(SessionUserKey).(uint); ok {
			var user models.User
			if err := db.First(&user, id).Error; err == nil {
				c.Set(contextUserKey, &user)
			}
		}
		c.Next()
	}
}

// UserFrom returns the logged in user for this request, or nil.
func UserFrom(c *gin.Context) *models.User {
	if v, ok := c.Get(contextUserKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
