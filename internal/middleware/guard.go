package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/schoolsync/ptm-api/internal/models"
	"github.com/schoolsync/ptm-api/internal/session"
)

// DashboardGuard protects the role-scoped dashboard pages. It runs before
// any handler logic, is stateless, and does not verify that the user id in
// the cookie still exists. A missing or unreadable cookie redirects to the
// login page; a cookie whose role does not match the path's first segment
// redirects to the landing page.
func DashboardGuard(sessions *session.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := sessions.Read(c)
		if user == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		path := c.Request.URL.Path
		parentRoute := strings.HasPrefix(path, "/parent/")
		teacherRoute := strings.HasPrefix(path, "/teacher/")

		if (parentRoute && user.Role != models.RoleParent) ||
			(teacherRoute && user.Role != models.RoleTeacher) {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}
