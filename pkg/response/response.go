package response

import (
	"github.com/gin-gonic/gin"

	appErrors "github.com/schoolsync/ptm-api/pkg/errors"
)

// The wire contract is `{"success": true, ...}` on success and
// `{"success": false, "message": ...}` on failure, matching what the
// dashboard frontends consume.

// OK sends a success payload merged with the success flag.
func OK(c *gin.Context, status int, payload gin.H) {
	c.Header("Cache-Control", "no-store")
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error renders a failure from a typed error. Wrapped cause detail is only
// exposed outside release mode.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	body := gin.H{"success": false, "message": appErr.Message}
	if gin.Mode() != gin.ReleaseMode && appErr.Err != nil {
		body["debug"] = appErr.Err.Error()
	}
	c.JSON(appErr.Status, body)
}
