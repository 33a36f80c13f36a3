package httperr

import (
	"github.com/gin-gonic/gin"

	"renthub/internal/pkg/errs"
)

// Response is the flat error body every endpoint returns.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status, Error: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
