//go:build unit

package httperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"renthub/internal/handler/httperr"
	"renthub/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("writes the flat error body and aborts", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		cause := errs.New("item lookup failed")
		httperr.AbortWithError(c, http.StatusNotFound, cause, "Item not found", nil)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusNotFound, w.Code)

		var body struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Item not found", body.Error)
	})

	t.Run("records the cause for the error middleware", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		cause := errs.New("status conflict")
		httperr.AbortWithError(c, http.StatusBadRequest, cause, "Booking status already set", nil)

		require.Len(t, c.Errors, 1)
		assert.Equal(t, cause, c.Errors[0].Err)

		resp, ok := c.Errors[0].Meta.(httperr.Response)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, resp.Status)
		assert.Equal(t, "Booking status already set", resp.Error)
	})

	t.Run("synthesizes a cause when none is given", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		require.Len(t, c.Errors, 1)
		assert.EqualError(t, c.Errors[0].Err, "Unauthorized")
	})

	t.Run("detail is carried when provided", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("bad filter"), "Invalid filter", gin.H{"field": "filter"})

		var body struct {
			Error  string            `json:"error"`
			Detail map[string]string `json:"detail"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Invalid filter", body.Error)
		assert.Equal(t, "filter", body.Detail["field"])
	})
}
