package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	origins := []string{"http://localhost:5173"}

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(CORSMiddleware(origins))
		r.GET("/todos", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("Should allow a configured origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/todos", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})
	t.Run("Should not echo an unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/todos", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
	t.Run("Should short-circuit preflight requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/todos", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
