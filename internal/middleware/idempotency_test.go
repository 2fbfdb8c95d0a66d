package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-sales-report/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no header passes through", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		r := gin.New()
		r.POST("/reports", middleware.Idempotency(rdb), func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"data": gin.H{"id": 42}})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader("{}"))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cached key replays the stored response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		cacheKey := "idemp:/reports:7:abc-123"
		mock.ExpectGet(cacheKey).SetVal(`{"data":{"id":42}}`)

		handlerCalled := false
		r := gin.New()
		r.POST("/reports", func(c *gin.Context) {
			c.Set(middleware.KeySalesPersonID, uint(7))
		}, middleware.Idempotency(rdb), func(c *gin.Context) {
			handlerCalled = true
			c.JSON(http.StatusCreated, gin.H{"data": gin.H{"id": 43}})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader("{}"))
		req.Header.Set("Idempotency-Key", "abc-123")
		r.ServeHTTP(w, req)

		assert.False(t, handlerCalled)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":{"id":42}}`, w.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in-flight duplicate gets 409", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		cacheKey := "idemp:/reports:7:abc-123"
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		r := gin.New()
		r.POST("/reports", func(c *gin.Context) {
			c.Set(middleware.KeySalesPersonID, uint(7))
		}, middleware.Idempotency(rdb), func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"data": gin.H{"id": 42}})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader("{}"))
		req.Header.Set("Idempotency-Key", "abc-123")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
