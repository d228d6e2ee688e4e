package adminControllers_test

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	adminControllers "github.com/Big-pappi/sk-project/controllers/admin"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func TestVerifyShop_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "shops"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/shops/:id/verify", adminControllers.VerifyShop(gormDB))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/shops/shop-1/verify", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Shop verified")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyShop_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "shops"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/shops/:id/verify", adminControllers.VerifyShop(gormDB))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/shops/missing/verify", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifyBoda_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "boda_profiles"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/boda/:id/verify", adminControllers.VerifyBoda(gormDB))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/boda/boda-1/verify", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
