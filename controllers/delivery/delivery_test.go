package deliveryControllers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	deliveryControllers "github.com/Big-pappi/sk-project/controllers/delivery"
	"github.com/Big-pappi/sk-project/httperr"
	"github.com/Big-pappi/sk-project/models"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func TestGetAvailableDeliveries(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	now := time.Now()
	deliveryRows := sqlmock.NewRows([]string{"id", "order_id", "boda_id", "status", "delivery_fee", "created_at"}).
		AddRow("d1", "o1", nil, string(models.DeliveryStatusPending), 500.0, now)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "deliveries"`)).
		WithArgs(string(models.DeliveryStatusPending)).
		WillReturnRows(deliveryRows)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WithArgs("o1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/boda/deliveries/available", deliveryControllers.GetAvailableDeliveries(gormDB))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boda/deliveries/available", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"d1"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func profileRows(verified, available bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "is_verified", "is_available"}).
		AddRow("bp1", "u1", verified, available)
}

func TestAcceptDelivery_UnverifiedRider(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "boda_profiles"`)).
		WillReturnRows(profileRows(false, true))
	mock.ExpectRollback()

	err := deliveryControllers.AcceptDelivery(gormDB, "u1", "d1")
	assert.Error(t, err)

	var httpErr *httperr.Error
	assert.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusForbidden, httpErr.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptDelivery_UnavailableRider(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "boda_profiles"`)).
		WillReturnRows(profileRows(true, false))
	mock.ExpectRollback()

	err := deliveryControllers.AcceptDelivery(gormDB, "u1", "d1")
	assert.Error(t, err)

	var httpErr *httperr.Error
	assert.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusConflict, httpErr.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptDelivery_SecondActiveDeliveryRejected(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "boda_profiles"`)).
		WillReturnRows(profileRows(true, true))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "deliveries"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := deliveryControllers.AcceptDelivery(gormDB, "u1", "d1")
	assert.Error(t, err)

	var httpErr *httperr.Error
	assert.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusConflict, httpErr.Status)
	assert.Contains(t, httpErr.Message, "active delivery")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptDelivery_AlreadyTaken(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "boda_profiles"`)).
		WillReturnRows(profileRows(true, true))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "deliveries"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "deliveries"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := deliveryControllers.AcceptDelivery(gormDB, "u1", "d1")
	assert.Error(t, err)

	var httpErr *httperr.Error
	assert.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAvailableDeliveries_NoneOpen(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "deliveries"`)).
		WithArgs(string(models.DeliveryStatusPending)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/boda/deliveries/available", deliveryControllers.GetAvailableDeliveries(gormDB))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boda/deliveries/available", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
