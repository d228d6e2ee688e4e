package orderControllers_test

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

	orderControllers "github.com/Big-pappi/sk-project/controllers/order"
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

func cancelRouter(gormDB *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/orders/:id/cancel",
		func(c *gin.Context) { c.Set("user_id", userID) },
		orderControllers.CancelOrderHandler(gormDB))
	return r
}

func TestCancelOrder_RestoresSnapshotQuantities(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	orderRows := sqlmock.NewRows([]string{"id", "user_id", "status"}).
		AddRow("o1", "u1", string(models.OrderStatusPending))
	itemRows := sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity"}).
		AddRow("i1", "o1", "p1", 2).
		AddRow("i2", "o1", nil, 1).
		AddRow("i3", "o1", "p2", 3)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(orderRows)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_items"`)).
		WillReturnRows(itemRows)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "orders"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "deliveries"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// one stock restore per surviving snapshot line, deleted product skipped
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "products" SET "stock_quantity"=stock_quantity + $1`)).
		WithArgs(2, "p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "products" SET "stock_quantity"=stock_quantity + $1`)).
		WithArgs(3, "p2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := cancelRouter(gormDB, "u1")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/o1/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Order cancelled")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelOrder_WindowClosed(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	orderRows := sqlmock.NewRows([]string{"id", "user_id", "status"}).
		AddRow("o1", "u1", string(models.OrderStatusPickedUp))

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(orderRows)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "order_items"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	r := cancelRouter(gormDB, "u1")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/o1/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cannot cancel order")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelOrder_NotOwner(t *testing.T) {
	gormDB, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	r := cancelRouter(gormDB, "someone-else")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/o1/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
