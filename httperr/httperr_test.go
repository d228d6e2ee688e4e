package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Big-pappi/sk-project/httperr"
)

func TestRespond_KnownError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	httperr.Respond(c, httperr.Conflict("You already have an active delivery"))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "active delivery")
}

func TestRespond_WrappedError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	wrapped := errors.Join(errors.New("context"), httperr.NotFound("Delivery not found"))
	httperr.Respond(c, wrapped)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRespond_UnknownErrorIs500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	httperr.Respond(c, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}
