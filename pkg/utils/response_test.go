package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name  *string `json:"name" binding:"required"`
	Count *int    `json:"count" binding:"required"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterJSONFieldNames()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var p samplePayload
	return c.ShouldBindJSON(&p)
}

func TestFieldErrors_MissingFieldsUseJSONNames(t *testing.T) {
	err := bind(t, `{}`)
	require.Error(t, err)

	details := FieldErrors(err)
	require.Len(t, details, 2)
	assert.Equal(t, FieldError{Field: "name", Message: "field required"}, details[0])
	assert.Equal(t, FieldError{Field: "count", Message: "field required"}, details[1])
}

func TestFieldErrors_ZeroValuesArePresent(t *testing.T) {
	assert.NoError(t, bind(t, `{"name":"","count":0}`))
}

func TestFieldErrors_TypeMismatch(t *testing.T) {
	err := bind(t, `{"name":"x","count":"many"}`)
	require.Error(t, err)

	details := FieldErrors(err)
	require.Len(t, details, 1)
	assert.Equal(t, "count", details[0].Field)
	assert.Contains(t, details[0].Message, "string")
}

func TestFieldErrors_Other(t *testing.T) {
	details := FieldErrors(errors.New("unexpected EOF"))
	require.Len(t, details, 1)
	assert.Empty(t, details[0].Field)
	assert.Equal(t, "unexpected EOF", details[0].Message)
}

func TestValidationErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rr := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rr)

	ValidationErrorResponse(c, errors.New("bad body"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid request format", resp.Message)
	assert.Equal(t, "bad body", resp.Error)
}

func TestNewLogger_Levels(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewLogger("debug").GetLevel())
	assert.Equal(t, logrus.WarnLevel, NewLogger(" WARN ").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("verbose").GetLevel())
}
