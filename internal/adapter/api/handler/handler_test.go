package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delwerhossain/e-com/internal/adapter/api"
	"github.com/delwerhossain/e-com/pkg/errors"
	"github.com/delwerhossain/e-com/pkg/response"
)

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = api.NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestQueryParamsRejectsUnknown(t *testing.T) {
	c, _ := newContext(t, http.MethodGet, "/v1/users?email=a@b.c&favoriteColor=blue", "")

	_, err := queryParams(c, "email", "page", "limit")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeValidation))
	assert.Contains(t, err.Error(), "favoriteColor")
}

func TestQueryParamsDropsEmptyValues(t *testing.T) {
	c, _ := newContext(t, http.MethodGet, "/v1/users?email=&name=Jo", "")

	params, err := queryParams(c, "email", "name")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "Jo"}, params)
}

func TestLoginValidationEnvelope(t *testing.T) {
	h := NewAuthHandler(nil)

	c, rec := newContext(t, http.MethodPost, "/v1/auth/login", `{"email":"not-an-email","password":"x"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, errors.CodeValidation, envelope.Error.Code)
	assert.Contains(t, envelope.Error.Message, "email")
}

func TestRegisterUserValidationEnvelope(t *testing.T) {
	h := NewUserHandler(nil)

	// Password below the minimum length never reaches the usecase.
	c, rec := newContext(t, http.MethodPost, "/v1/users", `{"email":"jo@example.com","password":"short"}`)
	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, errors.CodeValidation, envelope.Error.Code)
}

func TestCreateReviewValidationEnvelope(t *testing.T) {
	h := NewReviewHandler(nil)

	c, rec := newContext(t, http.MethodPost, "/v1/reviews", `{"productId":"p1","rating":9,"comment":"long enough comment"}`)
	c.Set("uid", "u1")
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, errors.CodeValidation, envelope.Error.Code)
}
