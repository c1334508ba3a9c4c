package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/haierkeys/lead-intention-service/pkg/code"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, lang string, c *code.Code) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if lang != "" {
		ctx.Set(LangKey, lang)
	}
	NewResponse(ctx).ToResponse(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestToResponse_NoContent(t *testing.T) {
	w := render(t, "", code.ErrorNoContent.Clone())

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestToResponse_SuccessWritesData(t *testing.T) {
	w := render(t, "", code.Created.Clone().WithData(map[string]string{"id": "7"}))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, map[string]interface{}{"id": "7"}, decode(t, w))
}

func TestToResponse_ClientErrorKeepsDetails(t *testing.T) {
	w := render(t, "pt_br", code.ErrorZipcodeInvalid.Clone().WithDetails("zipcode_start", "zipcode_end"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "CEP inválido", body["message"])
	assert.Equal(t, "zipcode_start,zipcode_end", body["details"])
}

func TestToResponse_ClientErrorWithoutDetails(t *testing.T) {
	w := render(t, "", code.ErrorZipcodeInvalid.Clone())

	assert.Equal(t, map[string]interface{}{"message": "Invalid zip code"}, decode(t, w))
}

func TestToResponse_ServerErrorHidesDetails(t *testing.T) {
	w := render(t, "", code.ErrorServerInternal.Clone().WithDetails("dial tcp: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.NotEmpty(t, body["message"])
	assert.NotContains(t, body, "details")
}

func TestGetRequestIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	ctx.Request.RemoteAddr = "[::1]:51234"
	assert.Equal(t, "127.0.0.1", GetRequestIP(ctx))

	ctx.Request.RemoteAddr = "198.51.100.4:51234"
	assert.Equal(t, "198.51.100.4", GetRequestIP(ctx))
}

func TestValidErrors(t *testing.T) {
	errs := ValidErrors{
		{Key: "Email", Tag: "required", Message: "email is required"},
		{Key: "Name", Tag: "max", Message: "name is too long"},
	}

	assert.Equal(t, map[string]string{"Email": "email is required", "Name": "name is too long"}, errs.MapsToString())
	assert.Equal(t, "email is required,name is too long", errs.ErrorsToString())
	assert.True(t, errs.HasTag("max"))
	assert.False(t, errs.HasTag("zipcode"))
}
