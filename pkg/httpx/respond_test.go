package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra2102/ecommerce-store/pkg/enumeration"
)

func TestWriteInvalidValue(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteInvalidValue(rec, fmt.Errorf("decode: %w", enumeration.Invalid("Size", "XS", "S", "M")))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "invalid enumeration value", body.Error)
	assert.Equal(t, "Size", body.Type)
	require.NotNil(t, body.Value)
	assert.Equal(t, "XS", *body.Value)
	assert.Equal(t, []string{"S", "M"}, body.Allowed)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusNotFound, "order not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"order not found"}`, rec.Body.String())
}
