package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	n, err := WriteJSON(recorder, map[string]string{"hello": "world"}, http.StatusCreated)

	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"hello":"world"}`, recorder.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	recorder := httptest.NewRecorder()

	n, err := WriteJSON(recorder, func() {}, http.StatusOK)

	assert.Zero(t, n)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
