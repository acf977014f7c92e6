// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/herbario/internal/platform/apperr"
	"github.com/taibuivan/herbario/internal/platform/ctxutil"
	"github.com/taibuivan/herbario/internal/platform/respond"
)

/*
TestError_HidesCauseByDefault verifies internal details stay server-side.
*/
func TestError_HidesCauseByDefault(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/estadisticas", nil)

	respond.Error(recorder, request, errors.New("relation \"paquete\" does not exist"))

	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Empty(t, body.Detail)
}

/*
TestError_DebugExposesCause verifies debug requests get the underlying detail.
*/
func TestError_DebugExposesCause(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/estadisticas", nil)
	request = request.WithContext(ctxutil.WithDebug(request.Context(), true))

	respond.Error(recorder, request, apperr.Internal(errors.New("timeout")))

	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "timeout", body.Detail)
	assert.Equal(t, "An unexpected error occurred", body.Error)
}

/*
TestError_ValidationDetails verifies field details are passed to the client.
*/
func TestError_ValidationDetails(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(recorder, request, apperr.ValidationError("bad", apperr.FieldError{Field: "tipo", Message: "required"}))

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Details, 1)
	assert.Equal(t, "tipo", body.Details[0].Field)
}

/*
TestErrorWithCause_AlwaysExposesCause verifies reporting routes return the 5xx
cause without debug mode.
*/
func TestErrorWithCause_AlwaysExposesCause(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/estadisticas/taxonomia", nil)

	respond.ErrorWithCause(recorder, request, errors.New("canceling statement due to statement timeout"))

	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.Equal(t, "canceling statement due to statement timeout", body.Detail)
}
