package classify

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaSui01/fusionbrain-go/types"
)

func TestHTTPStatus_Table(t *testing.T) {
	testCases := []struct {
		name     string
		op       types.Operation
		status   int
		expected types.ErrorKind
	}{
		{"availability 401", types.OpCheckAvailability, http.StatusUnauthorized, types.KindUnauthorized},
		{"availability 400", types.OpCheckAvailability, http.StatusBadRequest, types.KindUnexpected},
		{"availability 404", types.OpCheckAvailability, http.StatusNotFound, types.KindUnexpected},

		{"generate 400", types.OpGenerate, http.StatusBadRequest, types.KindLongPromptOrBadRequest},
		{"generate 401", types.OpGenerate, http.StatusUnauthorized, types.KindUnauthorized},
		{"generate 415", types.OpGenerate, http.StatusUnsupportedMediaType, types.KindUnsupportedMedia},
		{"generate 404", types.OpGenerate, http.StatusNotFound, types.KindUnexpected},
		{"generate 500", types.OpGenerate, http.StatusInternalServerError, types.KindUnexpected},

		{"status 401", types.OpCheckStatus, http.StatusUnauthorized, types.KindUnauthorized},
		{"status 404", types.OpCheckStatus, http.StatusNotFound, types.KindExpired},
		{"status 400", types.OpCheckStatus, http.StatusBadRequest, types.KindUnexpected},

		{"models 401", types.OpListModels, http.StatusUnauthorized, types.KindUnauthorized},
		{"models 503", types.OpListModels, http.StatusServiceUnavailable, types.KindUnexpected},

		{"styles 401", types.OpListStyles, http.StatusUnauthorized, types.KindUnexpected},
		{"styles 404", types.OpListStyles, http.StatusNotFound, types.KindUnexpected},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := HTTPStatus(tc.op, tc.status, []byte(`{"error":"x"}`))
			require.NotNil(t, err)
			assert.Equal(t, tc.expected, err.Kind)
			assert.Equal(t, tc.op, err.Operation)
			assert.Equal(t, tc.status, err.HTTPStatus)
		})
	}
}

func TestHTTPStatus_BodyOnlyForUnexpected(t *testing.T) {
	body := []byte(`{"message":"internal"}`)

	unexpected := HTTPStatus(types.OpCheckStatus, http.StatusInternalServerError, body)
	assert.Equal(t, string(body), unexpected.Body)
	require.Error(t, unexpected.Cause)
	assert.Contains(t, unexpected.Message, "500")

	expired := HTTPStatus(types.OpCheckStatus, http.StatusNotFound, body)
	assert.Empty(t, expired.Body)
	assert.Nil(t, expired.Cause)
	assert.NotEmpty(t, expired.Message)
}

func TestTransport(t *testing.T) {
	cause := &netError{msg: "dial tcp 127.0.0.1:1: connect: connection refused"}
	err := Transport(types.OpListModels, cause)

	assert.Equal(t, types.KindUnexpected, err.Kind)
	assert.Equal(t, types.OpListModels, err.Operation)
	assert.Equal(t, cause.msg, err.Message)
	assert.Equal(t, 0, err.HTTPStatus)
	assert.Empty(t, err.Body)

	var target *netError
	assert.True(t, errors.As(err, &target), "cause chain must reach the transport error")
}

func TestTransport_KeepsContextCancellation(t *testing.T) {
	err := Transport(types.OpCheckStatus, context.Canceled)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.True(t, errors.Is(err, types.ErrUnexpected))
}

func TestModelNotReady(t *testing.T) {
	body := []byte(`{"model_status":"DISABLED_BY_QUEUE"}`)
	err := ModelNotReady(types.OpCheckAvailability, body)

	assert.Equal(t, types.KindModelNotReady, err.Kind)
	assert.Equal(t, string(body), err.Body)
	assert.True(t, errors.Is(err, types.ErrModelNotReady))
}

func TestDecode(t *testing.T) {
	cause := errors.New("decode JSON: invalid character '<'")
	err := Decode(types.OpGenerate, []byte("<html>"), cause)
	assert.Equal(t, types.KindUnexpected, err.Kind)
	assert.Equal(t, "<html>", err.Body)
	assert.ErrorIs(t, err, cause)
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, IsSuccess(200))
	assert.True(t, IsSuccess(201))
	assert.False(t, IsSuccess(199))
	assert.False(t, IsSuccess(301))
	assert.False(t, IsSuccess(404))
}

type netError struct{ msg string }

func (e *netError) Error() string { return e.msg }
