package classify

import (
	"fmt"
	"net/http"

	"github.com/BaSui01/fusionbrain-go/types"
)

// statusKinds maps, per operation, the HTTP statuses that have a dedicated
// kind. Anything not listed is UNEXPECTED.
var statusKinds = map[types.Operation]map[int]types.ErrorKind{
	types.OpCheckAvailability: {
		http.StatusUnauthorized: types.KindUnauthorized,
	},
	types.OpGenerate: {
		http.StatusBadRequest:           types.KindLongPromptOrBadRequest,
		http.StatusUnauthorized:         types.KindUnauthorized,
		http.StatusUnsupportedMediaType: types.KindUnsupportedMedia,
	},
	types.OpCheckStatus: {
		http.StatusUnauthorized: types.KindUnauthorized,
		http.StatusNotFound:     types.KindExpired,
	},
	types.OpListModels: {
		http.StatusUnauthorized: types.KindUnauthorized,
	},
	// listStyles is unauthenticated: a 401 there is not a credentials problem.
	types.OpListStyles: {},
}

// Fixed messages for kinds whose cause is fully determined by the kind.
var kindMessages = map[types.ErrorKind]string{
	types.KindUnauthorized:           "API key or secret key was rejected",
	types.KindExpired:                "task not found: results can be fetched only once after completion",
	types.KindLongPromptOrBadRequest: "prompt is too long or the request is malformed",
	types.KindUnsupportedMedia:       "request body media type is not supported",
	types.KindModelNotReady:          "model is not accepting generation requests",
}

// IsSuccess reports whether an HTTP status means the exchange succeeded.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}

// KindFor returns the error kind an HTTP failure status maps to for op.
func KindFor(op types.Operation, status int) types.ErrorKind {
	if kind, ok := statusKinds[op][status]; ok {
		return kind
	}
	return types.KindUnexpected
}

// HTTPStatus classifies a non-2xx response.
func HTTPStatus(op types.Operation, status int, body []byte) *types.Error {
	kind := KindFor(op, status)
	if kind == types.KindUnexpected {
		cause := fmt.Errorf("unexpected HTTP status %d %s", status, http.StatusText(status))
		return Unexpected(op, body, cause).WithHTTPStatus(status)
	}
	return types.NewError(op, kind, kindMessages[kind]).WithHTTPStatus(status)
}

// Transport classifies a failure to complete the exchange at all.
func Transport(op types.Operation, err error) *types.Error {
	return Unexpected(op, nil, err)
}

// Decode classifies a 2xx body that is not valid JSON.
func Decode(op types.Operation, body []byte, err error) *types.Error {
	return Unexpected(op, body, err)
}

// ModelNotReady classifies a negative readiness answer in strict mode.
func ModelNotReady(op types.Operation, body []byte) *types.Error {
	return types.NewError(op, types.KindModelNotReady, kindMessages[types.KindModelNotReady]).WithBody(body)
}

// Unexpected builds an UNEXPECTED error carrying the body and the cause's
// message.
func Unexpected(op types.Operation, body []byte, cause error) *types.Error {
	msg := "unexpected failure"
	if cause != nil {
		msg = cause.Error()
	}
	e := types.NewError(op, types.KindUnexpected, msg).WithCause(cause)
	if body != nil {
		e = e.WithBody(body)
	}
	return e
}
