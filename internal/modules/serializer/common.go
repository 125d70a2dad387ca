package serializer

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the error envelope. Successful calls return the bare resource.
type Response struct {
	Code  int         `json:"code"`
	Data  interface{} `json:"data,omitempty"`
	Msg   string      `json:"msg"`
	Error string      `json:"error,omitempty"`
}

// TrackedErrorResponse carries the request id so a failure can be found in
// the logs.
type TrackedErrorResponse struct {
	Response
	RequestID string `json:"request_id,omitempty"`
}

// Err
func Err(errCode int, msg string, err error) Response {
	res := Response{
		Code: errCode,
		Msg:  msg,
	}
	// development mode, show error detail
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = fmt.Sprintf("%+v", err)
	}
	return res
}

// DBErr
func DBErr(msg string, err error) Response {
	if msg == "" {
		msg = "database error"
	}
	return Err(http.StatusInternalServerError, msg, err)
}

// ParamErr
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "parameter error"
	}
	return Err(http.StatusBadRequest, msg, err)
}

// ValidationErr is a well-formed request whose content is unacceptable.
func ValidationErr(msg string, err error) Response {
	if msg == "" {
		msg = "validation error"
	}
	return Err(http.StatusUnprocessableEntity, msg, err)
}

// NotFoundErr
func NotFoundErr(msg string, err error) Response {
	if msg == "" {
		msg = "not found"
	}
	return Err(http.StatusNotFound, msg, err)
}

// UpstreamErr reports a failed call to an external provider. detail is the
// provider's own message and is shown in every mode.
func UpstreamErr(code int, msg, detail string) Response {
	if msg == "" {
		msg = "upstream error"
	}
	return Response{Code: code, Msg: msg, Error: detail}
}

// InternalErr
func InternalErr(err error) Response {
	return Err(http.StatusInternalServerError, "internal server error", err)
}
