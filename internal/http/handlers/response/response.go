package response

import (
	"encoding/json"
	"net/http"
)

const (
	kindMissingParam = "MissingParam"
	kindInvalidParam = "InvalidParam"
	kindServerError  = "ServerError"
)

type errorResponse struct {
	Error string `json:"error"`
}

type paramErrorResponse struct {
	Kind  string `json:"kind"`
	Field string `json:"field"`
}

type serverErrorResponse struct {
	Kind string `json:"kind"`
}

// RenderMissingParam reports a required request parameter that is absent
// or empty.
func RenderMissingParam(rw http.ResponseWriter, field string) {
	Render(rw, paramErrorResponse{Kind: kindMissingParam, Field: field}, http.StatusBadRequest)
}

// RenderInvalidParam reports a request parameter that is present but does
// not pass validation.
func RenderInvalidParam(rw http.ResponseWriter, field string) {
	Render(rw, paramErrorResponse{Kind: kindInvalidParam, Field: field}, http.StatusBadRequest)
}

// RenderServerError reports an unexpected failure without leaking any
// detail about its cause.
func RenderServerError(rw http.ResponseWriter) {
	Render(rw, serverErrorResponse{Kind: kindServerError}, http.StatusInternalServerError)
}

func RenderRateLimitExceeded(rw http.ResponseWriter) {
	RenderError(rw, "rate limit exceeded", http.StatusTooManyRequests)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
