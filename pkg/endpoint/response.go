package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// Response writes cacheable JSON keyed by a strong ETag derived from the
// payload version.
type Response struct {
	etag         string
	cacheControl string
	writer       http.ResponseWriter
	request      *http.Request
}

func NewResponseWithCache(version string, maxAgeSeconds int, writer http.ResponseWriter, request *http.Request) *Response {
	maxAgeSeconds = max(maxAgeSeconds, 0)

	return &Response{
		writer:       writer,
		request:      request,
		etag:         `"` + strings.TrimSpace(version) + `"`,
		cacheControl: "public, max-age=" + strconv.Itoa(maxAgeSeconds),
	}
}

func NewResponseFrom(version string, writer http.ResponseWriter, request *http.Request) *Response {
	return NewResponseWithCache(version, 3600, writer, request)
}

func (r *Response) RespondOk(payload any) error {
	header := r.writer.Header()
	header.Set("Content-Type", "application/json")
	header.Set("X-Content-Type-Options", "nosniff")
	r.cacheHeaders()

	r.writer.WriteHeader(http.StatusOK)

	return json.NewEncoder(r.writer).Encode(payload)
}

// HasCache reports whether the client already holds this exact version.
func (r *Response) HasCache() bool {
	if r.etag == `""` {
		return false
	}

	return strings.TrimSpace(r.request.Header.Get("If-None-Match")) == r.etag
}

// RespondWithNotModified answers 304 with the same validators a 200 would
// carry so caches can refresh their entry.
func (r *Response) RespondWithNotModified() {
	r.cacheHeaders()
	r.writer.WriteHeader(http.StatusNotModified)
}

func (r *Response) cacheHeaders() {
	r.writer.Header().Set("Cache-Control", r.cacheControl)
	r.writer.Header().Set("ETag", r.etag)
}

func InternalError(msg string) *ApiError {
	message := fmt.Sprintf("Internal server error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     errors.New(message),
	}
}

func LogInternalError(msg string, err error) *ApiError {
	slog.Error(err.Error(), "error", err)

	return &ApiError{
		Message: fmt.Sprintf("Internal server error: %s", msg),
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func BadRequestError(msg string) *ApiError {
	message := fmt.Sprintf("Bad request error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     errors.New(message),
	}
}

func NotFound(msg string) *ApiError {
	message := fmt.Sprintf("Not found error: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusNotFound,
		Err:     errors.New(message),
	}
}

func TooManyRequests(msg string, retryAfter int) *ApiError {
	message := fmt.Sprintf("Too many requests: %s", msg)

	return &ApiError{
		Message: message,
		Status:  http.StatusTooManyRequests,
		Data:    map[string]any{"retry_after": retryAfter},
		Err:     errors.New(message),
	}
}
