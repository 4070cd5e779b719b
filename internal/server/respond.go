package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	moodarterrors "github.com/matzehuels/moodart/pkg/errors"
)

const (
	// maxBodyBytes caps JSON request bodies.
	maxBodyBytes = 64 << 10

	// retryAfterSeconds is advertised when rendering is unavailable.
	retryAfterSeconds = 2

	// statusClientClosed is logged when the client went away mid-request.
	statusClientClosed = 499
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code  moodarterrors.Code `json:"code"`
	Error string             `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	switch moodarterrors.GetCode(err) {
	case moodarterrors.ErrCodeInvalidInput, moodarterrors.ErrCodeUnknownMood, moodarterrors.ErrCodeUnknownStyle:
		return http.StatusBadRequest
	case moodarterrors.ErrCodeNotFound:
		return http.StatusNotFound
	case moodarterrors.ErrCodeRenderingUnavailable:
		return http.StatusServiceUnavailable
	}
	switch {
	case errors.Is(err, context.Canceled):
		return statusClientClosed
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// writeError writes err as {code, error}. Internal failures hide their
// details from the client.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	body := errorBody{Code: moodarterrors.GetCode(err), Error: moodarterrors.UserMessage(err)}

	switch status {
	case http.StatusServiceUnavailable:
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
	case http.StatusInternalServerError:
		body = errorBody{Code: moodarterrors.ErrCodeInternal, Error: "internal error"}
	case statusClientClosed, http.StatusGatewayTimeout:
		body = errorBody{Code: moodarterrors.ErrCodeInternal, Error: err.Error()}
	}
	writeJSON(w, status, body)
}

// decodeJSON reads a JSON body into v. Unknown fields and trailing data are
// rejected as INVALID_INPUT.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return moodarterrors.New(moodarterrors.ErrCodeInvalidInput, "request body is empty")
		}
		return moodarterrors.Wrap(moodarterrors.ErrCodeInvalidInput, err, "malformed JSON")
	}
	if dec.More() {
		return moodarterrors.New(moodarterrors.ErrCodeInvalidInput, "request body has trailing data")
	}
	return nil
}

// attachment sets the headers for a file download.
func attachment(w http.ResponseWriter, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}
