package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Response statuses.
const (
	StatusSuccess         = "success"
	StatusCreated         = "created"
	StatusFailure         = "failure"
	StatusError           = "error"
	StatusValidationError = "validation_error"
	StatusNotFound        = "not_found"
	StatusUnauthorized    = "unauthorized"
	StatusConflict        = "conflict"
)

const (
	MessageInternalServerError = "An unexpected error occurred on the server."
	MessageInvalidBody         = "Request body must be a valid JSON object"
)

const documentationBase = "https://developer.mozilla.org/en-US/docs/Web/HTTP/Status/"

// APIResponse is the envelope of successful responses.
// swagger:model APIResponse
type APIResponse struct {
	Status            string `json:"status"`
	Message           string `json:"message"`
	Data              any    `json:"data"`
	DocumentationLink string `json:"documentation_link"`
}

// ErrorDetails points at the offending input of a failed request.
// swagger:model ErrorDetails
type ErrorDetails struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// APIErrorResponse is the envelope of failed responses.
// swagger:model APIErrorResponse
type APIErrorResponse struct {
	Status            string        `json:"status"`
	Message           string        `json:"message"`
	Details           *ErrorDetails `json:"details,omitempty"`
	DocumentationLink string        `json:"documentation_link"`
}

// DocumentationLink returns the reference page for an HTTP status code.
func DocumentationLink(code int) string {
	return documentationBase + strconv.Itoa(code)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// WriteSuccess writes data wrapped in the response envelope.
func WriteSuccess(w http.ResponseWriter, code int, status, message string, data any) {
	writeJSON(w, code, APIResponse{
		Status:            status,
		Message:           message,
		Data:              data,
		DocumentationLink: DocumentationLink(code),
	})
}

// WriteError writes an error envelope.
func WriteError(w http.ResponseWriter, code int, status, message string) {
	writeJSON(w, code, APIErrorResponse{
		Status:            status,
		Message:           message,
		DocumentationLink: DocumentationLink(code),
	})
}

// writeValidationError reports the first failing field of err as 422.
func writeValidationError(w http.ResponseWriter, err error) {
	resp := APIErrorResponse{
		Status:            StatusValidationError,
		Message:           err.Error(),
		DocumentationLink: DocumentationLink(http.StatusUnprocessableEntity),
	}

	var errs validation.Errors
	if errors.As(err, &errs) && len(errs) > 0 {
		fields := make([]string, 0, len(errs))
		for field := range errs {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		first := fields[0]
		resp.Message = first + ": " + errs[first].Error()
		resp.Details = &ErrorDetails{Field: first, Reason: errs[first].Error()}
	}

	writeJSON(w, http.StatusUnprocessableEntity, resp)
}

func writeInternalError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, StatusError, MessageInternalServerError)
}
