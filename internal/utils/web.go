package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/diskusi-dev/diskusi/internal/logger"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeValidate decodes a JSON request body into a typed payload and runs
// struct validation. A field of the wrong JSON type and a missing required
// field are reported as distinct 400 errors.
func DecodeValidate(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return internal_errors.BadRequest(fmt.Sprintf("field %q must be of type %s", typeErr.Field, typeErr.Type))
		}
		return internal_errors.BadRequest("body is invalid json")
	}
	if err := validate.Struct(body); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			return internal_errors.BadRequest(fmt.Sprintf("required field %q is missing", validationErrs[0].Field()))
		}
		return internal_errors.BadRequest("required fields missing")
	}
	return nil
}

type envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// WriteSuccess writes the success envelope with the given status code.
// A nil data yields {"status":"success"}.
func WriteSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(envelope{Status: "success", Data: data}); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// WriteErrorAndStatusCode writes the failure envelope. Errors without an
// explicit status code are treated as internal and their detail is not
// leaked to the caller.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "internal server error"

	var statusErr *internal_errors.ErrorWithStatusCode
	if errors.As(err, &statusErr) {
		statusCode = statusErr.StatusCode
		message = statusErr.Message
	} else {
		logger.Log.Error("unexpected error", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if encodeErr := json.NewEncoder(w).Encode(envelope{Status: "fail", Message: message}); encodeErr != nil {
		logger.Log.Error("failed to encode error response", "error", encodeErr)
	}
}
