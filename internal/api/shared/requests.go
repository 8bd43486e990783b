package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// MaxRequestBodyBytes caps the JSON body any endpoint will read.
const MaxRequestBodyBytes = 1 << 20

var (
	// ErrEmptyBody is returned by DecodeJSON when the request has no body.
	ErrEmptyBody = errors.New("request body is empty")

	// ErrBodyTooLarge is returned by DecodeJSON when the body exceeds
	// MaxRequestBodyBytes.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrTrailingData is returned by DecodeJSON when the body holds more
	// than one JSON value.
	ErrTrailingData = errors.New("request body must contain a single JSON object")
)

// validate is shared by all handlers; it caches struct metadata.
var validate = validator.New()

// DecodeJSON decodes the request body into v. At most MaxRequestBodyBytes
// are read and the body must hold exactly one JSON value.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxRequestBodyBytes))
	if err := dec.Decode(v); err != nil {
		return decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err != nil {
			if mapped := decodeError(err); errors.Is(mapped, ErrBodyTooLarge) {
				return mapped
			}
		}
		return ErrTrailingData
	}
	return nil
}

func decodeError(err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return ErrBodyTooLarge
	case errors.Is(err, io.EOF):
		return ErrEmptyBody
	default:
		return err
	}
}

// ValidateRequest checks v against its validate struct tags.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}
