package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/jellydator/validation"
)

// MaxBodyBytes caps how much of a request body is buffered.
const MaxBodyBytes = 1 << 20

var (
	ErrInvalidUTF8  = errors.New("request body is not valid UTF-8")
	ErrTrailingData = errors.New("request body has data after the JSON value")
)

type Decoder struct{}

// DecodeJSONPayload buffers the whole body, checks it is UTF-8 and decodes
// it into object. Unknown fields are ignored, anything after the value is not. Objects implementing validation.Validatable are validated
// afterwards.
func (d Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	defer func() {
		errClose := r.Body.Close()
		if err == nil && errClose != nil {
			err = fmt.Errorf("closing request body: %w", errClose)
		}
	}()

	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, MaxBodyBytes))
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}

	if !utf8.Valid(body) {
		return ErrInvalidUTF8
	}

	decoder := json.NewDecoder(bytes.NewReader(body))

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	// the body must hold exactly one JSON value
	var rest json.RawMessage
	if errRest := decoder.Decode(&rest); !errors.Is(errRest, io.EOF) {
		return fmt.Errorf("decoding json payload: %w", ErrTrailingData)
	}

	return d.validatePayload(object)
}

func (d Decoder) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
