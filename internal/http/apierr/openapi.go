package apierr

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
)

// NewRequestValidation builds a 400 response from an OpenAPI request
// validation error, listing every violated constraint.
func NewRequestValidation(err error) ErrorResponse {
	fields := requestFieldErrors(err)
	if len(fields) == 0 {
		fields = []FieldError{{Field: "body", Message: err.Error()}}
	}
	return NewValidation("request validation error", fields)
}

func requestFieldErrors(err error) []FieldError {
	var fields []FieldError

	// errors.As would unwrap a RequestError past its parameter name.
	var walk func(field string, err error)
	walk = func(field string, err error) {
		switch e := err.(type) {
		case openapi3.MultiError:
			for _, inner := range e {
				walk(field, inner)
			}
		case *openapi3filter.RequestError:
			f := "body"
			if e.Parameter != nil {
				f = e.Parameter.Name
			}
			if e.Err != nil {
				walk(f, e.Err)
				return
			}
			fields = append(fields, FieldError{Field: f, Message: e.Reason})
		case *openapi3.SchemaError:
			if p := e.JSONPointer(); len(p) > 0 {
				field = strings.Join(p, ".")
			}
			fields = append(fields, FieldError{Field: field, Message: e.Reason})
		default:
			fields = append(fields, FieldError{Field: field, Message: err.Error()})
		}
	}
	walk("body", err)

	return fields
}
