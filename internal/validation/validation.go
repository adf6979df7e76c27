package validation

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/snnyvrz/library-api/internal/model"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    string       `json:"code,omitempty"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

type interfacer interface {
	Interface() any
}

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(fieldName)
	v.RegisterCustomTypeFunc(nullableValue,
		model.Nullable[int]{},
		model.Nullable[uint]{},
		model.Nullable[string]{},
	)
}

// fieldName reports fields by their json (or form) name.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return toJSONFieldName(f.Name)
}

func nullableValue(field reflect.Value) any {
	if n, ok := field.Interface().(interfacer); ok {
		return n.Interface()
	}
	return nil
}

func BindAndValidateJSON(c *gin.Context, dst any) bool {
	return bindAndValidate(c, dst, c.ShouldBindJSON, "invalid request body")
}

func BindAndValidateQuery(c *gin.Context, dst any) bool {
	return bindAndValidate(c, dst, c.ShouldBindQuery, "invalid query parameters")
}

func bindAndValidate(c *gin.Context, dst any, bind func(any) error, syntaxMessage string) bool {
	err := bind(dst)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.AbortWithStatusJSON(http.StatusBadRequest, formatValidationErrors(verrs))
		return false
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Code:    "INVALID_REQUEST",
		Message: syntaxMessage,
		Errors: []FieldError{
			{
				Field:   "",
				Rule:    "syntax",
				Message: err.Error(),
			},
		},
	})
	return false
}

func formatValidationErrors(verrs validator.ValidationErrors) ErrorResponse {
	fields := make([]FieldError, 0, len(verrs))

	for _, fe := range verrs {
		field := fieldPath(fe)
		fields = append(fields, FieldError{
			Field:   field,
			Rule:    fe.Tag(),
			Message: buildMessage(field, fe),
		})
	}

	return ErrorResponse{
		Code:    "VALIDATION_FAILED",
		Message: "validation failed",
		Errors:  fields,
	}
}

// fieldPath drops the top-level struct name from the namespace, so nested
// batch items come out as "data[1].title".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func toJSONFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func buildMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min", "max":
		bound := "at least "
		if fe.Tag() == "max" {
			bound = "at most "
		}
		if fe.Kind() == reflect.String {
			return field + " must be " + bound + fe.Param() + " characters long"
		}
		return field + " must be " + bound + fe.Param()
	case "email":
		return field + " must be a valid email address"
	}

	return field + " is invalid (" + fe.Tag() + ")"
}
