package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Error is a structured validation failure: one reason per offending field.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// entities are validated against their bson names so that errors point at
// the stored field, regardless of how the request spelled it.
var entityValidate = newValidator("bson")

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers alias tags for the domain enums.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(tagName("json"))
		registerAliases(v)
	}
}

func newValidator(tag string) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(tagName(tag))
	registerAliases(v)
	return v
}

func tagName(tag string) func(reflect.StructField) string {
	return func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	}
}

func registerAliases(v *validator.Validate) {
	v.RegisterAlias("role", "oneof=youth company admin")
	v.RegisterAlias("opptype", "oneof=job internship training scholarship")
	v.RegisterAlias("appstatus", "oneof=pending accepted rejected")
}

// Struct validates an entity and returns *Error on failure.
func Struct(s any) error {
	err := entityValidate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return &Error{Fields: ToDetails(err)}
	}
	return err
}

// Var validates a single value against tag and reports the failure under
// field.
func Var(field string, value any, tag string) error {
	err := entityValidate.Var(value, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &Error{Fields: map[string]string{field: formatFieldError(verrs[0])}}
	}
	return err
}

// ToDetails converts validation/binding errors into a map[field]message suitable for API error details.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	var ve *Error
	if errors.As(err, &ve) {
		return ve.Fields
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) {
		return map[string]string{"payload": "invalid json"}
	}
	if errors.As(err, &ute) {
		field := ute.Field
		if field == "" {
			field = "payload"
		}
		return map[string]string{field: "must be a " + ute.Type.String()}
	}
	var te *time.ParseError
	if errors.As(err, &te) {
		return map[string]string{"payload": "invalid date " + fmt.Sprintf("%q", te.Value)}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "oneof", "role", "opptype", "appstatus":
		return "must be one of [" + strings.Join(splitParams(param), ", ") + "]"
	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", tag, param)
		}
		return fmt.Sprintf("validation failed for '%s'", tag)
	}
}

func splitParams(p string) []string {
	if p == "" {
		return nil
	}
	return strings.Fields(p)
}
