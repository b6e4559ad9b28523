package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-pokedex/internal/models"
)

// Global validator instance for reuse
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(optionalValue[string], models.Optional[string]{})
	v.RegisterCustomTypeFunc(optionalValue[int], models.Optional[int]{})
	v.RegisterCustomTypeFunc(optionalValue[[]string], models.Optional[[]string]{})
	v.RegisterCustomTypeFunc(optionalValue[[]RegionEntry], models.Optional[[]RegionEntry]{})
	return v
}

// optionalValue exposes a set Optional as a pointer to its value and an
// unset one as nil, so "omitnil" skips fields left out of a patch.
func optionalValue[T any](field reflect.Value) any {
	o, ok := field.Interface().(models.Optional[T])
	if !ok || !o.Set {
		return (*T)(nil)
	}
	return &o.Value
}

// decodeRequest decodes the JSON body into v and validates it.
// The returned error message is safe to send back to the client.
func decodeRequest(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.New("invalid request body")
	}
	return validateRequest(v)
}

func validateRequest(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fe.Field())
	case "max":
		return fmt.Errorf("%s must not exceed %s", fe.Field(), fe.Param())
	default:
		return fmt.Errorf("%s is invalid", fe.Field())
	}
}
