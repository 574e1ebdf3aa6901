package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-ordering/models"
)

// decimal(10,2): eight integer digits, two fractional.
var moneyLimit = decimal.New(1, 8)

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
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if m, ok := field.Interface().(models.Money); ok {
			switch {
			case m.InRange():
				return m.Decimal.String()
			case m.Exponent() > 0:
				return "1e9"
			default:
				return "1e-19"
			}
		}
		return nil
	}, models.Money{})
	if err := v.RegisterValidation("money", validateMoney); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("maxbytes", validateMaxBytes); err != nil {
		panic(err)
	}
	return v
}

// validateMoney accepts amounts that are exactly representable with two
// fractional digits, are not negative, and fit the column. Anything else is
// rejected rather than rounded.
func validateMoney(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return checkMoney(d) == ""
}

// validateMaxBytes bounds the UTF-8 length of a string. max counts runes,
// bcrypt counts bytes.
func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func checkMoney(d decimal.Decimal) string {
	if !d.IsZero() {
		switch exp := d.Exponent(); {
		case exp > models.MaxMoneyExponent:
			return "must be less than 100000000"
		case exp < models.MinMoneyExponent:
			return "must have at most 2 decimal places"
		}
	}
	switch {
	case !d.Equal(d.Truncate(2)):
		return "must have at most 2 decimal places"
	case d.IsNegative():
		return "must not be negative"
	case d.GreaterThanOrEqual(moneyLimit):
		return "must be less than 100000000"
	}
	return ""
}

func moneyValue(v interface{}) (decimal.Decimal, bool) {
	switch val := v.(type) {
	case models.Money:
		return val.Decimal, true
	case *models.Money:
		if val != nil {
			return val.Decimal, true
		}
	case string:
		if d, err := decimal.NewFromString(val); err == nil {
			return d, true
		}
	}
	return decimal.Decimal{}, false
}

// Validate runs the struct rules of an insert shape built in Go code rather
// than decoded from JSON.
func Validate(in interface{}) error {
	fields := structErrors(in)
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func structErrors(in interface{}) []FieldError {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Reason: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldPath(fe), Reason: reason(fe)})
	}
	return out
}

// fieldPath drops the struct name validator puts in front of the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "money":
		if d, ok := moneyValue(fe.Value()); ok {
			if msg := checkMoney(d); msg != "" {
				return msg
			}
		}
		return "must be a decimal amount"
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		return fmt.Sprintf("must contain at least %s element(s)", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "maxbytes":
		return fmt.Sprintf("must be at most %s bytes", fe.Param())
	case "email":
		return "must be a valid email address"
	}
	return fmt.Sprintf("failed %q rule", fe.Tag())
}
