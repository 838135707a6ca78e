package dto

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// vpaRe is deliberately loose: one '@', no whitespace on either side.
// Handles differ per bank and the payer's app does the real check.
var vpaRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("vpa", validateVPA)
	}
}

// validateVPA accepts a blank value so the service can answer with the
// dedicated "payee required" error instead of a generic validation one.
func validateVPA(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return true
	}
	return vpaRe.MatchString(raw)
}

// fieldMessages are shown to visitors instead of raw validator output.
var fieldMessages = map[string]string{
	"PayeeAddress": "Enter a valid UPI ID (name@bank)",
	"PayeeName":    "Payee name must be at most 100 characters",
	"Amount":       "Amount must be at most 32 characters",
	"Note":         "Note must be at most 100 characters",
	"Size":         "QR size must be between 0 and 4096",
}

// BindErrorMessage turns a binding error into a message fit for the page
// and the API. The first failing field wins.
func BindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if msg, ok := fieldMessages[fe.Field()]; ok {
				return msg
			}
		}
	}
	return "Invalid request"
}

// SanitizeStruct trims whitespace and removes control characters from every
// exported string field (including *string) of a struct pointer. Values end
// up percent-encoded in a URI, so no HTML escaping is applied here.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		case reflect.Struct:
			sanitizeFields(f)
		}
	}
}

func sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			if unicode.IsSpace(r) {
				return ' '
			}
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
