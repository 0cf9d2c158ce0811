package validators

import (
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

var (
	dinRegex   = regexp.MustCompile(`^\d{8}$`)
	panRegex   = regexp.MustCompile(`^[A-Z]{5}\d{4}[A-Z]$`)
	cinRegex   = regexp.MustCompile(`^[A-Z]\d{5}[A-Z]{2}\d{4}[A-Z]{3}\d{6}$`)
	llpinRegex = regexp.MustCompile(`^[A-Z]{3}-\d{4}$`)
	hasSpaces  = regexp.MustCompile(`\s+`)
)

// DIN checks the Director Identification Number format: exactly 8 digits.
func DIN(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return dinRegex.MatchString(val)
}

// PAN checks the Permanent Account Number format, e.g. ABCDE1234F.
func PAN(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return panRegex.MatchString(val)
}

// CIN checks the 21-character Corporate Identification Number format,
// e.g. U12345MH2020PTC123456.
func CIN(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return cinRegex.MatchString(val)
}

// LLPIN checks the LLP Identification Number format, e.g. AAB-1234.
func LLPIN(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return llpinRegex.MatchString(val)
}

// NoWhiteSpaces returns false if the string contains any whitespace (rejecting the user input).
func NoWhiteSpaces(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}

	str := field.String()
	return !hasSpaces.MatchString(str)
}

func NoDupes(fl validator.FieldLevel) bool {
	slice := fl.Field()
	if slice.Kind() != reflect.Slice {
		log.Warnf("validator 'nodupes' applied to non-slice type: %s\n", slice.Kind().String())
		return false
	}

	length := slice.Len()
	seen := make(map[any]bool, length)
	for i := 0; i < length; i++ {
		val := slice.Index(i).Interface()
		if _, exists := seen[val]; exists {
			return false
		}
		seen[val] = true
	}
	return true
}
