// internal/app/system/inputval/rules.go
package inputval

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dalemusser/balesite/internal/domain/models"
)

var (
	emailRE = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	zipRE   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// IsValidEmail reports whether s has the shape local@domain.tld.
func IsValidEmail(s string) bool {
	return emailRE.MatchString(s)
}

// IsValidZIP accepts 5-digit ZIP and ZIP+4.
func IsValidZIP(s string) bool {
	return zipRE.MatchString(s)
}

// IsValidHTTPURL accepts absolute http and https URLs with a host.
func IsValidHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsNonNegativeNumber accepts decimal numbers >= 0.
func IsNonNegativeNumber(s string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && f >= 0
}

func registerRules(v *validator.Validate) {
	str := func(check func(string) bool) validator.Func {
		return func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		}
	}
	// RegisterValidation only fails on an empty tag or a bad func.
	_ = v.RegisterValidation("siteemail", str(IsValidEmail))
	_ = v.RegisterValidation("zip", str(IsValidZIP))
	_ = v.RegisterValidation("httpurl", str(IsValidHTTPURL))
	_ = v.RegisterValidation("nonnegnum", str(IsNonNegativeNumber))
	_ = v.RegisterValidation("boolflag", str(func(s string) bool { return s == "true" || s == "false" }))
	_ = v.RegisterValidation("volumebucket", str(func(s string) bool {
		_, err := models.ParseVolumeBucket(s)
		return err == nil
	}))
	_ = v.RegisterValidation("pickupfreq", str(func(s string) bool {
		_, err := models.ParsePickupFrequency(s)
		return err == nil
	}))
}
