// internal/app/system/inputval/inputval.go
//
// Package inputval validates decoded form structs with
// github.com/go-playground/validator/v10 and turns failures into the
// user-facing messages the site shows under each field.
//
// Fields are keyed by their `form` tag and described by their `label` tag:
//
//	type contactInput struct {
//		Name  string `form:"name"  validate:"required,max=80" label:"Name"`
//		Email string `form:"email" validate:"required,siteemail" label:"Email"`
//	}
package inputval

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failed field.
type FieldError struct {
	Field   string // form field name
	Message string
}

// Result collects the failures of one Validate call, in struct field order.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any field failed.
func (r *Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first message, or "".
func (r *Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// All joins every message with "; ".
func (r *Result) All() string {
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

// For returns the message for one field, or "" when it passed.
func (r *Result) For(field string) string {
	for _, e := range r.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// ByField maps each failed field to its message.
func (r *Result) ByField() map[string]string {
	m := make(map[string]string, len(r.Errors))
	for _, e := range r.Errors {
		if _, ok := m[e.Field]; !ok {
			m[e.Field] = e.Message
		}
	}
	return m
}

// Add appends a failure found outside the struct tags, for rules that need
// data the validator does not have.
func (r *Result) Add(field, msg string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: msg})
}

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

func validate() *validator.Validate {
	engineOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		registerRules(v)
		engine = v
	})
	return engine
}

// Validate checks s, a struct or pointer to struct, against its validate
// tags. A value that is not a struct yields a single "invalid input" error.
func Validate(s any) *Result {
	res := &Result{}
	err := validate().Struct(s)
	if err == nil {
		return res
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		res.Add("", "Invalid input")
		return res
	}
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for _, fe := range ves {
		label := fe.Field()
		if sf, ok := t.FieldByName(fe.StructField()); ok {
			if l := sf.Tag.Get("label"); l != "" {
				label = l
			}
		}
		res.Add(fe.Field(), message(fe.Tag(), fe.Param(), label))
	}
	return res
}

func message(tag, param, label string) string {
	switch tag {
	case "required":
		return label + " is required"
	case "max":
		return label + " cannot exceed " + param + " characters"
	case "min":
		return label + " must be at least " + param + " characters"
	case "siteemail", "email":
		return "Please enter a valid email address"
	case "zip":
		return "Please enter a valid ZIP code"
	case "nonnegnum":
		return label + " must be a non-negative number"
	case "httpurl":
		return label + " must be an http or https URL"
	case "oneof", "volumebucket", "pickupfreq", "boolflag":
		return "Please select a valid " + strings.ToLower(label)
	}
	return label + " is invalid"
}
