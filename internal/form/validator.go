package form

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"exploraneiva/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator runs the form schemas. Field names in errors are the JSON names
// (nested as "cliente.id"); only the first failing rule per field is kept.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

// NewValidator builds the schema validator. now drives the date rules;
// nil means time.Now.
func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	fv := &Validator{v: validator.New(), now: now}

	fv.v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})

	// decimal.Decimal is validated as a number (min=0, max=1000000).
	fv.v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	rules := map[string]validator.Func{
		"doctype":         oneOf(model.DocumentTypes),
		"sitetype":        oneOf(model.SiteTypes),
		"reservationtype": oneOf(model.ReservationTypes),
		"paymentmethod":   oneOf(model.PaymentMethods),
		"paymentstatus":   oneOf(model.PaymentStatuses),
		"digits":          digitsOnly,
		"hasupper":        containsAny("ABCDEFGHIJKLMNOPQRSTUVWXYZ"),
		"hasdigit":        containsAny("0123456789"),
		"hasspecial":      containsAny("@$!%*?&"),
		"moment":          isMoment,
		"notfuture":       fv.notFuture,
		"notpast":         fv.notPast,
	}
	for tag, fn := range rules {
		if err := fv.v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return fv
}

// Now is the validator's clock, shared with form defaults.
func (fv *Validator) Now() time.Time { return fv.now() }

// Validate checks values against their struct tags. It returns nil, a
// *ValidationError carrying one message per failing field, or the
// validator's own error for non-struct input.
func (fv *Validator) Validate(values any, messages Messages) error {
	err := fv.v.Struct(values)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		path := fe.Namespace()
		if _, rest, ok := strings.Cut(path, "."); ok {
			path = rest
		}
		if _, seen := fields[path]; seen {
			continue
		}
		fields[path] = messages.For(path, fe.Tag(), fe.Param())
	}
	return &ValidationError{Fields: fields}
}

func oneOf(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		for _, a := range allowed {
			if s == a {
				return true
			}
		}
		return false
	}
}

func digitsOnly(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func containsAny(chars string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return strings.ContainsAny(fl.Field().String(), chars)
	}
}

// isMoment accepts any date or timestamp shape parseMoment understands.
func isMoment(fl validator.FieldLevel) bool {
	_, ok := parseMoment(fl.Field().String(), time.Local)
	return ok
}

// notFuture accepts a date or timestamp that is not after the current instant.
func (fv *Validator) notFuture(fl validator.FieldLevel) bool {
	now := fv.now()
	t, ok := parseMoment(fl.Field().String(), now.Location())
	return ok && !t.After(now)
}

// notPast accepts a date or timestamp at or after the start of today.
func (fv *Validator) notPast(fl validator.FieldLevel) bool {
	now := fv.now()
	t, ok := parseMoment(fl.Field().String(), now.Location())
	if !ok {
		return false
	}
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !t.Before(startOfDay)
}

var momentLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	model.DateLayout,
}

// parseMoment reads the timestamp shapes the forms accept. Values without a
// zone are taken in loc.
func parseMoment(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range momentLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
