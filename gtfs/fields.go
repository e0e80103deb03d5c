package gtfs

import (
	"math"
	"regexp"
	_ "time/tzdata" // agency_timezone checks must not depend on the host zoneinfo

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

var colorPattern = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

var formats = newFormatValidator()

func newFormatValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("gtfs_color", func(fl validator.FieldLevel) bool {
		return colorPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

func isValidURL(s string) bool      { return formats.Var(s, "http_url") == nil }
func isValidEmail(s string) bool    { return formats.Var(s, "email") == nil }
func isValidTimezone(s string) bool { return formats.Var(s, "timezone") == nil }
func isValidLang(s string) bool     { return formats.Var(s, "bcp47_language_tag") == nil }
func isValidColor(s string) bool    { return formats.Var(s, "gtfs_color") == nil }

// collector accumulates the notices of one Build call.
type collector struct {
	filename string
	entityID string
	notices  *[]notice.Notice
}

func (c collector) add(n notice.Notice) { *c.notices = append(*c.notices, n) }

func (c collector) requireString(field string, v Optional[string]) {
	if !v.IsPresent() {
		c.add(notice.NewMissingRequiredValue(c.filename, field, c.entityID))
	}
}

func (c collector) url(field string, v Optional[string]) {
	if s, ok := v.Get(); ok && !isValidURL(s) {
		c.add(notice.NewInvalidURL(c.filename, field, c.entityID, s))
	}
}

func (c collector) email(field string, v Optional[string]) {
	if s, ok := v.Get(); ok && !isValidEmail(s) {
		c.add(notice.NewInvalidEmail(c.filename, field, c.entityID, s))
	}
}

func (c collector) color(field string, v Optional[string]) {
	if s, ok := v.Get(); ok && !isValidColor(s) {
		c.add(notice.NewInvalidColor(c.filename, field, c.entityID, s))
	}
}

func (c collector) intRange(field string, v Optional[int], min, max int) {
	if i, ok := v.Get(); ok && (i < min || i > max) {
		c.add(notice.NewIntegerFieldValueOutOfRange(c.filename, field, c.entityID, min, max, i))
	}
}

// floatRange treats NaN as out of range.
func (c collector) floatRange(field string, v Optional[float64], min, max float64) {
	if f, ok := v.Get(); ok && (math.IsNaN(f) || f < min || f > max) {
		c.add(notice.NewFloatFieldValueOutOfRange(c.filename, field, c.entityID, min, max, f))
	}
}

func (c collector) requireInt(field string, v Optional[int]) {
	if !v.IsPresent() {
		c.add(notice.NewMissingRequiredValue(c.filename, field, c.entityID))
	}
}

func (c collector) requireFloat(field string, v Optional[float64]) {
	if !v.IsPresent() {
		c.add(notice.NewMissingRequiredValue(c.filename, field, c.entityID))
	}
}
