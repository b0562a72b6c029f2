package validator

import (
	"fmt"
	"reflect"
	"strings"
)

type checkerKind int

const (
	kindNotNull checkerKind = iota
	kindSize
	kindValidValues
)

// Checker is a reusable predicate with a default error message, independent
// of any rule set. The built-in kinds other than NotNull treat an absent
// value as valid, so a field can be optional yet constrained in shape when
// present; compose a NotNull rule alongside to make it required.
type Checker[V any] struct {
	kind    checkerKind
	field   string
	min     *int
	max     *int
	allowed []V
}

// NotNull requires the value to be present. Absent means nil for pointer,
// interface, map, slice, func and channel values; values of other kinds are
// always present.
func NotNull[V any](field string) Checker[V] {
	return Checker[V]{kind: kindNotNull, field: field}
}

// Size requires the value's string rendering to be exactly n characters.
func Size[V any](field string, n int) Checker[V] {
	return Checker[V]{kind: kindSize, field: field, min: &n, max: &n}
}

// MinSize requires the value's string rendering to be at least min characters.
func MinSize[V any](field string, min int) Checker[V] {
	return Checker[V]{kind: kindSize, field: field, min: &min}
}

// MaxSize requires the value's string rendering to be at most max characters.
func MaxSize[V any](field string, max int) Checker[V] {
	return Checker[V]{kind: kindSize, field: field, max: &max}
}

// SizeBetween requires the value's string rendering to be between min and
// max characters, inclusive.
func SizeBetween[V any](field string, min, max int) Checker[V] {
	return Checker[V]{kind: kindSize, field: field, min: &min, max: &max}
}

// ValidValues requires a present value to equal one of the allowed values.
func ValidValues[V comparable](field string, allowed ...V) Checker[V] {
	return Checker[V]{kind: kindValidValues, field: field, allowed: allowed}
}

// Check reports whether v satisfies the checker. It is a pure function of v.
func (c Checker[V]) Check(v V) bool {
	switch c.kind {
	case kindNotNull:
		return !isAbsent(v)
	case kindSize:
		if c.min == nil && c.max == nil {
			panic(fmt.Sprintf("validator: size checker for field %q has no bounds", c.field))
		}
		if isAbsent(v) {
			return true
		}
		n := len(render(v))
		if c.min != nil && n < *c.min {
			return false
		}
		if c.max != nil && n > *c.max {
			return false
		}
		return true
	case kindValidValues:
		if isAbsent(v) {
			return true
		}
		dv := deref(v)
		for _, a := range c.allowed {
			if reflect.DeepEqual(dv, deref(a)) {
				return true
			}
		}
		return false
	default:
		panic(fmt.Sprintf("validator: unknown checker kind for field %q", c.field))
	}
}

// ErrorMessage returns the checker's default message for its field name and
// configuration.
func (c Checker[V]) ErrorMessage() string {
	switch c.kind {
	case kindNotNull:
		return c.field + " cannot be null"
	case kindSize:
		switch {
		case c.min != nil && c.max != nil && *c.min == *c.max:
			return fmt.Sprintf("%s size should be %d", c.field, *c.min)
		case c.min != nil && c.max != nil:
			return fmt.Sprintf("%s size should between %d and %d", c.field, *c.min, *c.max)
		case c.min != nil:
			return fmt.Sprintf("%s size should >= %d", c.field, *c.min)
		case c.max != nil:
			return fmt.Sprintf("%s size should <= %d", c.field, *c.max)
		default:
			panic(fmt.Sprintf("validator: size checker for field %q has no bounds", c.field))
		}
	case kindValidValues:
		return c.field + " valid values are " + renderList(c.allowed)
	default:
		panic(fmt.Sprintf("validator: unknown checker kind for field %q", c.field))
	}
}

// failureMessage renders the message for a rejected value. Size checkers
// append the rendering they measured in brackets; NotNull and ValidValues
// use the default message alone.
func (c Checker[V]) failureMessage(v V) string {
	if c.kind == kindSize {
		return c.ErrorMessage() + "[" + render(v) + "]"
	}
	return c.ErrorMessage()
}

// NonNullMaxLen reports whether v is present and its string rendering is at
// most maxLen characters. Useful with NewRule when a single rule should
// stand in for NotNull plus MaxSize.
func NonNullMaxLen[V any](v V, maxLen int) bool {
	return !isAbsent(v) && len(render(v)) <= maxLen
}

// isAbsent reports whether v is nil of a nil-able kind.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// deref follows pointers to the underlying value so equality and rendering
// work on pointees rather than addresses.
func deref(v any) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

// render stringifies a value for messages and size measurement, following
// pointers so messages show the pointee rather than an address.
func render(v any) string {
	dv := deref(v)
	if dv == nil {
		return "<nil>"
	}
	return fmt.Sprint(dv)
}

// renderList formats an allowed-values set as "[CNY, GBP]".
func renderList[V any](values []V) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = render(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
