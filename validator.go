package validator

import "strings"

// Accessor extracts the value a rule inspects from an instance of T.
type Accessor[T, V any] func(T) V

// Predicate reports whether a value is acceptable.
type Predicate[V any] func(V) bool

// Rule is a single validation unit bound to an object type T. It pairs a
// value accessor with a predicate and an error message, closed over the
// value's own type, so rules over different value types coexist in one
// RuleSet behind a uniform evaluate contract.
type Rule[T any] struct {
	eval func(T) (string, bool)
}

// NewRule builds a rule from an accessor, a predicate, and an error message.
// When the predicate rejects a present value, the message carries the
// offending value in brackets, e.g. "status size should <= 3[SBCx]".
func NewRule[T, V any](get Accessor[T, V], check Predicate[V], errMsg string) Rule[T] {
	return Rule[T]{eval: func(instance T) (string, bool) {
		v := get(instance)
		if check(v) {
			return "", true
		}
		if isAbsent(v) {
			return errMsg, false
		}
		return errMsg + "[" + render(v) + "]", false
	}}
}

// Field builds a rule from an accessor and a checker, using the checker's
// own default error message.
func Field[T, V any](get Accessor[T, V], c Checker[V]) Rule[T] {
	return Rule[T]{eval: func(instance T) (string, bool) {
		v := get(instance)
		if c.Check(v) {
			return "", true
		}
		return c.failureMessage(v), false
	}}
}

// RuleSet is an ordered, append-only collection of rules bound to one object
// type. Once registration is complete a RuleSet may be shared across
// concurrent Validate calls; registering rules concurrently with validation
// is not supported.
type RuleSet[T any] struct {
	rules []Rule[T]
}

// New returns an empty rule set for instances of T. A rule set with no rules
// accepts every instance.
func New[T any]() *RuleSet[T] {
	return &RuleSet[T]{}
}

// Add appends rules in the given order and returns the rule set for chaining.
func (rs *RuleSet[T]) Add(rules ...Rule[T]) *RuleSet[T] {
	rs.rules = append(rs.rules, rules...)
	return rs
}

// Len returns the number of registered rules.
func (rs *RuleSet[T]) Len() int {
	return len(rs.rules)
}

// AddRule appends a custom accessor+predicate rule and returns the rule set.
// It is the package-level form of rs.Add(NewRule(...)); methods cannot
// introduce the rule's value type parameter.
func AddRule[T, V any](rs *RuleSet[T], get Accessor[T, V], check Predicate[V], errMsg string) *RuleSet[T] {
	return rs.Add(NewRule(get, check, errMsg))
}

// AddChecker appends an accessor+checker rule and returns the rule set.
func AddChecker[T, V any](rs *RuleSet[T], get Accessor[T, V], c Checker[V]) *RuleSet[T] {
	return rs.Add(Field(get, c))
}

// Validate evaluates every rule against instance in insertion order. It does
// not short-circuit: the messages of all failing rules are collected, joined
// with ", ", and returned as a *ValidationError. It returns nil when every
// rule passes. If an accessor panics, the panic propagates; that is a
// programming error, not a validation failure.
func (rs *RuleSet[T]) Validate(instance T) error {
	var msgs []string
	for _, rule := range rs.rules {
		if msg, ok := rule.eval(instance); !ok {
			msgs = append(msgs, msg)
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return &ValidationError{Message: strings.Join(msgs, ", ")}
}
