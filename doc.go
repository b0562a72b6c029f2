// Package validator provides a small declarative field-validation library.
// A RuleSet is bound to an object type; each registered rule maps the object
// to a value through an accessor and asserts a predicate over that value.
// Validation runs every rule and reports all failures jointly in a single
// error, or succeeds silently.
//
// # Architecture
//
// Core building blocks:
//   - Rule            – existential unit pairing an accessor, a predicate and
//     an error message, closed over its own value type
//   - RuleSet         – ordered, append-only rule collection bound to one type
//   - Checker         – reusable predicate configuration (NotNull, Size
//     bounds, ValidValues) with a default message generator
//   - ValidationError – aggregated failure report from one Validate call
//
// Every component is stateless beyond its immutable configuration; validation
// is a pure function of the rule set and the instance, so a fully registered
// RuleSet is safe for concurrent Validate calls.
//
// # Usage
//
//	rules := validator.New[Payment]()
//	validator.AddChecker(rules, func(p Payment) *int64 { return p.ID },
//	    validator.NotNull[*int64]("id"))
//	validator.AddChecker(rules, func(p Payment) string { return p.Currency },
//	    validator.ValidValues("currency", "CNY", "GBP"))
//
//	if err := rules.Validate(payment); err != nil {
//	    // err.Error() lists every failing rule's message, joined by ", "
//	}
//
// Checkers other than NotNull accept absent values, so a field can be
// optional yet constrained in shape when present; compose a NotNull rule to
// make it required.
//
// # Error Handling
//
// Validate returns a *ValidationError whose message aggregates all failing
// rules in insertion order. Use IsValidationError or AsValidationError to
// distinguish validation failures from other error classes. Panics raised by
// an accessor are not caught; they signal a programming error, not invalid
// data.
package validator
