package domain

// Outcome is the result of a best-effort step: either a value, or a reason
// the step was skipped. A skipped outcome may still carry a usable zero or
// partial value.
type Outcome[T any] struct {
	Value   T
	Reason  string
	skipped bool
}

// Ok wraps a successful value.
func Ok[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v}
}

// Skipped records why a step produced no value.
func Skipped[T any](reason string) Outcome[T] {
	return Outcome[T]{Reason: reason, skipped: true}
}

// SkippedWith records a skip reason alongside a fallback value.
func SkippedWith[T any](v T, reason string) Outcome[T] {
	return Outcome[T]{Value: v, Reason: reason, skipped: true}
}

func (o Outcome[T]) IsSkipped() bool {
	return o.skipped
}
