package collector

// Result carries one provider's outcome across a fan-out boundary. A set
// Err means the provider contributed nothing; siblings are unaffected.
type Result[T any] struct {
	Value T
	Err   error
}
