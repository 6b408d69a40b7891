package apperr

// ValidationError marks malformed input rejected at the API boundary.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// ProviderUnavailableError marks an external capability that is disabled or
// missing credentials. Collectors absorb it into their default payloads; it
// never crosses the collector boundary.
type ProviderUnavailableError struct {
	Provider string
	Reason   string
}

func (e *ProviderUnavailableError) Error() string {
	if e.Reason != "" {
		return e.Provider + " unavailable: " + e.Reason
	}
	return e.Provider + " unavailable"
}

func NewProviderUnavailable(provider, reason string) *ProviderUnavailableError {
	return &ProviderUnavailableError{Provider: provider, Reason: reason}
}

// TransientError marks a timeout or network failure that may be retried
// where a retry policy exists.
type TransientError struct {
	Message string
	Err     error
}

func (e *TransientError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

func NewTransient(msg string, err error) *TransientError {
	return &TransientError{Message: msg, Err: err}
}

// NotFoundError marks a lookup that matched nothing.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(msg string) *NotFoundError {
	return &NotFoundError{Message: msg}
}

// ParseError marks a language-model response that did not match the expected
// structure. Callers resolve it via documented field defaults, never as a
// hard failure.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return "cannot parse " + e.Field + ": " + e.Err.Error()
	}
	return "cannot parse " + e.Field
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
