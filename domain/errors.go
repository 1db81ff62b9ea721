package domain

// InputError reports an invalid or conflicting loan-term specification. It
// signals caller misuse: it fires before any computation starts and is not
// retryable.
type InputError struct {
	Msg string
}

func (e *InputError) Error() string {
	return "input error: " + e.Msg
}
