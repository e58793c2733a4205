package ordersvc

// StepError reports which pipeline step failed and carries the message
// shown to the user. The underlying cause stays available for logging
// via Unwrap.
type StepError struct {
	Step    string
	Message string
	Err     error
}

func (e *StepError) Error() string {
	return e.Message
}

func (e *StepError) Unwrap() error {
	return e.Err
}
