package planner

// InvalidInputError indicates the caller supplied input the engine
// cannot plan over, such as too few waypoints. It is raised before any
// computation and the message is safe to surface verbatim.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

// NewInvalidInput creates an InvalidInputError with the given message.
func NewInvalidInput(message string) *InvalidInputError {
	return &InvalidInputError{Message: message}
}
