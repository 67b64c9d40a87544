package cli

import (
	"fmt"
	"strconv"

	apperrors "github.com/existflow/tutordesk/internal/errors"
)

// ErrorHandler turns domain errors into messages fit for the terminal
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle prefixes the user-facing message of err with the failed operation
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	if eh.IsDomainError(err) {
		return fmt.Errorf("failed to %s: %s", operation, apperrors.UserMessage(err))
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple returns the user-facing message of err without context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}
	if eh.IsDomainError(err) {
		return fmt.Errorf("%s", apperrors.UserMessage(err))
	}
	return err
}

// IsDomainError reports whether err belongs to the model's error taxonomy
func (eh *ErrorHandler) IsDomainError(err error) bool {
	return apperrors.IsNotFound(err) || apperrors.IsValidation(err) || apperrors.IsFormat(err)
}

// parseID reads a positional record id
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q: expected a positive number", arg)
	}
	return id, nil
}
