package app_errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrIntegrityViolation = errors.New("integrity violation")
	ErrMissingAsset       = errors.New("asset missing")
	ErrValidation         = errors.New("validation failed")
)

var ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
var ErrCourseNotFound = fmt.Errorf("course %w", ErrNotFound)
var ErrModuleNotFound = fmt.Errorf("module %w", ErrNotFound)
var ErrLessonNotFound = fmt.Errorf("lesson %w", ErrNotFound)
var ErrQuizNotFound = fmt.Errorf("quiz %w", ErrNotFound)
var ErrQuestionNotFound = fmt.Errorf("question %w", ErrNotFound)
var ErrProgressNotFound = fmt.Errorf("progress record %w", ErrNotFound)
var ErrEnrollmentNotFound = fmt.Errorf("enrollment %w", ErrNotFound)
var ErrAudioNotFound = fmt.Errorf("audio file not found: %w", ErrMissingAsset)

// IntegrityError is returned by a write that broke a unique, foreign-key,
// not-null or check constraint. The transaction is already rolled back.
type IntegrityError struct {
	Op         string
	Constraint string
	Err        error
}

func (e *IntegrityError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("integrity error while %s (%s)", e.Op, e.Constraint)
	}
	return fmt.Sprintf("integrity error while %s", e.Op)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrityViolation
}

// Validation wraps a user facing message so handlers can answer 422.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
