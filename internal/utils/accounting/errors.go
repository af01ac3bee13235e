package accounting

import (
	"strings"

	"github.com/Triostacksoftware/robobooks-ledger/internal/apperrors"
)

// ValidationFailedError carries the full rule report of a failed
// double-entry validation so callers can render every violation at once.
type ValidationFailedError struct {
	Result ValidationResult
}

func (e *ValidationFailedError) Error() string {
	msgs := make([]string, len(e.Result.Errors))
	for i, v := range e.Result.Errors {
		msgs[i] = v.Message
	}
	return "journal entry validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationFailedError) Unwrap() error { return apperrors.ErrValidation }
