package suggestion

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/bangohan/kondate/internal/errors"
)

// ClassifyGenerationError converts a generation-client failure into a typed
// outcome. Timeouts are recognized by context.DeadlineExceeded or by the
// words "timeout"/"deadline" in the error text; the substring match depends
// on the remote service's wording and is best-effort, not a contract.
func ClassifyGenerationError(err error) *errors.AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := err.(*errors.AppError); ok {
		return appErr
	}

	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewGenerationTimeoutError(err)
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline") {
		return errors.NewGenerationTimeoutError(err)
	}

	return errors.NewGenerationError("generation failed", err)
}
