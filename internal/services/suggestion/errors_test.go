package suggestion

import (
	"context"
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/bangohan/kondate/internal/errors"
)

func TestClassifyGenerationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperrors.ErrorType
	}{
		{
			name: "plain failure",
			err:  errors.New("Gemini API error (status 500): internal"),
			want: apperrors.ErrorTypeGeneration,
		},
		{
			name: "timeout wording",
			err:  errors.New("request timeout while awaiting response"),
			want: apperrors.ErrorTypeGenerationTimeout,
		},
		{
			name: "deadline wording",
			err:  errors.New("rpc error: deadline exceeded"),
			want: apperrors.ErrorTypeGenerationTimeout,
		},
		{
			name: "mixed case wording",
			err:  errors.New("Timeout: the operation took too long"),
			want: apperrors.ErrorTypeGenerationTimeout,
		},
		{
			name: "wrapped context deadline",
			err:  fmt.Errorf("generate: %w", context.DeadlineExceeded),
			want: apperrors.ErrorTypeGenerationTimeout,
		},
		{
			name: "auth failure",
			err:  errors.New("Gemini API error (status 401): invalid key"),
			want: apperrors.ErrorTypeGeneration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyGenerationError(tt.err)
			if got.Type != tt.want {
				t.Errorf("ClassifyGenerationError() type = %v, want %v", got.Type, tt.want)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("classified error does not wrap the original")
			}
		})
	}
}

func TestClassifyGenerationError_Nil(t *testing.T) {
	if got := ClassifyGenerationError(nil); got != nil {
		t.Errorf("ClassifyGenerationError(nil) = %v, want nil", got)
	}
}

func TestClassifyGenerationError_PassesThroughAppError(t *testing.T) {
	orig := apperrors.NewNoCapableModelError()
	got := ClassifyGenerationError(orig)
	if got != orig {
		t.Errorf("expected AppError to pass through unchanged")
	}
}
