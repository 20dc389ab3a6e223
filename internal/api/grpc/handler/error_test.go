package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/notekeeper/internal/model"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       error
		wantCode codes.Code
		wantMsg  string
	}{
		{
			name:     "model not found -> NotFound",
			in:       fmt.Errorf("lookup: %w", model.ErrNotFound),
			wantCode: codes.NotFound,
			wantMsg:  "not found",
		},
		{
			name:     "permission denied -> PermissionDenied",
			in:       model.ErrPermissionDenied,
			wantCode: codes.PermissionDenied,
			wantMsg:  "permission denied",
		},
		{
			name:     "invalid argument keeps detail",
			in:       fmt.Errorf("%w: owner is empty", model.ErrInvalidArgument),
			wantCode: codes.InvalidArgument,
			wantMsg:  "invalid argument: owner is empty",
		},
		{
			name:     "other -> Internal",
			in:       errors.New("boom"),
			wantCode: codes.Internal,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			st, ok := status.FromError(handleError(tt.in))
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}
