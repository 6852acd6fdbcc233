package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"oes-harmonize/internal/harmonize"
	"oes-harmonize/internal/registry"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "invariant",
			err:  &harmonize.InvariantError{Dialect: "2011", Missing: []string{"AREA"}},
			want: http.StatusInternalServerError,
		},
		{
			name: "wrapped schema conflict",
			err:  fmt.Errorf("registering: %w", &registry.SchemaConflictError{Dialect: "d"}),
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "rule failure",
			err:  &harmonize.RuleError{Dialect: "2014", Rule: "i_group_from_naics", Err: errors.New("bad")},
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "no detection",
			err:  fmt.Errorf("%w: best 0.10", errDetect),
			want: http.StatusUnprocessableEntity,
		},
		{
			name: "unknown dialect",
			err:  &registry.UnknownDialectError{Dialect: "1999"},
			want: http.StatusNotFound,
		},
		{
			name: "bad input",
			err:  badInput(errors.New("missing dialect")),
			want: http.StatusBadRequest,
		},
		{
			name: "body too large",
			err:  badInput(fmt.Errorf("multipart: %w", &http.MaxBytesError{Limit: 64})),
			want: http.StatusRequestEntityTooLarge,
		},
		{
			name: "cancelled",
			err:  context.Canceled,
			want: http.StatusServiceUnavailable,
		},
		{
			name: "deadline",
			err:  fmt.Errorf("harmonizing: %w", context.DeadlineExceeded),
			want: http.StatusServiceUnavailable,
		},
		{
			name: "unknown",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
