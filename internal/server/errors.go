package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"oes-harmonize/internal/harmonize"
	"oes-harmonize/internal/registry"
)

// inputError marks a request the client got wrong.
type inputError struct {
	err error
}

func (e *inputError) Error() string { return e.err.Error() }

func (e *inputError) Unwrap() error { return e.err }

func badInput(err error) error {
	return &inputError{err: err}
}

// errDetect is returned when dialect=auto finds no confident match.
var errDetect = errors.New("no dialect matches the header")

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	var (
		in      *inputError
		ruleErr *harmonize.RuleError
		tooBig  *http.MaxBytesError
	)

	switch {
	case errors.Is(err, registry.ErrUnknownDialect):
		return http.StatusNotFound
	case errors.Is(err, harmonize.ErrInvariant):
		return http.StatusInternalServerError
	case errors.Is(err, registry.ErrSchemaConflict),
		errors.Is(err, errDetect),
		errors.As(err, &ruleErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &tooBig):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &in):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// abort writes the error payload and stops the handler chain.
func abort(c *gin.Context, err error, extra gin.H) {
	status := statusFor(err)

	body := gin.H{
		"error":      err.Error(),
		"request_id": requestID(c),
	}

	var unknown *registry.UnknownDialectError
	if errors.As(err, &unknown) {
		body["known"] = unknown.Known
	}

	var ruleErr *harmonize.RuleError
	if errors.As(err, &ruleErr) {
		body["row"] = ruleErr.Row
		body["column"] = ruleErr.Column
		body["rule"] = ruleErr.Rule
	}

	for k, v := range extra {
		body[k] = v
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, body)
}
