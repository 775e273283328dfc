// Package mutation runs a side-effecting backend call at most once at a time
// and turns its failure into a single user-facing message.
package mutation

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"payctl/internal/api"
	"payctl/internal/logging"
)

// FallbackMessage is shown when a failure carries no usable text
const FallbackMessage = "Something went wrong. Please try again."

// ErrPending is returned by Do while a previous call is still in flight
var ErrPending = errors.New("submission already in progress")

// Func performs the call
type Func[Req, Resp any] func(ctx context.Context, req Req) (Resp, error)

// Mutation guards a Func so a second Do during an outstanding call is rejected
type Mutation[Req, Resp any] struct {
	fn      Func[Req, Resp]
	pending atomic.Bool
	logger  logrus.FieldLogger
}

// New creates a mutation identified by key in logs
func New[Req, Resp any](key string, fn Func[Req, Resp]) *Mutation[Req, Resp] {
	return &Mutation[Req, Resp]{
		fn:     fn,
		logger: logging.NewModuleLogger("mutation").WithField("mutation", key),
	}
}

// Pending reports whether a call is in flight
func (m *Mutation[Req, Resp]) Pending() bool {
	return m.pending.Load()
}

// Do runs the call once. It does not retry.
func (m *Mutation[Req, Resp]) Do(ctx context.Context, req Req) (Resp, error) {
	var zero Resp
	if !m.pending.CompareAndSwap(false, true) {
		m.logger.Debug("rejected re-entrant submit")
		return zero, ErrPending
	}
	defer m.pending.Store(false)

	m.logger.Debug("submitting")
	resp, err := m.fn(ctx, req)
	if err != nil {
		m.logger.WithError(err).Info("mutation failed")
		return zero, err
	}
	return resp, nil
}

// ErrorMessage picks the text to show for a failed call: the structured
// message from the response body, then the failure's own message, then
// FallbackMessage.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var reqErr *api.RequestError
	if errors.As(err, &reqErr) {
		if msg := strings.TrimSpace(reqErr.ResponseMessage); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(reqErr.Message); msg != "" {
			return msg
		}
		return FallbackMessage
	}

	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return FallbackMessage
}
