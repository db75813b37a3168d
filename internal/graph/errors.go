// AngelaMos | 2026
// errors.go

package graph

import (
	"context"
	"errors"

	"github.com/isiolocityfc/backend/internal/core"
	"github.com/isiolocityfc/backend/internal/middleware"
)

// Error is what resolvers hand to the executor. Its message is shown to
// the client verbatim and Extensions supplies extensions.code.
type Error struct {
	Message string
	Code    string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Extensions() map[string]any {
	return map[string]any{"code": e.Code}
}

// fail converts a service error into a client-facing Error. Internal
// failures are logged in full; production responses only carry the generic
// message.
func (r *Resolver) fail(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	appErr := core.Classify(err)
	message := appErr.Message

	if appErr.Code == core.CodeInternal {
		core.RecordError(ctx, err)
		r.logger.ErrorContext(ctx, "resolver error",
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
			"trace_id", core.TraceID(ctx),
		)
		if !r.production {
			message = err.Error()
		}
	}

	return &Error{Message: message, Code: appErr.Code}
}

// lookup finishes a nullable single-entity read: a miss resolves to null
// rather than an error.
func (r *Resolver) lookup(ctx context.Context, err error) error {
	if errors.Is(err, core.ErrNotFound) {
		return nil
	}
	return r.fail(ctx, err)
}
