// pkg/keysmith_io/context.go

package keysmith_io

import (
	"context"
	"time"

	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/keysmith/keysmith/pkg/telemetry"
)

// RuntimeContext carries everything one command invocation needs: context,
// a scoped logger, the telemetry span, and a run id for correlating log
// lines with span output.
type RuntimeContext struct {
	Ctx        context.Context
	Log        *zap.Logger
	Span       trace.Span
	Timestamp  time.Time
	Command    string
	RunID      string
	Attributes map[string]string
}

// NewContext sets up tracing and logging for one command run.
func NewContext(ctx context.Context, cmdName string) *RuntimeContext {
	runID := uuid.NewString()
	ctx, span := telemetry.Start(ctx, cmdName, attribute.String("run_id", runID))

	log := zap.L().With(
		zap.String("command", cmdName),
		zap.String("run_id", runID),
	).Named(cmdName)

	return &RuntimeContext{
		Ctx:        ctx,
		Log:        log,
		Span:       span,
		Timestamp:  time.Now(),
		Command:    cmdName,
		RunID:      runID,
		Attributes: make(map[string]string),
	}
}

// HandlePanic recovers panics, logs them, and converts to an error.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = cerr.AssertionFailedf("panic: %v", r)
		rc.Log.Error("Panic recovered", zap.Any("panic", r))
	}
}

// End logs the outcome, attaches run attributes to the span, and closes it.
func (rc *RuntimeContext) End(errPtr *error) {
	defer rc.Span.End()

	duration := time.Since(rc.Timestamp)
	success := *errPtr == nil

	if success {
		rc.Log.Debug("Command completed", zap.Duration("duration", duration))
	} else {
		rc.Log.Error("Command failed", zap.Duration("duration", duration), zap.Error(*errPtr))
	}

	attrs := make([]attribute.KeyValue, 0, len(rc.Attributes)+2)
	attrs = append(attrs,
		attribute.Bool("success", success),
		attribute.Int64("duration_ms", duration.Milliseconds()),
	)
	for k, v := range rc.Attributes {
		attrs = append(attrs, attribute.String(k, v))
	}
	rc.Span.SetAttributes(attrs...)
}
