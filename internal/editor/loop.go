package editor

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/quill/internal/input"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/render"
	"github.com/zjrosen/quill/internal/tracing"
	"github.com/zjrosen/quill/internal/vim"
)

// Source produces input events. NextEvent blocks until one is available.
type Source interface {
	NextEvent(ctx context.Context) (input.Event, error)
}

// Sink draws frames.
type Sink interface {
	Draw(f render.Frame) error
}

// Loop runs an editor against a source and sink.
type Loop struct {
	editor *Editor
	tracer trace.Tracer
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithTracer records one span per iteration on t.
func WithTracer(t trace.Tracer) LoopOption {
	return func(l *Loop) {
		l.tracer = t
	}
}

// NewLoop creates a loop for e.
func NewLoop(e *Editor, opts ...LoopOption) *Loop {
	l := &Loop{
		editor: e,
		tracer: noop.NewTracerProvider().Tracer("noop"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run iterates clamp, draw, read, dispatch until a Quit action is applied
// or an error occurs. Render and input failures are wrapped in ErrRenderIO
// and ErrInputIO. Restoring the terminal is the caller's job.
func (l *Loop) Run(ctx context.Context, src Source, sink Sink) error {
	log.Info(log.CatLoop, "Loop started", "lines", l.editor.Buffer().LineCount())

	for iteration := 0; ; iteration++ {
		if err := l.step(ctx, src, sink); err != nil {
			log.ErrorErr(log.CatLoop, "Loop aborted", err, "iteration", iteration)
			return err
		}
		if l.editor.Quitting() {
			log.Info(log.CatLoop, "Loop finished", "iterations", iteration+1)
			return nil
		}
	}
}

func (l *Loop) step(ctx context.Context, src Source, sink Sink) (err error) {
	ctx, span := l.tracer.Start(ctx, tracing.SpanIteration)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	e := l.editor
	if err := sink.Draw(e.Frame()); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderIO, err)
	}

	ev, err := src.NextEvent(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInputIO, err)
	}

	a, applied, err := e.HandleEvent(ev)
	span.SetAttributes(eventAttrs(ev)...)
	span.SetAttributes(
		attribute.String(tracing.AttrMode, e.Mode().String()),
		attribute.Int(tracing.AttrLine, e.Window().Line()),
		attribute.Int(tracing.AttrColumn, e.Window().Cursor().Col),
		attribute.Int(tracing.AttrTop, e.Window().Viewport().Top),
	)
	if applied {
		span.SetAttributes(attribute.String(tracing.AttrAction, a.Kind.String()))
		if a.Kind == vim.SetMode {
			log.Debug(log.CatLoop, "Applied action", "action", a, "mode", e.Mode())
		}
	}
	return err
}

func eventAttrs(ev input.Event) []attribute.KeyValue {
	switch ev := ev.(type) {
	case input.KeyEvent:
		return []attribute.KeyValue{attribute.String(tracing.AttrEvent, "key")}
	case input.ResizeEvent:
		return []attribute.KeyValue{
			attribute.String(tracing.AttrEvent, "resize"),
			attribute.Int("resize.width", ev.Width),
			attribute.Int("resize.height", ev.Height),
		}
	default:
		return nil
	}
}
