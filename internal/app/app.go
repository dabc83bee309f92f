// Package app wires one editing session: it loads the content source,
// picks a terminal host, and guarantees the terminal is restored on every
// exit path.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/quill/internal/buffer"
	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/editor"
	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/render"
	"github.com/zjrosen/quill/internal/tracing"
	"github.com/zjrosen/quill/internal/tui"
)

// Fallback size for the tea host until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configures a session.
type Options struct {
	// Path is the file to edit. Empty starts with an empty buffer.
	Path string

	// Host is config.HostTerm or config.HostTea. Empty means term.
	Host string

	// Tracer records the session span and one span per loop iteration.
	Tracer trace.Tracer

	// Terminal is the raw terminal used by the term host. Nil uses
	// stdin and stdout.
	Terminal Terminal

	// TeaOptions are extra program options for the tea host.
	TeaOptions []tea.ProgramOption
}

// Session is one run of the editor over one content source.
type Session struct {
	id     string
	opts   Options
	tracer trace.Tracer
	buf    *buffer.Buffer
}

// New loads the content source and prepares a session. A source that
// cannot be read is reported as editor.ErrStartupIO before any terminal
// state is touched.
func New(opts Options) (*Session, error) {
	if err := config.ValidateHost(opts.Host); err != nil {
		return nil, err
	}
	if opts.Host == "" {
		opts.Host = config.HostTerm
	}

	s := &Session{
		id:     uuid.NewString(),
		opts:   opts,
		tracer: opts.Tracer,
	}
	if s.tracer == nil {
		s.tracer = noop.NewTracerProvider().Tracer("noop")
	}

	buf, err := load(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", editor.ErrStartupIO, err)
	}
	s.buf = buf

	log.Info(log.CatApp, "Session created",
		"session", s.id, "host", opts.Host, "path", opts.Path, "lines", buf.LineCount())
	return s, nil
}

func load(path string) (*buffer.Buffer, error) {
	if path == "" {
		return buffer.New(), nil
	}
	return buffer.LoadFile(path)
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Buffer returns the document being edited.
func (s *Session) Buffer() *buffer.Buffer { return s.buf }

// Run drives the session on the configured host until the user quits or
// an I/O error ends it.
func (s *Session) Run(ctx context.Context) (err error) {
	ctx, span := s.tracer.Start(ctx, tracing.SpanSession,
		trace.WithAttributes(
			attribute.String(tracing.AttrSessionID, s.id),
			attribute.String(tracing.AttrHost, s.opts.Host),
			attribute.String(tracing.AttrFile, s.opts.Path),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	switch s.opts.Host {
	case config.HostTea:
		err = s.runTea(ctx)
	default:
		t := s.opts.Terminal
		if t == nil {
			t = NewTTY(os.Stdin, os.Stdout)
		}
		err = s.runTerm(ctx, t)
	}

	if err != nil {
		log.ErrorErr(log.CatApp, "Session ended with error", err, "session", s.id)
		return err
	}
	log.Info(log.CatApp, "Session ended", "session", s.id)
	return nil
}

// runTerm holds raw mode for the lifetime of the loop. The release runs
// from a defer so it also happens when the loop panics.
func (s *Session) runTerm(ctx context.Context, t Terminal) (err error) {
	width, height, err := t.Size()
	if err != nil {
		return fmt.Errorf("%w: %w", editor.ErrStartupIO, err)
	}

	guard, err := t.Acquire()
	if err != nil {
		return fmt.Errorf("%w: %w", editor.ErrStartupIO, err)
	}
	defer func() {
		if rerr := guard.Release(); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()

	src := t.Source()
	defer src.Close()

	ed := editor.New(s.buf, width, height)
	loop := editor.NewLoop(ed, editor.WithTracer(s.tracer))
	return loop.Run(ctx, src, render.NewPainter(t.Output()))
}

// runTea hands the terminal to a bubbletea program, which owns raw mode
// and the alternate screen and restores both when Run returns.
func (s *Session) runTea(ctx context.Context) error {
	ed := editor.New(s.buf, defaultWidth, defaultHeight)

	opts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, s.opts.TeaOptions...)

	final, err := tea.NewProgram(tui.New(ed), opts...).Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
