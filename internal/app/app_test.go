package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zjrosen/quill/internal/buffer"
	"github.com/zjrosen/quill/internal/config"
	"github.com/zjrosen/quill/internal/editor"
	"github.com/zjrosen/quill/internal/input"
	"github.com/zjrosen/quill/internal/tracing"
)

// fakeGuard counts releases.
type fakeGuard struct {
	releases int
	err      error
}

func (g *fakeGuard) Release() error {
	g.releases++
	return g.err
}

// fakeSource replays events, then returns err (io.EOF by default).
type fakeSource struct {
	events []input.Event
	err    error
	closed int
}

func (s *fakeSource) NextEvent(context.Context) (input.Event, error) {
	if len(s.events) == 0 {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

func (s *fakeSource) Close() { s.closed++ }

type fakeTerminal struct {
	width, height int
	sizeErr       error
	acquireErr    error
	guard         *fakeGuard
	source        *fakeSource
	out           io.Writer
	acquired      bool
}

func newFakeTerminal(events ...input.Event) *fakeTerminal {
	return &fakeTerminal{
		width:  40,
		height: 5,
		guard:  &fakeGuard{},
		source: &fakeSource{events: events},
		out:    &bytes.Buffer{},
	}
}

func (t *fakeTerminal) Size() (int, int, error) { return t.width, t.height, t.sizeErr }

func (t *fakeTerminal) Acquire() (Guard, error) {
	if t.acquireErr != nil {
		return nil, t.acquireErr
	}
	t.acquired = true
	return t.guard, nil
}

func (t *fakeTerminal) Source() EventSource { return t.source }
func (t *fakeTerminal) Output() io.Writer   { return t.out }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew_LoadsFile(t *testing.T) {
	s, err := New(Options{Path: writeFile(t, "abc\nde\n")})
	require.NoError(t, err)
	require.Equal(t, []string{"abc", "de"}, s.Buffer().Lines())

	_, err = uuid.Parse(s.ID())
	require.NoError(t, err)
}

func TestNew_NoPathStartsEmpty(t *testing.T) {
	s, err := New(Options{})
	require.NoError(t, err)
	require.Equal(t, 0, s.Buffer().LineCount())
}

func TestNew_UniqueIDs(t *testing.T) {
	a, err := New(Options{})
	require.NoError(t, err)
	b, err := New(Options{})
	require.NoError(t, err)
	require.NotEqual(t, a.ID(), b.ID())
}

func TestNew_MissingFileIsStartupError(t *testing.T) {
	_, err := New(Options{Path: filepath.Join(t.TempDir(), "missing.txt")})
	require.ErrorIs(t, err, editor.ErrStartupIO)
	require.ErrorIs(t, err, buffer.ErrLoad)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNew_UnknownHost(t *testing.T) {
	_, err := New(Options{Host: "curses"})
	require.Error(t, err)
}

// Quitting releases raw mode exactly once.
func TestRunTerm_QuitRestoresOnce(t *testing.T) {
	term := newFakeTerminal(input.Char('i'), input.Char('x'), input.Key(input.KeyEscape), input.Char('q'))
	s, err := New(Options{Terminal: term})
	require.NoError(t, err)

	require.NoError(t, s.Run(context.Background()))

	require.True(t, term.acquired)
	require.Equal(t, 1, term.guard.releases)
	require.Equal(t, 1, term.source.closed)
	require.Equal(t, []string{"x"}, s.Buffer().Lines())
	require.NotEmpty(t, term.out.(*bytes.Buffer).String())
}

func TestRunTerm_InputErrorRestoresOnce(t *testing.T) {
	term := newFakeTerminal(input.Char('j'))
	term.source.err = errors.New("read /dev/tty: input/output error")
	s, err := New(Options{Terminal: term})
	require.NoError(t, err)

	err = s.Run(context.Background())

	require.ErrorIs(t, err, editor.ErrInputIO)
	require.Equal(t, 1, term.guard.releases)
}

func TestRunTerm_RenderErrorRestoresOnce(t *testing.T) {
	term := newFakeTerminal(input.Char('q'))
	term.out = failingWriter{}
	s, err := New(Options{Terminal: term})
	require.NoError(t, err)

	err = s.Run(context.Background())

	require.ErrorIs(t, err, editor.ErrRenderIO)
	require.Equal(t, 1, term.guard.releases)
}

func TestRunTerm_ReleaseErrorIsReported(t *testing.T) {
	term := newFakeTerminal(input.Char('q'))
	term.guard.err = errors.New("tcsetattr failed")
	s, err := New(Options{Terminal: term})
	require.NoError(t, err)

	err = s.Run(context.Background())

	require.Error(t, err)
	require.Contains(t, err.Error(), "tcsetattr failed")
	require.Equal(t, 1, term.guard.releases)
}

func TestRunTerm_SizeErrorNeverAcquires(t *testing.T) {
	term := newFakeTerminal()
	term.sizeErr = errors.New("inappropriate ioctl for device")
	s, err := New(Options{Terminal: term})
	require.NoError(t, err)

	err = s.Run(context.Background())

	require.ErrorIs(t, err, editor.ErrStartupIO)
	require.False(t, term.acquired)
	require.Zero(t, term.guard.releases)
}

func TestRunTerm_AcquireError(t *testing.T) {
	term := newFakeTerminal()
	term.acquireErr = errors.New("not a terminal")
	s, err := New(Options{Terminal: term})
	require.NoError(t, err)

	err = s.Run(context.Background())

	require.ErrorIs(t, err, editor.ErrStartupIO)
	require.Zero(t, term.guard.releases)
	require.Zero(t, term.source.closed)
}

func TestRunTerm_ResizeBeforeQuit(t *testing.T) {
	term := newFakeTerminal(input.ResizeEvent{Width: 20, Height: 3}, input.Char('q'))
	var out bytes.Buffer
	term.out = &out
	s, err := New(Options{Path: writeFile(t, "one\ntwo\nthree\nfour\n"), Terminal: term})
	require.NoError(t, err)

	require.NoError(t, s.Run(context.Background()))
	require.Contains(t, out.String(), "one")
	require.Equal(t, 1, term.guard.releases)
}

func TestRun_SessionSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	term := newFakeTerminal(input.Char('j'), input.Char('q'))
	path := writeFile(t, "a\nb\n")
	s, err := New(Options{Path: path, Terminal: term, Tracer: tp.Tracer("test")})
	require.NoError(t, err)
	require.NoError(t, s.Run(context.Background()))

	var session sdktrace.ReadOnlySpan
	iterations := 0
	for _, span := range recorder.Ended() {
		switch span.Name() {
		case tracing.SpanSession:
			session = span
		case tracing.SpanIteration:
			iterations++
		}
	}
	require.NotNil(t, session)
	require.Equal(t, 2, iterations)

	attrs := map[string]string{}
	for _, kv := range session.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	require.Equal(t, s.ID(), attrs[tracing.AttrSessionID])
	require.Equal(t, config.HostTerm, attrs[tracing.AttrHost])
	require.Equal(t, path, attrs[tracing.AttrFile])
}

func TestRun_SessionSpanRecordsError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	term := newFakeTerminal()
	s, err := New(Options{Terminal: term, Tracer: tp.Tracer("test")})
	require.NoError(t, err)
	require.Error(t, s.Run(context.Background()))

	var found bool
	for _, span := range recorder.Ended() {
		if span.Name() == tracing.SpanSession {
			found = true
			require.Equal(t, "Error", span.Status().Code.String())
		}
	}
	require.True(t, found)
}

func TestRunTea_QuitKey(t *testing.T) {
	var out bytes.Buffer
	s, err := New(Options{
		Host: config.HostTea,
		Path: writeFile(t, "hello\n"),
		TeaOptions: []tea.ProgramOption{
			tea.WithInput(strings.NewReader("q")),
			tea.WithOutput(&out),
			tea.WithoutSignalHandler(),
		},
	})
	require.NoError(t, err)

	require.NoError(t, s.Run(context.Background()))
	require.NotEmpty(t, out.String())
}

func TestRunTea_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	s, err := New(Options{
		Host: config.HostTea,
		TeaOptions: []tea.ProgramOption{
			tea.WithInput(pr),
			tea.WithOutput(io.Discard),
			tea.WithoutSignalHandler(),
		},
	})
	require.NoError(t, err)

	require.Error(t, s.Run(ctx))
}
