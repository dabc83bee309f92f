package term

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/zjrosen/quill/internal/input"
	"github.com/zjrosen/quill/internal/log"
)

type keyResult struct {
	key input.KeyEvent
	err error
}

// Source delivers key and resize events from a terminal.
//
// Keys are decoded by a reader goroutine so that a blocking read can be
// multiplexed with resize notifications. Events are still consumed one at a
// time by the loop.
type Source struct {
	keys    chan keyResult
	resizes <-chan input.ResizeEvent
	stop    func()
	done    chan struct{}
	exited  chan struct{}
	closed  sync.Once
}

// NewSource reads keys from in and watches out for size changes.
func NewSource(in io.Reader, out *os.File) *Source {
	resizes, stop := watchResize(out)
	return newSource(in, resizes, stop)
}

func newSource(in io.Reader, resizes <-chan input.ResizeEvent, stop func()) *Source {
	s := &Source{
		keys:    make(chan keyResult),
		resizes: resizes,
		stop:    stop,
		done:    make(chan struct{}),
		exited:  make(chan struct{}),
	}
	go s.readKeys(NewDecoder(in))
	return s
}

// readKeys exits on a read error or once Close is called. A read already
// blocked in the terminal returns with the next key.
func (s *Source) readKeys(d *Decoder) {
	defer close(s.exited)
	for {
		k, err := d.Next()
		select {
		case s.keys <- keyResult{key: k, err: err}:
		case <-s.done:
			return
		}
		if err != nil {
			return
		}
	}
}

// NextEvent blocks until a key or resize arrives.
func (s *Source) NextEvent(ctx context.Context) (input.Event, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case r := <-s.resizes:
			log.Debug(log.CatTerm, "Terminal resized", "width", r.Width, "height", r.Height)
			return r, nil
		case k := <-s.keys:
			if k.err != nil {
				return nil, k.err
			}
			if k.key.Name == "" {
				continue
			}
			return k.key, nil
		}
	}
}

// Close stops resize notifications and the reader goroutine.
func (s *Source) Close() {
	s.closed.Do(func() {
		close(s.done)
		s.stop()
	})
}
