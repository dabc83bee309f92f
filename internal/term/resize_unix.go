//go:build !windows

package term

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/zjrosen/quill/internal/input"
	"github.com/zjrosen/quill/internal/log"
)

// watchResize reports the size of out after every SIGWINCH.
func watchResize(out *os.File) (<-chan input.ResizeEvent, func()) {
	sig := make(chan os.Signal, 1)
	events := make(chan input.ResizeEvent, 1)
	done := make(chan struct{})
	signal.Notify(sig, syscall.SIGWINCH)

	go func() {
		for {
			select {
			case <-done:
				return
			case <-sig:
				w, h, err := Size(out)
				if err != nil {
					log.Warn(log.CatTerm, "Failed to read size after resize", "error", err)
					continue
				}
				select {
				case events <- input.ResizeEvent{Width: w, Height: h}:
				case <-done:
					return
				}
			}
		}
	}()

	return events, func() {
		signal.Stop(sig)
		close(done)
	}
}
