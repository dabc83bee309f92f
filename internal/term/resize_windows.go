//go:build windows

package term

import (
	"os"

	"github.com/zjrosen/quill/internal/input"
)

// watchResize never fires on Windows, which has no SIGWINCH.
func watchResize(*os.File) (<-chan input.ResizeEvent, func()) {
	return nil, func() {}
}
