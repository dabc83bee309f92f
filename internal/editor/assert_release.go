//go:build !debug

package editor

import "github.com/zjrosen/quill/internal/log"

// outOfBounds logs the defect and hands the error back to the loop.
func outOfBounds(err error) error {
	log.ErrorErr(log.CatLoop, "Edit outside buffer bounds", err)
	return err
}
