//go:build debug

package editor

// outOfBounds fails loudly: an out-of-bounds edit means the clamping pass
// missed a case.
func outOfBounds(err error) error {
	panic(err)
}
