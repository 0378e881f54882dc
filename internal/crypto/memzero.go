package crypto

import "runtime"

// Wipe zeroes the provided buffer. Used on derived keys and opened profile
// bytes once they are no longer needed.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
