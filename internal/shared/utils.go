// Package shared holds small helpers for handling secrets in memory.
package shared

// WipeByteArray zeroes b. Use it on passwords read from a terminal once they
// have been consumed. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
