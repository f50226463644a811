// Package common holds small helpers shared across client components.
package common

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Used to drop passwords from memory as soon as the API call that
// needed them returns.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
