package j8

import "unsafe"

// UnsafeString returns a string that shares the same underlying
// memory as b. It must only be used when nothing writes to b for the
// lifetime of the string, such as a buffer freshly returned by
// AppendString(nil, ...).
func UnsafeString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
