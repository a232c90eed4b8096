package elf32

import (
	"bytes"
	"fmt"
)

// Lookup resolves the null-terminated string starting at off in a
// string table. The returned string is a copy; it does not alias the
// table.
func Lookup(table []byte, off uint32) (string, error) {
	if off >= uint32(len(table)) {
		return "", fmt.Errorf("%w: string offset %d outside table of %d bytes", ErrTruncated, off, len(table))
	}
	rest := table[off:]
	x := bytes.IndexByte(rest, 0)
	if x < 0 {
		return "", fmt.Errorf("%w: unterminated string at offset %d", ErrTruncated, off)
	}
	return string(rest[:x]), nil
}
