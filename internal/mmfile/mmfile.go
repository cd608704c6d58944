// Package mmfile opens input files for decoding, memory-mapping them where
// the platform allows.
package mmfile

import "os"

func noop() error { return nil }

// readAll is the non-mapping path, used for pipes, devices and platforms
// without mmap.
func readAll(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, noop, nil
}
