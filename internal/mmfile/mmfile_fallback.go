//go:build !unix

package mmfile

// Map reads the whole file where mmap is not available.
func Map(path string) ([]byte, func() error, error) {
	return readAll(path)
}
