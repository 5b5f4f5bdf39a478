//go:build windows

package mmfile

import (
	"os"
)

// Map reads the file at path into memory and returns its contents. Windows
// file locking makes a plain read the safer choice for files a game may
// still have open.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
