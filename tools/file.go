package tools

import (
	"errors"
	"io/fs"
	"os"
)

// ReadOptionalFile returns nil data when the file does not exist.
func ReadOptionalFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func PanicOnError[T any](v T, e error) T {
	if e != nil {
		panic(e)
	}
	return v
}
