// Package input resolves input sources to their whole text content.
package input

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/CZERTAINLY/cwc/internal/model"
)

// Validate reports whether path exists and is a regular file. Symlinks are followed.
func Validate(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadFile returns the whole content of path. Any failure is returned as *model.IOError.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &model.IOError{Op: "open", Path: path, Err: unwrapPath(err)}
	}
	defer func() {
		_ = f.Close()
	}()
	return read(f, path)
}

// ReadStdin reads r until EOF. Any failure is returned as *model.IOError with an empty Path.
func ReadStdin(r io.Reader) (string, error) {
	return read(r, "")
}

func read(r io.Reader, path string) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", &model.IOError{Op: "read", Path: path, Err: unwrapPath(err)}
	}
	if !utf8.Valid(b) {
		return "", &model.IOError{Op: "decode", Path: path, Err: model.ErrInvalidUTF8}
	}
	return string(b), nil
}

// unwrapPath strips *fs.PathError, the path is carried by model.IOError already.
func unwrapPath(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
