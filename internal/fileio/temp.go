package fileio

import (
	"io"
	"os"
	"path/filepath"

	"github.com/stdinfile/stdinfile/internal/errors"
	"github.com/stdinfile/stdinfile/internal/msg"
)

// CreateTemp writes out the contents of the reader to a new temp file in dir,
// named by prefix, a random component and suffix. Neither prefix nor suffix
// may contain "*" or a path separator. The file is allocated with
// an exclusive create, so concurrent callers never share a name.
//
// The name is returned even when writing fails, so the caller can decide what
// to do with the partial file. It's the caller's responsibility to clean up
// the temp file.
func CreateTemp(dir, prefix, suffix string, r io.Reader) (string, error) {
	fd, err := os.CreateTemp(dir, prefix+"*"+suffix)
	if err != nil {
		return "", errors.Wrapf(errors.FileCreate, err, msg.TempCreateFailed, dir)
	}
	defer fd.Close()

	if _, err := io.Copy(fd, r); err != nil {
		return fd.Name(), errors.Wrapf(errors.FileWrite, err, msg.TempWriteFailed, fd.Name())
	}

	if err := fd.Close(); err != nil {
		return fd.Name(), errors.Wrapf(errors.FileWrite, err, msg.TempWriteFailed, fd.Name())
	}

	return fd.Name(), nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	fi, err := os.Stat(filepath.Clean(path))
	return err == nil && fi.IsDir()
}
