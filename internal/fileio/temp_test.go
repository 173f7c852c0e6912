package fileio

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/fs"

	"github.com/stdinfile/stdinfile/internal/errors"
)

func TestCreateTemp(t *testing.T) {
	dir := fs.NewDir(t, "fileio")
	defer dir.Remove()

	tests := []struct {
		name   string
		suffix string
		input  []byte
	}{
		{name: "hello", suffix: ".tmp", input: []byte("hello")},
		{name: "empty", suffix: ".tmp", input: []byte{}},
		{name: "binary", suffix: ".bin", input: []byte{0x00, 0xff, 0x0a, 0x0d, 0x00}},
		{name: "no dot", suffix: "log", input: []byte("x")},
		{name: "large", suffix: ".tmp", input: bytes.Repeat([]byte("0123456789"), 100000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, err := CreateTemp(dir.Path(), "stdinfile.", tt.suffix, bytes.NewReader(tt.input))
			require.NoError(t, err)

			assert.Equal(t, dir.Path(), filepath.Dir(name))
			assert.True(t, strings.HasPrefix(filepath.Base(name), "stdinfile."))
			assert.True(t, strings.HasSuffix(name, tt.suffix))

			got, err := os.ReadFile(name)
			require.NoError(t, err)
			assert.Equal(t, len(tt.input), len(got))
			assert.True(t, bytes.Equal(tt.input, got))
		})
	}
}

func TestCreateTemp_Unique(t *testing.T) {
	dir := fs.NewDir(t, "fileio")
	defer dir.Remove()

	const n = 64
	names := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name, err := CreateTemp(dir.Path(), "stdinfile.", ".tmp", strings.NewReader("x"))
			assert.NoError(t, err)
			names[i] = name
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, name := range names {
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
}

func TestCreateTemp_MissingDir(t *testing.T) {
	dir := fs.NewDir(t, "fileio")
	defer dir.Remove()

	name, err := CreateTemp(dir.Join("missing"), "stdinfile.", ".tmp", strings.NewReader("x"))
	assert.Empty(t, name)
	assert.Equal(t, errors.FileCreate, errors.KindOf(err))
}

type failingReader struct{}

func (failingReader) Read(_ []byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestCreateTemp_WriteFailure(t *testing.T) {
	dir := fs.NewDir(t, "fileio")
	defer dir.Remove()

	name, err := CreateTemp(dir.Path(), "stdinfile.", ".tmp", failingReader{})
	assert.Equal(t, errors.FileWrite, errors.KindOf(err))
	assert.NotEmpty(t, name)
	assert.FileExists(t, name)
}

func TestIsDir(t *testing.T) {
	dir := fs.NewDir(t, "fileio", fs.WithFile("file.txt", "hi"))
	defer dir.Remove()

	assert.True(t, IsDir(dir.Path()))
	assert.False(t, IsDir(dir.Join("file.txt")))
	assert.False(t, IsDir(dir.Join("missing")))
}
