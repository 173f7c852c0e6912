package ioctx

import (
	"bytes"
	"context"
	"io"
)

// ContextualReadCloser is a wrapper around an io.ReadCloser that cancels the
// read operation when the context is canceled.
type ContextualReadCloser struct {
	Ctx    context.Context
	Reader io.ReadCloser
}

func (crc ContextualReadCloser) Read(p []byte) (n int, err error) {
	if crc.Ctx.Err() != nil {
		return 0, crc.Ctx.Err()
	}
	return crc.Reader.Read(p)
}

func (crc ContextualReadCloser) Close() error {
	return crc.Reader.Close()
}

type readResult struct {
	data []byte
	err  error
}

// ReadAll reads r until EOF and returns the data it read.
//
// A read blocked on a terminal or pipe can't be interrupted, so the copy runs
// in its own goroutine and ReadAll returns ctx.Err() as soon as ctx is done.
// The goroutine is abandoned in that case; callers are expected to exit.
func ReadAll(ctx context.Context, r io.Reader) ([]byte, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	done := make(chan readResult, 1)
	go func() {
		var buf bytes.Buffer
		_, err := buf.ReadFrom(ContextualReadCloser{Ctx: ctx, Reader: io.NopCloser(r)})
		done <- readResult{data: buf.Bytes(), err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		return res.data, nil
	}
}
