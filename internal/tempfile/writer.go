// Package tempfile materializes an input stream as a uniquely named file.
package tempfile

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	serrors "github.com/stdinfile/stdinfile/internal/errors"
	"github.com/stdinfile/stdinfile/internal/fileio"
	"github.com/stdinfile/stdinfile/internal/human"
	"github.com/stdinfile/stdinfile/internal/ioctx"
	"github.com/stdinfile/stdinfile/internal/msg"
)

// Prefix starts the name of every file created by a Writer.
const Prefix = "stdinfile."

// State is a step of a Writer run.
type State string

// States of a Writer run, in order.
const (
	Idle       State = "idle"
	Validating State = "validating"
	Reading    State = "reading"
	Writing    State = "writing"
	Done       State = "done"
	Failed     State = "failed"
)

// Result describes the file created by a successful run.
type Result struct {
	// Path is the absolute path of the created file.
	Path string
	// Size is the number of bytes written.
	Size int64
}

// Writer reads an input stream to the end and writes it to a new temp file.
type Writer struct {
	// Dir is the directory the file is created in.
	Dir string
	// Extension is appended to the generated name.
	Extension string
	// RemovePartial deletes the file if it could not be fully written.
	RemovePartial bool

	state State
}

// State returns the step the last run reached.
func (w *Writer) State() State {
	if w.state == "" {
		return Idle
	}
	return w.state
}

func (w *Writer) enter(s State) {
	log.Debug().Str("from", string(w.State())).Str("to", string(s)).Msg("State transition.")
	w.state = s
}

// Validate checks that Dir is an existing directory and that Extension can
// be part of a file name.
func (w *Writer) Validate() error {
	if !fileio.IsDir(w.Dir) {
		return serrors.New(serrors.InvalidArgument, msg.InvalidDir, w.Dir)
	}
	if strings.ContainsAny(w.Extension, `*/`+string(filepath.Separator)) {
		return serrors.New(serrors.InvalidArgument, msg.InvalidExtension, w.Extension)
	}
	return nil
}

// Run validates the target, reads in until EOF and writes everything that
// was read to a new file. Validation happens before in is touched.
// Every failure is terminal; Run is not retried.
func (w *Writer) Run(ctx context.Context, in io.Reader) (Result, error) {
	res, err := w.run(ctx, in)
	if err != nil {
		w.enter(Failed)
		return Result{}, err
	}
	w.enter(Done)
	return res, nil
}

func (w *Writer) run(ctx context.Context, in io.Reader) (Result, error) {
	w.enter(Validating)
	if err := w.Validate(); err != nil {
		return Result{}, err
	}

	w.enter(Reading)
	data, err := ioctx.ReadAll(ctx, in)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return Result{}, serrors.Wrap(serrors.UserCancelled, err, msg.Interrupted)
		}
		return Result{}, serrors.Wrap(serrors.StdinRead, err, msg.StdinReadFailed)
	}
	log.Debug().Str("size", human.Bytes(int64(len(data)))).Msg("Read stdin.")

	w.enter(Writing)
	name, err := fileio.CreateTemp(w.Dir, Prefix, w.Extension, ioctx.ContextualReadCloser{
		Ctx:    ctx,
		Reader: io.NopCloser(bytes.NewReader(data)),
	})
	if err != nil {
		if name != "" && w.RemovePartial {
			if rmErr := os.Remove(name); rmErr != nil {
				log.Debug().Err(rmErr).Str("path", name).Msg("Failed to remove partial file.")
			} else {
				log.Debug().Str("path", name).Msg("Removed partial file.")
			}
		}
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return Result{}, serrors.Wrap(serrors.UserCancelled, err, msg.Interrupted)
		}
		return Result{}, err
	}

	log.Debug().Str("path", name).Str("size", human.Bytes(int64(len(data)))).Msg("Wrote temp file.")

	return Result{Path: name, Size: int64(len(data))}, nil
}
