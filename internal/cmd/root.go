package cmd

import (
	"fmt"
	"io"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stdinfile/stdinfile/internal/config"
	serrors "github.com/stdinfile/stdinfile/internal/errors"
	"github.com/stdinfile/stdinfile/internal/flags"
	"github.com/stdinfile/stdinfile/internal/msg"
	"github.com/stdinfile/stdinfile/internal/tempfile"
	"github.com/stdinfile/stdinfile/internal/version"
	"github.com/stdinfile/stdinfile/internal/viper"
)

var (
	cmdUse   = "stdinfile [-h | -v] [-d DIR] [-e EXT]"
	cmdShort = "Creates a temporary file from stdin input, and prints the file name."
	cmdLong  = `Creates a temporary file from stdin input, and prints the file name.

For use with process substitution, e.g.:

  pygmentize -f html -O full script.py | xdg-open "$(stdinfile -e .html)"

The file is not removed by stdinfile; the caller owns it.`
)

// Command creates the stdinfile root command. preRun, if set, runs before
// any input is read and is the place to configure logging and colors.
func Command(preRun func(cmd *cobra.Command, args []string)) *cobra.Command {
	var cfgPath string
	v := viper.New()

	cmd := &cobra.Command{
		Use:           cmdUse,
		Short:         cmdShort,
		Long:          cmdLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s\n(build %s)", version.Version, version.GitCommit),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return serrors.New(serrors.InvalidArgument, msg.UnexpectedArgs, args)
			}
			return nil
		},
		PersistentPreRun: preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := config.Load(v, cfgPath)
			if err != nil {
				return err
			}
			log.Debug().Str("dir", req.Dir).Str("extension", req.Extension).Msg("Resolved request.")

			w := tempfile.Writer{
				Dir:           req.Dir,
				Extension:     req.Extension,
				RemovePartial: req.RemovePartial,
			}
			res, err := w.Run(cmd.Context(), cmd.InOrStdin())
			if err != nil {
				return err
			}

			return Print(cmd.OutOrStdout(), res.Path)
		},
	}

	cmd.SetVersionTemplate(version.Name + " version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &serrors.Error{Kind: serrors.InvalidArgument, Err: err}
	})

	fs := cmd.Flags()
	fs.BoolP("version", "v", false, "Show version.")
	fs.StringVarP(&cfgPath, "config", "c", "", "Read dir, extension and remove-partial from this config file (YAML, JSON or TOML).")

	sc := flags.SnakeCharmer{Fset: fs, Fmap: map[string]*pflag.Flag{}, Viper: v}
	sc.StringP("dir", "d", config.KeyDir, "", "Directory to create the temp file in. (default: the platform temp directory)")
	sc.StringP("extension", "e", config.KeyExtension, config.DefaultExtension, "Extension appended to the temp file name.")
	sc.Bool("remove-partial", config.KeyRemovePartial, false, "Remove the temp file again if it could not be fully written.")
	sc.BindAll()

	cmd.PersistentFlags().Bool("verbose", false, "Turn on verbose logging to stderr.")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colorized output.")

	return cmd
}

// Print writes path to w exactly, without a trailing newline.
// A closed pipe on the other end is reported as a BrokenPipe error.
func Print(w io.Writer, path string) error {
	if _, err := io.WriteString(w, path); err != nil {
		if errors.Is(err, syscall.EPIPE) {
			return serrors.Wrap(serrors.BrokenPipe, err, msg.BrokenPipe)
		}
		return serrors.Wrap(serrors.Unknown, err, msg.PrintFailed)
	}
	return nil
}
