package msg

// argument validation
const (
	// InvalidDir indicates the target directory is missing or not a directory.
	InvalidDir = "invalid directory %q"
	// InvalidExtension indicates the extension can't be used in a file name pattern.
	InvalidExtension = "invalid extension %q: must not contain a path separator or \"*\""
	// UnexpectedArgs indicates positional arguments were given.
	UnexpectedArgs = "unexpected arguments: %v"
	// InvalidConfigFile indicates the --config file could not be loaded.
	InvalidConfigFile = "unable to load config file %q"
)

// io failures
const (
	// StdinReadFailed indicates stdin could not be read.
	StdinReadFailed = "unable to read stdin"
	// TempCreateFailed indicates the temp file could not be allocated.
	TempCreateFailed = "unable to create a temp file in %s"
	// TempWriteFailed indicates the temp file could not be fully written.
	TempWriteFailed = "failed to write temp file %s"
	// Interrupted indicates the user interrupted the program.
	Interrupted = "interrupted"
	// BrokenPipe indicates stdout was closed before the path could be printed.
	BrokenPipe = "broken pipe, unable to print file path"
	// PrintFailed indicates the path could not be written to stdout.
	PrintFailed = "unable to print file path"
)
