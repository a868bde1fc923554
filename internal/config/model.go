package config

// Settings holds values read from a settings file. A nil field was not set in
// the file and leaves the corresponding default or flag untouched.
type Settings struct {
	RosterPath  *string
	LogLevel    *string
	LogFormat   *string
	ClearScreen *bool
}

// Setting keys, shared by the file format and the CLI flags that override them.
const (
	KeyRosterPath  = "roster_path"
	KeyLogLevel    = "log_level"
	KeyLogFormat   = "log_format"
	KeyClearScreen = "clear_screen"
)
