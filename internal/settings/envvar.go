package settings

// Environment variable names for confkit.
const (
	EnvDir     = "CONFKIT_DIR" // Path to the .confkit directory
	EnvJSON    = "CK_JSON"     // Enable JSON output ("1" or "true")
	EnvColor   = "CK_COLOR"    // Color mode override ("auto", "always" or "never")
	EnvNoColor = "NO_COLOR"    // Disable colored output when set
)
