package cli

const (
	FlagHome     = "home"
	FlagLogLevel = "log-level"
	FlagIndent   = "indent"
	FlagCompact  = "compact"
	FlagMaxDepth = "max-depth"
	FlagHex      = "hex"
)
