package main

// Defaults for CLI commands.
const (
	DefaultTokenSubject = "mdchat-client"
	// DefaultReasonWidth wraps verdict reasons in plain-text output.
	DefaultReasonWidth = 80
)
