package main

// Exit codes shared by all commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Corpus location missing or unreadable
	ExitDataError   = 3 // Malformed paper data (lint errors)
)
