package app

// Console is the terminal surface a session talks to.
type Console interface {
	// Clear clears the screen before a state is redrawn.
	Clear()
	// Println prints a line of plain text.
	Println(a ...interface{})
	// Printf prints formatted plain text.
	Printf(format string, a ...interface{})
	// Success prints a success message.
	Success(msg string)
	// Warn prints a warning message.
	Warn(msg string)
	// Error prints an error message.
	Error(msg string)
	// Ask reads one line of input. It returns io.EOF when input is exhausted.
	Ask(message string) (string, error)
}
