package styles

// Status symbols
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "•"
)

// StatusSuccess renders a green success line prefix with the message.
func StatusSuccess(msg string) string {
	return SuccessStyle.Render(SymbolSuccess) + " " + msg
}

// StatusError renders a red error line prefix with the message.
func StatusError(msg string) string {
	return ErrorStyle.Render(SymbolError) + " " + msg
}

// StatusWarning renders a yellow warning line prefix with the message.
func StatusWarning(msg string) string {
	return WarningStyle.Render(SymbolWarning) + " " + msg
}

// StatusInfo renders a muted info line prefix with the message.
func StatusInfo(msg string) string {
	return InfoStyle.Render(SymbolInfo) + " " + msg
}
