// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Script Evaluation - these keys govern the non-interactive eval mode.
const (
	EvalFormat = "eval.format"
)

// Interactive Playground - these keys configure the bubbletea playground session.
const (
	PlayPrompt         = "play.prompt"
	PlayTranscriptSize = "play.transcript_size"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern general CLI behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
