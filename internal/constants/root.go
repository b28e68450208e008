package constants

const (
	AppName            = "redchain"
	Version            = "v1.0.0"
	DefaultKeyringUser = "coach-api-key"
	DefaultConfigPath  = "~/.config/redchain/redchain.json"

	// DateFormat is the standard calendar-day key format used throughout the
	// application (YYYY-MM-DD, zero-padded, host-local timezone)
	DateFormat = "2006-01-02"

	// Game balance. Fixed, not user-editable.
	PointsPerCompletion = 500
	XPPerCompletion     = 100
	XPPerRank           = 1000
	MissPenalty         = 500

	// StreakWalkLimit bounds the backward day walk so streak computation
	// terminates even on pathological data (~10 years).
	StreakWalkLimit = 3650

	// RolloverInterval is how often the dashboard re-runs the day-boundary
	// check. Coarse on purpose: the check is idempotent, it only has to catch
	// each real calendar-day boundary at least once.
	RolloverIntervalSec = 10

	// PenaltyAlertSec is how long the transient penalty alert stays on screen.
	PenaltyAlertSec = 5

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "redchain-"

	// VaultFileName is the proof image vault database, kept next to the
	// GameState document.
	VaultFileName = "proof_vault.db"
)

// ResetPhrase gates the destructive full reset. It must be typed verbatim.
const ResetPhrase = "i am sure i want to reset all the progress and i know that this is unchaingable"
