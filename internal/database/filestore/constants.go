package filestore

// Account file keys
const (
	KeyJob              = "job"
	KeyJobNotifications = "jobnotifications"
	KeyJobStats         = "jobstats"

	StatLevelSuffix = "Level"
	StatExpSuffix   = "Exp"

	BalanceKeySuffix = "-balance"
)

const (
	// DefaultFileName is the account file name inside the config directory
	DefaultFileName = "accounts.yaml"

	FilePermissions = 0o644
)

// Error messages
const (
	ErrMsgReadAccounts   = "failed to read account file"
	ErrMsgParseAccounts  = "failed to parse account file"
	ErrMsgWriteAccounts  = "failed to write account file"
	ErrMsgMalformedField = "malformed account field"
)
