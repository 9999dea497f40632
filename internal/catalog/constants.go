package catalog

// File layout keys
const (
	KeyJobs          = "jobs"
	KeySalaryDelay   = "salarydelay"
	KeySalary        = "salary"
	KeyDisableSalary = "disablesalary"
	KeyExpReward     = "expreward"
	KeyPay           = "pay"
)

// DefaultFileName is the catalog file created inside the config directory
const DefaultFileName = "jobs.yaml"

// FilePermissions is the mode used when writing the catalog file
const FilePermissions = 0o644

// Log messages
const (
	LogMsgCatalogSeeded       = "Job catalog not found, seeded defaults"
	LogMsgCatalogLoaded       = "Job catalog loaded"
	LogMsgCatalogReloaded     = "Job catalog reloaded"
	LogMsgCatalogSeedFailed   = "Failed to persist seeded job catalog"
	LogMsgUnknownJobKey       = "Ignoring unknown key in job section"
	LogMsgCatalogReloadFailed = "Job catalog reload failed, keeping previous catalog"
)

// Error messages
const (
	ErrMsgReadCatalog    = "failed to read job catalog"
	ErrMsgWriteCatalog   = "failed to write job catalog"
	ErrMsgParseCatalog   = "failed to parse job catalog"
	ErrMsgEncodeCatalog  = "failed to encode job catalog"
	ErrMsgExpectedMap    = "expected a mapping"
	ErrMsgExpectedScalar = "expected a scalar"
	ErrMsgNegativeValue  = "must not be negative"
)
