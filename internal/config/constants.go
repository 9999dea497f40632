package config

// File names under ConfigDir
const (
	CatalogFileName  = "jobs.yaml"
	AccountsFileName = "accounts.yaml"
	DeadLetterFile   = "deadletter.jsonl"
)

// Store drivers
const (
	StoreDriverFile     = "file"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

// Presence backends
const (
	PresenceMemory = "memory"
	PresenceRedis  = "redis"
)

// Allowed log settings
var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
	validDrivers    = []string{StoreDriverFile, StoreDriverSQLite, StoreDriverPostgres}
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
	ExampleDBPassword = "change_this_secure_password"
)
