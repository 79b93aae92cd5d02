package constants

import "time"

// DIP API endpoint.
const (
	// DefaultBaseURL is the public DIP API endpoint.
	DefaultBaseURL = "https://search.dip.bundestag.de/api/v1"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0o750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0o600
)

// HTTP and network timeouts.
const (
	// DefaultRequestTimeout is the per-request timeout. The DIP service
	// answers quickly; slow responses are treated as failures.
	DefaultRequestTimeout = 5 * time.Second
)

// Retry limits. Retries are disabled by default; failures propagate to the
// caller.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination and display limits.
const (
	// DefaultMaxPages bounds CLI listings so a bare `dip list` does not walk
	// the entire corpus.
	DefaultMaxPages = 1

	// TitleDisplayLength is the length titles are truncated to in tables.
	TitleDisplayLength = 80
)

// Watch defaults.
const (
	// DefaultWatchInterval is the polling interval for the watch command.
	DefaultWatchInterval = 5 * time.Minute

	// DefaultWatchSubject is the NATS subject prefix for published documents.
	DefaultWatchSubject = "dip.documents"
)

// Output format constants.
const (
	// FormatTable for tabular output.
	FormatTable = "table"

	// FormatJSON for JSON output.
	FormatJSON = "json"

	// FormatYAML for YAML output.
	FormatYAML = "yaml"
)
