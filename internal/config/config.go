package config

// Config is the explicit configuration threaded into every service. It is
// populated once from CLI flags (see pkg/clicfg) and never mutated afterwards.
type Config struct {
	// ArchiveRoot is the directory holding one subdirectory per author.
	ArchiveRoot string `flag:"archive-root"`

	// DatabaseURL selects the store: a postgres DSN, or a sqlite file path.
	DatabaseURL string `flag:"database-url"`

	MetricsAddr string `flag:"metrics-addr"`
	LogLevel    string `flag:"log-level"`

	ForceRescan bool `flag:"force-rescan"`

	// SweepConcurrency bounds how many authors a sweep syncs at once.
	SweepConcurrency int `flag:"concurrency"`

	// ScanIntervalHours is the period of the background sweep in `watch`.
	ScanIntervalHours int `flag:"scan-interval"`

	// PageSize is the number of posts per page returned by listings.
	PageSize int `flag:"page-size"`
}
