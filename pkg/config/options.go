package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDwcaDir sets the unzipped Darwin Core Archive directory for
// scientific names (-dwca).
func OptDwcaDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("DwCA Directory", s) {
			c.Paths.DwcaDir = s
		}
	}
}

// OptIrmngDir sets the unzipped IRMNG homonym DwCA directory (-irmng).
func OptIrmngDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("IRMNG Directory", s) {
			c.Paths.IrmngDir = s
		}
	}
}

// OptCommonNameFile sets the tab-delimited vernacular name file
// (-common).
func OptCommonNameFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Common Name File", s) {
			c.Paths.CommonNameFile = s
		}
	}
}

// OptTargetDir sets the output directory for the search, vernacular,
// and irmng indexes (-target).
func OptTargetDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Target Directory", s) {
			c.Paths.TargetDir = s
		}
	}
}

// OptTmpDir sets the loading-index directory (-tmp).
func OptTmpDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Tmp Directory", s) {
			c.Paths.TmpDir = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for the
// ingestion pipeline. Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}
