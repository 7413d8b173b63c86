package cmd

import "time"

// Config carries all runtime settings, populated from the environment in main.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// MaxShiftDuration bounds how long a shift may stay open before the
	// stale shift sweep closes it.
	MaxShiftDuration time.Duration
}
