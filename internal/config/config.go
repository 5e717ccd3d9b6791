package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "time"    // time expresses the fetch timeout
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  CronSecret may be empty; in that case the
// availability trigger endpoint only accepts requests carrying the
// trusted-scheduler marker header.
type Config struct {
    Env              string        // application environment (e.g. "dev", "prod")
    Port             string        // HTTP port to listen on
    CronSecret       string        // shared secret for the availability trigger endpoint
    FetchTimeout     time.Duration // per-booking-page fetch timeout
    CheckSchedule    string        // cron spec for the in-process availability checker
    SchedulerEnabled bool          // run the in-process scheduler; disable when an external cron calls the trigger endpoint
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message; optional values fall
// back to their defaults.
func Load() Config {
    return Config{
        Env:              must("APP_ENV"),  // environment (dev/test/prod)
        Port:             must("APP_PORT"), // port to bind the HTTP server
        CronSecret:       os.Getenv("CRON_SECRET"),
        FetchTimeout:     envDurMs("FETCH_TIMEOUT_MS", 10000),
        CheckSchedule:    envStr("CHECK_SCHEDULE", "@every 15m"),
        SchedulerEnabled: envBool("SCHEDULER_ENABLED", true),
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// envDurMs reads an integer number of milliseconds and returns it as a
// duration, falling back to the default on absence or parse failure.
func envDurMs(key string, defMs int) time.Duration {
    if v := os.Getenv(key); v != "" {
        if n, err := strconv.Atoi(v); err == nil && n > 0 {
            return time.Duration(n) * time.Millisecond
        }
    }
    return time.Duration(defMs) * time.Millisecond
}
