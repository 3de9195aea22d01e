package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration.  Each field corresponds to an
// environment variable.  The server itself refuses to start without
// APP_ENV and APP_PORT; the spreadsheet and form identifiers are
// deliberately optional — a missing identifier disables the operations
// that need it (they fail fast with repository.ErrNotConfigured) without
// taking the rest of the dashboard down.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on

	ReservationSheetID string // normal reservation response sheet
	EventSheetID       string // event master sheet
	ChangeSheetID      string // change request response sheet
	OpinionSheetID     string // opinion box response sheet

	ReservationFormID string // form whose date question gets resynced
	DateQuestion      string // title of the date choice question on that form

	WeeksAhead    int    // planning horizon for offered dates
	MatchStrategy string // change request matching: "loose" or "strict"
}

// Load reads configuration from the environment.  Required variables are
// enforced by must() and missing values cause the program to exit with a
// fatal log message.
func Load() Config {
	return Config{
		Env:  must("APP_ENV"),
		Port: must("APP_PORT"),

		ReservationSheetID: os.Getenv("RESERVATION_SHEET_ID"),
		EventSheetID:       os.Getenv("EVENT_SHEET_ID"),
		ChangeSheetID:      os.Getenv("CHANGE_REQUEST_SHEET_ID"),
		OpinionSheetID:     os.Getenv("OPINION_SHEET_ID"),

		ReservationFormID: os.Getenv("RESERVATION_FORM_ID"),
		DateQuestion:      getenv("DATE_QUESTION_TITLE", "ご希望の日にち"),

		WeeksAhead:    getenvInt("WEEKS_AHEAD", 8),
		MatchStrategy: getenv("MATCH_STRATEGY", "loose"),
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

// getenv returns the variable's value or a default when unset.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getenvInt is like getenv but parses the value as an integer, falling
// back to the default on parse failure.
func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid int for %s: %q, using %d", key, v, def)
		return def
	}
	return n
}
