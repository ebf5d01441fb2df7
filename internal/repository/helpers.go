package repository

import "time"

// nowUTC returns the current UTC time formatted for storage.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
