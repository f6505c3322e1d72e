package domain

import "time"

// StorageStats describes the data file behind the board.
type StorageStats struct {
	Path       string
	Exists     bool
	Memos      int
	SizeBytes  int64
	ModifiedAt time.Time
	// Quarantines counts corrupt files moved aside since the process started.
	Quarantines    int
	LastQuarantine string
}
