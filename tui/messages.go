package tui

import (
	"time"

	"github.com/moyu-x/organized-file/internal"
)

type countFilesMsg struct {
	total int
}

type progressMsg internal.ProgressUpdate

type organizeCompleteMsg struct {
	stats *internal.RunStats
}

type errMsg error

type spinnerTickMsg time.Time
