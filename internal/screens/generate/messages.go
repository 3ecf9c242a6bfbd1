package generate

import (
	"time"

	"github.com/abhisek/wordmaster/internal/word"
)

// batchReadyMsg is sent when a word batch has been generated and persisted.
type batchReadyMsg struct {
	Words []word.Word
	Err   error
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time
