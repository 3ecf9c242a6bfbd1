package llm

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// UsageRecord is one logged LLM request. Records live in a JSONL file next
// to the word store, one object per line, append-only.
type UsageRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	Provider     string    `json:"provider"`
	Model        string    `json:"model"`
	Purpose      string    `json:"purpose"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	LatencyMs    int64     `json:"latency_ms"`
	Success      bool      `json:"success"`
	Error        string    `json:"error,omitempty"`
}

// UsageLog appends and reads usage records. Safe for concurrent appends
// within one process.
type UsageLog struct {
	mu   sync.Mutex
	path string
}

// OpenUsageLog creates a usage log at path. The file is created lazily on
// first append.
func OpenUsageLog(path string) *UsageLog {
	return &UsageLog{path: path}
}

// Path returns the log file location.
func (l *UsageLog) Path() string {
	return l.path
}

// Append writes one record to the log.
func (l *UsageLog) Append(rec UsageRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode usage record: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open usage log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append usage record: %w", err)
	}
	return nil
}

// Tail returns the last n records, oldest first. n <= 0 returns everything.
// Lines that fail to decode are skipped rather than failing the read.
func (l *UsageLog) Tail(n int) ([]UsageRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open usage log: %w", err)
	}
	defer f.Close()

	var records []UsageRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		var rec UsageRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read usage log: %w", err)
	}

	if n > 0 && len(records) > n {
		records = records[len(records)-n:]
	}
	return records, nil
}
