package repository

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cricstats/internal/models"
)

type Config struct {
	Path string `env:"MATCH_LOG_PATH" envDefault:"matches.txt"`
}

const (
	logFileMode  = 0o644
	maxLineBytes = 1024 * 1024
)

// MatchFile is the append-only match log. One record per line, oldest first.
type MatchFile struct {
	path string
}

func NewMatchFile(cfg *Config) (*MatchFile, error) {
	path := cfg.Path
	if path == "" {
		path = "matches.txt"
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve match log path: %w", err)
	}
	return &MatchFile{path: abs}, nil
}

func (r *MatchFile) Path() string {
	return r.path
}

// Append writes one complete line. If an earlier write was cut short the
// partial line is terminated first so the new record starts on its own line.
func (r *MatchFile) Append(record models.MatchRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	if dir := filepath.Dir(r.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteFailed, err)
		}
	}

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_RDWR, logFileMode)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	defer f.Close()

	line := models.FormatLine(record)
	unterminated, err := endsWithoutNewline(f)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if unterminated {
		line = "\n" + line
	}

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

func endsWithoutNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return last[0] != '\n', nil
}

// LoadAll returns the raw log lines, skipping blank ones. A missing or empty
// log reports ErrNoData.
func (r *MatchFile) LoadAll() ([]string, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("failed to open match log: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read match log: %w", err)
	}

	if len(lines) == 0 {
		return nil, ErrNoData
	}
	return lines, nil
}

func (r *MatchFile) Count() (int, error) {
	lines, err := r.LoadAll()
	if errors.Is(err, ErrNoData) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}
