package models

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the minute-precision local time written at the start of
// every log line.
const TimestampLayout = "2006-01-02 15:04"

const (
	TeamCode = "SL"

	KeyRuns          = "Runs"
	KeyOvers         = "Overs"
	KeyResult        = "Result"
	KeyPlayerOfMatch = "PotM"

	headerSeparator = "|"
	fieldSeparator  = ","
	tagSeparator    = "="
)

// layoutFields matches the start of the field section exactly as FormatLine
// writes it. It is longer than MaxNameLength, so no valid opponent can contain
// it.
var layoutFields = regexp.MustCompile(`\| Runs=\d+, Overs=[0-9.]+, Result=[A-Za-z], PotM=`)

var (
	ErrMalformedLine = errors.New("malformed match line")
	ErrMissingField  = errors.New("missing field")
)

// FormatLine renders one record in the match log layout:
//
//	2024-03-01 19:45: SL vs India | Runs=165, Overs=20, Result=W, PotM=Mendis
func FormatLine(m MatchRecord) string {
	return fmt.Sprintf("%s: %s vs %s | %s=%d, %s=%s, %s=%s, %s=%s\n",
		m.Timestamp.Format(TimestampLayout), TeamCode, m.Opponent,
		KeyRuns, m.Runs,
		KeyOvers, strconv.FormatFloat(m.Overs, 'f', -1, 64),
		KeyResult, m.Result.Code(),
		KeyPlayerOfMatch, m.PlayerOfMatch)
}

// LineFields holds the tagged values of one log line. Fields are looked up by
// name, so the order they were written in does not matter.
type LineFields struct {
	header string
	tags   map[string]string
}

// ParseLine splits a log line into its header and its key=value fields.
// A line in the FormatLine layout is split at the first "| Runs=..., PotM="
// run, so either name may contain "|", "," or "=". Other lines fall back to the
// last "|" before the last PotM tag. PotM is always read to the end of the
// line.
func ParseLine(line string) (LineFields, error) {
	line = strings.TrimRight(line, "\r\n")

	var pipe int
	if loc := layoutFields.FindStringIndex(line); loc != nil {
		pipe = loc[0]
	} else {
		end := len(line)
		if i := strings.LastIndex(line, KeyPlayerOfMatch+tagSeparator); i >= 0 {
			end = i
		}
		// Without a header the whole line is treated as the field section.
		pipe = strings.LastIndex(line[:end], headerSeparator)
	}

	fields := LineFields{tags: make(map[string]string)}
	if pipe >= 0 {
		fields.header = strings.TrimSpace(line[:pipe])
	}

	section := line[pipe+1:]
	if i := strings.Index(section, KeyPlayerOfMatch+tagSeparator); i >= 0 {
		fields.tags[KeyPlayerOfMatch] = strings.TrimSpace(section[i+len(KeyPlayerOfMatch)+len(tagSeparator):])
		section = section[:i]
	}

	for _, part := range strings.Split(section, fieldSeparator) {
		key, value, ok := strings.Cut(part, tagSeparator)
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, seen := fields.tags[key]; !seen {
			fields.tags[key] = strings.TrimSpace(value)
		}
	}

	if len(fields.tags) == 0 {
		return LineFields{}, fmt.Errorf("%w: no tagged fields", ErrMalformedLine)
	}
	return fields, nil
}

func (f LineFields) require(key string) (string, error) {
	v, ok := f.tags[key]
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	return v, nil
}

func (f LineFields) Runs() (int, error) {
	v, err := f.require(KeyRuns)
	if err != nil {
		return 0, err
	}
	runs, err := strconv.Atoi(v)
	if err != nil || runs < 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrMalformedLine, KeyRuns, v)
	}
	return runs, nil
}

func (f LineFields) Overs() (float64, error) {
	v, err := f.require(KeyOvers)
	if err != nil {
		return 0, err
	}
	overs, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(overs) || math.IsInf(overs, 0) || overs <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrMalformedLine, KeyOvers, v)
	}
	return overs, nil
}

func (f LineFields) Result() (Result, error) {
	v, err := f.require(KeyResult)
	if err != nil {
		return ResultUnknown, err
	}
	r, ok := ResultFromCode(strings.ToUpper(v))
	if !ok {
		return ResultUnknown, fmt.Errorf("%w: %s=%q", ErrMalformedLine, KeyResult, v)
	}
	return r, nil
}

func (f LineFields) PlayerOfMatch() (string, error) {
	return f.require(KeyPlayerOfMatch)
}

func (f LineFields) Timestamp() (time.Time, error) {
	if len(f.header) < len(TimestampLayout) {
		return time.Time{}, fmt.Errorf("%w: short header", ErrMalformedLine)
	}
	ts, err := time.ParseInLocation(TimestampLayout, f.header[:len(TimestampLayout)], time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad timestamp: %v", ErrMalformedLine, err)
	}
	return ts, nil
}

func (f LineFields) Opponent() (string, error) {
	_, opponent, ok := strings.Cut(f.header, ": "+TeamCode+" vs ")
	opponent = strings.TrimSpace(opponent)
	if !ok || opponent == "" {
		return "", fmt.Errorf("%w: opponent", ErrMissingField)
	}
	return opponent, nil
}

// ParseRecord is the strict counterpart of ParseLine: every field must be
// present and within bounds.
func ParseRecord(line string) (MatchRecord, error) {
	f, err := ParseLine(line)
	if err != nil {
		return MatchRecord{}, err
	}

	var m MatchRecord
	if m.Timestamp, err = f.Timestamp(); err != nil {
		return MatchRecord{}, err
	}
	if m.Opponent, err = f.Opponent(); err != nil {
		return MatchRecord{}, err
	}
	if m.Runs, err = f.Runs(); err != nil {
		return MatchRecord{}, err
	}
	if m.Overs, err = f.Overs(); err != nil {
		return MatchRecord{}, err
	}
	if m.Result, err = f.Result(); err != nil {
		return MatchRecord{}, err
	}
	if m.PlayerOfMatch, err = f.PlayerOfMatch(); err != nil {
		return MatchRecord{}, err
	}
	if err := m.Validate(); err != nil {
		return MatchRecord{}, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	return m, nil
}
