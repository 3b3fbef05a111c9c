package console

import (
	"fmt"
	"io"

	"cricstats/internal/models"
	"cricstats/internal/validation"
)

func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// readValid re-prompts until parse accepts the line. Only a read error ends
// the loop early.
func readValid[T any](s *Shell, prompt, icon string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(s.out, "%s %s\n", icon, validation.Reason(err))
	}
}

func (s *Shell) readBoundedInteger(prompt string, min, max int) (int, error) {
	return readValid(s, prompt, "🚫", func(in string) (int, error) {
		return validation.BoundedInt(in, min, max)
	})
}

func (s *Shell) readBoundedReal(prompt string, min, max float64) (float64, error) {
	return readValid(s, prompt, "🚫", func(in string) (float64, error) {
		return validation.BoundedFloat(in, min, max)
	})
}

func (s *Shell) readNonEmptyName(prompt string, maxLen int) (string, error) {
	return readValid(s, prompt, "❌", func(in string) (string, error) {
		return validation.Name(in, maxLen)
	})
}

func (s *Shell) readResultCode(prompt string) (models.Result, error) {
	return readValid(s, prompt, "🚫", validation.ResultCode)
}
