package console

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cricstats/internal/application"
	"cricstats/internal/repository"
)

type nopLogger struct{}

func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Debug(string, ...interface{}) {}

type fixedCommentary string

func (c fixedCommentary) Pick() string { return string(c) }

func newSession(t *testing.T, input string) (*Shell, *bytes.Buffer, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matches.txt")
	repos, err := repository.NewRepository(&repository.Config{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	clock := func() time.Time { return time.Date(2024, 2, 29, 18, 30, 0, 0, time.Local) }
	svc := application.NewService(repos, fixedCommentary("This pitch favors batsmen!"), clock, nopLogger{})

	var out bytes.Buffer
	shell := NewShell(&Config{}, strings.NewReader(input), &out, svc.MatchService, nopLogger{})
	return shell, &out, path
}

func run(t *testing.T, shell *Shell) {
	t.Helper()
	if err := shell.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestExitFromMenu(t *testing.T) {
	shell, out, _ := newSession(t, "4\n")
	run(t, shell)

	for _, want := range []string{"1. Track New Match", "4. Exit", "Choice: ", "Goodbye!"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestMenuRejectsOutOfRange(t *testing.T) {
	shell, out, _ := newSession(t, "0\n5\nfour\n4\n")
	run(t, shell)

	if n := strings.Count(out.String(), "Invalid! Please enter a number between 1-4"); n != 3 {
		t.Errorf("got %d rejections, want 3:\n%s", n, out.String())
	}
}

func TestTrackMatchSession(t *testing.T) {
	input := strings.Join([]string{
		"1",
		"India",
		"145",
		"20",
		"Charith Asalanka",
		"w",
		"",
		"4",
	}, "\n") + "\n"
	shell, out, path := newSession(t, input)
	run(t, shell)

	for _, want := range []string{
		"📊 MATCH SUMMARY",
		"SL vs India",
		"Run Rate: 7.25",
		"Projected 20-over score: 145",
		"💥 Aggressive batting!",
		"Charith Asalanka is the hero today!",
		"This pitch favors batsmen!",
		"✅ Saved to " + path,
		"Total Matches Recorded: 1",
		"Press Enter to continue...",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "2024-02-29 18:30: SL vs India | Runs=145, Overs=20, Result=W, PotM=Charith Asalanka\n"
	if string(data) != want {
		t.Errorf("log = %q, want %q", data, want)
	}
}

func TestTrackMatchRepromptsInvalidInput(t *testing.T) {
	input := strings.Join([]string{
		"1",
		"   ",
		strings.Repeat("x", 31),
		"England",
		"-1",
		"301",
		"abc",
		"99",
		"0",
		"20.5",
		"19.2",
		"",
		"Pathirana",
		"win",
		"l",
		"",
		"4",
	}, "\n") + "\n"
	shell, out, path := newSession(t, input)
	run(t, shell)

	got := out.String()
	checks := map[string]int{
		"Name cannot be empty!":                        2,
		"Name too long (max 30 chars)":                 1,
		"Invalid! Please enter a number between 0-300": 3,
		"Must be between 0.1 and 20":                   2,
		"Enter W (Win), L (Lose) or D (Draw)":          1,
	}
	for msg, n := range checks {
		if c := strings.Count(got, msg); c != n {
			t.Errorf("%q shown %d times, want %d", msg, c, n)
		}
	}
	if !strings.Contains(got, "🛡️ Defensive strategy") {
		t.Error("expected defensive play style for 99 off 19.2")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Runs=99, Overs=19.2, Result=L, PotM=Pathirana") {
		t.Errorf("log = %q", data)
	}
}

func TestEmptyLogMessages(t *testing.T) {
	shell, out, _ := newSession(t, "2\n\n3\n\n4\n")
	run(t, shell)

	if !strings.Contains(out.String(), noMatchesMessage) {
		t.Error("history did not report no matches")
	}
	if !strings.Contains(out.String(), noStatsMessage) {
		t.Error("statistics did not report no matches")
	}
}

func TestHistoryAndStats(t *testing.T) {
	shell, out, path := newSession(t, "2\n\n3\n\n4\n")
	lines := []string{
		"2024-01-01 10:00: SL vs India | Runs=50, Overs=10.0, Result=W, PotM=A",
		"2024-01-02 10:00: SL vs England | Runs=30, Overs=5.0, Result=L, PotM=B",
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	run(t, shell)

	for _, want := range []string{
		"- " + lines[0],
		"- " + lines[1],
		"📈 Highest Score: 50",
		"📉 Average Runs: 40",
		"⚡ Best Run Rate: 6.00",
		"🏆 Win Rate: 50.0%",
		"💔 Loss Rate: 50.0%",
		"🤝 Draws: 0",
		"Recent Form (Last 5): WIN → LOSS",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestEndOfInputStopsCleanly(t *testing.T) {
	shell, out, path := newSession(t, "1\nIndia\n120\n")
	run(t, shell)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("half-entered match was saved")
	}
	if strings.Contains(out.String(), "Goodbye!") {
		t.Error("EOF should not go through the Exit state")
	}
}

func TestCancelledContext(t *testing.T) {
	shell, out, _ := newSession(t, "4\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := shell.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("cancelled session wrote output: %q", out.String())
	}
}
