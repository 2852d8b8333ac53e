package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gabrielfornes/worklog/internal/config"
	"github.com/gabrielfornes/worklog/internal/storage"
)

func withHome(t *testing.T) config.Location {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("APPDATA", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	loc, err := config.Resolve(config.AppName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return loc
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := New()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildEntries(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	joined := buildEntries([]string{"fixed", "the", "build"}, false, now)
	if len(joined) != 1 || joined[0].Content != "fixed the build" {
		t.Fatalf("expected one joined entry, got %+v", joined)
	}
	if !joined[0].Created.Equal(now) || !joined[0].Modified.Equal(now) {
		t.Fatalf("expected entry stamped at %v, got %+v", now, joined[0])
	}

	split := buildEntries([]string{"standup", "\t", "code review"}, true, now)
	if len(split) != 2 || split[0].Content != "standup" || split[1].Content != "code review" {
		t.Fatalf("expected two entries with the blank one dropped, got %+v", split)
	}
	if split[0].ID == split[1].ID {
		t.Fatalf("expected distinct ids")
	}

	if got := buildEntries([]string{"\n"}, false, now); len(got) != 0 {
		t.Fatalf("expected no entries, got %+v", got)
	}
}

func TestAppendJoinsArguments(t *testing.T) {
	loc := withHome(t)

	out, err := run(t, "fixed", "the", "flaky", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "logged") || !strings.Contains(out, "fixed the flaky test") {
		t.Fatalf("unexpected output %q", out)
	}

	entries := storage.New(loc.Path(config.DefaultFile)).Load().Entries()
	if len(entries) != 1 || entries[0].Content != "fixed the flaky test" {
		t.Fatalf("expected one stored entry, got %+v", entries)
	}
}

func TestAppendSplit(t *testing.T) {
	loc := withHome(t)

	if _, err := run(t, "--split", "standup", "review"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := storage.New(loc.Path(config.DefaultFile)).Load().Entries()
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %+v", entries)
	}
}

func TestAppendSplitFromEnvironment(t *testing.T) {
	loc := withHome(t)
	t.Setenv("WORKLOG_SPLIT", "true")

	if _, err := run(t, "one", "two", "three"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len(storage.New(loc.Path(config.DefaultFile)).Load().Entries()); n != 3 {
		t.Fatalf("expected three entries, got %d", n)
	}
}

func TestAppendKeepsExistingEntries(t *testing.T) {
	loc := withHome(t)

	if _, err := run(t, "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := run(t, "second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := storage.New(loc.Path(config.DefaultFile)).Load().Entries()
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %+v", entries)
	}
	if entries[0].Created.Before(entries[1].Created) {
		t.Fatalf("expected newest entry first, got %+v", entries)
	}
}

func TestAppendRejectsBlankText(t *testing.T) {
	withHome(t)

	if _, err := run(t, "\t"); !errors.Is(err, ErrNothingToLog) {
		t.Fatalf("expected ErrNothingToLog, got %v", err)
	}
}

func TestFileFlag(t *testing.T) {
	loc := withHome(t)

	if _, err := run(t, "--file", "work.json", "elsewhere"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len(storage.New(loc.Path("work.json")).Load().Entries()); n != 1 {
		t.Fatalf("expected the entry in work.json, got %d entries", n)
	}
	if n := len(storage.New(loc.Path(config.DefaultFile)).Load().Entries()); n != 0 {
		t.Fatalf("expected the default log untouched, got %d entries", n)
	}
}

func TestFileFlagRejectsPaths(t *testing.T) {
	withHome(t)

	if _, err := run(t, "--file", filepath.Join("..", "log.json"), "text"); err == nil {
		t.Fatalf("expected an error for a file outside the configuration directory")
	}
}

func TestPath(t *testing.T) {
	loc := withHome(t)

	out, err := run(t, "path")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := loc.Path(config.DefaultFile) + "\n"; out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestList(t *testing.T) {
	withHome(t)

	out, err := run(t, "list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "No entries yet.") {
		t.Fatalf("expected empty message, got %q", out)
	}

	if _, err := run(t, "wrote the migration"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err = run(t, "list", "--id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Log", "Modified", "Created", "ID", "wrote the migration"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestAppendSingleWord(t *testing.T) {
	loc := withHome(t)

	if _, err := run(t, "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := storage.New(loc.Path(config.DefaultFile)).Load().Entries()
	if len(entries) != 1 || entries[0].Content != "hello" {
		t.Fatalf("expected one entry \"hello\", got %+v", entries)
	}
}

func TestAppendTextStartingWithSubcommand(t *testing.T) {
	loc := withHome(t)

	if _, err := run(t, "--", "list", "of", "follow-ups"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries := storage.New(loc.Path(config.DefaultFile)).Load().Entries()
	if len(entries) != 1 || entries[0].Content != "list of follow-ups" {
		t.Fatalf("expected one entry \"list of follow-ups\", got %+v", entries)
	}
}

func TestDebugLogClosedWhenSaveFails(t *testing.T) {
	loc := withHome(t)
	// A directory in place of the data file makes the final rename fail.
	if err := os.MkdirAll(loc.Path(config.DefaultFile), 0755); err != nil {
		t.Fatal(err)
	}

	a := &app{v: config.NewViper(), now: time.Now}
	cmd := newRoot(a)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--debug", "unsaved"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected the save to fail")
	}
	if a.debugLog != nil {
		t.Fatalf("expected the debug log to be closed after a failed command")
	}
	if _, err := os.Stat(loc.Path("debug.log")); err != nil {
		t.Fatalf("expected a debug log file: %v", err)
	}
}

func TestBindFlagsUnknownFlag(t *testing.T) {
	flags := pflag.NewFlagSet("worklog", pflag.ContinueOnError)
	flags.Bool(config.KeySplit, false, "")

	if err := bindFlags(viper.New(), flags, config.KeySplit); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := bindFlags(viper.New(), flags, config.KeySplit, "missing"); err == nil {
		t.Fatalf("expected an error for a flag that does not exist")
	}
}
