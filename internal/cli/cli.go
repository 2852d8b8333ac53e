// Package cli is worklog's command line: the interactive log, append mode
// and a few read-only subcommands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gabrielfornes/worklog/internal/config"
	"github.com/gabrielfornes/worklog/internal/editor"
	"github.com/gabrielfornes/worklog/internal/session"
	"github.com/gabrielfornes/worklog/internal/storage"
	"github.com/gabrielfornes/worklog/internal/tui"
	"github.com/gabrielfornes/worklog/internal/worklog"
)

// ErrNothingToLog is returned by append mode when every argument is blank.
var ErrNothingToLog = errors.New("nothing to log")

// app is the state shared by every command once the pre-run has resolved
// the configuration.
type app struct {
	v        *viper.Viper
	loc      config.Location
	settings config.Settings
	store    *storage.Store
	debugLog *os.File
	now      func() time.Time
}

// New returns the root command.
func New() *cobra.Command {
	return newRoot(&app{v: config.NewViper(), now: time.Now})
}

func newRoot(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worklog [text...]",
		Short: "Log your work from the terminal.",
		Long: `Without arguments worklog opens the interactive log.
With arguments it records them as a new entry and exits.
Text that starts with a subcommand name goes after "--".`,
		Example: `
worklog
worklog fixed the flaky upload test
worklog --split "standup" "code review"
worklog -- list of follow-ups for friday
`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func() error {
				if len(args) == 0 {
					return a.interactive()
				}
				return a.record(cmd.OutOrStdout(), args)
			})
		},
	}

	flags := cmd.PersistentFlags()
	flags.Bool(config.KeySplit, false, "record one entry per argument instead of joining them")
	flags.String(config.KeyFile, config.DefaultFile, "name of the log file inside the configuration directory")
	flags.Bool(config.KeyDebug, false, "write a debug log next to the data file")
	if err := bindFlags(a.v, flags, config.KeySplit, config.KeyFile, config.KeyDebug); err != nil {
		panic(err)
	}

	addList(cmd, a)
	addPath(cmd, a)
	return cmd
}

// bindFlags makes each flag a source for the viper key of the same name.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys ...string) error {
	for _, k := range keys {
		f := flags.Lookup(k)
		if f == nil {
			return fmt.Errorf("could not bind %q: no such flag", k)
		}
		if err := v.BindPFlag(k, f); err != nil {
			return fmt.Errorf("could not bind %q: %w", k, err)
		}
	}
	return nil
}

// setup resolves the configuration directory once and threads it into
// everything else.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	loc, err := config.Resolve(config.AppName)
	if err != nil {
		return err
	}
	settings, err := config.LoadSettings(a.v, loc)
	if err != nil {
		return err
	}
	a.loc = loc
	a.settings = settings
	a.store = storage.New(settings.DataPath(loc))

	if !settings.Debug {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := tea.LogToFile(loc.Path("debug.log"), config.AppName)
	if err != nil {
		return fmt.Errorf("could not open debug log: %w", err)
	}
	a.debugLog = f
	log.Printf("using %s", a.store.Path)
	return nil
}

// run calls fn and then closes the debug log, whether or not fn failed.
func (a *app) run(fn func() error) error {
	err := fn()
	if cerr := a.teardown(); err == nil {
		err = cerr
	}
	return err
}

func (a *app) teardown() error {
	if a.debugLog == nil {
		return nil
	}
	err := a.debugLog.Close()
	a.debugLog = nil
	log.SetOutput(io.Discard)
	return err
}

// interactive runs the log UI until the user quits or a save fails.
func (a *app) interactive() error {
	s := session.New(a.store.Load(), a.store)
	p := tea.NewProgram(tui.NewModel(s), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

// record stores args without entering the UI.
func (a *app) record(out io.Writer, args []string) error {
	entries := buildEntries(args, a.settings.Split, a.now())
	if len(entries) == 0 {
		return ErrNothingToLog
	}

	l := a.store.Load()
	for _, e := range entries {
		l.Add(e)
	}
	if err := a.store.Save(l); err != nil {
		return err
	}

	ok := color.New(color.FgGreen, color.Bold)
	faint := color.New(color.Faint)
	for _, e := range entries {
		fmt.Fprintf(out, "%s %s %s\n", ok.Sprint("logged"), e.Summary(), faint.Sprint(e.ID))
	}
	return nil
}

// buildEntries turns command line arguments into entries. Arguments are
// joined by single spaces unless split is set, in which case each becomes
// its own entry. Text that would be refused by the editor is dropped.
func buildEntries(args []string, split bool, now time.Time) []worklog.Entry {
	texts := args
	if !split {
		texts = []string{strings.Join(args, " ")}
	}

	var entries []worklog.Entry
	for _, text := range texts {
		b := editor.New(worklog.NewEntry(now))
		b.Insert(text)
		if !b.Committable() {
			continue
		}
		entries = append(entries, b.Entry())
	}
	return entries
}
