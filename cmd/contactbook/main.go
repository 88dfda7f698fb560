package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/alecthomas/kong"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/contacts"
	"github.com/tartampluch/go-contactbook/internal/i18n"
	"github.com/tartampluch/go-contactbook/internal/seed"
)

// CLI is the top-level command structure.
type CLI struct {
	Version kong.VersionFlag `help:"${help_version}" short:"V"`
	Debug   bool             `help:"${help_debug}"`
	Seed    string           `help:"${help_seed}" type:"path"`
	Lang    string           `help:"${help_lang}" default:"${default_lang}" enum:"en,uk"`

	List     ListCmd     `cmd:"" help:"${cmd_list}" default:"1"`
	Show     ShowCmd     `cmd:"" help:"${cmd_show}"`
	Upcoming UpcomingCmd `cmd:"" help:"${cmd_upcoming}"`
	VCard    VCardCmd    `cmd:"" name:"vcard" help:"${cmd_vcard}"`
	Calendar CalendarCmd `cmd:"" help:"${cmd_calendar}"`
	Demo     DemoCmd     `cmd:"" help:"${cmd_demo}"`
}

// appContext carries the dependencies shared by every command.
type appContext struct {
	out   io.Writer
	tr    *i18n.Translator
	clock contacts.Clock
	seed  string
}

// loadBook builds the book from the seed file, or an empty book without one.
func (a *appContext) loadBook() (*contacts.AddressBook, error) {
	if a.seed == "" {
		return contacts.NewAddressBook(), nil
	}
	return seed.Load(a.seed, contacts.WithClock(a.clock))
}

// main is the application entry point.
// It delegates to runMain so deferred calls run before os.Exit.
func main() {
	os.Exit(runMain(os.Args[1:], os.Stdout, os.Stderr))
}

// runMain parses arguments, configures logging and runs the selected
// command. It returns the process exit code.
func runMain(args []string, stdout, stderr io.Writer, opts ...kong.Option) int {
	var cli CLI
	parser, err := newParser(&cli, stdout, stderr, opts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return config.ExitCodeError
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return config.ExitCodeError
	}

	setupLogging(cli.Debug, stderr)
	logStartupInfo()

	app := &appContext{
		out:   stdout,
		tr:    i18n.New(cli.Lang),
		clock: contacts.RealClock{},
		seed:  cli.Seed,
	}

	if err := kctx.Run(app); err != nil {
		var shown reportedError
		if errors.As(err, &shown) {
			slog.Debug(config.ErrAppFailed,
				config.LogKeyComponent, config.CompMain,
				config.LogKeyError, err,
			)
			return config.ExitCodeError
		}
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		fmt.Fprintln(stderr, err)
		return config.ExitCodeError
	}
	return config.ExitCodeSuccess
}

func newParser(cli *CLI, stdout, stderr io.Writer, opts ...kong.Option) (*kong.Kong, error) {
	base := []kong.Option{
		kong.Name(config.AppName),
		kong.Description(config.AppDescription),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Vars{
			"version":          fmt.Sprintf(config.MsgVersionOutput, config.AppName, config.Version, config.Commit, config.Date),
			"help_version":     config.FlagDescVersion,
			"help_debug":       config.FlagDescDebug,
			"help_seed":        config.FlagDescSeed,
			"help_lang":        config.FlagDescLang,
			"help_page_size":   config.FlagDescPageSize,
			"help_days":        config.FlagDescDays,
			"help_name":        config.FlagDescName,
			"cmd_list":         config.CmdDescList,
			"cmd_show":         config.CmdDescShow,
			"cmd_upcoming":     config.CmdDescUpcoming,
			"cmd_vcard":        config.CmdDescVCard,
			"cmd_calendar":     config.CmdDescCalendar,
			"cmd_demo":         config.CmdDescDemo,
			"default_lang":     config.DefaultLanguage,
			"default_page":     fmt.Sprint(config.DefaultPageSize),
			"default_upcoming": fmt.Sprint(config.DefaultUpcomingDays),
		},
	}
	return kong.New(cli, append(base, opts...)...)
}

// setupLogging installs a JSON slog handler on w.
func setupLogging(debugMode bool, w io.Writer) {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, opts)))
}

// logStartupInfo logs build details useful for debugging.
func logStartupInfo() {
	slog.Debug(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
	)
}
