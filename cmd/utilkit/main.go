// Command utilkit runs the utility operations from the command line.
//
// Usage:
//
//	utilkit [-config path] [-log-level level] <command> [args]
//
// Checks (email, json) print true or false and exit 1 when false. Operation
// failures exit 1 and usage errors exit 2.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/kbukum/utilkit/bootstrap"
	"github.com/kbukum/utilkit/config"
	"github.com/kbukum/utilkit/logger"
	"github.com/kbukum/utilkit/util"
	"github.com/kbukum/utilkit/version"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

const usage = `usage: utilkit [-config path] [-log-level level] <command> [args]

commands:
  uuid [-seeded]                      print a version 4 UUID
  random [-n length] [-letters] [-numbers]
                                      print a random token
  base64 <text>                       base64-encode the UTF-8 bytes of text
  unbase64 <text>                     decode base64 text
  email <address>                     check an email address
  json <text>                         check that text is JSON
  datauri <uri>                       decode a data URI and print its type, size and payload
  map [-m key=value]... <text>        apply replacements until nothing changes
  strip-tags <text>                   remove HTML markup
  strip-alnum <text>                  keep only ASCII letters and digits
  version                             print build information
`

type command struct {
	name string
	run  func(app *bootstrap.App, args []string, stdout io.Writer) (int, error)
}

var commands = []command{
	{"uuid", runUUID},
	{"random", runRandom},
	{"base64", runBase64},
	{"unbase64", runUnbase64},
	{"email", runEmail},
	{"json", runJSON},
	{"datauri", runDataURI},
	{"map", runMap},
	{"strip-tags", runStripTags},
	{"strip-alnum", runStripAlnum},
}

// usageError marks failures that exit with exitUsage.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("utilkit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	configPath := fs.String("config", "", "path to a config file")
	logLevel := fs.String("log-level", "", "override logging.level")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return exitUsage
	}
	name, cmdArgs := rest[0], rest[1:]

	if name == "version" {
		fmt.Fprintln(stdout, version.Get().String())
		return exitOK
	}

	cmd, ok := findCommand(name)
	if !ok {
		fmt.Fprintf(stderr, "utilkit: unknown command %q\n", name)
		fs.Usage()
		return exitUsage
	}

	cfg, err := loadConfig(*configPath, *logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "utilkit: %v\n", err)
		return exitUsage
	}

	base := logger.NewWithWriter(&cfg.Logging, stderr, cfg.Name)
	logger.SetGlobalLogger(base)
	logger.RegisterDefaults("config", "di")
	log := base.WithComponent("cli")
	app, err := bootstrap.NewApp(cfg, bootstrap.WithLogger(base))
	if err != nil {
		fmt.Fprintf(stderr, "utilkit: %v\n", err)
		return exitUsage
	}

	code := exitOK
	err = app.RunTask(context.Background(), func(_ context.Context, a *bootstrap.App) error {
		var runErr error
		code, runErr = cmd.run(a, cmdArgs, stdout)
		return runErr
	})
	if err != nil {
		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprintf(stderr, "utilkit %s: %s\n", name, ue.msg)
			return exitUsage
		}
		log.Error("command failed", logger.ErrorFields(name, err))
		return exitFail
	}
	return code
}

func findCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func loadConfig(path, level string) (*config.Config, error) {
	var opts []config.LoaderOption
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		opts = append(opts, config.WithConfigFile(path))
	}

	cfg, err := config.Load(config.DefaultServiceName, opts...)
	if err != nil {
		return nil, err
	}
	if level != "" {
		cfg.Logging.Level = level
		if err := cfg.Logging.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// oneArg returns the single positional argument of a command.
func oneArg(args []string, what string) (string, error) {
	if len(args) != 1 {
		return "", usagef("expected exactly one %s argument", what)
	}
	return args[0], nil
}

func printBool(stdout io.Writer, ok bool) int {
	fmt.Fprintln(stdout, ok)
	if ok {
		return exitOK
	}
	return exitFail
}

func runUUID(app *bootstrap.App, args []string, stdout io.Writer) (int, error) {
	fs := flag.NewFlagSet("uuid", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	seeded := fs.Bool("seeded", false, "use the clock-seeded generator")
	if err := fs.Parse(args); err != nil {
		return exitUsage, usagef("%v", err)
	}

	if *seeded {
		fmt.Fprintln(stdout, util.TimeSeededUUID(time.Now(), nil))
	} else {
		fmt.Fprintln(stdout, app.Util.UUID())
	}
	return exitOK, nil
}

func runRandom(app *bootstrap.App, args []string, stdout io.Writer) (int, error) {
	fs := flag.NewFlagSet("random", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	length := fs.Int("n", app.Util.Config().Random.DefaultLength, "token length")
	letters := fs.Bool("letters", true, "include A-Za-z")
	numbers := fs.Bool("numbers", true, "include 0-9")
	if err := fs.Parse(args); err != nil {
		return exitUsage, usagef("%v", err)
	}

	token, err := app.Util.Random(*length, *letters, *numbers)
	if err != nil {
		return exitFail, err
	}
	fmt.Fprintln(stdout, token)
	return exitOK, nil
}

func runBase64(app *bootstrap.App, args []string, stdout io.Writer) (int, error) {
	text, err := oneArg(args, "text")
	if err != nil {
		return exitUsage, err
	}
	fmt.Fprintln(stdout, app.Util.EncodeBase64(text))
	return exitOK, nil
}

func runUnbase64(app *bootstrap.App, args []string, stdout io.Writer) (int, error) {
	encoded, err := oneArg(args, "base64")
	if err != nil {
		return exitUsage, err
	}
	text, err := app.Util.DecodeBase64(encoded)
	if err != nil {
		return exitFail, err
	}
	fmt.Fprintln(stdout, text)
	return exitOK, nil
}

func runEmail(app *bootstrap.App, args []string, stdout io.Writer) (int, error) {
	addr, err := oneArg(args, "address")
	if err != nil {
		return exitUsage, err
	}
	return printBool(stdout, app.Util.IsValidEmail(addr)), nil
}

func runJSON(app *bootstrap.App, args []string, stdout io.Writer) (int, error) {
	text, err := oneArg(args, "text")
	if err != nil {
		return exitUsage, err
	}
	return printBool(stdout, app.Util.IsJSON(text)), nil
}

func runDataURI(app *bootstrap.App, args []string, stdout io.Writer) (int, error) {
	uri, err := oneArg(args, "uri")
	if err != nil {
		return exitUsage, err
	}
	blob, err := app.Util.DataURIToBlob(uri)
	if err != nil {
		return exitFail, err
	}
	fmt.Fprintf(stdout, "%s\t%d\n%s\n", blob.Type(), blob.Size(), blob.Text())
	return exitOK, nil
}

// mappingFlag collects repeated -m key=value flags.
type mappingFlag map[string]string

func (m mappingFlag) String() string { return fmt.Sprint(map[string]string(m)) }

func (m mappingFlag) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	if !ok {
		return fmt.Errorf("mapping %q is not key=value", v)
	}
	m[key] = value
	return nil
}

func runMap(app *bootstrap.App, args []string, stdout io.Writer) (int, error) {
	mapping := mappingFlag{}
	fs := flag.NewFlagSet("map", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(mapping, "m", "replacement as key=value, repeatable")
	if err := fs.Parse(args); err != nil {
		return exitUsage, usagef("%v", err)
	}

	text, err := oneArg(fs.Args(), "text")
	if err != nil {
		return exitUsage, err
	}
	out, err := app.Util.MapStrings(text, mapping)
	if err != nil {
		return exitFail, err
	}
	fmt.Fprintln(stdout, out)
	return exitOK, nil
}

func runStripTags(app *bootstrap.App, args []string, stdout io.Writer) (int, error) {
	text, err := oneArg(args, "text")
	if err != nil {
		return exitUsage, err
	}
	fmt.Fprintln(stdout, app.Util.StripTags(text))
	return exitOK, nil
}

func runStripAlnum(app *bootstrap.App, args []string, stdout io.Writer) (int, error) {
	text, err := oneArg(args, "text")
	if err != nil {
		return exitUsage, err
	}
	fmt.Fprintln(stdout, app.Util.StripNonAlphanumeric(text))
	return exitOK, nil
}
