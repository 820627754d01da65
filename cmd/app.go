// Package cmd implements the CLI application to manage a cashbook.
package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/internal/logger"
	"github.com/etnz/cashbook/kv"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "entries")
	c.Register(&editCmd{}, "entries")
	c.Register(&rmCmd{}, "entries")

	c.Register(&lsCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&demoCmd{}, "data")
	c.Register(&importCmd{}, "data")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeKind = flag.String("store", "dir", "Storage backend: dir or redis")
var dataDir = flag.String("data-dir", ".cashbook", "Folder of the dir storage backend")
var redisAddr = flag.String("redis-addr", "localhost:6379", "Address of the redis storage backend")
var storeKey = flag.String("key", cashbook.DefaultKey, "Key the ledger is saved under")
var currency = flag.String("currency", cashbook.DefaultCurrency, "Currency used to display amounts")

// Verbose enables debug logs.
var Verbose = flag.Bool("v", false, "Verbose output")

// output is where reports are printed, stdin is where confirmations are read.
var (
	output io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

const (
	EnvStore     = "CASHBOOK_STORE"
	EnvDataDir   = "CASHBOOK_DATA_DIR"
	EnvRedisAddr = "CASHBOOK_REDIS_ADDR"
	EnvKey       = "CASHBOOK_KEY"
	EnvCurrency  = "CASHBOOK_CURRENCY"
	EnvVerbose   = "CASHBOOK_VERBOSE"
)

// envFlags maps each environment variable to the global flag it sets.
var envFlags = map[string]string{
	EnvStore:     "store",
	EnvDataDir:   "data-dir",
	EnvRedisAddr: "redis-addr",
	EnvKey:       "key",
	EnvCurrency:  "currency",
	EnvVerbose:   "v",
}

// LoadEnv reads the .env files (".env" by default), then uses CASHBOOK_*
// environment variables as the new defaults of the global flags.
//
// It must be called before flag.Parse so that command line flags still win.
// A missing .env file is not an error.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot read env file: %w", err)
	}
	var errs []error
	for env, name := range envFlags {
		v, ok := os.LookupEnv(env)
		if !ok || v == "" {
			continue
		}
		if err := flag.Set(name, v); err != nil {
			errs = append(errs, fmt.Errorf("invalid %s=%q: %w", env, v, err))
		}
	}
	return errors.Join(errs...)
}

// openStore opens the storage backend selected by the global flags. The
// returned function releases it.
func openStore(ctx context.Context) (cashbook.Store, func() error, error) {
	switch *storeKind {
	case "dir":
		return kv.NewDir(*dataDir), func() error { return nil }, nil
	case "redis":
		r, err := kv.OpenRedis(ctx, *redisAddr, "cashbook:")
		if err != nil {
			return nil, nil, err
		}
		return r, r.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q, want dir or redis", *storeKind)
	}
}

// openController loads the ledger and returns a controller on it.
//
// Unreadable saved data is reported as a warning and the controller starts
// with an empty ledger. Deletions are confirmed on stdin unless yes is set.
func openController(ctx context.Context, yes bool) (*cashbook.Controller, func() error, error) {
	if !cashbook.KnownCurrency(*currency) {
		return nil, nil, fmt.Errorf("unknown currency %q", *currency)
	}
	s, closer, err := openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	confirm := confirmPrompt
	if yes {
		confirm = func(cashbook.Entry) bool { return true }
	}
	c, err := cashbook.Open(ctx, s,
		cashbook.WithKey(*storeKey),
		cashbook.WithCurrency(*currency),
		cashbook.WithLogger(logger.FromContext(ctx)),
		cashbook.WithConfirm(confirm),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return c, closer, nil
}

// confirmPrompt asks on stdin whether to delete e.
func confirmPrompt(e cashbook.Entry) bool {
	fmt.Fprintf(os.Stderr, "Delete entry #%d %q (%s %s)? [y/N] ", e.ID, e.Description, e.Type, e.Amount)
	answer, _ := bufio.NewReader(stdin).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// exitStatus prints err, if any, and returns the matching exit status.
func exitStatus(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	var verr *cashbook.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// printMarkdown renders md for the terminal. The raw markdown is printed if
// it cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Fprint(output, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(output, md)
		return
	}
	fmt.Fprint(output, out)
}
