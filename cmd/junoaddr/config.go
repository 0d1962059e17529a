// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/junocash/junoaddr/addrgen"
	"github.com/junocash/junoaddr/internal/version"
	"github.com/junocash/junoaddr/netparams"
	"github.com/junocash/junoaddr/sampleconfig"
)

const (
	defaultLogLevel    = "warn"
	defaultLogFilename = "junoaddr.log"
	defaultWorkers     = 1
)

// errUsage wraps errors that are caused by invalid invocations rather than
// derivation failures.
type errUsage struct {
	err error
}

func (e errUsage) Error() string {
	return e.err.Error()
}

func (e errUsage) Unwrap() error {
	return e.err
}

// usageErrorf returns a formatted usage error.
func usageErrorf(format string, args ...interface{}) error {
	return errUsage{fmt.Errorf(format, args...)}
}

// config defines the global configuration options for junoaddr.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion       bool     `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile        string   `short:"C" long:"configfile" description:"Path to an optional configuration file"`
	PrintSampleConfig bool     `long:"printsampleconfig" description:"Print a commented example configuration file and exit"`
	DebugLevel        string   `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	LogDir            string   `long:"logdir" description:"Directory to write a rotating log file to; file logging is disabled when empty"`
	Networks          []string `long:"net" description:"Only accept viewing keys for the named network {testnet, regnet}; may be specified multiple times"`
	Workers           int      `long:"workers" description:"Number of goroutines used to derive the addresses of a batch"`
	MaxBatch          uint32   `long:"maxbatch" description:"Maximum number of addresses a single batch may request"`

	Derive deriveCommand `command:"derive" description:"Derive the unified address at a diversifier index"`
	Batch  batchCommand  `command:"batch" description:"Derive a range of consecutive unified addresses"`

	// nets holds the parsed networks.
	nets []*netparams.Params
}

// UFVKOptions holds the options selecting where the unified full viewing key
// is read from.  Exactly one source must be provided.
type UFVKOptions struct {
	UFVK       string `long:"ufvk" description:"Unified full viewing key (jview*1...)"`
	UVFK       string `long:"uvfk" description:"Alias for --ufvk" hidden:"true"`
	UFVKFile   string `long:"ufvk-file" description:"Read the unified full viewing key from a file"`
	UFVKEnv    string `long:"ufvk-env" description:"Read the unified full viewing key from the named environment variable"`
	UFVKPrompt bool   `long:"ufvk-prompt" description:"Prompt for the unified full viewing key without echoing it"`
	JSON       bool   `long:"json" description:"Write JSON output"`
}

// deriveCommand holds the options of the derive command.
type deriveCommand struct {
	UFVKOptions
	Index uint64 `long:"index" description:"Diversifier index (0..4294967295)"`
}

// batchCommand holds the options of the batch command.
type batchCommand struct {
	UFVKOptions
	Start uint64 `long:"start" description:"First diversifier index (0..4294967295)"`
	Count uint64 `long:"count" description:"Number of addresses (1..maxbatch)"`
}

// defaultConfig returns the configuration with every default applied.
func defaultConfig() config {
	return config{
		DebugLevel: defaultLogLevel,
		Workers:    defaultWorkers,
		MaxBatch:   addrgen.DefaultMaxBatchCount,
	}
}

// newParser returns the command line parser for cfg.
func newParser(cfg *config) *flags.Parser {
	parser := flags.NewParser(cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "junoaddr"
	parser.ShortDescription = "Offline unified address derivation for Juno Cash"
	parser.LongDescription = "Derives unified addresses (j*1...) from a " +
		"unified full viewing key (jview*1...) and a diversifier index. " +
		"Viewing keys are sensitive: they are watch-only but reveal " +
		"incoming transaction details. This tool never uses the network."
	return parser
}

// loadConfig initializes and parses the config using a config file and
// command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//     and the version flag
//  3. Load the configuration file when one is specified
//  4. Parse the command line options and overwrite or add any specified
//     options
//
// The returned command is the name of the requested command, or empty when
// the process should exit successfully without one.  Errors caused by the
// invocation are wrapped in errUsage.
func loadConfig(args []string, stdout io.Writer) (*config, string, error) {
	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := defaultConfig()
	preParser := newParser(&preCfg)
	preParser.Options |= flags.IgnoreUnknown
	_, err := preParser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return nil, "", nil
		}
	}

	// Show the version and exit if the version flag was specified.
	if preCfg.ShowVersion {
		fmt.Fprintf(stdout, "%s version %s\n", preParser.Name, versionString())
		return nil, "", nil
	}

	// Print the sample configuration and exit if requested.
	if preCfg.PrintSampleConfig {
		fmt.Fprint(stdout, sampleConfig())
		return nil, "", nil
	}

	// Load additional config from file.
	cfg := defaultConfig()
	parser := newParser(&cfg)
	if preCfg.ConfigFile != "" {
		path := cleanAndExpandPath(preCfg.ConfigFile)
		err := flags.NewIniParser(parser).ParseFile(path)
		if err != nil {
			return nil, "", usageErrorf("error parsing config file %s: %v",
				filepath.Base(path), err)
		}
	}

	// Parse command line options again to ensure they take precedence.
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		return nil, "", errUsage{err}
	}
	if len(remaining) > 0 {
		return nil, "", usageErrorf("unexpected arguments: %s",
			strings.Join(remaining, " "))
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Fprintln(stdout, "Supported subsystems", supportedSubsystems())
		return nil, "", nil
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, "", usageErrorf("%v", err)
	}

	// Resolve the accepted networks.
	seen := make(map[string]struct{})
	for _, name := range cfg.Networks {
		net, ok := netparams.ByName(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, "", usageErrorf("unknown network %q", name)
		}
		if _, ok := seen[net.Name]; ok {
			continue
		}
		seen[net.Name] = struct{}{}
		cfg.nets = append(cfg.nets, net)
	}

	if cfg.Workers < 1 {
		return nil, "", usageErrorf("workers must be at least 1")
	}
	if cfg.MaxBatch == 0 {
		return nil, "", usageErrorf("maxbatch must be at least 1")
	}

	if cfg.LogDir != "" {
		logFile := filepath.Join(cleanAndExpandPath(cfg.LogDir),
			defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			return nil, "", err
		}
	}

	if parser.Active == nil {
		return nil, "", usageErrorf("a command is required")
	}
	return &cfg, parser.Active.Name, nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(os.ExpandEnv("$HOME/"))
		if u, err := user.Current(); err == nil {
			homeDir = u.HomeDir
		}
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// sampleConfig returns the commented example configuration file.
func sampleConfig() string {
	return sampleconfig.Junoaddr()
}

// versionString returns the application version along with the Go runtime
// details.
func versionString() string {
	return fmt.Sprintf("%s (Go version %s %s/%s)", version.String(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
