// Copyright (c) 2026 The Juno Cash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/junocash/junoaddr/addrgen"
	"github.com/junocash/junoaddr/ffi"
	"github.com/junocash/junoaddr/netparams"
	"github.com/junocash/junoaddr/orchard/devkeys"
	"golang.org/x/term"
)

// jsonVersion is the version reported in every JSON output.
const jsonVersion = "v1"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// deriver is the address derivation used by the commands.
type deriver interface {
	Derive(ufvk string, index uint32) (string, error)
	Batch(ufvk string, start, count uint32) ([]string, error)
}

// codedError is implemented by errors that carry a stable code.
type codedError interface {
	error
	CodeString() string
}

// environment holds the process facilities used by the commands so they can
// be replaced in tests.
type environment struct {
	stdout     io.Writer
	stderr     io.Writer
	getenv     func(string) string
	readFile   func(string) ([]byte, error)
	readSecret func() ([]byte, error)
	newDeriver func(cfg *config) (deriver, error)
}

// devNetworks returns the networks among nets that the development key
// backend may serve, or all of them when nets is empty.  Requesting any other
// network is a usage error.
func devNetworks(nets []*netparams.Params) ([]*netparams.Params, error) {
	served := devkeys.Networks()
	if len(nets) == 0 {
		return served, nil
	}
	for _, net := range nets {
		if _, ok := netparams.Find(served, net.ViewingKeyHRP); !ok {
			return nil, usageErrorf("network %s is not supported by the "+
				"development key backend", net.Name)
		}
	}
	return nets, nil
}

// newDeriver returns the deriver configured by cfg.  Requests go through the
// JSON boundary so the command reports exactly what foreign callers see.
func newDeriver(cfg *config) (deriver, error) {
	nets, err := devNetworks(cfg.nets)
	if err != nil {
		return nil, err
	}
	d, err := addrgen.New(&addrgen.Config{
		Keys:          devkeys.New(),
		Networks:      nets,
		MaxBatchCount: cfg.MaxBatch,
		Workers:       cfg.Workers,
	})
	if err != nil {
		return nil, err
	}
	return ffi.NewClient(d), nil
}

// readTerminalSecret reads a line from the terminal on standard input without
// echoing it.
func readTerminalSecret() ([]byte, error) {
	fmt.Fprint(os.Stderr, "UFVK: ")
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprint(os.Stderr, "\n")
	return secret, err
}

// processEnvironment returns the environment of the running process.
func processEnvironment() *environment {
	return &environment{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		getenv:     os.Getenv,
		readFile:   os.ReadFile,
		readSecret: readTerminalSecret,
		newDeriver: newDeriver,
	}
}

// zero overwrites b with zeros.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// readUFVK returns the viewing key from the single source selected by opts.
func readUFVK(opts *UFVKOptions, env *environment) (string, error) {
	flagValue := strings.TrimSpace(opts.UFVK)
	if flagValue == "" {
		flagValue = strings.TrimSpace(opts.UVFK)
	}
	file := strings.TrimSpace(opts.UFVKFile)
	envName := strings.TrimSpace(opts.UFVKEnv)

	var sources int
	for _, set := range []bool{flagValue != "", file != "", envName != "",
		opts.UFVKPrompt} {

		if set {
			sources++
		}
	}
	switch {
	case sources == 0:
		return "", usageErrorf("ufvk is required (use --ufvk, --ufvk-file, " +
			"--ufvk-env, or --ufvk-prompt)")
	case sources > 1:
		return "", usageErrorf("ufvk source conflict (use only one of " +
			"--ufvk, --ufvk-file, --ufvk-env, or --ufvk-prompt)")
	}

	switch {
	case flagValue != "":
		return flagValue, nil

	case envName != "":
		return strings.TrimSpace(env.getenv(envName)), nil

	case file != "":
		b, err := env.readFile(file)
		if err != nil {
			return "", usageErrorf("read ufvk file (%s): %w",
				filepath.Base(file), err)
		}
		defer zero(b)
		return strings.TrimSpace(string(b)), nil
	}

	secret, err := env.readSecret()
	if err != nil {
		return "", usageErrorf("unable to read ufvk: %w", err)
	}
	defer zero(secret)
	return strings.TrimSpace(string(secret)), nil
}

// toUint32 returns v as a uint32 when it fits.
func toUint32(v uint64) (uint32, bool) {
	if v > uint64(^uint32(0)) {
		return 0, false
	}
	return uint32(v), true
}

// writeJSON writes v as a single line of JSON.
func writeJSON(w io.Writer, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		jadrLog.Errorf("Unable to write output: %v", err)
	}
}

// errorOutput is the JSON output of a failed command.
type errorOutput struct {
	Version string `json:"version"`
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeErr reports a failure with its code and returns the exit code.
func writeErr(env *environment, jsonOut bool, code, message string) int {
	if jsonOut {
		writeJSON(env.stdout, &errorOutput{
			Version: jsonVersion,
			Status:  "err",
			Error:   code,
			Message: message,
		})
		return exitError
	}
	if message == "" {
		fmt.Fprintln(env.stderr, code)
	} else {
		fmt.Fprintf(env.stderr, "%s: %s\n", code, message)
	}
	return exitError
}

// writeDeriverErr reports a derivation failure and returns the exit code.
func writeDeriverErr(env *environment, jsonOut bool, err error) int {
	var ce codedError
	if errors.As(err, &ce) {
		return writeErr(env, jsonOut, ce.CodeString(), "")
	}
	return writeErr(env, jsonOut, string(addrgen.ErrInternal), err.Error())
}

// deriveOutput is the JSON output of the derive command.
type deriveOutput struct {
	Version string `json:"version"`
	Status  string `json:"status"`
	Address string `json:"address"`
}

// runDerive executes the derive command.
func runDerive(cmd *deriveCommand, d deriver, env *environment) int {
	ufvk, err := readUFVK(&cmd.UFVKOptions, env)
	if err != nil {
		fmt.Fprintln(env.stderr, err)
		return exitUsage
	}
	index, ok := toUint32(cmd.Index)
	if !ok {
		return writeErr(env, cmd.JSON, "index_invalid", "index out of range")
	}

	addr, err := d.Derive(ufvk, index)
	if err != nil {
		return writeDeriverErr(env, cmd.JSON, err)
	}

	if cmd.JSON {
		writeJSON(env.stdout, &deriveOutput{
			Version: jsonVersion,
			Status:  "ok",
			Address: addr,
		})
		return exitOK
	}
	fmt.Fprintln(env.stdout, addr)
	return exitOK
}

// batchOutput is the JSON output of the batch command.
type batchOutput struct {
	Version   string   `json:"version"`
	Status    string   `json:"status"`
	Start     uint32   `json:"start"`
	Count     uint32   `json:"count"`
	Addresses []string `json:"addresses"`
}

// runBatch executes the batch command.
func runBatch(cmd *batchCommand, d deriver, env *environment) int {
	ufvk, err := readUFVK(&cmd.UFVKOptions, env)
	if err != nil {
		fmt.Fprintln(env.stderr, err)
		return exitUsage
	}
	start, ok := toUint32(cmd.Start)
	if !ok {
		return writeErr(env, cmd.JSON, "index_invalid", "start out of range")
	}
	count, ok := toUint32(cmd.Count)
	if !ok || count == 0 {
		return writeErr(env, cmd.JSON, "count_invalid", "count out of range")
	}

	addrs, err := d.Batch(ufvk, start, count)
	if err != nil {
		return writeDeriverErr(env, cmd.JSON, err)
	}

	if cmd.JSON {
		writeJSON(env.stdout, &batchOutput{
			Version:   jsonVersion,
			Status:    "ok",
			Start:     start,
			Count:     count,
			Addresses: addrs,
		})
		return exitOK
	}
	for _, addr := range addrs {
		fmt.Fprintln(env.stdout, addr)
	}
	return exitOK
}

// run executes the command line args and returns the process exit code.
func run(args []string, env *environment) int {
	if len(args) == 0 {
		newParser(&config{}).WriteHelp(env.stderr)
		return exitUsage
	}
	if args[0] == "help" {
		newParser(&config{}).WriteHelp(env.stdout)
		return exitOK
	}

	cfg, command, err := loadConfig(args, env.stdout)
	if err != nil {
		fmt.Fprintln(env.stderr, err)
		var e errUsage
		if errors.As(err, &e) {
			return exitUsage
		}
		return exitError
	}
	if cfg == nil {
		return exitOK
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
			logRotator = nil
		}
	}()

	d, err := env.newDeriver(cfg)
	if err != nil {
		var e errUsage
		if errors.As(err, &e) {
			fmt.Fprintln(env.stderr, err)
			return exitUsage
		}
		return writeErr(env, false, string(addrgen.ErrInternal), err.Error())
	}

	jadrLog.Debugf("Running %s command", command)
	switch command {
	case "derive":
		return runDerive(&cfg.Derive, d, env)
	case "batch":
		return runBatch(&cfg.Batch, d, env)
	}
	fmt.Fprintf(env.stderr, "unknown command: %s\n", command)
	return exitUsage
}

func main() {
	os.Exit(run(os.Args[1:], processEnvironment()))
}
