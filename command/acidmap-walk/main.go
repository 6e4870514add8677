// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// acidmap-walk - drive a map from a mutation script
//
// reads commands one per line from a script file or stdin, applies
// them to a single string→string map and prints the results; used to
// exercise the container and its verifier from the outside
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/acidmap"
	"github.com/bitmark-inc/acidmap/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "log-directory", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--log-directory=DIR] [script-file]", program)
	}

	verbose := len(options["verbose"]) > 0

	var log *logger.L
	if 0 != len(options["log-directory"]) {
		logging := logger.Configuration{
			Directory: options["log-directory"][0],
			File:      "acidmap-walk.log",
			Size:      1048576,
			Count:     10,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		}
		if err := logger.Initialise(logging); nil != err {
			exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
		}
		defer logger.Finalise()
		log = logger.New("walk")
		log.Infof("version: %s", version)
	}

	in := os.Stdin
	if len(arguments) > 0 {
		f, err := os.Open(arguments[0])
		if nil != err {
			exitwithstatus.Message("%s: cannot open script: %q  error: %s", program, arguments[0], err)
		}
		defer f.Close()
		in = f
	}

	m := acidmap.New[string, string]()

	lineNumber := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lineNumber += 1
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		if nil != log {
			log.Infof("%d: %s", lineNumber, line)
		}
		if verbose {
			fmt.Printf("> %s\n", line)
		}
		err := apply(m, line)
		if nil != err {
			exitwithstatus.Message("%s: line %d: %q  error: %s", program, lineNumber, line, err)
		}
	}
	if err := scanner.Err(); nil != err {
		exitwithstatus.Message("%s: script read error: %s", program, err)
	}
}

// run a single script command against the map
func apply(m *acidmap.Map[string, string], line string) error {
	fields := strings.Fields(line)
	command := fields[0]
	args := fields[1:]

	switch command {

	case "insert":
		if 2 != len(args) {
			return fault.ErrMissingArguments
		}
		_, added := m.Insert(args[0], args[1])
		fmt.Printf("insert %s: %t\n", args[0], added)

	case "delete":
		if 1 != len(args) {
			return fault.ErrMissingArguments
		}
		fmt.Printf("delete %s: %d\n", args[0], m.Delete(args[0]))

	case "find":
		if 1 != len(args) {
			return fault.ErrMissingArguments
		}
		it := m.Find(args[0])
		if it.Valid() {
			fmt.Printf("find %s: %s\n", it.Key(), it.Value())
			it.Release()
		} else {
			fmt.Printf("find %s: not found\n", args[0])
		}

	case "at":
		if 1 != len(args) {
			return fault.ErrMissingArguments
		}
		value, err := m.At(args[0])
		if fault.IsErrNotFound(err) {
			fmt.Printf("at %s: not found\n", args[0])
		} else {
			fmt.Printf("at %s: %s\n", args[0], value)
		}

	case "list":
		for it := m.First(); it.Valid(); it.Next() {
			fmt.Printf("%s → %s\n", it.Key(), it.Value())
		}

	case "count":
		fmt.Printf("count: %d\n", m.Count())

	case "clear":
		m.Clear()

	case "print":
		m.Print(os.Stdout, true)

	case "verify":
		if !m.Verify(os.Stdout) {
			return fault.ErrVerifyFailed
		}
		fmt.Printf("verify: ok\n")

	default:
		return fault.ErrInvalidCommand
	}
	return nil
}
