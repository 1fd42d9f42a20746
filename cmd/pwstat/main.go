// pwstat derives structure from password corpora: mask statistics, c-grams
// and mask filtering. Input is read one password per line, either literally
// or in $HEX[...] form.
//
// Usage Examples
// ==============
//
// Mask statistics, masks table to stdout, summary to stderr:
//
//	pwstat statsgen -i rockyou.txt
//
// Length-tracked simple masks of 8 to 12 character passwords:
//
//	pwstat statsgen -i rockyou.txt -min-length 8 -max-length 12 -table simple
//
// The whole report as CBOR:
//
//	pwstat statsgen -i rockyou.txt -format cbor -o report.cbor
//
// Ranked c-grams, case folded:
//
//	pwstat cgrams -i rockyou.txt -sort -ignore-case -normalize
//
// Keep the passwords that fit a mask:
//
//	pwstat filtermask -mask '?u?l?l?l?d?d' -i rockyou.txt
//
// Decode or encode $HEX[...] lines:
//
//	pwstat unhex -i found.txt
//	pwstat hex -i found.txt
//
// Exit Codes
// ==========
//
// 0: Success.
// 1: The input could not be read or the output could not be written.
// 2: Bad usage.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
)

// env holds the process streams so that tests can substitute them.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	summary string
	run     func(e env, name string, args []string) error
}

var commands = map[string]command{
	"statsgen":   {"mask, charset, simple mask and length statistics", runStatsgen},
	"cgrams":     {"split passwords into runs of one character class", runCgrams},
	"filtermask": {"keep the passwords that fit a mask", runFiltermask},
	"unhex":      {"decode $HEX[...] lines", runUnhex},
	"hex":        {"encode lines that are unsafe to print as $HEX[...]", runHex},
}

// usageError is a usage error, reported with exit status 2. Flag parsing
// errors are printed by the flag set and are not printed again.
type usageError struct {
	err     error
	printed bool
}

func (u *usageError) Error() string { return u.err.Error() }
func (u *usageError) Unwrap() error { return u.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func main() {
	os.Exit(run(os.Args[1:], env{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}))
}

func run(args []string, e env) int {
	if len(args) == 0 {
		printUsage(e.stderr)
		return 2
	}

	name := args[0]
	switch name {
	case "help", "-h", "-help", "--help":
		printUsage(e.stdout)
		return 0
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(e.stderr, "pwstat: unknown command %q\n\n", name)
		printUsage(e.stderr)
		return 2
	}

	err := cmd.run(e, name, args[1:])
	var usage *usageError
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.As(err, &usage):
		if !usage.printed {
			fmt.Fprintf(e.stderr, "pwstat %s: %v\n", name, usage)
		}
		return 2
	default:
		// already logged
		return 1
	}
}

func printUsage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "usage: pwstat <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, name := range names {
		fmt.Fprintf(w, "  %-12s %s\n", name, commands[name].summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pwstat <command> -h' for the flags of a command.")
}
