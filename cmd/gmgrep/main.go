// Command gmgrep is a grep-like CLI exercising internal/rex end to end:
// pattern compilation, per-line search, mode flags, and substitution.
// Its shape follows cmd/wazero/wazero.go: a doMain(args, stdout, stderr)
// separated from main so the CLI is unit-testable without os.Exit.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/gogglesmm/gogglesmm-sub010/internal/rex"
)

func main() {
	os.Exit(doMain(os.Args[1:], os.Stdout, os.Stderr))
}

func doMain(args []string, stdOut, stdErr io.Writer) int {
	flags := pflag.NewFlagSet("gmgrep", pflag.ContinueOnError)
	flags.SetOutput(stdErr)

	ignoreCase := flags.BoolP("ignore-case", "i", false, "case-insensitive match")
	unicode := flags.BoolP("unicode", "E", false, "enable REX Unicode mode (\\p{...}, case folding)")
	words := flags.BoolP("word", "w", false, "match only at word boundaries")
	invert := flags.BoolP("invert-match", "v", false, "print non-matching lines")
	replace := flags.StringP("replace", "r", "", "substitute matches with this replacement instead of printing the line")
	help := flags.BoolP("help", "h", false, "print usage")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if *help || flags.NArg() < 1 {
		printUsage(stdErr, flags)
		return usageExit(*help)
	}

	pattern := flags.Arg(0)
	var mode rex.Mode = rex.Capture
	if *ignoreCase {
		mode |= rex.IgnoreCase
	}
	if *unicode {
		mode |= rex.Unicode
	}
	if *words {
		mode |= rex.Words
	}

	re := rex.NewRex(pattern, mode)
	if re.Err() != rex.ErrOK {
		fmt.Fprintf(stdErr, "gmgrep: bad pattern %q: %s\n", pattern, re.Err())
		return 1
	}

	inputs := flags.Args()[1:]
	matched := false
	if len(inputs) == 0 {
		matched = grepReader(os.Stdin, "", re, *invert, *replace, stdOut) || matched
	}
	for _, path := range inputs {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(stdErr, "gmgrep: %s: %v\n", path, err)
			return 1
		}
		label := path
		if len(inputs) == 1 {
			label = ""
		}
		matched = grepReader(f, label, re, *invert, *replace, stdOut) || matched
		f.Close()
	}
	if !matched {
		return 1
	}
	return 0
}

func grepReader(r io.Reader, label string, re *rex.Rex, invert bool, replacement string, out io.Writer) bool {
	matched := false
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		caps, ok := re.Search(line, 0, len(line), rex.Normal)
		if ok == invert {
			continue
		}
		matched = true
		if replacement != "" && ok {
			line = rex.Substitute(line, caps, replacement)
		}
		if label != "" {
			fmt.Fprintf(out, "%s:%s\n", label, line)
		} else {
			fmt.Fprintln(out, line)
		}
	}
	return matched
}

func printUsage(w io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintln(w, "gmgrep [flags] PATTERN [FILE...]")
	flags.PrintDefaults()
}

func usageExit(helpRequested bool) int {
	if helpRequested {
		return 0
	}
	return 1
}
