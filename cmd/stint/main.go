// Command stint is the Stint CLI entry point.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/stint-lang/stint/pkg/diagnostics"
	"github.com/stint-lang/stint/pkg/evaluator"
	"github.com/stint-lang/stint/pkg/examples"
	"github.com/stint-lang/stint/pkg/formatter"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: stint <command> [options]")
		fmt.Fprintln(os.Stderr, "commands: run, list, show, help")
		os.Exit(1)
	}

	switch cmd := os.Args[1]; cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "list":
		os.Exit(cmdList())
	case "show":
		os.Exit(cmdShow(os.Args[2:]))
	case "help", "--help", "-h":
		fmt.Println("usage: stint <command> [options]")
		fmt.Println("  run <example> [--debug] [--pretty]   evaluate a named example program")
		fmt.Println("  list                                 list available example programs")
		fmt.Println("  show <example>                       print an example's expression tree")
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		os.Exit(1)
	}
}

func cmdRun(args []string) int {
	var name string
	debug := false
	pretty := false

	for _, arg := range args {
		switch arg {
		case "--debug":
			debug = true
		case "--pretty":
			pretty = true
		default:
			if !strings.HasPrefix(arg, "-") {
				name = arg
			}
		}
	}

	if name == "" {
		fmt.Fprintln(os.Stderr, "usage: stint run <example> [--debug] [--pretty]")
		return 1
	}

	ex, ok := examples.Lookup(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown example: %s (try 'stint list')\n", name)
		return 1
	}

	opts := []evaluator.Option{evaluator.WithOutput(os.Stdout)}
	if debug {
		opts = append(opts, evaluator.WithDebug(os.Stderr))
	}

	value, typ, _, err := evaluator.New(opts...).Run(ex.Program)
	if err != nil {
		var rtErr *evaluator.RuntimeError
		if errors.As(err, &rtErr) {
			diag := diagnostics.MakeDiag(rtErr.Code, rtErr.Message, "")
			fmt.Fprintln(os.Stderr, diagnostics.FormatDiagnostics([]diagnostics.Diagnostic{diag}, pretty))
			return exitCodeForDiag(rtErr.Code)
		}
		fmt.Fprintln(os.Stderr, err.Error())
		return 5
	}

	fmt.Printf("(%s, %s)\n", evaluator.FormatValue(value, typ), typ)
	return 0
}

func cmdList() int {
	for _, ex := range examples.All() {
		fmt.Printf("%-12s %s\n", ex.Name, ex.Doc)
	}
	return 0
}

func cmdShow(args []string) int {
	var name string
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			name = arg
		}
	}

	if name == "" {
		fmt.Fprintln(os.Stderr, "usage: stint show <example>")
		return 1
	}

	ex, ok := examples.Lookup(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown example: %s (try 'stint list')\n", name)
		return 1
	}

	fmt.Println(formatter.Format(ex.Program))
	return 0
}

func exitCodeForDiag(code string) int {
	switch code {
	case diagnostics.ESyntax:
		return 2
	case diagnostics.EType:
		return 3
	case diagnostics.EMath:
		return 4
	default:
		return 5
	}
}
