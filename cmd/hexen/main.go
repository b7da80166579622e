// Command hexen is the thin CLI driver around the semantic analysis
// core: manual os.Args handling instead of the flag package, a single
// top-level recover guard, isatty-gated color. It reads a JSON-encoded
// syntax tree instead of Hexen source text, since concrete-syntax
// parsing is out of scope for this module.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"github.com/mattn/go-isatty"
	"github.com/hexen-lang/hexen/internal/analyzer"
	"github.com/hexen-lang/hexen/internal/astjson"
	"github.com/hexen-lang/hexen/internal/config"
	"github.com/hexen-lang/hexen/internal/diagnostics"
	"github.com/hexen-lang/hexen/internal/report"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	args := os.Args[1:]

	if len(args) >= 1 && args[0] == "test" {
		config.IsTestMode = true
		args = args[1:]
	} else if os.Getenv("HEXEN_TEST_MODE") == "1" {
		config.IsTestMode = true
	}

	reportFormat := config.ReportText
	var inputPath string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-report":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: -report requires a value (text|yaml|json)")
				os.Exit(1)
			}
			reportFormat = config.ParseReportFormat(args[i+1])
			i++
		case "-help", "--help", "help":
			printHelp()
			return
		default:
			if !strings.HasPrefix(args[i], "-") && inputPath == "" {
				inputPath = args[i]
			}
		}
	}

	data, err := readInput(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	prog, err := astjson.Decode(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding syntax tree: %s\n", err)
		os.Exit(1)
	}

	sink := analyzer.New().Analyze(prog)

	if sink.Empty() {
		if reportFormat == config.ReportText {
			fmt.Println("No diagnostics.")
		} else {
			printReport(report.FromSink(sink), reportFormat)
		}
		return
	}

	switch reportFormat {
	case config.ReportYAML, config.ReportJSON:
		printReport(report.FromSink(sink), reportFormat)
	default:
		printDiagnostics(sink.All())
	}

	os.Exit(1)
}

func printReport(r *report.Report, format config.ReportFormat) {
	var out []byte
	var err error
	switch format {
	case config.ReportJSON:
		out, err = r.JSON()
	default:
		out, err = r.YAML()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering report: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

// printDiagnostics prints one line per diagnostic, colored red only when
// stdout is a real terminal (not a pipe or redirect) and test mode is off.
func printDiagnostics(diags []*diagnostics.DiagnosticError) {
	colorize := isatty.IsTerminal(os.Stdout.Fd()) && !config.IsTestMode
	for _, d := range diags {
		if colorize {
			fmt.Printf("\x1b[31m%s\x1b[0m\n", d.Error())
		} else {
			fmt.Println(d.Error())
		}
	}
	fmt.Printf("%d diagnostic(s)\n", len(diags))
}

// readInput reads the JSON syntax tree from a file argument, or from
// stdin when none is given.
func readInput(path string) ([]byte, error) {
	if path == "" {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return nil, fmt.Errorf("usage: hexen [test] [-report text|yaml|json] <tree.json>, or pipe JSON on stdin")
		}
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func printHelp() {
	fmt.Println(`hexen - semantic analysis core for Hexen

Usage:
 hexen <tree.json> analyze a JSON-encoded syntax tree
 hexen test <tree.json> analyze in test mode (stable output)
 hexen -report yaml|json <tree.json> emit a structured diagnostic report
 hexen -help show this message

With no <tree.json>, input is read from stdin.`)
}
