// Command petal runs petal scripts or drops into an interactive REPL.
//
// Grounded on funvibe-funxy/cmd/funxy/main.go for the manual
// os.Args-scanning CLI shape (no "flag" package), the
// recover-and-report-as-a-bug panic guard, and the
// fmt.Fprintf(os.Stderr, ...)/os.Exit(1) error-reporting idiom. The REPL
// loop (banner text, auto-semicolon keyword list, the literal "exit"
// line) is grounded on original_source/src/eval/repl.rs; petal reads
// plain lines with bufio.Scanner rather than rustyline, since a
// hinting/history line editor has no equivalent anywhere in the Go
// example corpus and is explicitly out of scope (see SPEC_FULL.md
// Non-goals).
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/petal-lang/petal/internal/config"
	"github.com/petal-lang/petal/internal/diagnostics"
	"github.com/petal-lang/petal/internal/evaluator"
	"github.com/petal-lang/petal/internal/object"
	"github.com/petal-lang/petal/internal/parser"
	"github.com/petal-lang/petal/internal/scheduler"
	"github.com/petal-lang/petal/internal/scope"
)

// blockKeywords are the statement leaders that already supply their own
// terminator, so the REPL must not auto-append a semicolon after them.
var blockKeywords = []string{"struct", "trait", "fn", "pub", "local", "impl", "return"}

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("PET_DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "this is a bug, please report it")
			os.Exit(1)
		}
	}()

	quiet := false
	var fileArgs []string
	for _, arg := range os.Args[1:] {
		if arg == "-q" || arg == "--quiet" {
			quiet = true
			continue
		}
		fileArgs = append(fileArgs, arg)
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %s\n", config.FileName, err)
		os.Exit(1)
	}
	if !quiet {
		quiet = cfg.QuietDefault()
	}

	workers := resolveWorkers(cfg)
	sched, eval := newEvaluator(workers)
	defer sched.Shutdown()

	if len(fileArgs) == 0 {
		runRepl(eval, quiet)
		return
	}

	paths, err := expandGlobs(fileArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	ok := true
	for _, path := range paths {
		if !runFile(eval, path) {
			ok = false
		}
	}
	if !ok {
		os.Exit(1)
	}
}

// resolveWorkers reads PET_MT_THREADS, falling back through cfg to
// config.DefaultWorkers -- the same override order original_source's
// env::var("PET_MT_THREADS") lookup establishes, just extended with a
// config-file tier the Rust original has no equivalent of.
func resolveWorkers(cfg *config.Config) int {
	raw, set := os.LookupEnv("PET_MT_THREADS")
	if !set {
		return cfg.WorkerCount(0, false)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: invalid PET_MT_THREADS %q, ignoring\n", raw)
		return cfg.WorkerCount(0, false)
	}
	return cfg.WorkerCount(n, true)
}

func newEvaluator(workers int) (*scheduler.Scheduler, *evaluator.Evaluator) {
	ev := &evaluator.Evaluator{}
	sched := scheduler.New(workers, ev.Evaluate)
	ev.Scheduler = sched
	return sched, ev
}

func expandGlobs(patterns []string) ([]string, error) {
	var out []string
	for _, pat := range patterns {
		matches, err := filepath.Glob(pat)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pat, err)
		}
		if len(matches) == 0 {
			out = append(out, pat)
			continue
		}
		sort.Strings(matches)
		out = append(out, matches...)
	}
	return out, nil
}

// runFile evaluates one source file top to bottom under a fresh root
// scope, printing a rendered diagnostic and returning false on the
// first error -- errors abort this file but not the remaining ones.
func runFile(eval *evaluator.Evaluator, path string) bool {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		return false
	}

	prog, err := parser.Parse(path, string(src))
	if err != nil {
		printDiagnostic(err, path, string(src))
		return false
	}

	sc := scope.New("file:" + filepath.Base(path))
	if _, err := eval.Evaluate(prog.Tree, sc); err != nil {
		printDiagnostic(err, path, string(src))
		return false
	}
	return true
}

func printDiagnostic(err error, path, src string) {
	if d, ok := err.(*diagnostics.Diagnostic); ok {
		fmt.Fprintln(os.Stderr, d.WithSource(path, src).Render())
		return
	}
	fmt.Fprintf(os.Stderr, "error: %s\n", err)
}

// runRepl is a plain read-eval-print loop: no history, no hinting, no
// line editing beyond what the terminal itself provides -- a scaled-down
// stand-in for original_source's rustyline-backed loop, which this repo
// has no library equivalent for in the example corpus.
func runRepl(eval *evaluator.Evaluator, quiet bool) {
	if !quiet {
		fmt.Print("\x1b[2J\x1b[1;1H")
		fmt.Println("# petal repl")
		fmt.Println("type 'exit' to exit")
		fmt.Println()
	}

	replScope := scope.New("repl")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if line == "exit" {
			return
		}
		if line == "" {
			continue
		}
		if shouldAppendSemicolon(line) {
			line += ";"
		}

		prog, err := parser.Parse("<repl>", line)
		if err != nil {
			fmt.Println(err)
			fmt.Println()
			continue
		}
		v, err := eval.Evaluate(prog.Tree, replScope)
		if err != nil {
			fmt.Println(err)
			fmt.Println()
			continue
		}
		fmt.Println(object.PrettyPrint(v, true))
		fmt.Println()
	}
}

// shouldAppendSemicolon reports whether line lacks its own terminator --
// mirrors original_source's should_append_semicolon exactly, including
// its use of a prefix match rather than a tokenized keyword check.
func shouldAppendSemicolon(line string) bool {
	for _, kw := range blockKeywords {
		if strings.HasPrefix(line, kw) {
			return false
		}
	}
	return true
}
