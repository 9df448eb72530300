// Command sparrow is the CLI entry point for the four pipelines
// (tokenize/parse/evaluate/run), built on github.com/spf13/cobra the same
// way the teacher's cli/main.go builds its root command: flags parsed by
// cobra, a single RunE per subcommand, exit code computed once and applied
// with os.Exit after everything else has run (so the debug snapshot file
// is already written when the process exits).
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/sparrowlang/sparrow/internal/ast"
	"github.com/sparrowlang/sparrow/internal/debugschema"
	"github.com/sparrowlang/sparrow/internal/diagnostics"
	"github.com/sparrowlang/sparrow/internal/interp"
	"github.com/sparrowlang/sparrow/internal/lexer"
	"github.com/sparrowlang/sparrow/internal/parser"
	"github.com/sparrowlang/sparrow/internal/resolve"
	"github.com/sparrowlang/sparrow/internal/snapshot"
	"github.com/sparrowlang/sparrow/internal/sourcehash"
	"github.com/sparrowlang/sparrow/internal/token"
)

// version is the binary's own semver, compared against --min-version.
const version = "v0.1.0"

func main() {
	var (
		noColor    bool
		debug      bool
		jsonOut    bool
		minVersion string
	)

	sink := diagnostics.NewSink(os.Stderr, false)

	newSink := func() *diagnostics.Sink {
		return diagnostics.NewSink(os.Stderr, diagnostics.ShouldUseColor(noColor))
	}

	root := &cobra.Command{
		Use:           "sparrow",
		Short:         "Scan, parse, and run Sparrow scripts",
		SilenceErrors: true,
		SilenceUsage:  false,
		// Running with no subcommand is CLI misuse: cobra prints usage to
		// stderr and main maps the error to exit code 1.
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("missing command")
		},
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI colorization of diagnostics")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "emit a canonical CBOR snapshot and source digest")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "additionally emit a JSON debug dump (tokenize/parse only)")

	exitCode := 0

	tokenizeCmd := &cobra.Command{
		Use:   "tokenize <path>",
		Short: "Print the token stream for a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = runTokenize(args[0], newSink(), debug, jsonOut)
			return nil
		},
	}

	parseCmd := &cobra.Command{
		Use:   "parse <path>",
		Short: "Print the parenthesized form of a single expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = runParse(args[0], newSink(), debug, jsonOut)
			return nil
		},
	}

	evaluateCmd := &cobra.Command{
		Use:   "evaluate <path>",
		Short: "Evaluate a single expression and print its value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = runEvaluate(args[0], newSink())
			return nil
		},
	}

	runCmd := &cobra.Command{
		Use:   "run <path>",
		Short: "Execute a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if minVersion != "" {
				if code, ok := checkMinVersion(minVersion, newSink()); !ok {
					exitCode = code
					return nil
				}
			}
			exitCode = runRun(args[0], newSink())
			return nil
		},
	}
	runCmd.Flags().StringVar(&minVersion, "min-version", "", "refuse to run unless the binary is at least this semver")

	root.AddCommand(tokenizeCmd, parseCmd, evaluateCmd, runCmd)

	if err := root.Execute(); err != nil {
		sink.Linef("Error: %v", err)
		exitCode = 1
	}

	os.Exit(exitCode)
}

// checkMinVersion implements §6.7: reject a malformed floor before doing
// anything else, then compare it against the binary's embedded version.
func checkMinVersion(minVersion string, sink *diagnostics.Sink) (int, bool) {
	floor := minVersion
	if !strings.HasPrefix(floor, "v") {
		floor = "v" + floor
	}
	if !semver.IsValid(floor) {
		sink.Linef("Error: --min-version %q is not a valid semantic version.", minVersion)
		return 1, false
	}
	if semver.Compare(version, floor) < 0 {
		sink.Linef("Error: sparrow %s is older than the required minimum %s.", version, floor)
		return 1, false
	}
	return 0, true
}

// readSource loads a file, reporting a CLI-misuse error (exit 1) if it
// cannot be read — this never overlaps with the 65/70 compile/runtime
// exit codes, which are reserved for pipeline-stage errors.
func readSource(path string, sink *diagnostics.Sink) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		sink.Linef("Error: %v", err)
		return "", false
	}
	return string(data), true
}

func emitDebugPreamble(source string, sink *diagnostics.Sink) {
	sink.Linef("source=%s", sourcehash.Digest(source))
}

func writeSnapshot(path string, tokens []token.Token, sink *diagnostics.Sink) {
	data, err := snapshot.Encode(tokens)
	if err != nil {
		sink.Linef("Error: failed to encode debug snapshot: %v", err)
		return
	}
	snapPath := path + ".snap"
	if err := os.WriteFile(snapPath, data, 0o644); err != nil {
		sink.Linef("Error: failed to write debug snapshot %s: %v", snapPath, err)
	}
}

func scan(source string) ([]token.Token, []*lexer.Error) {
	return lexer.New(source).Scan()
}

// ---- tokenize --------------------------------------------------------------

func runTokenize(path string, sink *diagnostics.Sink, debug, jsonOut bool) int {
	source, ok := readSource(path, sink)
	if !ok {
		return 1
	}
	if debug {
		emitDebugPreamble(source, sink)
	}

	tokens, errs := scan(source)
	for _, e := range errs {
		sink.Line(e.Error())
	}

	for _, t := range tokens {
		fmt.Println(formatTokenizeLine(t))
	}

	if debug {
		writeSnapshot(path, tokens, sink)
	}
	if jsonOut {
		emitTokenizeJSON(source, tokens, errs)
	}

	if len(errs) > 0 {
		return 65
	}
	return 0
}

// formatTokenizeLine renders "KIND LEXEME LITERAL" per spec §6.3: STRING
// prints its unescaped contents, NUMBER always carries a decimal point,
// everything else prints "null".
func formatTokenizeLine(t token.Token) string {
	var literal string
	switch t.Kind {
	case token.String:
		literal = fmt.Sprintf("%v", t.Literal)
	case token.Number:
		literal = formatTokenizeNumber(t.Literal.(float64))
	default:
		literal = "null"
	}
	return fmt.Sprintf("%s %s %s", t.Kind, t.Lexeme, literal)
}

func formatTokenizeNumber(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func emitTokenizeJSON(source string, tokens []token.Token, errs []*lexer.Error) {
	diags := make([]debugschema.Diagnostic, len(errs))
	for i, e := range errs {
		diags[i] = debugschema.Diagnostic{Line: e.Line, Message: e.Message}
	}
	mirrored := snapshot.FromTokens(tokens)
	anyTokens := make([]any, len(mirrored))
	for i, t := range mirrored {
		anyTokens[i] = t
	}
	data, err := debugschema.Marshal(debugschema.Dump{
		Source:      sourcehash.Digest(source),
		Stage:       "tokenize",
		Diagnostics: diags,
		Tokens:      anyTokens,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to build JSON debug dump: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// ---- parse ------------------------------------------------------------------

func runParse(path string, sink *diagnostics.Sink, debug, jsonOut bool) int {
	source, ok := readSource(path, sink)
	if !ok {
		return 1
	}
	if debug {
		emitDebugPreamble(source, sink)
	}

	tokens, scanErrs := scan(source)
	for _, e := range scanErrs {
		sink.Line(e.Error())
	}

	p := parser.New(tokens)
	expr := p.ParseExpression()
	for _, e := range p.Errors() {
		sink.Line(e.Error())
	}

	hadError := len(scanErrs) > 0 || p.HadError()
	if !hadError {
		fmt.Println(ast.Print(expr))
	}

	if debug {
		writeSnapshot(path, tokens, sink)
	}
	if jsonOut {
		emitParseJSON(source, expr, scanErrs, p.Errors())
	}

	if hadError {
		return 65
	}
	return 0
}

func emitParseJSON(source string, expr ast.Expr, scanErrs []*lexer.Error, parseErrs []*parser.Error) {
	var diags []debugschema.Diagnostic
	for _, e := range scanErrs {
		diags = append(diags, debugschema.Diagnostic{Line: e.Line, Message: e.Message})
	}
	for _, e := range parseErrs {
		diags = append(diags, debugschema.Diagnostic{Line: e.Token.Line, Where: e.Token.Lexeme, Message: e.Message})
	}
	astDump := ""
	if expr != nil {
		astDump = ast.Print(expr)
	}
	data, err := debugschema.Marshal(debugschema.Dump{
		Source:      sourcehash.Digest(source),
		Stage:       "parse",
		Diagnostics: diags,
		AST:         astDump,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to build JSON debug dump: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

// ---- evaluate ---------------------------------------------------------------

func runEvaluate(path string, sink *diagnostics.Sink) int {
	source, ok := readSource(path, sink)
	if !ok {
		return 1
	}

	tokens, scanErrs := scan(source)
	for _, e := range scanErrs {
		sink.Line(e.Error())
	}

	p := parser.New(tokens)
	expr := p.ParseExpression()
	for _, e := range p.Errors() {
		sink.Line(e.Error())
	}

	if len(scanErrs) > 0 || p.HadError() {
		return 65
	}

	in := interp.New()
	value, err := in.EvaluateExpr(expr)
	if err != nil {
		sink.Line(err.Error())
		return 70
	}
	fmt.Println(interp.Stringify(value))
	return 0
}

// ---- run --------------------------------------------------------------------

func runRun(path string, sink *diagnostics.Sink) int {
	source, ok := readSource(path, sink)
	if !ok {
		return 1
	}

	tokens, scanErrs := scan(source)
	for _, e := range scanErrs {
		sink.Line(e.Error())
	}

	p := parser.New(tokens)
	stmts := p.ParseProgram()
	for _, e := range p.Errors() {
		sink.Line(e.Error())
	}

	if len(scanErrs) > 0 || p.HadError() {
		return 65
	}

	r := resolve.New()
	locals := r.Resolve(stmts)
	for _, e := range r.Errors() {
		sink.Line(e.Error())
	}
	if r.HadError() {
		return 65
	}

	in := interp.New()
	if err := in.Run(stmts, locals); err != nil {
		sink.Line(err.Error())
		return 70
	}
	return 0
}
