package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ckeaney/kcc/pkg/cexpr"
	"github.com/ckeaney/kcc/pkg/config"
	"github.com/ckeaney/kcc/pkg/diag"
	"github.com/ckeaney/kcc/pkg/lexema"
	"github.com/ckeaney/kcc/pkg/lexer"
	"github.com/ckeaney/kcc/pkg/pp"
	"github.com/ckeaney/kcc/pkg/pptok"
	"github.com/ckeaney/kcc/pkg/token"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	preprocessOnly bool // -E: stop after preprocessing, dump pp-tokens
	dPP            bool // -dpp: dump the executed directive tree
	dTokens        bool // -dtokens: dump the classified token table

	includePaths []string
	systemPaths  []string
	defineFlags  []string
	undefFlags   []string
	configPath   string
	noColor      bool
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	rootCmd.SetArgs(normalizeFlags(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// singleDashFlags lists the flags that also accept the compiler-style
// single-dash spelling.
var singleDashFlags = []string{"dpp", "dtokens"}

// normalizeFlags converts -dpp style flags to --dpp for pflag.
func normalizeFlags(args []string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		for _, name := range singleDashFlags {
			if arg == "-"+name {
				result[i] = "--" + name
				break
			}
		}
		if result[i] == "" {
			result[i] = arg
		}
	}
	return result
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kcc [file]",
		Short: "kcc is a C front-end: preprocessor, lexer and diagnostics",
		Long: `kcc runs the front half of a C compiler over one translation
unit: it preprocesses the source, classifies the surviving
preprocessing tokens into language tokens, and reports every
diagnostic found along the way.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Help()
				return nil
			}
			return compile(args[0], out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	flags := rootCmd.Flags()
	flags.BoolVarP(&preprocessOnly, "preprocess-only", "E", false, "preprocess only; print the pp-token table")
	flags.BoolVar(&dPP, "dpp", false, "dump the executed directive tree")
	flags.BoolVar(&dTokens, "dtokens", false, "dump the classified token table")
	flags.StringArrayVarP(&includePaths, "include", "I", nil, "add a user include search path")
	flags.StringArrayVar(&systemPaths, "isystem", nil, "add a system include search path")
	flags.StringArrayVarP(&defineFlags, "define", "D", nil, "predefine a macro (NAME or NAME=VALUE)")
	flags.StringArrayVarP(&undefFlags, "undefine", "U", nil, "undefine a macro")
	flags.StringVar(&configPath, "config", "", "load options from a kcc.toml file")
	flags.BoolVar(&noColor, "no-color", false, "disable coloured diagnostics")

	return rootCmd
}

func compile(filename string, out, errOut io.Writer) error {
	cfg, err := loadConfig(filename)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("kcc: %w", err)
	}
	input := string(content)

	pool := lexema.NewPool()
	book := diag.NewBook()

	resolver := pp.NewResolver(filename)
	for _, p := range includePaths {
		resolver.AddUserPath(p)
	}
	for _, p := range systemPaths {
		resolver.AddSystemPath(p)
	}

	opts := pp.Options{
		Filename:  filename,
		Defines:   append(append([]string{}, cfg.Preprocessor.Defines...), defineFlags...),
		Undefines: append(append([]string{}, cfg.Preprocessor.Undefines...), undefFlags...),
		Open:      resolver,
		Lex:       lexer.Lex,
		Eval:      cexpr.Evaluator{},
	}
	result := pp.Preprocess(input, opts, pool, book)

	switch {
	case preprocessOnly:
		pptok.PrintTable(out, result.Emitted)
	case dPP:
		result.Executed.Dump(out)
	default:
		toks := lexer.Lex(result.Emitted, book)
		if dTokens || cfg.Display.ShowTokens {
			printTokenTable(out, toks)
		}
	}

	printer := diag.Printer{Input: input, Colour: cfg.Display.ColorOutput && !noColor}
	printer.Print(errOut, book)
	if len(book.Errors()) > 0 {
		return fmt.Errorf("kcc: %d error(s) in %s", len(book.Errors()), filename)
	}
	return nil
}

// loadConfig loads --config, or a kcc.toml sitting next to the input
// file, or the defaults. Search paths from the config are expanded
// (globs included) and appended to the flag-provided ones.
func loadConfig(filename string) (*config.Config, error) {
	path := configPath
	if path == "" {
		candidate := filepath.Join(filepath.Dir(filename), "kcc.toml")
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	if path == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("kcc: %w", err)
	}
	include, system, err := cfg.ExpandSearchPaths(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("kcc: %w", err)
	}
	includePaths = append(includePaths, include...)
	systemPaths = append(systemPaths, system...)
	return cfg, nil
}

func printTokenTable(w io.Writer, toks []token.Token) {
	fmt.Fprintf(w, "%-32s%-15s%-22s%s\n", "Lexeme", "Name", "Form", "Value")
	for _, t := range toks {
		val := ""
		switch t.Val.Kind {
		case token.IntValue:
			val = fmt.Sprintf("%d", t.Val.Int)
		case token.FloatValue:
			val = fmt.Sprintf("%g", t.Val.Float)
		}
		fmt.Fprintf(w, "%-32s%-15s%-22s%s\n", t.Text(), t.Name.String(), t.Form.String(), val)
	}
}
