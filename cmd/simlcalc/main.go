package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/Arnthorny/SimlCalc/internal/calculator"
	"github.com/Arnthorny/SimlCalc/internal/config"
	"github.com/Arnthorny/SimlCalc/internal/format"
	"github.com/Arnthorny/SimlCalc/internal/remote"
	"github.com/Arnthorny/SimlCalc/internal/store"
	"github.com/Arnthorny/SimlCalc/internal/ui"
)

func printUsage() {
	heading := ui.TitleStyle.Render
	label := ui.PromptStyle.Render
	dim := ui.DimStyle.Render

	fmt.Println(heading("simlcalc") + dim(" - keypad calculator"))
	fmt.Println()
	fmt.Println(heading("Usage:"))
	fmt.Println("  simlcalc [flags]")
	fmt.Println("  echo '12+30%=' | simlcalc")
	fmt.Println()
	fmt.Println("  Launches an interactive keypad. When stdin is not a terminal, each")
	fmt.Println("  input line is typed in and the buffer and preview are printed.")
	fmt.Println()
	fmt.Println(heading("Flags:"))
	fmt.Println("  " + label("-h, --help") + "         Show this help message")
	fmt.Println("  " + label("--config <path>") + "    YAML or TOML config file, reloaded on change")
	fmt.Println()
	fmt.Println(heading("Environment:"))
	fmt.Println("  " + label("SIMLCALC_LOCALE") + "       Preview locale (default en-US)")
	fmt.Println("  " + label("SIMLCALC_MAX_LENGTH") + "   Longest expression accepted (default 20)")
	fmt.Println("  " + label("SIMLCALC_STORE") + "        memory, sqlite or bolt")
	fmt.Println("  " + label("SIMLCALC_STORE_PATH") + "   Database file for sqlite and bolt")
	fmt.Println("  " + label("SIMLCALC_EVAL_URL") + "     Remote evaluator base URL (optional)")
	fmt.Println("  " + label("SIMLCALC_EVAL_KEY") + "     Bearer key for the remote evaluator (optional)")
	fmt.Println("  " + label("SIMLCALC_DEBUG") + "        Log to simlcalc.log")
	fmt.Println("  " + label("SIMLCALC_LOG_FILE") + "     Log to this file instead")
	fmt.Println()
	fmt.Println(heading("Keys:"))
	fmt.Println("  0-9 . % / * - +     " + dim("Type into the buffer"))
	fmt.Println("  ( ~                 " + dim("Bracket, negate"))
	fmt.Println("  enter =             " + dim("Commit the result"))
	fmt.Println("  backspace           " + dim("Delete the last character"))
	fmt.Println("  esc c               " + dim("Clear"))
	fmt.Println("  arrows hjkl space   " + dim("Move on the keypad and press"))
}

// parseArgs returns the config path, or help=true for -h/--help.
func parseArgs(args []string) (path string, help bool, err error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			return "", true, nil
		case arg == "--config":
			if i+1 >= len(args) {
				return "", false, fmt.Errorf("--config needs a path")
			}
			i++
			path = args[i]
		case strings.HasPrefix(arg, "--config="):
			path = strings.TrimPrefix(arg, "--config=")
		default:
			return "", false, fmt.Errorf("unknown flag %q", arg)
		}
	}
	return path, false, nil
}

func loadConfig(path string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newCalculator builds a calculator from cfg. The returned store must be
// closed by the caller.
func newCalculator(cfg config.Config) (*calculator.Calculator, store.Store, error) {
	f, err := format.Parse(cfg.Locale)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(cfg.Store.Driver, cfg.Store.Path)
	if err != nil {
		return nil, nil, err
	}

	opts := []calculator.Option{
		calculator.WithMaxLength(cfg.MaxLength),
		calculator.WithFormatter(f),
		calculator.WithStore(st),
	}
	if cfg.Evaluator.URL != "" {
		client := remote.NewClient(cfg.Evaluator.URL, cfg.Evaluator.APIKey, cfg.Evaluator.Timeout())
		opts = append(opts, calculator.WithEvaluator(client))
	}
	return calculator.New(opts...), st, nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func main() {
	path, help, err := parseArgs(os.Args[1:])
	if help {
		printUsage()
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Run 'simlcalc --help' for usage information")
		os.Exit(1)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		fail(err)
	}

	if logPath := cfg.LogPath(); logPath != "" {
		f, err := tea.LogToFile(logPath, "simlcalc")
		if err != nil {
			fail(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	ui.ApplyTheme(cfg.Theme)

	c, st, err := newCalculator(cfg)
	if err != nil {
		fail(err)
	}
	defer st.Close()

	ctx := context.Background()
	if err := c.Resume(ctx); err != nil {
		log.Printf("resume: %v", err)
	}

	if fd := os.Stdin.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		if err := runLine(ctx, c, os.Stdin, os.Stdout, os.Stderr); err != nil {
			fail(err)
		}
		return
	}

	var w *config.Watcher
	if path != "" {
		if w, err = config.Watch(path); err != nil {
			log.Printf("watch config: %v", err)
			w = nil
		} else {
			defer w.Close()
		}
	}

	p := tea.NewProgram(initialModel(c, w))
	if _, err := p.Run(); err != nil {
		fail(err)
	}
}
