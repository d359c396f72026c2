package main

import (
	"flag"
	"fmt"
	"os"
	"stackvm/internal/config"
	"stackvm/internal/logger"
	"stackvm/internal/runner"
	"stackvm/pkg/color"
	"stackvm/pkg/stackvm"
	"strings"

	"github.com/charmbracelet/log"
)

// Main entry point for the stackvm runner.
func main() {
	options := runner.Runner{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.BoolVar(&options.Trace, "t", false, "Trace every operation")
	flag.BoolVar(&options.ShowStack, "s", false, "Print the remaining stack at exit")
	flag.IntVar(&options.Capacity, "capacity", 0, "Initial stack capacity")
	flag.StringVar(&options.ConfigFile, "config", config.DefaultPath, "Configuration file")

	flag.Parse()
	args := flag.Args()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := config.Load(options.ConfigFile, set["config"])
	if err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}
	applyConfig(&options, cfg, set)

	logger.Init(options.Verbose, options.Trace, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] [file]\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println("Operations:")
		fmt.Println("  " + strings.Join(stackvm.Names(), " "))
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if len(args) > 0 {
		options.SourceFile = args[0]
	}

	if err := options.Run(); err != nil {
		if code, ok := stackvm.CodeOf(err); ok {
			log.Fatal("Execution failed", "code", int(code), "error", err)
		}
		log.Fatal("Execution failed", "error", err)
	}
}

// applyConfig fills every option not given on the command line from cfg
func applyConfig(options *runner.Runner, cfg *config.Config, set map[string]bool) {
	if !set["v"] {
		options.Verbose = cfg.Verbose
	}
	if !set["n"] {
		options.NoColor = cfg.NoColor
	}
	if !set["t"] {
		options.Trace = cfg.Trace
	}
	if !set["s"] {
		options.ShowStack = cfg.ShowStack
	}
	if !set["capacity"] {
		options.Capacity = cfg.Capacity
	}
}
