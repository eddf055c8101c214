package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/yoeljacobsen/AutoEQ-to-FIIO/internal/config"
	"github.com/yoeljacobsen/AutoEQ-to-FIIO/internal/convert"
)

func main() {
	// Command line flags
	var (
		searchFlag  = flag.String("search", "", "Headphone name to search for")
		modelFlag   = flag.String("model", "", "Target DSP model name (overrides config)")
		outputFlag  = flag.String("output", "", "Output directory (overrides config)")
		configFlag  = flag.String("config", "", "Path to config file")
		noGainFlag  = flag.Bool("no-gain", false, "Suppress the master gain (preamp)")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
		listFlag    = flag.Bool("list", false, "List matching profiles without converting")
	)

	flag.Parse()

	// CLI mode - require a search term
	term := *searchFlag
	if term == "" && flag.NArg() > 0 {
		term = strings.Join(flag.Args(), " ")
	}
	if term == "" {
		fmt.Println("AutoEq to FiiO - Convert AutoEq profiles to FiiO PEQ presets")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  autoeq-fiio -search <headphone> [options]")
		fmt.Println("  autoeq-fiio <headphone> [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: autoeq-fiio-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *outputFlag != "" {
		settings.OutputDir = *outputFlag
	}
	if *modelFlag != "" {
		settings.DSPModel = *modelFlag
	}
	if *noGainFlag {
		settings.SuppressGain = true
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := convert.NewManager(settings, func(event convert.ProgressEvent) {
		if event.Level == convert.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case convert.LevelError:
			prefix = "❌ "
		case convert.LevelWarning:
			prefix = "⚠️  "
		case convert.LevelSuccess:
			prefix = "✅ "
		case convert.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	fmt.Println("🎧 AutoEq to FiiO")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	if err := manager.LoadIndex(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile index: %v\n", err)
		os.Exit(1)
	}

	matches := manager.Search(term)
	if len(matches) == 0 {
		fmt.Fprintf(os.Stderr, "No profiles match %q\n", term)
		os.Exit(1)
	}

	if *listFlag {
		for _, entry := range matches {
			fmt.Println("  " + entry.Name)
		}
		return
	}

	entry := matches[0]
	if len(matches) > 1 {
		fmt.Printf("Found %d matching profiles:\n", len(matches))
		for i, match := range matches {
			fmt.Printf("  %d. %s\n", i+1, match.Name)
		}
		fmt.Println()

		choice, err := promptChoice(len(matches))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		entry = matches[choice-1]
		fmt.Println()
	}

	result, err := manager.Convert(ctx, entry)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nConversion cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error converting %q: %v\n", entry.Name, err)
		os.Exit(1)
	}

	path, err := manager.Save(ctx, result)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving preset: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Saved %s (%d filters) to %s\n", entry.Name, result.FilterCount, path)
	if result.Truncated {
		fmt.Println("   (profile had more filters than the device supports; extras were dropped)")
	}
}

// promptChoice reads a 1-based selection from stdin.
func promptChoice(max int) (int, error) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("Select a profile [1-%d]: ", max)
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > max {
			fmt.Println("Invalid selection.")
			continue
		}
		return choice, nil
	}
}
