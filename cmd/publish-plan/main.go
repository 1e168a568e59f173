package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jmelhus/albumpath/internal/capture"
	"github.com/jmelhus/albumpath/internal/catalog"
	"github.com/jmelhus/albumpath/internal/config"
	"github.com/jmelhus/albumpath/internal/publish"
	"github.com/jmelhus/albumpath/internal/snapshot"
)

func main() {
	// Command line flags
	var (
		snapshotFlag   = flag.String("snapshot", "", "Path to a catalog snapshot JSON file")
		configFlag     = flag.String("config", "", "Path to config file")
		templateFlag   = flag.String("template", "", "Destination path template (overrides config)")
		collectionFlag = flag.String("collection", "", "Published collection id to resolve the upload root from")
		rootFlag       = flag.String("root", "", "Default upload root (overrides config)")
		keywordsFlag   = flag.String("keywords", "", "Comma-separated keyword list (overrides config)")
		applyFlag      = flag.Bool("apply", false, "Apply keyword deltas to the in-memory snapshot")
		jsonFlag       = flag.Bool("json", false, "Print the plan as JSON")
		verboseFlag    = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	snapshotPath := *snapshotFlag
	if snapshotPath == "" && flag.NArg() > 0 {
		snapshotPath = flag.Arg(0)
	}
	if snapshotPath == "" {
		fmt.Println("publish-plan - Resolve destination paths for a catalog snapshot")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  publish-plan -snapshot <file> [options]")
		fmt.Println("  publish-plan <file> [options]")
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
	if *templateFlag != "" {
		settings.PathTemplate = *templateFlag
	}
	if *rootFlag != "" {
		settings.DefaultUploadRoot = *rootFlag
	}
	if *keywordsFlag != "" {
		settings.Keywords = nil
		for _, kw := range strings.Split(*keywordsFlag, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				settings.Keywords = append(settings.Keywords, kw)
			}
		}
	}

	// Load snapshot
	snap, err := snapshot.Load(snapshotPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		os.Exit(1)
	}

	var container catalog.Container
	if *collectionFlag != "" {
		container = snap.Container(*collectionFlag)
		if container == nil {
			fmt.Fprintf(os.Stderr, "Unknown collection %q in snapshot\n", *collectionFlag)
			os.Exit(1)
		}
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

	// Create planner with progress callback
	var files catalog.FileTimes
	if settings.ReadFileDates {
		files = capture.ExifFileTimes{}
	}

	planner := publish.NewPlanner(settings, files, nil, func(event catalog.Event) {
		if event.Level == catalog.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := "      "
		switch event.Level {
		case catalog.LevelError:
			prefix = "ERROR "
		case catalog.LevelWarning:
			prefix = "WARN  "
		case catalog.LevelSuccess:
			prefix = "OK    "
		case catalog.LevelInfo:
			prefix = "INFO  "
		}

		fmt.Println(prefix + event.Message)
	})

	items := snap.CatalogItems()
	plan, err := planner.Plan(ctx, container, items)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nPlanning cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error planning: %v\n", err)
		os.Exit(1)
	}

	if *applyFlag {
		planner.Apply(plan, items)
	}

	if *jsonFlag {
		printJSON(plan)
		return
	}

	fmt.Println()
	fmt.Printf("Upload root: %s\n", plan.UploadRoot)
	for _, entry := range plan.Entries {
		fmt.Printf("  %s -> %s\n", entry.ItemID, entry.Path)
		if len(entry.Keywords.NamesToAdd) > 0 {
			fmt.Printf("      + %s\n", strings.Join(entry.Keywords.NamesToAdd, ", "))
		}
		if len(entry.Keywords.NamesToRemove) > 0 {
			fmt.Printf("      - %s\n", strings.Join(entry.Keywords.NamesToRemove, ", "))
		}
	}
}

func printJSON(plan *publish.Plan) {
	type jsonEntry struct {
		Item           string   `json:"item"`
		Path           string   `json:"path"`
		AddKeywords    []string `json:"add_keywords,omitempty"`
		RemoveKeywords []string `json:"remove_keywords,omitempty"`
	}

	out := struct {
		UploadRoot string      `json:"upload_root"`
		Entries    []jsonEntry `json:"entries"`
	}{UploadRoot: plan.UploadRoot}

	for _, entry := range plan.Entries {
		out.Entries = append(out.Entries, jsonEntry{
			Item:           entry.ItemID,
			Path:           entry.Path,
			AddKeywords:    entry.Keywords.NamesToAdd,
			RemoveKeywords: entry.Keywords.NamesToRemove,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding plan: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
