package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/prabeshj/chatlytics/pkg/analysis"
	"github.com/prabeshj/chatlytics/pkg/ingestion"
)

func main() {
	var (
		inputPath = flag.String("input", "", "Path to an exported chat transcript (required)")
		user      = flag.String("user", analysis.OverallSender, "Sender to filter by, or 'Overall' for everyone")
		pretty    = flag.Bool("pretty", false, "Indent the JSON output")
		help      = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help || *inputPath == "" {
		printUsage()
		os.Exit(0)
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("Failed to read transcript: %v", err)
	}

	corpus, err := ingestion.NewParser().Parse(string(data))
	if err != nil {
		log.Fatalf("Failed to parse transcript: %v", err)
	}
	log.Printf("Parsed %d messages", len(corpus))

	report, err := analysis.NewAnalyzer().Analyze(context.Background(), corpus, *user)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(report); err != nil {
		log.Fatalf("Failed to encode report: %v", err)
	}
}

func printUsage() {
	fmt.Println("analyze - compute chat transcript statistics offline")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  analyze -input <transcript.txt> [-user <sender>] [-pretty]")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}
