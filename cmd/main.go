package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"product-extractor/extractor"
	"product-extractor/internal/types"
)

// urlResult is one CLI row: the snapshot (when any) plus the outcome the
// engine's classifier assigned to it.
type urlResult struct {
	URL     string                `json:"url"`
	Product *types.ScrapedProduct `json:"product,omitempty"`
	Outcome string                `json:"outcome"`
	Error   string                `json:"error,omitempty"`
}

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	// Parse command line flags
	var (
		urlFlag     = flag.String("url", "", "Single product URL to extract")
		urlsFlag    = flag.String("urls", "", "Comma-separated list of product URLs")
		outputFlag  = flag.String("output", "", "Output file path (default: stdout)")
		timeout     = flag.Duration("timeout", 45*time.Second, "Navigation timeout")
		settleDelay = flag.Duration("settle", 2*time.Second, "Post-load settling pause")
		maxRetries  = flag.Int("retries", 3, "Maximum retry attempts (HTTP-only mode)")
		httpOnly    = flag.Bool("http-only", false, "Use HTTP requests only (disable headless browser)")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	// Validate flags - either -url or -urls must be provided
	if *urlFlag == "" && *urlsFlag == "" {
		log.Fatal("Either -url or -urls flag is required")
	}
	if *urlFlag != "" && *urlsFlag != "" {
		log.Fatal("Cannot use both -url and -urls flags")
	}

	var urls []string
	if *urlFlag != "" {
		urls = []string{strings.TrimSpace(*urlFlag)}
	} else {
		urls = strings.Split(*urlsFlag, ",")
		for i, u := range urls {
			urls[i] = strings.TrimSpace(u)
		}
	}

	// Setup logging
	logger := logrus.New()

	// Set timestamp format with milliseconds
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	// Set log level from LOG_LEVEL env if present
	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		if level, err := logrus.ParseLevel(levelStr); err == nil {
			logger.SetLevel(level)
		}
	} else if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	config := types.DefaultConfig()
	config.Timeout = *timeout
	config.SettleDelay = *settleDelay
	config.MaxRetries = *maxRetries
	config.UseHeadlessBrowser = !*httpOnly

	engine := extractor.NewEngine(config, logger)
	defer engine.Close()

	startTime := time.Now()
	logger.Infof("Starting extraction for %d URL(s)", len(urls))

	var results []urlResult
	resolved := 0

	for i, u := range urls {
		logger.Infof("Processing URL %d/%d: %s", i+1, len(urls), u)

		ctx, cancel := context.WithTimeout(context.Background(), *timeout+*settleDelay+30*time.Second)
		product, err := engine.ScrapeProduct(ctx, u)
		cancel()

		result := urlResult{URL: u}
		switch {
		case err != nil:
			result.Error = err.Error()
			var invalid extractor.ErrInvalidInput
			if errors.As(err, &invalid) {
				result.Outcome = "invalid_input"
			} else {
				result.Outcome = "fetch_failed"
			}
			logger.Warnf("Extraction failed for %s: %v", u, err)
		default:
			result.Product = product
			result.Outcome = string(extractor.ClassifyOutcome(product))
			if result.Outcome == string(extractor.OutcomeResolved) {
				resolved++
			}
		}
		results = append(results, result)
	}

	logger.Infof("Extraction completed in %v", time.Since(startTime))

	// Marshal results to JSON
	jsonData, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		logger.Fatalf("Failed to marshal results: %v", err)
	}

	// Output results
	if *outputFlag != "" {
		if err := os.WriteFile(*outputFlag, jsonData, 0644); err != nil {
			logger.Fatalf("Failed to write output file: %v", err)
		}
		logger.Infof("Results written to: %s", *outputFlag)
	} else {
		fmt.Println(string(jsonData))
	}

	// Print summary
	logger.Infof("Total URLs processed: %d", len(urls))
	logger.Infof("Prices resolved: %d", resolved)
}
