// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/macrofind"
	"github.com/poiesic/macrofind/batch"
	"github.com/poiesic/macrofind/core"
)

func main() {
	providerFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to YAML configuration file",
		},
		&cli.StringFlag{
			Name:  "fdc-host",
			Usage: "FoodData Central base URL",
		},
		&cli.StringFlag{
			Name:  "fdc-api-key",
			Usage: "FoodData Central API key",
		},
		&cli.StringFlag{
			Name:  "off-host",
			Usage: "Open Food Facts base URL",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Per-provider lookup timeout",
			Value: 5 * time.Second,
		},
		&cli.IntFlag{
			Name:  "page-size",
			Usage: "Number of candidates requested per provider",
			Value: 25,
		},
	}

	app := &cli.App{
		Name:  "macrofind",
		Usage: "Food search and macro lookup against public nutrient databases",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Resolve a free-text food query to ranked items with macros",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Emit results as JSON",
					},
				}, providerFlags...),
			},
			{
				Name:   "batch",
				Usage:  "Resolve many queries, one per input line",
				Action: batchCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "File with one query per line (\"-\" for stdin)",
						Value:   "-",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent lookups",
						Value: 4,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Emit results as JSON",
					},
				}, providerFlags...),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query is required")
	}

	cfg, err := buildProviderConfig(c)
	if err != nil {
		return err
	}

	engine, err := macrofind.NewEngine(macrofind.WithProviderConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	items := engine.Search(context.Background(), query)

	if c.Bool("json") {
		return writeJSON(os.Stdout, items)
	}

	printItems(os.Stdout, query, items)
	return nil
}

func batchCommand(c *cli.Context) error {
	queries, err := readQueries(c.String("file"))
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		return fmt.Errorf("no queries in input")
	}

	cfg, err := buildProviderConfig(c)
	if err != nil {
		return err
	}

	engine, err := macrofind.NewEngine(macrofind.WithProviderConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	pipeline, err := engine.NewBatchPipeline(batch.WithPoolSize(c.Int("workers")))
	if err != nil {
		return fmt.Errorf("failed to create batch pipeline: %w", err)
	}
	defer pipeline.Release()

	results := pipeline.Run(context.Background(), queries)

	if c.Bool("json") {
		return writeJSON(os.Stdout, results)
	}

	for _, result := range results {
		printItems(os.Stdout, result.Query, result.Items)
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

// readQueries collects non-blank lines from the given file, or stdin for "-".
func readQueries(path string) ([]string, error) {
	var reader io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open query file: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var queries []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			queries = append(queries, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read queries: %w", err)
	}
	return queries, nil
}

func printItems(w io.Writer, query string, items []core.FoodItem) {
	fmt.Fprintf(w, "%q: %d result(s)\n", query, len(items))
	for i, item := range items {
		fmt.Fprintf(w, "%d: %s (%s) kcal=%.0f protein=%.1f carbs=%.1f fat=%.1f\n",
			i+1, item.Name, item.ServingSize,
			item.Macros.Calories, item.Macros.Protein, item.Macros.Carbs, item.Macros.Fat)
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
