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
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	collab "github.com/piyushtamaskar21/collab-connect"
	"github.com/piyushtamaskar21/collab-connect/ai"
	"github.com/piyushtamaskar21/collab-connect/server"
	"github.com/urfave/cli/v2"
)

func main() {
	// Best effort; the .env file is optional
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "collab",
		Usage: "Employee collaboration matching engine",
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
				Name:   "serve",
				Usage:  "Start the HTTP API server",
				Action: serveCommand,
				Flags: append(dbFlags(),
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address",
						Value: ":8000",
					},
					&cli.BoolFlag{
						Name:  "no-generation",
						Usage: "Disable external content generation (deterministic summaries only)",
					},
					&cli.IntFlag{
						Name:  "seed-count",
						Usage: "Seed this many synthetic employees when the roster is empty",
						Value: 30,
					},
				),
			},
			{
				Name:   "seed",
				Usage:  "Generate and persist a synthetic employee roster",
				Action: seedCommand,
				Flags: append(dbFlags(),
					&cli.IntFlag{
						Name:  "count",
						Usage: "Number of employees to generate",
						Value: 30,
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "Random seed (same seed, same roster)",
						Value: 1,
					},
				),
			},
			{
				Name:      "search",
				Usage:     "Search the roster by name, skill, or role",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: append(dbFlags(),
					&cli.IntFlag{
						Name:  "top",
						Usage: "Maximum number of results",
						Value: 5,
					},
				),
			},
			{
				Name:      "similar",
				Usage:     "List employees most similar to a roster member",
				ArgsUsage: "<employee-id>",
				Action:    similarCommand,
				Flags: append(dbFlags(),
					&cli.IntFlag{
						Name:  "top",
						Usage: "Maximum number of results",
						Value: 5,
					},
					&cli.BoolFlag{
						Name:  "no-generation",
						Usage: "Skip the generated narrative summary (deterministic summary only)",
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to BadgerDB database directory",
			Value:   "./collab-db",
		},
		&cli.StringFlag{
			Name:    "host",
			Usage:   "OpenAI-compatible service host URL",
			Value:   "http://localhost:11434/v1",
			EnvVars: []string{"COLLAB_AI_HOST"},
		},
		&cli.StringFlag{
			Name:    "embedding-model",
			Usage:   "Embedding model name",
			Value:   "embeddinggemma",
			EnvVars: []string{"COLLAB_EMBEDDING_MODEL"},
		},
		&cli.StringFlag{
			Name:    "chat-model",
			Usage:   "Chat model name for generation and extraction",
			Value:   "qwen2.5:3b",
			EnvVars: []string{"COLLAB_CHAT_MODEL"},
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "API token for the AI service",
			EnvVars: []string{"OPENAI_API_KEY"},
		},
	}
}

func openDirectory(c *cli.Context) (*collab.Directory, error) {
	config := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithChatModel(c.String("chat-model")),
		ai.WithToken(c.String("token")),
	)
	return collab.OpenDirectory(c.String("db"), collab.WithAIConfig(config))
}

func serveCommand(c *cli.Context) error {
	ctx := context.Background()

	dir, err := openDirectory(c)
	if err != nil {
		return fmt.Errorf("failed to open directory: %w", err)
	}
	defer dir.Close()

	// Seed an empty roster so the demo is usable out of the box
	count, err := dir.EmployeeRepository().CountEmployees(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		slog.Info("empty roster, seeding", "count", c.Int("seed-count"))
		if err := dir.Seed(ctx, c.Int("seed-count"), 1); err != nil {
			return fmt.Errorf("failed to seed roster: %w", err)
		}
	} else {
		if err := dir.Load(ctx); err != nil {
			return fmt.Errorf("failed to load roster: %w", err)
		}
	}

	var opts []server.Option
	if c.Bool("no-generation") {
		opts = append(opts, server.WithoutGeneration())
	}
	srv, err := server.New(dir.Engine(), c.String("addr"), opts...)
	if err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		slog.Info("shutting down")
		if err := srv.Shutdown(context.Background()); err != nil {
			slog.Error("shutdown error", "err", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	dir, err := openDirectory(c)
	if err != nil {
		return fmt.Errorf("failed to open directory: %w", err)
	}
	defer dir.Close()

	if err := dir.Seed(ctx, c.Int("count"), c.Int64("seed")); err != nil {
		return fmt.Errorf("failed to seed roster: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Seeded %d employees into %s\n", c.Int("count"), c.String("db"))
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}

	dir, err := openDirectory(c)
	if err != nil {
		return fmt.Errorf("failed to open directory: %w", err)
	}
	defer dir.Close()

	if err := dir.Load(ctx); err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	results := dir.Engine().Search(ctx, query, c.Int("top"))
	if len(results) == 0 {
		fmt.Println("No matches.")
		return nil
	}
	for _, result := range results {
		fmt.Printf("%-8s %-24s %-28s %.3f  %s\n",
			result.Employee.Id, result.Employee.Name, result.Employee.Profile.Role,
			result.Score, strings.Join(result.Reasons, "; "))
	}
	return nil
}

func similarCommand(c *cli.Context) error {
	ctx := context.Background()

	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("employee id is required")
	}

	dir, err := openDirectory(c)
	if err != nil {
		return fmt.Errorf("failed to open directory: %w", err)
	}
	defer dir.Close()

	if err := dir.Load(ctx); err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	results := dir.Engine().FindSimilar(ctx, id, c.Int("top"))
	if len(results) == 0 {
		fmt.Println("No similar employees found.")
		return nil
	}
	for _, result := range results {
		fmt.Printf("%-8s %-24s %-28s %.3f  %s\n",
			result.Employee.Id, result.Employee.Name, result.Employee.Profile.Role,
			result.Score, strings.Join(result.Reasons, "; "))
	}

	summary := dir.Engine().CollaborationSummary(ctx, id, results, !c.Bool("no-generation"))
	if summary != "" {
		fmt.Printf("\n%s\n", summary)
	}
	return nil
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
