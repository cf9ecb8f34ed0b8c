// Command ragmesh is an interactive local RAG chat: it ingests the documents
// given on the command line into an in-memory session and opens a terminal
// chat answering questions against them.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/anthropics/anthropic-sdk-go"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/openai/openai-go"
	"github.com/spf13/cobra"

	"github.com/hupe1980/ragmesh"
	"github.com/hupe1980/ragmesh/config"
	"github.com/hupe1980/ragmesh/embedding"
	embeddingopenai "github.com/hupe1980/ragmesh/embedding/openai"
	"github.com/hupe1980/ragmesh/extract"
	"github.com/hupe1980/ragmesh/logging"
	"github.com/hupe1980/ragmesh/model"
	modelanthropic "github.com/hupe1980/ragmesh/model/anthropic"
	modelopenai "github.com/hupe1980/ragmesh/model/openai"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath     string
		temperature float64
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "ragmesh [files...]",
		Short: "Chat with your documents using local retrieval-augmented generation",
		Long: `ragmesh ingests plain-text and markdown documents into an in-memory
vector index and opens an interactive chat. Every question retrieves the most
relevant passages and injects them as context for the completion model.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed("temperature") {
				cfg.Completion.Temperature = temperature
			}

			logger := logging.Logger(logging.NoOpLogger{})
			if verbose {
				logger = logging.NewSlogLogger(logging.LogLevelDebug, "text", false)
			}

			mesh, err := buildMesh(cfg, logger)
			if err != nil {
				return err
			}

			docs, err := readDocuments(args)
			if err != nil {
				return err
			}

			reports, err := mesh.Ingest(context.Background(), sessionID, docs...)
			if err != nil {
				return err
			}
			var summary []string
			for _, rep := range reports {
				if rep.Err != nil {
					summary = append(summary, fmt.Sprintf("%s: failed (%v)", rep.Source, rep.Err))
					continue
				}
				summary = append(summary, fmt.Sprintf("%s: %d chunks", rep.Source, rep.Chunks))
			}

			if _, err := tea.NewProgram(newChatModel(mesh, summary)).Run(); err != nil {
				log.Fatal(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "path to YAML config (defaults to ./ragmesh.yaml or ~/.config/ragmesh/config.yaml)")
	cmd.Flags().Float64Var(&temperature, "temperature", 0.7, "sampling temperature override")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline activity to stderr")
	return cmd
}

// sessionID names the single CLI session; the process owns exactly one.
const sessionID = "cli"

func loadConfig(path string) (*config.AppConfig, error) {
	if path == "" {
		cfg, _, err := config.LoadDefault()
		return cfg, err
	}
	return config.Load(path)
}

// buildMesh assembles provider adapters from the configuration.
func buildMesh(cfg *config.AppConfig, logger logging.Logger) (*ragmesh.RAGMesh, error) {
	var embedder embedding.Embedder
	switch cfg.Embedder.Provider {
	case "openai", "":
		embedder = embeddingopenai.NewEmbedder(func(o *embeddingopenai.Options) {
			o.Model = openai.EmbeddingModel(cfg.Embedder.Model)
			o.Dimension = cfg.Embedder.Dimension
		})
	case "mock":
		embedder = embedding.NewMockEmbedder(cfg.Embedder.Dimension)
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Embedder.Provider)
	}

	var completion model.Model
	switch cfg.Completion.Provider {
	case "openai", "":
		completion = modelopenai.NewModel(func(o *modelopenai.Options) {
			o.Model = cfg.Completion.Model
			o.MaxCompletionTokens = cfg.Completion.MaxTokens
		})
	case "anthropic":
		completion = modelanthropic.NewModel(func(o *modelanthropic.Options) {
			o.Model = anthropic.Model(cfg.Completion.Model)
			o.MaxTokens = cfg.Completion.MaxTokens
		})
	case "mock":
		completion = model.NewMockModel()
	default:
		return nil, fmt.Errorf("unknown completion provider %q", cfg.Completion.Provider)
	}

	return ragmesh.New(func(o *ragmesh.Options) {
		o.Embedder = embedder
		o.Model = completion
		o.ChunkSize = cfg.Chunker.Size
		o.ChunkOverlap = cfg.Chunker.Overlap
		o.TopK = cfg.Retrieval.TopK
		o.Temperature = cfg.Completion.Temperature
		o.SystemDirective = cfg.SystemDirective
		o.Logger = logger
	}), nil
}

func readDocuments(paths []string) ([]extract.Document, error) {
	var docs []extract.Document
	for _, p := range paths {
		matches, _ := filepath.Glob(p)
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			data, err := os.ReadFile(m)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", m, err)
			}
			docs = append(docs, extract.Document{Name: filepath.Base(m), Data: data})
		}
	}
	return docs, nil
}
