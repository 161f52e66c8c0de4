package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/resufit/resufit/internal/document"
	"github.com/resufit/resufit/internal/resume"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scoreCmd = &cobra.Command{
	Use:   "score [resume file]",
	Short: "Score a single resume and print the full breakdown",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		score(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("level", "l", "", "candidate level from the job profiles file")
	scoreCmd.Flags().StringP("role", "r", "", "role name from the job profiles file")
}

func score(cmd *cobra.Command, path string) {
	ctx := context.Background()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}
	applyProfileFlags(cmd, config)

	kit, err := buildToolkit(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the toolkit", zap.Error(err))
	}

	job, err := selectProfile(config, kit.store)
	if err != nil {
		logger.Fatal("selecting the job profile", zap.Error(err))
	}

	text, err := document.ExtractText(path)
	if err != nil {
		logger.Fatal("extracting text", zap.String("resume", path), zap.Error(err))
	}

	profile := resume.Parse(ctx, text, kit.vocabulary, kit.recognizer)

	result, err := kit.engine.Evaluate(ctx, profile, job, time.Now())
	if err != nil {
		logger.Fatal("scoring", zap.String("resume", path), zap.Error(err))
	}

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal("rendering the result", zap.Error(err))
	}
	fmt.Println(string(pretty))
}

// applyProfileFlags lets the per-command flags override config keys for
// commands that do not bind them through viper.
func applyProfileFlags(cmd *cobra.Command, config *Config) {
	if level := cmd.Flag("level").Value.String(); level != "" {
		config.Level = level
	}
	if role := cmd.Flag("role").Value.String(); role != "" {
		config.Role = role
	}
}
