package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/resufit/resufit/internal/document"
	"github.com/resufit/resufit/internal/resume"
	"github.com/resufit/resufit/internal/taxonomy"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var parseCmd = &cobra.Command{
	Use:   "parse [resume file]",
	Short: "Extract the structured profile from a resume without scoring it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parse(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().Bool("dump", false, "write the profile to a temp file instead of stdout")
}

func parse(cmd *cobra.Command, path string) {
	ctx := context.Background()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	// Parsing needs only the vocabulary and the optional recognizer,
	// not the job profiles.
	var vocabulary []string
	if config.SkillsFile != "" {
		vocabulary, err = taxonomy.LoadVocabulary(config.SkillsFile)
		if err != nil {
			logger.Fatal("loading the skill taxonomy", zap.Error(err))
		}
	}

	recognizer, err := buildRecognizer(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the recognizer", zap.Error(err))
	}

	text, err := document.ExtractText(path)
	if err != nil {
		logger.Fatal("extracting text", zap.String("resume", path), zap.Error(err))
	}

	profile := resume.Parse(ctx, text, vocabulary, recognizer)

	if cmd.Flag("dump").Value.String() == "true" {
		filename, err := profile.DumpToTmpFile()
		if err != nil {
			logger.Fatal("dumping the profile", zap.Error(err))
		}
		logger.Info("dumping profile to file", zap.String("filename", filename))
		return
	}

	pretty, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		logger.Fatal("rendering the profile", zap.Error(err))
	}
	fmt.Println(string(pretty))
}
