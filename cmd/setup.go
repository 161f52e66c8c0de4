package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/resufit/resufit/internal/ai"
	"github.com/resufit/resufit/internal/ai/gemini"
	"github.com/resufit/resufit/internal/grammar"
	"github.com/resufit/resufit/internal/jobprofile"
	"github.com/resufit/resufit/internal/logger"
	"github.com/resufit/resufit/internal/scoring"
	"github.com/resufit/resufit/internal/secrets"
	"github.com/resufit/resufit/internal/taxonomy"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// toolkit bundles the collaborators every evaluation needs.
type toolkit struct {
	logger     *zap.Logger
	vocabulary []string
	store      *jobprofile.Store
	recognizer ai.PersonRecognizer
	engine     *scoring.Engine
}

func newLogger() (*zap.Logger, error) {
	return logger.New(viper.GetBool("json"), viper.GetBool("debug"))
}

// buildToolkit loads the vocabulary and job profiles and wires the
// optional collaborators according to the config.
func buildToolkit(ctx context.Context, config *Config, log *zap.Logger) (*toolkit, error) {
	if config.SkillsFile == "" {
		return nil, fmt.Errorf("a skill taxonomy file is required under skills-file")
	}
	if config.ProfilesFile == "" {
		return nil, fmt.Errorf("a job profiles file is required under profiles-file")
	}

	vocabulary, err := taxonomy.LoadVocabulary(config.SkillsFile)
	if err != nil {
		return nil, err
	}
	log.Info("loaded skill vocabulary", zap.Int("count", len(vocabulary)))

	store, err := jobprofile.LoadStore(config.ProfilesFile)
	if err != nil {
		return nil, err
	}
	log.Info("loaded job profiles", zap.Any("levels", store.Levels()))

	recognizer, err := buildRecognizer(ctx, config, log)
	if err != nil {
		return nil, err
	}

	checker, err := buildGrammarChecker(config, log)
	if err != nil {
		return nil, err
	}

	return &toolkit{
		logger:     log,
		vocabulary: vocabulary,
		store:      store,
		recognizer: recognizer,
		engine:     scoring.New(log, checker),
	}, nil
}

func buildRecognizer(ctx context.Context, config *Config, log *zap.Logger) (ai.PersonRecognizer, error) {
	if config.AI == nil || !config.AI.Enabled {
		log.Debug("ai name recognition disabled; using the regex fallback")
		return nil, nil
	}
	if config.AI.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: viper.GetString("ai.gemini.api-key"),
		File:  config.AI.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, err
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, config.AI.Gemini.Model)
	if err != nil {
		return nil, err
	}

	log.Info("ai name recognition enabled", zap.String("model", generator.Model()))
	return gemini.NewRecognizer(generator, log, config.AI.Gemini.MaxLogLength), nil
}

func buildGrammarChecker(config *Config, log *zap.Logger) (scoring.GrammarChecker, error) {
	if config.Grammar != nil && !config.Grammar.Enabled {
		log.Debug("grammar check disabled; presentation scoring uses the fallback award")
		return nil, nil
	}

	checker := grammar.New(log)
	if config.Grammar != nil && config.Grammar.APIKeyFile != "" {
		apiKey, err := secrets.Load(secrets.Source{
			Name: "languagetool api key",
			File: config.Grammar.APIKeyFile,
		})
		if err != nil {
			return nil, err
		}
		checker.WithCredentials(config.Grammar.Username, apiKey)
	}
	return checker, nil
}

// selectProfile resolves the target job profile from config keys.
func selectProfile(config *Config, store *jobprofile.Store) (*jobprofile.JobProfile, error) {
	if config.Level == "" || config.Role == "" {
		return nil, fmt.Errorf("a candidate level and role are required (available levels: %s)",
			strings.Join(store.Levels(), ", "))
	}
	return store.Get(config.Level, config.Role)
}

var supportedExtensions = map[string]struct{}{
	".pdf":  {},
	".docx": {},
	".txt":  {},
}

// collectResumes expands the arguments into resume files. Directory
// arguments contribute every supported file they contain.
func collectResumes(args []string) ([]string, error) {
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if _, ok := supportedExtensions[ext]; ok {
				paths = append(paths, filepath.Join(arg, entry.Name()))
			}
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no resume files found")
	}
	return paths, nil
}
