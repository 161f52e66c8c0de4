package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "resufit"
)

type Config struct {
	// SkillsFile is the skill taxonomy consumed by the skill extractor.
	SkillsFile string `mapstructure:"skills-file"`
	// ProfilesFile holds the role archetypes, grouped level -> role.
	ProfilesFile string `mapstructure:"profiles-file"`
	Level        string `mapstructure:"level"`
	Role         string `mapstructure:"role"`
	// Concurrency bounds the batch worker count; 0 means one worker
	// per CPU.
	Concurrency int `mapstructure:"concurrency"`

	Grammar *GrammarConfig `mapstructure:"grammar"`
	AI      *AIConfig      `mapstructure:"ai"`
}

type GrammarConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Username   string `mapstructure:"username"`
	APIKeyFile string `mapstructure:"api-key-file"`
}

type AIConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Gemini  *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resufit is a cli for extracting structured profiles from resumes and scoring them against job profiles",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key", "GEMINI_API_KEY"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resufit.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
		viper.SetConfigType("yaml")
	}

	// A missing default config file is fine; everything has a flag or
	// an env fallback.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}
