package cmd

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Ravipaygan296/talentmatch-ai/internal/analyzer"
	"github.com/Ravipaygan296/talentmatch-ai/internal/oracle/gemini"
	"github.com/Ravipaygan296/talentmatch-ai/internal/secrets"
)

const (
	app = "talentmatch"

	geminiAPIKeyEnv = "GEMINI_API_KEY"
)

type Config struct {
	Server *ServerConfig `mapstructure:"server"`
	AI     *AIConfig     `mapstructure:"ai"`
}

type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read-timeout"`
	WriteTimeout time.Duration `mapstructure:"write-timeout"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey         string `mapstructure:"api-key"`
	APIKeyFile     string `mapstructure:"api-key-file"`
	Model          string `mapstructure:"model"`
	EmbeddingModel string `mapstructure:"embedding-model"`
	MaxRetries     int    `mapstructure:"max-retries"`
	MaxLogLength   int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "talentmatch scores how well a resume matches a job description",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is talentmatch.yaml in current directory)")
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
	}

	// The config file is optional: without one the pipeline runs on pattern
	// matching and deterministic fallbacks only.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config Config

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           &config,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(viper.AllSettings()); err != nil {
		return nil, err
	}

	return &config, nil
}

// buildOracles constructs the model oracles from the AI config. Any problem
// here leaves the pipeline in degraded mode instead of failing the command.
func buildOracles(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (analyzer.Oracles, bool) {
	if cfg == nil || !cfg.Enabled {
		logger.Info("ai oracles disabled, running on fallbacks only")
		return analyzer.Oracles{}, false
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		logger.Warn("unsupported ai provider, running on fallbacks only",
			zap.String("provider", cfg.Provider),
		)
		return analyzer.Oracles{}, false
	}

	geminiCfg := cfg.Gemini
	if geminiCfg == nil {
		geminiCfg = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: geminiCfg.APIKey,
		Env:   geminiAPIKeyEnv,
		File:  geminiCfg.APIKeyFile,
	})
	if err != nil {
		logger.Warn("skipping ai oracles",
			zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY, GEMINI_API_KEY_FILE, or the ai.gemini section in the configuration file"),
		)
		return analyzer.Oracles{}, false
	}

	client, err := gemini.NewClient(ctx, apiKey, gemini.Config{
		Model:          geminiCfg.Model,
		EmbeddingModel: geminiCfg.EmbeddingModel,
		MaxRetries:     geminiCfg.MaxRetries,
		MaxLogLength:   geminiCfg.MaxLogLength,
	}, logger)
	if err != nil {
		logger.Warn("skipping ai oracles", zap.Error(err))
		return analyzer.Oracles{}, false
	}

	return analyzer.Oracles{
		Embedder:   gemini.NewEmbedder(client),
		Tagger:     gemini.NewTagger(client),
		Summarizer: gemini.NewSummarizer(client),
	}, true
}
