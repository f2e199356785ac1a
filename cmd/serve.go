package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Ravipaygan296/talentmatch-ai/internal/analyzer"
	"github.com/Ravipaygan296/talentmatch-ai/internal/logger"
	"github.com/Ravipaygan296/talentmatch-ai/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the analysis HTTP API",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8000", "listen address for the HTTP API")

	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func serve() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the talentmatch api", zap.String("version", version))

	var aiConfig *AIConfig
	if config != nil {
		aiConfig = config.AI
	}

	oracles, ready := buildOracles(ctx, aiConfig, logger)

	serverConfig := server.Config{
		Addr:         viper.GetString("server.addr"),
		OraclesReady: ready,
	}
	if config != nil && config.Server != nil {
		if config.Server.Addr != "" {
			serverConfig.Addr = config.Server.Addr
		}
		serverConfig.ReadTimeout = config.Server.ReadTimeout
		serverConfig.WriteTimeout = config.Server.WriteTimeout
	}

	srv := server.New(serverConfig, analyzer.New(oracles, logger), logger)

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}

	logger.Info("exiting", zap.String("reason", "server stopped"))
}
