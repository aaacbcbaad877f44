package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/jmcnair/voterhub/api"
	"github.com/jmcnair/voterhub/config"
	"github.com/jmcnair/voterhub/congress"
	"github.com/jmcnair/voterhub/database"
	"github.com/spf13/cobra"
)

var rootCmdPersistentFlags struct {
	ConfigFile string
	LogLevel   string
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootCmdPersistentFlags.ConfigFile, "config", "c", "", "Path to config file (default: search for config.yml in current dir, ~/.voterhub, /etc/voterhub)")
	rootCmd.PersistentFlags().StringVar(&rootCmdPersistentFlags.LogLevel, "log-level", "", "Log level (debug, info, warn, error) - overrides config file setting")
}

var rootCmd = &cobra.Command{
	Use:   "voterhub",
	Short: "VoterHub lets you browse congressional members and bills and bookmark legislators",
	Long:  `VoterHub is a web application for browsing U.S. congressional members and bills, backed by a legislative data API. Users can sign up, log in and like members for later reference.`,
	Example: `voterhub --config config.yml
  voterhub -c /path/to/config.yml --log-level debug`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Run: root,
}

func root(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	level := rootCmdPersistentFlags.LogLevel
	if level == "" {
		level = cfg.LogLevel
	}
	setLogLevel(level)

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	server, err := api.New(cfg, db, congress.New(cfg.Congress), log.GetLevel() == log.DebugLevel)
	if err != nil {
		log.Fatalf("failed to create API server: %v", err)
	}

	go func() {
		log.Info("starting API server", "listen", cfg.Listen)
		if err := server.Run(); err != nil {
			log.Error("API server error", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	log.Info("voterhub started successfully")
	<-c
	log.Info("shutting down gracefully...")

	if err := db.Close(); err != nil {
		log.Error("failed to close database", "error", err)
	}
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.Warnf("unknown log level %s, defaulting to info", level)
		log.SetLevel(log.InfoLevel)
	}
}

func Execute() error {
	return rootCmd.Execute()
}
