package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/killallgit/search-api/pkg/config"
	"github.com/killallgit/search-api/pkg/logging"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "search-api",
	Short: "Search API server",
	Long: `Search API - a small HTTP service that fronts public search providers

Endpoints:
  • GET  /hello/{name}            greeting
  • POST /find/person/wiki_url    Wikipedia URLs for a person via web search
  • POST /find/youtube/videos     YouTube video search
  • GET  / and GET /health        service status`,
	SilenceUsage:      true,
	PersistentPreRunE: initialize,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// initialize loads the configuration and sets up logging for commands that need it
func initialize(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}

	if err := config.Init(); err != nil {
		return fmt.Errorf("error initializing config: %w", err)
	}

	level := config.GetString("logging.level")
	if cmd.Flags().Changed("log-level") || level == "" {
		level, _ = cmd.Flags().GetString("log-level")
	}
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")
	if !cmd.Flags().Changed("json-logs") {
		jsonLogs = strings.EqualFold(config.GetString("logging.format"), "json")
	}

	logging.Setup(level, jsonLogs)

	if strings.EqualFold(level, "debug") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Debug().Str("level", level).Bool("json", jsonLogs).Msg("Logging configured")
	return nil
}
