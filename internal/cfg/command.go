// Package cfg initializes Viper, Cobra, and wires the pipeline from flags.
package cfg

import (
	"context"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	ytclient "github.com/ytget/ytdlp/v2/client"

	"github.com/ytget/yt-fetch/internal/app"
	"github.com/ytget/yt-fetch/internal/config"
	"github.com/ytget/yt-fetch/internal/download"
	"github.com/ytget/yt-fetch/internal/extract"
	"github.com/ytget/yt-fetch/internal/logging"
	"github.com/ytget/yt-fetch/internal/platform"
	"github.com/ytget/yt-fetch/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "yt-fetch",
	Short: "Download a single YouTube video at a chosen resolution.",
	Long: `yt-fetch downloads one YouTube video per run. It lists the available
mp4 video+audio encodings, lets you pick one by flag or interactive menu,
and saves the file with progress feedback.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Level = viper.GetInt(KeyDebug)
		logging.QuietStdLog()
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return execute(cmd.Context())
	},
}

// Execute parses the command line and runs the pipeline.
func Execute(ctx context.Context) error {
	if err := initFlags(); err != nil {
		return err
	}
	return rootCmd.ExecuteContext(ctx)
}

// execute builds the collaborators from the resolved configuration and runs
// the single download.
func execute(ctx context.Context) error {
	settings := config.NewSettings()
	if err := settings.Load(viper.GetString(KeyEnvFile)); err != nil {
		return err
	}

	// The file log lives alongside the downloads. Losing it is not fatal.
	dir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err == nil {
		if err := logging.SetupLogging(dir); err != nil {
			logging.W("Log file was not created: %v", err)
		}
	}

	httpClient := buildHTTPClient()
	a := &app.App{
		Settings:  settings,
		Extractor: extract.NewService(httpClient),
		Fetcher: download.NewFetcher(download.FetcherOptions{
			HTTPClient:   httpClient,
			RateLimitBps: parseRate(viper.GetString(KeyRateLimit)),
		}),
		Prompter: ui.NewPrompter(os.Stdin, os.Stdout),
		Out:      os.Stdout,
	}

	return a.Run(ctx, app.Options{
		URL:        viper.GetString(KeyURL),
		Quality:    viper.GetString(KeyQuality),
		NoProgress: viper.GetBool(KeyNoProgress),
		Reveal:     viper.GetBool(KeyReveal),
	})
}

// buildHTTPClient constructs the shared HTTP client for all network calls.
func buildHTTPClient() *http.Client {
	c := ytclient.NewWith(ytclient.Config{
		Timeout:  viper.GetDuration(KeyHTTPTimeout),
		ProxyURL: viper.GetString(KeyProxy),
	})
	return c.HTTPClient
}
