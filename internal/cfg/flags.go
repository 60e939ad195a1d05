package cfg

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ytget/yt-fetch/internal/config"
)

// Viper keys for command line flags
const (
	KeyURL         = "url"
	KeyQuality     = "quality"
	KeyEnvFile     = "env-file"
	KeyNoProgress  = "no-progress"
	KeyReveal      = "reveal"
	KeyRateLimit   = "rate-limit"
	KeyHTTPTimeout = "http-timeout"
	KeyProxy       = "proxy"
	KeyDebug       = "debug"
)

// initFlags registers all flags and binds them into viper.
func initFlags() error {
	rootCmd.PersistentFlags().String(KeyURL, "", "YouTube video URL (prompted interactively if omitted)")
	if err := viper.BindPFlag(KeyURL, rootCmd.PersistentFlags().Lookup(KeyURL)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().String(KeyQuality, "", "Video quality (e.g. '720p' or a menu index)")
	if err := viper.BindPFlag(KeyQuality, rootCmd.PersistentFlags().Lookup(KeyQuality)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().String(KeyEnvFile, config.DefaultEnvFile, "Env-format file with configuration overrides")
	if err := viper.BindPFlag(KeyEnvFile, rootCmd.PersistentFlags().Lookup(KeyEnvFile)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().Bool(KeyNoProgress, false, "Disable progress output")
	if err := viper.BindPFlag(KeyNoProgress, rootCmd.PersistentFlags().Lookup(KeyNoProgress)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().Bool(KeyReveal, false, "Reveal the finished file in the system file manager")
	if err := viper.BindPFlag(KeyReveal, rootCmd.PersistentFlags().Lookup(KeyReveal)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().String(KeyRateLimit, "", "Download rate limit (e.g. 2MiB/s, 500KiB/s)")
	if err := viper.BindPFlag(KeyRateLimit, rootCmd.PersistentFlags().Lookup(KeyRateLimit)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().Duration(KeyHTTPTimeout, 30*time.Second, "HTTP timeout (e.g. 30s, 1m)")
	if err := viper.BindPFlag(KeyHTTPTimeout, rootCmd.PersistentFlags().Lookup(KeyHTTPTimeout)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().String(KeyProxy, "", "Proxy URL (http/https/socks)")
	if err := viper.BindPFlag(KeyProxy, rootCmd.PersistentFlags().Lookup(KeyProxy)); err != nil {
		return err
	}

	rootCmd.PersistentFlags().Int(KeyDebug, 0, "Debug verbosity level")
	if err := viper.BindPFlag(KeyDebug, rootCmd.PersistentFlags().Lookup(KeyDebug)); err != nil {
		return err
	}

	return nil
}

// parseRate parses strings like "2MiB/s" or "500KiB/s" into bytes per second.
// Unparseable input disables limiting.
func parseRate(s string) int64 {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return 0
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "/S"))

	mul := int64(1)
	for _, suf := range []string{"KIB", "MIB", "GIB", "KB", "MB", "GB"} {
		if strings.HasSuffix(s, suf) {
			switch suf {
			case "KIB":
				mul = 1 << 10
			case "MIB":
				mul = 1 << 20
			case "GIB":
				mul = 1 << 30
			case "KB":
				mul = 1000
			case "MB":
				mul = 1000 * 1000
			case "GB":
				mul = 1000 * 1000 * 1000
			}
			s = strings.TrimSpace(strings.TrimSuffix(s, suf))
			break
		}
	}

	var val float64
	if _, err := fmt.Sscanf(s, "%f", &val); err != nil || val <= 0 {
		return 0
	}
	return int64(val * float64(mul))
}
