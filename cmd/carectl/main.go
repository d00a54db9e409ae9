package main

import (
	"fmt"
	"os"
	"time"

	"pet-care-scheduler/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

var (
	apiFlag     string
	userFlag    string
	tokenFlag   string
	timeoutFlag time.Duration
	retriesFlag int
	rootCmd     = &cobra.Command{
		Use:   "carectl",
		Short: "CLI client for the pet care scheduler REST API",

		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", envOr("CARECTL_API", "http://localhost:8080"), "API base URL")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", os.Getenv("CARECTL_USER"), "User ID (dev mode, X-Debug-User-ID)")
	rootCmd.PersistentFlags().StringVarP(&tokenFlag, "token", "t", os.Getenv("CARECTL_TOKEN"), "Bearer token")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", httpclient.DefaultTimeout, "Request timeout")
	rootCmd.PersistentFlags().IntVar(&retriesFlag, "retries", 2, "Retries for idempotent requests on 503")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newClient() (*httpclient.Client, error) {
	if userFlag == "" && tokenFlag == "" {
		return nil, fmt.Errorf("--user or --token required")
	}
	return httpclient.New(httpclient.Config{
		BaseURL:    apiFlag,
		Timeout:    timeoutFlag,
		UserID:     userFlag,
		Token:      tokenFlag,
		RetryCount: retriesFlag,
	})
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
