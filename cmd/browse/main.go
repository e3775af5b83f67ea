package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/minweb/browserx"
)

var (
	cfgFile    string
	verbose    bool
	viewSource bool
)

var rootCmd = &cobra.Command{
	Use:   "browse <url>",
	Short: "Fetch a URL and print its text content",
	Long: `browse fetches a URL over http, https, file or inline data and prints the
text content of the body, with markup stripped unless --source is given.`,
	Args:         cobra.ExactArgs(1),
	RunE:         runBrowse,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/browse/config.yaml)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&viewSource, "source", false, "print the raw body instead of stripped text")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := browserx.LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Verbose = true
	}

	logger := zap.NewNop()
	if cfg.Verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
	}
	defer func() { _ = logger.Sync() }()

	agent := browserx.CreateAgent(&browserx.AgentOptions{
		Logger:         logger,
		UserAgent:      cfg.UserAgent,
		ConnectTimeout: cfg.ConnectTimeout(),
		MaxRedirects:   cfg.MaxRedirects,
	})
	defer func() { _ = agent.Close() }()

	body, err := agent.Fetch(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if viewSource {
		fmt.Print(body)
	} else {
		fmt.Print(browserx.Lex(body))
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
