package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"langid/internal/core/frame"
	"langid/internal/core/version"
)

var (
	// Global flags
	addr       string
	timeout    time.Duration
	terminator string
)

var rootCmd = &cobra.Command{
	Use:   "langid-client",
	Short: "Client for the langid TCP classification protocol",
	Long: `langid-client sends text to a langid-server, one request per connection.

Each request is the payload, optional CLASSIFIER= and LANGHINT= directive lines,
and the terminator line. The server answers once and closes the connection.`,
	Version:       version.Info().Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&addr, "addr", "a", "localhost:15555", "server address")
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", 10*time.Second, "dial and response timeout")
	rootCmd.PersistentFlags().StringVar(&terminator, "terminator", frame.DefaultTerminator, "terminator token")
}

func dialer() Client {
	return Client{Addr: addr, Timeout: timeout, Terminator: terminator}
}
