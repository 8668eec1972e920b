package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pdebelak/ntfy-cli/internal/ntfy"
	"github.com/spf13/cobra"
)

const version = "0.3.0"

// Exit codes: delivered, usage error, delivery failure.
const (
	ExitSuccess  = 0
	ExitUsage    = 1
	ExitDelivery = 2
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "ntfy [flags] [message...]",
	Short: "Send messages to an ntfy push-notification server",
	Long: `ntfy publishes messages to an ntfy-compatible notification server.

The message is read from stdin when piped, otherwise from the positional
arguments. Server URL, topic and method resolve from flags, NTFY_* environment
variables, the config file and built-in defaults, in that order.`,
	Example: `  ntfy "backup finished"
  echo "disk almost full" | ntfy -t alerts -p high
  ntfy config set topic deploys`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runSend,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug tracing on stderr")
}

// Run executes the root command and returns the process exit code.
func Run() int {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return ExitSuccess
	}

	var derr *ntfy.DeliveryError
	if errors.As(err, &derr) {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitDelivery
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if cmd != nil {
		fmt.Fprint(os.Stderr, cmd.UsageString())
	}
	return ExitUsage
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print ntfy version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "ntfy version %s\n", version)
	},
}
