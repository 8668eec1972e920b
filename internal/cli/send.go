package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pdebelak/ntfy-cli/internal/config"
	"github.com/pdebelak/ntfy-cli/internal/logger"
	"github.com/pdebelak/ntfy-cli/internal/ntfy"
	"github.com/spf13/cobra"
)

// Send flags
var (
	flagURL    string
	flagTopic  string
	flagMethod string

	flagTitle       string
	flagPriority    string
	flagTags        string
	flagDelay       string
	flagActions     string
	flagClick       string
	flagAttach      string
	flagMarkdown    bool
	flagIcon        string
	flagFilename    string
	flagEmail       string
	flagCall        string
	flagCache       string
	flagFirebase    string
	flagUnifiedPush string
	flagPollID      string
	flagToken       string
	flagContentType string
)

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flagURL, "url", "U", "", "Publish to this URL instead of the configured server")
	f.StringVarP(&flagTopic, "topic", "t", "", "Topic to publish to")
	f.StringVarP(&flagMethod, "method", "m", "", "HTTP method (GET or POST)")

	f.StringVarP(&flagTitle, "title", "T", "", "Message title")
	f.StringVarP(&flagPriority, "priority", "p", "", "Message priority (min, low, default, high, max)")
	f.StringVar(&flagTags, "tags", "", "Comma-separated tags and emoji shortcodes")
	f.StringVar(&flagDelay, "delay", "", "Delay delivery (e.g. 30m, tomorrow 10am)")
	f.StringVar(&flagActions, "actions", "", "Action buttons (JSON or short format)")
	f.StringVar(&flagClick, "click", "", "URL opened when the notification is clicked")
	f.StringVar(&flagAttach, "attach", "", "Attach a file by URL")
	f.BoolVar(&flagMarkdown, "markdown", false, "Interpret the message as Markdown")
	f.StringVar(&flagIcon, "icon", "", "Notification icon URL")
	f.StringVar(&flagFilename, "filename", "", "Filename for the attachment")
	f.StringVar(&flagEmail, "email", "", "Forward the message to an e-mail address")
	f.StringVar(&flagCall, "call", "", "Forward the message as a phone call")
	f.StringVar(&flagCache, "cache", "", "Server-side message caching (yes or no)")
	f.StringVar(&flagFirebase, "firebase", "", "Firebase forwarding (yes or no)")
	f.StringVar(&flagUnifiedPush, "unified-push", "", "Mark the message as UnifiedPush")
	f.StringVar(&flagPollID, "poll-id", "", "Poll ID for iOS instant notifications")
	f.StringVar(&flagToken, "token", "", "Bearer token for authentication (default $NTFY_TOKEN)")
	f.StringVar(&flagContentType, "content-type", "", "Content-Type header for the message body")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagTopic != "" {
		m[config.KeyTopic] = flagTopic
	}
	if flagMethod != "" {
		m[config.KeyMethod] = flagMethod
	}
	return m
}

func publishOptions() ntfy.PublishOptions {
	token := flagToken
	if token == "" {
		token = os.Getenv("NTFY_TOKEN")
	}
	return ntfy.PublishOptions{
		Title:       flagTitle,
		Priority:    flagPriority,
		Tags:        flagTags,
		Delay:       flagDelay,
		Actions:     flagActions,
		Click:       flagClick,
		Attach:      flagAttach,
		Markdown:    flagMarkdown,
		Icon:        flagIcon,
		Filename:    flagFilename,
		Email:       flagEmail,
		Call:        flagCall,
		Cache:       flagCache,
		Firebase:    flagFirebase,
		UnifiedPush: flagUnifiedPush,
		PollID:      flagPollID,
		Token:       token,
		ContentType: flagContentType,
	}
}

// resolveMessage picks the message body. Piped stdin wins over positional
// arguments; an interactive terminal never blocks waiting for input.
func resolveMessage(stdin io.Reader, terminal bool, args []string) (string, error) {
	if !terminal {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		if len(data) > 0 {
			return string(data), nil
		}
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return "", errors.New("no message given: pass it as arguments or pipe it on stdin")
}

func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(buildOverrides())
	if err != nil {
		return err
	}
	if !ntfy.ValidMethod(cfg.Method) {
		return fmt.Errorf("invalid method %q: must be GET or POST", cfg.Method)
	}

	terminal := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	msg, err := resolveMessage(os.Stdin, terminal, args)
	if err != nil {
		return err
	}

	target, err := ntfy.TargetURL(cfg.BaseURL, cfg.Topic, flagURL)
	if err != nil {
		return err
	}

	client := ntfy.NewClient(logger.New(flagVerbose))
	receipt, err := client.Publish(cmd.Context(), ntfy.Request{
		URL:     target,
		Method:  cfg.Method,
		Body:    []byte(msg),
		Headers: publishOptions().Headers(),
	})
	if err != nil {
		return err
	}

	successColor.Fprintf(os.Stderr, "message delivered to %s (HTTP %d)\n", receipt.URL, receipt.Status)
	return nil
}
