package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/client"
	"freight-matching-platform/internal/logx"
)

const defaultServer = "http://localhost:8080"

type options struct {
	server  string
	lang    string
	token   string
	verbose bool

	api *client.Client
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "freightctl",
		Short:         "Work with offers, delivery requests and matches from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.connect()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.server, "server", envOr("FREIGHT_SERVER", defaultServer), "API base URL")
	flags.StringVar(&opts.lang, "lang", envOr("FREIGHT_LANG", "en"), "label language (en, ko)")
	flags.StringVar(&opts.token, "token", os.Getenv("FREIGHT_TOKEN"), "access token")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		newLoginCmd(opts),
		newDashboardCmd(opts),
		newOffersCmd(opts),
		newRequestsCmd(opts),
		newMatchesCmd(opts),
		newMatchCmd(opts),
		newEventsCmd(opts),
		newTransitionCmd(opts, "accept", "Accept a proposed match"),
		newTransitionCmd(opts, "reject", "Reject a proposed match"),
		newTransitionCmd(opts, "start", "Start an accepted match"),
		newTransitionCmd(opts, "complete", "Complete an in-progress match"),
		newAutoMatchCmd(opts),
		newVocabularyCmd(opts),
	)
	return root
}

func (o *options) connect() error {
	logger := logx.Nop()
	if o.verbose {
		logger = logx.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	api, err := client.New(o.server,
		client.WithLocale(o.lang),
		client.WithToken(o.token),
		client.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	o.api = api
	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", apperr.Invalid, s)
	}
	return id, nil
}

// exitCode maps error kinds to distinct process exit codes.
func exitCode(err error) int {
	switch {
	case errors.Is(err, apperr.Invalid), errors.Is(err, apperr.MissingReason):
		return 2
	case errors.Is(err, apperr.Unauthenticated), errors.Is(err, apperr.Unauthorized):
		return 3
	case errors.Is(err, apperr.NotFound):
		return 4
	case errors.Is(err, apperr.Conflict), errors.Is(err, apperr.InvalidTransition):
		return 5
	case errors.Is(err, apperr.RemoteFailure):
		return 6
	default:
		return 1
	}
}
