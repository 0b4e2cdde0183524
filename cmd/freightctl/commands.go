package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/domain"
	"freight-matching-platform/internal/lifecycle"
)

const timeLayout = "2006-01-02 15:04"

func domainRole(s string) domain.Role { return domain.Role(s) }

func (o *options) locale() language.Tag { return lifecycle.ParseLocale(o.lang) }

func newLoginCmd(opts *options) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv("FREIGHT_PASSWORD")
			}
			s, err := opts.api.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			t := newTheme(cmd.OutOrStdout())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Logged in as %s (%s), token valid until %s\n",
				s.User.Username, t.role(string(s.User.Role), opts.locale()), s.ExpiresAt.Local().Format(timeLayout))
			fmt.Fprintf(out, "export FREIGHT_TOKEN=%s\n", s.Token)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "user name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (or FREIGHT_PASSWORD)")
	return cmd
}

func newDashboardCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the counters for your role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := opts.api.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			t := newTheme(cmd.OutOrStdout())
			rows := [][]string{{"role", t.role(string(d.Role), opts.locale())}}
			switch {
			case d.Admin != nil:
				rows = append(rows,
					[]string{"users", strconv.Itoa(d.Admin.TotalUsers)},
					[]string{"available offers", strconv.Itoa(d.Admin.ActiveTolerances)},
					[]string{"pending requests", strconv.Itoa(d.Admin.PendingRequests)},
					[]string{"completed matches", strconv.Itoa(d.Admin.CompletedMatches)},
				)
			case d.Carrier != nil:
				rows = append(rows,
					[]string{"my offers", strconv.Itoa(d.Carrier.MyTolerances)},
					[]string{"my requests", strconv.Itoa(d.Carrier.MyRequests)},
					[]string{"my matches", strconv.Itoa(d.Carrier.MyMatches)},
				)
			case d.Driver != nil:
				rows = append(rows,
					[]string{"assigned matches", strconv.Itoa(d.Driver.AssignedMatches)},
					[]string{"completed matches", strconv.Itoa(d.Driver.CompletedMatches)},
					[]string{"current status", t.badge(string(d.Driver.CurrentStatus), opts.locale())},
				)
			}
			fmt.Fprint(cmd.OutOrStdout(), t.table([]string{"FIELD", "VALUE"}, rows))
			return nil
		},
	}
}

func newOffersCmd(opts *options) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:     "offers",
		Aliases: []string{"tolerances"},
		Short:   "List capacity offers",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			offers, err := opts.api.Offers(cmd.Context(), status)
			if err != nil {
				return err
			}
			t := newTheme(cmd.OutOrStdout())
			rows := make([][]string, 0, len(offers))
			for _, o := range offers {
				rows = append(rows, []string{
					strconv.FormatInt(o.ID, 10),
					o.CarrierName,
					o.Origin + " → " + o.Destination,
					o.DepartureTime.Format(timeLayout),
					fmt.Sprintf("%d x %s", o.ContainerCount, o.ContainerType),
					o.Price.StringFixed(2),
					t.badge(string(o.Status), opts.locale()),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), t.table(
				[]string{"ID", "CARRIER", "ROUTE", "DEPARTS", "CONTAINERS", "PRICE", "STATUS"}, rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	return cmd
}

func newRequestsCmd(opts *options) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "List delivery requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reqs, err := opts.api.Requests(cmd.Context(), status)
			if err != nil {
				return err
			}
			t := newTheme(cmd.OutOrStdout())
			rows := make([][]string, 0, len(reqs))
			for _, r := range reqs {
				rows = append(rows, []string{
					strconv.FormatInt(r.ID, 10),
					r.CarrierName,
					r.Origin + " → " + r.Destination,
					r.PickupTime.Format(timeLayout),
					fmt.Sprintf("%d x %s", r.ContainerCount, r.ContainerType),
					r.Budget.StringFixed(2),
					t.badge(string(r.Status), opts.locale()),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), t.table(
				[]string{"ID", "CARRIER", "ROUTE", "PICKUP", "CONTAINERS", "BUDGET", "STATUS"}, rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	return cmd
}

func matchRow(t theme, m domain.MatchView, locale language.Tag) []string {
	driver := "-"
	if m.DriverID != nil {
		driver = m.DriverName
		if driver == "" {
			driver = "#" + strconv.FormatInt(*m.DriverID, 10)
		}
	}
	return []string{
		strconv.FormatInt(m.ID, 10),
		m.Offer.Origin + " → " + m.Offer.Destination,
		driver,
		m.Price.StringFixed(2),
		t.badge(string(m.Status), locale),
	}
}

var matchHeaders = []string{"ID", "ROUTE", "DRIVER", "PRICE", "STATUS"}

func newMatchesCmd(opts *options) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "List your matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			matches, err := opts.api.Matches(cmd.Context(), status)
			if err != nil {
				return err
			}
			t := newTheme(cmd.OutOrStdout())
			rows := make([][]string, 0, len(matches))
			for _, m := range matches {
				rows = append(rows, matchRow(t, m, opts.locale()))
			}
			fmt.Fprint(cmd.OutOrStdout(), t.table(matchHeaders, rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	return cmd
}

func newMatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "match <id>",
		Short: "Show one match and what you may do with it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			m, err := opts.api.Match(cmd.Context(), id)
			if err != nil {
				return err
			}
			caps, err := opts.api.Capabilities(cmd.Context(), id)
			if err != nil {
				return err
			}
			t := newTheme(cmd.OutOrStdout())
			out := cmd.OutOrStdout()
			fmt.Fprint(out, t.table(matchHeaders, [][]string{matchRow(t, m, opts.locale())}))
			if m.RejectionReason != "" {
				fmt.Fprintf(out, "rejected: %s\n", m.RejectionReason)
			}
			actions := make([]string, 0, len(caps.Actions))
			for _, a := range caps.Actions {
				if a != lifecycle.ActionView {
					actions = append(actions, string(a))
				}
			}
			if len(actions) == 0 {
				fmt.Fprintln(out, t.muted.Render("no actions available"))
			} else {
				fmt.Fprintf(out, "actions: %s\n", strings.Join(actions, ", "))
			}
			return nil
		},
	}
}

func newEventsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "events <match-id>",
		Short: "Show the status history of a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			events, err := opts.api.Events(cmd.Context(), id)
			if err != nil {
				return err
			}
			t := newTheme(cmd.OutOrStdout())
			rows := make([][]string, 0, len(events))
			for _, e := range events {
				rows = append(rows, []string{
					e.At.Local().Format(time.DateTime),
					string(e.Action),
					t.badge(string(e.From), opts.locale()) + " → " + t.badge(string(e.To), opts.locale()),
					e.Reason,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), t.table([]string{"AT", "ACTION", "STATUS", "REASON"}, rows))
			return nil
		},
	}
}

func newTransitionCmd(opts *options, action, short string) *cobra.Command {
	var reason string
	cmd := &cobra.Command{
		Use:   action + " <match-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			m, err := opts.api.Match(cmd.Context(), id)
			if err != nil {
				return err
			}

			switch domain.MatchAction(action) {
			case domain.ActionAccept:
				m, err = opts.api.Accept(cmd.Context(), m)
			case domain.ActionReject:
				m, err = opts.api.Reject(cmd.Context(), m, reason)
			case domain.ActionStart:
				m, err = opts.api.Start(cmd.Context(), m)
			case domain.ActionComplete:
				m, err = opts.api.Complete(cmd.Context(), m)
			default:
				err = fmt.Errorf("%w: unknown action %q", apperr.Invalid, action)
			}
			if err != nil {
				return err
			}
			t := newTheme(cmd.OutOrStdout())
			fmt.Fprintf(cmd.OutOrStdout(), "match %d is now %s\n", m.ID, t.badge(string(m.Status), opts.locale()))
			return nil
		},
	}
	if action == string(domain.ActionReject) {
		cmd.Flags().StringVar(&reason, "reason", "", "why the match is rejected (required)")
	}
	return cmd
}

func newAutoMatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "auto-match",
		Short: "Pair available offers with pending requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := opts.api.AutoMatch(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d matches created, %d proposed\n", res.MatchesCreated, res.Proposed)
			return nil
		},
	}
}

func newVocabularyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "vocabulary",
		Short: "Print the status labels of the selected language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := opts.api.Vocabulary(cmd.Context())
			if err != nil {
				return err
			}
			t := newTheme(cmd.OutOrStdout())
			var rows [][]string
			for _, kind := range []string{"match", "offer", "request"} {
				for _, e := range v.Statuses[kind] {
					rows = append(rows, []string{kind, e.Status, t.paint(e.Label, e.Badge)})
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), t.table([]string{"KIND", "STATUS", "LABEL"}, rows))
			return nil
		},
	}
}
