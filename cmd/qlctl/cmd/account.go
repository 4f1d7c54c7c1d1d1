package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func policiesCmd() *cobra.Command {
	var marketplace string

	cmd := &cobra.Command{
		Use:   "policies",
		Short: "List the seller's business policies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().ListPolicies(cmd.Context(), marketplace)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			return printPoliciesTable(resp)
		},
	}
	cmd.Flags().StringVar(&marketplace, "marketplace", "", "marketplace id (default: server marketplace)")
	return cmd
}

func locationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List the seller's inventory locations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			locations, err := newClient().ListLocations(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(locations)
			}
			if len(locations) == 0 {
				fmt.Println("No locations found.")
				return nil
			}
			return printLocationsTable(locations)
		},
	}
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is up",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := newClient().Health(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("ok")
			return nil
		},
	}
}

func storeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "store",
		Short: "Show the stored credential state and the last listing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := newClient().StoreState(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(st)
			}
			return printStoreState(st)
		},
	}
}

func authCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Show the OAuth credential state",
		Long: "Shows whether the server holds a usable eBay credential. To connect an\n" +
			"account, open <server>/auth in a browser.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := newClient().AuthStatus(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(st)
			}
			return printAuthStatus(st)
		},
	}
}

func quotaCmd() *cobra.Command {
	var upstream bool

	cmd := &cobra.Command{
		Use:   "quota",
		Short: "Show the daily Sell API budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newClient().Quota(cmd.Context(), upstream)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(q)
			}
			tw := newTabWriter(cmd.OutOrStdout())
			tw.writef("Limit:\t%d\n", q.DailyLimit)
			tw.writef("Used:\t%d\n", q.DailyUsed)
			tw.writef("Remaining:\t%d\n", q.Remaining)
			tw.writef("Resets:\t%s\n", q.ResetAt.Local().Format(timeLayout))
			for _, u := range q.Upstream {
				tw.writef("eBay %s:\t%d/%d used, %d left, resets %s\n",
					u.Resource, u.Count, u.Limit, u.Remaining, u.ResetAt.Local().Format(timeLayout))
			}
			return tw.finish()
		},
	}

	cmd.Flags().BoolVar(&upstream, "upstream", false, "also fetch eBay's own rate limit counters")

	return cmd
}
