package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/donaldgifford/quicklist/internal/api/client"
	"github.com/donaldgifford/quicklist/internal/pipeline"
	domain "github.com/donaldgifford/quicklist/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printResult(res *pipeline.Result) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Outcome:\t%s\n", res.Outcome)
	tw.writef("Step:\t%s\n", res.Step)
	tw.writef("SKU:\t%s\n", dash(res.SKU))
	tw.writef("Offer:\t%s\n", dash(res.OfferID))
	if res.Publish != nil {
		tw.writef("Listing:\t%s\n", res.Publish.ListingID)
	}
	if res.Reason != "" {
		tw.writef("Reason:\t%s\n", res.Reason)
	}
	if res.Outcome == pipeline.OutcomeStepFailed {
		tw.writef("Status:\t%d\n", res.Status)
		body, err := json.Marshal(res.Body)
		if err == nil {
			tw.writef("Body:\t%s\n", truncate(string(body), 200))
		}
	}
	return tw.finish()
}

func printListingsTable(listings []domain.LastListing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("SKU\tOFFER\tPUBLISHED\tCREATED\tTITLE\n")
	for i := range listings {
		l := &listings[i]
		tw.writef("%s\t%s\t%v\t%s\t%s\n",
			l.SKU,
			dash(l.OfferID),
			l.Published,
			l.CreatedAt.Local().Format(timeLayout),
			truncate(l.Title, 50),
		)
	}
	return tw.finish()
}

func printPoliciesTable(resp *apiclient.PoliciesResponse) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Marketplace: %s\n\n", resp.MarketplaceID)
	tw.writef("KIND\tID\tNAME\n")
	groups := []struct {
		kind     string
		policies []domain.Policy
	}{
		{"payment", resp.Payment},
		{"return", resp.Returns},
		{"fulfillment", resp.Fulfillment},
	}
	for _, g := range groups {
		if len(g.policies) == 0 {
			tw.writef("%s\t-\t(none)\n", g.kind)
		}
		for _, p := range g.policies {
			tw.writef("%s\t%s\t%s\n", g.kind, p.ID, p.Name)
		}
	}
	return tw.finish()
}

func printLocationsTable(locations []domain.Location) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("KEY\tNAME\tSTATUS\n")
	for _, l := range locations {
		tw.writef("%s\t%s\t%s\n", l.MerchantLocationKey, dash(l.Name), dash(l.Status))
	}
	return tw.finish()
}

func printStoreState(st *apiclient.StoreState) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Access token:\t%v\n", st.HasAccessToken)
	tw.writef("Refresh token:\t%v\n", st.HasRefreshToken)
	expires := "-"
	if st.ExpiresAt != nil {
		expires = st.ExpiresAt.Local().Format(timeLayout)
	}
	tw.writef("Expires:\t%s\n", expires)
	if l := st.LastListing; l != nil {
		tw.writef("Last SKU:\t%s\n", l.SKU)
		tw.writef("Last offer:\t%s\n", dash(l.OfferID))
		tw.writef("Last published:\t%v\n", l.Published)
	} else {
		tw.writef("Last listing:\t-\n")
	}
	return tw.finish()
}

func printAuthStatus(st *apiclient.AuthStatus) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Configured:\t%v\n", st.Configured)
	tw.writef("State:\t%s\n", st.State)
	expires := "-"
	if !st.ExpiresAt.IsZero() {
		expires = st.ExpiresAt.Local().Format(timeLayout)
	}
	tw.writef("Expires:\t%s\n", expires)
	tw.writef("Refresh token:\t%v\n", st.HasRefreshToken)
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
