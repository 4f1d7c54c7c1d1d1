package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/quicklist/internal/api/client"
	"github.com/donaldgifford/quicklist/internal/pipeline"
	"github.com/donaldgifford/quicklist/pkg/product"
	domain "github.com/donaldgifford/quicklist/pkg/types"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Create listings and browse the history",
	}

	listingsRoot.AddCommand(
		listingsCreateCmd(),
		listingsHistoryCmd(),
	)

	return listingsRoot
}

func listingsCreateCmd() *cobra.Command {
	var (
		productFile string
		overrides   domain.ListingOverrides
		price       string
		quantity    int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Submit a product file to the listing pipeline",
		Long: "Reads a product JSON document (\"-\" for stdin), applies the override\n" +
			"flags and asks the server to create, and where possible publish, the listing.",
		Example: "  qlctl listings create --product widget.json --category 9355 --location warehouse-1",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			p, err := product.FileSource{Path: productFile}.RequestProduct(ctx)
			if err != nil {
				return fmt.Errorf("reading product: %w", err)
			}
			if price != "" {
				p.Price = price
			}
			if quantity > 0 {
				p.Quantity = quantity
			}

			res, err := newClient().CreateListing(ctx, &domain.ListingRequest{
				Product:          p,
				ListingOverrides: overrides,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				if err := outputJSON(res); err != nil {
					return err
				}
			} else if err := printResult(res); err != nil {
				return err
			}

			if res.Outcome == pipeline.OutcomeStepFailed {
				return fmt.Errorf("listing failed at %s", res.Step)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&productFile, "product", "p", "", "product JSON file, or - for stdin")
	cmd.Flags().StringVar(&price, "price", "", "override the product price")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "override the available quantity")
	cmd.Flags().StringVar(&overrides.SKU, "sku", "", "seller SKU (generated when empty)")
	cmd.Flags().StringVar(&overrides.CategoryID, "category", "", "marketplace leaf category id")
	cmd.Flags().StringVar(&overrides.MerchantLocationKey, "location", "", "merchant location key")
	cmd.Flags().StringVar(&overrides.PaymentPolicyID, "payment-policy", "", "payment policy id")
	cmd.Flags().StringVar(&overrides.ReturnPolicyID, "return-policy", "", "return policy id")
	cmd.Flags().StringVar(&overrides.FulfillmentPolicyID, "fulfillment-policy", "", "fulfillment policy id")
	cmd.Flags().StringVar(&overrides.ListingDuration, "duration", "", "listing duration (default GTC)")
	cobra.CheckErr(cmd.MarkFlagRequired("product"))

	return cmd
}

func listingsHistoryCmd() *cobra.Command {
	var (
		published string
		sku       string
		title     string
		since     time.Duration
		limit     int
		offset    int
		orderBy   string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List listings created by the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := &apiclient.ListListingsParams{
				SKU:     sku,
				Title:   title,
				Limit:   limit,
				Offset:  offset,
				OrderBy: orderBy,
			}
			switch published {
			case "":
			case "true", "false":
				v := published == "true"
				params.Published = &v
			default:
				return fmt.Errorf("--published must be true or false, got %q", published)
			}
			if since > 0 {
				params.Since = time.Now().Add(-since)
			}

			resp, err := newClient().ListListings(cmd.Context(), params)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Listings) == 0 {
				fmt.Println("No listings found.")
				return nil
			}

			fmt.Printf("Showing %d of %d listings\n\n", len(resp.Listings), resp.Total)
			return printListingsTable(resp.Listings)
		},
	}

	cmd.Flags().StringVar(&published, "published", "", "filter by publish state (true, false)")
	cmd.Flags().StringVar(&sku, "sku", "", "exact SKU")
	cmd.Flags().StringVar(&title, "title", "", "title substring")
	cmd.Flags().DurationVar(&since, "since", 0, "only listings created within this duration (e.g. 24h)")
	cmd.Flags().IntVar(&limit, "limit", 50, "max results")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort field (created_at, title, sku)")

	return cmd
}
