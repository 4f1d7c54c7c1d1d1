package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/quicklist/internal/ebay"
	"github.com/donaldgifford/quicklist/internal/store"
)

func tokenCommand() *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Inspect or refresh the stored eBay credential",
	}

	tokenCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the credential state without contacting eBay",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withTokenManager(func(ctx context.Context, tm *ebay.TokenManager) error {
				st, err := tm.Status(ctx)
				if err != nil {
					return err
				}
				return printJSON(st)
			})
		},
	})

	tokenCmd.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "Exchange the refresh token for a new access token now",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withTokenManager(func(ctx context.Context, tm *ebay.TokenManager) error {
				cred, err := tm.ForceRefresh(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("access token refreshed, expires %s\n", cred.ExpiresAt.UTC().Format(time.RFC3339))
				return nil
			})
		},
	})

	return tokenCmd
}

func withTokenManager(fn func(context.Context, *ebay.TokenManager) error) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st, err := store.Open(ctx, &cfg.Store)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	return fn(ctx, ebay.NewTokenManager(st, &cfg.Ebay, ebay.WithTokenLogger(log)))
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
