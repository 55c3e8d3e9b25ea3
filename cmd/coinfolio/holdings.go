package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	apperrors "coinfolio/internal/errors"
	"coinfolio/internal/services"
)

// userError turns an AppError into a plain CLI error message.
func userError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return errors.New(appErr.Message)
	}
	return err
}

func addCmd() *cobra.Command {
	var name, symbol, buyPrice, amount string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a purchase",
		Long: `Record a purchase of an asset. Buy price and amount must both be
greater than zero. The current price is taken from the market snapshot when
a quote matches the symbol or name; otherwise the buy price is used.

Example:
  coinfolio add --name Bitcoin --symbol BTC --buy-price 42000 --amount 0.25`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			a.loadMarkets(ctx, cmd.ErrOrStderr())
			h, err := a.tracker.AddHolding(ctx, services.HoldingInput{
				Name:     name,
				Symbol:   symbol,
				BuyPrice: buyPrice,
				Amount:   amount,
			})
			if err != nil {
				return userError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) as %s\n", h.Name, h.Symbol, h.ID)
			return renderHoldings(cmd.OutOrStdout(), a.tracker.Holdings())
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Asset name, e.g. Bitcoin")
	cmd.Flags().StringVar(&symbol, "symbol", "", "Ticker symbol, e.g. BTC")
	cmd.Flags().StringVar(&buyPrice, "buy-price", "", "Price paid per unit")
	cmd.Flags().StringVar(&amount, "amount", "", "Quantity bought")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("symbol")
	_ = cmd.MarkFlagRequired("buy-price")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func holdingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "holdings",
		Aliases: []string{"ls"},
		Short:   "List holdings with their value and P/L at the recorded prices",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			return renderHoldings(cmd.OutOrStdout(), a.tracker.Holdings())
		},
	}
}

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a holding",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.tracker.DeleteHolding(ctx, args[0]); err != nil {
				return userError(err)
			}
			return renderHoldings(cmd.OutOrStdout(), a.tracker.Holdings())
		},
	}
}

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Fetch market prices and update every holding",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			// RefreshPrices fetches on its own when configured to
			if !a.cfg.RefetchOnRefresh {
				a.loadMarkets(ctx, cmd.ErrOrStderr())
			}
			holdings, err := a.tracker.RefreshPrices(ctx)
			if err != nil {
				return userError(err)
			}
			return renderHoldings(cmd.OutOrStdout(), holdings)
		},
	}
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show portfolio totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			return renderSummary(cmd.OutOrStdout(), a.tracker.Summary())
		},
	}
}

func marketsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "markets",
		Short: "List market quotes by market cap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if !a.loadMarkets(ctx, cmd.ErrOrStderr()) {
				return nil
			}
			return renderMarkets(cmd.OutOrStdout(), a.tracker.Markets(), limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of quotes to show (0 for all)")
	return cmd
}

func quickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quick <id>",
		Short: "Show the add-form prefill for a market quote",
		Long: `Show the name, symbol and current price of a market quote, ready to
pass to "coinfolio add".

Example:
  coinfolio quick bitcoin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			a.loadMarkets(ctx, cmd.ErrOrStderr())
			prefill, err := a.tracker.QuickSelect(args[0])
			if err != nil {
				return userError(err)
			}
			return renderQuickSelect(cmd.OutOrStdout(), prefill)
		},
	}
}
