package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"coinfolio/internal/format"
	"coinfolio/internal/models"
	"coinfolio/internal/services"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
}

func renderHoldings(w io.Writer, holdings []models.HoldingValue) error {
	if len(holdings) == 0 {
		_, err := fmt.Fprintln(w, "No holdings yet.")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tASSET\tAMOUNT\tBUY\tCOST\tPRICE\tVALUE\tP/L\tP/L %\tUPDATED\t")
	for _, h := range holdings {
		fmt.Fprintf(tw, "%s\t%s (%s)\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			h.ID,
			h.Name, h.Symbol,
			format.Quantity(format.Known(h.Amount)),
			format.Money(format.Known(h.BuyPrice)),
			format.Money(format.Known(h.TotalCost)),
			format.Money(format.Known(h.LastPrice)),
			format.Money(format.Known(h.CurrentValue)),
			format.Money(format.Known(h.Pnl)),
			format.Percent(h.PnlPercent),
			h.LastUpdated.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.Flush()
}

func renderSummary(w io.Writer, totals models.Totals) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Holdings\t%d\t\n", totals.Holdings)
	fmt.Fprintf(tw, "Total cost\t%s\t\n", format.Money(format.Known(totals.TotalCost)))
	fmt.Fprintf(tw, "Current value\t%s\t\n", format.Money(format.Known(totals.TotalValue)))
	fmt.Fprintf(tw, "P/L\t%s\t\n", format.Money(format.Known(totals.TotalPnl)))
	fmt.Fprintf(tw, "P/L %%\t%s\t\n", format.Percent(totals.TotalPnlPercent))
	return tw.Flush()
}

func renderMarkets(w io.Writer, snap models.Snapshot, limit int) error {
	if limit > 0 && limit < len(snap) {
		snap = snap[:limit]
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "#\tID\tNAME\tSYMBOL\tPRICE\t")
	for i, q := range snap {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n",
			i+1, q.ID, q.Name, strings.ToUpper(q.Symbol),
			format.Money(format.Known(q.CurrentPrice)),
		)
	}
	return tw.Flush()
}

func renderQuickSelect(w io.Writer, q *services.QuickSelect) error {
	_, err := fmt.Fprintf(w, "%s (%s) at %s\n  coinfolio add --name %q --symbol %s --buy-price %s --amount <amount>\n",
		q.Name, q.Symbol, format.Money(format.Known(q.BuyPrice)),
		q.Name, q.Symbol, q.BuyPrice.String(),
	)
	return err
}
