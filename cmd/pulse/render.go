package main

import (
	"fmt"
	"io"

	"github.com/mfeld/parity-pulse/internal/model"
)

func renderBasket(out io.Writer, items []model.ClassifiedItem) {
	fmt.Fprintln(out, titleStyle.Render("Basket"))
	for _, item := range items {
		fmt.Fprintf(out, "  %-20s → %-12s %-12s $%.2f (weight %.2f)\n",
			item.UserInput, item.Symbol, item.Category, item.BasePrice, item.Weight)
	}
	fmt.Fprintln(out)
}

func renderResults(out io.Writer, results []model.CountryResult, top int) {
	fmt.Fprintln(out, titleStyle.Render("Parity Pulse Index (cheapest relative value first)"))
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-5s %-20s %7s %12s %10s %10s %6s",
		"CODE", "COUNTRY", "INDEX", "ADJ COST", "WORK HRS", "STABILITY", "DEAL")))

	if top <= 0 || top > len(results) {
		top = len(results)
	}
	for _, r := range results[:top] {
		deal := ""
		if r.IsValueDeal {
			deal = valueDealStyle.Render("✓")
		}
		fmt.Fprintf(out, "%-5s %-20s %7.2f %12.2f %10.1f %10s %6s\n",
			r.CountryCode, r.CountryName, r.ShadowPriceIndex, r.AdjustedCost,
			r.WorkHours, stabilityLabel(r.MacroStability), deal)
	}
	if top < len(results) {
		fmt.Fprintln(out, subtleStyle.Render(fmt.Sprintf("… %d more (use --top 0 for all)", len(results)-top)))
	}
	fmt.Fprintln(out)
}

func renderTicker(out io.Writer, ticks []model.TickerItem) {
	fmt.Fprintln(out, titleStyle.Render("Ticker"))
	for _, t := range ticks {
		fmt.Fprintf(out, "  %-4s %-20s %10.2f %+8.2f (%+.2f%%)\n",
			t.Symbol, t.Name, t.Price, t.Change, t.ChangePercent)
	}
}

func stabilityLabel(s model.MacroStability) string {
	switch s {
	case model.StabilityStable:
		return valueDealStyle.Render(string(s))
	case model.StabilityVolatile:
		return volatileStyle.Render(string(s))
	default:
		return moderateStyle.Render(string(s))
	}
}
