package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mfeld/parity-pulse/internal/calculator"
	"github.com/mfeld/parity-pulse/internal/classifier"
	"github.com/mfeld/parity-pulse/internal/common"
	"github.com/mfeld/parity-pulse/internal/model"
	"github.com/mfeld/parity-pulse/internal/refdata"
	"github.com/mfeld/parity-pulse/internal/ticker"
)

func calculateCmd() *cobra.Command {
	var (
		lat    float64
		lng    float64
		tariff float64
		wage   string
		top    int
	)

	cmd := &cobra.Command{
		Use:   "calculate [items...]",
		Short: "Compute the Parity Pulse Index for a basket of items",
		Long: `Compute the per-country parity index for 1-5 free-text basket items.

Examples:
  pulse calculate Rent Eggs
  pulse calculate "Netflix" "Gym" --tariff 25 --wage minimum
  pulse calculate Rent --lat 51.5 --lng -0.1`,
		Args: cobra.RangeArgs(1, classifier.MaxItems),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tariff < 0 || tariff > 50 {
				return common.NewUserError("tariff sensitivity must be between 0 and 50", common.ErrTariffOutOfRange)
			}
			wageType := model.WageType(wage)
			if !wageType.Valid() {
				return common.NewUserError("wage type must be \"professional\" or \"minimum\"", common.ErrInvalidWageType)
			}
			if err := validateBasketItems(args); err != nil {
				return err
			}

			var loc *model.Location
			if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
				loc = &model.Location{Lat: lat, Lng: lng}
			}

			store := refdata.NewStore()
			cls := classifier.New(createCapabilityClient(), store, slog.Default())
			calc := calculator.New(store)

			items := cls.Classify(cmd.Context(), args)
			results := calc.Calculate(items, loc, tariff, wageType)
			ticks := ticker.Synthesize(items)

			renderBasket(cmd.OutOrStdout(), items)
			renderResults(cmd.OutOrStdout(), results, top)
			renderTicker(cmd.OutOrStdout(), ticks)
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "your latitude (locates your reference country)")
	cmd.Flags().Float64Var(&lng, "lng", 0, "your longitude")
	cmd.Flags().Float64Var(&tariff, "tariff", 0, "tariff sensitivity, 0-50")
	cmd.Flags().StringVar(&wage, "wage", string(model.WageProfessional), "wage type: professional or minimum")
	cmd.Flags().IntVar(&top, "top", 15, "number of countries to display (0 = all)")

	return cmd
}

func countriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List the reference country table",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("Reference countries"))
			fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-5s %-20s %8s %12s %12s", "CODE", "NAME", "PPP", "PROF WAGE", "MIN WAGE")))
			for _, c := range refdata.NewStore().Countries() {
				fmt.Fprintf(out, "%-5s %-20s %8.2f %12.0f %12.0f\n",
					c.Code, c.Name, c.PPPFactor, c.ProfessionalWage, c.MinimumWage)
			}
		},
	}
}
