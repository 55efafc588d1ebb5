package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mfeld/parity-pulse/internal/brief"
	"github.com/mfeld/parity-pulse/internal/calculator"
	"github.com/mfeld/parity-pulse/internal/classifier"
	"github.com/mfeld/parity-pulse/internal/refdata"
)

func briefCmd() *cobra.Command {
	var items []string

	cmd := &cobra.Command{
		Use:   "brief <country-code>",
		Short: "Generate a consultant brief for one country",
		Long: `Calculate the basket against the reference table, then generate the
narrative consultant brief for the named country.

Example:
  pulse brief CHE --items Rent,Eggs`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.ToUpper(args[0])
			if err := validateBasketItems(items); err != nil {
				return err
			}

			logger := slog.Default()
			store := refdata.NewStore()
			client := createCapabilityClient()

			classified := classifier.New(client, store, logger).Classify(cmd.Context(), items)
			results := calculator.New(store).Calculate(classified, nil, 0, "professional")

			for _, r := range results {
				if r.CountryCode != code {
					continue
				}
				b := brief.NewGenerator(client, logger).Generate(cmd.Context(), r)
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s — index %.2f", r.CountryName, r.ShadowPriceIndex)))
				fmt.Fprintf(out, "Economic opportunity: %s\n", b.EconomicOpportunity)
				fmt.Fprintf(out, "Labor risks:          %s\n", b.LaborRisks)
				fmt.Fprintf(out, "Policy implications:  %s\n", b.PolicyImplications)
				return nil
			}
			return fmt.Errorf("unknown country code: %s", code)
		},
	}

	cmd.Flags().StringSliceVar(&items, "items", []string{"rent", "eggs"}, "basket items (1-5)")

	return cmd
}
