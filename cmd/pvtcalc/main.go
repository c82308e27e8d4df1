// Command pvtcalc estimates crude-oil PVT properties from published
// correlations and prints them as CSV tables.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pvtprops/oil"
	"pvtprops/table"
	"pvtprops/units"
)

var (
	flagMethod     string
	flagGasGravity float64
	flagAPI        float64
	flagTemp       float64
	flagGauge      bool
	flagSepTemp    float64
	flagSepPress   float64

	flagPb  float64
	flagRsb float64

	flagFrom   float64
	flagTo     float64
	flagPoints int
	flagOut    string
)

func main() {
	root := &cobra.Command{
		Use:           "pvtcalc",
		Short:         "Crude-oil PVT property estimation from published correlations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagMethod, "method", oil.MethodStanding,
		"correlation method, one of: "+strings.Join(oil.Methods(), ", "))
	root.PersistentFlags().Float64Var(&flagGasGravity, "gas-gravity", 0, "solution-gas specific gravity, air = 1")
	root.PersistentFlags().Float64Var(&flagAPI, "api", 0, "stock-tank oil gravity, API degrees")
	root.PersistentFlags().Float64Var(&flagTemp, "temp", 0, "reservoir temperature, deg F")
	root.PersistentFlags().BoolVar(&flagGauge, "gauge", false, "pressure flags are gauge (psig) instead of absolute (psia)")
	root.PersistentFlags().Float64Var(&flagSepTemp, "sep-temp", 0, "separator temperature, deg F")
	root.PersistentFlags().Float64Var(&flagSepPress, "sep-press", 0, "separator pressure, psia")

	root.AddCommand(methodsCommand(), bubbleCommand(), tableCommand())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

// fluid assembles the crude-oil descriptor from the shared flags. The
// separator correction is applied only when a separator pressure is given.
func fluid() (oil.Fluid, error) {
	f, err := oil.NewFluid(flagGasGravity, flagAPI, flagTemp)
	if err != nil {
		return oil.Fluid{}, err
	}
	if flagSepPress > 0 {
		return f.WithSeparator(flagSepTemp, flagSepPress)
	}
	return f, nil
}

// absolute converts a flag pressure to psia when --gauge is set.
func absolute(p float64) float64 {
	if flagGauge {
		return units.PsigToPsia(p)
	}
	return p
}

func methodsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the registered correlation methods",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range oil.Methods() {
				fmt.Println(name)
			}
		},
	}
}

func bubbleCommand() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "bubble",
		Short: "Invert the correlation for the bubble-point pressure",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fluid()
			if err != nil {
				return err
			}

			names := []string{flagMethod}
			if all {
				names = oil.Methods()
			}
			for _, name := range names {
				corr, err := oil.New(name)
				if err != nil {
					return err
				}
				pb, err := corr.BubblePoint(flagRsb, f)
				if err != nil {
					return err
				}
				if all {
					fmt.Printf("%-17s %.1f psia\n", name, pb)
				} else {
					fmt.Printf("%.1f psia\n", pb)
				}
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&flagRsb, "rsb", 0, "solution gas-oil ratio at the bubble point, scf/STB")
	cmd.Flags().BoolVar(&all, "all", false, "evaluate every registered method")
	return cmd
}

func tableCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Evaluate a PVT property table over a pressure range",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fluid()
			if err != nil {
				return err
			}

			var ph oil.Phase
			switch {
			case flagPb > 0:
				ph, err = oil.NewPhase(f, flagMethod, absolute(flagPb))
			case flagRsb > 0:
				ph, err = oil.NewPhaseFromGOR(f, flagMethod, flagRsb)
			default:
				return fmt.Errorf("either --pb or --rsb is required")
			}
			if err != nil {
				return err
			}

			press, err := table.PressureRange(absolute(flagFrom), absolute(flagTo), flagPoints)
			if err != nil {
				return err
			}
			rows, err := table.Build(ph, press)
			if err != nil {
				return err
			}

			if flagOut == "" {
				return table.Write(os.Stdout, rows)
			}
			return table.WriteFile(flagOut, rows)
		},
	}
	cmd.Flags().Float64Var(&flagPb, "pb", 0, "measured bubble-point pressure")
	cmd.Flags().Float64Var(&flagRsb, "rsb", 0, "solution gas-oil ratio at the bubble point, scf/STB")
	cmd.Flags().Float64Var(&flagFrom, "from", 500, "lower end of the pressure range")
	cmd.Flags().Float64Var(&flagTo, "to", 5000, "upper end of the pressure range")
	cmd.Flags().IntVar(&flagPoints, "points", 19, "number of evenly spaced pressures")
	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "write the CSV table to a file instead of stdout")
	return cmd
}
