package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcc/internal/aci"
	rcerrors "github.com/alexiusacademia/gorcc/internal/errors"
	"github.com/spf13/cobra"
)

var (
	// Unfactored actions (tf, tf·m)
	loadsDead       effectFlags
	loadsLive       effectFlags
	loadsRoof       effectFlags
	loadsWind       effectFlags
	loadsEarthquake effectFlags
	loadsRain       effectFlags

	loadsShowAll bool
)

// effectFlags is an unfactored axial force and moment pair
type effectFlags struct {
	p float64
	m float64
}

func (e effectFlags) effect() aci.LoadEffect {
	return aci.LoadEffect{P: aci.FromTonnes(e.p), M: aci.FromTonneMeters(e.m)}
}

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Factor column actions with ACI 318-19 load combinations",
	Long: `Calculate factored axial forces (Pu) and moments (Mu) based on
ACI 318-19 Table 5.3.1 load combinations.

Provide unfactored axial forces and moments from different load types and
this command will compute the factored pairs for every applicable
combination. Clauses with "or" alternatives, such as 0.5(Lr or R), are
listed once per alternative. The same pairs are produced for a column
file with a [service] table.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Gravity loads
  gorcc loads --dead-p 80 --dead-m 6 --live-p 40 --live-m 4

  # With earthquake, show every combination
  gorcc loads --dead-p 80 --live-p 40 --quake-m 12 --all`,
	RunE: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	f := loadsCmd.Flags()
	f.Float64Var(&loadsDead.p, "dead-p", 0, "Axial force due to dead load (tf)")
	f.Float64Var(&loadsDead.m, "dead-m", 0, "Moment due to dead load (tf·m)")
	f.Float64Var(&loadsLive.p, "live-p", 0, "Axial force due to live load (tf)")
	f.Float64Var(&loadsLive.m, "live-m", 0, "Moment due to live load (tf·m)")
	f.Float64Var(&loadsRoof.p, "roof-p", 0, "Axial force due to roof live load (tf)")
	f.Float64Var(&loadsRoof.m, "roof-m", 0, "Moment due to roof live load (tf·m)")
	f.Float64Var(&loadsWind.p, "wind-p", 0, "Axial force due to wind load (tf)")
	f.Float64Var(&loadsWind.m, "wind-m", 0, "Moment due to wind load (tf·m)")
	f.Float64Var(&loadsEarthquake.p, "quake-p", 0, "Axial force due to earthquake load (tf)")
	f.Float64Var(&loadsEarthquake.m, "quake-m", 0, "Moment due to earthquake load (tf·m)")
	f.Float64Var(&loadsRain.p, "rain-p", 0, "Axial force due to rain load (tf)")
	f.Float64Var(&loadsRain.m, "rain-m", 0, "Moment due to rain load (tf·m)")

	f.BoolVarP(&loadsShowAll, "all", "a", false, "Show all load combination results")
}

func runLoads(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	loads := aci.ServiceLoads{
		Dead:       loadsDead.effect(),
		Live:       loadsLive.effect(),
		Roof:       loadsRoof.effect(),
		Wind:       loadsWind.effect(),
		Earthquake: loadsEarthquake.effect(),
		Rain:       loadsRain.effect(),
	}
	if loads.IsZero() {
		return rcerrors.New(rcerrors.ErrCodeInvalidInput, "loads",
			"provide at least one unfactored axial force or moment")
	}

	factored := aci.FactorAll(loads, aci.LoadCombinations)
	loggerFromContext(cmd.Context()).Debug("loads factored", "combinations", len(factored))

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          ACI 318-19 FACTORED COLUMN ACTIONS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "UNFACTORED ACTIONS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Load\tP (tf)\tM (tf·m)\n")
	fmt.Fprintf(w, "  ────\t──────\t────────\n")
	for _, row := range []struct {
		label string
		e     effectFlags
	}{
		{"Dead Load (D)", loadsDead},
		{"Live Load (L)", loadsLive},
		{"Roof Live Load (Lr)", loadsRoof},
		{"Wind Load (W)", loadsWind},
		{"Earthquake Load (E)", loadsEarthquake},
		{"Rain Load (R)", loadsRain},
	} {
		if row.e == (effectFlags{}) {
			continue
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\n", row.label, row.e.p, row.e.m)
	}
	w.Flush()
	fmt.Fprintln(out)

	govP, _ := aci.GoverningAxial(factored)
	govM, _ := aci.GoverningMoment(factored)

	if loadsShowAll {
		fmt.Fprintln(out, "LOAD COMBINATIONS (ACI 318-19 Table 5.3.1):")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tPu (tf)\tMu (tf·m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t───────\t─────────\n")
		for _, f := range factored {
			marker := ""
			switch {
			case f.Combination.ID == govP.Combination.ID && f.Combination.ID == govM.Combination.ID:
				marker = " ← GOVERNS P, M"
			case f.Combination.ID == govP.Combination.ID:
				marker = " ← GOVERNS P"
			case f.Combination.ID == govM.Combination.ID:
				marker = " ← GOVERNS M"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f%s\n", f.Combination.ID, f.Combination.Description,
				aci.ToTonnes(f.Pu), aci.ToTonneMeters(f.Mu), marker)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "RESULT:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	fmt.Fprintf(out, "  Maximum axial force:  %s (%s)\n", govP.Combination.ID, govP.Combination.Description)
	fmt.Fprintf(out, "  Maximum moment:       %s (%s)\n", govM.Combination.ID, govM.Combination.Description)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  ╔═══════════════════════════════════════════════╗\n")
	fmt.Fprintf(out, "  ║  Pu,max = %.2f tf  with Mu = %.2f tf·m\n", aci.ToTonnes(govP.Pu), aci.ToTonneMeters(govP.Mu))
	fmt.Fprintf(out, "  ║  Mu,max = %.2f tf·m  with Pu = %.2f tf\n", aci.ToTonneMeters(govM.Mu), aci.ToTonnes(govM.Pu))
	fmt.Fprintf(out, "  ╚═══════════════════════════════════════════════╝\n")
	fmt.Fprintln(out)

	return nil
}
