package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/Numball/Fair-Division/internal/scenario"
	"github.com/Numball/Fair-Division/rentdiv"
)

// solveCmd runs the search for a scenario file (or the built-in demo).
var solveCmd = &cobra.Command{
	Use:   "solve [scenario.yaml]",
	Short: "Run the envy-free rent division search",
	Long: `Loads a YAML scenario and refines the rent simplex until the search
converges, exhausts its iteration budget, or fails structurally. Without an
argument the built-in demo scenario is solved (A caps rooms 1 and 2 at 500,
B and C take the cheapest room).

Preset scenarios ship under scenarios/: all_cheapest.yaml, all_random.yaml,
fixed_room.yaml, and capped.yaml (the built-in demo).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sc := scenario.Default()
		if len(args) == 1 {
			loaded, err := scenario.Load(args[0])
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			sc = loaded
		}
		trace, _ := cmd.Flags().GetBool("trace")

		if err := runSolve(sc, trace); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().Bool("trace", false, "Print every refinement step")

	// Make 'solve' the default when no subcommand is given.
	rootCmd.Run = solveCmd.Run
	rootCmd.Args = solveCmd.Args
}

// runSolve builds the scenario, drives the search, and renders the result.
func runSolve(sc scenario.Scenario, trace bool) error {
	cfg, strategies, err := sc.Build()
	if err != nil {
		return err
	}

	out := termenv.NewOutput(os.Stdout)

	opts := rentdiv.DefaultOptions()
	if trace {
		opts.OnStep = func(ev rentdiv.StepEvent) {
			fmt.Fprintf(out, "%s child=%d", out.String(fmt.Sprintf("step %4d", ev.Iteration)).Faint(), ev.ChildIndex)
			for i := range ev.Corners {
				fmt.Fprintf(out, "  %s@%v→%d", ev.Labels[i], ev.Corners[i], ev.Choices[i])
			}
			fmt.Fprintln(out)
		}
	}

	res, err := rentdiv.Solve(&cfg, strategies, &opts)
	if err != nil {
		fmt.Fprintln(out, out.String("search failed:").Foreground(out.Color("1")).Bold(), err)
		return err
	}

	renderResult(out, &cfg, res)

	return nil
}

// renderResult prints the final status, prices, and room assignment.
func renderResult(out *termenv.Output, cfg *rentdiv.Config, res rentdiv.Result) {
	statusColor := "2" // green
	if res.Status == rentdiv.Exhausted {
		statusColor = "3" // yellow: best-effort, not envy-free
	}
	fmt.Fprintln(out, out.String(res.Status.String()).Foreground(out.Color(statusColor)).Bold(),
		fmt.Sprintf("after %d iterations", res.Iterations))

	fmt.Fprintln(out, out.String("prices").Bold())
	for _, room := range cfg.Rooms {
		fmt.Fprintf(out, "  room %d: %.2f\n", room, res.Prices[room])
	}

	fmt.Fprintln(out, out.String("assignment").Bold())
	housemates := make([]string, 0, len(res.Assignment))
	for h := range res.Assignment {
		housemates = append(housemates, h)
	}
	sort.Strings(housemates)
	for _, h := range housemates {
		fmt.Fprintf(out, "  %s → room %d\n", h, res.Assignment[h])
	}
}
