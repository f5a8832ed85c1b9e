// Package command implements the computor command line.
package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/govalues/computor/internal/config"
	"github.com/govalues/computor/internal/log"
	"github.com/govalues/computor/internal/render"
)

// Root is the computor command.
var Root = &cobra.Command{
	Use:   "computor [flags] <equation>...",
	Short: "Solves polynomial equations of degree 2 or lower.",
	Long: `Solves polynomial equations of degree 2 or lower.

Every argument is an equation made of terms "a * X^p" separated by + or -,
for example "5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0". The reduced form, the
degree and the real solutions of each equation are printed in order.`,
	Example: `computor "X^2 - 5*X + 4 = 0"
computor --fractions --steps "2*X^2 + X = 1"
COMPUTOR_OUTPUT=json computor "4 * X^0 = 8 * X^1"`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Flush()
	},
}

func init() {
	config.RegisterFlags(Root.Flags())
	log.RegisterFlags(Root.PersistentFlags())
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	// Equations report their own errors from here on.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	opts := render.Options{Fractions: cfg.Fractions, Steps: cfg.Steps}
	write := render.Text
	if cfg.Output == config.OutputJSON {
		write = render.JSON
	}

	var first error
	for i, text := range args {
		if i > 0 && cfg.Output == config.OutputText {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		log.V(1).Infof("solving %q", text)
		r := render.Solve(text)
		if err := write(cmd.OutOrStdout(), r, opts); err != nil {
			log.Errorf("writing result of %q: %v", text, err)
			return fmt.Errorf("writing result: %w", err)
		}
		if r.Err != nil {
			log.Warningf("equation %q: %v", text, r.Err)
			if cfg.Output == config.OutputText {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", render.Message(r.Err))
			}
			if first == nil {
				first = r.Err
			}
		}
	}
	return first
}
