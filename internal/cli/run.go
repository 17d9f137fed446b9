package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/whiteboardproductions/site/go/internal/currency"
	"github.com/whiteboardproductions/site/go/internal/tui"
)

var runProgram = func(m tui.Model) (tui.Model, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return m, err
	}
	return final.(tui.Model), nil
}

func RunCmd(flags *rootFlags) *cobra.Command {
	var plan string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Walk through the order wizard interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cat := flags.catalog(ctx)

			var pending *currency.Pending
			if cur, ok := flags.forcedCurrency(); ok {
				pending = currency.NewResolver(fixedCurrency(cur)).Start(ctx, "", currency.Hints{})
			} else {
				pending = flags.resolver().Start(ctx, "", localHints())
			}

			m, err := tui.New(cat, plan, pending, flags.deliveryBase)
			if err != nil {
				pending.Discard()
				return err
			}

			final, err := runProgram(m)
			if err != nil {
				return err
			}
			if final.Err() != nil {
				return final.Err()
			}

			res := final.Result()
			if res == nil || res.Exited {
				fmt.Fprintln(cmd.OutOrStdout(), "No order placed.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), "Send your order:", res.DeepLink)
			return nil
		},
	}

	cmd.Flags().StringVar(&plan, "plan", "", "plan to order (startup, pro, premium)")
	_ = cmd.MarkFlagRequired("plan")
	return cmd
}
