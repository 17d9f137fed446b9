package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/whiteboardproductions/site/go/internal/summary"
	"github.com/whiteboardproductions/site/go/internal/wizard"
)

func QuoteCmd(flags *rootFlags) *cobra.Command {
	var plan, answers string

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Replay a list of answers and print the order message and link",
		Example: "  checkout quote --plan pro --answers no,standard,yes,standard-pack --currency USD\n" +
			"  checkout quote --plan startup --answers no",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cat := flags.catalog(ctx)

			cur, ok := flags.forcedCurrency()
			if !ok {
				cur = flags.resolver().Resolve(ctx, "", localHints())
			}

			w, err := wizard.New(cat, plan, cur)
			if err != nil {
				return err
			}
			if err := w.Replay(splitAnswers(answers)); err != nil {
				return err
			}
			if !w.Complete() {
				return fmt.Errorf("answers stop at %s; the order is not complete", w.Role())
			}

			msg := summary.Message(w.Order(), cur)
			link := summary.DeepLink(summary.DeliveryBase(flags.deliveryBase, cat.WhatsAppNumber()), msg)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, msg)
			fmt.Fprintln(out)
			fmt.Fprintln(out, link)
			return nil
		},
	}

	cmd.Flags().StringVar(&plan, "plan", "", "plan to order (startup, pro, premium)")
	cmd.Flags().StringVar(&answers, "answers", "", "comma separated option ids, in order")
	_ = cmd.MarkFlagRequired("plan")
	return cmd
}

func splitAnswers(s string) []string {
	var out []string
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
