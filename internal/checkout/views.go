package checkout

import (
	"fmt"

	"github.com/whiteboardproductions/site/go/internal/catalog"
	"github.com/whiteboardproductions/site/go/internal/models"
	"github.com/whiteboardproductions/site/go/internal/summary"
	"github.com/whiteboardproductions/site/go/internal/wizard"
)

// StepView renders the wizard's current position for API clients.
func StepView(sessionID string, w *wizard.Wizard) *models.StepView {
	cur := w.Currency()
	step := w.Current()

	view := &models.StepView{
		SessionID:  sessionID,
		Plan:       w.Tier().ID,
		Currency:   cur,
		Step:       w.Step(),
		TotalSteps: w.TotalSteps(),
		Progress:   w.Progress(),
		Role:       w.Role().String(),
		Title:      step.Title(),
		Subtitle:   step.Subtitle(),
		Total:      summary.FormatPrice(w.Total(), cur),
	}

	switch s := step.(type) {
	case wizard.PodcastOwnershipStep:
		view.Options = choiceViews(s.Options)
	case wizard.VideoVariationsStep:
		view.Options = choiceViews(s.Options)
	case wizard.PodcastAddOnStep:
		for _, o := range s.Options {
			view.Options = append(view.Options, models.OptionView{
				ID:       o.ID,
				Title:    o.AddOn.Name,
				Emoji:    o.Emoji,
				Price:    "+" + summary.FormatPrice(o.AddOn.Price.In(cur), cur),
				Subtitle: o.AddOn.Description,
			})
		}
	case wizard.VideoPackageStep:
		for _, o := range s.Options {
			view.Options = append(view.Options, models.OptionView{
				ID:       o.ID,
				Title:    o.Package.Name,
				Emoji:    o.Emoji,
				Price:    "+" + summary.FormatPrice(o.Package.Price.In(cur), cur),
				Subtitle: fmt.Sprintf("%d video variations", o.Package.VariationCount),
			})
		}
	case wizard.SummaryStep:
		view.Summary = summaryView(summary.Build(s.Order, s.Currency))
	}

	return view
}

func choiceViews(choices []wizard.Choice) []models.OptionView {
	views := make([]models.OptionView, 0, len(choices))
	for _, c := range choices {
		views = append(views, models.OptionView{ID: c.ID, Title: c.Title, Emoji: c.Emoji})
	}
	return views
}

func summaryView(s summary.Summary) *models.SummaryView {
	view := &models.SummaryView{Total: summary.FormatPrice(s.Total, s.Currency)}
	for _, l := range s.Lines {
		view.Lines = append(view.Lines, models.SummaryLineView{
			Title:  l.Title,
			Detail: l.Detail,
			Amount: l.FormattedAmount(s.Currency),
		})
	}
	return view
}

// PlanViews lists the tiers in display order, priced in cur.
func PlanViews(cat *catalog.Catalog, cur models.Currency) []models.PlanView {
	tiers := cat.Tiers()
	views := make([]models.PlanView, 0, len(tiers))
	for _, t := range tiers {
		views = append(views, models.PlanView{
			ID:                        t.ID,
			Name:                      t.Name,
			Price:                     summary.FormatPrice(t.Price.In(cur), cur),
			PriceValue:                t.Price.In(cur),
			Currency:                  cur,
			IncludesPodcastProduction: t.IncludesPodcastProduction,
		})
	}
	return views
}
