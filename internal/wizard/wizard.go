// Package wizard sequences the checkout questionnaire. A Wizard owns one
// OrderState for its whole life and is not safe for concurrent use; callers
// serialize access.
package wizard

import (
	"errors"
	"fmt"

	"github.com/whiteboardproductions/site/go/internal/catalog"
	"github.com/whiteboardproductions/site/go/internal/models"
)

var (
	ErrUnanswered    = errors.New("current step has no answer")
	ErrComplete      = errors.New("order is already complete")
	ErrNotStarted    = errors.New("wizard has not started")
	ErrUnknownOption = errors.New("unknown option")
)

type Wizard struct {
	catalog    *catalog.Catalog
	currency   models.Currency
	order      *models.OrderState
	totalSteps int

	step int
	// role is the role displayed at step. It is fixed on arrival so that an
	// answer recorded ahead of Advance cannot change which step is being left.
	role Role
}

// New binds the tier for the lifetime of the wizard. The wizard starts at the
// entry point; Advance shows the first question.
func New(cat *catalog.Catalog, tierID string, cur models.Currency) (*Wizard, error) {
	tier, err := cat.Tier(tierID)
	if err != nil {
		return nil, err
	}
	w := &Wizard{
		catalog:    cat,
		currency:   cur,
		order:      models.NewOrderState(tier),
		totalSteps: TotalSteps(tier),
	}
	w.arrive(0)
	return w, nil
}

func (w *Wizard) Tier() models.Tier         { return w.order.Tier }
func (w *Wizard) Currency() models.Currency { return w.currency }
func (w *Wizard) Catalog() *catalog.Catalog { return w.catalog }
func (w *Wizard) Step() int                 { return w.step }
func (w *Wizard) TotalSteps() int           { return w.totalSteps }
func (w *Wizard) Role() Role                { return w.role }
func (w *Wizard) Complete() bool            { return w.role == RoleSummary }

// Order returns a copy of the selection record.
func (w *Wizard) Order() *models.OrderState {
	return w.order.Clone()
}

func (w *Wizard) Total() int64 {
	return w.order.Total(w.currency)
}

// Progress is the percentage shown in the progress bar, capped at 100.
func (w *Wizard) Progress() float64 {
	step := w.step
	if step > w.totalSteps {
		step = w.totalSteps
	}
	return float64(step) / float64(w.totalSteps) * 100
}

// Select records the answer for the current step and advances.
func (w *Wizard) Select(optionID string) error {
	if err := w.Record(optionID); err != nil {
		return err
	}
	return w.Advance()
}

// Record writes the answer for the current step without moving. The caller
// is expected to Advance next; the split exists so that a front end can show
// the chosen option briefly before the next question.
func (w *Wizard) Record(optionID string) error {
	o := w.order

	switch w.role {
	case RoleEntry:
		return ErrNotStarted
	case RoleSummary:
		return ErrComplete

	case RolePodcastOwnership:
		has, err := yesNo(optionID)
		if err != nil {
			return err
		}
		o.HasPodcastContent = models.Bool(has)
		o.PodcastAddOn = nil

	case RolePodcastAddOnChoice:
		addOn, ok := w.catalog.PodcastOption(models.PodcastLevel(optionID))
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownOption, optionID)
		}
		o.PodcastAddOn = &addOn

	case RoleVideoVariations:
		wants, err := yesNo(optionID)
		if err != nil {
			return err
		}
		o.WantsVideoVariations = models.Bool(wants)
		// A fresh answer always discards a package left over from an
		// earlier pass, so "yes" leads to the package choice again.
		o.VideoPackage = nil

	case RoleVideoPackageChoice:
		pack, ok := w.catalog.VideoPackage(videoPackFromOption(optionID))
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownOption, optionID)
		}
		o.VideoPackage = &pack
	}

	return nil
}

// Advance moves forward by one step, except that Startup and Premium never
// visit the podcast steps and a Pro customer who has content skips the
// podcast add-on choice.
func (w *Wizard) Advance() error {
	o := w.order

	var next int
	switch w.role {
	case RoleEntry:
		next = 1
	case RolePodcastOwnership:
		switch {
		case models.IsTrue(o.HasPodcastContent):
			next = 3
		case models.IsFalse(o.HasPodcastContent):
			next = 2
		default:
			return ErrUnanswered
		}
	case RolePodcastAddOnChoice:
		if o.PodcastAddOn == nil {
			return ErrUnanswered
		}
		next = 3
	case RoleVideoVariations:
		if o.WantsVideoVariations == nil {
			return ErrUnanswered
		}
		next = w.step + 1
	case RoleVideoPackageChoice:
		if o.VideoPackage == nil {
			return ErrUnanswered
		}
		next = w.step + 1
	case RoleSummary:
		return ErrComplete
	}

	w.arrive(next)
	return nil
}

// Retreat undoes the last Advance. The step it lands on is reopened: that
// step's answer and anything derived from it are cleared, which restores the
// exact state seen before the answer was given. It reports true when the
// wizard went back past the first question, i.e. the customer left.
func (w *Wizard) Retreat() (exited bool) {
	o := w.order

	var prev int
	var reopen Role
	switch w.role {
	case RoleEntry, RolePodcastOwnership:
		prev, reopen = 0, RoleEntry
	case RolePodcastAddOnChoice:
		prev, reopen = 1, RolePodcastOwnership
	case RoleVideoVariations:
		switch {
		case o.Tier.IncludesPodcastProduction:
			prev, reopen = 0, RoleEntry
		case models.IsFalse(o.HasPodcastContent):
			prev, reopen = 2, RolePodcastAddOnChoice
		default:
			prev, reopen = 1, RolePodcastOwnership
		}
	case RoleVideoPackageChoice:
		prev, reopen = w.step-1, RoleVideoVariations
	case RoleSummary:
		if o.VideoPackage != nil {
			prev, reopen = w.step-1, RoleVideoPackageChoice
		} else {
			prev, reopen = w.step-1, RoleVideoVariations
		}
	}

	clearAnswer(o, reopen)
	w.arrive(prev)
	return w.role == RoleEntry
}

func (w *Wizard) arrive(step int) {
	w.step = step
	w.role = RoleAt(step, w.order)
}

func clearAnswer(o *models.OrderState, r Role) {
	switch r {
	case RolePodcastOwnership:
		o.HasPodcastContent = nil
		o.PodcastAddOn = nil
	case RolePodcastAddOnChoice:
		o.PodcastAddOn = nil
	case RoleVideoVariations:
		o.WantsVideoVariations = nil
		o.VideoPackage = nil
	case RoleVideoPackageChoice:
		o.VideoPackage = nil
	}
}

func yesNo(optionID string) (bool, error) {
	switch optionID {
	case OptionYes:
		return true, nil
	case OptionNo:
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownOption, optionID)
}
