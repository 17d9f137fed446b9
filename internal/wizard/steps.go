package wizard

import (
	"strings"

	"github.com/whiteboardproductions/site/go/internal/models"
)

const (
	OptionYes = "yes"
	OptionNo  = "no"

	videoPackSuffix = "-pack"
)

// Step is what the wizard shows at its current position. The concrete type
// identifies the role; only the choice steps carry priced options.
type Step interface {
	Role() Role
	Title() string
	Subtitle() string
}

type Choice struct {
	ID    string
	Title string
	Emoji string
}

type PodcastChoice struct {
	ID    string
	Emoji string
	AddOn models.PodcastAddOn
}

type PackageChoice struct {
	ID      string
	Emoji   string
	Package models.VideoPackage
}

type EntryStep struct{}

type PodcastOwnershipStep struct {
	Options []Choice
}

type PodcastAddOnStep struct {
	Options []PodcastChoice
}

type VideoVariationsStep struct {
	Options []Choice
}

type VideoPackageStep struct {
	Options []PackageChoice
}

type SummaryStep struct {
	Order    *models.OrderState
	Currency models.Currency
}

func (EntryStep) Role() Role            { return RoleEntry }
func (PodcastOwnershipStep) Role() Role { return RolePodcastOwnership }
func (PodcastAddOnStep) Role() Role     { return RolePodcastAddOnChoice }
func (VideoVariationsStep) Role() Role  { return RoleVideoVariations }
func (VideoPackageStep) Role() Role     { return RoleVideoPackageChoice }
func (SummaryStep) Role() Role          { return RoleSummary }

func (EntryStep) Title() string    { return "" }
func (EntryStep) Subtitle() string { return "" }

func (PodcastOwnershipStep) Title() string { return "Do you have podcast content?" }
func (PodcastOwnershipStep) Subtitle() string {
	return "We need to know if you already have podcast audio or if we should help produce it for you."
}

func (PodcastAddOnStep) Title() string { return "Choose podcast production level" }
func (PodcastAddOnStep) Subtitle() string {
	return "Select the level that matches your podcast production needs."
}

func (VideoVariationsStep) Title() string { return "Need video variations?" }
func (VideoVariationsStep) Subtitle() string {
	return "Multiple video formats optimized for different social media platforms."
}

func (VideoPackageStep) Title() string { return "Choose video package" }
func (VideoPackageStep) Subtitle() string {
	return "Select the number of video variations you need for different platforms."
}

func (SummaryStep) Title() string    { return "Order summary" }
func (SummaryStep) Subtitle() string { return "Review your selections before confirming." }

var podcastEmoji = map[models.PodcastLevel]string{
	models.PodcastBasic:    "🎙️",
	models.PodcastStandard: "🎧",
	models.PodcastPremium:  "🎤",
}

var packEmoji = map[models.VideoPackID]string{
	models.VideoPackBasic:    "📱",
	models.VideoPackStandard: "📺",
	models.VideoPackPremium:  "🎥",
}

// Current builds the step for the wizard's position.
func (w *Wizard) Current() Step {
	switch w.role {
	case RolePodcastOwnership:
		return PodcastOwnershipStep{Options: []Choice{
			{ID: OptionYes, Title: "Yes, I have audio content", Emoji: "✅"},
			{ID: OptionNo, Title: "No, help me produce it", Emoji: "🎙️"},
		}}

	case RolePodcastAddOnChoice:
		addOns := w.catalog.PodcastOptions()
		opts := make([]PodcastChoice, 0, len(addOns))
		for _, a := range addOns {
			opts = append(opts, PodcastChoice{ID: string(a.Level), Emoji: podcastEmoji[a.Level], AddOn: a})
		}
		return PodcastAddOnStep{Options: opts}

	case RoleVideoVariations:
		return VideoVariationsStep{Options: []Choice{
			{ID: OptionYes, Title: "Yes, add video variations", Emoji: "🎬"},
			{ID: OptionNo, Title: "No, single video only", Emoji: "📱"},
		}}

	case RoleVideoPackageChoice:
		packs := w.catalog.VideoPackages()
		opts := make([]PackageChoice, 0, len(packs))
		for _, p := range packs {
			opts = append(opts, PackageChoice{ID: VideoOptionID(p.ID), Emoji: packEmoji[p.ID], Package: p})
		}
		return VideoPackageStep{Options: opts}

	case RoleSummary:
		return SummaryStep{Order: w.order.Clone(), Currency: w.currency}
	}

	return EntryStep{}
}

// OptionIDs lists the selectable option identifiers of the current step.
func (w *Wizard) OptionIDs() []string {
	var ids []string
	switch s := w.Current().(type) {
	case PodcastOwnershipStep:
		for _, o := range s.Options {
			ids = append(ids, o.ID)
		}
	case PodcastAddOnStep:
		for _, o := range s.Options {
			ids = append(ids, o.ID)
		}
	case VideoVariationsStep:
		for _, o := range s.Options {
			ids = append(ids, o.ID)
		}
	case VideoPackageStep:
		for _, o := range s.Options {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

func VideoOptionID(id models.VideoPackID) string {
	return string(id) + videoPackSuffix
}

func videoPackFromOption(optionID string) models.VideoPackID {
	return models.VideoPackID(strings.TrimSuffix(optionID, videoPackSuffix))
}
