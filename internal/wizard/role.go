package wizard

import "github.com/whiteboardproductions/site/go/internal/models"

type Role int

const (
	// RoleEntry is index 0: the wizard exists but nothing is shown yet.
	RoleEntry Role = iota
	RolePodcastOwnership
	RolePodcastAddOnChoice
	RoleVideoVariations
	RoleVideoPackageChoice
	RoleSummary
)

var roleNames = map[Role]string{
	RoleEntry:              "entry",
	RolePodcastOwnership:   "podcast_ownership",
	RolePodcastAddOnChoice: "podcast_add_on",
	RoleVideoVariations:    "video_variations",
	RoleVideoPackageChoice: "video_package",
	RoleSummary:            "summary",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// RoleAt is the guard table. Guards are evaluated in order and the first
// match wins; the step index alone does not identify a question.
//
// The combination "tier includes podcast production and step == 2" never
// reaches the video question: advance cannot land a Startup or Premium
// wizard on index 2 with the video question still unanswered.
func RoleAt(step int, o *models.OrderState) Role {
	includes := o.Tier.IncludesPodcastProduction

	switch {
	case step <= 0:
		return RoleEntry
	case !includes && step == 1:
		return RolePodcastOwnership
	case !includes && models.IsFalse(o.HasPodcastContent) && step == 2:
		return RolePodcastAddOnChoice
	case (includes && step == 1) || (!includes && step == 3):
		return RoleVideoVariations
	case models.IsTrue(o.WantsVideoVariations) && o.VideoPackage == nil:
		return RoleVideoPackageChoice
	default:
		return RoleSummary
	}
}

// TotalSteps is the progress denominator for a tier.
func TotalSteps(t models.Tier) int {
	if t.IncludesPodcastProduction {
		return 3
	}
	return 4
}
