package catalog

import "github.com/whiteboardproductions/site/go/internal/models"

// TierOrder defines the display ordering of tiers.
var TierOrder = []string{"startup", "pro", "premium"}

func defaultTiers() map[string]models.Tier {
	return map[string]models.Tier{
		"startup": {
			ID:                        "startup",
			Name:                      "Startup",
			Price:                     models.Price{INR: 25000, USD: 299},
			IncludesPodcastProduction: true,
		},
		"pro": {
			ID:                        "pro",
			Name:                      "Pro",
			Price:                     models.Price{INR: 55000, USD: 699},
			IncludesPodcastProduction: false,
		},
		"premium": {
			ID:                        "premium",
			Name:                      "Premium",
			Price:                     models.Price{INR: 170500, USD: 2049},
			IncludesPodcastProduction: true,
		},
	}
}

func defaultPodcastOptions() []models.PodcastAddOn {
	return []models.PodcastAddOn{
		{Level: models.PodcastBasic, Name: "Basic", Price: models.Price{INR: 3000, USD: 35}, Description: "Basic audio cleanup & enhancement"},
		{Level: models.PodcastStandard, Name: "Standard", Price: models.Price{INR: 5000, USD: 60}, Description: "Professional mastering & editing"},
		{Level: models.PodcastPremium, Name: "Premium", Price: models.Price{INR: 10000, USD: 120}, Description: "Full production & distribution"},
	}
}

func defaultVideoPackages() []models.VideoPackage {
	return []models.VideoPackage{
		{ID: models.VideoPackBasic, Name: "Basic Pack", Price: models.Price{INR: 2000, USD: 25}, VariationCount: 3},
		{ID: models.VideoPackStandard, Name: "Standard Pack", Price: models.Price{INR: 3000, USD: 35}, VariationCount: 5},
		{ID: models.VideoPackPremium, Name: "Premium Pack", Price: models.Price{INR: 5000, USD: 60}, VariationCount: 10},
	}
}
