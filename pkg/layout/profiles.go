package layout

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultMargin is the margin applied to every named page profile, in
// millimetres.
const DefaultMargin = 10.0

// Available page profiles
var profiles = map[string]Page{
	"a4": {
		Width:  210,
		Height: 297,
		Margin: DefaultMargin,
	},
	"a4-landscape": {
		Width:  297,
		Height: 210,
		Margin: DefaultMargin,
	},
	"a5": {
		Width:  148,
		Height: 210,
		Margin: DefaultMargin,
	},
	"a3": {
		Width:  297,
		Height: 420,
		Margin: DefaultMargin,
	},
	"letter": {
		Width:  215.9,
		Height: 279.4,
		Margin: DefaultMargin,
	},
	"legal": {
		Width:  215.9,
		Height: 355.6,
		Margin: DefaultMargin,
	},
}

// A4 returns the default page: A4 portrait with the default margin.
func A4() Page {
	return profiles["a4"]
}

// GetProfile returns a page profile by name.
func GetProfile(name string) (Page, error) {
	normalizedName := strings.ToLower(strings.TrimSpace(name))

	if page, exists := profiles[normalizedName]; exists {
		return page, nil
	}

	available := make([]string, 0, len(profiles))
	for key := range profiles {
		available = append(available, key)
	}
	sort.Strings(available)

	return Page{}, fmt.Errorf("unknown page profile '%s'. Available profiles: %v", name, available)
}

// ListProfiles returns all available page profiles.
func ListProfiles() map[string]Page {
	return profiles
}
