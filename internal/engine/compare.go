package engine

import (
	"fmt"

	"github.com/piwi3910/RoomFit/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.LayoutSettings
}

// ComparisonResult holds the layout and computed statistics for a single
// scenario.
type ComparisonResult struct {
	Scenario        ComparisonScenario
	Result          model.LayoutResult
	Placed          int
	Dropped         int
	CoveragePercent float64
}

// CompareScenarios lays out the same items under each scenario, in
// scenario order. Coverage is measured against the room as scaled by each
// scenario, so results with different scales stay comparable.
func CompareScenarios(scenarios []ComparisonScenario, room model.Room, items []model.LayoutItem) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		result := New(scenario.Settings).Layout(room, items)
		results = append(results, ComparisonResult{
			Scenario:        scenario,
			Result:          result,
			Placed:          len(result.Placements),
			Dropped:         len(result.Dropped),
			CoveragePercent: result.Coverage(),
		})
	}

	return results
}

// BuildDefaultScenarios generates what-if alternatives to the current
// settings: tighter padding, a finer search step and no wall margin.
func BuildDefaultScenarios(base model.LayoutSettings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: base,
		},
	}

	if base.Padding > 1 {
		tight := base
		tight.Padding = base.Padding * 0.5
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Padding %.1f (half)", tight.Padding),
			Settings: tight,
		})
	}

	if base.SearchStep > 1 {
		fine := base
		fine.SearchStep = base.SearchStep * 0.5
		scenarios = append(scenarios, ComparisonScenario{
			Name:     fmt.Sprintf("Search Step %.1f (half)", fine.SearchStep),
			Settings: fine,
		})
	}

	if base.Margin > 0 {
		noMargin := base
		noMargin.Margin = 0
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "No Wall Margin",
			Settings: noMargin,
		})
	}

	return scenarios
}
