// Package quota derives an organization's posting ceiling from its plan.
package quota

import "github.com/jmagwili/launchpad-jia/internal/model"

// Ceiling returns how many active careers the organization may hold: the
// plan's job limit (or the default when the plan reference is unresolved)
// plus any purchased extra slots.
func Ceiling(plan *model.OrganizationPlan, extraSlots int) int {
	limit := model.DefaultJobLimit
	if plan != nil && plan.JobLimit > 0 {
		limit = plan.JobLimit
	}
	if extraSlots < 0 {
		extraSlots = 0
	}
	return limit + extraSlots
}

// HasCapacity reports whether one more active career fits under the ceiling.
// A count equal to the ceiling is already full.
func HasCapacity(ceiling, activeCount int) bool {
	return activeCount < ceiling
}
