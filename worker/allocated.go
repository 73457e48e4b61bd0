package worker

import (
	"gitlab.com/gpufleet/worker-management-service/models"
)

// allocated accumulates resource claims during one collection cycle. It is
// built fresh per Collect call and discarded once folded into the status.
type allocated struct {
	ram  int64
	vram map[int]int64
}

func newAllocated() *allocated {
	return &allocated{vram: make(map[int]int64)}
}

// addClaim folds one resource claim into the running totals. A nil claim is
// a no-op.
func (a *allocated) addClaim(claim *models.ComputedResourceClaim) {
	if claim == nil {
		return
	}

	if claim.RAM != nil {
		a.ram += *claim.RAM
	}
	for gpuIndex, vram := range claim.VRAM {
		a.vram[gpuIndex] += vram
	}
}
