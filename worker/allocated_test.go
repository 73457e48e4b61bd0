package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.com/gpufleet/worker-management-service/models"
)

func TestAllocatedAddClaim(t *testing.T) {
	a := newAllocated()

	a.addClaim(nil)
	assert.Equal(t, int64(0), a.ram)
	assert.Empty(t, a.vram)

	a.addClaim(&models.ComputedResourceClaim{
		RAM:  int64Ptr(10),
		VRAM: map[int]int64{0: 4},
	})
	a.addClaim(&models.ComputedResourceClaim{
		VRAM: map[int]int64{0: 1, 1: 2},
	})
	a.addClaim(&models.ComputedResourceClaim{
		RAM: int64Ptr(5),
	})

	assert.Equal(t, int64(15), a.ram)
	assert.Equal(t, map[int]int64{0: 5, 1: 2}, a.vram)
}
