package models

// ComputedResourceClaim is the RAM/VRAM reservation one model instance (or
// one subordinate participation in a distributed instance) holds on a worker.
// RAM is nil when the instance claims no host memory; VRAM maps GPU index to
// claimed bytes.
type ComputedResourceClaim struct {
	RAM  *int64        `json:"ram,omitempty"`
	VRAM map[int]int64 `json:"vram,omitempty"`
}

// ModelInstanceSubordinateWorker is one non-primary participant in a
// distributed model instance.
type ModelInstanceSubordinateWorker struct {
	WorkerName            string                 `json:"worker_name"`
	ComputedResourceClaim *ComputedResourceClaim `json:"computed_resource_claim,omitempty"`
}

// DistributedServers describes the multi-worker execution topology of a model
// instance, when it has one.
type DistributedServers struct {
	SubordinateWorkers []ModelInstanceSubordinateWorker `json:"subordinate_workers,omitempty"`
}

// ModelInstance is one scheduled workload as recorded by the cluster
// controller. WorkerName is the primary owning worker.
type ModelInstance struct {
	ID                    int                    `json:"id"`
	Name                  string                 `json:"name"`
	WorkerName            string                 `json:"worker_name"`
	ComputedResourceClaim *ComputedResourceClaim `json:"computed_resource_claim,omitempty"`
	DistributedServers    *DistributedServers    `json:"distributed_servers,omitempty"`
}
