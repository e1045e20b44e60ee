package enumerate

import "context"

// Instance is one inventory resource considered for renaming.
type Instance struct {
	// ID is the provider-assigned resource identifier.
	ID string
	// Name is a human-readable handle for reporting (server name on
	// Hetzner Cloud, Name tag or instance id on EC2).
	Name string
	// TagValue is the current value of the target tag. Empty means the
	// tag is absent, which classifies the instance as non-conforming.
	TagValue string
}

// Inventory is the cloud boundary the enumerator drives. Implementations
// live in internal/platform.
type Inventory interface {
	// List returns all instances matching the filters, with TagValue
	// populated from tagKey. Order must be stable across a single call.
	List(ctx context.Context, tagKey string, filters map[string]string) ([]Instance, error)
	// ApplyTag sets tagKey to value on the given instance.
	ApplyTag(ctx context.Context, instanceID, tagKey, value string) error
}

// Conforming pairs an instance with the id extracted from its tag value.
type Conforming struct {
	Instance Instance
	ID       int
}

// Change records one planned or applied rename.
type Change struct {
	InstanceID string `json:"instance_id"`
	Name       string `json:"name"`
	// Before is the previous tag value, empty when the tag was absent.
	Before string `json:"before,omitempty"`
	After  string `json:"after"`
}

// Plan is the complete rename plan for one classified population.
// Changes preserve the classification order: the first non-conforming
// instance receives the first fresh name.
type Plan struct {
	Conforming []Conforming
	Changes    []Change
}
