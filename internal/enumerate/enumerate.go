package enumerate

import (
	"context"
	"fmt"

	"github.com/imamik/hostenum/internal/pattern"
)

// Classify partitions instances into conforming and non-conforming in a
// single pass, preserving the input order within each partition. A
// malformed or absent tag value is not an error, it just lands in the
// non-conforming partition.
func Classify(desc pattern.Descriptor, instances []Instance) (conforming []Conforming, rest []Instance) {
	for _, inst := range instances {
		if id, ok := desc.Match(inst.TagValue); ok {
			conforming = append(conforming, Conforming{Instance: inst, ID: id})
		} else {
			rest = append(rest, inst)
		}
	}
	return conforming, rest
}

// BuildPlan classifies the whole population and allocates one fresh name
// per non-conforming instance. It fails without building a partial plan
// when the allocation would exceed the pattern's range.
func BuildPlan(desc pattern.Descriptor, instances []Instance) (*Plan, error) {
	conforming, rest := Classify(desc, instances)

	used := make([]int, 0, len(conforming))
	for _, c := range conforming {
		used = append(used, c.ID)
	}

	names, err := desc.Allocate(used, len(rest))
	if err != nil {
		return nil, err
	}

	changes := make([]Change, len(rest))
	for i, inst := range rest {
		changes[i] = Change{
			InstanceID: inst.ID,
			Name:       inst.Name,
			Before:     inst.TagValue,
			After:      names[i],
		}
	}

	return &Plan{Conforming: conforming, Changes: changes}, nil
}

// Apply writes every planned change through the inventory, in plan
// order. It stops at the first failure so a partial batch is visible to
// the caller rather than silently skipped.
func (p *Plan) Apply(ctx context.Context, inv Inventory, tagKey string) error {
	for _, ch := range p.Changes {
		if err := inv.ApplyTag(ctx, ch.InstanceID, tagKey, ch.After); err != nil {
			return fmt.Errorf("tagging instance %s with %s=%s: %w", ch.InstanceID, tagKey, ch.After, err)
		}
	}
	return nil
}
