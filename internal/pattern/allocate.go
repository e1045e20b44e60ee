package pattern

// Allocate returns count fresh names continuing the numeric sequence
// after the highest id in used, or starting at Lower when used is empty.
// The returned names are strictly increasing, gap-free, and never collide
// with any id in used.
//
// It returns a *CapacityError when the last requested id would exceed
// Upper. The check runs before any name is rendered, so Allocate either
// returns the full sequence or nothing.
func (d Descriptor) Allocate(used []int, count int) ([]string, error) {
	start := d.Lower
	if len(used) > 0 {
		max := used[0]
		for _, id := range used[1:] {
			if id > max {
				max = id
			}
		}
		start = max + 1
	}

	if count > 0 && start+count-1 > d.Upper {
		return nil, &CapacityError{
			Prefix:    d.Prefix,
			Next:      start,
			Requested: count,
			Upper:     d.Upper,
		}
	}

	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		names = append(names, d.Render(start+i))
	}
	return names, nil
}
