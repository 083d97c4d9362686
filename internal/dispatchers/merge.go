package dispatchers

// MergeFlags composes flag groups in order. Later groups override earlier
// ones: a descriptor whose destination key was already declared replaces the
// earlier descriptor in place, and a spelling claimed by a later descriptor
// is taken away from any earlier descriptor. Descriptors left without a
// spelling are dropped. The input slices are not modified.
func MergeFlags(groups ...[]FlagDescriptor) []FlagDescriptor {
	var out []FlagDescriptor
	index := make(map[string]int)

	for _, group := range groups {
		for _, f := range group {
			f = f.clone()
			key := f.Key()

			for i := range out {
				if out[i].Key() == key {
					continue
				}
				out[i].Names = withoutNames(out[i].Names, f.Names)
			}

			if pos, ok := index[key]; ok {
				out[pos] = f
				continue
			}
			index[key] = len(out)
			out = append(out, f)
		}
	}

	merged := out[:0]
	for _, f := range out {
		if len(f.Names) > 0 {
			merged = append(merged, f)
		}
	}
	return merged
}

func withoutNames(names []string, remove []string) []string {
	var kept []string
	for _, n := range names {
		drop := false
		for _, r := range remove {
			if n == r {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, n)
		}
	}
	return kept
}

// LookupFlag returns the descriptor carrying the given spelling.
func LookupFlag(flags []FlagDescriptor, name string) (FlagDescriptor, bool) {
	for _, f := range flags {
		if f.HasName(name) {
			return f, true
		}
	}
	return FlagDescriptor{}, false
}
