package cluster

import "fmt"

// Spec declares one similarity cluster: which categories to pull together, how
// hard, and a human-readable description used in diagnostics and RDM legends.
//
// Fields:
//   - Targets — non-empty subset of the dense target ids 1..C. Duplicates are
//     harmless (membership is what matters).
//   - Sigma   — similarity strength in [0,1]. 0 means "no injected similarity"
//     (identity); 1 means the selected features become exactly the shared
//     pattern.
//   - Desc    — description string, e.g. "animate".
type Spec struct {
	Targets []int
	Sigma   float64
	Desc    string
}

// Validate reports ErrInvalidClusterSpec when the target set is empty, any id
// falls outside 1..c, or Sigma leaves [0,1]. The wrapped message names the
// offending field so a failed run points at its misconfiguration directly.
//
// Complexity: O(len(Targets)).
func (s Spec) Validate(c int) error {
	if len(s.Targets) == 0 {
		return fmt.Errorf("spec %q: empty target set: %w", s.Desc, ErrInvalidClusterSpec)
	}
	for _, t := range s.Targets {
		if t < 1 || t > c {
			return fmt.Errorf("spec %q: target %d outside 1..%d: %w", s.Desc, t, c, ErrInvalidClusterSpec)
		}
	}
	if s.Sigma < 0 || s.Sigma > 1 {
		return fmt.Errorf("spec %q: sigma %g outside [0,1]: %w", s.Desc, s.Sigma, ErrInvalidClusterSpec)
	}

	return nil
}

// member reports whether target belongs to the spec's target set.
func (s Spec) member(target int) bool {
	for _, t := range s.Targets {
		if t == target {
			return true
		}
	}

	return false
}

// Scheme is an ordered list of Specs representing one coherent hypothesis
// about representational organization (e.g. "animate", then "humans" and
// "animals" nested within it). Order is semantic: Apply executes the specs
// exactly as listed, because later specs overwrite part of what earlier ones
// injected.
type Scheme struct {
	Name  string
	Specs []Spec
}

// Validate checks every spec against the category count c, in order.
func (sc Scheme) Validate(c int) error {
	for _, sp := range sc.Specs {
		if err := sp.Validate(c); err != nil {
			return fmt.Errorf("scheme %q: %w", sc.Name, err)
		}
	}

	return nil
}
