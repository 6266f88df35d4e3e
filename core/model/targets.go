package model

const (
	TargetCount = 8
	TargetMin   = 5
	TargetMax   = 50
)

// Targets is the ordered row of sums the player is chasing. Duplicates are
// allowed; lookups favour the lowest index.
type Targets struct {
	values []int
}

func NewTargets(n int, src Source) *Targets {
	t := &Targets{values: make([]int, n)}
	for i := range t.values {
		t.values[i] = RandIn(src, TargetMin, TargetMax)
	}
	return t
}

func (t *Targets) Len() int { return len(t.values) }

// Values returns a copy in slot order.
func (t *Targets) Values() []int { return append([]int(nil), t.values...) }

func (t *Targets) ReplaceAt(i, v int) {
	if i < 0 || i >= len(t.values) {
		return
	}
	t.values[i] = v
}

// FindIndex returns the first slot holding sum.
func (t *Targets) FindIndex(sum int) (int, bool) {
	for i, v := range t.values {
		if v == sum {
			return i, true
		}
	}
	return -1, false
}
