package domain

import (
	"math"
	"sort"
)

// Aggregator computes group availability over a poll's grid: per-cell
// participation counts and per-cell participant partitions. It combines the
// synced participant sets with the current user's local, not yet synced
// selection. The current user is counted once: through their synced entry
// when present, through the local selection otherwise.
type Aggregator struct {
	group     map[string]map[Cell]struct{}
	userEmail string
	selected  map[Cell]struct{}
}

// NewAggregator builds an aggregator from the poll participants, the current
// user's email and their local selection.
func NewAggregator(participants []PollParticipant, userEmail string, selection []Cell) *Aggregator {
	group := make(map[string]map[Cell]struct{}, len(participants))
	for _, p := range participants {
		cells := make(map[Cell]struct{}, len(p.Cells))
		for _, c := range p.Cells {
			cells[c] = struct{}{}
		}
		group[p.Email] = cells
	}

	selected := make(map[Cell]struct{}, len(selection))
	for _, c := range selection {
		selected[c] = struct{}{}
	}

	return &Aggregator{
		group:     group,
		userEmail: userEmail,
		selected:  selected,
	}
}

// Toggle flips the cell's membership in the current user's local selection.
// Toggling twice restores the original state.
func (a *Aggregator) Toggle(c Cell) {
	if _, ok := a.selected[c]; ok {
		delete(a.selected, c)
	} else {
		a.selected[c] = struct{}{}
	}
}

// HasSelected reports whether the current user's local selection holds the
// cell.
func (a *Aggregator) HasSelected(c Cell) bool {
	_, ok := a.selected[c]
	return ok
}

// Selection returns the current user's local selection in deterministic
// order.
func (a *Aggregator) Selection() []Cell {
	cells := make([]Cell, 0, len(a.selected))
	for c := range a.selected {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Day != cells[j].Day {
			return cells[i].Day < cells[j].Day
		}
		return cells[i].Time < cells[j].Time
	})
	return cells
}

// CellAvailability is the per-cell participation count.
type CellAvailability struct {
	AvailableCount    int
	TotalParticipants int
}

// Ratio returns AvailableCount/TotalParticipants, or 0 when the poll has no
// participants (never a division error).
func (c CellAvailability) Ratio() float64 {
	if c.TotalParticipants == 0 {
		return 0
	}
	return float64(c.AvailableCount) / float64(c.TotalParticipants)
}

// CellAvailability counts the participants available at the cell. The
// current user is added to the total only when their email is not already a
// synced key, so a user who has synced is never double-counted.
func (a *Aggregator) CellAvailability(c Cell) CellAvailability {
	_, userSynced := a.group[a.userEmail]

	total := len(a.group)
	if !userSynced {
		total++
	}

	count := 0
	for _, cells := range a.group {
		if _, ok := cells[c]; ok {
			count++
		}
	}
	if !userSynced && a.HasSelected(c) {
		count++
	}

	return CellAvailability{
		AvailableCount:    count,
		TotalParticipants: total,
	}
}

// AvailableUsersAt partitions all known participant emails (the current user
// included) by cell membership. Both lists come back sorted.
func (a *Aggregator) AvailableUsersAt(c Cell) (available, unavailable []string) {
	available = make([]string, 0, len(a.group))
	unavailable = make([]string, 0)

	_, userSynced := a.group[a.userEmail]

	for email, cells := range a.group {
		if _, ok := cells[c]; ok {
			available = append(available, email)
		} else {
			unavailable = append(unavailable, email)
		}
	}

	if !userSynced {
		if a.HasSelected(c) {
			available = append(available, a.userEmail)
		} else {
			unavailable = append(unavailable, a.userEmail)
		}
	}

	sort.Strings(available)
	sort.Strings(unavailable)
	return available, unavailable
}

// Tier buckets an availability ratio into a discrete intensity step:
// ceil(ratio * buckets) clamped to [0, buckets]. Ratio 0 maps to tier 0, the
// fully transparent sentinel.
func Tier(ratio float64, buckets int) int {
	if buckets <= 0 || ratio <= 0 {
		return 0
	}
	tier := int(math.Ceil(ratio * float64(buckets)))
	if tier > buckets {
		return buckets
	}
	return tier
}

// DragSelection models one drag stroke over the grid. The toggle direction
// is fixed by the first cell: a stroke either selects or deselects
// uniformly, it never alternates.
type DragSelection struct {
	agg       *Aggregator
	active    bool
	selecting bool
}

// NewDragSelection returns an idle drag over the aggregator's selection.
func NewDragSelection(a *Aggregator) *DragSelection {
	return &DragSelection{agg: a}
}

// Begin starts a stroke at the cell (mouse-down). The stroke direction is
// the inverse of the cell's prior membership.
func (d *DragSelection) Begin(c Cell) {
	d.active = true
	d.selecting = !d.agg.HasSelected(c)
	d.apply(c)
}

// Extend applies the stroke direction to another cell (mouse-enter). A cell
// entered outside an active stroke is ignored.
func (d *DragSelection) Extend(c Cell) {
	if !d.active {
		return
	}
	d.apply(c)
}

// End finishes the stroke (mouse-up).
func (d *DragSelection) End() {
	d.active = false
}

func (d *DragSelection) apply(c Cell) {
	if d.selecting {
		if !d.agg.HasSelected(c) {
			d.agg.Toggle(c)
		}
	} else {
		if d.agg.HasSelected(c) {
			d.agg.Toggle(c)
		}
	}
}
