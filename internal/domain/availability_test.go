package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCellKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Cell
		wantErr bool
	}{
		{name: "simple", input: "Monday-10:00", want: Cell{Day: "Monday", Time: "10:00"}},
		{name: "time keeps inner dash", input: "Monday-10:00-1", want: Cell{Day: "Monday", Time: "10:00-1"}},
		{name: "no separator", input: "Monday", wantErr: true},
		{name: "empty day", input: "-10:00", wantErr: true},
		{name: "empty time", input: "Monday-", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell, err := ParseCellKey(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCellKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cell)
			assert.Equal(t, tt.input, cell.Key())
		})
	}
}

func TestAggregatorToggle(t *testing.T) {
	agg := NewAggregator(nil, "me@example.com", nil)
	cell := Cell{Day: "Monday", Time: "10:00"}

	assert.False(t, agg.HasSelected(cell))

	agg.Toggle(cell)
	assert.True(t, agg.HasSelected(cell))

	// Повторный toggle возвращает исходное состояние
	agg.Toggle(cell)
	assert.False(t, agg.HasSelected(cell))
}

func TestAggregatorSelection_Sorted(t *testing.T) {
	agg := NewAggregator(nil, "me@example.com", []Cell{
		{Day: "Tuesday", Time: "11:00"},
		{Day: "Monday", Time: "10:00"},
		{Day: "Monday", Time: "09:00"},
	})

	assert.Equal(t, []Cell{
		{Day: "Monday", Time: "09:00"},
		{Day: "Monday", Time: "10:00"},
		{Day: "Tuesday", Time: "11:00"},
	}, agg.Selection())
}

func TestCellAvailability_UserNotSynced(t *testing.T) {
	cell := Cell{Day: "Monday", Time: "10:00"}
	participants := []PollParticipant{
		{Email: "alice@example.com", Cells: []Cell{cell}},
		{Email: "bob@example.com", Cells: []Cell{{Day: "Tuesday", Time: "11:00"}}},
	}

	agg := NewAggregator(participants, "me@example.com", []Cell{cell})

	got := agg.CellAvailability(cell)

	// Локальная выборка добавляет текущего пользователя и в счетчик, и в итог
	assert.Equal(t, 2, got.AvailableCount)
	assert.Equal(t, 3, got.TotalParticipants)
}

func TestCellAvailability_UserSyncedCountedOnce(t *testing.T) {
	cell := Cell{Day: "Monday", Time: "10:00"}
	participants := []PollParticipant{
		{Email: "alice@example.com", Cells: []Cell{cell}},
		{Email: "me@example.com", Cells: []Cell{cell}},
	}

	// Пользователь уже синхронизирован: локальная выборка не учитывается
	agg := NewAggregator(participants, "me@example.com", []Cell{cell})

	got := agg.CellAvailability(cell)

	assert.Equal(t, 2, got.AvailableCount)
	assert.Equal(t, 2, got.TotalParticipants)
}

func TestCellAvailability_EmptyPoll(t *testing.T) {
	agg := NewAggregator(nil, "me@example.com", nil)

	got := agg.CellAvailability(Cell{Day: "Monday", Time: "10:00"})

	assert.Equal(t, 0, got.AvailableCount)
	assert.Equal(t, 1, got.TotalParticipants)
	assert.Equal(t, 0.0, got.Ratio())
}

func TestRatio_NoParticipants(t *testing.T) {
	assert.Equal(t, 0.0, CellAvailability{}.Ratio())
}

func TestAvailableUsersAt_PartitionSorted(t *testing.T) {
	cell := Cell{Day: "Monday", Time: "10:00"}
	participants := []PollParticipant{
		{Email: "carol@example.com", Cells: []Cell{cell}},
		{Email: "alice@example.com", Cells: []Cell{cell}},
		{Email: "bob@example.com"},
	}

	agg := NewAggregator(participants, "me@example.com", nil)

	available, unavailable := agg.AvailableUsersAt(cell)

	assert.Equal(t, []string{"alice@example.com", "carol@example.com"}, available)
	assert.Equal(t, []string{"bob@example.com", "me@example.com"}, unavailable)
}

func TestTier(t *testing.T) {
	tests := []struct {
		name    string
		ratio   float64
		buckets int
		want    int
	}{
		{name: "zero ratio", ratio: 0, buckets: TierBuckets, want: 0},
		{name: "tiny ratio rounds up", ratio: 0.01, buckets: TierBuckets, want: 1},
		{name: "full ratio", ratio: 1, buckets: TierBuckets, want: TierBuckets},
		{name: "over full clamped", ratio: 1.5, buckets: TierBuckets, want: TierBuckets},
		{name: "half compact", ratio: 0.5, buckets: CompactTierBuckets, want: 3},
		{name: "no buckets", ratio: 0.5, buckets: 0, want: 0},
		{name: "negative ratio", ratio: -0.5, buckets: TierBuckets, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tier(tt.ratio, tt.buckets))
		})
	}
}

func TestDragSelection_UniformDirection(t *testing.T) {
	a := Cell{Day: "Monday", Time: "09:00"}
	b := Cell{Day: "Monday", Time: "10:00"}
	c := Cell{Day: "Monday", Time: "11:00"}

	// b уже выбрана; штрих, начатый на пустой ячейке, выбирает все ячейки
	agg := NewAggregator(nil, "me@example.com", []Cell{b})
	drag := NewDragSelection(agg)

	drag.Begin(a)
	drag.Extend(b)
	drag.Extend(c)
	drag.End()

	assert.True(t, agg.HasSelected(a))
	assert.True(t, agg.HasSelected(b))
	assert.True(t, agg.HasSelected(c))
}

func TestDragSelection_DeselectingStroke(t *testing.T) {
	a := Cell{Day: "Monday", Time: "09:00"}
	b := Cell{Day: "Monday", Time: "10:00"}

	agg := NewAggregator(nil, "me@example.com", []Cell{a})
	drag := NewDragSelection(agg)

	// Штрих, начатый на выбранной ячейке, снимает выбор со всех
	drag.Begin(a)
	drag.Extend(b)
	drag.End()

	assert.False(t, agg.HasSelected(a))
	assert.False(t, agg.HasSelected(b))
}

func TestDragSelection_ExtendWithoutBeginIgnored(t *testing.T) {
	cell := Cell{Day: "Monday", Time: "09:00"}

	agg := NewAggregator(nil, "me@example.com", nil)
	drag := NewDragSelection(agg)

	drag.Extend(cell)

	assert.False(t, agg.HasSelected(cell))
}

func TestDragSelection_EndStopsStroke(t *testing.T) {
	a := Cell{Day: "Monday", Time: "09:00"}
	b := Cell{Day: "Monday", Time: "10:00"}

	agg := NewAggregator(nil, "me@example.com", nil)
	drag := NewDragSelection(agg)

	drag.Begin(a)
	drag.End()
	drag.Extend(b)

	assert.True(t, agg.HasSelected(a))
	assert.False(t, agg.HasSelected(b))
}
