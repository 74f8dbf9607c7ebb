package layout

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

const ownerA = "1"

func item(id, owner string, sh, sm, eh, em int) domain.ScheduleItem {
	return domain.ScheduleItem{
		ID:       id,
		OwnerKey: owner,
		Start:    types.MustTimeOfDay(sh, sm),
		End:      types.MustTimeOfDay(eh, em),
		Title:    id,
	}
}

func slot(hour int) types.TimeOfDay {
	return types.MustTimeOfDay(hour, 0)
}

func ids(blocks []domain.LayoutBlock) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.Item.ID
	}
	return out
}

func columnsByID(blocks []domain.LayoutBlock) map[string]int {
	out := make(map[string]int, len(blocks))
	for _, b := range blocks {
		out[b.Item.ID] = b.ColumnIndex
	}
	return out
}

func TestLayoutSlot_EmptyInput(t *testing.T) {
	blocks := LayoutSlot(nil, Query{OwnerKey: ownerA}, slot(9), Options{})
	assert.NotNil(t, blocks)
	assert.Empty(t, blocks)
}

func TestLayoutSlot_SimpleNonOverlap(t *testing.T) {
	items := []domain.ScheduleItem{
		item("A", ownerA, 9, 0, 9, 30),
		item("B", ownerA, 9, 30, 10, 0),
	}

	blocks := LayoutSlot(items, Query{OwnerKey: ownerA}, slot(9), Options{})
	require.Equal(t, []string{"A", "B"}, ids(blocks))
	assert.Equal(t, 0, blocks[0].ColumnIndex)
	// B касается A, но не пересекается с ним
	assert.Equal(t, 0, blocks[1].ColumnIndex)

	assert.Empty(t, LayoutSlot(items, Query{OwnerKey: ownerA}, slot(10), Options{}))
}

func TestLayoutSlot_OverlapForcesSecondColumn(t *testing.T) {
	items := []domain.ScheduleItem{
		item("A", ownerA, 9, 0, 10, 0),
		item("B", ownerA, 9, 15, 9, 45),
	}

	blocks := LayoutSlot(items, Query{OwnerKey: ownerA}, slot(9), Options{})
	require.Len(t, blocks, 2)
	assert.Equal(t, map[string]int{"A": 0, "B": 1}, columnsByID(blocks))
}

func TestLayoutSlot_ThreeWayChainReusesColumn(t *testing.T) {
	items := []domain.ScheduleItem{
		item("A", ownerA, 9, 0, 9, 30),
		item("B", ownerA, 9, 15, 9, 45),
		item("C", ownerA, 9, 40, 10, 0),
	}

	blocks := LayoutSlot(items, Query{OwnerKey: ownerA}, slot(9), Options{})
	assert.Equal(t, []string{"A", "B", "C"}, ids(blocks))
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 0}, columnsByID(blocks))
}

func TestLayoutSlot_FirstFitOpensThirdColumn(t *testing.T) {
	// C возвращается в колонку 0 после A, D не помещается ни к C, ни к B
	items := []domain.ScheduleItem{
		item("A", ownerA, 9, 0, 9, 20),
		item("B", ownerA, 9, 10, 9, 50),
		item("C", ownerA, 9, 25, 10, 0),
		item("D", ownerA, 9, 30, 9, 40),
	}

	blocks := LayoutSlot(items, Query{OwnerKey: ownerA}, slot(9), Options{})
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 0, "D": 2}, columnsByID(blocks))
}

func TestLayoutSlot_HalfOpenBoundary(t *testing.T) {
	items := []domain.ScheduleItem{item("A", ownerA, 9, 0, 10, 0)}

	assert.Equal(t, []string{"A"}, ids(LayoutSlot(items, Query{OwnerKey: ownerA}, slot(9), Options{})))
	assert.Empty(t, LayoutSlot(items, Query{OwnerKey: ownerA}, slot(10), Options{}))
	assert.Empty(t, LayoutSlot(items, Query{OwnerKey: ownerA}, slot(8), Options{}))
}

func TestLayoutSlot_SpanningItemRepeatsWithRecomputedOffset(t *testing.T) {
	items := []domain.ScheduleItem{item("A", ownerA, 9, 30, 11, 15)}

	first := LayoutSlot(items, Query{OwnerKey: ownerA}, slot(9), Options{})
	second := LayoutSlot(items, Query{OwnerKey: ownerA}, slot(10), Options{})
	third := LayoutSlot(items, Query{OwnerKey: ownerA}, slot(11), Options{})

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	require.Len(t, third, 1)

	assert.InDelta(t, 50.0, first[0].LeftPixelOffset, 1e-9)
	assert.InDelta(t, -50.0, second[0].LeftPixelOffset, 1e-9)
	assert.InDelta(t, -150.0, third[0].LeftPixelOffset, 1e-9)
	for _, b := range [][]domain.LayoutBlock{first, second, third} {
		assert.InDelta(t, 175.0, b[0].WidthPixels, 1e-9)
	}
	assert.Empty(t, LayoutSlot(items, Query{OwnerKey: ownerA}, slot(12), Options{}))
}

func TestLayoutSlot_Geometry(t *testing.T) {
	items := []domain.ScheduleItem{
		item("short", ownerA, 9, 0, 9, 6),
		item("long", ownerA, 9, 45, 10, 30),
	}

	blocks := LayoutSlot(items, Query{OwnerKey: ownerA}, slot(9), Options{})
	require.Len(t, blocks, 2)

	assert.InDelta(t, 10.0, blocks[0].WidthPixels, 1e-9)
	assert.InDelta(t, 25.0, blocks[0].SizePixels, 1e-9)
	assert.InDelta(t, 0.0, blocks[0].LeftPixelOffset, 1e-9)

	assert.InDelta(t, 75.0, blocks[1].WidthPixels, 1e-9)
	assert.InDelta(t, 75.0, blocks[1].SizePixels, 1e-9)
	assert.InDelta(t, 75.0, blocks[1].LeftPixelOffset, 1e-9)

	custom := LayoutSlot(items, Query{OwnerKey: ownerA}, slot(9), Options{PixelsPerHour: 60, MinimumBlockSize: 40})
	require.Len(t, custom, 2)
	assert.InDelta(t, 6.0, custom[0].WidthPixels, 1e-9)
	assert.InDelta(t, 40.0, custom[0].SizePixels, 1e-9)
	assert.InDelta(t, 45.0, custom[1].LeftPixelOffset, 1e-9)
}

func TestLayoutSlot_OwnerFiltering(t *testing.T) {
	items := []domain.ScheduleItem{
		item("A", "1", 9, 0, 10, 0),
		item("B", "2", 9, 0, 10, 0),
	}

	assert.Equal(t, []string{"A"}, ids(LayoutSlot(items, Query{OwnerKey: "1"}, slot(9), Options{})))
	assert.Equal(t, []string{"B"}, ids(LayoutSlot(items, Query{OwnerKey: "2"}, slot(9), Options{})))
	assert.Empty(t, LayoutSlot(items, Query{OwnerKey: "3"}, slot(9), Options{}))
}

func TestLayoutSlot_DateScoping(t *testing.T) {
	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	onMonday := item("mon", ownerA, 9, 0, 10, 0)
	onMonday.Date = &monday
	onTuesday := item("tue", ownerA, 9, 0, 10, 0)
	onTuesday.Date = &tuesday
	undated := item("any", ownerA, 9, 0, 10, 0)

	items := []domain.ScheduleItem{onMonday, onTuesday, undated}

	mondayNoon := monday.Add(12 * time.Hour)
	assert.Equal(t, []string{"mon", "any"}, ids(LayoutSlot(items, Query{OwnerKey: ownerA, Date: &mondayNoon}, slot(9), Options{})))
	assert.Equal(t, []string{"tue", "any"}, ids(LayoutSlot(items, Query{OwnerKey: ownerA, Date: &tuesday}, slot(9), Options{})))
	assert.Equal(t, []string{"mon", "tue", "any"}, ids(LayoutSlot(items, Query{OwnerKey: ownerA}, slot(9), Options{})))
}

func TestLayoutSlot_StableTieBreak(t *testing.T) {
	items := []domain.ScheduleItem{
		item("late", ownerA, 9, 30, 10, 0),
		item("first", ownerA, 9, 0, 9, 45),
		item("second", ownerA, 9, 0, 9, 15),
	}

	blocks := LayoutSlot(items, Query{OwnerKey: ownerA}, slot(9), Options{})
	assert.Equal(t, []string{"first", "second", "late"}, ids(blocks))
	assert.Equal(t, map[string]int{"first": 0, "second": 1, "late": 1}, columnsByID(blocks))
}

func TestLayoutSlot_InvalidDurationSkippedAndReported(t *testing.T) {
	items := []domain.ScheduleItem{
		item("zero", ownerA, 9, 0, 9, 0),
		item("negative", ownerA, 9, 45, 9, 10),
		item("ok", ownerA, 9, 0, 9, 30),
		item("foreign", "2", 9, 30, 9, 0),
	}

	var reported []string
	opts := Options{OnInvalid: func(it domain.ScheduleItem, err error) {
		assert.ErrorIs(t, err, ErrInvalidDuration)
		reported = append(reported, it.ID)
	}}

	blocks := LayoutSlot(items, Query{OwnerKey: ownerA}, slot(9), opts)
	require.Equal(t, []string{"ok"}, ids(blocks))
	assert.Equal(t, 0, blocks[0].ColumnIndex)
	assert.Equal(t, []string{"zero", "negative"}, reported)
}

func TestLayoutSlot_ZeroDurationNeverAppears(t *testing.T) {
	items := []domain.ScheduleItem{item("zero", ownerA, 9, 0, 9, 0)}
	for hour := 0; hour < 24; hour++ {
		assert.Empty(t, LayoutSlot(items, Query{OwnerKey: ownerA}, slot(hour), Options{}), "hour %d", hour)
	}
}

func TestLayoutSlot_DoesNotMutateInput(t *testing.T) {
	items := []domain.ScheduleItem{
		item("C", ownerA, 9, 40, 10, 0),
		item("A", ownerA, 9, 0, 9, 30),
		item("B", ownerA, 9, 15, 9, 45),
	}
	before := append([]domain.ScheduleItem(nil), items...)

	_ = LayoutSlot(items, Query{OwnerKey: ownerA}, slot(9), Options{})
	assert.Equal(t, before, items)
}

func TestFilterValid(t *testing.T) {
	items := []domain.ScheduleItem{
		item("ok", ownerA, 9, 0, 9, 30),
		item("zero", ownerA, 9, 0, 9, 0),
	}

	var reported []string
	valid := FilterValid(items, func(it domain.ScheduleItem, err error) {
		assert.ErrorIs(t, err, ErrInvalidDuration)
		reported = append(reported, it.ID)
	})

	assert.Len(t, valid, 1)
	assert.Equal(t, "ok", valid[0].ID)
	assert.Equal(t, []string{"zero"}, reported)
	assert.Len(t, FilterValid(items, nil), 1)
}

func TestOverlaps(t *testing.T) {
	a := item("a", ownerA, 9, 0, 9, 30)
	assert.True(t, Overlaps(a, item("b", ownerA, 9, 15, 9, 45)))
	assert.True(t, Overlaps(a, item("c", ownerA, 8, 0, 12, 0)))
	assert.False(t, Overlaps(a, item("d", ownerA, 9, 30, 10, 0)))
	assert.False(t, Overlaps(a, item("e", ownerA, 8, 0, 9, 0)))
}

func randomItems(rng *rand.Rand, n int) []domain.ScheduleItem {
	items := make([]domain.ScheduleItem, n)
	for i := range items {
		start := rng.Intn(22*60) + 60
		duration := rng.Intn(150) + 1
		end := min(start+duration, 24*60-1)
		owner := fmt.Sprintf("%d", rng.Intn(3))
		items[i] = domain.ScheduleItem{
			ID:       fmt.Sprintf("it-%d", i),
			OwnerKey: owner,
			Start:    types.MustTimeOfDay(start/60, start%60),
			End:      types.MustTimeOfDay(end/60, end%60),
		}
	}
	return items
}

// TestLayoutSlot_Invariants property-tests the layout invariants on random catalogs
func TestLayoutSlot_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		items := randomItems(rng, rng.Intn(20)+1)
		owner := fmt.Sprintf("%d", rng.Intn(3))
		hour := rng.Intn(24)
		pph := float64(rng.Intn(150) + 20)
		opts := Options{PixelsPerHour: pph}

		blocks := LayoutSlot(items, Query{OwnerKey: owner}, slot(hour), opts)

		// Invariant 1: no two overlapping items share a column
		for i := range blocks {
			for j := i + 1; j < len(blocks); j++ {
				if blocks[i].ColumnIndex == blocks[j].ColumnIndex {
					assert.False(t, Overlaps(blocks[i].Item, blocks[j].Item),
						"trial %d: %s and %s collide in column %d", trial, blocks[i].Item.ID, blocks[j].Item.ID, blocks[i].ColumnIndex)
				}
			}
		}

		// Invariant 2: determinism
		again := LayoutSlot(items, Query{OwnerKey: owner}, slot(hour), opts)
		assert.Equal(t, blocks, again, "trial %d: layout must be deterministic", trial)

		for _, b := range blocks {
			// Invariant 3: geometry derived from time values
			want := (b.Item.End.DecimalHour() - b.Item.Start.DecimalHour()) * pph
			assert.InDelta(t, want, b.WidthPixels, 1e-9, "trial %d", trial)
			assert.InDelta(t, (b.Item.Start.DecimalHour()-float64(hour))*pph, b.LeftPixelOffset, 1e-9, "trial %d", trial)
			assert.GreaterOrEqual(t, b.SizePixels, domain.DefaultMinimumBlockSize)

			// Invariant 4: only the queried owner
			assert.Equal(t, owner, b.Item.OwnerKey, "trial %d", trial)

			// Invariant 5: every block touches the slot
			assert.Less(t, b.Item.Start.DecimalHour(), float64(hour+1))
			assert.Greater(t, b.Item.End.DecimalHour(), float64(hour))
		}

		// Invariant 6: the overlap test matches "starts inside the slot or is still running at its start"
		inSlot := make(map[string]bool, len(blocks))
		for _, b := range blocks {
			inSlot[b.Item.ID] = true
		}
		from, to := float64(hour), float64(hour+1)
		for _, it := range items {
			if it.OwnerKey != owner || !it.HasPositiveDuration() {
				continue
			}
			start, end := it.Start.DecimalHour(), it.End.DecimalHour()
			startsInside := start >= from && start < to
			stillRunning := start < from && end > from
			assert.Equal(t, startsInside || stillRunning, inSlot[it.ID], "trial %d: item %s", trial, it.ID)
		}

		// Invariant 7: blocks are ordered by start
		for i := 1; i < len(blocks); i++ {
			assert.LessOrEqual(t, blocks[i-1].Item.Start.Minutes(), blocks[i].Item.Start.Minutes())
		}

		// Invariant 8: first-fit - each column index is at most the number of columns seen so far
		maxColumn := -1
		for _, b := range blocks {
			assert.LessOrEqual(t, b.ColumnIndex, maxColumn+1, "trial %d", trial)
			maxColumn = max(maxColumn, b.ColumnIndex)
		}
	}
}
