package listkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type branchRow struct {
	Name     string
	Location string
	Vehicles int
	OpenedAt time.Time
}

func testBranches() []branchRow {
	return []branchRow{
		{Name: "Main Branch", Location: "Doha", Vehicles: 4, OpenedAt: time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "Airport Road", Location: "Doha", Vehicles: 2, OpenedAt: time.Date(2021, 7, 15, 0, 0, 0, 0, time.UTC)},
		{Name: "Marina Outlet", Location: "Dubai", Vehicles: 10, OpenedAt: time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC)},
	}
}

func branchOptions() Options[branchRow] {
	return Options[branchRow]{
		SearchFields: []func(branchRow) string{
			func(b branchRow) string { return b.Location },
			func(b branchRow) string { return b.Name },
		},
		FilterFields: map[string]func(branchRow) string{
			"location": func(b branchRow) string { return b.Location },
		},
		SortKey:  func(b branchRow) any { return b.Name },
		SortDir:  SortAsc,
		Page:     1,
		PageSize: 10,
	}
}

func TestApply_IdentityFilterReturnsAllSorted(t *testing.T) {
	items := testBranches()
	opts := branchOptions()
	opts.Search = ""
	opts.Filters = map[string]string{"location": FilterAll}

	result := Apply(items, opts)

	require.Len(t, result.Page, 3)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, "Airport Road", result.Page[0].Name)
	assert.Equal(t, "Main Branch", result.Page[1].Name)
	assert.Equal(t, "Marina Outlet", result.Page[2].Name)
}

func TestApply_SearchMatchesAnyConfiguredField(t *testing.T) {
	items := testBranches()
	opts := branchOptions()
	opts.Search = "doha"

	result := Apply(items, opts)

	require.Equal(t, 2, result.Total)
	for _, b := range result.Page {
		assert.Equal(t, "Doha", b.Location)
	}

	opts.Search = "marina"
	result = Apply(items, opts)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Marina Outlet", result.Page[0].Name)
}

func TestApply_FilterThenClearRestoresFullSet(t *testing.T) {
	items := testBranches()
	opts := branchOptions()

	opts.Filters = map[string]string{"location": "Dubai"}
	filtered := Apply(items, opts)
	assert.Equal(t, 1, filtered.Total)

	opts.Filters = map[string]string{"location": FilterAll}
	cleared := Apply(items, opts)
	assert.Equal(t, 3, cleared.Total)
	assert.Len(t, items, 3, "input must not be mutated")
}

func TestApply_NumericAndDateKeysCoerced(t *testing.T) {
	items := testBranches()
	opts := branchOptions()
	opts.SortKey = func(b branchRow) any { return b.Vehicles }

	result := Apply(items, opts)
	require.Len(t, result.Page, 3)
	// String comparison would order 10 before 2 and 4.
	assert.Equal(t, []int{2, 4, 10}, []int{result.Page[0].Vehicles, result.Page[1].Vehicles, result.Page[2].Vehicles})

	opts.SortKey = func(b branchRow) any { return b.OpenedAt }
	opts.SortDir = SortDesc
	result = Apply(items, opts)
	assert.Equal(t, "Airport Road", result.Page[0].Name)
}

func TestApply_PaginationInvariants(t *testing.T) {
	items := make([]branchRow, 0, 23)
	for i := 0; i < 23; i++ {
		items = append(items, branchRow{Name: "Branch", Location: "Doha", Vehicles: i})
	}
	opts := Options[branchRow]{
		SortKey:  func(b branchRow) any { return b.Vehicles },
		Page:     3,
		PageSize: 10,
	}

	result := Apply(items, opts)
	assert.Equal(t, 23, result.Total)
	assert.Equal(t, 3, result.TotalPages)
	assert.Len(t, result.Page, 3, "last page may be partial")

	// Out-of-range pages are clamped, not rejected.
	opts.Page = 99
	result = Apply(items, opts)
	assert.Len(t, result.Page, 3)

	opts.Page = 0
	result = Apply(items, opts)
	assert.Len(t, result.Page, 10)
}

func TestApply_EmptyInput(t *testing.T) {
	result := Apply(nil, Options[branchRow]{Page: 5, PageSize: 10})
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0, result.TotalPages)
	assert.Empty(t, result.Page)
}

func TestNextSort(t *testing.T) {
	key, dir := NextSort("name", SortAsc, "name")
	assert.Equal(t, "name", key)
	assert.Equal(t, SortDesc, dir)

	key, dir = NextSort("name", SortDesc, "name")
	assert.Equal(t, SortAsc, dir)
	assert.Equal(t, "name", key)

	key, dir = NextSort("name", SortDesc, "joined")
	assert.Equal(t, "joined", key)
	assert.Equal(t, SortAsc, dir, "changing key resets to ascending")
}
