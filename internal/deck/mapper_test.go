package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/omikuji/internal/fortune"
)

type skip struct {
	row    int
	reason SkipReason
}

func TestMapFortunes(t *testing.T) {
	t.Run("no rows", func(t *testing.T) {
		assert.Empty(t, MapFortunes(nil))
	})

	t.Run("header only", func(t *testing.T) {
		assert.Empty(t, MapFortunes([][]string{{"id", "title"}}))
	})

	t.Run("blank row skipped", func(t *testing.T) {
		rows := [][]string{{"id", "title"}, {" ", " "}}
		assert.Empty(t, MapFortunes(rows))
	})

	t.Run("header lacking title", func(t *testing.T) {
		rows := [][]string{{"id", "name"}, {"1", "大吉"}}
		assert.Empty(t, MapFortunes(rows))
	})

	t.Run("full record", func(t *testing.T) {
		rows := [][]string{
			{" ID ", "Title", "GENRE1", "genre2", "genre3", "detail1", "detail2", "detail3", "detail4", "detail5"},
			{" 1 ", " 大吉 ", "財布、鍵", "良縁", "励め", "一", "", "三", " ", "五"},
		}
		got := MapFortunes(rows)
		require.Len(t, got, 1)
		assert.Equal(t, fortune.Fortune{
			ID:        "1",
			Title:     "大吉",
			LuckyItem: "財布、鍵",
			Love:      "良縁",
			Study:     "励め",
			Details:   []string{"一", "三", "五"},
		}, got[0])
	})

	t.Run("short rows read as empty", func(t *testing.T) {
		rows := [][]string{{"id", "title", "genre1", "detail1"}, {"1", "吉"}}
		got := MapFortunes(rows)
		require.Len(t, got, 1)
		assert.Equal(t, "", got[0].LuckyItem)
		assert.Empty(t, got[0].Details)
	})

	t.Run("duplicate header last wins", func(t *testing.T) {
		rows := [][]string{{"id", "title", "title"}, {"1", "first", "second"}}
		got := MapFortunes(rows)
		require.Len(t, got, 1)
		assert.Equal(t, "second", got[0].Title)
	})

	t.Run("empty header labels are unaddressable", func(t *testing.T) {
		rows := [][]string{{"id", "", "title"}, {"1", "ignored", "吉"}}
		got := MapFortunes(rows)
		require.Len(t, got, 1)
		assert.Equal(t, "吉", got[0].Title)
	})

	t.Run("order preserved and invalid rows dropped", func(t *testing.T) {
		rows := [][]string{
			{"id", "title"},
			{"b", "凶"},
			{"", "吉"},
			{"c", "  "},
			{"a", "大吉"},
		}
		got := MapFortunes(rows)
		require.Len(t, got, 2)
		assert.Equal(t, "b", got[0].ID)
		assert.Equal(t, "a", got[1].ID)
	})
}

func TestMapFortunesFunc_ReportsSkips(t *testing.T) {
	var skips []skip
	record := func(row int, reason SkipReason) {
		skips = append(skips, skip{row, reason})
	}

	rows := [][]string{
		{"id", "title"},
		{"1", "吉"},
		{"", ""},
		{"", "凶"},
		{"3", ""},
	}
	got := MapFortunesFunc(rows, record)
	assert.Len(t, got, 1)
	assert.Equal(t, []skip{
		{3, SkipBlankRow},
		{4, SkipMissingID},
		{5, SkipMissingTitle},
	}, skips)

	skips = nil
	MapFortunesFunc([][]string{{"title"}, {"吉"}}, record)
	assert.Equal(t, []skip{{1, SkipMissingColumn}}, skips)
}

func TestHeaderIndex(t *testing.T) {
	h := NewHeaderIndex([]string{" Id ", "TITLE", ""})
	assert.True(t, h.Has("id"))
	assert.True(t, h.Has("Title"))
	assert.False(t, h.Has(""))
	assert.Equal(t, "x", h.Value([]string{" x "}, "ID"))
	assert.Equal(t, "", h.Value([]string{" x "}, "title"))
	assert.Equal(t, "", h.Value([]string{"x", "y"}, "genre1"))
}

func TestKnownColumns(t *testing.T) {
	cols := KnownColumns()
	assert.Len(t, cols, 5+fortune.MaxDetails)
	assert.Equal(t, "detail5", cols[len(cols)-1])
}
