package walls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables(t *testing.T) {
	for _, et := range []EarnerType{Parttime, Freelance} {
		table := Table(et)
		require.Len(t, table, 5, "earner type %s", et)

		for i, w := range table {
			assert.Equal(t, i+1, w.Level, "level order for %s", et)
			assert.NotEmpty(t, w.Name)
			assert.NotEmpty(t, w.Category)
			assert.NotEmpty(t, w.Description)
			assert.NotEmpty(t, w.Impact(), "every wall names at least one impact")
			if i > 0 {
				assert.Greater(t, w.Amount, table[i-1].Amount, "amounts ascend for %s", et)
			}
		}
	}
}

func TestTableAmounts(t *testing.T) {
	amounts := func(ws []Wall) []int64 {
		out := make([]int64, len(ws))
		for i, w := range ws {
			out[i] = w.Amount
		}
		return out
	}

	assert.Equal(t, []int64{1030000, 1060000, 1300000, 1500000, 2010000}, amounts(Table(Parttime)))
	assert.Equal(t, []int64{480000, 1030000, 1130000, 1300000, 2900000}, amounts(Table(Freelance)))
}

func TestExceeded(t *testing.T) {
	tests := []struct {
		name   string
		income int64
		et     EarnerType
		count  int
	}{
		{"Below every wall", 500000, Parttime, 0},
		{"Exactly at first wall", 1030000, Parttime, 1},
		{"One yen under", 1029999, Parttime, 0},
		{"Between walls", 1200000, Parttime, 2},
		{"Above every wall", 3000000, Parttime, 5},
		{"Freelance first wall", 480000, Freelance, 1},
		{"Freelance mid", 1200000, Freelance, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exceeded := Exceeded(tt.income, tt.et)
			assert.Len(t, exceeded, tt.count)

			// The result is always a prefix of the table.
			table := Table(tt.et)
			for i, w := range exceeded {
				assert.Equal(t, table[i].Amount, w.Amount)
				assert.LessOrEqual(t, w.Amount, tt.income)
			}
		})
	}
}

func TestNext(t *testing.T) {
	next := Next(1200000, Parttime)
	require.NotNil(t, next)
	assert.Equal(t, "130万円の壁", next.Name)
	assert.Equal(t, int64(100000), next.Remaining)

	// Meeting a wall exactly moves past it.
	atWall := Next(1300000, Parttime)
	require.NotNil(t, atWall)
	assert.Equal(t, "150万円の壁", atWall.Name)

	assert.Nil(t, Next(3000000, Parttime))
	assert.Nil(t, Next(2900000, Freelance))
}

func TestExceededAndNextPartition(t *testing.T) {
	// Every wall is either exceeded or still ahead; the next wall is the
	// first of the remainder.
	for _, et := range []EarnerType{Parttime, Freelance} {
		for _, income := range []int64{0, 479999, 480000, 1029999, 1030000, 1250000, 5000000} {
			exceeded := Exceeded(income, et)
			next := Next(income, et)

			if next == nil {
				assert.Len(t, exceeded, len(Table(et)))
				continue
			}
			require.Less(t, len(exceeded), len(Table(et)))
			assert.Equal(t, Table(et)[len(exceeded)].Amount, next.Amount)
			assert.Equal(t, next.Amount-income, next.Remaining)
		}
	}
}

func TestExpenseProfileFor(t *testing.T) {
	tests := []struct {
		businessType string
		name         string
		averageRate  string
	}{
		{"writer", "ライター", "15"},
		{"designer", "デザイナー", "22.5"},
		{"engineer", "エンジニア", "17.5"},
		{"video_editor", "動画編集", "30"},
		{"other", "その他", "20"},
		{"", "その他", "20"},
		{"astronaut", "その他", "20"},
	}

	for _, tt := range tests {
		p := ExpenseProfileFor(tt.businessType)
		assert.Equal(t, tt.name, p.Name, "business type %q", tt.businessType)
		assert.Equal(t, tt.averageRate, p.AverageRate.String())
		assert.True(t, p.RangeMin.LessThanOrEqual(p.AverageRate))
		assert.True(t, p.AverageRate.LessThanOrEqual(p.RangeMax))
		assert.NotEmpty(t, p.CommonExpenses)
	}
}
