// Package walls holds the static income-wall reference tables and the
// industry expense-rate benchmarks. Everything here is built once at
// process start and read concurrently without locking.
package walls

import "github.com/shopspring/decimal"

// EarnerType selects which wall table applies.
type EarnerType string

const (
	Parttime  EarnerType = "parttime"
	Freelance EarnerType = "freelance"
)

// Impacts describes who a wall affects when crossed. Either field may be
// empty; at least one is always set.
type Impacts struct {
	Self   string `json:"self,omitempty"`
	Family string `json:"family,omitempty"`
}

// Wall is a statutory income threshold. Tables are strictly increasing
// by Amount and Level matches the ascending position, starting at 1.
type Wall struct {
	Amount      int64    `json:"amount"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Conditions  []string `json:"conditions,omitempty"`
	Impacts     Impacts  `json:"impacts"`
	Note        string   `json:"note,omitempty"`
	Level       int      `json:"level"`
}

// Impact returns the self impact when present, otherwise the family impact.
func (w Wall) Impact() string {
	if w.Impacts.Self != "" {
		return w.Impacts.Self
	}
	return w.Impacts.Family
}

// NextWall is a wall not yet crossed plus the income distance to it.
type NextWall struct {
	Wall
	Remaining int64 `json:"remaining"`
}

var parttimeWalls = []Wall{
	{
		Amount:      1030000,
		Name:        "103万円の壁",
		Category:    "所得税",
		Description: "基礎控除48万円＋給与所得控除55万円を超え、所得税が発生",
		Impacts:     Impacts{Self: "本人に所得税が発生（源泉徴収）"},
		Level:       1,
	},
	{
		Amount:      1060000,
		Name:        "106万円の壁",
		Category:    "社会保険",
		Description: "大企業（従業員101人以上）で週20時間以上勤務＋月収8.8万円以上で社会保険加入義務",
		Conditions: []string{
			"週20時間以上勤務",
			"月88,000円以上",
			"2ヶ月超雇用",
			"学生でない（学生除外特例あり）",
			"従業員101人以上の企業",
		},
		Impacts: Impacts{Self: "本人に年間約15〜17万円の社会保険料負担（学生除外特例あり）"},
		Level:   2,
	},
	{
		Amount:      1300000,
		Name:        "130万円の壁",
		Category:    "扶養・社会保険",
		Description: "親の社会保険の扶養から外れる",
		Impacts: Impacts{
			Self:   "国民健康保険・年金に加入必要",
			Family: "親の健康保険料が上がる",
		},
		Level: 3,
	},
	{
		Amount:      1500000,
		Name:        "150万円の壁",
		Category:    "配偶者控除",
		Description: "配偶者控除を受けている場合、控除が減少",
		Impacts:     Impacts{Family: "親の税負担が増加（配偶者特別控除の減額）"},
		Level:       4,
	},
	{
		Amount:      2010000,
		Name:        "201万円の壁",
		Category:    "住民税",
		Description: "住民税の均等割＋所得割が発生",
		Impacts:     Impacts{Self: "本人に住民税が発生（市区町村により基準100〜204万円）"},
		Level:       5,
	},
}

var freelanceWalls = []Wall{
	{
		Amount:      480000,
		Name:        "48万円の壁",
		Category:    "所得税",
		Description: "基礎控除48万円を超え、所得税が発生",
		Impacts:     Impacts{Self: "本人に所得税が発生"},
		Level:       1,
	},
	{
		Amount:      1030000,
		Name:        "103万円の壁",
		Category:    "扶養控除",
		Description: "親の扶養控除が外れる（給与所得換算）",
		Note:        "事業所得48万円が給与所得103万円相当",
		Impacts:     Impacts{Family: "親の税負担が年間5〜16万円増"},
		Level:       2,
	},
	{
		Amount:      1130000,
		Name:        "113万円の壁",
		Category:    "所得税",
		Description: "青色申告特別控除65万円を使っても所得税が発生",
		Note:        "113万円 - 65万円（青色控除）- 48万円（基礎控除）= 0円",
		Impacts:     Impacts{Self: "青色申告でも所得税が発生"},
		Level:       3,
	},
	{
		Amount:      1300000,
		Name:        "130万円の壁",
		Category:    "社会保険扶養",
		Description: "親の社会保険の扶養から外れる",
		Impacts: Impacts{
			Self:   "国民健康保険・国民年金に加入必要",
			Family: "親の健康保険料が上がる",
		},
		Level: 4,
	},
	{
		Amount:      2900000,
		Name:        "290万円の壁",
		Category:    "個人事業税",
		Description: "個人事業税が発生（事業主控除290万円）",
		Note:        "業種により税率3〜5%",
		Impacts:     Impacts{Self: "個人事業税が発生（所得×税率3〜5%）"},
		Level:       5,
	},
}

// Table returns the ascending wall sequence for an earner type.
func Table(et EarnerType) []Wall {
	if et == Freelance {
		return freelanceWalls
	}
	return parttimeWalls
}

// Exceeded returns every wall with Amount <= income, in table order.
// The tables are already ascending so the result is a prefix.
func Exceeded(income int64, et EarnerType) []Wall {
	table := Table(et)
	var exceeded []Wall
	for _, w := range table {
		if income >= w.Amount {
			exceeded = append(exceeded, w)
		}
	}
	return exceeded
}

// Next returns the first wall above income together with the remaining
// distance, or nil when income meets or exceeds every wall.
func Next(income int64, et EarnerType) *NextWall {
	for _, w := range Table(et) {
		if income < w.Amount {
			return &NextWall{Wall: w, Remaining: w.Amount - income}
		}
	}
	return nil
}

// ExpenseProfile is the per-industry expense-rate benchmark.
type ExpenseProfile struct {
	Name           string          `json:"name"`
	AverageRate    decimal.Decimal `json:"averageRate"`
	RangeMin       decimal.Decimal `json:"rangeMin"`
	RangeMax       decimal.Decimal `json:"rangeMax"`
	CommonExpenses []string        `json:"commonExpenses"`
}

var expenseProfiles = map[string]ExpenseProfile{
	"writer": {
		Name:        "ライター",
		AverageRate: decimal.NewFromFloat(15.0),
		RangeMin:    decimal.NewFromFloat(10.0),
		RangeMax:    decimal.NewFromFloat(20.0),
		CommonExpenses: []string{
			"書籍代・資料代",
			"インターネット通信費",
			"カフェ作業費",
			"PC・周辺機器",
		},
	},
	"designer": {
		Name:        "デザイナー",
		AverageRate: decimal.NewFromFloat(22.5),
		RangeMin:    decimal.NewFromFloat(15.0),
		RangeMax:    decimal.NewFromFloat(30.0),
		CommonExpenses: []string{
			"Adobe Creative Cloud等ソフトウェア",
			"素材購入費",
			"PC・タブレット・周辺機器",
			"通信費",
		},
	},
	"engineer": {
		Name:        "エンジニア",
		AverageRate: decimal.NewFromFloat(17.5),
		RangeMin:    decimal.NewFromFloat(10.0),
		RangeMax:    decimal.NewFromFloat(25.0),
		CommonExpenses: []string{
			"サーバー・ドメイン費用",
			"開発ツール・ライセンス",
			"PC・周辺機器",
			"技術書・研修費",
		},
	},
	"video_editor": {
		Name:        "動画編集",
		AverageRate: decimal.NewFromFloat(30.0),
		RangeMin:    decimal.NewFromFloat(20.0),
		RangeMax:    decimal.NewFromFloat(40.0),
		CommonExpenses: []string{
			"動画編集ソフトウェア",
			"素材・音源購入費",
			"高性能PC・ストレージ",
			"通信費",
		},
	},
	"other": {
		Name:        "その他",
		AverageRate: decimal.NewFromFloat(20.0),
		RangeMin:    decimal.NewFromFloat(10.0),
		RangeMax:    decimal.NewFromFloat(30.0),
		CommonExpenses: []string{
			"業務に必要な経費を計上",
			"通信費",
			"PC・周辺機器",
			"交通費",
		},
	},
}

// ExpenseProfileFor returns the benchmark for a business type. Unknown
// types fall back to the "other" profile; the lookup never fails.
func ExpenseProfileFor(businessType string) ExpenseProfile {
	if p, ok := expenseProfiles[businessType]; ok {
		return p
	}
	return expenseProfiles["other"]
}
