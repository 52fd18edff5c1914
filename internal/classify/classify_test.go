package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(n int64) *int64 { return &n }

func TestClassifyCascade(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		rulb    *int64
		want    int
	}{
		{"statute clause 24 wins outright", "無關文字", intPtr(24), CategoryEquity},
		{"investment structure", "公告本公司調整投資架構", intPtr(0), CategoryStructure},
		{"organizational structure", "組織架構調整", nil, CategoryStructure},
		{"joint venture", "公告本公司參與合資案", nil, CategoryJointVenture},
		{"commissioned build", "公告委託興建廠辦", nil, CategoryCommissionedBuild},
		{"engineering", "公告承攬工程變更", nil, CategoryCommissionedBuild},
		{"lease without trade", "公告承租辦公處所", nil, CategoryLease},
		{"right-of-use asset", "公告取得使用權資產", nil, CategoryLease},
		{"structured product", "公告申購理財產品", nil, CategoryStructuredProduct},
		{"fund", "公告申購基金受益憑證", nil, CategoryStructuredProduct},
		{"joint construction", "公告合建分屋協議", nil, CategoryJointConstruction},
		{"real estate", "公告處分土地及建物", nil, CategoryRealEstate},
		{"real estate floor area", "公告容積移轉購買出售", nil, CategoryRealEstate},
		{"equipment", "公告購買機器設備", nil, CategoryEquipment},
		{"intangible asset", "公告購買專利及商標", nil, CategoryEquipment},
		{"merger", "公告股份轉換基準日", nil, CategoryMerger},
		{"bond", "公告購買公司債", nil, CategoryBond},
		{"equity", "公告購買普通股股票", nil, CategoryEquity},
		{"acquire shares announcement", "公告取得股份", nil, CategoryEquity},
		{"no match", "今日無重大事項", nil, CategoryUncategorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.subject, tt.rulb))
		})
	}
}

func TestClassifyShortCircuit(t *testing.T) {
	// RULB 24 must win even when the subject also carries an equity keyword
	// that a later rule would match.
	assert.Equal(t, CategoryEquity, Classify("公告增資發行新股", intPtr(24)))

	// A joint-venture subject with an equity keyword stays joint venture:
	// rule order decides, not keyword breadth.
	assert.Equal(t, CategoryJointVenture, Classify("公告合資取得股權", nil))
}

func TestClassifyOrderSensitiveOverlaps(t *testing.T) {
	// Joint construction is checked before the broader real-estate group.
	assert.Equal(t, CategoryJointConstruction, Classify("公告合建不動產開發案", nil))

	// Equipment is checked before equity even when both keyword groups match.
	assert.Equal(t, CategoryEquipment, Classify("公告購買設備並辦理增資", nil))

	// Real estate is checked before equipment.
	assert.Equal(t, CategoryRealEstate, Classify("公告購買土地及設備", nil))
}

func TestClassifyGuards(t *testing.T) {
	// A buy keyword suppresses the lease rule; 設備 then classifies as
	// equipment further down the cascade.
	assert.Equal(t, CategoryEquipment, Classify("公告購買租賃資產設備", nil))

	// The land-bank name alone must not trip the real-estate rule. The
	// remaining text carries an equity keyword instead.
	assert.Equal(t, CategoryEquity, Classify("公告與土地銀行簽訂股權協議", nil))

	// The longer asset-acquisition phrase diverts the acquisition rule; the
	// subject then falls through to the suffix fallback.
	assert.Equal(t, CategoryUncategorized, Classify("公告取得重大資產案", nil))

	// RULB null is not clause 24.
	assert.Equal(t, CategoryUncategorized, Classify("今日無重大事項", nil))
}

func TestClassifyFallbackSuffixes(t *testing.T) {
	// No keyword rule matches; the trailing 股 triggers the suffix-2 branch.
	assert.Equal(t, CategoryJointVenture, Classify("本日異動末筆為股", nil))

	// Suffix-4 trimming to exactly 公司 triggers the equity branch. Only a
	// two-character subject reaches it, because anything longer either fills
	// the suffix with other text or hits the suffix-2 branch first.
	assert.Equal(t, CategoryEquity, Classify("公司", nil))

	// A longer company-name tail fills suffix-4 with other characters and
	// falls through to uncategorized.
	assert.Equal(t, CategoryUncategorized, Classify("受讓人為某某公司", nil))

	// Suffix-4 equal to 股份 would also hit the suffix-2 branch first.
	assert.Equal(t, CategoryJointVenture, Classify("本次移轉標的為股份", nil))
}

func TestClassifyDeterministic(t *testing.T) {
	subject := "公告購買土地及設備並辦理現金增資"
	first := Classify(subject, nil)
	for range 10 {
		assert.Equal(t, first, Classify(subject, nil))
	}
}
