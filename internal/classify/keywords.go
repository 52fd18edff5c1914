package classify

// Keyword vocabulary for the category rules. The groups are business-tuned:
// several of them overlap, and which one wins is decided purely by rule order
// in Classify. Keep the lists in sync with the feed operator's rulebook before
// touching them.

// structureKeywords mark investment- or organizational-structure disclosures.
var structureKeywords = []string{"投資架構", "組織架構"}

// jointVentureKeyword marks joint-venture disclosures.
const jointVentureKeyword = "合資"

// commissionedBuildKeywords mark commissioned-construction disclosures.
// 租地委建 is listed ahead of the shorter 委建 it contains, mirroring the
// operator's rulebook.
var commissionedBuildKeywords = []string{"租地委建", "委建", "承攬", "委託興建"}

// engineeringKeyword marks engineering-contract disclosures.
const engineeringKeyword = "工程"

// tradeKeywords are the buy/sell markers whose absence gates the lease rule.
var tradeKeywords = []string{"購買", "出售"}

// leaseKeywords mark lease and right-of-use-asset disclosures.
var leaseKeywords = []string{"租", "使用權資產", "租賃資產"}

// structuredProductKeywords mark structured, derivative, and pooled
// financial products.
var structuredProductKeywords = []string{
	"結構性", "衍生性", "理財產品", "基金", "信託計畫", "受益憑證", "收益憑證",
	"理財商品", "資產基礎證券", "組合式商品", "信託單位",
}

// jointConstructionKeyword marks joint-construction disclosures, checked
// before the broader real-estate group.
const jointConstructionKeyword = "合建"

// realEstateKeywords mark land and building disclosures.
var realEstateKeywords = []string{
	"土地", "建物", "建築物", "基地", "不動產", "地上權", "廠", "用地",
	"房地", "房產", "房屋", "地號", "小段", "建案", "預售屋", "大樓",
	"辦公室", "車位", "開發案", "都市更新", "都更", "容移", "購地",
	"容積", "營運總部",
}

// landBankFalsePositive is a bank name containing 土地; subjects mentioning it
// must not trip the real-estate rule on the bank's name alone.
const landBankFalsePositive = "土地銀行"

// equipmentKeywords mark equipment, fixed-asset, and intangible-asset
// disclosures.
var equipmentKeywords = []string{
	"設備", "固定資產", "生產線", "營業資產", "軟體", "無形資產", "租賃轉讓權", "電站",
	"貨櫃", "散裝", "門店", "飛機", "船舶", "其他資產", "冷凍櫃", "新船",
	"散貨", "鋪纜", "營業用資產", "售機案", "貨機", "發動機", "客機",
	"不良債權", "授信資產", "營運資產", "商標", "專利", "伺服器", "智慧財產",
}

// mergerKeywords mark M&A disclosures.
var mergerKeywords = []string{"收購", "合併", "併購", "購併", "分割", "股份轉換"}

// bondKeywords mark interest-bearing-instrument disclosures.
var bondKeywords = []string{"收益證券", "公司債", "定期存單", "金融債", "債券"}

// equityKeywords mark equity and shareholding disclosures.
var equityKeywords = []string{
	"股權", "持股", "普通股", "特別股", "股票", "有價證", "權益", "金融資產",
	"認購", "現金增", "增資", "投資", "增發新股", "累計", "設立", "新設",
	"籌設", "發行新股", "股份案", "全部股份", "現增",
}

// assetAcquisitionPhrases are the longer compound phrases that divert an
// acquisition announcement away from the equity rule.
var assetAcquisitionPhrases = []string{"公告取得資產", "公告取得重大資產"}

// acquisitionKeywords mark share-acquisition announcements.
var acquisitionKeywords = []string{"公告取得", "取得股份"}

// shareSuffixMarker and the suffix markers below drive the fallback rule on
// the right-aligned subject suffixes.
const shareSuffixMarker = "股"

var suffix4Markers = []string{"股份", "公司"}
