package rules

import (
	"regexp"

	"github.com/faloii/resumerecommend/internal/types"
)

// UniversityTiers maps school tiers to curated school names matched by
// substring against lowercased resume text. Tier lists are checked before
// any major-based partial credit.
var UniversityTiers = map[types.SchoolTier][]string{
	types.SchoolTop: {
		"서울대", "카이스트", "kaist", "포항공대", "postech", "연세대", "고려대",
		"서강대", "성균관대", "한양대",
		"mit", "stanford", "harvard", "berkeley", "cmu", "carnegie",
	},
	types.SchoolGood: {
		"중앙대", "경희대", "한국외대", "서울시립대", "건국대", "동국대", "홍익대",
		"숙명여대", "이화여대", "아주대", "인하대", "부산대", "경북대", "전남대",
	},
}

// SchoolTierOrder fixes the scan order; the top tier wins when a resume
// names schools from both lists.
var SchoolTierOrder = []types.SchoolTier{types.SchoolTop, types.SchoolGood}

// DegreeSignal maps one degree level to its detection pattern.
type DegreeSignal struct {
	Level   types.DegreeLevel
	Pattern *regexp.Regexp
}

// DegreeSignals in priority order, highest degree first.
var DegreeSignals = []DegreeSignal{
	{types.DegreePhD, regexp.MustCompile(`(?i)박사|ph\.?d`)},
	{types.DegreeMaster, regexp.MustCompile(`(?i)석사|master|mba`)},
	{types.DegreeBachelor, regexp.MustCompile(`(?i)학사|bachelor|대학교|대학`)},
	{types.DegreeAssociate, regexp.MustCompile(`전문대|2년제`)},
	{types.DegreeHighSchool, regexp.MustCompile(`고등학교|고졸`)},
}

// MajorPatterns is the fixed major vocabulary; the first match is recorded.
var MajorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`컴퓨터\s*공학`),
	regexp.MustCompile(`소프트웨어`),
	regexp.MustCompile(`전산`),
	regexp.MustCompile(`정보통신`),
	regexp.MustCompile(`경영`),
	regexp.MustCompile(`경제`),
	regexp.MustCompile(`산업공학`),
	regexp.MustCompile(`디자인`),
	regexp.MustCompile(`통계`),
	regexp.MustCompile(`수학`),
	regexp.MustCompile(`물리`),
}

// RelevantMajorPattern marks majors that earn education partial credit in
// the compatibility scorer.
var RelevantMajorPattern = regexp.MustCompile(`(?i)컴퓨터|소프트웨어|전산|정보`)
