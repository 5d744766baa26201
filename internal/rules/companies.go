package rules

import "github.com/faloii/resumerecommend/internal/types"

// CompanyTiers maps each tier to the curated employer names matched by
// substring against lowercased resume text. Unrecognized employers are not
// recorded at all.
var CompanyTiers = map[types.CompanyTier][]string{
	types.TierFlagship: {
		"삼성", "네이버", "카카오", "lg", "sk", "현대", "kt", "포스코", "cj", "롯데",
		"naver", "kakao", "samsung",
		"구글", "google", "아마존", "amazon", "마이크로소프트", "microsoft",
		"애플", "apple", "메타", "meta", "facebook",
	},
	types.TierUnicorn: {
		"토스", "쿠팡", "배달의민족", "당근마켓", "야놀자", "직방", "비바리퍼블리카",
		"우아한형제들", "무신사", "카카오뱅크", "카카오페이", "라인", "line",
		"하이퍼커넥트", "크래프톤", "krafton", "넥슨", "nexon", "nc소프트", "ncsoft",
		"스마일게이트", "넷마블", "netmarble",
	},
	types.TierStartup: {
		"스타트업", "시리즈a", "시리즈b", "프리a", "씨드",
	},
}

// CompanyTierOrder fixes the scan order so extraction output is
// deterministic regardless of map iteration.
var CompanyTierOrder = []types.CompanyTier{
	types.TierFlagship,
	types.TierUnicorn,
	types.TierStartup,
}
