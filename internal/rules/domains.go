package rules

// DomainEntry maps one industry tag to its keyword list.
type DomainEntry struct {
	Name     string
	Keywords []string
}

// Domains is the multi-label industry table; every matching tag is retained.
// Slice order fixes the output order.
var Domains = []DomainEntry{
	{"핀테크", []string{"핀테크", "fintech", "금융", "뱅킹", "결제", "페이", "증권", "보험"}},
	{"커머스", []string{"커머스", "commerce", "이커머스", "e-commerce", "쇼핑", "리테일"}},
	{"모빌리티", []string{"모빌리티", "자동차", "배달", "물류", "택시"}},
	{"헬스케어", []string{"헬스케어", "의료", "병원", "건강"}},
	{"에듀테크", []string{"에듀테크", "교육", "학습", "이러닝"}},
	{"게임", []string{"게임", "game", "엔터테인먼트"}},
	{"B2B", []string{"b2b", "saas", "엔터프라이즈", "enterprise"}},
	{"소셜", []string{"소셜", "social", "sns", "커뮤니티"}},
}
