package posting

import (
	"regexp"

	"github.com/faloii/resumerecommend/internal/rules"
)

// Per-category role patterns applied to posting titles. Each category has
// its own cascade with a category-specific default.
var (
	poPattern        = regexp.MustCompile(`(?i)\bpo\b|product\s*owner|프로덕트\s*오너`)
	pmPattern        = regexp.MustCompile(`(?i)\bpm\b|product\s*manager|프로덕트\s*매니저`)
	bizPattern       = regexp.MustCompile(`사업\s*기획|사업개발`)
	frontendPattern  = regexp.MustCompile(`(?i)프론트|front-?end|react|vue|next`)
	backendPattern   = regexp.MustCompile(`(?i)백엔드|back-?end|서버|java|spring|node`)
	fullstackPattern = regexp.MustCompile(`(?i)풀스택|full-?stack`)
	iosPattern       = regexp.MustCompile(`(?i)ios|swift`)
	androidPattern   = regexp.MustCompile(`(?i)android|안드로이드|kotlin`)
	devopsPattern    = regexp.MustCompile(`(?i)devops|sre|인프라|mlops`)
	securityPattern  = regexp.MustCompile(`(?i)보안|security`)
	qaPattern        = regexp.MustCompile(`(?i)qa|test|테스트`)
	uxPattern        = regexp.MustCompile(`(?i)ux`)
	uiPattern        = regexp.MustCompile(`(?i)ui`)
	graphicPattern   = regexp.MustCompile(`(?i)그래픽|graphic|bi|브랜드`)
	motionPattern    = regexp.MustCompile(`(?i)영상|motion|모션`)
	mlPattern        = regexp.MustCompile(`(?i)ml|머신러닝|딥러닝|ai\b`)
	dataEngPattern   = regexp.MustCompile(`(?i)엔지니어|engineer`)
	growthPattern    = regexp.MustCompile(`(?i)그로스|growth`)
	perfPattern      = regexp.MustCompile(`(?i)퍼포먼스|performance`)
	contentPattern   = regexp.MustCompile(`(?i)콘텐츠|content|콘텐트`)
	brandPattern     = regexp.MustCompile(`(?i)브랜드|brand`)
)

func roleFromTitle(title, category string) string {
	switch category {
	case rules.CategoryPlanning:
		switch {
		case poPattern.MatchString(title):
			return rules.RolePO
		case pmPattern.MatchString(title):
			return rules.RolePM
		case bizPattern.MatchString(title):
			return rules.RoleBizPlanning
		default:
			return rules.RoleServicePlanning
		}
	case rules.CategoryDevelopment:
		switch {
		case frontendPattern.MatchString(title):
			return rules.RoleFrontend
		case backendPattern.MatchString(title):
			return rules.RoleBackend
		case fullstackPattern.MatchString(title):
			return rules.RoleFullstack
		case iosPattern.MatchString(title):
			return rules.RoleIOS
		case androidPattern.MatchString(title):
			return rules.RoleAndroid
		case devopsPattern.MatchString(title):
			return rules.RoleDevOps
		case securityPattern.MatchString(title):
			return rules.RoleSecurity
		case qaPattern.MatchString(title):
			return rules.RoleQA
		default:
			return "개발"
		}
	case rules.CategoryDesign:
		switch {
		case uxPattern.MatchString(title):
			return rules.RoleUXDesign
		case uiPattern.MatchString(title):
			return rules.RoleUIDesign
		case graphicPattern.MatchString(title):
			return rules.RoleGraphicDesign
		case motionPattern.MatchString(title):
			return rules.RoleMotionDesign
		default:
			return "디자인"
		}
	case rules.CategoryData:
		switch {
		case mlPattern.MatchString(title):
			return rules.RoleMLEngineer
		case dataEngPattern.MatchString(title):
			return rules.RoleDataEngineer
		default:
			return rules.RoleDataAnalysis
		}
	case rules.CategoryMarketing:
		switch {
		case growthPattern.MatchString(title):
			return rules.RoleGrowth
		case perfPattern.MatchString(title):
			return rules.RolePerformance
		case contentPattern.MatchString(title):
			return rules.RoleContent
		case brandPattern.MatchString(title):
			return rules.RoleBrand
		default:
			return "마케팅"
		}
	default:
		return rules.RoleOther
	}
}
