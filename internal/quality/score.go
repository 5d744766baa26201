// Package quality scores resume text on the writing qualities hiring
// screens reward: quantified achievements, explicit tech stacks, dated
// project blocks, role clarity and a strengths summary.
package quality

import (
	"regexp"

	"github.com/faloii/resumerecommend/internal/types"
)

// Per-hit weights and caps for the five sub-scores.
const (
	quantifiedWeight = 5
	quantifiedCap    = 25
	techStackWeight  = 4
	techStackCap     = 20
	projectWeight    = 3
	projectCap       = 20
	roleWeight       = 2
	roleCap          = 20
	strengthsWeight  = 3
	strengthsCap     = 15
)

var quantifiedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%\s*(증가|감소|개선|향상|성장|절감|증대)`),
	regexp.MustCompile(`(증가|감소|개선|향상|성장|절감|증대)\s*\d+%`),
	regexp.MustCompile(`\d+배\s*(증가|성장|향상)`),
	regexp.MustCompile(`(?i)(MAU|DAU|WAU)\s*\d+`),
	regexp.MustCompile(`매출\s*\d+`),
	regexp.MustCompile(`\d+(만|억|천만)\s*원`),
	regexp.MustCompile(`사용자\s*\d+`),
	regexp.MustCompile(`트래픽\s*\d+`),
}

var techStackPatterns = []*regexp.Regexp{
	regexp.MustCompile(`사용\s*기술[:\s]`),
	regexp.MustCompile(`기술\s*스택[:\s]`),
	regexp.MustCompile(`(?i)tech\s*stack[:\s]`),
	regexp.MustCompile(`(?i)skills?[:\s]`),
}

var projectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{4}[.\-/]\d{1,2}\s*[-~]\s*(\d{4}[.\-/]\d{1,2}|현재)`),
	regexp.MustCompile(`(?i)프로젝트|project`),
}

var rolePatterns = []*regexp.Regexp{
	regexp.MustCompile(`담당|주도|리드|설계|개발|운영|기획|관리`),
	regexp.MustCompile(`기여도\s*\d+%`),
	regexp.MustCompile(`메인|핵심|주요`),
}

var strengthsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`핵심\s*역량`),
	regexp.MustCompile(`간단\s*소개`),
	regexp.MustCompile(`자기\s*소개`),
	regexp.MustCompile(`경험\s*보유`),
	regexp.MustCompile(`능숙|숙련|전문`),
}

// Score computes the five sub-scores from raw resume text. Pure function;
// sparse text yields zeros, never an error.
func Score(resumeText string) types.ResumeQuality {
	return types.ResumeQuality{
		QuantifiedAchievements: capped(countHits(resumeText, quantifiedPatterns)*quantifiedWeight, quantifiedCap),
		TechStack:              capped(countHits(resumeText, techStackPatterns)*techStackWeight, techStackCap),
		ProjectDetail:          capped(countHits(resumeText, projectPatterns)*projectWeight, projectCap),
		RoleClarity:            capped(countHits(resumeText, rolePatterns)*roleWeight, roleCap),
		KeyStrengths:           capped(countHits(resumeText, strengthsPatterns)*strengthsWeight, strengthsCap),
	}
}

func countHits(text string, patterns []*regexp.Regexp) int {
	hits := 0
	for _, pattern := range patterns {
		hits += len(pattern.FindAllStringIndex(text, -1))
	}
	return hits
}

func capped(score, limit int) int {
	if score > limit {
		return limit
	}
	return score
}
