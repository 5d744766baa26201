package quality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreEmptyText(t *testing.T) {
	q := Score("")
	assert.Equal(t, 0, q.Total())
}

func TestScoreQuantifiedAchievements(t *testing.T) {
	// Four distinct hits: "12% 증가", "매출 3", "3억 원", "MAU 50000".
	q := Score("전환율 12% 증가, 매출 3억 원 달성, MAU 50000")
	assert.Equal(t, 20, q.QuantifiedAchievements)
}

func TestScoreQuantifiedAchievementsCapped(t *testing.T) {
	q := Score(strings.Repeat("10% 개선 ", 6))
	assert.Equal(t, 25, q.QuantifiedAchievements)
}

func TestScoreTechStack(t *testing.T) {
	q := Score("사용 기술: Go, PostgreSQL\n기술 스택: AWS\nSkills: Docker")
	assert.Equal(t, 12, q.TechStack)
}

func TestScoreProjectDetail(t *testing.T) {
	// One project label plus one dated range.
	q := Score("프로젝트: 커머스 리뉴얼 2022.01 ~ 2023.05")
	assert.Equal(t, 6, q.ProjectDetail)
}

func TestScoreRoleClarity(t *testing.T) {
	// 설계, 개발, 담당, 기여도 80%, 핵심 = five hits.
	q := Score("결제 모듈 설계 및 개발 담당, 기여도 80%, 핵심 기능 구현")
	assert.Equal(t, 10, q.RoleClarity)
}

func TestScoreKeyStrengths(t *testing.T) {
	q := Score("핵심 역량: 데이터 분석에 능숙")
	assert.Equal(t, 6, q.KeyStrengths)
}

func TestScoreSubScoresAreIndependent(t *testing.T) {
	q := Score("프로젝트 성과: DAU 3000 달성")
	assert.Equal(t, 5, q.QuantifiedAchievements)
	assert.Equal(t, 3, q.ProjectDetail)
	assert.Equal(t, 0, q.TechStack)
	assert.Equal(t, q.QuantifiedAchievements+q.ProjectDetail, q.Total())
}
