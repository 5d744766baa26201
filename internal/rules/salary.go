package rules

import (
	"regexp"

	"github.com/faloii/resumerecommend/internal/types"
)

// Seniority levels used by the salary estimator.
const (
	LevelExecutive = "executive"
	LevelLead      = "lead"
	LevelSenior    = "senior"
	LevelMid       = "mid"
	LevelJunior    = "junior"
)

// SalaryBands is the level-to-band table in units of 10,000 KRW, calibrated
// to the Korean IT market.
var SalaryBands = map[string]types.SalaryRange{
	LevelExecutive: {Min: 12000, Max: 20000},
	LevelLead:      {Min: 8000, Max: 12000},
	LevelSenior:    {Min: 6000, Max: 9000},
	LevelMid:       {Min: 4500, Max: 6500},
	LevelJunior:    {Min: 3500, Max: 5000},
}

// LevelSignal maps one seniority level to its title/description pattern.
type LevelSignal struct {
	Level   string
	Pattern *regexp.Regexp
}

// LevelSignals in precedence order; the first hit decides the band.
var LevelSignals = []LevelSignal{
	{LevelExecutive, regexp.MustCompile(`(?i)CTO|CPO|VP|Head|이사|본부장|임원`)},
	{LevelLead, regexp.MustCompile(`(?i)Lead|리드|팀장|매니저|Manager`)},
	{LevelSenior, regexp.MustCompile(`(?i)Senior|시니어|선임`)},
	{LevelJunior, regexp.MustCompile(`(?i)Junior|주니어|신입|인턴`)},
}
