package profile

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

// Explicit total-experience phrasings, checked before any date arithmetic.
var totalYearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`총\s*경력[:\s]*(\d+)\s*년`),
	regexp.MustCompile(`경력[:\s]*(\d+)\s*년`),
	regexp.MustCompile(`(\d+)\s*년\s*경력`),
	regexp.MustCompile(`(?i)(\d+)\s*years?\s*(?:of\s*)?experience`),
}

// employmentPeriodPattern matches one employment date range:
// "2019.03 ~ 2022.01", "2019-03 - 현재", "2019년 3월 ~ 2021년" and so on.
var employmentPeriodPattern = regexp.MustCompile(`(\d{4})[.\-/년]\s*(\d{1,2})?월?\s*[-~]\s*((\d{4})|현재)`)

// maxPlausibleMonths discards date spans of 30 years or more as noise
// (usually birth dates or education history misread as employment).
const maxPlausibleMonths = 360

// extractYears estimates total years of experience via a cascade: an
// explicit "N years experience" phrase wins; otherwise employment date
// ranges are summed; otherwise zero.
func extractYears(resumeText string) int {
	return extractYearsAt(resumeText, time.Now())
}

func extractYearsAt(resumeText string, now time.Time) int {
	for _, pattern := range totalYearsPatterns {
		if m := pattern.FindStringSubmatch(resumeText); m != nil {
			years, err := strconv.Atoi(m[1])
			if err == nil && years >= 0 {
				return years
			}
		}
	}

	totalMonths := 0
	for _, m := range employmentPeriodPattern.FindAllStringSubmatch(resumeText, -1) {
		startYear, _ := strconv.Atoi(m[1])
		startMonth := 1
		if m[2] != "" {
			startMonth, _ = strconv.Atoi(m[2])
		}

		var endYear, endMonth int
		if m[3] == "현재" {
			endYear = now.Year()
			endMonth = int(now.Month())
		} else {
			endYear, _ = strconv.Atoi(m[4])
			endMonth = 12
		}

		months := (endYear-startYear)*12 + (endMonth - startMonth)
		if months > 0 && months < maxPlausibleMonths {
			totalMonths += months
		}
	}

	if totalMonths > 0 {
		return int(math.Round(float64(totalMonths) / 12))
	}
	return 0
}
