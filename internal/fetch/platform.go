package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known Korean job board.
type Platform string

// Supported boards.
const (
	PlatformWanted   Platform = "wanted"
	PlatformSaramin  Platform = "saramin"
	PlatformJobKorea Platform = "jobkorea"
	PlatformUnknown  Platform = "unknown"
)

// DetectPlatform identifies the job board from a posting URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "wanted.co.kr"):
		return PlatformWanted
	case strings.Contains(host, "saramin.co.kr"):
		return PlatformSaramin
	case strings.Contains(host, "jobkorea.co.kr"):
		return PlatformJobKorea
	default:
		return PlatformUnknown
	}
}

// SelectorsFor returns the content selectors for a posting URL, board
// specific ones first.
func SelectorsFor(urlStr string) []string {
	switch DetectPlatform(urlStr) {
	case PlatformWanted:
		return append([]string{
			"[data-testid='JobDescription']",
			".JobDescription_JobDescription",
			"section.job-description",
		}, genericSelectors...)
	case PlatformSaramin:
		return append([]string{
			".jv_cont.jv_detail",
			".user_content",
		}, genericSelectors...)
	case PlatformJobKorea:
		return append([]string{
			".detail-content",
			".tbDetail",
		}, genericSelectors...)
	default:
		return genericSelectors
	}
}

var genericSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	".posting-content",
	".job-details",
	"main",
	"article",
	".content",
	"#content",
}
