package posting

import "github.com/faloii/resumerecommend/internal/rules"

// NormalizeRegion maps a free-text location to one canonical region.
// Remote-work phrasings win over any co-listed office address; unmatched
// locations default to Seoul.
func NormalizeRegion(location string) string {
	if rules.RemotePattern.MatchString(location) {
		return rules.RegionRemote
	}
	for _, rp := range rules.RegionPatterns {
		if rp.Pattern.MatchString(location) {
			return rp.Name
		}
	}
	return rules.RegionSeoul
}
