package rules

import "regexp"

// Canonical regions. Seoul is the fallback when a location matches nothing.
const (
	RegionSeoul   = "서울"
	RegionGyeonggi = "경기"
	RegionRemote  = "원격"
)

// RegionPattern maps one canonical region to its location patterns,
// including sub-area aliases (Gangnam resolves to Seoul, Pangyo to
// Gyeonggi, and so on).
type RegionPattern struct {
	Name    string
	Pattern *regexp.Regexp
}

// RegionPatterns in match order. Remote is checked via RemotePattern before
// this table so "재택근무 (서울 오피스)" style locations classify as remote.
var RegionPatterns = []RegionPattern{
	{RegionSeoul, regexp.MustCompile(`(?i)서울|seoul|강남|강북|강서|강동|마포|영등포|송파|서초|종로|중구|용산|성동|광진|동대문|중랑|성북|도봉|노원|은평|서대문|양천|구로|금천|동작|관악`)},
	{RegionGyeonggi, regexp.MustCompile(`경기|성남|분당|판교|수원|용인|안양|부천|광명|평택|시흥|안산|고양|의왕|군포|하남|파주|이천|화성|김포|동탄`)},
	{"인천", regexp.MustCompile(`인천|송도|청라`)},
	{"부산", regexp.MustCompile(`(?i)부산|busan|해운대|서면`)},
	{"대구", regexp.MustCompile(`(?i)대구|daegu`)},
	{"대전", regexp.MustCompile(`(?i)대전|daejeon|유성`)},
	{"광주", regexp.MustCompile(`(?i)광주|gwangju`)},
	{"세종", regexp.MustCompile(`세종`)},
	{"울산", regexp.MustCompile(`울산`)},
	{"강원", regexp.MustCompile(`강원|춘천|원주|강릉`)},
	{"충북", regexp.MustCompile(`충북|충청북|청주|충주`)},
	{"충남", regexp.MustCompile(`충남|충청남|천안|아산`)},
	{"전북", regexp.MustCompile(`전북|전라북|전주|익산`)},
	{"전남", regexp.MustCompile(`전남|전라남|여수|순천|목포`)},
	{"경북", regexp.MustCompile(`경북|경상북|포항|경주|구미`)},
	{"경남", regexp.MustCompile(`경남|경상남|창원|김해|양산`)},
	{"제주", regexp.MustCompile(`제주`)},
}

// RemotePattern detects remote-work locations.
var RemotePattern = regexp.MustCompile(`(?i)원격|리모트|remote|재택|wfh|work from home`)

// CapitalMetroAliases broadens a preferred region to adjacent sub-regions
// when pre-populated posting regions carry finer-grained names.
var CapitalMetroAliases = map[string][]string{
	RegionGyeonggi: {"판교", "분당"},
}
