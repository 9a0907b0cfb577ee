package content

import (
	"strings"
	"time"
)

// OfficerStatus is the current standing of an officer with command
// responsibility.
type OfficerStatus string

const (
	StatusActive      OfficerStatus = "active"
	StatusTransferred OfficerStatus = "transferred"
	StatusAbsconded   OfficerStatus = "absconded"
	StatusArrested    OfficerStatus = "arrested"
)

func OfficerStatuses() []OfficerStatus {
	return []OfficerStatus{StatusActive, StatusTransferred, StatusAbsconded, StatusArrested}
}

func ParseOfficerStatus(s string) (OfficerStatus, bool) {
	for _, st := range OfficerStatuses() {
		if string(st) == strings.ToLower(strings.TrimSpace(s)) {
			return st, true
		}
	}
	return "", false
}

// OfficerRecord is one row of the command responsibility table. Records are
// immutable once loaded; the UI only filters and paginates them.
type OfficerRecord struct {
	Name        string        `json:"name"`
	Area        string        `json:"area"`
	RankAndZone string        `json:"rankAndZone"`
	Status      OfficerStatus `json:"status"`
	Date        string        `json:"date"`
	TableRowID  string        `json:"tableRowId"`
}

// RankTier splits officers into the two groups used by the charts.
type RankTier string

const (
	TierTopRanked RankTier = "top-ranked"
	TierOther     RankTier = "other"
)

func ParseRankTier(s string) (RankTier, bool) {
	switch RankTier(strings.ToLower(strings.TrimSpace(s))) {
	case TierTopRanked:
		return TierTopRanked, true
	case TierOther:
		return TierOther, true
	}
	return "", false
}

// topRankedTitles are the canonical English ranks counted as DC or above.
var topRankedTitles = map[string]bool{
	"police commissioner":            true,
	"additional police commissioner": true,
	"joint police commissioner":      true,
	"deputy police commissioner":     true,
}

// TierForRank classifies a rank title. Localized titles are first mapped to
// their canonical English form through rankMap.
func TierForRank(rank string, rankMap map[string]string) RankTier {
	canonical := strings.TrimSpace(rank)
	if mapped, ok := rankMap[canonical]; ok {
		canonical = mapped
	}
	if topRankedTitles[strings.ToLower(canonical)] {
		return TierTopRanked
	}
	return TierOther
}

// AbscondedRecord places one deserting officer on the desertion timeline.
type AbscondedRecord struct {
	OfficerName string    `json:"officerName"`
	Rank        string    `json:"rank"`
	Date        time.Time `json:"date"`
	RankTier    RankTier  `json:"rankTier"`
}
