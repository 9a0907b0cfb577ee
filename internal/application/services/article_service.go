package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dailystar-data/police-story-go/internal/domain/entities/content"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
	"github.com/dailystar-data/police-story-go/internal/domain/localize"
)

// DefaultOfficerPageSize is how many rows the officer table shows before
// "show more".
const DefaultOfficerPageSize = 5

var (
	ErrUnknownComponent = errors.New("unknown component")
	ErrComponentMissing = errors.New("component has no data in this locale")
	ErrInvalidPage      = errors.New("invalid page request")
)

// ArticleService answers the queries the interactive components make
// against a built store.
type ArticleService struct {
	store *ContentStore
}

func NewArticleService(store *ContentStore) *ArticleService {
	return &ArticleService{store: store}
}

func (s *ArticleService) Store() *ContentStore { return s.store }

// OfficerPage is one window of the officer table.
type OfficerPage struct {
	Locale        locale.Locale           `json:"locale"`
	Status        content.OfficerStatus   `json:"status,omitempty"`
	Offset        int                     `json:"offset"`
	Limit         int                     `json:"limit"`
	Total         int                     `json:"total"`
	Remaining     int                     `json:"remaining"`
	ShowMoreLabel string                  `json:"showMoreLabel,omitempty"`
	Records       []content.OfficerRecord `json:"records"`
}

// OfficerPage filters the officer table by status (empty for all) and
// returns limit rows from offset. A non-positive limit uses the default.
func (s *ArticleService) OfficerPage(l locale.Locale, status content.OfficerStatus, offset, limit int) (*OfficerPage, error) {
	lc, err := s.store.GetLocale(l)
	if err != nil {
		return nil, err
	}
	if lc.OfficerTable == nil {
		return nil, fmt.Errorf("%w: %s", ErrComponentMissing, content.ComponentOfficerTable)
	}
	return PageOfficers(l, lc.OfficerTable, status, offset, limit)
}

// PageOfficers windows an officer table bag. It backs OfficerPage and the
// server-side renderer.
func PageOfficers(l locale.Locale, table *content.OfficerTable, status content.OfficerStatus, offset, limit int) (*OfficerPage, error) {
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset %d", ErrInvalidPage, offset)
	}
	if limit <= 0 {
		limit = DefaultOfficerPageSize
	}

	filtered := make([]content.OfficerRecord, 0, len(table.Data))
	for _, rec := range table.Data {
		if status == "" || rec.Status == status {
			filtered = append(filtered, rec)
		}
	}

	page := &OfficerPage{
		Locale: l,
		Status: status,
		Offset: offset,
		Limit:  limit,
		Total:  len(filtered),
	}
	if offset < len(filtered) {
		end := offset + limit
		if end > len(filtered) {
			end = len(filtered)
		}
		page.Records = filtered[offset:end]
		page.Remaining = len(filtered) - end
	} else {
		page.Records = []content.OfficerRecord{}
	}

	if page.Remaining > 0 {
		page.ShowMoreLabel = ShowMoreLabel(table.UIText, page.Remaining, l)
	}
	return page, nil
}

// ShowMoreLabel builds "<prefix> <n> <suffix>" with locale numerals.
func ShowMoreLabel(ui content.OfficerTableUIText, remaining int, l locale.Locale) string {
	parts := make([]string, 0, 3)
	if ui.ShowMorePrefix != "" {
		parts = append(parts, ui.ShowMorePrefix)
	}
	parts = append(parts, localize.ToLocaleNumerals(remaining, l).(string))
	if ui.ShowMoreSuffix != "" {
		parts = append(parts, ui.ShowMoreSuffix)
	}
	return strings.Join(parts, " ")
}

// TimelineEntry is one dot on the desertion timeline.
type TimelineEntry struct {
	content.AbscondedRecord
	DateLabel string `json:"dateLabel"`
	Highlight bool   `json:"highlight"`
}

// AbscondedTimeline is the desertion chart's data plus its labels.
type AbscondedTimeline struct {
	Locale    locale.Locale      `json:"locale"`
	Entries   []TimelineEntry    `json:"entries"`
	TopRanked int                `json:"topRanked"`
	Other     int                `json:"other"`
	Target    *TimelineEntry     `json:"target,omitempty"`
	Labels    *content.Absconded `json:"labels"`
}

// AbscondedTimeline returns the desertion timeline for a locale.
func (s *ArticleService) AbscondedTimeline(l locale.Locale) (*AbscondedTimeline, error) {
	lc, err := s.store.GetLocale(l)
	if err != nil {
		return nil, err
	}
	if lc.Absconded == nil {
		return nil, fmt.Errorf("%w: %s", ErrComponentMissing, content.ComponentAbsconded)
	}
	return BuildAbscondedTimeline(l, lc.Absconded), nil
}

// BuildAbscondedTimeline sorts records by date, keeping dataset order for
// ties, and marks the officer named by the locale's annotation.
func BuildAbscondedTimeline(l locale.Locale, bag *content.Absconded) *AbscondedTimeline {
	entries := make([]TimelineEntry, len(bag.Data))
	for i, rec := range bag.Data {
		date := rec.Date
		entries[i] = TimelineEntry{
			AbscondedRecord: rec,
			DateLabel:       localize.FormatLocalizedDate(&date, l),
			Highlight:       bag.TargetOfficerName != "" && rec.OfficerName == bag.TargetOfficerName,
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	labels := *bag
	labels.Data = nil
	timeline := &AbscondedTimeline{Locale: l, Entries: entries, Labels: &labels}
	for i := range entries {
		if entries[i].RankTier == content.TierTopRanked {
			timeline.TopRanked++
		} else {
			timeline.Other++
		}
		if entries[i].Highlight && timeline.Target == nil {
			timeline.Target = &entries[i]
		}
	}
	return timeline
}

// Component resolves a named auxiliary bag for a locale.
func (s *ArticleService) Component(l locale.Locale, name string) (any, error) {
	lc, err := s.store.GetLocale(l)
	if err != nil {
		return nil, err
	}
	cn, ok := content.ParseComponentName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	bag, ok := lc.Component(cn)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrComponentMissing, cn)
	}
	return bag, nil
}

// FormatNumber converts value to the locale's numerals.
func (s *ArticleService) FormatNumber(value string, l locale.Locale) string {
	return localize.Digits(value, l)
}
