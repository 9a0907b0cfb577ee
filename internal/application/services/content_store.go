// Package services provides application-level services that assemble the
// locale trees and answer reader-facing queries over them.
package services

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dailystar-data/police-story-go/internal/domain/entities/content"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
	"github.com/dailystar-data/police-story-go/internal/domain/repositories"
	domainservices "github.com/dailystar-data/police-story-go/internal/domain/services"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/identity"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/observability/logging"
)

// ContentStore holds one fully built, read-only tree per locale. It is safe
// for concurrent readers because nothing mutates it after construction.
type ContentStore struct {
	trees      map[locale.Locale]*content.LocaleContent
	report     *domainservices.IntegrityReport
	snapshotID string
	builtAt    time.Time
}

// ErrIntegrity is matched by errors.Is for an *IntegrityError.
var ErrIntegrity = errors.New("content failed integrity checks")

// IntegrityError rejects a build whose integrity report has error-severity
// findings. Report carries every finding, warnings included.
type IntegrityError struct {
	Report *domainservices.IntegrityReport
}

func (e *IntegrityError) Error() string {
	errs := e.Report.Errors()
	parts := make([]string, len(errs))
	for i, issue := range errs {
		parts[i] = fmt.Sprintf("%s %s: %s", issue.Code, issue.Locale, issue.Message)
	}
	return fmt.Sprintf("%s: %s", ErrIntegrity, strings.Join(parts, "; "))
}

func (e *IntegrityError) Is(target error) bool { return target == ErrIntegrity }

// NewContentStore assembles every locale from source. Construction is all or
// nothing: any decode error, schema defect, dangling component reference or
// other error-severity integrity finding returns an error and no store.
func NewContentStore(source repositories.ContentSource, logger *logging.ChanneledLogger) (*ContentStore, error) {
	start := time.Now()
	builtAt := start.UTC()

	trees := make(map[locale.Locale]*content.LocaleContent, len(locale.All()))
	for _, l := range locale.All() {
		lc, err := buildLocale(source, l)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s content: %w", l, err)
		}
		trees[l] = lc
	}

	integrity := domainservices.NewContentIntegrityService(identity.NewID)
	report := integrity.Check(trees)

	var dangling []error
	for _, l := range locale.All() {
		for _, d := range trees[l].DanglingReferences() {
			dangling = append(dangling, d)
		}
	}
	if len(dangling) > 0 {
		return nil, errors.Join(dangling...)
	}

	logIssues(logger, report)
	if report.HasErrors() {
		return nil, &IntegrityError{Report: report}
	}

	store := &ContentStore{
		trees:      trees,
		report:     report,
		snapshotID: identity.NewIDAt(builtAt),
		builtAt:    builtAt,
	}

	if logger != nil {
		logger.Content().Info("Content store built",
			"snapshotId", store.snapshotID,
			"locales", len(trees),
			"issues", len(report.Issues),
			"duration", time.Since(start))
	}
	return store, nil
}

func logIssues(logger *logging.ChanneledLogger, report *domainservices.IntegrityReport) {
	if logger == nil {
		return
	}
	for _, issue := range report.Issues {
		log := logger.Validation().Warn
		if issue.Severity == domainservices.SeverityError {
			log = logger.Validation().Error
		}
		log("Integrity finding",
			"code", issue.Code,
			"severity", issue.Severity,
			"locale", issue.Locale,
			"message", issue.Message)
	}
}

func buildLocale(source repositories.ContentSource, l locale.Locale) (*content.LocaleContent, error) {
	lc, err := source.Load(l)
	if err != nil {
		return nil, err
	}

	if lc.OfficerTable != nil {
		officers, err := source.Officers(l)
		if err != nil {
			return nil, err
		}
		lc.OfficerTable.Data = officers
	}

	if lc.Absconded != nil {
		absconded, err := source.Absconded(l, lc.Absconded.RankMap)
		if err != nil {
			return nil, err
		}
		lc.Absconded.Data = absconded
	}

	return lc, nil
}

// Get returns the tree for a short key or BCP-47 tag. Unknown tags fail with
// locale.ErrUnknownLocale; there is no fallback. The tree is shared with every
// other reader and must not be modified.
func (s *ContentStore) Get(tag string) (*content.LocaleContent, error) {
	l, err := locale.Parse(tag)
	if err != nil {
		return nil, err
	}
	return s.GetLocale(l)
}

// GetLocale is Get for a parsed locale, under the same read-only contract.
func (s *ContentStore) GetLocale(l locale.Locale) (*content.LocaleContent, error) {
	lc, ok := s.trees[l]
	if !ok {
		return nil, &locale.UnknownLocaleError{Tag: string(l)}
	}
	return lc, nil
}

// Locales lists the locales the store was built with.
func (s *ContentStore) Locales() []locale.Locale {
	out := make([]locale.Locale, 0, len(s.trees))
	for _, l := range locale.All() {
		if _, ok := s.trees[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

// Report is the integrity report produced at construction.
func (s *ContentStore) Report() *domainservices.IntegrityReport { return s.report }

func (s *ContentStore) SnapshotID() string { return s.snapshotID }
func (s *ContentStore) BuiltAt() time.Time { return s.builtAt }

// Snapshot packages copies of every locale's datasets for archiving.
func (s *ContentStore) Snapshot() *repositories.Snapshot {
	snap := &repositories.Snapshot{
		ID:        s.snapshotID,
		BuiltAt:   s.builtAt,
		Officers:  make(map[locale.Locale][]content.OfficerRecord),
		Absconded: make(map[locale.Locale][]content.AbscondedRecord),
	}
	for l, lc := range s.trees {
		if lc.OfficerTable != nil {
			snap.Officers[l] = slices.Clone(lc.OfficerTable.Data)
		}
		if lc.Absconded != nil {
			snap.Absconded[l] = slices.Clone(lc.Absconded.Data)
		}
	}
	return snap
}
