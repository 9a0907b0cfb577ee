// Package services provides the cross-locale integrity pass over assembled
// content trees.
package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dailystar-data/police-story-go/internal/domain/entities/content"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

const (
	CodeDanglingComponent = "dangling_component"
	CodeComponentParity   = "component_parity"
	CodeScrollyGap        = "scrolly_gap"
	CodeLabelCoverage     = "label_coverage"
	CodeMonthNames        = "month_names"
	CodeEmptyOfficerTable = "empty_officer_table"
	CodeDocumentsMismatch = "documents_mismatch"
	CodeMissingTarget     = "missing_target_officer"
)

type Issue struct {
	Severity Severity      `json:"severity"`
	Code     string        `json:"code"`
	Locale   locale.Locale `json:"locale,omitempty"`
	Message  string        `json:"message"`
}

// IntegrityReport is the outcome of one validation pass.
type IntegrityReport struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generatedAt"`
	Issues      []Issue   `json:"issues"`
}

func (r *IntegrityReport) HasErrors() bool {
	return len(r.Errors()) > 0
}

func (r *IntegrityReport) Errors() []Issue {
	return r.filter(SeverityError)
}

func (r *IntegrityReport) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

func (r *IntegrityReport) filter(sev Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == sev {
			out = append(out, issue)
		}
	}
	return out
}

type ContentIntegrityService struct {
	newID func() string
	now   func() time.Time
}

// NewContentIntegrityService returns a service that stamps reports with ids
// from newID.
func NewContentIntegrityService(newID func() string) *ContentIntegrityService {
	return &ContentIntegrityService{newID: newID, now: time.Now}
}

// Check validates each tree on its own and then every tree against the
// first locale in locale.All. Numeric counts are never compared across
// locales.
func (s *ContentIntegrityService) Check(trees map[locale.Locale]*content.LocaleContent) *IntegrityReport {
	report := &IntegrityReport{GeneratedAt: s.now().UTC(), Issues: []Issue{}}
	if s.newID != nil {
		report.ID = s.newID()
	}

	var present []*content.LocaleContent
	for _, l := range locale.All() {
		if lc, ok := trees[l]; ok && lc != nil {
			present = append(present, lc)
		}
	}

	for _, lc := range present {
		report.Issues = append(report.Issues, s.CheckTree(lc)...)
	}
	for i := 1; i < len(present); i++ {
		report.Issues = append(report.Issues, s.ComparePair(present[0], present[i])...)
	}
	return report
}

// CheckTree runs the per-locale checks.
func (s *ContentIntegrityService) CheckTree(lc *content.LocaleContent) []Issue {
	var issues []Issue

	for _, dangling := range lc.DanglingReferences() {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Code:     CodeDanglingComponent,
			Locale:   lc.Locale,
			Message:  dangling.Error(),
		})
	}

	if pm := lc.PoliceMap; pm != nil {
		if missing := missingStages(pm.ScrollyTextboxes); len(missing) > 0 {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Code:     CodeScrollyGap,
				Locale:   lc.Locale,
				Message:  fmt.Sprintf("police map captions missing for stages %s", strings.Join(missing, ", ")),
			})
		}
		if n := len(pm.UIText.MonthNames); n != 12 {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Code:     CodeMonthNames,
				Locale:   lc.Locale,
				Message:  fmt.Sprintf("month name table has %d entries, want 12", n),
			})
		}
	}

	if ot := lc.OfficerTable; ot != nil && len(ot.Data) == 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Code:     CodeEmptyOfficerTable,
			Locale:   lc.Locale,
			Message:  "officer table has no records",
		})
	}

	if docs := lc.Documents; docs != nil && len(docs.Captions) != len(docs.AltTexts) {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Code:     CodeDocumentsMismatch,
			Locale:   lc.Locale,
			Message:  fmt.Sprintf("%d captions but %d alt texts", len(docs.Captions), len(docs.AltTexts)),
		})
	}

	if ab := lc.Absconded; ab != nil && ab.TargetOfficerName != "" && len(ab.Data) > 0 {
		found := false
		for _, rec := range ab.Data {
			if rec.OfficerName == ab.TargetOfficerName {
				found = true
				break
			}
		}
		if !found {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Code:     CodeMissingTarget,
				Locale:   lc.Locale,
				Message:  fmt.Sprintf("highlighted officer %q is not in the absconded dataset", ab.TargetOfficerName),
			})
		}
	}

	return issues
}

func missingStages(textboxes map[string]string) []string {
	var missing []string
	for i := 1; i <= content.PoliceMapStageCount; i++ {
		key := strconv.Itoa(i)
		if strings.TrimSpace(textboxes[key]) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// ComparePair runs the structural cross-locale checks between a reference
// tree and another locale.
func (s *ContentIntegrityService) ComparePair(ref, other *content.LocaleContent) []Issue {
	var issues []Issue

	refSeq := content.ComponentReferences(ref.Article)
	otherSeq := content.ComponentReferences(other.Article)
	if !sameSequence(refSeq, otherSeq) {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Code:     CodeComponentParity,
			Locale:   other.Locale,
			Message: fmt.Sprintf("component order %s differs from %s order %s",
				joinNames(otherSeq), ref.Locale, joinNames(refSeq)),
		})
	}

	coverage := func(what string, a, b map[string]string) {
		onlyRef, onlyOther := keyDiff(a, b)
		if len(onlyRef) == 0 && len(onlyOther) == 0 {
			return
		}
		parts := []string{}
		if len(onlyRef) > 0 {
			parts = append(parts, fmt.Sprintf("only in %s: %s", ref.Locale, strings.Join(onlyRef, ", ")))
		}
		if len(onlyOther) > 0 {
			parts = append(parts, fmt.Sprintf("only in %s: %s", other.Locale, strings.Join(onlyOther, ", ")))
		}
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Code:     CodeLabelCoverage,
			Locale:   other.Locale,
			Message:  fmt.Sprintf("%s keys differ (%s)", what, strings.Join(parts, "; ")),
		})
	}

	if ref.PoliceMap != nil && other.PoliceMap != nil {
		coverage("ammo label", ref.PoliceMap.UIText.AmmoLabels, other.PoliceMap.UIText.AmmoLabels)
		coverage("thana name", ref.PoliceMap.ThanaNames, other.PoliceMap.ThanaNames)
	}
	if ref.Transfers != nil && other.Transfers != nil {
		coverage("tooltip label", ref.Transfers.TooltipLabels, other.Transfers.TooltipLabels)
		coverage("cluster label", ref.Transfers.ClusterLabels, other.Transfers.ClusterLabels)
	}

	return issues
}

func sameSequence(a, b []content.ComponentName) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func joinNames(names []content.ComponentName) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func keyDiff(a, b map[string]string) (onlyA, onlyB []string) {
	for k := range a {
		if _, ok := b[k]; !ok {
			onlyA = append(onlyA, k)
		}
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			onlyB = append(onlyB, k)
		}
	}
	sort.Strings(onlyA)
	sort.Strings(onlyB)
	return onlyA, onlyB
}
