// Package dataset loads the officer and absconded datasets produced by the
// data desk. Records are validated for required fields and types only.
package dataset

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/dailystar-data/police-story-go/internal/domain/entities/content"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/observability/logging"
)

const (
	DatasetOfficers  = "officers"
	DatasetAbsconded = "absconded"

	dateLayout = "2006-01-02"
)

//go:embed data/*.json
var embedded embed.FS

// Loader reads <dataset>_<locale>.json files from a filesystem.
type Loader struct {
	fsys   fs.FS
	logger *logging.ChanneledLogger
}

// NewLoader reads datasets from fsys.
func NewLoader(fsys fs.FS, logger *logging.ChanneledLogger) *Loader {
	return &Loader{fsys: fsys, logger: logger}
}

// NewEmbeddedLoader reads the datasets compiled into the binary.
func NewEmbeddedLoader(logger *logging.ChanneledLogger) *Loader {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return NewLoader(sub, logger)
}

// NewDirLoader reads datasets from dir, falling back to the embedded copy
// when dir is empty.
func NewDirLoader(dir string, logger *logging.ChanneledLogger) *Loader {
	if dir == "" {
		return NewEmbeddedLoader(logger)
	}
	return NewLoader(os.DirFS(dir), logger)
}

func fileName(dataset string, l locale.Locale) string {
	return fmt.Sprintf("%s_%s.json", dataset, l)
}

func (ld *Loader) readRecords(dataset string, l locale.Locale) ([]map[string]any, error) {
	name := fileName(dataset, l)
	raw, err := fs.ReadFile(ld.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &content.SchemaValidationError{Locale: l, Dataset: dataset, Index: -1, Field: "", Reason: "is not valid JSON: " + err.Error()}
	}
	items, ok := decoded.([]any)
	if !ok {
		return nil, &content.SchemaValidationError{Locale: l, Dataset: dataset, Index: -1, Field: "", Reason: "must be an array of records"}
	}

	records := make([]map[string]any, 0, len(items))
	for i, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			return nil, &content.SchemaValidationError{Locale: l, Dataset: dataset, Index: i, Field: "", Reason: "is not an object"}
		}
		records = append(records, rec)
	}
	return records, nil
}

// fieldReader pulls typed fields out of one raw record and remembers the
// first defect.
type fieldReader struct {
	rec map[string]any
	err *content.SchemaValidationError
}

func newFieldReader(l locale.Locale, dataset string, index int, rec map[string]any) *fieldReader {
	return &fieldReader{
		rec: rec,
		err: &content.SchemaValidationError{Locale: l, Dataset: dataset, Index: index},
	}
}

func (r *fieldReader) fail(field, reason string) {
	if r.err.Field == "" && r.err.Reason == "" {
		r.err.Field = field
		r.err.Reason = reason
	}
}

func (r *fieldReader) failed() bool { return r.err.Reason != "" }

func (r *fieldReader) required(field string) string {
	v, ok := r.rec[field]
	if !ok || v == nil {
		r.fail(field, "is required")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail(field, fmt.Sprintf("must be a string, got %T", v))
		return ""
	}
	if s == "" {
		r.fail(field, "must not be empty")
	}
	return s
}

func (r *fieldReader) optional(field string) string {
	v, ok := r.rec[field]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail(field, fmt.Sprintf("must be a string, got %T", v))
		return ""
	}
	return s
}

// identifier accepts a string or an integral JSON number.
func (r *fieldReader) identifier(field string) string {
	v, ok := r.rec[field]
	if !ok || v == nil {
		r.fail(field, "is required")
		return ""
	}
	switch id := v.(type) {
	case string:
		if id == "" {
			r.fail(field, "must not be empty")
		}
		return id
	case float64:
		if id != float64(int64(id)) {
			r.fail(field, "must be an integer or string")
			return ""
		}
		return fmt.Sprintf("%d", int64(id))
	default:
		r.fail(field, fmt.Sprintf("must be a string, got %T", v))
		return ""
	}
}

// Officers loads and validates officers_<locale>.json.
func (ld *Loader) Officers(l locale.Locale) ([]content.OfficerRecord, error) {
	start := time.Now()
	raw, err := ld.readRecords(DatasetOfficers, l)
	if err != nil {
		return nil, err
	}

	out := make([]content.OfficerRecord, 0, len(raw))
	for i, rec := range raw {
		r := newFieldReader(l, DatasetOfficers, i, rec)
		officer := content.OfficerRecord{
			Name:        r.required("name"),
			RankAndZone: r.required("rankAndZone"),
			TableRowID:  r.identifier("tableRowId"),
			Area:        r.optional("area"),
			Date:        r.optional("date"),
		}
		if statusRaw := r.required("status"); statusRaw != "" {
			status, ok := content.ParseOfficerStatus(statusRaw)
			if !ok {
				r.fail("status", fmt.Sprintf("has unknown value %q", statusRaw))
			}
			officer.Status = status
		}
		if r.failed() {
			return nil, r.err
		}
		out = append(out, officer)
	}

	if ld.logger != nil {
		ld.logger.Dataset().Debug("Loaded officers dataset",
			"locale", l, "records", len(out), "duration", time.Since(start))
	}
	return out, nil
}

// Absconded loads and validates absconded_<locale>.json. Records without an
// explicit rankTier are classified from their rank through rankMap.
func (ld *Loader) Absconded(l locale.Locale, rankMap map[string]string) ([]content.AbscondedRecord, error) {
	start := time.Now()
	raw, err := ld.readRecords(DatasetAbsconded, l)
	if err != nil {
		return nil, err
	}

	out := make([]content.AbscondedRecord, 0, len(raw))
	derived := 0
	for i, rec := range raw {
		r := newFieldReader(l, DatasetAbsconded, i, rec)
		record := content.AbscondedRecord{
			OfficerName: r.required("officerName"),
			Rank:        r.required("rank"),
		}
		if dateRaw := r.required("date"); dateRaw != "" {
			date, err := time.Parse(dateLayout, dateRaw)
			if err != nil {
				r.fail("date", fmt.Sprintf("must be YYYY-MM-DD, got %q", dateRaw))
			}
			record.Date = date
		}
		if tierRaw := r.optional("rankTier"); tierRaw != "" {
			tier, ok := content.ParseRankTier(tierRaw)
			if !ok {
				r.fail("rankTier", fmt.Sprintf("has unknown value %q", tierRaw))
			}
			record.RankTier = tier
		}
		if r.failed() {
			return nil, r.err
		}
		if record.RankTier == "" {
			record.RankTier = content.TierForRank(record.Rank, rankMap)
			derived++
		}
		out = append(out, record)
	}

	if ld.logger != nil {
		ld.logger.Dataset().Debug("Loaded absconded dataset",
			"locale", l, "records", len(out), "derivedTiers", derived, "duration", time.Since(start))
	}
	return out, nil
}

// IsMissing reports whether err came from an absent dataset file.
func IsMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
