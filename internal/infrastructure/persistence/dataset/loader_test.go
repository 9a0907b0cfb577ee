package dataset

import (
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailystar-data/police-story-go/internal/domain/entities/content"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
)

func TestEmbeddedDatasetsLoad(t *testing.T) {
	ld := NewEmbeddedLoader(nil)

	for _, l := range locale.All() {
		officers, err := ld.Officers(l)
		require.NoError(t, err, l)
		require.NotEmpty(t, officers, l)
		for _, o := range officers {
			assert.NotEmpty(t, o.Name)
			assert.NotEmpty(t, o.TableRowID)
			assert.Contains(t, content.OfficerStatuses(), o.Status)
		}

		absconded, err := ld.Absconded(l, nil)
		require.NoError(t, err, l)
		require.NotEmpty(t, absconded, l)
	}
}

func TestCrossLocaleCountsMayDiffer(t *testing.T) {
	ld := NewEmbeddedLoader(nil)

	en, err := ld.Officers(locale.English)
	require.NoError(t, err)
	bn, err := ld.Officers(locale.Bengali)
	require.NoError(t, err)

	assert.NotEqual(t, len(en), len(bn))
}

func TestAbscondedTierDerivedThroughRankMap(t *testing.T) {
	ld := NewEmbeddedLoader(nil)
	rankMap := map[string]string{
		"পুলিশ কমিশনার":            "Police Commissioner",
		"অতিরিক্ত পুলিশ কমিশনার":   "Additional Police Commissioner",
		"উপপুলিশ কমিশনার":          "Deputy Police Commissioner",
		"অতিরিক্ত উপপুলিশ কমিশনার": "Additional Deputy Police Commissioner",
	}

	records, err := ld.Absconded(locale.Bengali, rankMap)
	require.NoError(t, err)
	require.Len(t, records, 5)

	assert.Equal(t, content.TierTopRanked, records[0].RankTier)
	assert.Equal(t, content.TierTopRanked, records[2].RankTier)
	assert.Equal(t, content.TierOther, records[3].RankTier)
	assert.Equal(t, time.Date(2024, time.August, 6, 0, 0, 0, 0, time.UTC), records[0].Date)
}

func TestOfficerSchemaDefects(t *testing.T) {
	cases := map[string]struct {
		body  string
		index int
		field string
	}{
		"missing name": {
			body:  `[{"rankAndZone":"DC","status":"active","tableRowId":"1"}]`,
			index: 0, field: "name",
		},
		"numeric name": {
			body:  `[{"name":"A","rankAndZone":"DC","status":"active","tableRowId":"1"},{"name":7,"rankAndZone":"DC","status":"active","tableRowId":"2"}]`,
			index: 1, field: "name",
		},
		"bad status": {
			body:  `[{"name":"A","rankAndZone":"DC","status":"retired","tableRowId":"1"}]`,
			index: 0, field: "status",
		},
		"missing row id": {
			body:  `[{"name":"A","rankAndZone":"DC","status":"active"}]`,
			index: 0, field: "tableRowId",
		},
		"area not a string": {
			body:  `[{"name":"A","rankAndZone":"DC","status":"active","tableRowId":"1","area":3}]`,
			index: 0, field: "area",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ld := NewLoader(fstest.MapFS{"officers_bn.json": {Data: []byte(tc.body)}}, nil)
			_, err := ld.Officers(locale.Bengali)
			require.Error(t, err)
			assert.True(t, errors.Is(err, content.ErrSchemaValidation))

			var schemaErr *content.SchemaValidationError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, locale.Bengali, schemaErr.Locale)
			assert.Equal(t, DatasetOfficers, schemaErr.Dataset)
			assert.Equal(t, tc.index, schemaErr.Index)
			assert.Equal(t, tc.field, schemaErr.Field)
		})
	}
}

func TestNumericRowIDAccepted(t *testing.T) {
	ld := NewLoader(fstest.MapFS{"officers_en.json": {Data: []byte(`[{"name":"A","rankAndZone":"DC","status":"Arrested","tableRowId":12}]`)}}, nil)
	officers, err := ld.Officers(locale.English)
	require.NoError(t, err)
	assert.Equal(t, "12", officers[0].TableRowID)
	assert.Equal(t, content.StatusArrested, officers[0].Status)
}

func TestAbscondedSchemaDefects(t *testing.T) {
	ld := NewLoader(fstest.MapFS{
		"absconded_en.json": {Data: []byte(`[{"officerName":"A","rank":"Police Commissioner","date":"06/08/2024"}]`)},
		"absconded_bn.json": {Data: []byte(`{"officerName":"A"}`)},
	}, nil)

	_, err := ld.Absconded(locale.English, nil)
	var schemaErr *content.SchemaValidationError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "date", schemaErr.Field)

	_, err = ld.Absconded(locale.Bengali, nil)
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, -1, schemaErr.Index)
}

func TestMissingFile(t *testing.T) {
	ld := NewLoader(fstest.MapFS{}, nil)
	_, err := ld.Officers(locale.English)
	require.Error(t, err)
	assert.True(t, IsMissing(err))
	assert.False(t, errors.Is(err, content.ErrSchemaValidation))
}
