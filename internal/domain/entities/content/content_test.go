package content

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
)

func sampleTree() *LocaleContent {
	return &LocaleContent{
		Locale: locale.English,
		Tag:    "en-US",
		Article: []Block{
			Paragraph{Text: "opening"},
			Heading{Text: "From non-lethal to lethal"},
			ComponentReference{Name: ComponentPoliceMap},
			Quote{Text: "left the country like me", Citation: "An absconding ADC"},
			Heading{Text: "The commanders"},
			ComponentReference{Name: ComponentOfficerTable},
		},
		PoliceMap:    &PoliceMap{},
		OfficerTable: &OfficerTable{},
	}
}

func TestBlockJSONCarriesKind(t *testing.T) {
	raw, err := json.Marshal(sampleTree().Article)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 6)

	assert.Equal(t, "p", decoded[0]["kind"])
	assert.Equal(t, "opening", decoded[0]["text"])
	assert.Equal(t, "h2", decoded[1]["kind"])
	assert.Equal(t, "component", decoded[2]["kind"])
	assert.Equal(t, "PoliceMap", decoded[2]["componentName"])
	assert.Equal(t, "blockquote", decoded[3]["kind"])
	assert.Equal(t, "An absconding ADC", decoded[3]["citation"])
}

func TestComponentResolution(t *testing.T) {
	lc := sampleTree()

	bag, ok := lc.Component(ComponentPoliceMap)
	require.True(t, ok)
	assert.IsType(t, &PoliceMap{}, bag)

	bag, ok = lc.Component(ComponentTransfers)
	assert.False(t, ok)
	assert.Nil(t, bag)

	_, ok = lc.Component(ComponentName("Nope"))
	assert.False(t, ok)
}

func TestEveryComponentNameHasABag(t *testing.T) {
	lc := &LocaleContent{
		Documents:    &DocumentsSection{},
		PoliceMap:    &PoliceMap{},
		Transfers:    &Transfers{},
		Audio:        &AudioSection{},
		OfficerTable: &OfficerTable{},
		Absconded:    &Absconded{},
	}
	for _, name := range ComponentNames() {
		_, ok := lc.Component(name)
		assert.True(t, ok, "component %s should resolve", name)
	}
}

func TestDanglingReferences(t *testing.T) {
	lc := sampleTree()
	assert.Empty(t, lc.DanglingReferences())

	lc.Article = append(lc.Article, ComponentReference{Name: ComponentAbsconded})
	dangling := lc.DanglingReferences()
	require.Len(t, dangling, 1)
	assert.Equal(t, 6, dangling[0].BlockIndex)
	assert.Equal(t, ComponentAbsconded, dangling[0].Name)

	var err error = dangling[0]
	assert.True(t, errors.Is(err, ErrDanglingComponentReference))
}

func TestComponentReferencesKeepsOrder(t *testing.T) {
	assert.Equal(t,
		[]ComponentName{ComponentPoliceMap, ComponentOfficerTable},
		ComponentReferences(sampleTree().Article))
}

func TestParseComponentName(t *testing.T) {
	name, ok := ParseComponentName("SourceDocuments")
	assert.True(t, ok)
	assert.Equal(t, ComponentSourceDocuments, name)

	_, ok = ParseComponentName("sourcedocuments")
	assert.False(t, ok)
}

func TestTierForRank(t *testing.T) {
	rankMap := map[string]string{
		"উপপুলিশ কমিশনার":          "Deputy Police Commissioner",
		"অতিরিক্ত উপপুলিশ কমিশনার": "Additional Deputy Police Commissioner",
	}

	assert.Equal(t, TierTopRanked, TierForRank("Police Commissioner", nil))
	assert.Equal(t, TierTopRanked, TierForRank("Joint Police Commissioner", nil))
	assert.Equal(t, TierOther, TierForRank("Additional Deputy Police Commissioner", nil))
	assert.Equal(t, TierOther, TierForRank("Assistant Police Commissioner", nil))
	assert.Equal(t, TierTopRanked, TierForRank("উপপুলিশ কমিশনার", rankMap))
	assert.Equal(t, TierOther, TierForRank("অতিরিক্ত উপপুলিশ কমিশনার", rankMap))
}

func TestParseOfficerStatus(t *testing.T) {
	st, ok := ParseOfficerStatus(" Absconded ")
	assert.True(t, ok)
	assert.Equal(t, StatusAbsconded, st)

	_, ok = ParseOfficerStatus("retired")
	assert.False(t, ok)
}

func TestSchemaValidationErrorIs(t *testing.T) {
	var err error = &SchemaValidationError{Locale: locale.Bengali, Dataset: "officers", Index: 3, Field: "name", Reason: "is required"}
	assert.True(t, errors.Is(err, ErrSchemaValidation))
	assert.Contains(t, err.Error(), "record 3")
	assert.Contains(t, err.Error(), `"name"`)
}

func TestContentMap(t *testing.T) {
	items := sampleTree().ContentMap()
	require.Len(t, items, 4)

	assert.Equal(t, KindHeading, items[0].Type)
	assert.Equal(t, "From non-lethal to lethal", items[0].Title)
	assert.Equal(t, "component-PoliceMap", items[1].ID)
	assert.Equal(t, "From non-lethal to lethal", items[1].Extra["section"])
	assert.Equal(t, "The commanders", items[3].Extra["section"])
}

func TestLabelFallbacks(t *testing.T) {
	pm := &PoliceMap{
		ThanaNames: map[string]string{"Jatrabari": "যাত্রাবাড়ী"},
		UIText:     PoliceMapUIText{AmmoLabels: map[string]string{"t56": "টাইপ ৫৬"}},
	}
	assert.Equal(t, "যাত্রাবাড়ী", pm.ThanaLabel("Jatrabari"))
	assert.Equal(t, "Ramna", pm.ThanaLabel("Ramna"))
	assert.Equal(t, "টাইপ ৫৬", pm.AmmoLabel("t56"))
	assert.Equal(t, "lethal", pm.AmmoLabel("lethal"))
}

func TestBlockText(t *testing.T) {
	assert.Equal(t, "x", BlockText(Paragraph{Text: "x"}))
	assert.Equal(t, "", BlockText(ComponentReference{Name: ComponentAbsconded}))
}
