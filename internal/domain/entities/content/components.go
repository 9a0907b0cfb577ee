package content

// ComponentName identifies an interactive visualization that an article block
// can mount.
type ComponentName string

const (
	ComponentPoliceMap       ComponentName = "PoliceMap"
	ComponentSourceDocuments ComponentName = "SourceDocuments"
	ComponentOfficerTable    ComponentName = "OfficerTable"
	ComponentAudioSection    ComponentName = "AudioSection"
	ComponentAbsconded       ComponentName = "Absconded"
	ComponentTransfers       ComponentName = "Transfers"
)

var componentNames = []ComponentName{
	ComponentPoliceMap,
	ComponentSourceDocuments,
	ComponentOfficerTable,
	ComponentAudioSection,
	ComponentAbsconded,
	ComponentTransfers,
}

// ComponentNames returns every known component name.
func ComponentNames() []ComponentName {
	out := make([]ComponentName, len(componentNames))
	copy(out, componentNames)
	return out
}

// ParseComponentName maps a raw string onto the enumeration.
func ParseComponentName(s string) (ComponentName, bool) {
	for _, name := range componentNames {
		if string(name) == s {
			return name, true
		}
	}
	return "", false
}

func (n ComponentName) Valid() bool {
	_, ok := ParseComponentName(string(n))
	return ok
}

// Component resolves a component name to the auxiliary data bag it renders.
// The returned value is one of *PoliceMap, *DocumentsSection, *OfficerTable,
// *AudioSection, *Absconded or *Transfers. A nil bag or an unknown name
// reports false.
func (lc *LocaleContent) Component(name ComponentName) (any, bool) {
	var bag any
	switch name {
	case ComponentPoliceMap:
		if lc.PoliceMap != nil {
			bag = lc.PoliceMap
		}
	case ComponentSourceDocuments:
		if lc.Documents != nil {
			bag = lc.Documents
		}
	case ComponentOfficerTable:
		if lc.OfficerTable != nil {
			bag = lc.OfficerTable
		}
	case ComponentAudioSection:
		if lc.Audio != nil {
			bag = lc.Audio
		}
	case ComponentAbsconded:
		if lc.Absconded != nil {
			bag = lc.Absconded
		}
	case ComponentTransfers:
		if lc.Transfers != nil {
			bag = lc.Transfers
		}
	}
	return bag, bag != nil
}
