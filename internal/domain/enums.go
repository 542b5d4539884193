package domain

import "fmt"

// ResourceLevel is the update-aggressiveness tier derived from estimated
// context usage. Levels are ordered by severity.
type ResourceLevel int

const (
	LevelFull ResourceLevel = iota
	LevelNormal
	LevelLight
	LevelMinimal
)

// Usage thresholds, lower bound inclusive.
const (
	NormalUsageThreshold  = 70
	LightUsageThreshold   = 85
	MinimalUsageThreshold = 95
)

// LevelForUsage maps a usage percentage onto exactly one level.
func LevelForUsage(usage int) ResourceLevel {
	switch {
	case usage >= MinimalUsageThreshold:
		return LevelMinimal
	case usage >= LightUsageThreshold:
		return LevelLight
	case usage >= NormalUsageThreshold:
		return LevelNormal
	default:
		return LevelFull
	}
}

func (l ResourceLevel) String() string {
	switch l {
	case LevelFull:
		return "full"
	case LevelNormal:
		return "normal"
	case LevelLight:
		return "light"
	case LevelMinimal:
		return "minimal"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// RecordsProgress reports whether runs at this level annotate existing
// items and append a progress record block.
func (l ResourceLevel) RecordsProgress() bool {
	return l == LevelFull || l == LevelNormal
}

// ParseResourceLevel is the inverse of ResourceLevel.String.
func ParseResourceLevel(s string) (ResourceLevel, error) {
	switch s {
	case "full":
		return LevelFull, nil
	case "normal":
		return LevelNormal, nil
	case "light":
		return LevelLight, nil
	case "minimal":
		return LevelMinimal, nil
	default:
		return LevelFull, fmt.Errorf("unknown resource level %q", s)
	}
}

// ChangeSource identifies which strategy produced a change set.
type ChangeSource string

const (
	SourceVCS        ChangeSource = "vcs"
	SourceFilesystem ChangeSource = "filesystem"
	SourceNone       ChangeSource = "none"
)

// Mutation is the per-file outcome of a checklist update.
type Mutation string

const (
	MutationChecked   Mutation = "checked"
	MutationAppended  Mutation = "appended"
	MutationPending   Mutation = "pending"
	MutationUnchanged Mutation = "unchanged"
	MutationFailed    Mutation = "failed"
)

// Applied reports whether the mutation changed the document.
func (m Mutation) Applied() bool {
	return m == MutationChecked || m == MutationAppended || m == MutationPending
}
