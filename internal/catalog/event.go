package catalog

// Level indicates the severity/type of a progress message.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// Event represents an advisory progress update emitted by a component.
//
// Events never indicate failure of a resolution; the core is total and
// always produces a result. They exist for observability only.
type Event struct {
	Message string
	Level   Level
}
