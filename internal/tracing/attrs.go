package tracing

// Span names.
const (
	SpanSession   = "editor.session"
	SpanIteration = "editor.iteration"
)

// Span attribute keys.
const (
	AttrSessionID = "session.id"
	AttrHost      = "session.host"
	AttrFile      = "session.file"

	AttrMode   = "editor.mode"
	AttrAction = "editor.action"
	AttrEvent  = "editor.event"
	AttrLine   = "cursor.line"
	AttrColumn = "cursor.column"
	AttrTop    = "viewport.top"
)
