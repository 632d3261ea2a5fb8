package llamaparse

// Document is a single parsed result handed back to the caller. LoadData
// returns a slice so that multi-document results can be added later without a
// breaking signature change.
type Document struct {
	Text     string
	Metadata map[string]any
}
