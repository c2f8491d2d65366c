package types

// OpenedFile is a file read from disk as text. The path is its identity.
type OpenedFile struct {
	Path string
	Text string
}

// LanguageOutcome tags the result of offering a highlight hint to the
// editing pane.
type LanguageOutcome int

const (
	// LanguageApplied means the pane now highlights with the hinted language
	LanguageApplied LanguageOutcome = iota
	// LanguageIgnored means the hint was rejected and the pane shows plain text
	LanguageIgnored
)

func (o LanguageOutcome) String() string {
	if o == LanguageApplied {
		return "applied"
	}
	return "ignored"
}

// LanguageResult reports what happened to a highlight hint.
type LanguageResult struct {
	Outcome LanguageOutcome
	// Requested is the hint as given
	Requested string
	// Language is the language in effect afterwards; empty means plain text
	Language string
}

// Applied reports whether the hint took effect.
func (r LanguageResult) Applied() bool {
	return r.Outcome == LanguageApplied
}

// EditorState is what the shell shows for the current file.
type EditorState struct {
	Text     string
	Language string
	SubTitle string
}
