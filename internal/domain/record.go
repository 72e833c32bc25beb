package domain

// Option is a single answer choice of a question. IDs are assigned in
// encounter order starting at "0" and are unique within one question.
type Option struct {
	ID   string
	Text string
}

// QuestionRecord is one parsed trivia question with its answer options and
// the resolved correct answer. Records are created by the corpus parser,
// enriched with tags by the tag extractor and treated as read-only after
// that; they carry no identity beyond the quiz they end up in.
type QuestionRecord struct {
	Question      string
	Options       []Option
	CorrectAnswer string
	Tags          []string
}

// Validate checks the record invariants: at least one option, and a
// correct answer that references an existing option ID.
func (r *QuestionRecord) Validate() error {
	if len(r.Options) == 0 {
		return NewValidationError("record has no options")
	}
	if _, ok := r.OptionText(r.CorrectAnswer); !ok {
		return NewValidationError("correct answer does not reference an option")
	}
	return nil
}

// OptionText returns the text of the option with the given ID.
func (r *QuestionRecord) OptionText(id string) (string, bool) {
	for _, opt := range r.Options {
		if opt.ID == id {
			return opt.Text, true
		}
	}
	return "", false
}
