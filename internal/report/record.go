// Package report implements the document-as-database layer: pillar
// report files are flat text documents holding one semi-structured
// block per question. The package parses documents into Records,
// mutates individual field lines, and splices updated blocks back into
// the document without touching sibling records or surrounding prose.
package report

// Status is the canonical per-question state.
type Status string

const (
	StatusUnanswered Status = "unanswered"
	StatusPartial    Status = "partial"
	StatusAnswered   Status = "answered"
	StatusNeedsHuman Status = "needs_human"
)

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusUnanswered, StatusPartial, StatusAnswered, StatusNeedsHuman:
		return true
	}
	return false
}

// Confidence grades how reliable a recorded answer is.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
	ConfidenceNA     Confidence = "n/a"
)

// Valid reports whether c is one of the enumerated confidence grades.
func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh, ConfidenceNA:
		return true
	}
	return false
}

// Record is one questionnaire item parsed out of a pillar document.
// Block holds the exact text span the record occupies, heading line
// included; all mutations operate on Block and are spliced back via
// Rewrite.
type Record struct {
	ID          string
	Title       string
	Question    string
	Status      Status
	Confidence  Confidence
	TrackerTask string

	// Block is the raw span. The union of all blocks plus the
	// surrounding header and footer reconstructs the document
	// byte-for-byte when nothing has changed.
	Block string
}

// Answer returns the recorded answer text, empty when none.
func (r Record) Answer() string {
	return ParseField(r.Block, FieldAnswer)
}

// Evidence returns the last applied evidence summary.
func (r Record) Evidence() string {
	return ParseField(r.Block, FieldEvidence)
}
