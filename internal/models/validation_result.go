package models

type ValidationOutcome string

const (
	OutcomeInvalid  ValidationOutcome = "invalid"
	OutcomeConflict ValidationOutcome = "conflict"
	OutcomeValid    ValidationOutcome = "valid"
)

// ValidationResult summarises a single validation cycle. It is one of
// InvalidResult, ConflictResult or ValidResult.
type ValidationResult interface {
	Outcome() ValidationOutcome
	validationResult()
}

type InvalidResult struct {
	Errors ErrorList
}

// ConflictResult marks a schedule clash with another campaign. Nothing in this
// module produces it yet.
type ConflictResult struct{}

type ValidResult struct{}

func (InvalidResult) Outcome() ValidationOutcome  { return OutcomeInvalid }
func (ConflictResult) Outcome() ValidationOutcome { return OutcomeConflict }
func (ValidResult) Outcome() ValidationOutcome    { return OutcomeValid }

func (InvalidResult) validationResult()  {}
func (ConflictResult) validationResult() {}
func (ValidResult) validationResult()    {}
