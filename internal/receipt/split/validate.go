package split

// Validation is the outcome of checking a proposed split before it is
// finalized. Failures are expected user-facing conditions, reported as
// display-ready messages rather than errors.
type Validation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateSplit checks that a proposed split is complete and consistent:
// at least one participant is selected, every item is covered under
// ITEMIZED, assigned quantities fit within each item's quantity, and
// PERCENTAGE/CUSTOM inputs sum to their expected totals within the input
// tolerances. It never returns an error; an unknown strategy is itself
// reported as a validation message.
func ValidateSplit(receipt *Receipt, splitType SplitType, in *Input) Validation {
	problems := []string{}

	if len(in.Participants) == 0 {
		problems = append(problems, "at least one person must be selected")
	}

	strategy, err := NewFactory().Create(splitType)
	if err != nil {
		problems = append(problems, err.Error())
	} else {
		problems = append(problems, strategy.Validate(receipt, in)...)
	}

	return Validation{
		Valid:  len(problems) == 0,
		Errors: problems,
	}
}
