package domain

type FlowState string

const (
	FlowStateIdle           FlowState = "IDLE"
	FlowStateMethodSelected FlowState = "METHOD_SELECTED"
	FlowStateDetailsEntered FlowState = "DETAILS_ENTERED"
	FlowStateSubmitting     FlowState = "SUBMITTING"
	FlowStateSucceeded      FlowState = "SUCCEEDED"
	FlowStateFailed         FlowState = "FAILED"
)

// allowedTransitions encodes the checkout flow. Selecting a method is legal
// from MethodSelected, DetailsEntered and Failed so the operator can switch
// methods or retry; Succeeded has no outgoing transitions.
var allowedTransitions = map[FlowState][]FlowState{
	FlowStateIdle:           {FlowStateMethodSelected},
	FlowStateMethodSelected: {FlowStateMethodSelected, FlowStateDetailsEntered, FlowStateSubmitting},
	FlowStateDetailsEntered: {FlowStateMethodSelected, FlowStateDetailsEntered, FlowStateSubmitting},
	FlowStateSubmitting:     {FlowStateSucceeded, FlowStateFailed},
	FlowStateFailed:         {FlowStateMethodSelected},
	FlowStateSucceeded:      {},
}

func CanTransitionTo(from, to FlowState) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the flow instance is finished. Failed is not
// terminal: the operator may retry with the same or a different method.
func (s FlowState) IsTerminal() bool {
	return s == FlowStateSucceeded
}

// String representation (for logging)
func (s FlowState) String() string {
	return string(s)
}
