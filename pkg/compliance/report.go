package compliance

// StatusOK marks a report produced by a successful evaluation. Input errors
// (missing or undecodable documents) are reported by the transport layer
// before the evaluator runs; the engine itself has no error status.
const StatusOK = "ok"

// failurePrefix prefixes every failure description.
const failurePrefix = "Missing or non-compliant: "

// Failure identifies one unsatisfied rule.
type Failure struct {
	// Code is the rule's building-code identifier.
	Code string `json:"code"`

	// Description is the human-readable failure text.
	Description string `json:"description"`
}

// Report is the aggregate result of one evaluation. It is constructed fresh
// per call and has no identity or persistence beyond the response it is
// embedded in.
type Report struct {
	// Status discriminates a successful evaluation; always StatusOK here.
	Status string `json:"status"`

	// PassRate is the integer percentage of rules satisfied, truncated
	// (never rounded): 3 passed of 7 yields 42, not 43.
	PassRate int `json:"pass_rate"`

	// Failed lists every unsatisfied rule in registry order.
	Failed []Failure `json:"failed"`
}
