package event

// Summary tallies the outcome of a batch of labels.
type Summary struct {
	Total      int
	Resolved   int
	Unresolved int
	// Distinct is the number of different canonical records among the resolved labels.
	Distinct int
}
