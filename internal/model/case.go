package model

// Case is one problem instance read from the input stream.
type Case struct {
	Index  int      // 1-based position in the batch
	Tokens []string // raw note spellings, possibly repeated
}

// CaseResult holds the compatible keys computed for a case.
type CaseResult struct {
	Index  int
	Notes  PitchSet
	Labels []string // sorted lexicographically
	Err    error    // per-case failure, e.g. an unrecognized spelling
}
