package litdoc

// ContinueBlock exposes continueBlock to tests of the scanner invariants.
func ContinueBlock(state ScanState, text string) (Fragment, int, ScanState, error) {
	return continueBlock(state, text, 0)
}
