package ws

// DiffStreams returns the entries present in want but absent from have,
// used to compute the incremental subscribe set when SubscribeMarketData
// is called again on an adapter that already has an open session.
func DiffStreams(want, have []string) []string {
	present := make(map[string]bool, len(have))
	for _, s := range have {
		present[s] = true
	}
	var added []string
	for _, s := range want {
		if !present[s] {
			added = append(added, s)
		}
	}
	return added
}
