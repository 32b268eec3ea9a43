package templates

func callsPerDigest(r Row) int {
	if r.Digests == 0 {
		return 0
	}
	return r.WatchCalls / r.Digests
}
