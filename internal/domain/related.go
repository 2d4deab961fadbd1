package domain

// FindRelated partitions a flattened bookmark list into the subset pointing
// at the same logical destination as refURL: same main domain or same host
// identity. Both sides are classified per candidate; empty classifications
// never match each other, otherwise every unparseable URL would relate to
// every other one. Result order mirrors the input order.
func FindRelated(records []Record, refURL string) RelationResult {
	curDomain := MainDomain(refURL)
	curIdentity := HostIdentity(refURL)

	related := make([]Record, 0, len(records))
	for _, r := range records {
		sameDomain := curDomain != "" && MainDomain(r.URL) == curDomain
		sameHost := curIdentity != "" && HostIdentity(r.URL) == curIdentity
		if sameDomain || sameHost {
			related = append(related, r)
		}
	}

	return RelationResult{
		CurrentURL:    refURL,
		CurrentDomain: curDomain,
		Bookmarks:     related,
	}
}
