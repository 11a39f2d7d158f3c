package importer

// DuplicateKey identifies a row within one import batch as "date|amount|description".
func DuplicateKey(r Row) string {
	return r.Date + "|" + r.Amount.String() + "|" + r.Description
}

// FindDuplicates returns the indices of rows whose key already appeared earlier in the batch.
// The first occurrence is never reported.
func FindDuplicates(rows []Row) []int {
	seen := make(map[string]struct{}, len(rows))
	var dups []int
	for i, r := range rows {
		key := DuplicateKey(r)
		if _, ok := seen[key]; ok {
			dups = append(dups, i)
			continue
		}
		seen[key] = struct{}{}
	}
	return dups
}
