package match

import "campus-chatbot-be/pkg/records"

// MaxResults caps every matcher result.
const MaxResults = 5

// Strategy finds candidate records in a department record set given the
// extracted keywords and the original raw query. Implementations never
// fail; the worst case is an empty result.
type Strategy interface {
	Match(recs []records.Record, keywords []string, rawQuery string) []records.Record
}
