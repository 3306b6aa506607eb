package match

import (
	"strings"

	"campus-chatbot-be/pkg/records"
)

// SubstringMatcher is the shipped Strategy: an exact-name pass over 2-3
// word windows of the raw query, falling back to keyword substring
// matching plus a semester heuristic when no name matches.
type SubstringMatcher struct{}

func NewSubstringMatcher() *SubstringMatcher {
	return &SubstringMatcher{}
}

func (m *SubstringMatcher) Match(recs []records.Record, keywords []string, rawQuery string) []records.Record {
	if len(recs) == 0 {
		return nil
	}

	// Pass 1: exact name matches take absolute precedence. If any record's
	// designated name field overlaps a candidate window (substring either
	// direction), the keyword fallback is skipped entirely.
	windows := nameWindows(rawQuery)
	var exact []records.Record
	for _, rec := range recs {
		name := strings.ToLower(rec.Name())
		if name == "" {
			continue
		}
		for _, window := range windows {
			if strings.Contains(name, window) || strings.Contains(window, name) {
				exact = append(exact, rec)
				break
			}
		}
	}
	if len(exact) > 0 {
		return truncate(exact)
	}

	// Pass 2: keyword fallback. A record matches when any keyword is a
	// substring of its concatenated field values.
	//
	// The semester chain is mutually exclusive over the keyword set as a
	// whole: only the first branch that fires is honored for the call,
	// even if the query loosely references several semesters.
	target := semesterTarget(keywords)
	var matches []records.Record
	for _, rec := range recs {
		if keywordHit(rec, keywords) {
			matches = append(matches, rec)
		}
		if target != "" && rec.Semester() == target {
			matches = append(matches, rec)
		}
	}

	return truncate(dedupe(matches))
}

// nameWindows generates every contiguous 2-3 word subsequence of the query
// as a candidate name string. Queries of fewer than 2 words produce none.
func nameWindows(rawQuery string) []string {
	words := strings.Fields(strings.ToLower(rawQuery))
	if len(words) < 2 {
		return nil
	}
	var windows []string
	for i := range words {
		for size := 2; size <= 3 && i+size <= len(words); size++ {
			windows = append(windows, strings.Join(words[i:i+size], " "))
		}
	}
	return windows
}

func keywordHit(rec records.Record, keywords []string) bool {
	values := make([]string, 0, len(rec.Fields))
	for _, v := range rec.Fields {
		values = append(values, strings.ToLower(v))
	}
	haystack := strings.Join(values, " ")
	for _, kw := range keywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

var semesterHints = []struct {
	hints  []string
	target string
}{
	{hints: []string{"1st", "1", "first"}, target: "1"},
	{hints: []string{"2nd", "2", "second"}, target: "2"},
	{hints: []string{"3rd", "3", "third"}, target: "3"},
}

func semesterTarget(keywords []string) string {
	set := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		set[kw] = struct{}{}
	}
	for _, branch := range semesterHints {
		for _, hint := range branch.hints {
			if _, ok := set[hint]; ok {
				return branch.target
			}
		}
	}
	return ""
}

// dedupe removes duplicates by (teacher name, subject, semester) identity,
// preserving first-seen order. The key deliberately omits department.
func dedupe(matches []records.Record) []records.Record {
	type identity struct {
		teacher  string
		subject  string
		semester string
	}
	seen := make(map[identity]struct{}, len(matches))
	out := make([]records.Record, 0, len(matches))
	for _, rec := range matches {
		key := identity{
			teacher:  rec.Fields[records.FieldTeacherName],
			subject:  rec.Fields[records.FieldSubject],
			semester: rec.Fields[records.FieldSemester],
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rec)
	}
	return out
}

func truncate(matches []records.Record) []records.Record {
	if len(matches) > MaxResults {
		return matches[:MaxResults]
	}
	return matches
}
