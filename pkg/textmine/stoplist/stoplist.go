// Package stoplist provides the English stop-word set used by the normalizer.
package stoplist

// english is the default stop-word list: the Snowball English list plus a
// handful of high-frequency fillers that show up in news prose.
var english = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"your", "yours", "yourself", "yourselves", "he", "him", "his", "himself",
	"she", "her", "hers", "herself", "it", "its", "itself", "they", "them",
	"their", "theirs", "themselves", "what", "which", "who", "whom", "this",
	"that", "these", "those", "am", "is", "are", "was", "were", "be", "been",
	"being", "have", "has", "had", "having", "do", "does", "did", "doing",
	"would", "should", "could", "ought", "cannot", "a", "an", "the", "and",
	"but", "if", "or", "because", "as", "until", "while", "of", "at", "by",
	"for", "with", "about", "against", "between", "into", "through", "during",
	"before", "after", "above", "below", "to", "from", "up", "down", "in",
	"out", "on", "off", "over", "under", "again", "further", "then", "once",
	"here", "there", "when", "where", "why", "how", "all", "any", "both",
	"each", "few", "more", "most", "other", "some", "such", "no", "nor",
	"not", "only", "own", "same", "so", "than", "too", "very", "can", "will",
	"just", "don", "now", "near", "also", "one", "two", "first", "last",
	"today", "yesterday", "tomorrow", "said", "says", "per", "via", "among",
	"around", "since", "still", "yet", "however", "within", "without",
	"already", "many", "much", "may", "might", "must", "shall", "let", "upon",
	"us", "onto",
}

// English returns a copy of the default English stop-word list.
func English() []string {
	out := make([]string, len(english))
	copy(out, english)
	return out
}

// Set is a stop-word lookup set.
type Set struct {
	stops map[string]struct{}
}

// NewSet builds a set from the default English list plus any extra terms.
func NewSet(extra []string) *Set {
	s := &Set{stops: make(map[string]struct{}, len(english)+len(extra))}
	for _, w := range english {
		s.stops[w] = struct{}{}
	}
	for _, w := range extra {
		s.Add(w)
	}
	return s
}

// NewEmptySet builds a set containing only the given terms.
func NewEmptySet(terms []string) *Set {
	s := &Set{stops: make(map[string]struct{}, len(terms))}
	for _, w := range terms {
		s.Add(w)
	}
	return s
}

// IsStop checks if a word is a stopword.
func (s *Set) IsStop(word string) bool {
	_, ok := s.stops[word]
	return ok
}

// Add adds a word to the set.
func (s *Set) Add(word string) {
	if word == "" {
		return
	}
	s.stops[word] = struct{}{}
}

// Remove removes a word from the set.
func (s *Set) Remove(word string) {
	delete(s.stops, word)
}

// All returns all words in the set.
func (s *Set) All() []string {
	out := make([]string, 0, len(s.stops))
	for w := range s.stops {
		out = append(out, w)
	}
	return out
}
