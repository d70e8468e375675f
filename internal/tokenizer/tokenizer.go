package tokenizer

import (
	"strings"
	"unicode"
)

// Tokenizer splits text into sentences and sentences into words
type Tokenizer interface {
	// Sentences returns the sentences of text in document order
	Sentences(text string) []string

	// Words returns the word tokens of a single sentence in order
	Words(sentence string) []string
}

// Funcs adapts two plain functions to the Tokenizer interface
type Funcs struct {
	SentenceFunc func(text string) []string
	WordFunc     func(sentence string) []string
}

func (f Funcs) Sentences(text string) []string {
	return f.SentenceFunc(text)
}

func (f Funcs) Words(sentence string) []string {
	return f.WordFunc(sentence)
}

// defaultAbbreviations never end a sentence when followed by a period
var defaultAbbreviations = []string{
	"mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st", "mt", "vs", "etc",
	"e.g", "i.e", "inc", "ltd", "co", "corp", "jan", "feb", "mar", "apr",
	"jun", "jul", "aug", "sep", "sept", "oct", "nov", "dec", "no", "fig",
	"approx", "dept", "est", "u.s", "u.k", "a.m", "p.m",
}

const (
	sentenceEnders = ".!?"
	closers        = "\"')]}”’»"
	openers        = "\"'([{“‘«"
	trailers       = ".,;:!?\"')]}”’»…"
)

// contractionSuffixes are split off the way the Penn Treebank does
var contractionSuffixes = []string{"n't", "'s", "'re", "'ve", "'ll", "'d", "'m"}

// Rules is a rule-based English tokenizer. Sentence boundaries follow a
// terminator run (. ! ?) and optional closing quotes or brackets, unless the
// period belongs to a known abbreviation or an initial, or an ellipsis is
// followed by a lower-case word.
type Rules struct {
	abbreviations map[string]struct{}
}

// New creates a rule tokenizer with the default English abbreviation list
// plus any extra abbreviations (without the trailing period)
func New(extra ...string) *Rules {
	abbr := make(map[string]struct{}, len(defaultAbbreviations)+len(extra))
	for _, a := range defaultAbbreviations {
		abbr[a] = struct{}{}
	}
	for _, a := range extra {
		abbr[strings.ToLower(strings.TrimSuffix(a, "."))] = struct{}{}
	}
	return &Rules{abbreviations: abbr}
}

// Sentences splits text into trimmed, non-empty sentences
func (r *Rules) Sentences(text string) []string {
	runes := []rune(text)
	sentences := make([]string, 0)
	start := 0

	for i := 0; i < len(runes); i++ {
		if !strings.ContainsRune(sentenceEnders, runes[i]) {
			continue
		}

		// Consume the terminator run and any closing punctuation
		end := i
		for end+1 < len(runes) && strings.ContainsRune(sentenceEnders, runes[end+1]) {
			end++
		}
		singlePeriod := end == i && runes[i] == '.'
		ellipsis := end > i && strings.Trim(string(runes[i:end+1]), ".") == ""
		for end+1 < len(runes) && strings.ContainsRune(closers, runes[end+1]) {
			end++
		}

		atEnd := end+1 >= len(runes)
		if !atEnd && !unicode.IsSpace(runes[end+1]) {
			i = end
			continue
		}

		if singlePeriod && !atEnd && !r.periodEndsSentence(runes, start, i) {
			i = end
			continue
		}
		if ellipsis && nextIsLower(runes, end+1) {
			i = end
			continue
		}

		if s := strings.TrimSpace(string(runes[start : end+1])); s != "" {
			sentences = append(sentences, s)
		}
		start = end + 1
		i = end
	}

	if start < len(runes) {
		if s := strings.TrimSpace(string(runes[start:])); s != "" {
			sentences = append(sentences, s)
		}
	}

	return sentences
}

// periodEndsSentence decides whether the period at pos terminates the
// sentence that began at start
func (r *Rules) periodEndsSentence(runes []rune, start, pos int) bool {
	wordStart := pos
	for wordStart > start && !unicode.IsSpace(runes[wordStart-1]) {
		wordStart--
	}
	word := strings.TrimLeft(string(runes[wordStart:pos]), openers)
	return !r.isAbbreviation(word)
}

// nextIsLower reports whether the first non-space rune from pos is a
// lower-case letter
func nextIsLower(runes []rune, pos int) bool {
	for pos < len(runes) && unicode.IsSpace(runes[pos]) {
		pos++
	}
	return pos < len(runes) && unicode.IsLower(runes[pos])
}

// isAbbreviation reports whether word (without its trailing period) is a
// known abbreviation, a single-letter initial, or a dotted acronym
func (r *Rules) isAbbreviation(word string) bool {
	if word == "" {
		return false
	}
	lower := strings.ToLower(word)
	if _, ok := r.abbreviations[lower]; ok {
		return true
	}
	runes := []rune(word)
	if len(runes) == 1 && unicode.IsLetter(runes[0]) {
		return true
	}
	return strings.Contains(word, ".")
}

// Words splits a sentence into word and punctuation tokens
func (r *Rules) Words(sentence string) []string {
	fields := strings.Fields(sentence)
	words := make([]string, 0, len(fields)+2)

	for i, field := range fields {
		words = append(words, r.splitField(field, i == len(fields)-1)...)
	}

	return words
}

// splitField peels leading and trailing punctuation off a whitespace-delimited
// field and splits contractions from what remains
func (r *Rules) splitField(field string, last bool) []string {
	runes := []rune(field)

	lead := make([]string, 0, 1)
	for len(runes) > 1 && strings.ContainsRune(openers, runes[0]) {
		lead = append(lead, string(runes[0]))
		runes = runes[1:]
	}

	trail := make([]string, 0, 1)
	for len(runes) > 0 {
		tail := runes[len(runes)-1]
		if !strings.ContainsRune(trailers, tail) {
			break
		}

		if tail == '.' {
			dots := 0
			for dots < len(runes) && runes[len(runes)-1-dots] == '.' {
				dots++
			}
			if dots > 1 {
				trail = append([]string{strings.Repeat(".", dots)}, trail...)
				runes = runes[:len(runes)-dots]
				continue
			}
			stem := string(runes[:len(runes)-1])
			if !last && r.isAbbreviation(stem) {
				break
			}
		}

		trail = append([]string{string(tail)}, trail...)
		runes = runes[:len(runes)-1]
	}

	tokens := lead
	if len(runes) > 0 {
		tokens = append(tokens, splitContraction(string(runes))...)
	}
	return append(tokens, trail...)
}

// splitContraction splits "don't" into "do" and "n't", "it's" into "it" and
// "'s", and so on. Curly apostrophes are treated like straight ones.
func splitContraction(word string) []string {
	normalized := strings.ReplaceAll(word, "’", "'")
	lower := strings.ToLower(normalized)

	for _, suffix := range contractionSuffixes {
		if len(lower) > len(suffix) && strings.HasSuffix(lower, suffix) {
			cut := len(normalized) - len(suffix)
			return []string{normalized[:cut], normalized[cut:]}
		}
	}
	return []string{word}
}
