package langdetect

import (
	"strings"

	"golang.org/x/text/language"
)

// Detector is a stopword-profile language detector. It is deliberately
// small: the pipeline only needs a coarse language code plus a confidence
// it can clamp, and heavier models stay behind the same contract.
type Detector struct {
	profiles []profile
}

type profile struct {
	code      string
	stopwords map[string]struct{}
}

func New() *Detector {
	return &Detector{profiles: defaultProfiles()}
}

// Detect returns the best-matching language code and a confidence in
// [0,1]. An empty code means no profile matched at all.
func (d *Detector) Detect(text string) (string, float64) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return "", 0
	}

	bestCode := ""
	bestHits := 0
	for _, candidate := range d.profiles {
		hits := 0
		for _, token := range tokens {
			if _, ok := candidate.stopwords[token]; ok {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			bestCode = candidate.code
		}
	}
	if bestCode == "" {
		return "", 0
	}

	confidence := float64(bestHits) / float64(len(tokens))
	if confidence > 1 {
		confidence = 1
	}
	return canonicalCode(bestCode), confidence
}

func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := fields[:0]
	for _, field := range fields {
		field = strings.Trim(field, ".,!?;:()[]{}\"'")
		if field != "" {
			out = append(out, field)
		}
	}
	return out
}

func canonicalCode(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	base, _ := tag.Base()
	return base.String()
}

func defaultProfiles() []profile {
	return []profile{
		makeProfile("en", "the", "and", "for", "are", "with", "that", "this", "from", "have", "was", "were", "not", "you", "but"),
		makeProfile("es", "el", "la", "los", "las", "que", "de", "por", "con", "para", "una", "uno", "este", "esta", "pero"),
		makeProfile("fr", "le", "la", "les", "des", "une", "est", "que", "pour", "dans", "avec", "sur", "pas", "mais", "vous"),
		makeProfile("de", "der", "die", "das", "und", "ist", "ein", "eine", "mit", "für", "auf", "nicht", "von", "sich", "aber"),
		makeProfile("ru", "и", "в", "не", "на", "что", "это", "как", "для", "его", "она", "они", "был", "быть", "или"),
	}
}

func makeProfile(code string, words ...string) profile {
	stopwords := make(map[string]struct{}, len(words))
	for _, word := range words {
		stopwords[word] = struct{}{}
	}
	return profile{code: code, stopwords: stopwords}
}
