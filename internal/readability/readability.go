// Package readability computes the published readability formulas from
// aggregate text counts: Flesch Reading Ease, Flesch-Kincaid Grade, Gunning
// Fog, SMOG, and Dale-Chall. Every formula guards its denominators; zero
// words or zero sentences yield a zero score, never NaN or Inf.
package readability

import "math"

// Stats are the aggregate counts the formulas consume.
type Stats struct {
	// Words is the total word count.
	Words int
	// Sentences is the total sentence count.
	Sentences int
	// Syllables is the total estimated syllable count.
	Syllables int
	// ComplexWords counts words of three or more syllables, excluding
	// the common-word exceptions.
	ComplexWords int
	// DifficultWords counts words absent from the familiar-word list.
	DifficultWords int
}

// Scores holds every computed readability score.
type Scores struct {
	FleschReadingEase  float64
	FleschKincaidGrade float64
	GunningFog         float64
	SMOGIndex          float64
	DaleChall          float64
}

// Calculate computes all scores. With zero words or zero sentences every
// score is 0.
func Calculate(s Stats) Scores {
	if s.Words == 0 || s.Sentences == 0 {
		return Scores{}
	}

	w := float64(s.Words)
	sents := float64(s.Sentences)
	wps := w / sents                  // words per sentence
	spw := float64(s.Syllables) / w   // syllables per word
	cwr := float64(s.ComplexWords) / w
	dwr := float64(s.DifficultWords) / w

	return Scores{
		FleschReadingEase:  206.835 - 1.015*wps - 84.6*spw,
		FleschKincaidGrade: 0.39*wps + 11.8*spw - 15.59,
		GunningFog:         0.4 * (wps + 100*cwr),
		SMOGIndex:          1.0430*math.Sqrt(float64(s.ComplexWords)*30/sents) + 3.1291,
		DaleChall:          daleChall(dwr, wps),
	}
}

// daleChall applies the raw-score formula plus the 3.6365 adjustment when
// more than 5% of words are difficult.
func daleChall(difficultRatio, wordsPerSentence float64) float64 {
	score := 0.1579*(difficultRatio*100) + 0.0496*wordsPerSentence
	if difficultRatio > 0.05 {
		score += 3.6365
	}
	return score
}
