package annotate

import "strings"

// irregular verb forms the suffix rules below would mangle
var irregularLemmas = map[string]string{
	"is": "be", "are": "be", "was": "be", "were": "be", "am": "be",
	"been": "be", "being": "be",
	"has": "have", "had": "have", "having": "have",
	"does": "do", "did": "do", "done": "do",
	"goes": "go", "went": "go", "gone": "go",
	"grew": "grow", "grown": "grow",
	"gave": "give", "given": "give",
	"made": "make", "making": "make",
	"took": "take", "taken": "take", "taking": "take",
	"led": "lead", "left": "leave", "lost": "lose",
	"rose": "rise", "risen": "rise", "fell": "fall", "fallen": "fall",
	"held": "hold", "kept": "keep", "met": "meet",
	"became": "become", "brought": "bring", "built": "build",
	"found": "find", "fed": "feed", "bred": "breed", "grown-up": "grow",
}

/*
lemmaOf produces a base form for the shallow engine. Verbs and auxiliaries get
suffix-rule lemmatization; everything else is just lowercased. The remote
parser supplies real lemmas, so this only has to be good enough for relation
labels on common English verbs.
*/
func lemmaOf(text, pos string) string {
	lower := strings.ToLower(text)

	if pos != POSVerb && pos != POSAux {
		return lower
	}

	if lemma, ok := irregularLemmas[lower]; ok {
		return lemma
	}

	return lemmatizeVerb(lower)
}

func lemmatizeVerb(word string) string {
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		// applies -> apply
		return word[:len(word)-3] + "y"

	case strings.HasSuffix(word, "sses") || strings.HasSuffix(word, "shes") ||
		strings.HasSuffix(word, "ches") || strings.HasSuffix(word, "xes") ||
		strings.HasSuffix(word, "zes") || strings.HasSuffix(word, "oes"):
		// passes -> pass, reaches -> reach
		return word[:len(word)-2]

	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && len(word) > 2:
		// reduces -> reduce, improves -> improve
		return word[:len(word)-1]

	case strings.HasSuffix(word, "ied") && len(word) > 4:
		// dried -> dry
		return word[:len(word)-3] + "y"

	case strings.HasSuffix(word, "ed") && len(word) > 3:
		return undouble(word[:len(word)-2])

	case strings.HasSuffix(word, "ing") && len(word) > 4:
		return undouble(word[:len(word)-3])

	default:
		return word
	}
}

// undouble collapses the doubled final consonant left by -ed/-ing stripping
// (planned -> plann -> plan).
func undouble(word string) string {
	n := len(word)
	if n >= 2 && word[n-1] == word[n-2] && !isVowel(word[n-1]) && word[n-1] != 's' && word[n-1] != 'l' {
		return word[:n-1]
	}
	return word
}

func isVowel(ch byte) bool {
	switch ch {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
