package lexicon

// Stopwords are filtered by the strict tokenizer's callers. The sentiment
// scorer deliberately does not use this set — polarity dictionaries overlap
// with function words in chat Polish.
var Stopwords = newSet(
	// Polish
	"i", "w", "z", "na", "do", "się", "sie", "to", "że", "ze", "jest",
	"był", "była", "było", "być", "bo", "ale", "jak", "tak", "co", "czy",
	"po", "za", "od", "dla", "o", "u", "mi", "mnie", "ci", "cię", "cie",
	"ty", "ja", "on", "ona", "ono", "my", "wy", "oni", "one", "go", "jej",
	"jego", "ich", "im", "nam", "was", "nas", "ten", "ta", "te", "tym",
	"tego", "tej", "już", "juz", "jeszcze", "tylko", "też", "tez",
	"może", "moze", "więc", "wiec", "gdy", "kiedy", "gdzie", "tam", "tu",
	"tutaj", "teraz", "potem", "coś", "cos", "wszystko", "nic", "ktoś",
	"no", "a", "e", "oraz", "przy", "przed", "nad", "pod", "przez",
	// English
	"the", "a", "an", "and", "or", "but", "if", "of", "at", "by", "for",
	"with", "about", "to", "from", "in", "on", "is", "are", "was", "were",
	"be", "been", "being", "have", "has", "had", "do", "does", "did",
	"will", "would", "should", "can", "could", "it", "its", "this",
	"that", "these", "those", "then", "than", "so", "just", "there",
	"here", "when", "where", "what", "who", "how", "all", "any", "some",
)
