package lexicon

// ──────────────────────────────────────────────
// Negation particles, pronoun groups, conflict and support markers
// ──────────────────────────────────────────────

// NegationPL are the Polish negation particles, always active.
var NegationPL = newSet(
	"nie", "nigdy", "ani", "bez", "żaden", "żadna", "żadne", "nic",
)

// NegationEN are the English particles, activated only when a message
// matches the English-marker heuristic (see the scorer).
var NegationEN = newSet(
	"not", "no", "never", "dont", "don't", "cant", "can't", "won't",
	"wont", "isn't", "isnt", "aren't", "arent", "didn't", "didnt",
	"doesn't", "doesnt", "wasn't", "wasnt", "neither", "nor",
)

// NegationAll is the union of both particle sets.
var NegationAll = merge(NegationPL, NegationEN)

// FirstSingular are first-person-singular pronoun forms. English "my"
// is deliberately absent: it collides with Polish "my" (= we), and the
// engine resolves the collision in favor of the plural reading.
var FirstSingular = newSet(
	"ja", "mnie", "mi", "mną", "moje", "mój", "moja", "moim", "moją",
	"mojego", "mojej", "siebie", "sobie",
	"i", "me", "mine", "myself", "im", "i'm", "i've", "i'll",
)

// FirstPlural are first-person-plural pronoun forms.
var FirstPlural = newSet(
	"my", "nas", "nam", "nami", "nasz", "nasza", "nasze", "naszym",
	"naszą", "naszego", "naszej", "razem",
	"we", "us", "our", "ours", "ourselves", "we're", "we've", "we'll",
)

// AccusatoryBigrams are the "ty zawsze" style generalizing accusations
// that max out an escalation's severity when present.
var AccusatoryBigrams = []string{
	"ty zawsze", "ty nigdy", "ty znowu", "ty ciągle", "ty ciagle",
	"ty w ogóle", "ty w ogole",
	"you always", "you never", "you again", "you constantly",
}

// Apology words open a resolution event after a detected conflict.
var Apology = newSet(
	"przepraszam", "przeprosiny", "wybacz", "wybaczysz", "przykro",
	"sorry", "apologize", "apologies", "forgive",
)

// Support markers classify a reply as supportive (attention stays on the
// other person).
var Support = newSet(
	"rozumiem", "rozumiem cię", "współczuję", "wspieram", "trzymaj",
	"dasz radę", "jestem z tobą", "pomogę", "pomoge", "pomóc",
	"martwisz", "słucham", "opowiedz", "przytulam",
	"understand", "support", "here for you", "listening", "tell me",
	"poor you", "hugs",
)

// Intimacy markers feed the monthly closeness score. Weighted tiers:
// declarations weigh more than casual warmth.
var IntimacyStrong = newSet(
	"kocham", "kocham cię", "miłość", "zakochany", "zakochana",
	"tęsknię", "tęsknie", "jesteś moim", "jesteś moją", "na zawsze",
	"love you", "in love", "forever", "soulmate",
)

var IntimacySoft = newSet(
	"kochanie", "skarbie", "słonko", "misiu", "kotku", "buziaki",
	"całusy", "przytul", "dobranoc", "śpij dobrze", "myślę o tobie",
	"darling", "honey", "sweetheart", "goodnight", "miss you", "cuddle",
	"thinking of you",
)
