package lexicon

// ──────────────────────────────────────────────
// Emotion-category lexicons — emotional granularity input
// ──────────────────────────────────────────────

// EmotionCategories maps a category name to the words that signal it.
// Categories follow the basic-emotion split the granularity signal counts
// distinct hits over; a month that only ever says "fajnie" scores lower
// than one naming joy, fear and longing.
var EmotionCategories = map[string]Set{
	"joy": newSet(
		"szczęśliwy", "szczęśliwa", "szczęście", "radość", "radosny",
		"cieszę", "wesoły", "wesoła", "uśmiech", "śmieję", "zadowolony",
		"zadowolona", "euforia", "zachwyt", "zachwycony",
		"happy", "joy", "glad", "excited", "cheerful", "delighted",
	),
	"sadness": newSet(
		"smutny", "smutna", "smutno", "smutek", "płaczę", "płacz", "łzy",
		"przygnębiony", "przygnębiona", "załamany", "załamana", "rozpacz",
		"żal", "melancholia", "przykro",
		"sad", "cry", "crying", "tears", "gloomy", "heartbroken", "down",
	),
	"anger": newSet(
		"zły", "zła", "złość", "wściekły", "wściekła", "wkurzony",
		"wkurzona", "furia", "irytacja", "zdenerwowany", "zdenerwowana",
		"angry", "mad", "furious", "rage", "irritated", "annoyed",
	),
	"fear": newSet(
		"boję", "boisz", "strach", "przerażony", "przerażona", "lęk",
		"niepokój", "martwię", "martwisz", "obawiam", "stres", "panika",
		"afraid", "scared", "fear", "anxious", "worried", "panic", "nervous",
	),
	"love": newSet(
		"kocham", "miłość", "zakochany", "zakochana", "uwielbiam",
		"czułość", "bliskość", "przytulić", "tęsknię", "tęsknota",
		"love", "adore", "affection", "tenderness", "miss", "longing",
	),
	"surprise": newSet(
		"zaskoczony", "zaskoczona", "zdziwiony", "zdziwiona", "szok",
		"niespodzianka", "wow", "niesamowite",
		"surprised", "shocked", "astonished", "unexpected",
	),
	"disgust": newSet(
		"obrzydliwe", "obrzydzenie", "wstręt", "ohyda", "fuj",
		"disgusting", "gross", "disgust", "revolting",
	),
	"shame": newSet(
		"wstyd", "wstydzę", "zawstydzony", "zawstydzona", "zażenowanie",
		"głupio", "poczucie winy", "wina",
		"ashamed", "shame", "embarrassed", "guilty", "guilt",
	),
}

// EmotionCategoryCount is the number of distinct categories.
var EmotionCategoryCount = len(EmotionCategories)
