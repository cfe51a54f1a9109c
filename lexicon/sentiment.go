package lexicon

// ──────────────────────────────────────────────
// Sentiment polarity dictionaries — bilingual Polish/English
// ──────────────────────────────────────────────

// Positive is the positive-polarity dictionary. Polish entries carry their
// common inflected forms next to the lemma because chat Polish rarely uses
// dictionary forms.
var Positive = newSet(
	// Polish — affection
	"kocham", "kochasz", "kochamy", "kochany", "kochana", "kochanie",
	"uwielbiam", "uwielbiasz", "miłość", "miłości", "zakochany", "zakochana",
	"tęsknię", "tęsknie", "tęskniłem", "tęskniłam", "skarbie", "słonko",
	"misiu", "kotku", "przytul", "przytulę", "całuję", "całusy", "buziaki",
	// Polish — joy and approval
	"super", "świetnie", "świetny", "świetna", "ekstra", "spoko", "git",
	"fajnie", "fajny", "fajna", "fajne", "cudownie", "cudowny", "cudowna",
	"wspaniale", "wspaniały", "wspaniała", "pięknie", "piękny", "piękna",
	"dobrze", "dobry", "dobra", "dobre", "najlepszy", "najlepsza",
	"genialnie", "genialny", "rewelacja", "rewelacyjnie", "bosko",
	"szczęśliwy", "szczęśliwa", "szczęście", "radość", "radosny",
	"cieszę", "cieszysz", "cieszymy", "ucieszyłem", "ucieszyłam",
	"zadowolony", "zadowolona", "wesoły", "wesoła", "uśmiech",
	"dziękuję", "dziekuje", "dzięki", "wdzięczny", "wdzięczna",
	"brawo", "gratulacje", "gratuluję", "sukces", "udało", "doskonale",
	"miło", "miły", "miła", "miłe", "sympatyczny", "sympatyczna",
	"uroczy", "urocza", "słodki", "słodka", "słodkie", "kochane",
	"wygrałem", "wygrałam", "wygraliśmy", "zachwycony", "zachwycona",
	"podoba", "podobało", "lubię", "lubisz", "lubimy", "polubiłem",
	"haha", "hehe", "hihi", "xd",
	// English
	"love", "loved", "lovely", "adore", "amazing", "awesome", "great",
	"good", "nice", "wonderful", "beautiful", "perfect", "fantastic",
	"happy", "glad", "joy", "excited", "thanks", "thank", "grateful",
	"sweet", "cute", "best", "brilliant", "excellent", "fun", "funny",
	"win", "won", "success", "proud", "miss", "missed", "hug", "kiss",
	"darling", "dear", "honey", "congrats", "congratulations", "yay",
)

// Negative is the negative-polarity dictionary.
var Negative = newSet(
	// Polish — anger and contempt
	"nienawidzę", "nienawidzisz", "nienawiść", "wkurzony", "wkurzona",
	"wkurza", "wkurzasz", "wściekły", "wściekła", "zły", "zła", "złe",
	"złość", "złości", "denerwuje", "denerwujesz", "zdenerwowany",
	"zdenerwowana", "irytuje", "irytujesz", "wnerwia", "wkurwia",
	"głupi", "głupia", "głupie", "idiota", "idiotka", "kretyn", "debil",
	"beznadziejny", "beznadziejna", "beznadziejnie", "żałosny", "żałosna",
	"okropny", "okropna", "okropne", "okropnie", "fatalnie", "fatalny",
	"tragedia", "tragicznie", "masakra", "porażka", "koszmar", "koszmarny",
	// Polish — sadness and hurt
	"smutny", "smutna", "smutno", "smutek", "przykro", "przykra",
	"płaczę", "płakałem", "płakałam", "płacz", "łzy", "boli", "bolało",
	"ból", "cierpię", "cierpisz", "cierpienie", "rozpacz", "żal",
	"zawiodłem", "zawiodłam", "zawiedziony", "zawiedziona", "zawód",
	"rozczarowany", "rozczarowana", "rozczarowanie", "przygnębiony",
	"przygnębiona", "załamany", "załamana", "depresja", "samotny",
	"samotna", "samotność", "tęskno", "źle", "gorzej", "najgorszy",
	"najgorsza", "okłamałeś", "okłamałaś", "kłamiesz", "kłamca",
	"kłamstwo", "zdrada", "zdradziłeś", "zdradziłaś", "oszukałeś",
	"przepraszam", "wybacz", "przykrość", "obraziłeś", "obraziłaś",
	"szkoda", "niestety", "problem", "problemy", "kłótnia", "kłócimy",
	"awantura", "krzyczysz", "krzyczałeś", "ignorujesz", "olewasz",
	"nudzi", "nudne", "męczy", "męczące", "zmęczony", "zmęczona",
	"chory", "chora", "choroba", "strach", "boję", "boisz", "przerażony",
	// English
	"hate", "hated", "angry", "mad", "furious", "annoyed", "annoying",
	"terrible", "horrible", "awful", "bad", "worst", "sad", "cry",
	"crying", "hurt", "hurts", "pain", "painful", "lonely", "alone",
	"sorry", "disappointed", "disappointing", "upset", "depressed",
	"fight", "fighting", "argue", "argument", "liar", "lie", "lied",
	"betrayed", "ignore", "ignored", "ignoring", "stupid", "idiot",
	"broken", "fail", "failed", "failure", "afraid", "scared", "fear",
	"sick", "tired", "exhausted", "problem", "wrong", "nightmare",
)
