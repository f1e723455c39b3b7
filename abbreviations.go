package kokoro

// abbreviations holds lowercase tokens that do not end a sentence even when
// followed by a period. Keys carry no trailing period and no possessive
// suffix; membership is tested after stripping both (see isAbbreviation).
// The set is immutable and shared by all Splitter instances.
var abbreviations = map[string]bool{
	// Titles and honorifics.
	"mr": true, "mrs": true, "ms": true, "mx": true, "dr": true,
	"prof": true, "capt": true, "cpt": true, "col": true, "gen": true,
	"sen": true, "rep": true, "gov": true, "rev": true, "hon": true,
	"sgt": true, "maj": true, "lt": true, "fr": true, "pres": true,
	"atty": true, "supt": true, "det": true, "insp": true,
	"messrs": true, "mmes": true, "msgr": true,
	"sr": true, "jr": true, "esq": true,

	// Months.
	"jan": true, "feb": true, "mar": true, "apr": true, "jun": true,
	"jul": true, "aug": true, "sep": true, "sept": true, "oct": true,
	"nov": true, "dec": true,

	// Days.
	"mon": true, "tue": true, "tues": true, "wed": true, "thu": true,
	"thur": true, "thurs": true, "fri": true, "sat": true, "sun": true,

	// Units and measures.
	"oz": true, "lb": true, "lbs": true, "ft": true, "yd": true,
	"mi": true, "sq": true, "hr": true, "hrs": true, "sec": true,
	"gal": true, "qt": true, "pt": true, "tsp": true, "tbsp": true,

	// Latinisms and scholarly shorthand.
	"etc": true, "e.g": true, "i.e": true, "vs": true, "viz": true,
	"cf": true, "al": true, "ca": true, "approx": true, "est": true,
	"no": true, "nos": true, "a.m": true, "p.m": true,

	// Addresses and organizations.
	"st": true, "ave": true, "blvd": true, "rd": true, "hwy": true,
	"mt": true, "ste": true, "apt": true, "dept": true, "univ": true,
	"inc": true, "ltd": true, "corp": true, "co": true, "bros": true,

	// Reference shorthand.
	"fig": true, "figs": true, "vol": true, "vols": true, "pp": true,
	"pg": true, "ch": true,
}
