package fairness

// genderedTerms are matched as whole tokens against the profile free text
var genderedTerms = []string{
	"he", "him", "his", "himself",
	"she", "her", "hers", "herself",
	"chairman", "chairwoman",
	"salesman", "saleswoman",
	"businessman", "businesswoman",
	"manpower", "mankind",
	"craftsman", "foreman",
}

// culturalIdioms are non-inclusive phrases matched as substrings
var culturalIdioms = []string{
	"native speaker",
	"native english",
	"cultural fit",
	"work hard play hard",
	"young and dynamic",
	"digital native",
	"ninja",
	"rockstar",
	"guru",
	"wizard",
}

// prestigeTerms signal reliance on institutional prestige rather than
// demonstrated skill
var prestigeTerms = []string{
	"ivy league",
	"prestigious",
	"elite",
	"top-tier",
	"top tier",
	"world-class",
	"renowned",
	"exclusive",
}
