package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type entry struct {
	code2   string // ISO 639-1 (2-letter)
	code3   string // ISO 639-2 primary (3-letter)
	alt3    string // ISO 639-2 alternate (e.g. "fre" vs "fra")
	words   []string
}

var languages = []entry{
	{"en", "eng", "", []string{"english"}},
	{"es", "spa", "", []string{"spanish"}},
	{"fr", "fra", "fre", []string{"french"}},
	{"de", "deu", "ger", []string{"german"}},
	{"it", "ita", "", []string{"italian"}},
	{"pt", "por", "", []string{"portuguese"}},
	{"ja", "jpn", "", []string{"japanese"}},
	{"ko", "kor", "", []string{"korean"}},
	{"zh", "zho", "chi", []string{"chinese"}},
	{"ru", "rus", "", []string{"russian"}},
	{"ar", "ara", "", []string{"arabic"}},
	{"hi", "hin", "", []string{"hindi"}},
	{"nl", "nld", "dut", []string{"dutch"}},
	{"pl", "pol", "", []string{"polish"}},
	{"sv", "swe", "", []string{"swedish"}},
	{"da", "dan", "", []string{"danish"}},
	{"no", "nor", "", []string{"norwegian"}},
	{"fi", "fin", "", []string{"finnish"}},
	{"tr", "tur", "", []string{"turkish"}},
	{"uk", "ukr", "", []string{"ukrainian"}},
}

var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
	byWord  map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	byWord = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

// ToISO2 converts a recognized language code or word to ISO 639-1.
// Unrecognized two-letter codes pass through untouched so unusual but valid
// hints still reach the transcriber; anything else returns empty.
func ToISO2(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if e, ok := byCode2[code]; ok {
		return e.code2
	}
	if e, ok := byCode3[code]; ok {
		return e.code2
	}
	if e, ok := byWord[code]; ok {
		return e.code2
	}
	if len(code) == 2 {
		return code
	}
	return ""
}

// DisplayName renders an English display name for a language code, falling
// back to the raw code when it cannot be parsed.
func DisplayName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
