// Package normalize holds the pure text helpers the kiosk uses to reconcile
// upstream catalog values. Every function is total: any input string yields a
// value, never a panic or an error.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Canonical day keys, in display order.
const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)

var DayOrder = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var dayAliases = map[string]string{
	"lunes":     Monday,
	"martes":    Tuesday,
	"miercoles": Wednesday,
	"jueves":    Thursday,
	"viernes":   Friday,
	"sabado":    Saturday,
	"domingo":   Sunday,
	Monday:      Monday,
	Tuesday:     Tuesday,
	Wednesday:   Wednesday,
	Thursday:    Thursday,
	Friday:      Friday,
	Saturday:    Saturday,
	Sunday:      Sunday,
}

var (
	nonSlugChars   = regexp.MustCompile(`[^a-z0-9]+`)
	procedureMatch = regexp.MustCompile(`(?i)proced|qx|quir|cirug`)
	hhmmPattern    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	hhmmssPattern  = regexp.MustCompile(`^(\d{1,2}):(\d{2}):\d{2}$`)
	compactTime    = regexp.MustCompile(`^\d{3,4}$`)
)

// StripDiacritics removes combining marks ("Miércoles" -> "Miercoles").
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Slugify turns a label into a URL-safe key. Slugify(Slugify(x)) == Slugify(x).
func Slugify(s string) string {
	s = strings.ToLower(StripDiacritics(s))
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// NormalizeDayKey maps Spanish or English day names to the canonical English
// key. Unknown input is returned lowercased.
func NormalizeDayKey(day string) string {
	lowered := strings.ToLower(strings.TrimSpace(day))
	if key, ok := dayAliases[StripDiacritics(lowered)]; ok {
		return key
	}
	return lowered
}

func IsCanonicalDay(key string) bool {
	return DayIndex(key) >= 0
}

// DayIndex returns the position of key in DayOrder, or -1.
func DayIndex(key string) int {
	for i, d := range DayOrder {
		if d == key {
			return i
		}
	}
	return -1
}

func IsProcedure(tipo string) bool {
	return procedureMatch.MatchString(tipo)
}

// IsConsulta is the complement of IsProcedure; anything that is not a
// procedure is shown as a consultation.
func IsConsulta(tipo string) bool {
	return !IsProcedure(tipo)
}

// ToHHmm canonicalizes "H:mm", "HH:mm", "HH:mm:ss" and compact "830"/"1330"
// into "HH:mm". Anything else is returned unchanged.
func ToHHmm(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return value
	}
	if m := hhmmssPattern.FindStringSubmatch(v); m != nil {
		return pad2(m[1]) + ":" + m[2]
	}
	if m := hhmmPattern.FindStringSubmatch(v); m != nil {
		return pad2(m[1]) + ":" + m[2]
	}
	if compactTime.MatchString(v) {
		padded := strings.Repeat("0", 4-len(v)) + v
		return padded[:2] + ":" + padded[2:]
	}
	return value
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// DecodeTipo expands the one-letter visit type code.
func DecodeTipo(code string) string {
	switch c := strings.ToUpper(strings.TrimSpace(code)); c {
	case "C":
		return "Consulta"
	case "P":
		return "Procedimiento"
	default:
		return c
	}
}

// BuildingDisplayName labels the two known towers; other codes pass through verbatim.
func BuildingDisplayName(code string) string {
	switch strings.TrimSpace(code) {
	case "":
		return "No especificado"
	case "1":
		return "Principal"
	case "2":
		return "Torre Bless"
	default:
		return code
	}
}
