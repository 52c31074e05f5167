package synth

import "strings"

// Slug reduces a business name to the lowercase alphanumeric form used for
// email and website derivation: "&" becomes "and", "+" becomes "plus", and
// every other non-alphanumeric character is dropped.
func Slug(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "&", "and")
	s = strings.ReplaceAll(s, "+", "plus")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Email derives a contact address from a business name. The derivation is
// deterministic so email and website stay mutually consistent per record.
func Email(name string) string {
	return "info@" + Slug(name) + ".com"
}

// Website derives a URL from a business name.
func Website(name string) string {
	return "https://www." + Slug(name) + ".com"
}
