package dedupe

import "regexp"

var wikiTypeRe = regexp.MustCompile(`\.wiki([^./]*)\.`)

// ExtractWikiType returns the article family of a Wikimedia URL: the text
// between ".wiki" and the next ".". "https://de.wikipedia.org/wiki/Foo" gives
// "pedia"; a URL without such a host segment gives "".
func ExtractWikiType(article string) string {
	m := wikiTypeRe.FindStringSubmatch(article)
	if m == nil {
		return ""
	}
	return m[1]
}
