package format

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// classCodePattern matches a 2–4 letter subject code followed by a 3-digit
// course number, e.g. "CS 173" or "MATH 231".
var classCodePattern = regexp.MustCompile(`\b([A-Za-z]{2,4}) (\d{3})\b`)

// LinkifyClassCodes replaces class-code tokens in free text with anchors to
// the class-detail route, carrying subject+number and the fixed most-recent
// term parameter. The matched token is preserved verbatim as the link label;
// all other text is left untouched.
func LinkifyClassCodes(text, baseRoute string) string {
	return classCodePattern.ReplaceAllStringFunc(text, func(match string) string {
		sub := classCodePattern.FindStringSubmatch(match)
		href := fmt.Sprintf("%s?subject=%s&number=%s&term=latest",
			baseRoute,
			url.QueryEscape(strings.ToUpper(sub[1])),
			url.QueryEscape(sub[2]),
		)
		return fmt.Sprintf(`<a href="%s">%s</a>`, href, match)
	})
}
