package markdown

import "regexp"

// externalLink matches a rendered anchor whose href is an absolute URL:
// a lowercase-letter scheme followed by "://". Relative links and
// scheme-less anchors never match.
var externalLink = regexp.MustCompile(`<a href="[a-z][a-z0-9+.\-]*://[^"]*"`)

// AugmentExternalLinks marks every external link in rendered markup so it
// opens in a new browsing context.
func AugmentExternalLinks(markup string) string {
	return externalLink.ReplaceAllString(markup, `$0 target="_blank"`)
}
