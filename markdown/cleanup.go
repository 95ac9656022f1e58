// Package markdown post-processes rendered markdown text: the ordered
// cleanup passes that remove residual Medium artifacts, and the
// frontmatter header handling.
package markdown

import (
	"regexp"
	"strings"

	"github.com/fwojciec/medium2dev"
)

// Pass is a pure text-to-text transformation. The cleanup sequence is a
// fixed, explicitly ordered list of passes composed by sequential
// application; each is independently testable.
type Pass func(string) string

// DefaultImagePrefix is the relative path prefix identifying localized
// image references.
const DefaultImagePrefix = "images/"

// defaultAuthorNames are author-attribution link texts stripped from the
// document start. Tuned to the source publication; override with
// WithAuthorNames.
var defaultAuthorNames = []string{"Vivek V"}

// defaultFooterMarkers start the community footer block; everything from
// a marker to end of document is removed. Override with WithFooterMarkers.
var defaultFooterMarkers = []string{
	"# In Plain English",
	"_Thank you for being a part of the_",
}

// Ensure Cleaner implements medium2dev.Cleaner at compile time.
var _ medium2dev.Cleaner = (*Cleaner)(nil)

// Cleaner applies the cleanup passes in their documented order. Order
// matters: the footer removal must precede the blank-line collapse, and
// the document-start strips rely on anchoring that earlier passes must
// not disturb.
type Cleaner struct {
	imagePrefix   string
	authorNames   []string
	footerMarkers []string
	passes        []Pass
}

// CleanerOption configures a Cleaner.
type CleanerOption func(*Cleaner)

// WithImagePrefix sets the relative prefix identifying localized images.
// Defaults to DefaultImagePrefix.
func WithImagePrefix(prefix string) CleanerOption {
	return func(c *Cleaner) {
		c.imagePrefix = prefix
	}
}

// WithAuthorNames overrides the author-attribution link texts stripped
// from the document start.
func WithAuthorNames(names ...string) CleanerOption {
	return func(c *Cleaner) {
		c.authorNames = names
	}
}

// WithFooterMarkers overrides the footer markers that cut the document.
func WithFooterMarkers(markers ...string) CleanerOption {
	return func(c *Cleaner) {
		c.footerMarkers = markers
	}
}

// NewCleaner creates a Cleaner with the documented pass sequence.
func NewCleaner(opts ...CleanerOption) *Cleaner {
	c := &Cleaner{
		imagePrefix:   DefaultImagePrefix,
		authorNames:   defaultAuthorNames,
		footerMarkers: defaultFooterMarkers,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.passes = []Pass{
		CollapseEmptyFences,
		NormalizeLocalImageRefs(c.imagePrefix),
		NewlineBeforeHeadings,
		stabilize(RemovePlatformFooterLinks),
		StripInteractionFragments,
		StripLeadingBoilerplate,
		ReformatCodeLinks,
		RemoveFooterSections(c.footerMarkers),
		StripLeadingAuthorLinks(c.authorNames),
		CollapseBlankLines,
		DropLeadingSeparatorLines,
		stabilize(RemoveSeparatorLines),
	}

	return c
}

// Clean applies the full pass sequence. Applying Clean to its own output
// yields the same text.
func (c *Cleaner) Clean(markdown string) string {
	for _, pass := range c.passes {
		markdown = pass(markdown)
	}
	return markdown
}

// stabilize reapplies a pass until its output stops changing, so that
// adjacent matches sharing a boundary newline are all consumed.
func stabilize(p Pass) Pass {
	return func(s string) string {
		for range 100 {
			next := p(s)
			if next == s {
				return s
			}
			s = next
		}
		return s
	}
}

var emptyFence = regexp.MustCompile("```\n\\s*```")

// CollapseEmptyFences removes fenced code blocks with no content.
func CollapseEmptyFences(s string) string {
	return emptyFence.ReplaceAllString(s, "")
}

var imageRef = regexp.MustCompile(`!\[.*?\]\((.*?)\)`)

// NormalizeLocalImageRefs rewrites image references under the local
// image-folder prefix to the fixed generic alt-text form, leaving other
// image references untouched.
func NormalizeLocalImageRefs(prefix string) Pass {
	return func(s string) string {
		return imageRef.ReplaceAllStringFunc(s, func(m string) string {
			path := imageRef.FindStringSubmatch(m)[1]
			if strings.HasPrefix(path, prefix) {
				return "![Image](" + path + ")"
			}
			return m
		})
	}
}

// The preceding character must not be a hash so that the tail of a
// multi-hash marker already at line start is not split off.
var unanchoredHeading = regexp.MustCompile(`([^\n#])(#{1,6} )`)

// NewlineBeforeHeadings ensures a heading marker not already at the
// start of a line is preceded by a newline.
func NewlineBeforeHeadings(s string) string {
	return unanchoredHeading.ReplaceAllString(s, "${1}\n${2}")
}

var platformFooterLink = regexp.MustCompile(`\n\s*\[.*?\]\(https?://medium\.com/.*?\)\s*\n`)

// RemovePlatformFooterLinks drops footer link lines pointing back to the
// source platform's domain.
func RemovePlatformFooterLinks(s string) string {
	return platformFooterLink.ReplaceAllString(s, "\n\n")
}

var (
	clapCount     = regexp.MustCompile(`\d+\s*claps?`)
	followMinRead = regexp.MustCompile(`Follow\s*\d+\s*min read`)
)

// StripInteractionFragments removes clap-count and "Follow ... min read"
// UI fragments anywhere in the text.
func StripInteractionFragments(s string) string {
	s = clapCount.ReplaceAllString(s, "")
	return followMinRead.ReplaceAllString(s, "")
}

var leadingBoilerplate = []*regexp.Regexp{
	regexp.MustCompile(`^\s*--\s*\n+\d+\s*\n+Listen\s*\n+Share\s*\n+`),
	regexp.MustCompile(`^\s*--\s*\n+\d+\s*\n+`),
	regexp.MustCompile(`^\s*·\s*\n+`),
	regexp.MustCompile(`^\s*\\--\s*\n+`),
}

// StripLeadingBoilerplate removes the separator/number/Listen/Share
// sequence, and its simpler variants, from the very start of the
// document.
func StripLeadingBoilerplate(s string) string {
	for _, re := range leadingBoilerplate {
		s = re.ReplaceAllString(s, "")
	}
	return s
}

var codeWrappedLink = regexp.MustCompile("`\\[(.*?)\\]\\((.*?)\\)`")

// ReformatCodeLinks turns an inline code span wrapping a link into a
// link wrapping an inline code span.
func ReformatCodeLinks(s string) string {
	return codeWrappedLink.ReplaceAllString(s, "[`${1}`](${2})")
}

// RemoveFooterSections cuts the document at the first occurrence of any
// footer marker, removing everything from the marker to end of text.
func RemoveFooterSections(markers []string) Pass {
	res := make([]*regexp.Regexp, len(markers))
	for i, m := range markers {
		res[i] = regexp.MustCompile(`(?s)` + regexp.QuoteMeta(m) + `.*`)
	}
	return func(s string) string {
		for _, re := range res {
			s = re.ReplaceAllString(s, "")
		}
		return s
	}
}

// StripLeadingAuthorLinks removes known author-attribution link lines at
// the document start: the bare empty-text form, then one per configured
// author name.
func StripLeadingAuthorLinks(names []string) Pass {
	res := []*regexp.Regexp{
		regexp.MustCompile(`^\s*\[\]\(https://.*?medium\.com/.*?\)\s*\n+`),
	}
	for _, name := range names {
		res = append(res, regexp.MustCompile(`^\s*\[`+regexp.QuoteMeta(name)+`\]\(https://.*?medium\.com/.*?\)\s*\n+`))
	}
	return func(s string) string {
		for _, re := range res {
			s = re.ReplaceAllString(s, "")
		}
		return s
	}
}

var excessBlankLines = regexp.MustCompile(`\n{3,}`)

// CollapseBlankLines reduces runs of three or more newlines to exactly
// two.
func CollapseBlankLines(s string) string {
	return excessBlankLines.ReplaceAllString(s, "\n\n")
}

// DropLeadingSeparatorLines removes leading lines consisting solely of a
// separator marker or middle dot, repeated until the first substantive
// line.
func DropLeadingSeparatorLines(s string) string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 {
		switch strings.TrimSpace(lines[0]) {
		case "·", "--", `\--`:
			lines = lines[1:]
		default:
			return strings.Join(lines, "\n")
		}
	}
	return strings.Join(lines, "\n")
}

var (
	escapedSeparatorLine = regexp.MustCompile(`\n\\--\n`)
	separatorLine        = regexp.MustCompile(`\n--\n`)
)

// RemoveSeparatorLines removes any remaining isolated separator-marker
// lines. Substitution can merge surrounding blank lines, so the result
// is collapsed again to keep the full sequence idempotent.
func RemoveSeparatorLines(s string) string {
	s = escapedSeparatorLine.ReplaceAllString(s, "\n\n")
	s = separatorLine.ReplaceAllString(s, "\n\n")
	return CollapseBlankLines(s)
}
