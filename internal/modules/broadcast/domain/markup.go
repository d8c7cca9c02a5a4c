package domain

import (
	"regexp"
	"strings"

	"github.com/samber/oops"
	"golang.org/x/net/html"
)

// Tags the Bot API accepts in HTML parse mode.
var allowedTags = map[string]bool{
	"b": true, "strong": true, "i": true, "em": true, "u": true, "ins": true,
	"s": true, "strike": true, "del": true, "span": true, "tg-spoiler": true,
	"a": true, "code": true, "pre": true, "blockquote": true, "tg-emoji": true,
}

var entityPattern = regexp.MustCompile(`^&(lt|gt|amp|quot|#[0-9]+|#x[0-9a-fA-F]+);`)

// CheckMarkup reports whether the ad text would be rejected by Telegram's HTML
// parse mode: unknown or unbalanced tags, or a bare <, > or & outside a tag.
func (a Ad) CheckMarkup() error {
	return checkMarkup(a.Text)
}

func checkMarkup(text string) error {
	var open []string
	z := html.NewTokenizer(strings.NewReader(text))

	for {
		switch z.Next() {
		case html.ErrorToken:
			if len(open) > 0 {
				return oops.With("tag", open[len(open)-1]).Errorf("unclosed <%s>", open[len(open)-1])
			}
			return nil

		case html.TextToken:
			if err := checkText(string(z.Raw())); err != nil {
				return err
			}

		case html.StartTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if !allowedTags[tag] {
				return oops.With("tag", tag).Errorf("unsupported tag <%s>", tag)
			}
			open = append(open, tag)

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if len(open) == 0 || open[len(open)-1] != tag {
				return oops.With("tag", tag).Errorf("unexpected </%s>", tag)
			}
			open = open[:len(open)-1]

		default:
			return oops.Errorf("unsupported markup %q", string(z.Raw()))
		}
	}
}

func checkText(raw string) error {
	if i := strings.IndexAny(raw, "<>"); i >= 0 {
		return oops.With("offset", i).Errorf("bare %q must be escaped", raw[i])
	}
	for i := strings.IndexByte(raw, '&'); i >= 0; i = strings.IndexByte(raw, '&') {
		if !entityPattern.MatchString(raw[i:]) {
			return oops.With("offset", i).Errorf("bare '&' must be escaped")
		}
		raw = raw[i+1:]
	}
	return nil
}
