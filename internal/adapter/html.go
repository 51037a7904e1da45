package adapter

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// extractBodyText returns the text content between the first <body> and
// </body> tags of an HTML page, with entities decoded and the contents of
// script and style elements dropped. Surrounding whitespace is trimmed.
func extractBodyText(r io.Reader) (string, error) {
	z := html.NewTokenizer(r)

	var (
		b        strings.Builder
		inBody   bool
		seenBody bool
		skip     int
	)

	for {
		switch z.Next() {
		case html.ErrorToken:
			if !errors.Is(z.Err(), io.EOF) {
				return "", z.Err()
			}
			if !seenBody {
				return "", ErrNoBody
			}
			return strings.TrimSpace(b.String()), nil

		case html.StartTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Body:
				if !seenBody {
					inBody, seenBody = true, true
				}
			case atom.Script, atom.Style:
				if inBody {
					skip++
				}
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Body:
				inBody = false
			case atom.Script, atom.Style:
				if skip > 0 {
					skip--
				}
			}

		case html.TextToken:
			if inBody && skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}
