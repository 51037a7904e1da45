package render

import "regexp"

var levelAnnouncement = regexp.MustCompile(`#### YOU ARE NOW PLAYING LEVEL ([0-9]+) ####`)

// DetectLevel returns the level number of the last level announcement in
// text. ok is false when text announces no level.
func DetectLevel(text string) (level string, ok bool) {
	matches := levelAnnouncement.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return "", false
	}

	return matches[len(matches)-1][1], true
}
