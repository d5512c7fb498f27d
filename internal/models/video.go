package models

import "regexp"

var (
	youtubeID = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([A-Za-z0-9_-]{11})`)
	vimeoID   = regexp.MustCompile(`(?:vimeo\.com/|player\.vimeo\.com/video/)(\d+)`)
)

// EmbedURL returns the player URL for a YouTube or Vimeo link, or "" when
// the link is not recognised.
func EmbedURL(link string) string {
	if m := youtubeID.FindStringSubmatch(link); m != nil {
		return "https://www.youtube.com/embed/" + m[1] + "?rel=0&modestbranding=1"
	}
	if m := vimeoID.FindStringSubmatch(link); m != nil {
		return "https://player.vimeo.com/video/" + m[1]
	}
	return ""
}

func (v Video) EmbedURL() string {
	return EmbedURL(v.URL)
}
