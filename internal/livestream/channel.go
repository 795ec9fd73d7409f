// Package livestream holds the stream-embed configuration shared between
// the builder's stream section and the published-page viewer. The admin
// side edits the file; a running viewer picks the change up through the
// file watcher.
package livestream

import (
	"fmt"
	"net/url"
	"strings"
)

// Path segments on the streaming platform that are pages, not channels.
// A profile URL whose first segment is one of these carries no channel.
var reservedSegments = map[string]struct{}{
	"videos":    {},
	"directory": {},
	"downloads": {},
	"jobs":      {},
	"p":         {},
	"search":    {},
	"settings":  {},
}

// ExtractChannel accepts either a bare channel name or a full profile URL
// and returns the channel name. For URLs the first path segment is the
// channel, unless it is a reserved platform page, in which case extraction
// fails and the caller suppresses the embed.
func ExtractChannel(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}

	if !strings.Contains(input, "/") && !strings.Contains(input, ".") {
		return input, true
	}

	raw := input
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	segment := strings.Trim(u.Path, "/")
	if i := strings.Index(segment, "/"); i >= 0 {
		segment = segment[:i]
	}
	if segment == "" {
		return "", false
	}
	if _, reserved := reservedSegments[strings.ToLower(segment)]; reserved {
		return "", false
	}
	return segment, true
}

// EmbedURL builds the player URL for a channel. The parent domain is
// required by the platform's embed policy.
func EmbedURL(channel, parent string) string {
	return fmt.Sprintf("https://player.twitch.tv/?channel=%s&parent=%s",
		url.QueryEscape(channel), url.QueryEscape(parent))
}
