package livestream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractChannel(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"bare name", "bracketcaster", "bracketcaster", true},
		{"full profile URL", "https://www.twitch.tv/bracketcaster", "bracketcaster", true},
		{"URL without scheme", "twitch.tv/bracketcaster", "bracketcaster", true},
		{"trailing slash", "https://twitch.tv/bracketcaster/", "bracketcaster", true},
		{"nested path keeps first segment", "https://twitch.tv/bracketcaster/videos", "bracketcaster", true},
		{"reserved videos page", "https://twitch.tv/videos/12345", "", false},
		{"reserved directory page", "https://twitch.tv/directory", "", false},
		{"reserved is case-insensitive", "https://twitch.tv/Search", "", false},
		{"domain only", "https://twitch.tv/", "", false},
		{"empty input", "", "", false},
		{"whitespace", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractChannel(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestEmbedURL(t *testing.T) {
	got := EmbedURL("bracketcaster", "cups.example.com")
	assert.Equal(t, "https://player.twitch.tv/?channel=bracketcaster&parent=cups.example.com", got)
}

func TestConfigEmbed(t *testing.T) {
	cfg := Config{Channel: "https://twitch.tv/bracketcaster", Enabled: true}
	got, ok := cfg.Embed("cups.example.com")
	assert.True(t, ok)
	assert.Contains(t, got, "channel=bracketcaster")

	cfg.Enabled = false
	_, ok = cfg.Embed("cups.example.com")
	assert.False(t, ok, "disabled config must not embed")

	cfg = Config{Channel: "https://twitch.tv/directory", Enabled: true}
	_, ok = cfg.Embed("cups.example.com")
	assert.False(t, ok, "reserved segment must suppress the embed")
}
