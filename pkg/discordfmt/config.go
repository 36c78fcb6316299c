// Copyright 2024-2026 Aiku AI

package discordfmt

// Default mention stand-ins. Both are full-width, non-ASCII characters so
// the rewritten text can never trigger a real @-mention or channel link on
// Telegram.
const (
	DefaultMentionMarker = "＠" // ＠
	DefaultChannelMarker = "＃" // ＃
)

// Config holds the formatter configuration. It is passed explicitly to
// New instead of being read from process-wide state.
type Config struct {
	// Debug enables per-call trace logging on the formatter's logger.
	// Tracing is side-channel only and never alters the converted text.
	Debug bool `yaml:"debug"`
	// MentionMarker is prefixed to resolved user/role/everyone/here
	// mentions. Defaults to DefaultMentionMarker.
	MentionMarker string `yaml:"mention_marker"`
	// ChannelMarker is prefixed to resolved channel references.
	// Defaults to DefaultChannelMarker.
	ChannelMarker string `yaml:"channel_marker"`
}

// applyDefaults fills in zero-valued fields.
func (c *Config) applyDefaults() {
	if c.MentionMarker == "" {
		c.MentionMarker = DefaultMentionMarker
	}
	if c.ChannelMarker == "" {
		c.ChannelMarker = DefaultChannelMarker
	}
}
