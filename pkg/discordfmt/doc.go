// Copyright 2024-2026 Aiku AI

// Package discordfmt converts Discord-flavored markdown to Telegram
// MarkdownV2.
//
// MarkdownV2 is stricter than the Discord dialect: any reserved character
// left unescaped outside an entity, or any entity marker left unpaired,
// makes the Telegram Bot API reject the whole message. The two dialects
// also overlap lexically (both use *, _, ~ and backticks with different
// meanings), and Discord has constructs with no Telegram equivalent:
// user/role/channel mentions, custom emoji, broadcast mentions, and
// block quotes.
//
// # Core Types
//
// [Formatter] is the conversion engine. It tokenizes the source into a
// lossless sequence of typed [Slice] values, converts each slice, and
// joins the results. Any internal failure degrades the whole call to a
// flat escape of the source, so [Formatter.Convert] always returns text
// that is syntactically valid for parse_mode=MarkdownV2.
//
// [ResolutionContext] optionally maps Discord user/role/channel IDs to
// display names. Without it, mentions resolve to synthetic names like
// "User123456789". Resolved mentions are prefixed with a full-width
// marker character instead of a native mention, so forwarded text never
// pings anyone on Telegram.
//
// [Config] is passed explicitly to [New]; the engine reads no process-wide
// state and a single Formatter is safe for concurrent use.
//
// Custom emoji resolve against a compiled-in shortname table, first by
// exact match and then by a guarded substring match; unmatched emoji are
// dropped rather than forwarded as raw <:name:id> syntax.
package discordfmt
