// Copyright 2024-2026 Aiku AI

package discordfmt

import (
	"regexp"
	"strings"
)

// Reference tokens that may appear inside formatting span content. Discord
// does not allow re-entrant formatting markers inside a span, so a single
// non-recursive pre-pass over these tokens is sufficient.
var (
	inlineRefRe  = regexp.MustCompile(`<@!?\d+>|<@&\d+>|<#\d+>|<a?:\w+:\d+>|@everyone|@here`)
	userTokenRe  = regexp.MustCompile(`^<@!?(\d+)>$`)
	roleTokenRe  = regexp.MustCompile(`^<@&(\d+)>$`)
	chanTokenRe  = regexp.MustCompile(`^<#(\d+)>$`)
	emojiTokenRe = regexp.MustCompile(`^<a?:(\w+):\d+>$`)
)

// convertSlice maps one typed slice to its MarkdownV2 representation.
// Total for every defined kind; an unknown kind degrades to the escaped
// raw text of the slice.
func (f *Formatter) convertSlice(s Slice, rctx *ResolutionContext) string {
	switch s.Kind {
	case KindPlainText:
		return EscapeText(s.Raw)
	case KindBold:
		return "*" + f.convertInline(s.Captures[0], rctx) + "*"
	case KindItalic:
		return "_" + f.convertInline(s.Captures[0], rctx) + "_"
	case KindBoldItalic:
		return "*_" + f.convertInline(s.Captures[0], rctx) + "_*"
	case KindUnderline:
		return "__" + f.convertInline(s.Captures[0], rctx) + "__"
	case KindUnderlineBold:
		return "__*" + f.convertInline(s.Captures[0], rctx) + "*__"
	case KindUnderlineItalic:
		return "___" + f.convertInline(s.Captures[0], rctx) + "___"
	case KindUnderlineBoldItalic:
		// MarkdownV2 has no four-way primitive. Nest bold+italic and
		// render the underline markers as escaped literals.
		return `*_\_` + f.convertInline(s.Captures[0], rctx) + `\__*`
	case KindStrikethrough:
		return "~" + f.convertInline(s.Captures[0], rctx) + "~"
	case KindSpoiler:
		return "||" + f.convertInline(s.Captures[0], rctx) + "||"
	case KindCodeBlock:
		lang, body := s.Captures[0], s.Captures[1]
		if lang != "" {
			return "```" + lang + "\n" + EscapeCode(body) + "```"
		}
		return "```" + EscapeCode(body) + "```"
	case KindInlineCode:
		return "`" + EscapeCode(s.Captures[0]) + "`"
	case KindHeading1, KindHeading2, KindHeading3:
		// Telegram has no headings; collapse the prominent levels to bold.
		return "*" + f.convertInline(s.Captures[0], rctx) + "*"
	case KindHeading4, KindHeading5, KindHeading6:
		level := 4 + int(s.Kind-KindHeading4)
		return strings.Repeat(`\#`, level) + " " + EscapeText(s.Captures[0])
	case KindLink:
		return "[" + f.convertInline(s.Captures[0], rctx) + "](" + EscapeLinkURL(s.Captures[1]) + ")"
	case KindUserMention:
		return f.cfg.MentionMarker + EscapeText(rctx.lookupUser(s.Captures[0]))
	case KindRoleMention:
		return f.cfg.MentionMarker + EscapeText(rctx.lookupRole(s.Captures[0]))
	case KindChannelMention:
		return f.cfg.ChannelMarker + EscapeText(rctx.lookupChannel(s.Captures[0]))
	case KindCustomEmoji:
		glyph, ok := lookupEmoji(s.Captures[0])
		if !ok {
			return ""
		}
		return glyph
	case KindBlockQuote:
		return ">" + EscapeText(s.Captures[0])
	case KindMultiLineQuote:
		return "**>" + EscapeText(s.Captures[0])
	case KindEveryoneMention:
		return f.cfg.MentionMarker + "everyone"
	case KindHereMention:
		return f.cfg.MentionMarker + "here"
	default:
		return EscapeText(s.Raw)
	}
}

// convertInline escapes formatting span content after resolving any
// embedded mention, custom emoji, or broadcast tokens. Resolved tokens are
// emitted already escaped and must not be escaped again.
func (f *Formatter) convertInline(text string, rctx *ResolutionContext) string {
	locs := inlineRefRe.FindAllStringIndex(text, -1)
	if locs == nil {
		return EscapeText(text)
	}
	var b strings.Builder
	pos := 0
	for _, loc := range locs {
		b.WriteString(EscapeText(text[pos:loc[0]]))
		b.WriteString(f.convertRef(text[loc[0]:loc[1]], rctx))
		pos = loc[1]
	}
	b.WriteString(EscapeText(text[pos:]))
	return b.String()
}

// convertRef rewrites a single reference token matched by inlineRefRe.
func (f *Formatter) convertRef(token string, rctx *ResolutionContext) string {
	switch {
	case token == "@everyone":
		return f.cfg.MentionMarker + "everyone"
	case token == "@here":
		return f.cfg.MentionMarker + "here"
	case roleTokenRe.MatchString(token):
		id := roleTokenRe.FindStringSubmatch(token)[1]
		return f.cfg.MentionMarker + EscapeText(rctx.lookupRole(id))
	case userTokenRe.MatchString(token):
		id := userTokenRe.FindStringSubmatch(token)[1]
		return f.cfg.MentionMarker + EscapeText(rctx.lookupUser(id))
	case chanTokenRe.MatchString(token):
		id := chanTokenRe.FindStringSubmatch(token)[1]
		return f.cfg.ChannelMarker + EscapeText(rctx.lookupChannel(id))
	case emojiTokenRe.MatchString(token):
		name := emojiTokenRe.FindStringSubmatch(token)[1]
		glyph, ok := lookupEmoji(name)
		if !ok {
			return ""
		}
		return glyph
	default:
		return EscapeText(token)
	}
}
