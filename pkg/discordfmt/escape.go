// Copyright 2024-2026 Aiku AI

package discordfmt

import "strings"

// textEscaper escapes every character the Telegram MarkdownV2 parser
// reserves outside of entities. The backslash pair must come first so an
// input backslash is not re-escaped by a later rule.
var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	`_`, `\_`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`(`, `\(`,
	`)`, `\)`,
	`~`, `\~`,
	"`", "\\`",
	`>`, `\>`,
	`#`, `\#`,
	`+`, `\+`,
	`-`, `\-`,
	`=`, `\=`,
	`|`, `\|`,
	`{`, `\{`,
	`}`, `\}`,
	`.`, `\.`,
	`!`, `\!`,
)

// codeEscaper escapes the only two characters MarkdownV2 reserves inside
// pre and code entities.
var codeEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
)

// linkEscaper escapes the only two characters MarkdownV2 reserves inside
// the URL part of an inline link.
var linkEscaper = strings.NewReplacer(
	`\`, `\\`,
	`)`, `\)`,
)

// EscapeText escapes all MarkdownV2 reserved characters in a plain-text
// run so Telegram renders it verbatim. Total on all inputs.
func EscapeText(text string) string {
	return textEscaper.Replace(text)
}

// EscapeCode escapes a code span or code block body. Only backslash and
// backtick are reserved inside code entities.
func EscapeCode(text string) string {
	return codeEscaper.Replace(text)
}

// EscapeLinkURL escapes an inline link URL. Only backslash and closing
// parenthesis are reserved inside the URL part.
func EscapeLinkURL(url string) string {
	return linkEscaper.Replace(url)
}
