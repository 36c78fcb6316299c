// Copyright 2024-2026 Aiku AI

package discordfmt

import (
	"regexp"
	"sort"
)

// Kind identifies the markup construct a Slice was tokenized as.
type Kind int

const (
	KindPlainText Kind = iota
	KindBold
	KindItalic
	KindBoldItalic
	KindUnderline
	KindUnderlineBold
	KindUnderlineItalic
	KindUnderlineBoldItalic
	KindStrikethrough
	KindSpoiler
	KindCodeBlock
	KindInlineCode
	KindHeading1
	KindHeading2
	KindHeading3
	KindHeading4
	KindHeading5
	KindHeading6
	KindLink
	KindUserMention
	KindRoleMention
	KindChannelMention
	KindCustomEmoji
	KindBlockQuote
	KindMultiLineQuote
	KindEveryoneMention
	KindHereMention
)

var kindNames = map[Kind]string{
	KindPlainText:           "PlainText",
	KindBold:                "Bold",
	KindItalic:              "Italic",
	KindBoldItalic:          "BoldItalic",
	KindUnderline:           "Underline",
	KindUnderlineBold:       "UnderlineBold",
	KindUnderlineItalic:     "UnderlineItalic",
	KindUnderlineBoldItalic: "UnderlineBoldItalic",
	KindStrikethrough:       "Strikethrough",
	KindSpoiler:             "Spoiler",
	KindCodeBlock:           "CodeBlock",
	KindInlineCode:          "InlineCode",
	KindHeading1:            "Heading1",
	KindHeading2:            "Heading2",
	KindHeading3:            "Heading3",
	KindHeading4:            "Heading4",
	KindHeading5:            "Heading5",
	KindHeading6:            "Heading6",
	KindLink:                "Link",
	KindUserMention:         "UserMention",
	KindRoleMention:         "RoleMention",
	KindChannelMention:      "ChannelMention",
	KindCustomEmoji:         "CustomEmoji",
	KindBlockQuote:          "BlockQuote",
	KindMultiLineQuote:      "MultiLineQuote",
	KindEveryoneMention:     "EveryoneMention",
	KindHereMention:         "HereMention",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Slice is a typed, non-overlapping span of the source text. Tokenize
// produces slices in increasing, gap-free order over the whole input, so
// concatenating Raw over all slices reproduces the source exactly.
type Slice struct {
	Kind     Kind
	Start    int
	End      int
	Raw      string
	Captures []string
}

// grammar binds a construct regex to the slice kind it produces. Grammar
// order is the tokenizer priority order: when two candidate matches start
// at the same offset, the earlier grammar wins.
type grammar struct {
	kind Kind
	re   *regexp.Regexp
}

// grammars lists the recognized Discord markup constructs from most
// specific to most generic: fenced code before inline code, deeper marker
// combinations before shallower ones, headings by descending level, then
// links, mentions, custom emoji, quotes, and broadcast mentions last.
var grammars = []grammar{
	{KindCodeBlock, regexp.MustCompile("(?s)```(?:([A-Za-z0-9_+.#-]+)\n)?(.*?)```")},
	{KindInlineCode, regexp.MustCompile("`([^`\n]+)`")},
	{KindUnderlineBoldItalic, regexp.MustCompile(`(?s)__\*\*\*(.+?)\*\*\*__`)},
	{KindUnderlineBold, regexp.MustCompile(`(?s)__\*\*(.+?)\*\*__`)},
	{KindUnderlineItalic, regexp.MustCompile(`(?s)__\*(.+?)\*__`)},
	{KindBoldItalic, regexp.MustCompile(`(?s)\*\*\*(.+?)\*\*\*`)},
	{KindBold, regexp.MustCompile(`(?s)\*\*(.+?)\*\*`)},
	{KindUnderline, regexp.MustCompile(`(?s)__(.+?)__`)},
	{KindItalic, regexp.MustCompile(`\*([^*\n]+)\*`)},
	{KindStrikethrough, regexp.MustCompile(`(?s)~~(.+?)~~`)},
	{KindSpoiler, regexp.MustCompile(`(?s)\|\|(.+?)\|\|`)},
	{KindHeading6, regexp.MustCompile(`(?m)^###### (.+)$`)},
	{KindHeading5, regexp.MustCompile(`(?m)^##### (.+)$`)},
	{KindHeading4, regexp.MustCompile(`(?m)^#### (.+)$`)},
	{KindHeading3, regexp.MustCompile(`(?m)^### (.+)$`)},
	{KindHeading2, regexp.MustCompile(`(?m)^## (.+)$`)},
	{KindHeading1, regexp.MustCompile(`(?m)^# (.+)$`)},
	{KindLink, regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)},
	{KindUserMention, regexp.MustCompile(`<@!?(\d+)>`)},
	{KindRoleMention, regexp.MustCompile(`<@&(\d+)>`)},
	{KindChannelMention, regexp.MustCompile(`<#(\d+)>`)},
	{KindCustomEmoji, regexp.MustCompile(`<a?:(\w+):(\d+)>`)},
	{KindMultiLineQuote, regexp.MustCompile(`(?ms)^>>> (.+)\z`)},
	{KindBlockQuote, regexp.MustCompile(`(?m)^> (.+)$`)},
	{KindEveryoneMention, regexp.MustCompile(`@everyone`)},
	{KindHereMention, regexp.MustCompile(`@here`)},
}

// candidate is one grammar match inside the pooled candidate list.
type candidate struct {
	start    int
	end      int
	priority int
	kind     Kind
	captures []string
}

// Tokenize partitions source into an ordered, non-overlapping, gap-free
// sequence of typed slices. Every grammar is matched over the whole input,
// the candidates are pooled and sorted by start offset with grammar
// priority as the tie-break, and overlaps are resolved greedily in a
// single pass over the sorted pool. Gaps between accepted matches become
// PlainText slices. An empty source yields a nil slice list; a source
// with no recognized constructs yields one PlainText slice.
func Tokenize(source string) []Slice {
	if source == "" {
		return nil
	}

	var pool []candidate
	for priority, g := range grammars {
		for _, loc := range g.re.FindAllStringSubmatchIndex(source, -1) {
			c := candidate{
				start:    loc[0],
				end:      loc[1],
				priority: priority,
				kind:     g.kind,
			}
			for i := 1; 2*i < len(loc); i++ {
				if loc[2*i] < 0 {
					c.captures = append(c.captures, "")
				} else {
					c.captures = append(c.captures, source[loc[2*i]:loc[2*i+1]])
				}
			}
			pool = append(pool, c)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].start != pool[j].start {
			return pool[i].start < pool[j].start
		}
		return pool[i].priority < pool[j].priority
	})

	var slices []Slice
	pos := 0
	for _, c := range pool {
		if c.start < pos {
			continue // overlaps an already-accepted match
		}
		if c.start > pos {
			slices = append(slices, plainSlice(source, pos, c.start))
		}
		slices = append(slices, Slice{
			Kind:     c.kind,
			Start:    c.start,
			End:      c.end,
			Raw:      source[c.start:c.end],
			Captures: c.captures,
		})
		pos = c.end
	}
	if pos < len(source) {
		slices = append(slices, plainSlice(source, pos, len(source)))
	}
	return slices
}

func plainSlice(source string, start, end int) Slice {
	return Slice{
		Kind:  KindPlainText,
		Start: start,
		End:   end,
		Raw:   source[start:end],
	}
}
