// Copyright 2024-2026 Aiku AI

package discordfmt

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

var fuzzSeeds = []string{
	"",
	"plain text",
	"**Bold** text",
	"*italic*",
	"***both***",
	"__under__",
	"__*ui*__",
	"__**ub**__",
	"__***all***__",
	"~~strike~~",
	"||spoiler||",
	"`code`",
	"```go\nfmt.Println(1)\n```",
	"``` `nested` ```",
	"# h1\n###### h6",
	"[text](https://example.com)",
	"<@123> <@!456> <@&789> <#1011>",
	"<:fire:1> <a:party:2> <:unknown:3>",
	"@everyone @here",
	"> quote\n>>> multi\nline",
	"unbalanced ** markers * here _",
	"a_b.c!d(e)f[g]h{i}j|k~l#m",
	"***",
	"||",
	"\\already \\*escaped\\*",
	"émoji 🔥 ünïcode",
	string([]byte{0x00, 0xff}),
}

// ---------------------------------------------------------------------------
// FuzzTokenize — the lossless partition invariant: slices must cover the
// source in increasing, gap-free order and reproduce it exactly. No input
// should cause a panic.
// ---------------------------------------------------------------------------

func FuzzTokenize(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, source string) {
		slices := Tokenize(source)
		if source == "" && len(slices) != 0 {
			t.Fatalf("empty source yielded %d slices", len(slices))
		}
		pos := 0
		var b strings.Builder
		for i, s := range slices {
			if s.Start != pos {
				t.Fatalf("slice %d starts at %d, want %d (input %q)", i, s.Start, pos, source)
			}
			if s.Raw != source[s.Start:s.End] {
				t.Fatalf("slice %d raw %q != span %q (input %q)", i, s.Raw, source[s.Start:s.End], source)
			}
			b.WriteString(s.Raw)
			pos = s.End
		}
		if b.String() != source {
			t.Fatalf("partition lost data: %q != %q", b.String(), source)
		}
	})
}

// ---------------------------------------------------------------------------
// FuzzConvert — conversion must never panic, must be deterministic, and
// must emit paired entity markers outside code spans and link URLs.
// ---------------------------------------------------------------------------

func FuzzConvert(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}
	rctx := &ResolutionContext{
		Users:    map[string]string{"123": "alice"},
		Channels: map[string]string{"1011": "general"},
	}
	f.Fuzz(func(t *testing.T, source string) {
		formatter := New(Config{}, zerolog.Nop())
		out := formatter.Convert(source, rctx)
		if out2 := formatter.Convert(source, rctx); out2 != out {
			t.Fatalf("non-deterministic: %q then %q for input %q", out, out2, source)
		}
		assertEntityPairing(t, source, out)
	})
}

// assertEntityPairing counts unescaped *, _, ~ and | outside code spans
// and link URLs; MarkdownV2 requires each to occur an even number of
// times, or Telegram rejects the message.
func assertEntityPairing(t *testing.T, source, out string) {
	t.Helper()
	counts := map[byte]int{'*': 0, '_': 0, '~': 0, '|': 0}
	inFence := false
	inCode := false
	i := 0
	for i < len(out) {
		c := out[i]
		switch {
		case c == '\\' && i+1 < len(out):
			i += 2
		case strings.HasPrefix(out[i:], "```"):
			inFence = !inFence
			i += 3
		case c == '`' && !inFence:
			inCode = !inCode
			i++
		case inFence || inCode:
			i++
		case c == ']' && i+1 < len(out) && out[i+1] == '(':
			// Skip the URL part of an inline link; only backslash and
			// the closing parenthesis are escaped there.
			i += 2
			for i < len(out) && out[i] != ')' {
				if out[i] == '\\' {
					i++
				}
				i++
			}
			i++
		default:
			if _, ok := counts[c]; ok {
				counts[c]++
			}
			i++
		}
	}
	for marker, n := range counts {
		if n%2 != 0 {
			t.Fatalf("marker %q appears %d times (odd) in output %q for input %q",
				marker, n, out, source)
		}
	}
}

// ---------------------------------------------------------------------------
// FuzzLookupEmoji — must never panic and must be deterministic; short keys
// must never match by substring.
// ---------------------------------------------------------------------------

func FuzzLookupEmoji(f *testing.F) {
	f.Add("fire")
	f.Add("blob_fire")
	f.Add("unincloud")
	f.Add("x_axis")
	f.Add("")
	f.Add("FIRE")
	f.Add(string([]byte{0x00}))
	f.Fuzz(func(t *testing.T, name string) {
		glyph, ok := lookupEmoji(name)
		glyph2, ok2 := lookupEmoji(name)
		if glyph != glyph2 || ok != ok2 {
			t.Fatalf("non-deterministic: (%q,%v) then (%q,%v) for %q", glyph, ok, glyph2, ok2, name)
		}
		if ok && glyph == "" {
			t.Fatalf("lookupEmoji(%q) matched but returned empty glyph", name)
		}
	})
}
