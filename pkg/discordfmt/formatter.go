// Copyright 2024-2026 Aiku AI

package discordfmt

import (
	"strings"

	"github.com/rs/zerolog"
)

// Formatter converts Discord-flavored markdown to Telegram MarkdownV2.
// It holds no mutable state across calls, so a single instance is safe
// for concurrent use.
type Formatter struct {
	cfg Config
	log zerolog.Logger

	// tokenize is swappable so tests can inject malformed slices into
	// the fail-safe path.
	tokenize func(string) []Slice
}

// New creates a Formatter with the given configuration. Tracing goes to
// log and never alters the converted text.
func New(cfg Config, log zerolog.Logger) *Formatter {
	cfg.applyDefaults()
	return &Formatter{
		cfg:      cfg,
		log:      log,
		tokenize: Tokenize,
	}
}

// Convert rewrites Discord markdown as Telegram MarkdownV2 suitable for
// parse_mode=MarkdownV2 submission. rctx may be nil; mentions then resolve
// to synthetic names. Convert never fails: if structural conversion cannot
// complete, the whole call degrades to a flat escape of the source so the
// caller still receives syntactically valid MarkdownV2.
func (f *Formatter) Convert(source string, rctx *ResolutionContext) (out string) {
	defer func() {
		if r := recover(); r != nil {
			f.log.Error().
				Interface("panic", r).
				Msg("Markup conversion failed, degrading to escaped plain text")
			out = EscapeText(source)
		}
	}()

	slices := f.tokenize(source)
	var b strings.Builder
	b.Grow(len(source) + len(source)/4)
	for _, s := range slices {
		b.WriteString(f.convertSlice(s, rctx))
	}
	out = b.String()
	if f.cfg.Debug {
		f.log.Debug().
			Int("slices", len(slices)).
			Int("input_len", len(source)).
			Int("output_len", len(out)).
			Msg("Converted message markup")
	}
	return out
}

var defaultFormatter = New(Config{}, zerolog.Nop())

// Convert rewrites Discord markdown as Telegram MarkdownV2 using the
// default configuration. See [Formatter.Convert].
func Convert(source string, rctx *ResolutionContext) string {
	return defaultFormatter.Convert(source, rctx)
}
