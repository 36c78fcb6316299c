// Copyright 2024-2026 Aiku AI

package discordfmt

import (
	"sort"
	"strings"

	"go.mau.fi/util/variationselector"
)

// emojiMap maps lowercase Discord emoji shortnames to Unicode glyphs.
// Custom emoji referenced by these names render natively on Telegram as
// the plain glyph instead of the raw <:name:id> token.
var emojiMap = map[string]string{
	"+1":               "\U0001f44d",
	"-1":               "\U0001f44e",
	"100":              "\U0001f4af",
	"airplane":         "✈️",
	"alien":            "\U0001f47d",
	"angry":            "\U0001f620",
	"art":              "\U0001f3a8",
	"bell":             "\U0001f514",
	"blush":            "\U0001f60a",
	"bomb":             "\U0001f4a3",
	"books":            "\U0001f4da",
	"brain":            "\U0001f9e0",
	"bug":              "\U0001f41b",
	"bulb":             "\U0001f4a1",
	"cake":             "\U0001f370",
	"calendar":         "\U0001f4c5",
	"camera":           "\U0001f4f7",
	"chart":            "\U0001f4c8",
	"checkered_flag":   "\U0001f3c1",
	"clap":             "\U0001f44f",
	"clock":            "\U0001f550",
	"cloud":            "☁️",
	"coffee":           "☕",
	"computer":         "\U0001f4bb",
	"confetti_ball":    "\U0001f38a",
	"construction":     "\U0001f6a7",
	"cool":             "\U0001f192",
	"crown":            "\U0001f451",
	"cry":              "\U0001f622",
	"dart":             "\U0001f3af",
	"dog":              "\U0001f436",
	"dollar":           "\U0001f4b5",
	"door":             "\U0001f6aa",
	"eagle":            "\U0001f985",
	"earth":            "\U0001f30d",
	"eggplant":         "\U0001f346",
	"eyes":             "\U0001f440",
	"facepalm":         "\U0001f926",
	"fire":             "\U0001f525",
	"fireworks":        "\U0001f386",
	"flag":             "\U0001f6a9",
	"flushed":          "\U0001f633",
	"gem":              "\U0001f48e",
	"ghost":            "\U0001f47b",
	"gift":             "\U0001f381",
	"grin":             "\U0001f601",
	"hammer":           "\U0001f528",
	"handshake":        "\U0001f91d",
	"heart":            "❤️",
	"heart_eyes":       "\U0001f60d",
	"hourglass":        "⌛",
	"joy":              "\U0001f602",
	"key":              "\U0001f511",
	"kiss":             "\U0001f48b",
	"laughing":         "\U0001f606",
	"lock":             "\U0001f512",
	"mag":              "\U0001f50d",
	"medal":            "\U0001f3c5",
	"melting_face":     "\U0001fae0",
	"moneybag":         "\U0001f4b0",
	"moon":             "\U0001f319",
	"muscle":           "\U0001f4aa",
	"mushroom":         "\U0001f344",
	"notebook":         "\U0001f4d3",
	"ok_hand":          "\U0001f44c",
	"party":            "\U0001f973",
	"peach":            "\U0001f351",
	"pensive":          "\U0001f614",
	"pizza":            "\U0001f355",
	"point_up":         "☝️",
	"poop":             "\U0001f4a9",
	"pray":             "\U0001f64f",
	"question":         "❓",
	"rage":             "\U0001f621",
	"rainbow":          "\U0001f308",
	"robot":            "\U0001f916",
	"rocket":           "\U0001f680",
	"rofl":             "\U0001f923",
	"salute":           "\U0001fae1",
	"scream":           "\U0001f631",
	"skull":            "\U0001f480",
	"sleeping":         "\U0001f634",
	"smile":            "\U0001f604",
	"smirk":            "\U0001f60f",
	"snowflake":        "❄️",
	"sob":              "\U0001f62d",
	"sparkles":         "✨",
	"star":             "⭐",
	"strawberry":       "\U0001f353",
	"sunglasses":       "\U0001f60e",
	"sunny":            "☀️",
	"sweat_smile":      "\U0001f605",
	"tada":             "\U0001f389",
	"thinking":         "\U0001f914",
	"thumbsdown":       "\U0001f44e",
	"thumbsup":         "\U0001f44d",
	"tools":            "\U0001f6e0\ufe0f",
	"trophy":           "\U0001f3c6",
	"unamused":         "\U0001f612",
	"upside_down":      "\U0001f643",
	"warning":          "⚠️",
	"wave":             "\U0001f44b",
	"white_check_mark": "✅",
	"wink":             "\U0001f609",
	"x":                "❌",
	"zap":              "⚡",
	"zipper_mouth":     "\U0001f910",
}

// substringMatchMinLength is the minimum table key length eligible for the
// substring fallback. Short keys like "x" or "+1" match far too many
// unrelated custom emoji names.
const substringMatchMinLength = 4

// emojiKeys holds the table keys eligible for substring matching, longest
// first so the most specific key wins deterministically.
var emojiKeys = func() []string {
	keys := make([]string, 0, len(emojiMap))
	for key := range emojiMap {
		if len(key) >= substringMatchMinLength {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// lookupEmoji resolves a Discord emoji shortname to a Unicode glyph. It
// tries an exact match first, then falls back to a guarded substring match:
// the key must be at least substringMatchMinLength long and must sit at a
// name boundary (prefix of the name, or adjacent to an underscore), never
// as a bare infix of an unrelated word. Returns false when nothing matches.
func lookupEmoji(name string) (string, bool) {
	name = strings.ToLower(name)
	if glyph, ok := emojiMap[name]; ok {
		return variationselector.Add(glyph), true
	}
	for _, key := range emojiKeys {
		idx := strings.Index(name, key)
		if idx < 0 {
			continue
		}
		atStart := idx == 0 || name[idx-1] == '_'
		end := idx + len(key)
		atEnd := end < len(name) && name[end] == '_'
		if atStart || atEnd {
			return variationselector.Add(emojiMap[key]), true
		}
	}
	return "", false
}
