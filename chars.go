package kokoro

// Character classification tables for the boundary scanner. Exact membership
// matters: the scanner treats anything outside these sets as ordinary text.

// terminators are the characters that can end a sentence.
var terminators = map[rune]bool{
	'.':  true,
	'!':  true,
	'?':  true,
	'…':  true,
	'。': true,
	'？': true,
	'！': true,
	'\n': true,
}

// trailingChars attach to a preceding terminator without being terminators
// themselves: closing quotes and brackets that belong to the sentence they
// close, as in `He left."`.
var trailingChars = map[rune]bool{
	'"':  true,
	'\'': true,
	'’':  true,
	'”':  true,
	')':  true,
	']':  true,
	'}':  true,
	'»':  true,
	'›':  true,
	'」': true,
	'』': true,
	'〉': true,
	'》': true,
	'】': true,
	'〕': true,
}

// closerToOpener maps each closing bracket or paired quote to its opener.
// The straight quotes `"` and `'` are not here; they toggle instead.
var closerToOpener = map[rune]rune{
	')':  '(',
	']':  '[',
	'}':  '{',
	'»':  '«',
	'›':  '‹',
	'”':  '“',
	'’':  '‘',
	'」': '「',
	'』': '『',
	'〉': '〈',
	'》': '《',
	'】': '【',
	'〕': '〔',
}

var openers = func() map[rune]bool {
	m := make(map[rune]bool, len(closerToOpener))
	for _, opener := range closerToOpener {
		m[opener] = true
	}
	return m
}()
