package layup

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
)

// Words splits s into words using Unicode word segmentation and returns a
// document that fills as many words per line as the render width allows,
// separated by single spaces. Surrounding whitespace is discarded.
func Words(s string) (*Doc, error) {
	var parts []any
	tokens := words.FromString(s)
	for tokens.Next() {
		tok := tokens.Value()
		if strings.TrimSpace(tok) == "" {
			continue
		}
		parts = append(parts, tok)
	}
	return Fill(parts...)
}

// Fill lays parts out left to right with single spaces, moving to a new line
// at the enclosing indent whenever the next part does not fit. Each decision
// is per part; earlier lines are never revisited.
func Fill(parts ...any) (*Doc, error) {
	docs, err := coerceAll(parts)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return Empty(), nil
	}
	space, err := Text(" ")
	if err != nil {
		return nil, err
	}
	acc := docs[0]
	for _, d := range docs[1:] {
		same := HorzDocs([]*Doc{space, d})
		next := VertDocs([]*Doc{Empty(), d})
		choice, err := IfFlat(same, next)
		if err != nil {
			return nil, err
		}
		acc = ConcatDocs([]*Doc{acc, choice})
	}
	return acc, nil
}

// Join concatenates parts horizontally with sep between each pair. The
// separator document is shared between all occurrences.
func Join(sep any, parts ...any) (*Doc, error) {
	s, err := coerce(sep)
	if err != nil {
		return nil, err
	}
	docs, err := coerceAll(parts)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return Empty(), nil
	}
	joined := make([]*Doc, 0, len(docs)*2-1)
	for i, d := range docs {
		if i > 0 {
			joined = append(joined, s)
		}
		joined = append(joined, d)
	}
	return HorzDocs(joined), nil
}

// Stack stacks parts vertically, one per line. It is Vert under a name that
// reads better next to Fill and Join.
func Stack(parts ...any) (*Doc, error) {
	return Vert(parts...)
}
