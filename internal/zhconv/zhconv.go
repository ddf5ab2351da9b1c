package zhconv

import (
	"fmt"

	"github.com/liuzl/gocc"
)

// Direction names an OpenCC conversion profile.
type Direction string

const (
	TradToSimp Direction = "t2s"
	SimpToTrad Direction = "s2t"
)

// Converter rewrites Chinese text between Traditional and Simplified
// scripts.
type Converter interface {
	Convert(text string) string
}

type openCCConverter struct {
	cc *gocc.OpenCC
}

// New builds an OpenCC-backed converter for the given direction.
func New(dir Direction) (Converter, error) {
	switch dir {
	case TradToSimp, SimpToTrad:
	default:
		return nil, fmt.Errorf("unsupported conversion direction %q: use t2s or s2t", dir)
	}
	cc, err := gocc.New(string(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenCC %s converter: %w", dir, err)
	}
	return &openCCConverter{cc: cc}, nil
}

// Convert returns the converted text, or the original text unchanged if
// conversion fails. Lyric timing must never be lost to a dictionary
// hiccup.
func (c *openCCConverter) Convert(text string) string {
	out, err := c.cc.Convert(text)
	if err != nil {
		return text
	}
	return out
}
