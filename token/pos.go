package token

import (
	"fmt"
	"strconv"
)

// Pos identifies a byte offset into a source document and can render
// itself with a 1-based line and column plus a short context snippet,
// matching the error-location contract in spec.md §4.1 and §7.
type Pos struct {
	Off int
	Src []byte
}

func (p *Pos) LineCol() (line, col int) {
	line = 1
	lineStart := 0
	for i := 0; i < p.Off && i < len(p.Src); i++ {
		if p.Src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, p.Off - lineStart + 1
}

func (p *Pos) String() string {
	if p == nil {
		return "<unknown position>"
	}
	line, col := p.LineCol()
	lo := max(0, p.Off-10)
	hi := min(len(p.Src), p.Off+10)
	sample := strconv.Quote(string(p.Src[lo:hi]))
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("line %d, col %d (near %q)", line, col, sample)
}
