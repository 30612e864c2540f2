// Package position implements the byte/line/column coordinate used
// throughout the lexer and span algebra: a [Position] pairs an absolute
// byte offset with a [Page] (line, column), ordered first by page and then
// by byte so that positions compose the way a cursor advancing through
// source text would expect.
package position

import "fmt"

// Page is a line/column pair. Field order matters: comparisons and the
// generated ordering go by line first, then column.
type Page struct {
	Line   int
	Column int
}

// ZeroPage is the start-of-source page.
var ZeroPage = Page{Line: 0, Column: 0}

// IsLineStart reports whether the page sits at the first column of its line.
func (p Page) IsLineStart() bool {
	return p.Column == 0
}

// Compare returns -1, 0, or 1 as p orders before, at, or after other,
// comparing by line then column.
func (p Page) Compare(other Page) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Column != other.Column {
		if p.Column < other.Column {
			return -1
		}
		return 1
	}
	return 0
}

// Add combines two relative page advances: a nonzero line in other resets
// the column to other's column; a zero line in other is column-additive.
// This lets a scanner return a page-relative advance that composes with
// an absolute cursor page.
func (p Page) Add(other Page) Page {
	if other.Line != 0 {
		return Page{Line: p.Line + other.Line, Column: other.Column}
	}
	return Page{Line: p.Line, Column: p.Column + other.Column}
}

func (p Page) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Position is a byte offset paired with its Page coordinate. The zero
// value is the start-of-source position.
type Position struct {
	Byte int
	Page Page
}

// Zero is the start-of-source position.
var Zero = Position{Byte: 0, Page: ZeroPage}

// New constructs a Position from a byte offset and a line/column pair.
func New(byte, line, column int) Position {
	return Position{Byte: byte, Page: Page{Line: line, Column: column}}
}

// IsZero reports whether p is the zero position.
func (p Position) IsZero() bool {
	return p == Zero
}

// IsLineStart reports whether p sits at the first column of its line.
func (p Position) IsLineStart() bool {
	return p.Page.IsLineStart()
}

// Line returns p's line number.
func (p Position) Line() int { return p.Page.Line }

// Column returns p's column number.
func (p Position) Column() int { return p.Page.Column }

// Compare orders positions by (line, column) and then by byte, matching
// the total order required of Position by the span algebra.
func (p Position) Compare(other Position) int {
	if c := p.Page.Compare(other.Page); c != 0 {
		return c
	}
	if p.Byte != other.Byte {
		if p.Byte < other.Byte {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether p orders strictly before other.
func (p Position) Less(other Position) bool { return p.Compare(other) < 0 }

// LessEqual reports whether p orders before or at other.
func (p Position) LessEqual(other Position) bool { return p.Compare(other) <= 0 }

// Add combines a relative advance with an absolute base position. A
// nonzero line in other resets the column; a zero line in other is
// column-additive. This is how the lexer composes a scanner's returned
// relative advance with the cursor's absolute position.
func (p Position) Add(other Position) Position {
	return Position{Byte: p.Byte + other.Byte, Page: p.Page.Add(other.Page)}
}

func (p Position) String() string {
	return fmt.Sprintf("%s, byte %d", p.Page, p.Byte)
}
