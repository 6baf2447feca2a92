package terminal

const (
	glyphWidth  = 3
	glyphHeight = 5
)

var glyphs = map[rune][glyphHeight]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", "###", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", "..#", "..#", "..#"},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
}

// cellsFromChar returns the lit cells of a character as {x, y} offsets from
// the glyph's top-left corner. Unknown characters have no cells.
func cellsFromChar(ch rune) [][2]int {
	rows, ok := glyphs[ch]
	if !ok {
		return nil
	}
	var cells [][2]int
	for y, line := range rows {
		for x, c := range line {
			if c == '#' {
				cells = append(cells, [2]int{x, y})
			}
		}
	}
	return cells
}
