package formats

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ParseText parses the plain tile map format:
//
//	Width 20
//	Height 10
//	<Height rows of Width whitespace separated integers>
//
// The labels are not checked. Tokens after the last tile are ignored.
func ParseText(r io.Reader) (Level, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("reading %s: %w", what, err)
			}
			return 0, fmt.Errorf("%w: missing %s", ErrMalformed, what)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not an integer", ErrMalformed, what, sc.Text())
		}
		return v, nil
	}
	label := func(what string) error {
		if !sc.Scan() {
			return fmt.Errorf("%w: missing %s label", ErrMalformed, what)
		}
		return nil
	}

	if err := label("width"); err != nil {
		return Level{}, err
	}
	width, err := next("width")
	if err != nil {
		return Level{}, err
	}
	if err := label("height"); err != nil {
		return Level{}, err
	}
	height, err := next("height")
	if err != nil {
		return Level{}, err
	}
	if err := checkSize(width, height); err != nil {
		return Level{}, err
	}

	rows := make([][]int, height)
	for y := range rows {
		rows[y] = make([]int, width)
		for x := range rows[y] {
			v, err := next(fmt.Sprintf("tile (%d, %d)", x, y))
			if err != nil {
				return Level{}, err
			}
			rows[y][x] = v
		}
	}

	return Level{Width: width, Height: height, Rows: rows}, nil
}
