package game

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
)

// Fprint writes the board as a grid with row and column indices. Marks are
// coloured when color is set.
func Fprint(w io.Writer, b Board, color bool) error {
	au := aurora.NewAurora(color)
	if _, err := fmt.Fprint(w, "  "); err != nil {
		return err
	}
	for x := 0; x < Size; x++ {
		fmt.Fprint(w, au.Cyan(fmt.Sprintf(" %d", x)))
	}
	fmt.Fprintln(w)
	for y := 0; y < Size; y++ {
		fmt.Fprint(w, au.Cyan(fmt.Sprintf("%d ", y)))
		for x := 0; x < Size; x++ {
			sym := cellSymbol(b[y][x])
			switch b[y][x] {
			case 0:
				fmt.Fprint(w, " ", au.Blue(sym).Bold())
			case 1:
				fmt.Fprint(w, " ", au.Red(sym).Bold())
			default:
				fmt.Fprint(w, " ", au.Faint(sym))
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
