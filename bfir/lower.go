package bfir

import "strings"

const zeroIdiom = "[-]"

// Lower translates source text into a Program.
// Runs of identical move or adjust symbols are coalesced, and "[-]" becomes a single Zero.
// Bytes other than the eight command symbols are ignored.
func Lower(source string) Program {
	var (
		ret     Program
		pending byte
		count   int
	)

	flush := func() {
		if count == 0 {
			return
		}
		switch pending {
		case '>':
			ret = append(ret, Move(count))
		case '<':
			ret = append(ret, Move(-count))
		case '+':
			ret = append(ret, Adjust(count))
		case '-':
			ret = append(ret, Adjust(-count))
		}
		pending = 0
		count = 0
	}

	for i := 0; i < len(source); {
		if strings.HasPrefix(source[i:], zeroIdiom) {
			flush()
			ret = append(ret, Zero())
			i += len(zeroIdiom)
			continue
		}

		c := source[i]
		switch c {
		case '>', '<', '+', '-':
			if c != pending {
				flush()
				pending = c
			}
			count++
		case '.':
			flush()
			ret = append(ret, Write())
		case ',':
			flush()
			ret = append(ret, Read())
		case '[':
			flush()
			ret = append(ret, Enter())
		case ']':
			flush()
			ret = append(ret, Exit())
		}
		i++
	}
	flush()

	return ret
}
