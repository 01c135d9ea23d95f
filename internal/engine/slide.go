package engine

// slideLine compacts and merges a single line toward index 0 (the target
// edge). Equal adjacent tiles combine into one tile of double value; a
// tile produced by a merge never merges again within the same move. The
// result is padded with empties back to line length.
// Returns the new line and the score gained from merges.
func slideLine(line []int) ([]int, uint64) {
	result := make([]int, len(line))
	var score uint64

	writePos := 0
	lastMerged := false

	for _, v := range line {
		if v == 0 {
			continue
		}

		if writePos > 0 && !lastMerged && result[writePos-1] == v {
			result[writePos-1] = v * 2
			score += uint64(v * 2)
			lastMerged = true
		} else {
			result[writePos] = v
			writePos++
			lastMerged = false
		}
	}

	return result, score
}

// linesEqual reports whether two lines hold identical values.
func linesEqual(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
