package buffer

// TabStop is the render column multiple a tab advances to.
const TabStop = 8

// RenderX converts a raw column into the rendered column it occupies once
// tabs are expanded.
func RenderX(raw []byte, cx int) int {
	if cx > len(raw) {
		cx = len(raw)
	}
	rx := 0
	for i := 0; i < cx; i++ {
		if raw[i] == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	return rx
}

// CursorX converts a rendered column back into a raw column. Columns past
// the end of the row map to the row length.
func CursorX(raw []byte, rx int) int {
	cur := 0
	for cx, c := range raw {
		if c == '\t' {
			cur += (TabStop - 1) - (cur % TabStop)
		}
		cur++
		if cur > rx {
			return cx
		}
	}
	return len(raw)
}

func expandTabs(raw []byte) []byte {
	tabs := 0
	for _, c := range raw {
		if c == '\t' {
			tabs++
		}
	}
	out := make([]byte, 0, len(raw)+tabs*(TabStop-1))
	for _, c := range raw {
		if c != '\t' {
			out = append(out, c)
			continue
		}
		out = append(out, ' ')
		for len(out)%TabStop != 0 {
			out = append(out, ' ')
		}
	}
	return out
}
