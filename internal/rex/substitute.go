package rex

import "strconv"

// Substitute expands replacement against subject using caps, the Go
// equivalent of FXRex::substitute (spec.md §4.2): '&' stands for the
// whole match (capture 0), "\1".."\9" stand for the corresponding capture
// group (empty string if that group did not participate), and "\&"/"\\"
// escape a literal ampersand or backslash. Any other backslash escape
// passes its following character through literally.
func Substitute(subject string, caps Captures, replacement string) string {
	var out []byte
	for i := 0; i < len(replacement); i++ {
		ch := replacement[i]
		switch {
		case ch == '&':
			out = append(out, captureText(subject, caps, 0)...)
		case ch == '\\' && i+1 < len(replacement):
			next := replacement[i+1]
			switch {
			case next >= '0' && next <= '9':
				idx, _ := strconv.Atoi(string(next))
				out = append(out, captureText(subject, caps, idx)...)
				i++
			case next == '&' || next == '\\':
				out = append(out, next)
				i++
			default:
				out = append(out, next)
				i++
			}
		default:
			out = append(out, ch)
		}
	}
	return string(out)
}

func captureText(subject string, caps Captures, idx int) string {
	if idx < 0 || idx >= maxCapture {
		return ""
	}
	beg, end := caps.Beg[idx], caps.End[idx]
	if beg < 0 || end < 0 || beg > end || end > len(subject) {
		return ""
	}
	return subject[beg:end]
}
