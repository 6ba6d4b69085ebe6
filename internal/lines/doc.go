// Package lines implements the line-boundary classifier.
//
// A line ends at any of the Unicode newline conventions:
//
//	CR    U+000D (not followed by LF)
//	CRLF  U+000D U+000A, consumed as one terminator
//	LF    U+000A
//	VT    U+000B
//	FF    U+000C
//	NEL   U+0085
//	LS    U+2028
//	PS    U+2029
//
// The classifier scans one UTF-8 buffer, decoding one code point at a time,
// and reports a half-open byte range per line. Terminator bytes are never part
// of a line unless a piece cap forces the last line to absorb the remainder.
package lines
