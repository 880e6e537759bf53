package session

import "strings"

// Buffer holds the expression as an ordered list of segments. A segment is
// either a flat token ("12", "+") or a whole parenthesized group ("(3+4").
type Buffer struct {
	segments []string
}

// Segments returns a copy of the buffer's segments.
func (b *Buffer) Segments() []string {
	out := make([]string, len(b.segments))
	copy(out, b.segments)
	return out
}

// Len returns the number of segments.
func (b *Buffer) Len() int {
	return len(b.segments)
}

// Text returns the concatenated expression.
func (b *Buffer) Text() string {
	return strings.Join(b.segments, "")
}

// Last returns the last segment and whether there is one.
func (b *Buffer) Last() (string, bool) {
	if len(b.segments) == 0 {
		return "", false
	}
	return b.segments[len(b.segments)-1], true
}

// Append pushes each value as a new segment.
func (b *Buffer) Append(values ...string) {
	b.segments = append(b.segments, values...)
}

// MergeIntoLast concatenates values onto the last segment.
func (b *Buffer) MergeIntoLast(values ...string) {
	v := strings.Join(values, "")
	if len(b.segments) == 0 {
		b.Append(v)
		return
	}
	b.segments[len(b.segments)-1] += v
}

// ReplaceLast overwrites the last segment.
func (b *Buffer) ReplaceLast(v string) {
	if len(b.segments) == 0 {
		b.Append(v)
		return
	}
	b.segments[len(b.segments)-1] = v
}

// PrependIntoLast puts v in front of the last segment.
func (b *Buffer) PrependIntoLast(v string) {
	last, ok := b.Last()
	if !ok {
		b.Append(v)
		return
	}
	b.segments[len(b.segments)-1] = v + last
}

// ReplaceLastSuffix drops the last character of the last segment and
// appends v in its place.
func (b *Buffer) ReplaceLastSuffix(v string) {
	last, ok := b.Last()
	if !ok {
		b.Append(v)
		return
	}
	b.segments[len(b.segments)-1] = last[:len(last)-1] + v
}

// Backspace removes the last character, dropping the last segment when it
// becomes empty.
func (b *Buffer) Backspace() {
	last, ok := b.Last()
	if !ok {
		return
	}
	b.segments = b.segments[:len(b.segments)-1]
	if len(last) > 1 {
		b.segments = append(b.segments, last[:len(last)-1])
	}
}

// Clear resets the buffer.
func (b *Buffer) Clear() {
	b.segments = nil
}

// Reset replaces the whole buffer with a single segment, or empties it when
// text is empty.
func (b *Buffer) Reset(text string) {
	b.Clear()
	if text != "" {
		b.segments = []string{text}
	}
}
