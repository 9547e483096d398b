package pvrpath

import "strings"

// Classification helpers for foreign item paths. These inspect only the
// namespace shape of a path, not whether the addressed entity exists.

// IsChannel reports whether raw addresses a single channel, i.e. a leaf
// below a channel group.
func IsChannel(raw string) bool {
	base, _ := Split(raw)
	segs, ok := Segments(base)
	if !ok || len(segs) < 4 || !strings.EqualFold(segs[0], "channels") {
		return false
	}
	_, ok = parseKind(segs[1])
	return ok
}

// IsRecording reports whether raw addresses a single recording, i.e. a leaf
// below a recordings view root.
func IsRecording(raw string) bool {
	base, _ := Split(raw)
	segs, ok := Segments(base)
	if !ok || len(segs) < 4 {
		return false
	}
	return ParseRecordingsPath(base).IsValid()
}

// IsRecordingsTree reports whether raw lies anywhere below pvr://recordings.
func IsRecordingsTree(raw string) bool {
	base, _ := Split(raw)
	segs, ok := Segments(base)
	return ok && len(segs) > 0 && strings.EqualFold(segs[0], "recordings")
}

// IsGuideEntry reports whether raw addresses a single guide (EPG) entry.
func IsGuideEntry(raw string) bool {
	base, _ := Split(raw)
	segs, ok := Segments(base)
	return ok && len(segs) >= 3 && strings.EqualFold(segs[0], "guide")
}
