package replay

import (
	"bytes"

	"travlist/datastruct/travlist"
)

// Report is the outcome of replaying one script on every backing store.
type Report struct {
	Transcripts map[travlist.Kind]string
	// Diverging lists the stores whose transcript or final lists differ from
	// the first store's.
	Diverging []travlist.Kind
}

// Equal reports whether every store behaved the same.
func (r *Report) Equal() bool {
	return len(r.Diverging) == 0
}

// Equivalent replays cmds against a lenient session of each store and
// compares the transcripts and the final state of every list.
func Equivalent(cmds []Command, capacity int) (*Report, error) {
	report := &Report{Transcripts: make(map[travlist.Kind]string, len(travlist.Kinds))}
	var reference *Session
	for _, kind := range travlist.Kinds {
		var out bytes.Buffer
		s, err := NewSession(Config{Kind: kind, Capacity: capacity}, &out)
		if err != nil {
			return nil, err
		}
		if err := s.Run(cmds); err != nil {
			return nil, err
		}
		report.Transcripts[kind] = out.String()
		if reference == nil {
			reference = s
			continue
		}
		if out.String() != report.Transcripts[reference.kind] || !sameLists(reference, s) {
			report.Diverging = append(report.Diverging, kind)
		}
	}
	return report, nil
}

func sameLists(a, b *Session) bool {
	if len(a.lists) != len(b.lists) {
		return false
	}
	for name, l := range a.lists {
		other, ok := b.lists[name]
		if !ok || !travlist.Equal(l, other) {
			return false
		}
	}
	return true
}
