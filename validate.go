package id3tag

import "slices"

// InvalidFrames reports frames that can't be committed as they are.
//
// A frame with an unregistered id is reported as [id]. A frame holding
// fields outside its definition is reported as [id, field...] with the
// offending fields sorted. The result is empty, never nil, when every frame
// is valid. The tag is not modified.
func (t *Tag) InvalidFrames() [][]string {
	out := [][]string{}
	for _, f := range t.frames {
		if f.def == nil {
			out = append(out, []string{f.id})
			continue
		}

		var bad []string
		for field := range f.fields {
			if !f.def.Allows(field) {
				bad = append(bad, field)
			}
		}
		if len(bad) > 0 {
			slices.Sort(bad)
			out = append(out, append([]string{f.id}, bad...))
		}
	}
	return out
}

// InvalidFrames is the function form of Tag.InvalidFrames.
func InvalidFrames(t *Tag) [][]string {
	return t.InvalidFrames()
}
