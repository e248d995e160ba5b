package catalogs

import "fmt"

// TextureSet assigns stable layer indices to texture names. Indices are
// handed out in first-add order and become final once the set is sealed;
// the renderer packs the named images into one texture array in exactly
// this order.
type TextureSet struct {
	index  map[string]int
	names  []string
	sealed bool
}

func NewTextureSet() *TextureSet {
	return &TextureSet{index: map[string]int{}}
}

// Add registers a texture name and returns its layer index. Adding the same
// name twice returns the original index. Adding after Seal is an error: the
// GPU-side array has a fixed depth once built.
func (t *TextureSet) Add(name string) (int, error) {
	if i, ok := t.index[name]; ok {
		return i, nil
	}
	if t.sealed {
		return 0, fmt.Errorf("texture set is sealed, cannot add %q", name)
	}
	i := len(t.names)
	t.index[name] = i
	t.names = append(t.names, name)
	return i, nil
}

// Seal freezes the name→layer assignment.
func (t *TextureSet) Seal() {
	t.sealed = true
}

func (t *TextureSet) Sealed() bool {
	return t.sealed
}

// Layer looks up the index for a previously added name.
func (t *TextureSet) Layer(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

func (t *TextureSet) Len() int {
	return len(t.names)
}

// Names returns the texture names in layer order. The caller must not
// mutate the returned slice.
func (t *TextureSet) Names() []string {
	return t.names
}
