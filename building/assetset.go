package building

import "sort"

// AssetSet collects files to copy into the build, keyed by destination so that every target is
// written once.
type AssetSet struct {
	byDst map[string]string
}

func NewAssetSet() *AssetSet {
	return &AssetSet{
		byDst: make(map[string]string),
	}
}

func (s *AssetSet) Add(src, dst string) {
	s.byDst[dst] = src
}

// ForEach calls f for every entry in destination order and stops at the first error.
func (s *AssetSet) ForEach(f func(src, dst string) error) error {
	dsts := make([]string, 0, len(s.byDst))
	for dst := range s.byDst {
		dsts = append(dsts, dst)
	}
	sort.Strings(dsts)

	for _, dst := range dsts {
		if err := f(s.byDst[dst], dst); err != nil {
			return err
		}
	}
	return nil
}

func (s *AssetSet) Len() int {
	return len(s.byDst)
}
