package archive

import "github.com/dendrascience/vfsh/vfs"

// Stats summarizes the contents of a filesystem mapping.
type Stats struct {
	Directories int
	TextFiles   int
	BinaryFiles int
	Bytes       int64
}

// Files returns the number of file entries.
func (s Stats) Files() int {
	return s.TextFiles + s.BinaryFiles
}

// StatsOf counts the entries of a mapping.
func StatsOf(entries map[string]vfs.Entry) Stats {
	var s Stats
	for _, e := range entries {
		switch {
		case e.Dir:
			s.Directories++
		case e.IsBinary():
			s.BinaryFiles++
			s.Bytes += int64(len(e.Bytes()))
		default:
			s.TextFiles++
			s.Bytes += int64(len(e.Data))
		}
	}
	return s
}

// StatsFile loads the archive at path and counts its entries.
func StatsFile(path string) (Stats, error) {
	entries, err := Load(path)
	if err != nil {
		return Stats{}, err
	}
	return StatsOf(entries), nil
}
