package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FormatSize renders a byte count in a human readable unit.
// Sizes on disc range from sub-KB playlist files to multi-GB streams,
// so the unit is chosen per value.
func FormatSize(size int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case size >= gb:
		return fmt.Sprintf("%.1f GB", float64(size)/float64(gb))
	case size >= mb:
		return fmt.Sprintf("%.1f MB", float64(size)/float64(mb))
	case size >= kb:
		return fmt.Sprintf("%.1f KB", float64(size)/float64(kb))
	default:
		return fmt.Sprintf("%d B", size)
	}
}

// FindDirectoryFold searches parent for a subdirectory whose name matches
// name case-insensitively. Authored discs are uppercase per convention,
// but copied trees on case-sensitive file systems are frequently not.
// Returns the resolved path and true when found.
func FindDirectoryFold(parent, name string) (string, bool) {
	exact := filepath.Join(parent, name)
	if info, err := os.Stat(exact); err == nil && info.IsDir() {
		return exact, true
	}

	entries, err := os.ReadDir(parent)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if entry.IsDir() && strings.EqualFold(entry.Name(), name) {
			return filepath.Join(parent, entry.Name()), true
		}
	}
	return "", false
}

// HasExtensionFold reports whether name carries the given extension,
// compared case-insensitively. ext must include the leading dot.
func HasExtensionFold(name, ext string) bool {
	return strings.EqualFold(filepath.Ext(name), ext)
}

// BaseName returns the file name without directory or extension,
// e.g. "/BDMV/PLAYLIST/00000.mpls" -> "00000".
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
