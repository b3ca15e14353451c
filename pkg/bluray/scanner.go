package bluray

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bdmvtools/bdmvtools/pkg/common"
	"github.com/samber/lo"
)

// Sentinel errors surfaced by the scanner. Callers match them with
// errors.Is; everything else is a wrapped I/O failure.
var (
	// ErrInvalidStructure means a required BDMV subdirectory is missing
	// or empty. Fatal to a disc load.
	ErrInvalidStructure = errors.New(common.ErrInvalidDiscStructure)
	// ErrNoPlaylists means the playlist directory holds no playlist
	// files at all.
	ErrNoPlaylists = errors.New(common.ErrNoPlaylistsFound)
)

// StructureScanner validates a disc root against the expected BDMV
// layout and enumerates its playlist and stream files. Scanning only
// stats and lists; file contents are never read.
type StructureScanner struct{}

// NewStructureScanner creates a new structure scanner instance.
func NewStructureScanner() *StructureScanner {
	return &StructureScanner{}
}

// Scan validates rootPath as a BDMV tree and returns its layout.
// rootPath may point at the BDMV directory itself or at its parent.
// A layout is valid when the playlist and stream directories both exist
// and are non-empty; the clip-info, object and archive directories are
// recorded when present but never required.
func (s *StructureScanner) Scan(rootPath string) (*DiscLayout, error) {
	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, common.FormatError(common.ErrFailedToAccessRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %s", common.ErrRootNotADirectory, rootPath)
	}

	bdmvPath := rootPath
	if !strings.EqualFold(filepath.Base(rootPath), BDMVDirName) {
		resolved, ok := common.FindDirectoryFold(rootPath, BDMVDirName)
		if !ok {
			return nil, fmt.Errorf("%w: no %s directory under %s",
				ErrInvalidStructure, BDMVDirName, rootPath)
		}
		bdmvPath = resolved
	}

	layout := &DiscLayout{
		Root:     rootPath,
		BDMVPath: bdmvPath,
	}

	required := []struct {
		name    string
		missing string
		dest    *string
	}{
		{PlaylistDirName, common.ErrMissingPlaylistDirectory, &layout.PlaylistDir},
		{StreamDirName, common.ErrMissingStreamDirectory, &layout.StreamDir},
	}
	for _, dir := range required {
		common.LogDebug(common.DebugCheckingDirectory, dir.name, bdmvPath)
		path, ok := common.FindDirectoryFold(bdmvPath, dir.name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStructure, dir.missing)
		}
		if empty, err := isEmptyDir(path); err != nil {
			return nil, common.FormatError(common.ErrFailedToListDirectory, err)
		} else if empty {
			return nil, fmt.Errorf("%w: %s is empty", ErrInvalidStructure, dir.name)
		}
		*dir.dest = path
	}

	optional := []struct {
		name string
		dest *string
	}{
		{ClipInfoDirName, &layout.ClipInfoDir},
		{ObjectDirName, &layout.ObjectDir},
		{ArchiveDirName, &layout.ArchiveDir},
	}
	for _, dir := range optional {
		common.LogDebug(common.DebugCheckingDirectory, dir.name, bdmvPath)
		if path, ok := common.FindDirectoryFold(bdmvPath, dir.name); ok {
			*dir.dest = path
		}
	}

	return layout, nil
}

// EnumeratePlaylists lists every playlist file in the layout, sorted
// ascending by file name. The fixed-width numeric naming convention
// makes that also ascending by playlist number, which downstream
// main-playlist selection relies on for its tie-break.
func (s *StructureScanner) EnumeratePlaylists(layout *DiscLayout) ([]PlaylistFile, error) {
	entries, err := listFiles(layout.PlaylistDir, PlaylistExtension)
	if err != nil {
		return nil, common.FormatError(common.ErrFailedToListDirectory, err)
	}
	if len(entries) == 0 {
		return nil, ErrNoPlaylists
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })

	playlists := make([]PlaylistFile, 0, len(entries))
	for i, entry := range entries {
		common.LogDebug(common.DebugPlaylistEnumerated, entry.name, entry.size, i)
		playlists = append(playlists, PlaylistFile{
			Name:  common.BaseName(entry.name),
			Path:  filepath.Join(layout.PlaylistDir, entry.name),
			Size:  entry.size,
			Index: i,
		})
	}
	common.LogInfo(common.InfoPlaylistsFound, len(playlists))
	return playlists, nil
}

// EnumerateStreams lists every stream file in the layout, sorted by size
// descending so the main feature comes first. An empty result is not an
// error; a disc can be navigated without resolving streams.
func (s *StructureScanner) EnumerateStreams(layout *DiscLayout) ([]StreamFile, error) {
	entries, err := listFiles(layout.StreamDir, StreamExtension)
	if err != nil {
		return nil, common.FormatError(common.ErrFailedToListDirectory, err)
	}

	streams := lo.Map(entries, func(entry dirEntry, _ int) StreamFile {
		common.LogDebug(common.DebugStreamEnumerated, entry.name, entry.size)
		return StreamFile{
			Name: common.BaseName(entry.name),
			Path: filepath.Join(layout.StreamDir, entry.name),
			Size: entry.size,
		}
	})

	sort.Slice(streams, func(i, j int) bool {
		if streams[i].Size != streams[j].Size {
			return streams[i].Size > streams[j].Size
		}
		return streams[i].Name < streams[j].Name
	})
	common.LogInfo(common.InfoStreamsFound, len(streams))
	return streams, nil
}

// SelectMainPlaylist returns the playlist holding the main feature: the
// entry with the greatest byte size. Ties go to the earliest file name,
// which EnumeratePlaylists already ordered first. The main feature is
// conventionally authored in the largest playlist container.
func SelectMainPlaylist(playlists []PlaylistFile) (PlaylistFile, bool) {
	if len(playlists) == 0 {
		return PlaylistFile{}, false
	}
	main := playlists[0]
	for _, p := range playlists[1:] {
		if p.Size > main.Size {
			main = p
		}
	}
	return main, true
}

// SelectMainStream returns the largest stream file, the conventional
// location of the main feature video.
func SelectMainStream(streams []StreamFile) (StreamFile, bool) {
	if len(streams) == 0 {
		return StreamFile{}, false
	}
	return streams[0], true
}

// dirEntry is a (name, size) pair from a single directory listing.
type dirEntry struct {
	name string
	size int64
}

// listFiles returns the plain files in dir whose extension matches ext
// case-insensitively. Order is whatever the OS returned; callers sort.
func listFiles(dir, ext string) ([]dirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	matching := lo.Filter(entries, func(e os.DirEntry, _ int) bool {
		return !e.IsDir() && common.HasExtensionFold(e.Name(), ext)
	})

	files := make([]dirEntry, 0, len(matching))
	for _, e := range matching {
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		files = append(files, dirEntry{name: e.Name(), size: info.Size()})
	}
	return files, nil
}

// isEmptyDir reports whether dir has no entries at all.
func isEmptyDir(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}
