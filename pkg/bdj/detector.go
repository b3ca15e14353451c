// Package bdj detects BD-J (Blu-ray Disc Java) interactive menu support
// and extracts best-effort application metadata.
//
// The BDJO object format is undocumented in this codebase and is never
// decoded; everything here is inferred from file presence, sizes and
// coarse archive signals. Application execution is out of scope.
package bdj

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bdmvtools/bdmvtools/pkg/bluray"
	"github.com/bdmvtools/bdmvtools/pkg/common"
	"github.com/samber/lo"
)

// PriorityPolicy maps an application's size rank (0 = largest object
// file) to a priority value. No ground truth exists for priorities
// without decoding the object format, so the mapping is replaceable.
type PriorityPolicy func(sizeRank int) int

// DefaultPriorityPolicy gives the largest object file priority 1, the
// next largest 2, and so on. Lower values mean higher priority.
func DefaultPriorityPolicy(sizeRank int) int {
	return sizeRank + 1
}

// Detector finds BD-J applications on a scanned disc layout.
type Detector struct {
	config   DetectorConfig
	priority PriorityPolicy
}

// NewDetector creates a detector with the given heuristics and the
// default priority policy.
func NewDetector(config DetectorConfig) *Detector {
	return &Detector{config: config, priority: DefaultPriorityPolicy}
}

// SetPriorityPolicy replaces the size-rank to priority mapping.
func (d *Detector) SetPriorityPolicy(policy PriorityPolicy) {
	if policy != nil {
		d.priority = policy
	}
}

// HasSupport reports whether the disc carries BD-J menus: both the
// object and archive directories exist and each holds at least one file
// with the expected extension. Any listing failure degrades to false;
// BD-J absence is never fatal to a disc load.
func (d *Detector) HasSupport(layout *bluray.DiscLayout) bool {
	if !layout.HasObjectDir() || !layout.HasArchiveDir() {
		return false
	}
	objects, err := listByExtension(layout.ObjectDir, bluray.ObjectExtension)
	if err != nil {
		common.LogWarn(common.WarnBDJListingFailed, err)
		return false
	}
	archives, err := listByExtension(layout.ArchiveDir, bluray.ArchiveExtension)
	if err != nil {
		common.LogWarn(common.WarnBDJListingFailed, err)
		return false
	}
	return len(objects) > 0 && len(archives) > 0
}

// DetectApplications builds one ApplicationInfo per object file found,
// ordered by file name. An unsupported or unreadable disc yields an
// empty slice, never an error.
//
// Every archive on the disc is attached to every application. File-name
// correlation between object and archive files is not reliably
// inferable without decoding the object format, so the one-to-many
// fallback stands until a content-based heuristic replaces it.
func (d *Detector) DetectApplications(layout *bluray.DiscLayout) []bluray.ApplicationInfo {
	if !d.HasSupport(layout) {
		return nil
	}

	objects, err := listByExtension(layout.ObjectDir, bluray.ObjectExtension)
	if err != nil {
		common.LogWarn(common.WarnBDJListingFailed, err)
		return nil
	}
	archiveEntries, err := listByExtension(layout.ArchiveDir, bluray.ArchiveExtension)
	if err != nil {
		common.LogWarn(common.WarnBDJListingFailed, err)
		return nil
	}

	archives := lo.Map(archiveEntries, func(e fileEntry, _ int) bluray.ArchiveFile {
		common.LogDebug(common.DebugArchiveFileFound, e.name, e.size)
		return bluray.ArchiveFile{
			Name: common.BaseName(e.name),
			Path: e.path,
			Size: e.size,
		}
	})

	priorities := d.rankBySize(objects)
	extractor := NewExtractor(d.config)

	apps := make([]bluray.ApplicationInfo, 0, len(objects))
	for _, object := range objects {
		app := bluray.ApplicationInfo{
			ObjectName: common.BaseName(object.name),
			ObjectPath: object.path,
			ObjectSize: object.size,
			Priority:   priorities[object.name],
			Archives:   archives,
		}
		common.LogDebug(common.DebugObjectFileFound, object.name, object.size, app.Priority)
		app.Menu = extractor.ExtractMenu(&app)
		apps = append(apps, app)
	}
	common.LogInfo(common.InfoApplicationsFound, len(apps))
	return apps
}

// rankBySize assigns each object file a priority from its size rank.
// Ties keep file-name order so the result stays deterministic.
func (d *Detector) rankBySize(objects []fileEntry) map[string]int {
	ranked := make([]fileEntry, len(objects))
	copy(ranked, objects)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].size > ranked[j].size })

	priorities := make(map[string]int, len(ranked))
	for rank, entry := range ranked {
		priorities[entry.name] = d.priority(rank)
	}
	return priorities
}

// fileEntry is one file from a directory listing.
type fileEntry struct {
	name string
	path string
	size int64
}

// listByExtension lists plain files in dir matching ext, sorted by name.
func listByExtension(dir, ext string) ([]fileEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make([]fileEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !common.HasExtensionFold(e.Name(), ext) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		files = append(files, fileEntry{
			name: e.Name(),
			path: filepath.Join(dir, e.Name()),
			size: info.Size(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })
	return files, nil
}
