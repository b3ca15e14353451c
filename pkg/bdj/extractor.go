package bdj

import (
	"context"
	"os"
	"path"
	"strings"

	"github.com/bdmvtools/bdmvtools/pkg/bluray"
	"github.com/bdmvtools/bdmvtools/pkg/common"
	"github.com/mholt/archives"
	"gopkg.in/yaml.v3"
)

// DetectorConfig holds the heuristic policy values for BD-J menu
// extraction. Like the playlist heuristics these are conventions, not
// format guarantees, and can be overridden from a YAML config file.
type DetectorConfig struct {
	// SpecialFeatureSizeThreshold is the aggregate archive size, in
	// bytes, above which an application is assumed to carry special
	// features worth a menu entry.
	SpecialFeatureSizeThreshold int64 `yaml:"special_feature_size_threshold"`
}

// DefaultDetectorConfig returns the stock heuristic values.
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		SpecialFeatureSizeThreshold: 64 * 1024,
	}
}

// LoadDetectorConfig reads heuristic overrides from a YAML file.
func LoadDetectorConfig(configPath string) (DetectorConfig, error) {
	config := DefaultDetectorConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return config, common.FormatError(common.ErrFailedToLoadConfig, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, common.FormatError(common.ErrFailedToParseConfig, err)
	}
	common.LogInfo(common.InfoConfigLoaded, configPath)
	return config, nil
}

// Extractor synthesizes a menu model for a BD-J application from
// aggregate archive signals: archive count, total archive size, and
// whether any archive holds a readable manifest entry. It never
// decompiles or executes application code, so the result is an
// approximation of the authored menu, not a decode of it.
type Extractor struct {
	config DetectorConfig
}

// NewExtractor creates an extractor with the given heuristics.
func NewExtractor(config DetectorConfig) *Extractor {
	return &Extractor{config: config}
}

// ExtractMenu builds the application's menu from its archive set and
// records on app whether a manifest entry was readable. Play and
// interactive entries are always present; chapter selection appears
// when more than one archive exists, and special features appear when
// the aggregate archive size crosses the configured threshold.
func (e *Extractor) ExtractMenu(app *bluray.ApplicationInfo) bluray.MenuModel {
	var totalSize int64
	for _, archive := range app.Archives {
		totalSize += archive.Size
	}
	app.HasManifest = e.anyManifest(app.Archives)

	items := []bluray.MenuItem{
		{Title: "播放主要内容", Action: bluray.ActionBDJPlayMain},
		{Title: "交互式菜单", Action: bluray.ActionBDJInteractiveMenu},
	}
	if len(app.Archives) > 1 {
		items = append(items, bluray.MenuItem{
			Title: "章节选择", Action: bluray.ActionBDJChapters,
		})
	}
	if totalSize > e.config.SpecialFeatureSizeThreshold {
		items = append(items, bluray.MenuItem{
			Title: "特殊功能", Action: bluray.ActionBDJSpecial,
		})
	}
	items = append(items,
		bluray.MenuItem{Title: "设置", Action: bluray.ActionBDJSettings,
			Children: bdjSettingsItems()},
		bluray.MenuItem{Title: "返回标准菜单", Action: bluray.ActionFallbackMenu},
	)

	return bluray.MenuModel{
		Kind:  bluray.KindBDJApplication,
		Name:  app.ObjectName,
		Items: items,
	}
}

// anyManifest reports whether at least one archive holds a readable
// manifest-like entry. Probe failures count as no manifest; a corrupt
// archive must never fail the disc load.
func (e *Extractor) anyManifest(archiveFiles []bluray.ArchiveFile) bool {
	for _, archive := range archiveFiles {
		found, err := probeManifest(archive.Path)
		if err != nil {
			common.LogWarn(common.WarnArchiveProbeFailed, archive.Name, err)
			continue
		}
		common.LogDebug(common.DebugManifestProbe, archive.Name, found)
		if found {
			return true
		}
	}
	return false
}

// probeManifest walks the archive's entry list looking for a manifest
// entry (META-INF/MANIFEST.MF or any *.MF file). Entry contents are not
// read beyond what format identification requires.
func probeManifest(archivePath string) (bool, error) {
	ctx := context.Background()

	file, err := os.Open(archivePath)
	if err != nil {
		return false, err
	}
	defer file.Close()

	format, reader, err := archives.Identify(ctx, archivePath, file)
	if err != nil {
		return false, err
	}
	extractor, ok := format.(archives.Extractor)
	if !ok {
		return false, nil
	}

	found := false
	err = extractor.Extract(ctx, reader, func(ctx context.Context, f archives.FileInfo) error {
		if isManifestEntry(f.NameInArchive) {
			found = true
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// isManifestEntry matches manifest-like archive entry names.
func isManifestEntry(name string) bool {
	normalized := strings.ToUpper(strings.ReplaceAll(name, "\\", "/"))
	if normalized == "META-INF/MANIFEST.MF" {
		return true
	}
	return strings.HasSuffix(path.Base(normalized), ".MF")
}

// bdjSettingsItems is the static BD-J settings submenu.
func bdjSettingsItems() []bluray.MenuItem {
	return []bluray.MenuItem{
		{Title: "音频设置", Action: bluray.ActionAudioSettings},
		{Title: "字幕设置", Action: bluray.ActionSubtitleSettings},
		{Title: "显示设置", Action: bluray.ActionDisplaySettings},
		{Title: "网络设置", Action: bluray.ActionBDJNetworkSettings},
		{Title: "返回", Action: bluray.ActionBack},
	}
}
