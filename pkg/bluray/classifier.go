package bluray

import (
	"fmt"
	"os"

	"github.com/bdmvtools/bdmvtools/pkg/common"
	"gopkg.in/yaml.v3"
)

// ClassifierConfig holds the heuristic policy values used to turn a
// playlist's byte size into a menu shape. The defaults are conventions
// observed on authored discs, not format guarantees, so every value can
// be overridden from a YAML config file.
type ClassifierConfig struct {
	// MainMenuSizeThreshold separates small menu-like playlists from
	// large content playlists, in bytes.
	MainMenuSizeThreshold int64 `yaml:"main_menu_size_threshold"`
	// ChapterSizeDivisor estimates one chapter per this many bytes of
	// playlist data.
	ChapterSizeDivisor int64 `yaml:"chapter_size_divisor"`
	// MaxChapters caps the estimated chapter count so implausibly large
	// inputs cannot produce degenerate menus.
	MaxChapters int `yaml:"max_chapters"`
	// DefaultChapterCount is used for main-menu chapter submenus, where
	// no size signal is available.
	DefaultChapterCount int `yaml:"default_chapter_count"`
}

// DefaultClassifierConfig returns the stock heuristic values.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		MainMenuSizeThreshold: 1024,
		ChapterSizeDivisor:    1000,
		MaxChapters:           99,
		DefaultChapterCount:   3,
	}
}

// LoadClassifierConfig reads heuristic overrides from a YAML file.
// Absent keys keep their default values.
func LoadClassifierConfig(path string) (ClassifierConfig, error) {
	config := DefaultClassifierConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, common.FormatError(common.ErrFailedToLoadConfig, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, common.FormatError(common.ErrFailedToParseConfig, err)
	}
	common.LogInfo(common.InfoConfigLoaded, path)
	return config.normalize(), nil
}

// normalize resets non-positive heuristic values to their defaults.
// A zero divisor would panic the chapter estimate and a non-positive
// chapter cap or count would break the one-chapter minimum, so a
// degenerate config is corrected here rather than surfaced as an error.
func (c ClassifierConfig) normalize() ClassifierConfig {
	defaults := DefaultClassifierConfig()
	if c.MainMenuSizeThreshold <= 0 {
		common.LogWarn(common.WarnConfigValueReset, "main_menu_size_threshold", c.MainMenuSizeThreshold, defaults.MainMenuSizeThreshold)
		c.MainMenuSizeThreshold = defaults.MainMenuSizeThreshold
	}
	if c.ChapterSizeDivisor <= 0 {
		common.LogWarn(common.WarnConfigValueReset, "chapter_size_divisor", c.ChapterSizeDivisor, defaults.ChapterSizeDivisor)
		c.ChapterSizeDivisor = defaults.ChapterSizeDivisor
	}
	if c.MaxChapters <= 0 {
		common.LogWarn(common.WarnConfigValueReset, "max_chapters", c.MaxChapters, defaults.MaxChapters)
		c.MaxChapters = defaults.MaxChapters
	}
	if c.DefaultChapterCount <= 0 {
		common.LogWarn(common.WarnConfigValueReset, "default_chapter_count", c.DefaultChapterCount, defaults.DefaultChapterCount)
		c.DefaultChapterCount = defaults.DefaultChapterCount
	}
	return c
}

// PlaylistClassifier synthesizes a menu model from a playlist file's
// size and position. It is a pure function of the PlaylistFile value:
// the playlist content itself is never read.
type PlaylistClassifier struct {
	config ClassifierConfig
}

// NewPlaylistClassifier creates a classifier with the given heuristics.
// Degenerate config values are reset to their defaults.
func NewPlaylistClassifier(config ClassifierConfig) *PlaylistClassifier {
	return &PlaylistClassifier{config: config.normalize()}
}

// Classify assigns a menu model to the playlist. Small playlists are
// treated as the disc's top menu; everything at or above the size
// threshold is treated as feature content with estimated chapter stops.
// A zero-byte playlist classifies as a main menu like any other small
// file.
func (c *PlaylistClassifier) Classify(playlist PlaylistFile) MenuModel {
	var model MenuModel
	if playlist.Size < c.config.MainMenuSizeThreshold {
		model = c.buildMainMenu(playlist)
	} else {
		model = c.buildContentMenu(playlist)
	}
	common.LogDebug(common.DebugClassified, playlist.Name, model.Kind, len(model.Items))
	return model
}

// buildMainMenu synthesizes the top level menu: play, chapter selection
// and settings. No back or main-menu entries are added because this
// already is the main menu.
func (c *PlaylistClassifier) buildMainMenu(playlist PlaylistFile) MenuModel {
	return MenuModel{
		Kind: KindStandardMain,
		Name: playlist.Name,
		Items: []MenuItem{
			{Title: "播放主要内容", Action: ActionPlayMain},
			{Title: "章节选择", Action: ActionChapters,
				Children: c.chapterItems(c.config.DefaultChapterCount)},
			{Title: "设置", Action: ActionSettings, Children: settingsItems()},
		},
	}
}

// buildContentMenu synthesizes a content menu: play-all, one entry per
// estimated chapter, special features and a return to the main menu.
func (c *PlaylistClassifier) buildContentMenu(playlist PlaylistFile) MenuModel {
	chapters := c.estimateChapters(playlist)

	items := make([]MenuItem, 0, chapters+3)
	items = append(items, MenuItem{Title: "播放全部", Action: ActionPlayAll})
	items = append(items, c.chapterItems(chapters)...)
	items = append(items,
		MenuItem{Title: "特殊功能", Action: ActionSpecial, Children: specialItems()},
		MenuItem{Title: "返回主菜单", Action: ActionMainMenu},
	)

	return MenuModel{
		Kind:  KindStandardContent,
		Name:  playlist.Name,
		Items: items,
	}
}

// estimateChapters derives a chapter count from the playlist size.
// The result is always within [1, MaxChapters]; a degenerate estimate is
// corrected locally and never surfaced as an error.
func (c *PlaylistClassifier) estimateChapters(playlist PlaylistFile) int {
	estimate := int(playlist.Size / c.config.ChapterSizeDivisor)
	clamped := estimate
	if clamped < 1 {
		clamped = 1
	}
	if clamped > c.config.MaxChapters {
		clamped = c.config.MaxChapters
	}
	if clamped != estimate {
		common.LogWarn(common.WarnDegenerateChapters, playlist.Name, estimate, clamped)
	}
	common.LogDebug(common.DebugChapterEstimate, clamped, playlist.Name, playlist.Size)
	return clamped
}

// chapterItems builds play-chapter entries with 1-based targets.
func (c *PlaylistClassifier) chapterItems(count int) []MenuItem {
	items := make([]MenuItem, 0, count)
	for i := 1; i <= count; i++ {
		items = append(items, MenuItem{
			Title:  fmt.Sprintf("章节 %d", i),
			Action: ActionPlayChapter,
			Target: fmt.Sprintf("%d", i),
		})
	}
	return items
}

// settingsItems is the static settings submenu.
func settingsItems() []MenuItem {
	return []MenuItem{
		{Title: "音频设置", Action: ActionAudioSettings},
		{Title: "字幕设置", Action: ActionSubtitleSettings},
		{Title: "显示设置", Action: ActionDisplaySettings},
		{Title: "返回", Action: ActionBack},
	}
}

// specialItems is the static special-features submenu.
func specialItems() []MenuItem {
	return []MenuItem{
		{Title: "花絮视频", Action: ActionPlayBonus},
		{Title: "制作特辑", Action: ActionPlayMakingOf},
		{Title: "导演评论", Action: ActionPlayCommentary},
		{Title: "返回", Action: ActionBack},
	}
}
