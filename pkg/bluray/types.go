// Package bluray provides scanning and heuristic menu classification for
// Blu-ray disc (BDMV) directory structures.
//
// The on-disc playlist (.mpls) and application object (.bdjo) formats are
// not decoded here. Menu structure is inferred from file sizes, names and
// directory contents only, so every result in this package is a
// best-effort approximation of the disc's authored menus.
package bluray

// Standard BDMV directory and file naming. Discs are authored uppercase;
// all lookups against these names are case-insensitive.
const (
	BDMVDirName     = "BDMV"
	PlaylistDirName = "PLAYLIST"
	StreamDirName   = "STREAM"
	ClipInfoDirName = "CLIPINF"
	ObjectDirName   = "BDJO"
	ArchiveDirName  = "JAR"

	PlaylistExtension = ".mpls"
	StreamExtension   = ".m2ts"
	ObjectExtension   = ".bdjo"
	ArchiveExtension  = ".jar"
)

// MenuKind identifies which classification rule produced a MenuModel.
type MenuKind string

const (
	// KindStandardMain marks a small playlist classified as the disc's
	// top level menu.
	KindStandardMain MenuKind = "standard_main"
	// KindStandardContent marks a large playlist classified as feature
	// content with chapter stops.
	KindStandardContent MenuKind = "standard_content"
	// KindBDJApplication marks a menu synthesized for a BD-J application.
	KindBDJApplication MenuKind = "bdj_application"
)

// Action is the verb attached to a menu item. Leaf actions are returned
// to the host as tokens; ActionBack and ActionMainMenu are interpreted by
// the navigator itself.
type Action string

const (
	ActionPlayMain    Action = "play_main"
	ActionPlayAll     Action = "play_all"
	ActionPlayChapter Action = "play_chapter"
	ActionChapters    Action = "chapters"
	ActionSettings    Action = "settings"
	ActionSpecial     Action = "special"
	ActionBack        Action = "back"
	ActionMainMenu    Action = "main_menu"

	ActionAudioSettings    Action = "audio_settings"
	ActionSubtitleSettings Action = "subtitle_settings"
	ActionDisplaySettings  Action = "display_settings"
	ActionPlayBonus        Action = "play_bonus"
	ActionPlayMakingOf     Action = "play_making_of"
	ActionPlayCommentary   Action = "play_commentary"

	ActionBDJPlayMain        Action = "bdj_play_main"
	ActionBDJInteractiveMenu Action = "bdj_interactive_menu"
	ActionBDJChapters        Action = "bdj_chapters"
	ActionBDJSpecial         Action = "bdj_special"
	ActionBDJSettings        Action = "bdj_settings"
	ActionBDJNetworkSettings Action = "bdj_network_settings"
	ActionFallbackMenu       Action = "fallback_menu"
)

// MenuItem is a single selectable entry in a synthesized menu tree.
// Items with a non-empty Children slice open a submenu; leaves carry an
// action for the host to execute. Target is an optional action parameter
// such as a 1-based chapter number.
type MenuItem struct {
	Title    string     `yaml:"title"`
	Action   Action     `yaml:"action"`
	Target   string     `yaml:"target,omitempty"`
	Children []MenuItem `yaml:"children,omitempty"`
}

// IsSubmenu reports whether selecting the item opens a child menu.
func (m MenuItem) IsSubmenu() bool {
	return len(m.Children) > 0
}

// MenuModel is the synthesized menu tree for one playlist or one BD-J
// application, tagged with the classification rule that produced it.
type MenuModel struct {
	Kind  MenuKind   `yaml:"kind"`
	Name  string     `yaml:"name"`
	Items []MenuItem `yaml:"items"`
}

// PlaylistFile describes a single playlist file. Only the size and the
// ordinal position among siblings are ever used; the file content is
// never decoded.
type PlaylistFile struct {
	Name  string `yaml:"name"`
	Path  string `yaml:"path"`
	Size  int64  `yaml:"size"`
	Index int    `yaml:"index"`
}

// StreamFile describes a single stream (.m2ts) file.
type StreamFile struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	Size int64  `yaml:"size"`
}

// ArchiveFile describes a single BD-J archive (.jar) file.
type ArchiveFile struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	Size int64  `yaml:"size"`
}

// ApplicationInfo describes one detected BD-J application. Priority is
// derived from object file size rank and is heuristic, not authoritative.
// Archives holds every archive found on the disc; without decoding the
// object format there is no reliable way to correlate individual archives
// to individual applications, so all are attached to each application.
type ApplicationInfo struct {
	ObjectName string `yaml:"object_name"`
	ObjectPath string `yaml:"object_path"`
	ObjectSize int64  `yaml:"object_size"`
	Priority   int    `yaml:"priority"`
	// HasManifest records whether any associated archive held a
	// readable manifest entry. Diagnostic only.
	HasManifest bool          `yaml:"has_manifest"`
	Menu        MenuModel     `yaml:"menu"`
	Archives    []ArchiveFile `yaml:"archives"`
}

// DiscLayout records which of the expected BDMV subdirectories exist
// under the disc root. It is created once per load and not mutated after
// validation.
type DiscLayout struct {
	Root        string `yaml:"root"`
	BDMVPath    string `yaml:"bdmv_path"`
	PlaylistDir string `yaml:"playlist_dir,omitempty"`
	StreamDir   string `yaml:"stream_dir,omitempty"`
	ClipInfoDir string `yaml:"clipinfo_dir,omitempty"`
	ObjectDir   string `yaml:"object_dir,omitempty"`
	ArchiveDir  string `yaml:"archive_dir,omitempty"`
}

// HasObjectDir reports whether the BD-J object directory was found.
func (l *DiscLayout) HasObjectDir() bool { return l.ObjectDir != "" }

// HasArchiveDir reports whether the BD-J archive directory was found.
func (l *DiscLayout) HasArchiveDir() bool { return l.ArchiveDir != "" }

// DiscScanner defines the structure scanning operations.
type DiscScanner interface {
	Scan(rootPath string) (*DiscLayout, error)
	EnumeratePlaylists(layout *DiscLayout) ([]PlaylistFile, error)
	EnumerateStreams(layout *DiscLayout) ([]StreamFile, error)
}

// MenuClassifier assigns a menu model to a playlist file.
type MenuClassifier interface {
	Classify(playlist PlaylistFile) MenuModel
}
