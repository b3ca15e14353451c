package bluray

import (
	"errors"

	"github.com/bdmvtools/bdmvtools/pkg/common"
)

// ApplicationDetector finds BD-J applications on a scanned layout.
// Implemented by the bdj package; a nil detector disables BD-J support.
type ApplicationDetector interface {
	HasSupport(layout *DiscLayout) bool
	DetectApplications(layout *DiscLayout) []ApplicationInfo
}

// Session owns everything derived from one disc load: the validated
// layout, the enumerated files, the classified menu models and the
// detected BD-J applications. Reloading discards the whole graph and
// rebuilds it from the file system; scanning is read-only so no
// rollback is ever needed. A session is not a singleton, callers create
// one per disc and drop it on eject.
type Session struct {
	scanner    *StructureScanner
	classifier *PlaylistClassifier
	detector   ApplicationDetector

	rootPath     string
	layout       *DiscLayout
	playlists    []PlaylistFile
	streams      []StreamFile
	models       []MenuModel
	mainMenu     *MenuModel
	applications []ApplicationInfo
}

// NewSession creates an empty session. detector may be nil, in which
// case the disc is treated as standard-only.
func NewSession(config ClassifierConfig, detector ApplicationDetector) *Session {
	return &Session{
		scanner:    NewStructureScanner(),
		classifier: NewPlaylistClassifier(config),
		detector:   detector,
	}
}

// Load scans rootPath and builds the session's menu graph. Structure
// and playlist enumeration failures are fatal; stream listing failures
// and BD-J detection failures degrade with a warning because the disc
// remains navigable without them.
func (s *Session) Load(rootPath string) error {
	layout, err := s.scanner.Scan(rootPath)
	if err != nil {
		return err
	}

	playlists, err := s.scanner.EnumeratePlaylists(layout)
	if err != nil {
		return err
	}

	streams, err := s.scanner.EnumerateStreams(layout)
	if err != nil {
		common.LogWarn(common.ErrFailedToListDirectory+": %v", err)
		streams = nil
	}

	models := make([]MenuModel, len(playlists))
	for i, playlist := range playlists {
		models[i] = s.classifier.Classify(playlist)
	}

	var applications []ApplicationInfo
	if s.detector != nil {
		applications = s.detector.DetectApplications(layout)
	}

	main, _ := SelectMainPlaylist(playlists)
	common.LogInfo(common.InfoMainPlaylist, main.Name, common.FormatSize(main.Size))
	var mainMenu *MenuModel
	for i := range playlists {
		if playlists[i].Index == main.Index {
			mainMenu = &models[i]
			break
		}
	}

	s.rootPath = rootPath
	s.layout = layout
	s.playlists = playlists
	s.streams = streams
	s.models = models
	s.mainMenu = mainMenu
	s.applications = applications

	common.LogInfo(common.InfoDiscLoaded, rootPath)
	if s.HasBDJSupport() {
		common.LogInfo(common.InfoBDJSupported)
	} else {
		common.LogInfo(common.InfoBDJNotSupported)
	}
	return nil
}

// Reload rebuilds the session from the same root path, discarding every
// model and application from the previous load.
func (s *Session) Reload() error {
	if s.rootPath == "" {
		return errors.New(common.ErrNoDiscLoaded)
	}
	root := s.rootPath
	if err := s.Load(root); err != nil {
		return err
	}
	common.LogInfo(common.InfoDiscReloaded, root)
	return nil
}

// Loaded reports whether a disc is currently loaded.
func (s *Session) Loaded() bool { return s.layout != nil }

// Layout returns the validated disc layout, or nil before Load.
func (s *Session) Layout() *DiscLayout { return s.layout }

// Playlists returns the enumerated playlist files in file-name order.
func (s *Session) Playlists() []PlaylistFile { return s.playlists }

// Streams returns the stream files, largest first.
func (s *Session) Streams() []StreamFile { return s.streams }

// Models returns one menu model per playlist, in playlist order.
func (s *Session) Models() []MenuModel { return s.models }

// MainMenu returns the menu model of the main playlist, or nil when no
// disc is loaded.
func (s *Session) MainMenu() *MenuModel { return s.mainMenu }

// MainPlaylist returns the playlist selected as the main feature.
func (s *Session) MainPlaylist() (PlaylistFile, bool) {
	return SelectMainPlaylist(s.playlists)
}

// MainStream returns the largest stream file.
func (s *Session) MainStream() (StreamFile, bool) {
	return SelectMainStream(s.streams)
}

// Applications returns the detected BD-J applications, possibly empty.
func (s *Session) Applications() []ApplicationInfo { return s.applications }

// HasBDJSupport reports whether the loaded disc carries BD-J menus.
func (s *Session) HasBDJSupport() bool {
	if s.layout == nil || s.detector == nil {
		return false
	}
	return s.detector.HasSupport(s.layout)
}
