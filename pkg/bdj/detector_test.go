// Package bdj provides tests for BD-J detection and metadata extraction
package bdj

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bdmvtools/bdmvtools/pkg/bluray"
)

// makeBDJDisc builds a BDMV tree with optional BDJO and JAR content and
// returns its scanned layout.
func makeBDJDisc(t *testing.T, objects map[string]int, jars map[string][]byte) *bluray.DiscLayout {
	t.Helper()
	root := t.TempDir()
	bdmv := filepath.Join(root, "BDMV")

	for _, dir := range []string{"PLAYLIST", "STREAM"} {
		if err := os.MkdirAll(filepath.Join(bdmv, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(bdmv, "PLAYLIST", "00000.mpls"), make([]byte, 500), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bdmv, "STREAM", "00000.m2ts"), make([]byte, 1000), 0o644); err != nil {
		t.Fatal(err)
	}

	if objects != nil {
		if err := os.Mkdir(filepath.Join(bdmv, "BDJO"), 0o755); err != nil {
			t.Fatal(err)
		}
		for name, size := range objects {
			if err := os.WriteFile(filepath.Join(bdmv, "BDJO", name), make([]byte, size), 0o644); err != nil {
				t.Fatal(err)
			}
		}
	}
	if jars != nil {
		if err := os.Mkdir(filepath.Join(bdmv, "JAR"), 0o755); err != nil {
			t.Fatal(err)
		}
		for name, content := range jars {
			if err := os.WriteFile(filepath.Join(bdmv, "JAR", name), content, 0o644); err != nil {
				t.Fatal(err)
			}
		}
	}

	layout, err := bluray.NewStructureScanner().Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	return layout
}

// makeJar builds a real zip archive with the given entry names.
func makeJar(t *testing.T, entries ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, entry := range entries {
		f, err := w.Create(entry)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write([]byte("content")); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestHasSupport(t *testing.T) {
	plainJar := makeJar(t, "app/Main.class")

	testCases := []struct {
		name    string
		objects map[string]int
		jars    map[string][]byte
		want    bool
	}{
		{"no BD-J directories", nil, nil, false},
		{"object dir only", map[string]int{"00000.bdjo": 100}, nil, false},
		{"archive dir only", nil, map[string][]byte{"00000.jar": plainJar}, false},
		{"empty object dir", map[string]int{}, map[string][]byte{"00000.jar": plainJar}, false},
		{"empty archive dir", map[string]int{"00000.bdjo": 100}, map[string][]byte{}, false},
		{"both populated", map[string]int{"00000.bdjo": 100}, map[string][]byte{"00000.jar": plainJar}, true},
	}

	detector := NewDetector(DefaultDetectorConfig())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			layout := makeBDJDisc(t, tc.objects, tc.jars)
			if got := detector.HasSupport(layout); got != tc.want {
				t.Errorf("HasSupport() = %t, want %t", got, tc.want)
			}
		})
	}
}

func TestDetectApplications_Unsupported(t *testing.T) {
	layout := makeBDJDisc(t, nil, nil)
	detector := NewDetector(DefaultDetectorConfig())

	if apps := detector.DetectApplications(layout); len(apps) != 0 {
		t.Errorf("DetectApplications() returned %d apps on an unsupported disc, want 0", len(apps))
	}
}

func TestDetectApplications_OrderAndPriority(t *testing.T) {
	jar := makeJar(t, "app/Main.class")
	layout := makeBDJDisc(t,
		map[string]int{"00000.bdjo": 100, "00001.bdjo": 900, "00002.bdjo": 400},
		map[string][]byte{"00000.jar": jar})

	detector := NewDetector(DefaultDetectorConfig())
	apps := detector.DetectApplications(layout)

	if len(apps) != 3 {
		t.Fatalf("DetectApplications() returned %d apps, want 3", len(apps))
	}

	// Applications come back in file-name order.
	wantNames := []string{"00000", "00001", "00002"}
	for i, want := range wantNames {
		if apps[i].ObjectName != want {
			t.Errorf("apps[%d].ObjectName = %q, want %q", i, apps[i].ObjectName, want)
		}
	}

	// Priority follows size rank: largest object file gets 1.
	wantPriorities := map[string]int{"00001": 1, "00002": 2, "00000": 3}
	for _, app := range apps {
		if app.Priority != wantPriorities[app.ObjectName] {
			t.Errorf("app %s priority = %d, want %d", app.ObjectName, app.Priority, wantPriorities[app.ObjectName])
		}
	}
}

func TestDetectApplications_ArchivesAttachedToEveryApp(t *testing.T) {
	jar := makeJar(t, "app/Main.class")
	layout := makeBDJDisc(t,
		map[string]int{"00000.bdjo": 100, "00001.bdjo": 200},
		map[string][]byte{"00000.jar": jar, "11111.jar": jar})

	detector := NewDetector(DefaultDetectorConfig())
	apps := detector.DetectApplications(layout)

	for _, app := range apps {
		if len(app.Archives) != 2 {
			t.Errorf("app %s has %d archives, want all 2", app.ObjectName, len(app.Archives))
		}
	}
}

func TestDetectApplications_CustomPriorityPolicy(t *testing.T) {
	jar := makeJar(t, "app/Main.class")
	layout := makeBDJDisc(t,
		map[string]int{"00000.bdjo": 100, "00001.bdjo": 900},
		map[string][]byte{"00000.jar": jar})

	detector := NewDetector(DefaultDetectorConfig())
	detector.SetPriorityPolicy(func(sizeRank int) int { return sizeRank * 10 })
	apps := detector.DetectApplications(layout)

	wantPriorities := map[string]int{"00001": 0, "00000": 10}
	for _, app := range apps {
		if app.Priority != wantPriorities[app.ObjectName] {
			t.Errorf("app %s priority = %d, want %d", app.ObjectName, app.Priority, wantPriorities[app.ObjectName])
		}
	}
}

func TestExtractMenu_BaseTemplate(t *testing.T) {
	extractor := NewExtractor(DefaultDetectorConfig())
	app := bluray.ApplicationInfo{
		ObjectName: "00000",
		Archives:   []bluray.ArchiveFile{{Name: "00000", Size: 100}},
	}

	menu := extractor.ExtractMenu(&app)

	if menu.Kind != bluray.KindBDJApplication {
		t.Errorf("Kind = %q, want %q", menu.Kind, bluray.KindBDJApplication)
	}

	actions := menuActions(menu)
	for _, want := range []bluray.Action{
		bluray.ActionBDJPlayMain,
		bluray.ActionBDJInteractiveMenu,
		bluray.ActionBDJSettings,
		bluray.ActionFallbackMenu,
	} {
		if !actions[want] {
			t.Errorf("menu is missing the always-present action %q", want)
		}
	}

	// Single small archive: no chapter or special entries.
	if actions[bluray.ActionBDJChapters] {
		t.Error("chapter entry present with only one archive")
	}
	if actions[bluray.ActionBDJSpecial] {
		t.Error("special entry present below the size threshold")
	}
}

func TestExtractMenu_ChaptersWithMultipleArchives(t *testing.T) {
	extractor := NewExtractor(DefaultDetectorConfig())
	app := bluray.ApplicationInfo{
		ObjectName: "00000",
		Archives: []bluray.ArchiveFile{
			{Name: "00000", Size: 100},
			{Name: "11111", Size: 100},
		},
	}

	menu := extractor.ExtractMenu(&app)
	if !menuActions(menu)[bluray.ActionBDJChapters] {
		t.Error("chapter entry missing with more than one archive")
	}
}

func TestExtractMenu_SpecialAboveSizeThreshold(t *testing.T) {
	config := DetectorConfig{SpecialFeatureSizeThreshold: 1000}
	extractor := NewExtractor(config)
	app := bluray.ApplicationInfo{
		ObjectName: "00000",
		Archives:   []bluray.ArchiveFile{{Name: "00000", Size: 2000}},
	}

	menu := extractor.ExtractMenu(&app)
	if !menuActions(menu)[bluray.ActionBDJSpecial] {
		t.Error("special entry missing above the aggregate size threshold")
	}
}

func TestExtractMenu_SettingsSubmenu(t *testing.T) {
	extractor := NewExtractor(DefaultDetectorConfig())
	app := bluray.ApplicationInfo{ObjectName: "00000"}

	menu := extractor.ExtractMenu(&app)
	var settings *bluray.MenuItem
	for i := range menu.Items {
		if menu.Items[i].Action == bluray.ActionBDJSettings {
			settings = &menu.Items[i]
		}
	}
	if settings == nil {
		t.Fatal("settings entry missing")
	}
	if len(settings.Children) != 5 {
		t.Fatalf("settings submenu has %d items, want 5", len(settings.Children))
	}
	if settings.Children[3].Action != bluray.ActionBDJNetworkSettings {
		t.Errorf("settings submenu missing the network stub, got %q", settings.Children[3].Action)
	}
	if settings.Children[4].Action != bluray.ActionBack {
		t.Errorf("settings submenu should end with back, got %q", settings.Children[4].Action)
	}
}

func TestDetectApplications_ManifestProbe(t *testing.T) {
	withManifest := makeJar(t, "META-INF/MANIFEST.MF", "app/Main.class")
	withoutManifest := makeJar(t, "app/Main.class")

	testCases := []struct {
		name string
		jars map[string][]byte
		want bool
	}{
		{"manifest present", map[string][]byte{"00000.jar": withManifest}, true},
		{"manifest absent", map[string][]byte{"00000.jar": withoutManifest}, false},
		{"corrupt archive degrades to absent", map[string][]byte{"00000.jar": []byte("not a zip")}, false},
		{"one of several has a manifest", map[string][]byte{
			"00000.jar": withoutManifest,
			"11111.jar": withManifest,
		}, true},
	}

	detector := NewDetector(DefaultDetectorConfig())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			layout := makeBDJDisc(t, map[string]int{"00000.bdjo": 100}, tc.jars)
			apps := detector.DetectApplications(layout)
			if len(apps) != 1 {
				t.Fatalf("DetectApplications() returned %d apps, want 1", len(apps))
			}
			if apps[0].HasManifest != tc.want {
				t.Errorf("HasManifest = %t, want %t", apps[0].HasManifest, tc.want)
			}
		})
	}
}

// menuActions flattens a menu's root item actions into a set.
func menuActions(menu bluray.MenuModel) map[bluray.Action]bool {
	actions := make(map[bluray.Action]bool, len(menu.Items))
	for _, item := range menu.Items {
		actions[item.Action] = true
	}
	return actions
}
