// Package bluray provides tests for the disc session lifecycle
package bluray

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// stubDetector is a canned ApplicationDetector for session tests; the
// real detector lives in the bdj package.
type stubDetector struct {
	supported bool
	apps      []ApplicationInfo
}

func (d *stubDetector) HasSupport(layout *DiscLayout) bool { return d.supported }
func (d *stubDetector) DetectApplications(layout *DiscLayout) []ApplicationInfo {
	if !d.supported {
		return nil
	}
	return d.apps
}

func TestSession_Load(t *testing.T) {
	root := makeDisc(t,
		map[string]int{"00000.mpls": 500, "00001.mpls": 5000},
		map[string]int{"00000.m2ts": 2000, "00001.m2ts": 9000})

	session := NewSession(DefaultClassifierConfig(), nil)
	if err := session.Load(root); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if !session.Loaded() {
		t.Error("Loaded() = false after a successful load")
	}
	if len(session.Playlists()) != 2 {
		t.Errorf("Playlists() has %d entries, want 2", len(session.Playlists()))
	}
	if len(session.Models()) != 2 {
		t.Errorf("Models() has %d entries, want 2", len(session.Models()))
	}

	// The larger playlist is the main feature; its model is the content
	// menu, and MainMenu points at it.
	main, ok := session.MainPlaylist()
	if !ok || main.Name != "00001" {
		t.Errorf("MainPlaylist() = %q (ok=%t), want 00001", main.Name, ok)
	}
	if session.MainMenu() == nil {
		t.Fatal("MainMenu() = nil after load")
	}
	if session.MainMenu().Kind != KindStandardContent {
		t.Errorf("MainMenu().Kind = %q, want %q", session.MainMenu().Kind, KindStandardContent)
	}

	stream, ok := session.MainStream()
	if !ok || stream.Name != "00001" {
		t.Errorf("MainStream() = %q (ok=%t), want the largest stream 00001", stream.Name, ok)
	}

	if session.HasBDJSupport() {
		t.Error("HasBDJSupport() = true with a nil detector")
	}
}

func TestSession_LoadInvalidDisc(t *testing.T) {
	session := NewSession(DefaultClassifierConfig(), nil)
	if err := session.Load(t.TempDir()); err == nil {
		t.Error("Load() should fail on a directory without a BDMV tree")
	}
	if session.Loaded() {
		t.Error("Loaded() = true after a failed load")
	}
}

func TestSession_Reload(t *testing.T) {
	root := makeDisc(t,
		map[string]int{"00000.mpls": 500},
		map[string]int{"00000.m2ts": 2000})

	session := NewSession(DefaultClassifierConfig(), nil)
	if err := session.Load(root); err != nil {
		t.Fatal(err)
	}

	// A new playlist appearing between loads is picked up by Reload.
	writeSized(t, filepath.Join(root, "BDMV", "PLAYLIST", "00001.mpls"), 4000)
	if err := session.Reload(); err != nil {
		t.Fatalf("Reload() failed: %v", err)
	}
	if len(session.Playlists()) != 2 {
		t.Errorf("Playlists() has %d entries after reload, want 2", len(session.Playlists()))
	}
}

func TestSession_ReloadWithoutLoad(t *testing.T) {
	session := NewSession(DefaultClassifierConfig(), nil)
	if err := session.Reload(); err == nil {
		t.Error("Reload() should fail before any Load()")
	}
}

func TestSession_DetectorIntegration(t *testing.T) {
	root := makeDisc(t,
		map[string]int{"00000.mpls": 500},
		map[string]int{"00000.m2ts": 2000})

	detector := &stubDetector{
		supported: true,
		apps: []ApplicationInfo{{
			ObjectName: "00000",
			Priority:   1,
			Menu:       MenuModel{Kind: KindBDJApplication, Name: "00000"},
		}},
	}
	session := NewSession(DefaultClassifierConfig(), detector)
	if err := session.Load(root); err != nil {
		t.Fatal(err)
	}

	if !session.HasBDJSupport() {
		t.Error("HasBDJSupport() = false with a supporting detector")
	}
	if len(session.Applications()) != 1 {
		t.Errorf("Applications() has %d entries, want 1", len(session.Applications()))
	}
}

func TestReportExporter_ExportReport(t *testing.T) {
	root := makeDisc(t,
		map[string]int{"00000.mpls": 500, "00001.mpls": 5000},
		map[string]int{"00000.m2ts": 2000})

	session := NewSession(DefaultClassifierConfig(), nil)
	if err := session.Load(root); err != nil {
		t.Fatal(err)
	}

	outputFile := filepath.Join(t.TempDir(), "report.yaml")
	exporter := NewReportExporter()
	if err := exporter.ExportReport(session, outputFile); err != nil {
		t.Fatalf("ExportReport() failed: %v", err)
	}

	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatal(err)
	}
	var report DiscReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		t.Fatalf("exported report is not valid YAML: %v", err)
	}
	if len(report.Playlists) != 2 {
		t.Errorf("report has %d playlists, want 2", len(report.Playlists))
	}
	if len(report.Menus) != 2 {
		t.Errorf("report has %d menus, want 2", len(report.Menus))
	}
	if report.BDJSupported {
		t.Error("report claims BD-J support on a standard disc")
	}
}
