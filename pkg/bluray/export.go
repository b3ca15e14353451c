package bluray

import (
	"io"
	"os"

	"github.com/bdmvtools/bdmvtools/pkg/common"
	"gopkg.in/yaml.v3"
)

// DiscReport is the YAML-serializable summary of one loaded disc.
type DiscReport struct {
	Root         string            `yaml:"root"`
	BDJSupported bool              `yaml:"bdj_supported"`
	Playlists    []PlaylistFile    `yaml:"playlists"`
	Streams      []StreamFile      `yaml:"streams,omitempty"`
	Menus        []MenuModel       `yaml:"menus"`
	Applications []ApplicationInfo `yaml:"applications,omitempty"`
}

// ReportExporter writes disc reports and menu models as YAML.
type ReportExporter struct{}

// NewReportExporter creates a new report exporter instance.
func NewReportExporter() *ReportExporter {
	return &ReportExporter{}
}

// BuildReport assembles a report from a loaded session.
func (e *ReportExporter) BuildReport(session *Session) DiscReport {
	return DiscReport{
		Root:         session.Layout().Root,
		BDJSupported: session.HasBDJSupport(),
		Playlists:    session.Playlists(),
		Streams:      session.Streams(),
		Menus:        session.Models(),
		Applications: session.Applications(),
	}
}

// ExportReport writes the session's disc report to outputFile.
func (e *ReportExporter) ExportReport(session *Session, outputFile string) error {
	report := e.BuildReport(session)
	data, err := yaml.Marshal(report)
	if err != nil {
		return common.FormatError(common.ErrFailedToWriteReport, err)
	}
	if err := os.WriteFile(outputFile, data, 0o644); err != nil {
		return common.FormatError(common.ErrFailedToWriteReport, err)
	}
	common.LogInfo(common.InfoReportWritten, outputFile)
	return nil
}

// WriteMenuModels writes the given menu models as a YAML document.
func (e *ReportExporter) WriteMenuModels(models []MenuModel, w io.Writer) error {
	data, err := yaml.Marshal(struct {
		Menus []MenuModel `yaml:"menus"`
	}{Menus: models})
	if err != nil {
		return common.FormatError(common.ErrFailedToWriteReport, err)
	}
	_, err = w.Write(data)
	return err
}

// ExportMenuModels writes the given menu models to outputFile.
func (e *ReportExporter) ExportMenuModels(models []MenuModel, outputFile string) error {
	file, err := os.Create(outputFile)
	if err != nil {
		return common.FormatError(common.ErrFailedToWriteReport, err)
	}
	defer file.Close()

	if err := e.WriteMenuModels(models, file); err != nil {
		return err
	}
	common.LogInfo(common.InfoMenuModelWritten, outputFile)
	return nil
}
