package common

import (
	"fmt"
	"log"
)

// Global variable to control debug output
var VerboseMode bool = false

// SetVerboseMode enables or disables verbose/debug output
func SetVerboseMode(verbose bool) {
	VerboseMode = verbose
}

// Error messages
const (
	ErrFailedToAccessRoot       = "failed to access disc root"
	ErrRootNotADirectory        = "disc root is not a directory"
	ErrInvalidDiscStructure     = "invalid Blu-ray disc structure"
	ErrMissingPlaylistDirectory = "missing playlist directory"
	ErrMissingStreamDirectory   = "missing stream directory"
	ErrNoPlaylistsFound         = "no playlist files found"
	ErrFailedToListDirectory    = "failed to list directory"
	ErrFailedToLoadConfig       = "failed to load heuristics config"
	ErrFailedToParseConfig      = "failed to parse heuristics config"
	ErrFailedToWriteReport      = "failed to write report file"
	ErrNoDiscLoaded             = "no disc loaded"
)

// Info messages
const (
	InfoDiscLoaded        = "Loaded disc: %s"
	InfoPlaylistsFound    = "Found %d playlist files"
	InfoStreamsFound      = "Found %d stream files"
	InfoMainPlaylist      = "Main playlist: %s (%s)"
	InfoBDJSupported      = "BD-J interactive menus detected"
	InfoBDJNotSupported   = "No BD-J interactive menus on this disc"
	InfoApplicationsFound = "Found %d BD-J applications"
	InfoReportWritten     = "Report written to: %s"
	InfoMenuModelWritten  = "Menu model written to: %s"
	InfoConfigLoaded      = "Heuristics config loaded from: %s"
	InfoDiscReloaded      = "Disc reloaded: %s"
)

// Debug messages
const (
	DebugCheckingDirectory  = "Checking for %s directory: %s"
	DebugPlaylistEnumerated = "Playlist %s: %d bytes (index %d)"
	DebugStreamEnumerated   = "Stream %s: %d bytes"
	DebugClassified         = "Classified %s as %s (%d root items)"
	DebugChapterEstimate    = "Estimated %d chapters for %s (%d bytes)"
	DebugObjectFileFound    = "Object file %s: %d bytes (priority %d)"
	DebugArchiveFileFound   = "Archive file %s: %d bytes"
	DebugManifestProbe      = "Archive %s: manifest present = %t"
	DebugActionToken        = "Action token: %s (target=%q)"
)

// Warning messages
const (
	WarnBDJListingFailed   = "Could not list BD-J directories, treating disc as standard-only: %v"
	WarnArchiveProbeFailed = "Could not probe archive %s: %v"
	WarnEmptyMenu          = "Menu for %s has no items"
	WarnDegenerateChapters = "Chapter estimate for %s was %d, clamped to %d"
	WarnConfigValueReset   = "Config value %s was %d, reset to the default %d"
)

// LogInfo logs an informational message
func LogInfo(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[INFO] "+message, args...)
	} else {
		log.Printf("[INFO] %s", message)
	}
}

// LogWarn logs a warning message
func LogWarn(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[WARN] "+message, args...)
	} else {
		log.Printf("[WARN] %s", message)
	}
}

// LogError logs an error message
func LogError(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[ERROR] "+message, args...)
	} else {
		log.Printf("[ERROR] %s", message)
	}
}

// LogDebug logs a debug message (only if VerboseMode is enabled)
func LogDebug(message string, args ...interface{}) {
	if !VerboseMode {
		return
	}
	if len(args) > 0 {
		log.Printf("[DEBUG] "+message, args...)
	} else {
		log.Printf("[DEBUG] %s", message)
	}
}

// FormatError creates a formatted error with additional context
func FormatError(baseMessage string, details interface{}) error {
	if err, ok := details.(error); ok {
		return fmt.Errorf("%s: %w", baseMessage, err)
	}
	return fmt.Errorf("%s: %v", baseMessage, details)
}
