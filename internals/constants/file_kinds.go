package constants

import (
	"path/filepath"
	"strings"
)

const (
	FileImage    = "IMAGE"
	FilePDF      = "PDF"
	FileDocument = "DOCUMENT"
	FileSheet    = "SPREADSHEET"
	FileUnknown  = "UNKNOWN"
)

// DetectFileKind classifies an upload by its extension.
func DetectFileKind(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileImage
	case ".pdf":
		return FilePDF
	case ".doc", ".docx", ".odt", ".txt":
		return FileDocument
	case ".xls", ".xlsx", ".csv":
		return FileSheet
	default:
		return FileUnknown
	}
}

// DocumentFileAllowed reports whether a student record may carry this file.
func DocumentFileAllowed(filename string) bool {
	switch DetectFileKind(filename) {
	case FileImage, FilePDF, FileDocument:
		return true
	}
	return false
}
