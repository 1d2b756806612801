package constants

import (
	"path/filepath"
	"strings"
)

// File kinds for uploaded content attachments
const (
	FileKindAudio    = "audio"
	FileKindDocument = "document"
	FileKindPDF      = "pdf"
	FileKindSlides   = "slides"
	FileKindImage    = "image"
	FileKindUnknown  = "unknown"
)

// DetectFileKind classifies an upload by extension.
func DetectFileKind(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp3", ".wav":
		return FileKindAudio
	case ".doc", ".docx":
		return FileKindDocument
	case ".pdf":
		return FileKindPDF
	case ".ppt", ".pptx":
		return FileKindSlides
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileKindImage
	default:
		return FileKindUnknown
	}
}

// IsAllowedContentFile limits lesson/summary/exercise attachments to the
// kinds the viewer can render.
func IsAllowedContentFile(filename string) bool {
	return DetectFileKind(filename) != FileKindUnknown
}
