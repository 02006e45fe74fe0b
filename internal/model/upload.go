package model

import (
	"io"
	"math"
	"path"
	"strconv"
	"strings"
)

// UploadedFile references a user-selected blob attached to a file field. It is
// never persisted; the bytes stay with the caller until Open is invoked.
type UploadedFile struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// FileKind groups uploads for preview icons.
type FileKind string

const (
	FileKindImage       FileKind = "image"
	FileKindVideo       FileKind = "video"
	FileKindAudio       FileKind = "audio"
	FileKindPDF         FileKind = "pdf"
	FileKindDocument    FileKind = "document"
	FileKindSpreadsheet FileKind = "spreadsheet"
	FileKindArchive     FileKind = "archive"
	FileKindOther       FileKind = "other"
)

// Kind classifies the upload from its media type first and its extension
// second.
func (f UploadedFile) Kind() FileKind {
	major, _, _ := strings.Cut(strings.ToLower(f.ContentType), "/")
	switch major {
	case "image":
		return FileKindImage
	case "video":
		return FileKindVideo
	case "audio":
		return FileKindAudio
	}

	switch strings.TrimPrefix(strings.ToLower(path.Ext(f.Name)), ".") {
	case "pdf":
		return FileKindPDF
	case "doc", "docx":
		return FileKindDocument
	case "xls", "xlsx":
		return FileKindSpreadsheet
	case "zip", "rar", "7z":
		return FileKindArchive
	default:
		return FileKindOther
	}
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatSize renders a byte count using 1024-based units rounded to two
// decimals, e.g. "0 Bytes", "1.5 KB".
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	i := 0
	for threshold := int64(1024); i < len(sizeUnits)-1 && bytes >= threshold; threshold *= 1024 {
		i++
	}
	value := math.Round(float64(bytes)/math.Pow(1024, float64(i))*100) / 100
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + sizeUnits[i]
}
