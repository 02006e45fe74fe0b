package vanilla

import (
	"github.com/goliatone/go-formbuilder/pkg/markup"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

var fileIcons = map[model.FileKind]string{
	model.FileKindImage:       "🖼️",
	model.FileKindVideo:       "🎥",
	model.FileKindAudio:       "🎵",
	model.FileKindPDF:         "📄",
	model.FileKindDocument:    "📝",
	model.FileKindSpreadsheet: "📊",
	model.FileKindArchive:     "🗜️",
	model.FileKindOther:       "📎",
}

// FilePreviewItem renders one attached upload with its kind icon, name,
// formatted size and a remove button carrying the file name.
func FilePreviewItem(file model.UploadedFile) *markup.Node {
	icon, ok := fileIcons[file.Kind()]
	if !ok {
		icon = fileIcons[model.FileKindOther]
	}
	return markup.El("div",
		markup.El("div", markup.Text(icon)).Class(ClassFileIcon.String()),
		markup.El("div",
			markup.El("div", markup.Text(file.Name)).Class(ClassFileName.String()),
			markup.El("div", markup.Text(model.FormatSize(file.Size))).Class(ClassFileSize.String()),
		).Class(ClassFileInfo.String()),
		markup.El("button", markup.Text("Remove")).
			Class(ClassFileRemove.String()).
			Set("data-file-name", file.Name),
	).Class(ClassFilePreview.String())
}
