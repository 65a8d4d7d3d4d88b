package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFileKind(t *testing.T) {
	assert.Equal(t, FileImage, DetectFileKind("Photo.JPG"))
	assert.Equal(t, FilePDF, DetectFileKind("birth-certificate.pdf"))
	assert.Equal(t, FileSheet, DetectFileKind("marks.xlsx"))
	assert.Equal(t, FileUnknown, DetectFileKind("song.mp3"))
	assert.Equal(t, FileUnknown, DetectFileKind("noext"))

	assert.True(t, DocumentFileAllowed("tc.docx"))
	assert.False(t, DocumentFileAllowed("marks.csv"))
}
