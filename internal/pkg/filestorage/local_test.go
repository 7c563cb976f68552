package filestorage

import (
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"testing"
)

func fileHeader(filename, contentType string) *multipart.FileHeader {
	header := make(textproto.MIMEHeader)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{
		Filename: filename,
		Header:   header,
	}
}

func TestIsPDF(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		want        bool
	}{
		{"pdf content type", "resume.bin", "application/pdf", true},
		{"pdf extension only", "resume.pdf", "application/octet-stream", true},
		{"uppercase extension", "RESUME.PDF", "", true},
		{"neither", "resume.docx", "application/msword", false},
		{"no extension no type", "resume", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPDF(fileHeader(tt.filename, tt.contentType)); got != tt.want {
				t.Errorf("IsPDF(%q, %q) = %v, want %v", tt.filename, tt.contentType, got, tt.want)
			}
		})
	}
}

func TestIsPDFNilHeader(t *testing.T) {
	if IsPDF(nil) {
		t.Error("IsPDF(nil) = true, want false")
	}
}

func TestGetFullPath(t *testing.T) {
	ls := &LocalStorage{basePath: "uploads"}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"stored url", "http://localhost:8080/uploads/abc.pdf", filepath.Join("uploads", "abc.pdf")},
		{"relative path", "uploads/abc.pdf", filepath.Join("uploads", "abc.pdf")},
		{"bare filename", "abc.pdf", filepath.Join("uploads", "abc.pdf")},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ls.GetFullPath(tt.in); got != tt.want {
				t.Errorf("GetFullPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSaveAndDeleteFile(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}

	if err := ls.DeleteFile("nonexistent.pdf"); err != nil {
		t.Errorf("DeleteFile() on missing file = %v, want nil", err)
	}
	if err := ls.DeleteFile(""); err != nil {
		t.Errorf("DeleteFile(\"\") = %v, want nil", err)
	}
}

func TestSaveFileNilHeader(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}

	path, err := ls.SaveFile(nil)
	if err != nil {
		t.Fatalf("SaveFile(nil) error = %v", err)
	}
	if path != "" {
		t.Errorf("SaveFile(nil) = %q, want empty path", path)
	}
}
