package assets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "produto.png")
	if err := os.WriteFile(path, []byte("png-bytes"), 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}
	return path
}

func TestCloudinaryUploadSendsMultipartFields(t *testing.T) {
	var gotPreset, gotCloud, gotFolder, gotFilename, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dvqtest/image/upload" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		gotPreset = r.FormValue("upload_preset")
		gotCloud = r.FormValue("cloud_name")
		gotFolder = r.FormValue("folder")
		if file, header, err := r.FormFile("file"); err == nil {
			gotFilename = header.Filename
			gotContentType = header.Header.Get("Content-Type")
			file.Close()
		} else {
			t.Errorf("form file: %v", err)
		}
		w.Write([]byte(`{"secure_url":"https://res.cloudinary.test/produtos/x.png"}`))
	}))
	defer srv.Close()

	uploader := NewCloudinaryUploader(srv.URL, "dvqtest", "react-native", "produtos")
	url, err := uploader.Upload(context.Background(), writeImage(t))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "https://res.cloudinary.test/produtos/x.png" {
		t.Fatalf("url = %q", url)
	}
	if gotPreset != "react-native" || gotCloud != "dvqtest" || gotFolder != "produtos" {
		t.Fatalf("form fields = preset:%q cloud:%q folder:%q", gotPreset, gotCloud, gotFolder)
	}
	if gotFilename != "produto.png" {
		t.Fatalf("filename = %q", gotFilename)
	}
	if gotContentType != "image/png" {
		t.Fatalf("content type = %q", gotContentType)
	}
}

func TestCloudinaryUploadErrorsAreUploadErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusBadRequest)
	}))
	defer srv.Close()

	uploader := NewCloudinaryUploader(srv.URL, "dvqtest", "preset", "produtos")
	_, err := uploader.Upload(context.Background(), writeImage(t))
	var uploadErr *UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("err = %v, want *UploadError", err)
	}
}

func TestCloudinaryUploadRejectsMissingSecureURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	uploader := NewCloudinaryUploader(srv.URL, "dvqtest", "preset", "produtos")
	if _, err := uploader.Upload(context.Background(), writeImage(t)); err == nil {
		t.Fatalf("expected error when secure_url is absent")
	}
}

func TestCloudinaryUploadMissingFile(t *testing.T) {
	uploader := NewCloudinaryUploader("http://127.0.0.1:0", "dvqtest", "preset", "produtos")
	_, err := uploader.Upload(context.Background(), filepath.Join(t.TempDir(), "nope.jpg"))
	var uploadErr *UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("err = %v, want *UploadError", err)
	}
}
