package assets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const defaultCloudinaryBase = "https://api.cloudinary.com/v1_1"

// CloudinaryUploader posts images to Cloudinary's unsigned upload
// endpoint and returns the secure URL from the response.
type CloudinaryUploader struct {
	baseURL      string
	cloudName    string
	uploadPreset string
	folder       string
	httpClient   *http.Client
}

// NewCloudinaryUploader builds an uploader for the given cloud. baseURL
// overrides the Cloudinary API host and exists for tests; pass "" in
// production.
func NewCloudinaryUploader(baseURL, cloudName, uploadPreset, folder string) *CloudinaryUploader {
	if baseURL == "" {
		baseURL = defaultCloudinaryBase
	}
	return &CloudinaryUploader{
		baseURL:      strings.TrimRight(baseURL, "/"),
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		folder:       folder,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload sends one multipart POST with the file and the unsigned-upload
// fields. On success it returns the durable secure_url.
func (u *CloudinaryUploader) Upload(ctx context.Context, localPath string) (string, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return "", &UploadError{Host: "cloudinary", Err: err}
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := createImagePart(writer, filepath.Base(localPath), contentTypeFor(localPath))
	if err != nil {
		return "", &UploadError{Host: "cloudinary", Err: err}
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", &UploadError{Host: "cloudinary", Err: err}
	}
	fields := map[string]string{
		"upload_preset": u.uploadPreset,
		"cloud_name":    u.cloudName,
		"folder":        u.folder,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return "", &UploadError{Host: "cloudinary", Err: err}
		}
	}
	if err := writer.Close(); err != nil {
		return "", &UploadError{Host: "cloudinary", Err: err}
	}

	url := fmt.Sprintf("%s/%s/image/upload", u.baseURL, u.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", &UploadError{Host: "cloudinary", Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", &UploadError{Host: "cloudinary", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", &UploadError{Host: "cloudinary", Err: fmt.Errorf("status %s", resp.Status)}
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &UploadError{Host: "cloudinary", Err: err}
	}
	if result.SecureURL == "" {
		return "", &UploadError{Host: "cloudinary", Err: fmt.Errorf("response carried no secure_url")}
	}
	return result.SecureURL, nil
}

// createImagePart is CreateFormFile with an explicit content type.
func createImagePart(writer *multipart.Writer, filename, contentType string) (io.Writer, error) {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	return writer.CreatePart(header)
}
