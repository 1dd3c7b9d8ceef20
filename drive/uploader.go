package drive

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"shortforge/config"
)

// Uploader pushes rendered clips into a Drive folder.
type Uploader struct {
	service *drive.Service
}

// NewUploader authenticates with a service-account JSON key.
func NewUploader(ctx context.Context, serviceAccountJSON []byte) (*Uploader, error) {
	cfg, err := google.JWTConfigFromJSON(serviceAccountJSON, drive.DriveFileScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account: %w", err)
	}

	service, err := drive.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create Drive service: %w", err)
	}

	return &Uploader{service: service}, nil
}

// Upload stores the file in folderID and returns its web view link.
func (u *Uploader) Upload(ctx context.Context, path, folderID string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open clip: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat clip: %w", err)
	}
	log.Printf("Uploading %s (%.2f MB) to Drive", path, float64(info.Size())/(1024*1024))

	meta := &drive.File{
		Name:    filepath.Base(path),
		Parents: []string{folderID},
	}

	created, err := u.service.Files.
		Create(meta).
		Media(file, googleapi.ContentType(config.VideoMIMEType)).
		Fields("id", "name", "webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload clip: %w", err)
	}

	log.Printf("Uploaded %s (id %s)", created.Name, created.Id)
	return created.WebViewLink, nil
}
