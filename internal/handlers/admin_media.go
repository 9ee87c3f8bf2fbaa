package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"charitypress/internal/imaging"
)

const (
	// maxUploadSize is the maximum allowed file upload size (50 MB).
	maxUploadSize = 50 << 20
)

// allowedMediaTypes defines MIME types accepted for upload. The forms
// store the returned URL on the owning record (banner image, album
// photo, partner logo, resource file).
var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
}

// thumbableTypes are image types that support variant generation.
// GIF is excluded to preserve animation; SVG is vector.
var thumbableTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// MediaUpload handles multipart file upload to S3 and responds with the
// public URL for the admin form to store. Image uploads also get a thumb
// variant.
func (a *Admin) MediaUpload(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		writeMediaError(w, "Object storage is not configured.", http.StatusServiceUnavailable)
		return
	}

	// Limit request body to maxUploadSize + some overhead for form fields.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeMediaError(w, "File too large. Maximum size is 50 MB.", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeMediaError(w, "No file provided.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeMediaError(w, "File too large. Maximum size is 50 MB.", http.StatusRequestEntityTooLarge)
		return
	}

	// Detect content type by sniffing the first 512 bytes.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		writeMediaError(w, "Failed to read file.", http.StatusInternalServerError)
		return
	}
	contentType := http.DetectContentType(sniffBuf[:n])

	// SVG detection: DetectContentType returns text/xml or application/xml for SVGs.
	if strings.HasSuffix(strings.ToLower(header.Filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		contentType = "image/svg+xml"
	}

	if !allowedMediaTypes[contentType] {
		writeMediaError(w, fmt.Sprintf("File type %q is not allowed.", contentType), http.StatusBadRequest)
		return
	}

	// Seek back to start after sniffing.
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeMediaError(w, "Failed to process file.", http.StatusInternalServerError)
		return
	}

	// Generate a unique storage key.
	now := time.Now()
	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = extensionFromType(contentType)
	}
	fileID := uuid.New().String()
	key := fmt.Sprintf("media/%d/%02d/%s%s", now.Year(), now.Month(), fileID, ext)

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		writeMediaError(w, "Failed to read file.", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	if err := a.storageClient.Upload(ctx, key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("s3 upload failed", "error", err, "key", key)
		writeMediaError(w, "Failed to upload file.", http.StatusInternalServerError)
		return
	}

	// Generate and upload a thumb variant for supported image types.
	var thumbURL string
	if thumbableTypes[contentType] {
		variants, err := imaging.GenerateVariants(fileBytes, []imaging.Variant{
			{Name: "thumb", Width: 400, Quality: 80},
		})
		if err != nil {
			slog.Warn("thumbnail generation failed", "error", err, "key", key)
		} else if len(variants) > 0 {
			thumb := variants[0]
			tk := fmt.Sprintf("media/%d/%02d/%s_thumb.jpg", now.Year(), now.Month(), fileID)
			if err := a.storageClient.Upload(ctx, tk, thumb.ContentType, bytes.NewReader(thumb.Data), int64(len(thumb.Data))); err != nil {
				slog.Warn("thumbnail upload failed", "error", err, "key", tk)
			} else {
				thumbURL = a.storageClient.FileURL(tk)
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"url":       a.storageClient.FileURL(key),
		"thumb_url": thumbURL,
		"filename":  header.Filename,
		"type":      contentType,
	})
}

// writeMediaError responds with a JSON error for the upload widget.
func writeMediaError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// extensionFromType maps a MIME type to a file extension when the
// uploaded filename has none.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	case "application/pdf":
		return ".pdf"
	default:
		return ""
	}
}
