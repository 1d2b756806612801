package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"fizika_backend/internals/configs"
)

// Storage buckets. Both are public-read, write goes through the service key.
const (
	BucketContentFiles    = "content-files"
	BucketPaymentReceipts = "payment-receipts"
)

const maxReceiptWidth = 1600

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}

// UploadToStorage PUTs an object into the Supabase storage bucket.
func UploadToStorage(bucket, filename, contentType string, data *bytes.Buffer) error {
	if configs.StorageURL == "" || configs.StorageKey == "" {
		return fmt.Errorf("STORAGE_PROJECT_URL or STORAGE_SERVICE_KEY is not set")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", configs.StorageURL, bucket, filename)

	req, err := http.NewRequest(http.MethodPut, endpoint, data)
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+configs.StorageKey)
	req.Header.Set("Content-Type", contentType)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// DeleteFromStorage removes an object from a bucket.
func DeleteFromStorage(bucket, path string) error {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", configs.StorageURL, bucket, path)

	req, err := http.NewRequest(http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+configs.StorageKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete failed with status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func PublicURL(bucket, filename string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		configs.StorageURL, bucket, url.PathEscape(filename))
}

// ExtractStoragePath splits a public object URL back into bucket and path.
func ExtractStoragePath(fullURL string) (bucket string, path string, err error) {
	u, err := url.Parse(fullURL)
	if err != nil {
		return "", "", err
	}
	parts := strings.SplitN(u.Path, "/object/public/", 2)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("not a public storage object URL")
	}
	pathParts := strings.SplitN(parts[1], "/", 2)
	if len(pathParts) < 2 {
		return "", "", fmt.Errorf("failed to extract bucket and path")
	}
	return pathParts[0], pathParts[1], nil
}

// UploadFile streams an arbitrary multipart file (PDF, etc.) into a bucket
// and returns the public URL.
func UploadFile(bucket, folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	filename := GenerateUniqueFilename(folder, fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := UploadToStorage(bucket, filename, contentType, buf); err != nil {
		return "", err
	}
	return PublicURL(bucket, filename), nil
}

// UploadReceiptImage decodes a receipt photo, downscales it and re-encodes as
// webp before upload. Keeps the receipts bucket small without losing legibility.
func UploadReceiptImage(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("file is not a valid image: %w", err)
	}

	if img.Bounds().Dx() > maxReceiptWidth {
		img = imaging.Resize(img, maxReceiptWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("webp encode failed: %w", err)
	}

	base := strings.TrimSuffix(fileHeader.Filename, "."+strings.ToLower(extOf(fileHeader.Filename)))
	filename := GenerateUniqueFilename(folder, base+".webp")

	if err := UploadToStorage(BucketPaymentReceipts, filename, "image/webp", buf); err != nil {
		return "", err
	}
	return PublicURL(BucketPaymentReceipts, filename), nil
}

func extOf(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return ""
	}
	return name[idx+1:]
}
