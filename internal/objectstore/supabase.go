// Package objectstore keeps package photos in a Supabase storage bucket.
package objectstore

import (
	"bytes"
	"fmt"
	"strings"

	storage_go "github.com/supabase-community/storage-go"
)

type SupabaseStore struct {
	client  *storage_go.Client
	bucket  string
	baseURL string
}

func NewSupabaseStore(supabaseURL, serviceRoleKey, bucket string) (*SupabaseStore, error) {
	baseURL := strings.TrimRight(supabaseURL, "/")
	if baseURL == "" || serviceRoleKey == "" || bucket == "" {
		return nil, fmt.Errorf("supabase storage: url, key and bucket are required")
	}
	return &SupabaseStore{
		client:  storage_go.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil),
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// UploadFile stores data at path and returns its public URL.
func (s *SupabaseStore) UploadFile(path, contentType string, data []byte) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	upsert := false
	_, err := s.client.UploadFile(s.bucket, path, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	return s.PublicURL(path), nil
}

func (s *SupabaseStore) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, path)
}

func (s *SupabaseStore) DeleteFile(path string) error {
	return s.DeleteFiles([]string{path})
}

func (s *SupabaseStore) DeleteFiles(paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	if _, err := s.client.RemoveFile(s.bucket, paths); err != nil {
		return fmt.Errorf("failed to delete files: %w", err)
	}
	return nil
}
