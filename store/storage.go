package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// Storage exposes file operations within a bucket.
type Storage struct {
	client *Client
}

// File is a stored binary object's metadata.
type File struct {
	ID   string `json:"$id"`
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// FileList is one page of a bucket listing.
type FileList struct {
	Total int    `json:"total"`
	Files []File `json:"files"`
}

// ListFiles returns one page of files in the bucket.
func (s *Storage) ListFiles(ctx context.Context, bucketID string, limit int, cursor string) (*FileList, error) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	resp, err := s.client.do(ctx, http.MethodGet, "/storage/buckets/"+bucketID+"/files", q, nil, "")
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var list FileList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode file list: %w", err)
	}
	return &list, nil
}

// ListAllFiles pages through the whole bucket.
func (s *Storage) ListAllFiles(ctx context.Context, bucketID string) ([]File, error) {
	var all []File
	cursor := ""
	for {
		page, err := s.ListFiles(ctx, bucketID, DefaultPageLimit, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Files...)
		if len(page.Files) < DefaultPageLimit {
			return all, nil
		}
		cursor = page.Files[len(page.Files)-1].ID
	}
}

// CreateFile uploads content as a new file. An empty fileID asks for a
// freshly generated unique ID.
func (s *Storage) CreateFile(ctx context.Context, bucketID, fileID, filename string, content []byte) (*File, error) {
	if fileID == "" {
		fileID = uuid.NewString()
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("fileId", fileID); err != nil {
		return nil, fmt.Errorf("encode upload: %w", err)
	}
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("encode upload: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("encode upload: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("encode upload: %w", err)
	}

	resp, err := s.client.do(ctx, http.MethodPost, "/storage/buckets/"+bucketID+"/files", nil, &buf, w.FormDataContentType())
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var f File
	if err := json.NewDecoder(resp.Body).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode file: %w", err)
	}
	return &f, nil
}

// DeleteFile removes a file. Unknown IDs yield an IsNotFound error.
func (s *Storage) DeleteFile(ctx context.Context, bucketID, fileID string) error {
	resp, err := s.client.do(ctx, http.MethodDelete, "/storage/buckets/"+bucketID+"/files/"+fileID, nil, nil, "")
	if err != nil {
		return err
	}
	if err := checkResponse(resp); err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// FileViewURL returns the publicly viewable URL for a stored file.
func (s *Storage) FileViewURL(bucketID, fileID string) string {
	return fmt.Sprintf("%s/storage/buckets/%s/files/%s/view?project=%s",
		s.client.Endpoint, bucketID, fileID, url.QueryEscape(s.client.Project))
}
