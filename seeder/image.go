package seeder

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"path"
	"time"
)

// PlaceholderImageURL is substituted whenever an image cannot be
// fetched or uploaded. A broken image never fails the seed.
const PlaceholderImageURL = "https://via.placeholder.com/150"

// materializeImage fetches sourceURL, uploads the bytes to the bucket
// under a fresh ID and returns the public view URL. Any failure along
// the way logs a warning and yields the placeholder. No retries.
func (s *Seeder) materializeImage(ctx context.Context, sourceURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		log.Printf("Image fetch %q: %v, using placeholder", sourceURL, err)
		return PlaceholderImageURL
	}
	resp, err := s.images.Do(req)
	if err != nil {
		log.Printf("Image fetch %q: %v, using placeholder", sourceURL, err)
		return PlaceholderImageURL
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("Image fetch %q: status %d, using placeholder", sourceURL, resp.StatusCode)
		return PlaceholderImageURL
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Image fetch %q: %v, using placeholder", sourceURL, err)
		return PlaceholderImageURL
	}

	f, err := s.files.CreateFile(ctx, s.cfg.BucketID, "", fileNameFromURL(sourceURL), body)
	if err != nil {
		log.Printf("Image upload %q: %v, using placeholder", sourceURL, err)
		return PlaceholderImageURL
	}
	return s.files.FileViewURL(s.cfg.BucketID, f.ID)
}

// fileNameFromURL derives a filename from the URL's last path segment,
// falling back to a timestamp-based name.
func fileNameFromURL(raw string) string {
	if u, err := url.Parse(raw); err == nil {
		if base := path.Base(u.Path); base != "" && base != "." && base != "/" {
			return base
		}
	}
	return fmt.Sprintf("menu-%d.png", time.Now().Unix())
}
