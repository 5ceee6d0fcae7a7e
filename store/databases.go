package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Databases exposes document CRUD within a database's collections.
type Databases struct {
	client *Client
}

// Document is one record in a collection. The store inlines attribute
// fields next to its own $-prefixed metadata; Fields holds only the
// attributes.
type Document struct {
	ID     string
	Fields map[string]any
}

func (d *Document) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if id, ok := raw["$id"].(string); ok {
		d.ID = id
	}
	d.Fields = make(map[string]any, len(raw))
	for k, v := range raw {
		if strings.HasPrefix(k, "$") {
			continue
		}
		d.Fields[k] = v
	}
	return nil
}

// DocumentList is one page of a collection listing.
type DocumentList struct {
	Total     int        `json:"total"`
	Documents []Document `json:"documents"`
}

// DefaultPageLimit is the page size used when callers pass limit <= 0.
// It matches the store's own default.
const DefaultPageLimit = 25

// ListDocuments returns one page of documents. cursor is the ID of the
// last document of the previous page; empty starts from the beginning.
func (d *Databases) ListDocuments(ctx context.Context, databaseID, collectionID string, limit int, cursor string) (*DocumentList, error) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	path := fmt.Sprintf("/databases/%s/collections/%s/documents", databaseID, collectionID)
	resp, err := d.client.do(ctx, http.MethodGet, path, q, nil, "")
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var list DocumentList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode document list: %w", err)
	}
	return &list, nil
}

// ListAllDocuments pages through the whole collection. The store caps
// page sizes, so a single listing call is never assumed to be complete.
func (d *Databases) ListAllDocuments(ctx context.Context, databaseID, collectionID string) ([]Document, error) {
	var all []Document
	cursor := ""
	for {
		page, err := d.ListDocuments(ctx, databaseID, collectionID, DefaultPageLimit, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Documents...)
		if len(page.Documents) < DefaultPageLimit {
			return all, nil
		}
		cursor = page.Documents[len(page.Documents)-1].ID
	}
}

// CreateDocument writes a new document. An empty documentID asks for a
// freshly generated unique ID. data is marshalled as the attribute set.
func (d *Databases) CreateDocument(ctx context.Context, databaseID, collectionID, documentID string, data any) (*Document, error) {
	if documentID == "" {
		documentID = uuid.NewString()
	}
	payload, err := json.Marshal(map[string]any{
		"documentId": documentID,
		"data":       data,
	})
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	path := fmt.Sprintf("/databases/%s/collections/%s/documents", databaseID, collectionID)
	resp, err := d.client.do(ctx, http.MethodPost, path, nil, bytes.NewReader(payload), "application/json")
	if err != nil {
		return nil, err
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}

// DeleteDocument removes a document. Deleting an unknown ID returns an
// error for which IsNotFound is true.
func (d *Databases) DeleteDocument(ctx context.Context, databaseID, collectionID, documentID string) error {
	path := fmt.Sprintf("/databases/%s/collections/%s/documents/%s", databaseID, collectionID, documentID)
	resp, err := d.client.do(ctx, http.MethodDelete, path, nil, nil, "")
	if err != nil {
		return err
	}
	if err := checkResponse(resp); err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
