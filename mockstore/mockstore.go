// Package mockstore is a local emulator of the remote document store
// and file bucket REST API, backed by SQLite. It lets the seeder be
// developed and tested without an account on the real backend.
package mockstore

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MaxPageSize caps listing responses, like the real store does. Clients
// must page with a cursor to see everything.
const MaxPageSize = 25

type documentRow struct {
	Seq          uint   `gorm:"primaryKey;autoIncrement"`
	DocID        string `gorm:"uniqueIndex"`
	DatabaseID   string `gorm:"index"`
	CollectionID string `gorm:"index"`
	Data         []byte
	CreatedAt    time.Time
}

type fileRow struct {
	Seq       uint   `gorm:"primaryKey;autoIncrement"`
	FileID    string `gorm:"uniqueIndex"`
	BucketID  string `gorm:"index"`
	Name      string
	Content   []byte
	CreatedAt time.Time
}

// Open connects to the SQLite database at path (":memory:" works) and
// migrates the emulator's tables.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&documentRow{}, &fileRow{}); err != nil {
		return nil, err
	}
	return db, nil
}

type Server struct {
	db      *gorm.DB
	maxPage int
}

func New(db *gorm.DB) *Server {
	return &Server{db: db, maxPage: MaxPageSize}
}

// Router builds the gin engine serving the store API subset the seeder
// speaks: document list/create/delete, file list/create/delete/view.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/v1")
	{
		v1.GET("/databases/:db/collections/:col/documents", s.listDocuments)
		v1.POST("/databases/:db/collections/:col/documents", s.createDocument)
		v1.DELETE("/databases/:db/collections/:col/documents/:id", s.deleteDocument)

		v1.GET("/storage/buckets/:bucket/files", s.listFiles)
		v1.POST("/storage/buckets/:bucket/files", s.createFile)
		v1.DELETE("/storage/buckets/:bucket/files/:id", s.deleteFile)
		v1.GET("/storage/buckets/:bucket/files/:id/view", s.viewFile)
	}
	return r
}

// Run starts the emulator standalone.
func (s *Server) Run(addr string) error {
	log.Printf("🗄️  Mock store listening on %s", addr)
	return s.Router().Run(addr)
}

func (s *Server) pageLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(s.maxPage)))
	if err != nil || limit <= 0 || limit > s.maxPage {
		limit = s.maxPage
	}
	return limit
}

func (s *Server) listDocuments(c *gin.Context) {
	scope := s.db.Where("database_id = ? AND collection_id = ?", c.Param("db"), c.Param("col"))

	var total int64
	s.db.Model(&documentRow{}).
		Where("database_id = ? AND collection_id = ?", c.Param("db"), c.Param("col")).
		Count(&total)

	query := scope.Session(&gorm.Session{})
	if cursor := c.Query("cursor"); cursor != "" {
		var cur documentRow
		if err := s.db.Where("doc_id = ?", cursor).First(&cur).Error; err != nil {
			storeError(c, http.StatusBadRequest, "invalid_cursor", "Cursor document not found")
			return
		}
		query = query.Where("seq > ?", cur.Seq)
	}

	var rows []documentRow
	if err := query.Order("seq").Limit(s.pageLimit(c)).Find(&rows).Error; err != nil {
		storeError(c, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	docs := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, row.toJSON())
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "documents": docs})
}

func (s *Server) createDocument(c *gin.Context) {
	var req struct {
		DocumentID string         `json:"documentId"`
		Data       map[string]any `json:"data"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		storeError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if req.DocumentID == "" {
		req.DocumentID = uuid.NewString()
	}
	payload, err := json.Marshal(req.Data)
	if err != nil {
		storeError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	row := documentRow{
		DocID:        req.DocumentID,
		DatabaseID:   c.Param("db"),
		CollectionID: c.Param("col"),
		Data:         payload,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.db.Create(&row).Error; err != nil {
		storeError(c, http.StatusConflict, "document_already_exists", "A document with the requested ID already exists")
		return
	}
	c.JSON(http.StatusCreated, row.toJSON())
}

func (s *Server) deleteDocument(c *gin.Context) {
	res := s.db.Where("database_id = ? AND collection_id = ? AND doc_id = ?",
		c.Param("db"), c.Param("col"), c.Param("id")).Delete(&documentRow{})
	if res.Error != nil {
		storeError(c, http.StatusInternalServerError, "internal", res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		storeError(c, http.StatusNotFound, "document_not_found", "Document with the requested ID could not be found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listFiles(c *gin.Context) {
	var total int64
	s.db.Model(&fileRow{}).Where("bucket_id = ?", c.Param("bucket")).Count(&total)

	query := s.db.Where("bucket_id = ?", c.Param("bucket"))
	if cursor := c.Query("cursor"); cursor != "" {
		var cur fileRow
		if err := s.db.Where("file_id = ?", cursor).First(&cur).Error; err != nil {
			storeError(c, http.StatusBadRequest, "invalid_cursor", "Cursor file not found")
			return
		}
		query = query.Where("seq > ?", cur.Seq)
	}

	var rows []fileRow
	if err := query.Order("seq").Limit(s.pageLimit(c)).Find(&rows).Error; err != nil {
		storeError(c, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	files := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		files = append(files, row.toJSON())
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "files": files})
}

func (s *Server) createFile(c *gin.Context) {
	fileID := c.PostForm("fileId")
	if fileID == "" {
		fileID = uuid.NewString()
	}
	header, err := c.FormFile("file")
	if err != nil {
		storeError(c, http.StatusBadRequest, "invalid_request", "Missing file part")
		return
	}
	f, err := header.Open()
	if err != nil {
		storeError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		storeError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	row := fileRow{
		FileID:    fileID,
		BucketID:  c.Param("bucket"),
		Name:      header.Filename,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.Create(&row).Error; err != nil {
		storeError(c, http.StatusConflict, "file_already_exists", "A file with the requested ID already exists")
		return
	}
	c.JSON(http.StatusCreated, row.toJSON())
}

func (s *Server) deleteFile(c *gin.Context) {
	res := s.db.Where("bucket_id = ? AND file_id = ?", c.Param("bucket"), c.Param("id")).Delete(&fileRow{})
	if res.Error != nil {
		storeError(c, http.StatusInternalServerError, "internal", res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		storeError(c, http.StatusNotFound, "file_not_found", "File with the requested ID could not be found")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) viewFile(c *gin.Context) {
	var row fileRow
	if err := s.db.Where("bucket_id = ? AND file_id = ?", c.Param("bucket"), c.Param("id")).First(&row).Error; err != nil {
		storeError(c, http.StatusNotFound, "file_not_found", "File with the requested ID could not be found")
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", row.Content)
}

func (r documentRow) toJSON() map[string]any {
	doc := map[string]any{}
	_ = json.Unmarshal(r.Data, &doc)
	doc["$id"] = r.DocID
	doc["$createdAt"] = r.CreatedAt.Format(time.RFC3339Nano)
	return doc
}

func (r fileRow) toJSON() gin.H {
	return gin.H{
		"$id":        r.FileID,
		"name":       r.Name,
		"size":       len(r.Content),
		"$createdAt": r.CreatedAt.Format(time.RFC3339Nano),
	}
}

// storeError writes the store's JSON error envelope.
func storeError(c *gin.Context, code int, errType, message string) {
	c.JSON(code, gin.H{"message": message, "code": code, "type": errType})
}
