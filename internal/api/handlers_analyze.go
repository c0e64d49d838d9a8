package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dgallion1/doccover/internal/coverage"
	"github.com/dgallion1/doccover/internal/parser"
	"github.com/dgallion1/doccover/internal/pipeline"
	"github.com/dgallion1/doccover/internal/policy"
	"github.com/dgallion1/doccover/internal/report"
)

// contentTypeExt maps snapshot media types to loader extensions.
var contentTypeExt = map[string]string{
	"application/json":        ".json",
	"application/yaml":        ".yaml",
	"application/x-yaml":      ".yaml",
	"text/yaml":               ".yaml",
	"application/msgpack":     ".msgpack",
	"application/x-msgpack":   ".msgpack",
	"application/vnd.msgpack": ".msgpack",
}

// extContentType maps report extensions to response media types.
var extContentType = map[string]string{
	".json": "application/json",
	".html": "text/html; charset=utf-8",
	".md":   "text/markdown; charset=utf-8",
	".txt":  "text/plain; charset=utf-8",
}

// handleAnalyze computes the coverage of an uploaded snapshot. The snapshot
// is either the "file" part of a multipart form or the raw request body, in
// which case ?filename=, ?ext= or the Content-Type selects the loader.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "json"
	}
	exp, err := report.ForFormat(format)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if c, ok := exp.(*report.ConsoleExporter); ok {
		c.NoColor = true
	}

	cfg := s.cfg.Coverage()
	if v := r.URL.Query().Get("public_only"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			jsonError(w, "public_only must be a boolean", http.StatusBadRequest)
			return
		}
		cfg.PublicOnly = b
	}

	filename, data, status, err := s.readSnapshot(r)
	if err != nil {
		jsonError(w, err.Error(), status)
		return
	}

	hash := pipeline.ContentHashHex(data)
	// The filename is part of the key because it names the project.
	key := fmt.Sprintf("%s|%s|public_only=%t", hash, filename, cfg.PublicOnly)
	rep, hit := s.cache.Get(key)
	if !hit {
		res, err := s.analyzer.AnalyzeBytes(r.Context(), data, filename, cfg)
		if err != nil {
			jsonError(w, err.Error(), analyzeErrorStatus(err))
			return
		}
		result := policy.Evaluate(s.cfg.Limits, res.Project)
		rep = report.New(res.Project, &result)
		s.cache.Add(key, rep)
	}

	var buf bytes.Buffer
	if err := exp.Export(&buf, rep); err != nil {
		s.log.Error("export failed", "format", format, "error", err)
		jsonError(w, "failed to render report", http.StatusInternalServerError)
		return
	}

	cacheStatus := "miss"
	if hit {
		cacheStatus = "hit"
	}
	w.Header().Set("Content-Type", extContentType[exp.Ext()])
	w.Header().Set("X-Content-Hash", hash)
	w.Header().Set("X-Cache", cacheStatus)
	w.Header().Set("X-Coverage-Status", string(rep.Policy.Status))
	w.Write(buf.Bytes())
}

// readSnapshot returns the upload's filename and bytes, or an HTTP status
// and error describing why it was rejected.
func (s *Server) readSnapshot(r *http.Request) (string, []byte, int, error) {
	var (
		src      io.Reader
		filename string
	)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				return "", nil, http.StatusRequestEntityTooLarge, s.tooLarge()
			}
			return "", nil, http.StatusBadRequest, fmt.Errorf("invalid multipart form: %w", err)
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			return "", nil, http.StatusBadRequest, fmt.Errorf("file is required: %w", err)
		}
		defer file.Close()
		src = file
		filename = sanitizeFilename(header.Filename)
	} else {
		src = r.Body
		filename = snapshotName(r, mediaType)
	}

	if !parser.IsSupportedExtension(filename) {
		return "", nil, http.StatusBadRequest, fmt.Errorf("unsupported file type: %q", filepath.Ext(filename))
	}

	data, err := io.ReadAll(io.LimitReader(src, s.cfg.MaxUploadBytes+1))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", nil, http.StatusRequestEntityTooLarge, s.tooLarge()
		}
		return "", nil, http.StatusInternalServerError, errors.New("failed to read file")
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return "", nil, http.StatusRequestEntityTooLarge, s.tooLarge()
	}
	return filename, data, 0, nil
}

func (s *Server) tooLarge() error {
	return fmt.Errorf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes)
}

func snapshotName(r *http.Request, mediaType string) string {
	q := r.URL.Query()
	if name := q.Get("filename"); name != "" {
		return sanitizeFilename(name)
	}
	ext := q.Get("ext")
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if ext == "" {
		ext = contentTypeExt[mediaType]
	}
	return "snapshot" + ext
}

func analyzeErrorStatus(err error) int {
	switch {
	case errors.Is(err, coverage.ErrUnsupportedKind):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	return name
}
