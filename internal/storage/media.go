// Package storage persists uploaded media on the local file system.
package storage

import (
	"fmt"
	"io"
	"math"
	"mime"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"
	"unicode"

	"mis/pkg/apperror"

	"github.com/gabriel-vasile/mimetype"
)

// Upload kinds; each has its own root directory and URL prefix
const (
	KindPictures  = "pictures"
	KindReports   = "reports"
	KindDocuments = "documents"
)

// DefaultMaxBytes is the per-attachment ceiling (10 MiB)
const DefaultMaxBytes int64 = 10 << 20

// Family is a set of accepted content types
type Family struct {
	Name string
	// Sniff also checks the detected content type, not only the declared one
	Sniff  bool
	accept func(mediaType string) bool
}

// Accepts reports whether a (possibly parameterized) content type belongs to the family
func (f Family) Accepts(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return f.accept(strings.ToLower(mediaType))
}

// Images accepts image/*
var Images = Family{
	Name:  "image",
	Sniff: true,
	accept: func(mt string) bool {
		return strings.HasPrefix(mt, "image/")
	},
}

var officeTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/vnd.ms-powerpoint",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"text/plain",
	"text/csv",
}

// Office accepts pdf, word, excel, powerpoint and plain text
var Office = Family{
	Name: "document",
	accept: func(mt string) bool {
		for _, t := range officeTypes {
			if t == mt {
				return true
			}
		}
		return false
	},
}

// Placement locates a batch: <main>/<sub>/<YYYY>/<MM-DD>/<group>
type Placement struct {
	MainCategory string
	SubCategory  string
	GroupName    string
	Date         time.Time
}

// Segments returns the sanitised directory segments of the placement
func (p Placement) Segments() []string {
	return []string{
		Sanitize(p.MainCategory),
		Sanitize(p.SubCategory),
		p.Date.Format("2006"),
		p.Date.Format("01-02"),
		Sanitize(p.GroupName),
	}
}

// Stored describes one persisted attachment
type Stored struct {
	OriginalName string
	FileName     string
	// RelPath is <kind>/<main>/.../<file>, always with forward slashes
	RelPath     string
	AbsPath     string
	SizeKB      int
	ContentType string
}

// Store writes attachments below one root directory per kind
type Store struct {
	roots    map[string]string
	maxBytes int64
	seq      atomic.Uint64
	now      func() time.Time
}

// NewStore maps each kind to its root directory
func NewStore(roots map[string]string, maxBytes int64) *Store {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Store{roots: roots, maxBytes: maxBytes, now: time.Now}
}

func (s *Store) MaxBytes() int64 {
	return s.maxBytes
}

// Root returns the directory of a kind
func (s *Store) Root(kind string) (string, error) {
	root, ok := s.roots[kind]
	if !ok || root == "" {
		return "", apperror.Internal("no upload root for "+kind, nil)
	}
	return root, nil
}

// Validate checks every attachment before anything is written.
func (s *Store) Validate(family Family, files []*multipart.FileHeader) error {
	if len(files) == 0 {
		return apperror.BadRequest("no files uploaded")
	}
	for _, fh := range files {
		if fh.Size > s.maxBytes {
			return apperror.BadRequest(fmt.Sprintf("%s exceeds the %d MB limit", fh.Filename, s.maxBytes>>20))
		}
		declared := fh.Header.Get("Content-Type")
		if !family.Accepts(declared) {
			return apperror.BadRequest(fmt.Sprintf("%s: %q is not an accepted %s type", fh.Filename, declared, family.Name))
		}
		if family.Sniff {
			detected, err := sniff(fh)
			if err != nil {
				return apperror.BadRequest(fh.Filename + ": unreadable upload")
			}
			if !family.Accepts(detected) {
				return apperror.BadRequest(fmt.Sprintf("%s: content is %q, not an accepted %s type", fh.Filename, detected, family.Name))
			}
		}
	}
	return nil
}

func sniff(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	return mt.String(), nil
}

// NextName returns <unix-millis>_<seq><ext>; seq is process-wide
func (s *Store) NextName(originalName string) string {
	return fmt.Sprintf("%d_%d%s", s.now().UnixMilli(), s.seq.Add(1), Ext(originalName))
}

// Save writes one attachment into the placement directory of kind, creating it as needed.
func (s *Store) Save(kind string, p Placement, fh *multipart.FileHeader) (*Stored, error) {
	root, err := s.Root(kind)
	if err != nil {
		return nil, err
	}
	segments := p.Segments()
	dir := filepath.Join(append([]string{root}, segments...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperror.Internal("failed to create upload directory", err)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, apperror.Internal("failed to read upload", err)
	}
	defer src.Close()

	name := s.NextName(fh.Filename)
	abs := filepath.Join(dir, name)
	dst, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, apperror.Internal("failed to create file", err)
	}
	written, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(abs)
		return nil, apperror.Internal("failed to write file", err)
	}

	rel := path.Join(append(append([]string{kind}, segments...), name)...)
	return &Stored{
		OriginalName: fh.Filename,
		FileName:     name,
		RelPath:      rel,
		AbsPath:      abs,
		SizeKB:       SizeKB(written),
		ContentType:  fh.Header.Get("Content-Type"),
	}, nil
}

// Remove deletes a stored file by its relative path. A missing file is not an error.
func (s *Store) Remove(relPath string) error {
	abs, err := s.Resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return apperror.Internal("failed to remove file", err)
	}
	return nil
}

// Resolve maps <kind>/<...> onto the kind's root, refusing paths that escape it.
func (s *Store) Resolve(relPath string) (string, error) {
	clean := path.Clean("/" + strings.ReplaceAll(relPath, "\\", "/"))
	parts := strings.SplitN(strings.TrimPrefix(clean, "/"), "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", apperror.BadRequest("invalid file path")
	}
	root, err := s.Root(parts[0])
	if err != nil {
		return "", err
	}
	return filepath.Join(root, filepath.FromSlash(parts[1])), nil
}

// Sanitize turns a user-supplied value into a single safe path segment.
func Sanitize(segment string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(segment) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_', r == '.', r == ' ':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), ". ")
	if out == "" {
		return "_"
	}
	return out
}

// Ext returns the lower-cased extension of name, or "" when it is not alphanumeric.
func Ext(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) < 2 {
		return ""
	}
	for _, r := range ext[1:] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return ""
		}
	}
	return ext
}

// SizeKB rounds a byte count to kilobytes
func SizeKB(n int64) int {
	return int(math.Round(float64(n) / 1024))
}
