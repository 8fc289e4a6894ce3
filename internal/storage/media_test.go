package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mis/internal/storage"
	"mis/internal/testutil"
	"mis/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, maxBytes int64) (*storage.Store, string) {
	t.Helper()
	root := t.TempDir()
	return storage.NewStore(map[string]string{
		storage.KindPictures:  filepath.Join(root, "pictures"),
		storage.KindReports:   filepath.Join(root, "reports"),
		storage.KindDocuments: filepath.Join(root, "documents"),
	}, maxBytes), root
}

func fileCount(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	_ = filepath.Walk(dir, func(_ string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			n++
		}
		return nil
	})
	return n
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Health _ WASH", storage.Sanitize(" Health / WASH "))
	assert.Equal(t, "_", storage.Sanitize(".."))
	assert.Equal(t, "_", storage.Sanitize(""))
	assert.Equal(t, "_etc_passwd", storage.Sanitize("/etc/passwd"))
}

func TestExt(t *testing.T) {
	assert.Equal(t, ".jpg", storage.Ext("Photo.JPG"))
	assert.Equal(t, "", storage.Ext("archive"))
	assert.Equal(t, "", storage.Ext("bad.p$p"))
}

func TestSizeKB(t *testing.T) {
	assert.Equal(t, 0, storage.SizeKB(100))
	assert.Equal(t, 2, storage.SizeKB(1800))
}

func TestFamilies(t *testing.T) {
	assert.True(t, storage.Images.Accepts("image/jpeg"))
	assert.False(t, storage.Images.Accepts("application/pdf"))
	assert.True(t, storage.Office.Accepts("text/plain; charset=utf-8"))
	assert.True(t, storage.Office.Accepts("application/pdf"))
	assert.False(t, storage.Office.Accepts("application/x-msdownload"))
	assert.False(t, storage.Office.Accepts(""))
}

func TestValidateRejectsBeforeWriting(t *testing.T) {
	store, root := newStore(t, 1024)

	err := store.Validate(storage.Images, nil)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	files := testutil.FileHeaders(t,
		testutil.Upload{Name: "a.png", ContentType: "image/png", Body: testutil.PNG},
		testutil.Upload{Name: "b.exe", ContentType: "application/x-msdownload", Body: []byte("MZ")},
	)
	err = store.Validate(storage.Images, files)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
	assert.Contains(t, err.Error(), "b.exe")

	disguised := testutil.FileHeaders(t, testutil.Upload{Name: "c.png", ContentType: "image/png", Body: []byte("plain text")})
	assert.ErrorIs(t, store.Validate(storage.Images, disguised), apperror.ErrBadRequest)

	big := testutil.FileHeaders(t, testutil.Upload{Name: "big.txt", ContentType: "text/plain", Body: []byte(strings.Repeat("x", 2048))})
	assert.ErrorIs(t, store.Validate(storage.Office, big), apperror.ErrBadRequest)

	assert.Equal(t, 0, fileCount(t, root))
}

func TestSaveWritesUnderPlacement(t *testing.T) {
	store, root := newStore(t, 0)
	assert.Equal(t, storage.DefaultMaxBytes, store.MaxBytes())

	files := testutil.FileHeaders(t, testutil.Upload{Name: "Site Visit.PNG", ContentType: "image/png", Body: testutil.PNG})
	require.NoError(t, store.Validate(storage.Images, files))

	p := storage.Placement{
		MainCategory: "Health",
		SubCategory:  "Clinics",
		GroupName:    "Team/A",
		Date:         time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
	}
	stored, err := store.Save(storage.KindPictures, p, files[0])
	require.NoError(t, err)

	assert.Equal(t, "Site Visit.PNG", stored.OriginalName)
	assert.True(t, strings.HasSuffix(stored.FileName, ".png"))
	assert.Equal(t, "pictures/Health/Clinics/2024/03-09/Team_A/"+stored.FileName, stored.RelPath)
	assert.Equal(t, "image/png", stored.ContentType)

	data, err := os.ReadFile(filepath.Join(root, "pictures", "Health", "Clinics", "2024", "03-09", "Team_A", stored.FileName))
	require.NoError(t, err)
	assert.Equal(t, testutil.PNG, data)

	second, err := store.Save(storage.KindPictures, p, files[0])
	require.NoError(t, err)
	assert.NotEqual(t, stored.FileName, second.FileName)

	abs, err := store.Resolve(stored.RelPath)
	require.NoError(t, err)
	assert.Equal(t, stored.AbsPath, abs)

	require.NoError(t, store.Remove(stored.RelPath))
	require.NoError(t, store.Remove(stored.RelPath))
	_, err = os.Stat(stored.AbsPath)
	assert.True(t, os.IsNotExist(err))
}

func TestResolveStaysInsideRoots(t *testing.T) {
	store, root := newStore(t, 0)

	abs, err := store.Resolve("../../pictures/x/../y.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "pictures", "y.png"), abs)

	_, err = store.Resolve("unknown/y.png")
	assert.ErrorIs(t, err, apperror.ErrInternal)

	_, err = store.Resolve("pictures")
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
}
