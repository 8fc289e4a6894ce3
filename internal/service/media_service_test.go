package service_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"mis/internal/config"
	"mis/internal/repository"
	"mis/internal/service"
	"mis/internal/storage"
	"mis/internal/testutil"
	"mis/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMedia(t *testing.T, f *fixture, batchMode string) (*service.MediaService, *storage.Store) {
	t.Helper()
	root := t.TempDir()
	store := storage.NewStore(map[string]string{
		storage.KindPictures:  filepath.Join(root, "pictures"),
		storage.KindReports:   filepath.Join(root, "reports"),
		storage.KindDocuments: filepath.Join(root, "documents"),
	}, 0)
	return service.NewMediaService(f.tables, store, repository.NewTransactionManager(f.db), f.audit, batchMode), store
}

func pictureRequest(t *testing.T, names ...string) service.UploadRequest {
	t.Helper()
	uploads := make([]testutil.Upload, len(names))
	for i, n := range names {
		uploads[i] = testutil.Upload{Name: n, ContentType: "image/png", Body: testutil.PNG}
	}
	return service.UploadRequest{
		MainCategory: "Health",
		SubCategory:  "Clinics",
		Date:         "2024-05-01",
		UploadedBy:   "field officer",
		GroupName:    "Team A",
		Files:        testutil.FileHeaders(t, uploads...),
	}
}

// rejectOriginalName makes the picture insert fail for one file name
func rejectOriginalName(t *testing.T, f *fixture, name string) {
	t.Helper()
	require.NoError(t, f.db.Exec(fmt.Sprintf(
		`CREATE TRIGGER reject_picture BEFORE INSERT ON pictures WHEN NEW.original_name = '%s'
		BEGIN SELECT RAISE(ABORT, 'rejected'); END`, name)).Error)
}

func stored(t *testing.T, store *storage.Store, rel string) bool {
	t.Helper()
	abs, err := store.Resolve(rel)
	require.NoError(t, err)
	_, err = os.Stat(abs)
	return err == nil
}

func TestUploadStoresEveryFileAndRecord(t *testing.T) {
	f := newFixture(t)
	media, store := newMedia(t, f, config.BatchBestEffort)

	result, err := media.Upload(context.Background(), storage.KindPictures, "alice", pictureRequest(t, "a.png", "b.png", "c.png"))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Stored)
	assert.Equal(t, "3 file(s) uploaded successfully", result.Message())
	require.Len(t, result.Files, 3)
	for _, file := range result.Files {
		assert.Empty(t, file.Error)
		assert.True(t, stored(t, store, file.FilePath), file.FilePath)
	}
	assert.Equal(t, int64(3), testutil.Count(t, f.db, "pictures"))

	rows, err := f.tables.Pictures.List(context.Background(), repository.Params{"groupName": "Team A"})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "field officer", rows[0].UploadedBy)
	assert.Equal(t, "alice", rows[0].CreatedBy)
	require.NotNil(t, rows[0].EventDate)
	assert.Equal(t, "2024-05-01", rows[0].EventDate.Format("2006-01-02"))

	events := f.events.Events()
	require.NotEmpty(t, events)
	assert.Equal(t, "UPLOAD", events[len(events)-1].Action)
}

func TestUploadRejectsBadRequests(t *testing.T) {
	f := newFixture(t)
	media, _ := newMedia(t, f, config.BatchBestEffort)
	ctx := context.Background()

	req := pictureRequest(t, "a.png")
	req.GroupName = " "
	_, err := media.Upload(ctx, storage.KindPictures, "alice", req)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	req = pictureRequest(t, "a.png")
	req.Date = "01/05/2024"
	_, err = media.Upload(ctx, storage.KindPictures, "alice", req)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	req = pictureRequest(t)
	_, err = media.Upload(ctx, storage.KindPictures, "alice", req)
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	// images are not reports
	_, err = media.Upload(ctx, storage.KindReports, "alice", pictureRequest(t, "a.png"))
	assert.ErrorIs(t, err, apperror.ErrBadRequest)

	_, err = media.Upload(ctx, "videos", "alice", pictureRequest(t, "a.png"))
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	assert.Equal(t, int64(0), testutil.Count(t, f.db, "pictures"))
	assert.Equal(t, int64(0), testutil.Count(t, f.db, "reports"))
}

func TestUploadBestEffortKeepsGoodFiles(t *testing.T) {
	f := newFixture(t)
	media, store := newMedia(t, f, config.BatchBestEffort)
	rejectOriginalName(t, f, "bad.png")

	result, err := media.Upload(context.Background(), storage.KindPictures, "alice", pictureRequest(t, "good.png", "bad.png"))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stored)
	assert.Equal(t, "1 of 2 file(s) uploaded", result.Message())
	require.Len(t, result.Files, 2)
	assert.Empty(t, result.Files[0].Error)
	assert.True(t, stored(t, store, result.Files[0].FilePath))
	assert.NotEmpty(t, result.Files[1].Error)
	assert.Empty(t, result.Files[1].FilePath)
	assert.Equal(t, int64(1), testutil.Count(t, f.db, "pictures"))
}

func TestUploadAtomicRollsBackFilesAndRecords(t *testing.T) {
	f := newFixture(t)
	media, store := newMedia(t, f, config.BatchAtomic)
	rejectOriginalName(t, f, "bad.png")

	result, err := media.Upload(context.Background(), storage.KindPictures, "alice", pictureRequest(t, "good.png", "bad.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInternal)
	require.NotNil(t, result)
	assert.Equal(t, 0, result.Stored)
	require.Len(t, result.Files, 2)
	assert.Equal(t, "rolled back", result.Files[0].Error)
	assert.NotEmpty(t, result.Files[1].Error)
	assert.Equal(t, int64(0), testutil.Count(t, f.db, "pictures"))

	root, err := store.Root(storage.KindPictures)
	require.NoError(t, err)
	entries := 0
	_ = filepath.Walk(root, func(_ string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			entries++
		}
		return nil
	})
	assert.Equal(t, 0, entries)
}

func TestDeleteRemovesRecordAndFile(t *testing.T) {
	f := newFixture(t)
	media, store := newMedia(t, f, config.BatchBestEffort)
	ctx := context.Background()

	result, err := media.Upload(ctx, storage.KindPictures, "alice", pictureRequest(t, "a.png"))
	require.NoError(t, err)
	rel := result.Files[0].FilePath

	rows, err := f.tables.Pictures.List(ctx, repository.Params{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	id := fmt.Sprint(rows[0].ID)

	require.NoError(t, media.Delete(ctx, storage.KindPictures, "alice", id))
	assert.False(t, stored(t, store, rel))
	assert.Equal(t, int64(0), testutil.Count(t, f.db, "pictures"))

	assert.ErrorIs(t, media.Delete(ctx, storage.KindPictures, "alice", id), apperror.ErrNotFound)
}

func TestDeleteDocumentLeavesForeignPaths(t *testing.T) {
	f := newFixture(t)
	media, store := newMedia(t, f, config.BatchBestEffort)
	ctx := context.Background()

	pics, err := media.Upload(ctx, storage.KindPictures, "alice", pictureRequest(t, "a.png"))
	require.NoError(t, err)
	picturePath := pics.Files[0].FilePath

	library := service.NewLibraryService(f.tables, f.audit)
	require.NoError(t, library.AddDocument(ctx, "alice", map[string]interface{}{
		"title":        "Pointer",
		"mainCategory": "Health",
		"filePath":     picturePath,
	}))
	docs, err := f.tables.Documents.List(ctx, repository.Params{})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "alice", docs[0].UploadedBy)

	require.NoError(t, media.Delete(ctx, storage.KindDocuments, "alice", fmt.Sprint(docs[0].ID)))
	assert.True(t, stored(t, store, picturePath))
}
