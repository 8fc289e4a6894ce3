package testutil

import (
	"bytes"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"
)

// PNG is the smallest payload the content sniffer recognises as image/png.
var PNG = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 64)...)

// Upload is one attachment of a multipart batch.
type Upload struct {
	Name        string
	ContentType string
	Body        []byte
}

// Multipart encodes uploads under the "files" field plus plain form values.
// It returns the body and its content type.
func Multipart(t *testing.T, values map[string]string, uploads ...Upload) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range values {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, u := range uploads {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename="%s"`, u.Name))
		h.Set("Content-Type", u.ContentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(u.Body)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

// FileHeaders parses uploads back into the headers a handler would see.
func FileHeaders(t *testing.T, uploads ...Upload) []*multipart.FileHeader {
	t.Helper()
	body, contentType := Multipart(t, nil, uploads...)
	_, params, err := parseBoundary(contentType)
	require.NoError(t, err)
	form, err := multipart.NewReader(body, params).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["files"]
}

func parseBoundary(contentType string) (string, string, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", "", err
	}
	return mediaType, params["boundary"], nil
}
