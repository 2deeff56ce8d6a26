package server_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	loader "github.com/0xalexb/hjarta-loader"
	"github.com/0xalexb/hjarta-loader/server"
	loaderhttp "github.com/0xalexb/hjarta-loader/transport/http"
)

func assetDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "tiles"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tiles", "manifest.json"), []byte(`{"a":1}`), 0o600))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "tiles", "tileset.json"),
		[]byte(`{"children":[`+strings.Repeat(`{"uri":"0.b3dm"},`, 64)+`{"uri":"1.b3dm"}]}`),
		0o600,
	))

	return dir
}

func startServer(t *testing.T, dir string) *server.Server {
	t.Helper()

	srv, err := server.New("assets", server.Config{Address: "127.0.0.1:0", Dir: dir}, nil)
	require.NoError(t, err)
	require.NoError(t, srv.Start(context.Background()))

	t.Cleanup(func() { _ = srv.Stop(context.Background()) })

	return srv
}

func TestNewServer_Errors(t *testing.T) {
	t.Parallel()

	handler := http.NotFoundHandler()

	_, err := server.NewServer("", handler, server.Config{}, nil)
	require.ErrorIs(t, err, server.ErrEmptyName)

	_, err = server.NewServer("assets", nil, server.Config{}, nil)
	require.ErrorIs(t, err, server.ErrNilHandler)

	_, err = server.NewServer("assets", handler, server.Config{Dir: filepath.Join(t.TempDir(), "absent")}, nil)
	require.ErrorIs(t, err, server.ErrNotDirectory)
}

func TestServer_AddrBeforeAndAfterStart(t *testing.T) {
	t.Parallel()

	srv, err := server.New("assets", server.Config{Address: "127.0.0.1:0", Dir: t.TempDir()}, nil)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:0", srv.Addr())

	require.NoError(t, srv.Start(context.Background()))

	defer func() { _ = srv.Stop(context.Background()) }()

	assert.NotEqual(t, "127.0.0.1:0", srv.Addr())
	assert.True(t, strings.HasPrefix(srv.URL(), "http://127.0.0.1:"))
	assert.True(t, strings.HasSuffix(srv.URL(), "/"))
}

func TestServer_StartFailure(t *testing.T) {
	t.Parallel()

	first := startServer(t, t.TempDir())

	second, err := server.New("clash", server.Config{Address: first.Addr(), Dir: t.TempDir()}, nil)
	require.NoError(t, err)

	err = second.Start(context.Background())
	require.ErrorIs(t, err, server.ErrListenFailed)
}

func TestServer_LoaderFetchesAssets(t *testing.T) {
	t.Parallel()

	srv := startServer(t, assetDir(t))
	ldr := loader.New(srv.URL(), loaderhttp.NewTransport())

	require.NoError(t, ldr.Load(context.Background(), "tiles/manifest.json"))
	assert.Equal(t, `{"a":1}`, ldr.Buffer().String())

	var text string

	task, err := ldr.FetchText(context.Background(), srv.URL(), "tiles/tileset.json", func(s string, err error) {
		if err == nil {
			text = s
		}
	})
	require.NoError(t, err)
	require.NoError(t, task.Wait(context.Background()))
	assert.Contains(t, text, `"children"`)
}

func TestServer_MissingAssetIsStatusError(t *testing.T) {
	t.Parallel()

	srv := startServer(t, assetDir(t))
	ldr := loader.New(srv.URL(), loaderhttp.NewTransport())

	err := ldr.Load(context.Background(), "tiles/absent.json")
	require.ErrorIs(t, err, loader.ErrHTTPStatus)

	var statusErr *loader.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Zero(t, ldr.Buffer().Len())
}

func TestServer_CompressedResponseIsDecoded(t *testing.T) {
	t.Parallel()

	srv := startServer(t, assetDir(t))

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL()+"tiles/tileset.json", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := http.DefaultTransport.RoundTrip(req)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
