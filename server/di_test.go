package server_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	loader "github.com/0xalexb/hjarta-loader"
	"github.com/0xalexb/hjarta-loader/server"
	loaderhttp "github.com/0xalexb/hjarta-loader/transport/http"
)

func TestNewModule_WithOptions(t *testing.T) {
	t.Parallel()

	var srv *server.Server

	app := fxtest.New(t,
		server.NewModule("assets", server.WithAddress("127.0.0.1:0"), server.WithDir(assetDir(t))),
		fx.Invoke(fx.Annotate(func(s *server.Server) { srv = s }, fx.ParamTags(`name:"assets"`))),
	)

	app.RequireStart()

	defer app.RequireStop()

	ldr := loader.New(srv.URL(), loaderhttp.NewTransport())
	require.NoError(t, ldr.Load(context.Background(), "tiles/manifest.json"))
	assert.Equal(t, `{"a":1}`, ldr.Buffer().String())
}

func TestNewModule_WithExternalConfig(t *testing.T) {
	t.Parallel()

	cfg := server.Config{Address: "127.0.0.1:0", Dir: assetDir(t)}

	var srv *server.Server

	app := fxtest.New(t,
		fx.Supply(fx.Annotate(cfg, fx.ResultTags(`name:"mirror"`))),
		server.NewModule("mirror"),
		fx.Invoke(fx.Annotate(func(s *server.Server) { srv = s }, fx.ParamTags(`name:"mirror"`))),
	)

	app.RequireStart()

	defer app.RequireStop()

	assert.NotEqual(t, "127.0.0.1:0", srv.Addr())
}

func TestNewModule_InvalidDir(t *testing.T) {
	t.Parallel()

	app := fx.New(
		fx.NopLogger,
		server.NewModule("assets", server.WithDir("/definitely/not/here")),
	)

	require.ErrorIs(t, app.Err(), server.ErrNotDirectory)
}

func TestNewModule_EmptyName(t *testing.T) {
	t.Parallel()

	app := fx.New(fx.NopLogger, server.NewModule(""))

	require.ErrorIs(t, app.Err(), server.ErrEmptyName)
}
