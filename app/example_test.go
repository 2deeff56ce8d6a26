package app_test

import (
	"context"
	"fmt"
	"io"

	loader "github.com/0xalexb/hjarta-loader"
	"github.com/0xalexb/hjarta-loader/app"

	"go.uber.org/fx"
)

// Example_settingsToLoader shows a settings document becoming a default loader
// inside an App.
func Example_settingsToLoader() {
	settings, err := app.LoadSettings(context.Background(), "testdata/", "settings.yaml")
	if err != nil {
		fmt.Printf("Error loading settings: %v\n", err)

		return
	}

	var ldr *loader.Loader

	application := app.NewApp(
		app.WithLogLevel("error"),
		app.WithLogOutput(io.Discard),
		app.WithSettings(*settings),
		app.WithModules(fx.Invoke(func(l *loader.Loader) { ldr = l })),
	)

	err = application.Start(context.Background())
	if err != nil {
		fmt.Printf("Error starting app: %v\n", err)

		return
	}

	defer func() { _ = application.Stop(context.Background()) }()

	err = ldr.Load(context.Background(), "manifest.json")
	if err != nil {
		fmt.Printf("Error loading: %v\n", err)

		return
	}

	fmt.Printf("Root: %s\n", ldr.Root())
	fmt.Printf("Manifest: %s\n", ldr.Buffer().String())
	// Output:
	// Root: testdata/tiles/
	// Manifest: {"a":1}
}
