// Package app wires loaders, transports and the asset server into an Fx
// application.
//
// NewApp installs the process logger and starts the supplied modules.
// WithSettings turns a Settings document into a loader.Factory backed by the
// configured transport, plus a default *loader.Loader rooted at Settings.Root.
//
//	settings, err := app.LoadSettings(context.Background(), "file:///etc/tilefetch/", "settings.yaml")
//	if err != nil {
//		return err
//	}
//
//	application := app.NewApp(app.WithLogLevel("info"), app.WithSettings(*settings))
//	application.Run()
package app
