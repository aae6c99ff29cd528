package main

import (
	"fmt"
	"log/slog"

	"github.com/dianlight/conso"
	"github.com/dianlight/conso/box"
	"github.com/dianlight/conso/style"
	"gitlab.com/tozd/go/errors"
)

func main() {
	fmt.Println("=== conso demonstration ===")
	fmt.Println()

	fmt.Println("1. Log types:")
	conso.Info("This is an info message")
	conso.Success("Build completed")
	conso.Ready("Listening on", "localhost:3000")
	conso.Start("Compiling", "main.go")
	conso.Warn("Cache is stale")
	conso.Error("Connection refused")
	conso.Log("A bare log line with `highlighted` spans")
	conso.Debug("Hidden unless the level allows it")

	logger := conso.New(conso.WithLevel(conso.LevelTrace))
	logger.Debug("Now visible")
	logger.Trace("With a captured stack")

	fmt.Println()
	fmt.Println("2. Tagged instances:")
	db := logger.WithTag("db")
	db.Info("Migrations applied")
	db.Warn("Slow query", "duration", "1.2s")

	fmt.Println()
	fmt.Println("3. Boxes:")
	conso.Box("New version `v1.2.0` is available")
	conso.Default().BoxStyled("Release Notes", &box.Style{
		BorderColor: style.Green,
		BorderStyle: "double",
		Valign:      box.ValignCenter,
	}, "All tests passing\nDocs updated")

	fmt.Println()
	fmt.Println("4. Errors with stacks and causes:")
	cause := errors.New("connection reset by peer")
	logger.Error(errors.Wrap(cause, "failed to fetch manifest"))

	fmt.Println()
	fmt.Println("5. slog bridge:")
	sl := slog.New(conso.Default().SlogHandler())
	sl.Info("request finished", "method", "GET", "status", 200)
	sl.Error("request failed", "status", 502)

	fmt.Println()
	fmt.Println("6. Pause and resume:")
	logger.Pause()
	logger.Info("queued first")
	logger.Info("queued second")
	fmt.Println("(nothing printed yet)")
	logger.Resume()
}
