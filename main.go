package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"VecBoard/internal/config"
	"VecBoard/internal/remote"
	"VecBoard/internal/shape"
	"VecBoard/internal/ui"
)

const AppID = "io.github.vecboard"

func main() {
	a := app.NewWithID(AppID)
	reg := shape.DefaultRegistry()

	cfg := config.Load(a.Preferences())
	cfg.BindFlags(flag.CommandLine)
	discover := flag.Bool("discover", false, "list boards accepting remote input on the LAN and exit")
	flag.Parse()

	if *discover {
		runDiscover()
		return
	}
	if err := cfg.Validate(reg); err != nil {
		log.Fatalf("config: %v", err)
	}

	board := ui.NewApp(a, cfg, reg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.RemoteEnabled {
		startRemote(ctx, cfg, board)
	}

	a.Lifecycle().SetOnStopped(func() {
		ws := board.Canvas.Workspace()
		config.SaveDrawing(a.Preferences(), ws.ActiveTool(), ws.Stroke())
	})

	log.Println("Starting VecBoard")
	board.ShowAndRun()
}

func startRemote(ctx context.Context, cfg config.Config, board *ui.App) {
	port, err := remote.Port(cfg.RemoteAddr)
	if err != nil {
		log.Fatalf("remote address %q: %v", cfg.RemoteAddr, err)
	}

	// Commands run on the UI goroutine, which owns the workspace.
	srv := remote.NewServer(board.Canvas.Workspace(), fyne.DoAndWait)
	go func() {
		if err := srv.ListenAndServe(ctx, cfg.RemoteAddr); err != nil {
			log.Printf("[REMOTE] server stopped: %v", err)
			fyne.Do(func() { board.SetStatus("Remote input unavailable: " + err.Error()) })
		}
	}()

	if cfg.Advertise {
		mdnsServer, err := remote.Advertise(port)
		if err != nil {
			log.Printf("[REMOTE] %v", err)
		} else {
			go func() {
				<-ctx.Done()
				mdnsServer.Shutdown()
			}()
		}
	}

	board.SetStatus("Remote input at " + remote.URL(remote.OutgoingIP(), port))
}

func runDiscover() {
	found := 0
	err := remote.Browse(2*time.Second, func(url string) {
		found++
		fmt.Println(url)
	})
	if err != nil {
		log.Fatalf("discover: %v", err)
	}
	if found == 0 {
		log.Println("No boards found")
	}
}
