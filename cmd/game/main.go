package main

import (
	"flag"
	"io/fs"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/younwookim/hikari/internal/application/game"
	"github.com/younwookim/hikari/internal/application/replay"
	"github.com/younwookim/hikari/internal/application/scene"
	"github.com/younwookim/hikari/internal/application/scene/menu"
	"github.com/younwookim/hikari/internal/application/scene/stage"
	"github.com/younwookim/hikari/internal/application/system"
	"github.com/younwookim/hikari/internal/infrastructure/audio"
	"github.com/younwookim/hikari/internal/infrastructure/config"
	"github.com/younwookim/hikari/internal/infrastructure/render"
	"github.com/younwookim/hikari/internal/infrastructure/storage"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to a file, or a timestamped file in a directory (e.g., -record replays/)")
	replayFlag := flag.String("replay", "", "Play back a recorded session")
	saveFlag := flag.String("save", "", "Progress file (default: user config dir)")
	muteFlag := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	session := uuid.NewString()
	log.Printf("Session %s", session)

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	bundle, err := config.NewFSLoader(fsys, "configs").LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg := bundle.Game

	kit, err := render.NewKit(render.NewAtlas(render.DefaultResolution))
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	store, err := storage.Open(cfg.Save, *saveFlag)
	if err != nil {
		log.Printf("Progress will not persist: %v", err)
		store = storage.NewMemoryStore(nil)
	}

	var sound audio.Service = audio.Nop{}
	if cfg.Audio.Enabled && !*muteFlag {
		sound = audio.NewSynth(audio.NewContextOutput(eaudio.NewContext(cfg.Audio.SampleRate)), cfg.Audio)
	}

	// Input: live devices, optionally teed into a recorder, or a replay
	seed := time.Now().UnixNano()
	var input system.Source = system.NewInputSystem()
	var recorder *replay.Recorder
	var recordPath string
	var screen *replay.Screen
	switch {
	case *replayFlag != "":
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		player := replay.NewReplayer(*data)
		seed = player.Seed()
		input = player
		// Play against the recorded save; the local one stays untouched
		if store, err = player.Store(); err != nil {
			log.Fatalf("Failed to restore recorded progress: %v", err)
		}
		sc := player.Screen()
		screen = &sc
		log.Printf("Replaying %s: session %s, %d frames", *replayFlag, player.Session(), player.TotalFrames())
	case *recordFlag != "":
		recordPath = replay.OutputPath(*recordFlag)
		sc := replay.Screen{W: cfg.Display.MaxWidth, H: cfg.Display.MaxHeight}
		recorder = replay.NewRecorder(seed, session, storage.Load(store).Snapshot(), sc)
		input = replay.Tee(input, recorder)
		screen = &sc
		log.Printf("Recording enabled: %s (seed: %d)", recordPath, seed)
	}

	g := game.New(bundle, game.Services{
		Audio: sound,
		Kit:   kit,
		Store: store,
		Input: input,
		Rand:  rand.New(rand.NewSource(seed)),
	}, game.Factories{
		Title: func(ctl scene.Controller) scene.Scene { return menu.NewTitle(ctl) },
		Stage: stage.Build,
		StageClear: func(ctl scene.Controller, id int) scene.Scene {
			return menu.NewStageClear(ctl, id)
		},
	})
	if screen != nil {
		g.UseFixedStep()
		g.LockScreen(screen.W, screen.H)
	}

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.MaxWidth, cfg.Display.MaxHeight)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	runErr := ebiten.RunGame(g)

	if recorder != nil {
		recorder.Stop()
		if err := recorder.Save(recordPath); err != nil {
			log.Printf("Failed to save recording: %v", err)
		} else {
			log.Printf("Recording saved: %s (%d frames)", recordPath, recorder.FrameCount())
		}
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
