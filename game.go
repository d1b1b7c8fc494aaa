package main

import (
	"fmt"
	"log/slog"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/furi/assets"
	"github.com/milk9111/furi/common"
	"github.com/milk9111/furi/dialogue"
	"github.com/milk9111/furi/ecs"
	"github.com/milk9111/furi/ecs/component"
	"github.com/milk9111/furi/ecs/entity"
	"github.com/milk9111/furi/ecs/system"
	"github.com/milk9111/furi/levels"
	"github.com/milk9111/furi/prefabs"
	"github.com/milk9111/furi/voice"
)

type Config struct {
	Tutorial      bool
	Debug         bool
	Watch         bool
	ForceFallback bool
}

type Game struct {
	world   *ecs.World
	village *entity.Village
	render  *system.RenderSystem
	ui      *ebitenui.UI
	menu    *MenuUI
	watcher *prefabs.Watcher
	content *prefabs.DialogueSpec

	debug    bool
	menuOpen bool
}

func NewGame(cfg Config) (*Game, error) {
	lvl, err := levels.LoadLevelFromFS(levels.DefaultLevel)
	if err != nil {
		return nil, fmt.Errorf("game: load level: %w", err)
	}

	world := ecs.NewWorld()
	village, err := entity.BuildVillage(world, lvl, entity.Options{ForceFallback: cfg.ForceFallback})
	if err != nil {
		return nil, fmt.Errorf("game: build village: %w", err)
	}

	content, err := prefabs.LoadDialogueSpec()
	if err != nil {
		return nil, fmt.Errorf("game: load dialogue: %w", err)
	}
	selector, err := content.Selector()
	if err != nil {
		slog.Warn("dialogue script unavailable, using response table", "error", err)
	}

	voicesSpec, err := prefabs.LoadVoicesSpec()
	if err != nil {
		return nil, fmt.Errorf("game: load voices: %w", err)
	}
	speaker := voice.New(assets.SampleRate, voicesSpec.Profiles, assets.VoiceFactory(assets.AudioContext()))

	activation := system.NewActivationSystem(content.ModeGreetings())
	interaction := system.NewInteractionSystem(selector)

	world.AddSystem(system.NewInputSystem())
	world.AddSystem(activation)
	world.AddSystem(system.NewPlayerControllerSystem())
	world.AddSystem(system.NewCameraSystem())
	world.AddSystem(system.NewVisualLoaderSystem())
	world.AddSystem(interaction)
	world.AddSystem(system.NewDialogueSystem(speaker))

	g := &Game{
		world:    world,
		village:  village,
		render:   system.NewRenderSystem(),
		content:  content,
		debug:    cfg.Debug,
		menuOpen: true,
	}

	if cfg.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			slog.Warn("prefab watcher disabled", "error", err)
		} else {
			g.watcher = watcher
			world.AddSystem(system.NewHotReloadSystem(watcher, activation, interaction, speaker))
		}
	}

	g.ui, g.menu = NewMenuUI(g)
	if cfg.Tutorial {
		g.Start(true)
	}
	return g, nil
}

// Start requests a session; the menu closes once it is active.
func (g *Game) Start(tutorial bool) {
	if !system.RequestActivation(g.world, tutorial) {
		slog.Warn("activation request dropped: no player")
	}
}

// Post shows a line in the HUD panel without starting a session.
func (g *Game) Post(line dialogue.Line) {
	if _, panel, ok := ecs.Single(g.world, component.DialogueComponent.Kind()); ok {
		panel.Post(line)
	}
}

func (g *Game) MenuLine(key string) {
	if line, ok := g.content.MenuLine(key); ok {
		g.Post(line)
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !g.menuOpen {
		system.Deactivate(g.world)
	}

	g.world.Update(1 / float64(ebiten.TPS()))

	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventActivated:
			g.setMenuOpen(false)
		case ecs.EventDeactivated:
			g.setMenuOpen(true)
		case ecs.EventReloaded:
			if name, ok := evt.Data.(string); ok && name == "dialogue.yaml" {
				g.reloadContent()
			}
		}
	}

	g.syncHUD()
	g.ui.Update()
	return nil
}

func (g *Game) setMenuOpen(open bool) {
	g.menuOpen = open
	g.menu.SetMenuVisible(open)
	if open {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
}

func (g *Game) reloadContent() {
	content, err := prefabs.LoadDialogueSpec()
	if err != nil {
		slog.Warn("menu content reload failed", "error", err)
		return
	}
	g.content = content
}

func (g *Game) syncHUD() {
	_, panel, ok := ecs.Single(g.world, component.DialogueComponent.Kind())
	if !ok {
		return
	}
	hint := ""
	if panel.Hint != "" {
		hint = "Press E to talk to " + panel.Hint
	}
	g.menu.SetDialogue(panel.Current.String(), hint)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	g.ui.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, g.status())
	}
}

func (g *Game) status() string {
	_, session, ok := ecs.Single(g.world, component.SessionComponent.Kind())
	if !ok {
		return ""
	}
	pos := "-"
	if tr, ok := ecs.Get(g.world, g.village.Player, component.TransformComponent.Kind()); ok {
		pos = fmt.Sprintf("%.2f %.2f %.2f yaw %.2f", tr.Position.X(), tr.Position.Y(), tr.Position.Z(), tr.Yaw)
	}
	return fmt.Sprintf("FPS: %.2f  mode: %s  active: %v\npos: %s\nsession: %s",
		ebiten.ActualFPS(), session.Mode, session.Active, pos, session.ID)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// Close stops the prefab watcher.
func (g *Game) Close() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil {
		slog.Warn("close prefab watcher", "error", err)
	}
}
