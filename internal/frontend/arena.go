package frontend

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"

	"arenadrift/internal/input"
	"arenadrift/internal/session"
)

type scoreRow struct {
	Name  string
	Score float64
}

// Arena is the single-page game component: the name field, the canvas, and
// the leaderboard. All game logic lives in internal/session and
// internal/input; this component only wires browser events into them.
type Arena struct {
	app.Compo

	name     string
	rows     [session.ScoreboardSize]scoreRow
	manager  *session.Manager
	pointer  *input.Pointer
	renderer *canvasRenderer
	handlers []app.Func
}

func (a *Arena) OnMount(ctx app.Context) {
	if app.IsServer {
		return
	}
	klog.V(1).Infof("Arena: OnMount called")

	store := localStore{}
	a.name = session.PlayerName(store)
	if a.name != "" {
		ctx.Update()
	}

	canvas := app.Window().GetElementByID("arena")
	a.renderer = newCanvasRenderer(canvas)

	a.manager = session.NewManager(session.ManagerConfig{
		URL:          session.WebSocketURL(app.Window().URL()),
		PlayableSize: a.renderer.PlayableSize(),
		Name:         func() string { return a.name },
		Store:        store,
		Renderer:     a.renderer,
		Scoreboard:   scoreboardView{arena: a},
		Dispatch: func(f func()) {
			ctx.Dispatch(func(app.Context) { f() })
		},
	})

	pointer, err := input.NewPointer(input.Config{
		MaxDragLength: float64(app.Window().Get("innerWidth").Int()),
	}, a.manager.HandleInput)
	if err != nil {
		klog.Errorf("Arena: pointer setup failed: %v", err)
		return
	}
	a.pointer = pointer

	a.attachPointerListeners(canvas)
	a.renderer.DrawWelcome()
}

func (a *Arena) OnDismount() {
	klog.V(1).Infof("Arena: OnDismount called")
	if a.manager != nil {
		a.manager.Shutdown()
	}
	for _, f := range a.handlers {
		f.Release()
	}
	a.handlers = nil
}

// attachPointerListeners wires raw touch and mouse events into the pointer
// unifier. Listeners for both device classes stay attached; whichever fires
// last wins.
func (a *Arena) attachPointerListeners(canvas app.Value) {
	listen := func(event string, h func(e app.Value)) {
		f := app.FuncOf(func(this app.Value, args []app.Value) any {
			if len(args) > 0 {
				h(args[0])
			}
			return nil
		})
		a.handlers = append(a.handlers, f)
		canvas.Call("addEventListener", event, f)
	}

	listen("touchstart", func(e app.Value) {
		if a.manager.SessionLive() {
			// Keeps the platform from throttling the touch-move stream,
			// at the cost of the synthetic click. Left off before a
			// session is live so the "tap to start" gesture still
			// registers as a click.
			e.Call("preventDefault")
		}
		t := e.Get("changedTouches").Index(0)
		a.pointer.Start(input.DeviceTouch, t.Get("clientX").Float(), t.Get("clientY").Float())
	})
	listen("touchmove", func(e app.Value) {
		t := e.Get("changedTouches").Index(0)
		a.pointer.Move(input.DeviceTouch, t.Get("clientX").Float(), t.Get("clientY").Float())
	})
	listen("touchend", func(e app.Value) {
		a.pointer.End(input.DeviceTouch)
	})

	listen("mousedown", func(e app.Value) {
		a.pointer.Start(input.DeviceMouse, e.Get("clientX").Float(), e.Get("clientY").Float())
	})
	listen("mousemove", func(e app.Value) {
		a.pointer.Move(input.DeviceMouse, e.Get("clientX").Float(), e.Get("clientY").Float())
	})
	listen("mouseup", func(e app.Value) {
		a.pointer.End(input.DeviceMouse)
	})
}

func (a *Arena) onNameChange(ctx app.Context, e app.Event) {
	a.name = ctx.JSSrc().Get("value").String()
}

func (a *Arena) Render() app.UI {
	rows := make([]app.UI, 0, session.ScoreboardSize)
	for i, r := range a.rows {
		text := ""
		if r.Name != "" {
			text = fmt.Sprintf("%d. %s %.0f", i+1, r.Name, r.Score)
		}
		rows = append(rows, app.Li().Text(text))
	}

	return app.Main().Class("arena").Body(
		app.Div().Class("arena-topbar").Body(
			app.Input().
				Type("text").
				ID("player-name").
				Placeholder("Enter your player name").
				AutoComplete(false).
				Value(a.name).
				OnInput(a.onNameChange),
		),
		app.Canvas().ID("arena"),
		app.Ol().Class("scoreboard").Body(rows...),
	)
}

// scoreboardView receives ranked rows from the session. Calls arrive on the
// UI context (via the manager's Dispatch), so mutating the component here is
// safe and the dispatch re-renders it.
type scoreboardView struct {
	arena *Arena
}

func (v scoreboardView) Update(rank int, name string, score float64) {
	if rank < 0 || rank >= session.ScoreboardSize {
		return
	}
	v.arena.rows[rank] = scoreRow{Name: name, Score: score}
}
