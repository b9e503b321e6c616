package frontend

import (
	"fmt"
	"math"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"arenadrift/internal/input"
	"arenadrift/internal/protocol"
)

const canvasFont = "Courier New"

// canvasRenderer draws the arena onto the 2D canvas context. It keeps the
// aim reference marker between frames; the marker is purely visual and never
// leaves the client.
type canvasRenderer struct {
	canvas  app.Value
	ctx     app.Value
	width   float64
	height  float64
	margin  float64
	refSize float64

	refX, refY float64
	hasRef     bool
}

func newCanvasRenderer(canvas app.Value) *canvasRenderer {
	w, h := app.Window().Size()
	full := math.Min(float64(w), float64(h))
	margin := full * 0.02
	canvas.Set("width", w)
	canvas.Set("height", h-10)
	return &canvasRenderer{
		canvas:  canvas,
		ctx:     canvas.Call("getContext", "2d"),
		width:   float64(w),
		height:  float64(h - 10),
		margin:  margin,
		refSize: full - 2*margin,
	}
}

// PlayableSize is the side of the logical playable square in screen
// coordinates. Start gestures outside it belong to the surrounding UI.
func (c *canvasRenderer) PlayableSize() float64 {
	return 2*c.margin + c.refSize
}

func (c *canvasRenderer) DrawSnapshot(players []protocol.PlayerSnapshot) {
	c.clear()
	c.drawLimits()
	c.drawInputRef()
	for _, p := range players {
		c.drawPlayer(p)
	}
}

func (c *canvasRenderer) drawLimits() {
	c.ctx.Set("strokeStyle", "red")
	c.ctx.Set("lineWidth", 1)
	c.ctx.Call("beginPath")
	c.ctx.Call("setLineDash", []any{5, 5})
	c.ctx.Call("moveTo", c.margin, c.margin)
	c.ctx.Call("lineTo", c.margin+c.refSize, c.margin)
	c.ctx.Call("lineTo", c.margin+c.refSize, c.margin+c.refSize)
	c.ctx.Call("lineTo", c.margin, c.margin+c.refSize)
	c.ctx.Call("lineTo", c.margin, c.margin)
	c.ctx.Call("stroke")
}

func (c *canvasRenderer) drawPlayer(p protocol.PlayerSnapshot) {
	x := p.X * c.refSize
	y := (1 - p.Y) * c.refSize
	size := p.Size * c.refSize
	accSize := 0.05 * c.refSize / input.MaxDd

	if p.IsMe {
		c.drawScore(p)
	}

	// Acceleration line.
	c.ctx.Set("strokeStyle", "blue")
	c.ctx.Set("lineWidth", 1)
	c.ctx.Call("beginPath")
	c.ctx.Call("setLineDash", []any{})
	c.ctx.Call("moveTo", c.margin+x, c.margin+y)
	c.ctx.Call("lineTo", c.margin+x-accSize*p.Ddx, c.margin+y+accSize*p.Ddy)
	c.ctx.Call("stroke")

	switch {
	case p.IsMe:
		c.ctx.Set("fillStyle", "green")
	case !p.Alive:
		c.ctx.Set("fillStyle", "black")
	default:
		c.ctx.Set("fillStyle", "red")
	}
	c.ctx.Call("beginPath")
	c.ctx.Call("ellipse", c.margin+x, c.margin+y, size/2, size/2, 0, 0, 2*math.Pi)
	c.ctx.Call("fill")
}

func (c *canvasRenderer) drawScore(p protocol.PlayerSnapshot) {
	c.ctx.Set("textAlign", "start")
	c.ctx.Set("font", "20px "+canvasFont)
	c.ctx.Set("fillStyle", "black")
	c.ctx.Call("fillText", fmt.Sprintf("Score: %8.0f", p.Score), c.margin+10, c.margin+25)
}

func (c *canvasRenderer) DrawInputRef(x, y float64) {
	c.refX, c.refY = x, y
	c.hasRef = true
	c.drawInputRef()
}

func (c *canvasRenderer) ClearInputRef() {
	c.hasRef = false
}

func (c *canvasRenderer) drawInputRef() {
	if !c.hasRef {
		return
	}
	c.ctx.Set("fillStyle", "rgba(0, 0, 0, 0.3)")
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", c.refX, c.refY, 0.02*c.refSize, 0, 2*math.Pi)
	c.ctx.Call("fill")
}

func (c *canvasRenderer) DrawGameOver() {
	c.centerText("GAME OVER", "red", -20, 50)
	c.centerText("tap to retry", "black", 20, 20)
}

func (c *canvasRenderer) DrawWelcome() {
	c.clear()
	c.drawLimits()
	c.centerText("ARENA DRIFT", "black", -20, 50)
	c.centerText("tap to start", "black", 20, 20)
}

func (c *canvasRenderer) DrawError(text string) {
	c.centerText(text, "red", -20, 30)
	c.centerText("tap to reconnect", "black", 20, 20)
}

func (c *canvasRenderer) centerText(text, color string, offsetY float64, px int) {
	c.ctx.Set("textAlign", "center")
	c.ctx.Set("font", fmt.Sprintf("%dpx %s", px, canvasFont))
	c.ctx.Set("fillStyle", color)
	c.ctx.Call("fillText", text, c.margin+c.refSize/2, c.margin+c.refSize/2+offsetY)
}

func (c *canvasRenderer) clear() {
	c.ctx.Call("clearRect", 0, 0, c.width, c.height)
}
