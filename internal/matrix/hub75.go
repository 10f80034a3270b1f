package matrix

import (
	"fmt"
	"sync"
	"time"

	"github.com/warthog618/go-gpiocdev"

	"matrix-scoreboard/internal/board"
)

// scanRows is the number of addressable row pairs; HUB75 panels drive the
// upper and lower half with separate RGB data lines.
const scanRows = Height / 2

// HUB75Config holds the GPIO pin assignment for an Adafruit RGB Matrix
// Bonnet wired to the panel.
type HUB75Config struct {
	Chip   string
	R1Pin  int
	G1Pin  int
	B1Pin  int
	R2Pin  int
	G2Pin  int
	B2Pin  int
	CLKPin int
	OEPin  int
	LAPin  int
	APin   int
	BPin   int
	CPin   int
	DPin   int
	EPin   int
}

// DefaultHUB75Config matches the bonnet's stock wiring.
func DefaultHUB75Config() HUB75Config {
	return HUB75Config{
		Chip: "gpiochip0",
		R1Pin: 5, G1Pin: 13, B1Pin: 6,
		R2Pin: 12, G2Pin: 16, B2Pin: 23,
		CLKPin: 17, OEPin: 4, LAPin: 21,
		APin: 22, BPin: 26, CPin: 27, DPin: 20, EPin: 24,
	}
}

// HUB75Canvas drives the panel by bit-banging the HUB75 protocol over GPIO.
// Each channel is on/off per pixel; the dim palette in board keeps the
// 1-bit depth from washing out.
type HUB75Canvas struct {
	config HUB75Config

	mu     sync.Mutex
	lines  map[int]*gpiocdev.Line
	pixels [Height][Width]board.Color
}

// NewHUB75Canvas requests all GPIO lines and returns a ready canvas.
func NewHUB75Canvas(config HUB75Config) (*HUB75Canvas, error) {
	if config.Chip == "" {
		config.Chip = "gpiochip0"
	}
	c := &HUB75Canvas{
		config: config,
		lines:  make(map[int]*gpiocdev.Line),
	}

	pins := []int{
		config.R1Pin, config.G1Pin, config.B1Pin,
		config.R2Pin, config.G2Pin, config.B2Pin,
		config.CLKPin, config.OEPin, config.LAPin,
		config.APin, config.BPin, config.CPin,
		config.DPin, config.EPin,
	}
	for _, pin := range pins {
		line, err := gpiocdev.RequestLine(config.Chip, pin, gpiocdev.AsOutput(0))
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("request gpio pin %d: %w", pin, err)
		}
		c.lines[pin] = line
	}
	return c, nil
}

func (c *HUB75Canvas) Size() (int, int) { return Width, Height }

func (c *HUB75Canvas) SetPixel(x, y int, col board.Color) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	c.mu.Lock()
	c.pixels[y][x] = col
	c.mu.Unlock()
}

func (c *HUB75Canvas) Clear() {
	c.mu.Lock()
	c.pixels = [Height][Width]board.Color{}
	c.mu.Unlock()
}

// Show scans the framebuffer out to the panel once. The display loop calls
// this repeatedly to hold the image.
func (c *HUB75Canvas) Show() error {
	c.mu.Lock()
	frame := c.pixels
	c.mu.Unlock()

	for row := 0; row < scanRows; row++ {
		if err := c.scanRow(row, &frame); err != nil {
			return err
		}
		time.Sleep(50 * time.Microsecond)
	}
	return nil
}

func (c *HUB75Canvas) scanRow(row int, frame *[Height][Width]board.Color) error {
	if err := c.setAddress(row); err != nil {
		return err
	}
	// Blank output while shifting new data in.
	if err := c.setPin(c.config.OEPin, 1); err != nil {
		return err
	}

	for col := 0; col < Width; col++ {
		r1, g1, b1 := channelBits(frame[row][col])
		r2, g2, b2 := channelBits(frame[row+scanRows][col])

		if err := c.setPins(
			pinValue{c.config.R1Pin, r1}, pinValue{c.config.G1Pin, g1}, pinValue{c.config.B1Pin, b1},
			pinValue{c.config.R2Pin, r2}, pinValue{c.config.G2Pin, g2}, pinValue{c.config.B2Pin, b2},
		); err != nil {
			return err
		}
		if err := c.pulse(c.config.CLKPin); err != nil {
			return err
		}
	}

	if err := c.pulse(c.config.LAPin); err != nil {
		return err
	}
	return c.setPin(c.config.OEPin, 0)
}

func (c *HUB75Canvas) setAddress(row int) error {
	addr := row & 0x1F
	return c.setPins(
		pinValue{c.config.APin, (addr >> 0) & 1},
		pinValue{c.config.BPin, (addr >> 1) & 1},
		pinValue{c.config.CPin, (addr >> 2) & 1},
		pinValue{c.config.DPin, (addr >> 3) & 1},
		pinValue{c.config.EPin, (addr >> 4) & 1},
	)
}

type pinValue struct {
	pin   int
	value int
}

func (c *HUB75Canvas) setPins(pvs ...pinValue) error {
	for _, pv := range pvs {
		if err := c.setPin(pv.pin, pv.value); err != nil {
			return err
		}
	}
	return nil
}

func (c *HUB75Canvas) setPin(pin, value int) error {
	line, ok := c.lines[pin]
	if !ok || line == nil {
		return nil
	}
	return line.SetValue(value)
}

func (c *HUB75Canvas) pulse(pin int) error {
	if err := c.setPin(pin, 1); err != nil {
		return err
	}
	time.Sleep(time.Microsecond)
	return c.setPin(pin, 0)
}

// Close releases all GPIO lines.
func (c *HUB75Canvas) Close() error {
	var firstErr error
	for _, line := range c.lines {
		if line == nil {
			continue
		}
		if err := line.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.lines = make(map[int]*gpiocdev.Line)
	return firstErr
}

// channelBits collapses an 0xRRGGBB color to per-channel on/off bits.
func channelBits(col board.Color) (r, g, b int) {
	cr, cg, cb := col.RGB()
	if cr > 0 {
		r = 1
	}
	if cg > 0 {
		g = 1
	}
	if cb > 0 {
		b = 1
	}
	return r, g, b
}
