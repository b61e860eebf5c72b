package display

import (
	"image"
	"strings"

	"github.com/rileyhilliard/minipadd/internal/errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/inky"
	"periph.io/x/host/v3"
)

// Inky pHAT wiring on the Raspberry Pi header.
const (
	InkySPIPort  = "SPI0.0"
	InkyDCPin    = "GPIO22"
	InkyResetPin = "GPIO27"
	InkyBusyPin  = "GPIO17"
)

// InkyDevice drives a Pimoroni Inky pHAT over SPI.
type InkyDevice struct {
	port spi.PortCloser
	dev  *inky.Dev
}

// OpenInky initializes the host drivers and opens the panel.
func OpenInky(panelColor string) (*InkyDevice, error) {
	if _, err := host.Init(); err != nil {
		return nil, displayError(err, "Failed to initialize GPIO/SPI drivers")
	}

	port, err := spireg.Open(InkySPIPort)
	if err != nil {
		return nil, displayError(err, "Failed to open "+InkySPIPort)
	}

	dc, err := pin(InkyDCPin)
	if err != nil {
		port.Close()
		return nil, err
	}
	reset, err := pin(InkyResetPin)
	if err != nil {
		port.Close()
		return nil, err
	}
	busy, err := pin(InkyBusyPin)
	if err != nil {
		port.Close()
		return nil, err
	}

	dev, err := inky.New(port, dc, reset, busy, &inky.Opts{
		Model:       inky.PHAT,
		ModelColor:  inkyColor(panelColor),
		BorderColor: inky.White,
	})
	if err != nil {
		port.Close()
		return nil, displayError(err, "Failed to set up Inky pHAT")
	}

	return &InkyDevice{port: port, dev: dev}, nil
}

func (d *InkyDevice) Bounds() image.Rectangle {
	return d.dev.Bounds()
}

// Show pushes a full frame. The panel refresh blocks for several seconds.
func (d *InkyDevice) Show(img image.Image) error {
	return d.dev.Draw(img.Bounds(), img, img.Bounds().Min)
}

func (d *InkyDevice) Close() error {
	return d.port.Close()
}

func pin(name string) (gpio.PinIO, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, errors.New(errors.ErrDisplay, "GPIO pin "+name+" not available",
			"Run on a Raspberry Pi with the Inky pHAT attached, or set SCREEN_MOCK=true")
	}
	return p, nil
}

func inkyColor(panelColor string) inky.Color {
	switch strings.ToLower(panelColor) {
	case "red":
		return inky.Red
	case "black":
		return inky.Black
	default:
		return inky.Yellow
	}
}

func displayError(err error, msg string) error {
	return errors.WrapWithCode(err, errors.ErrDisplay, msg,
		"Enable SPI with raspi-config, or set SCREEN_MOCK=true to use the emulator")
}
