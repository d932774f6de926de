package cmd

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/TomekTTX/sdlw/pkg/app"
	"github.com/TomekTTX/sdlw/pkg/config"
	"github.com/TomekTTX/sdlw/pkg/geometry"
	"github.com/TomekTTX/sdlw/pkg/graphics"
	"github.com/TomekTTX/sdlw/pkg/input"
	"github.com/TomekTTX/sdlw/pkg/widgets"
)

var (
	demoConfigPath string
	demoSnapshot   string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the widget showcase against the software backend",
	Long: `demo builds a window containing every widget the toolkit ships,
replays a short scripted interaction against it, and optionally writes
the final frame to a PNG file.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVarP(&demoConfigPath, "config", "c", "sdlw.yaml", "configuration file")
	demoCmd.Flags().StringVarP(&demoSnapshot, "snapshot", "o", "", "write the final frame to this PNG file")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(demoConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.CheckRequires(app.Version); err != nil {
		return err
	}

	raster := graphics.NewRaster(cfg.Window.Width, cfg.Window.Height)
	queue := input.NewQueue(demoScript()...)

	win, err := app.NewWindow(
		cfg.Window.Width, cfg.Window.Height, cfg.Window.Title,
		raster, queue,
		app.WithFont(cfg.FontFamily(), cfg.Window.Font.Size),
		app.WithLogger(newLogger(cfg.Log.Level)),
	)
	if err != nil {
		return err
	}
	buildShowcase(win)

	// The scripted queue ends with a quit event, so Run terminates once
	// the interaction has been replayed.
	win.Run()

	if demoSnapshot != "" {
		if err := writeSnapshot(raster, demoSnapshot); err != nil {
			return err
		}
		fmt.Println("snapshot written to", demoSnapshot)
	}
	return nil
}

// buildShowcase assembles one of everything.
func buildShowcase(win *app.Window) {
	palette := graphics.PaletteOf(0x303030, 0x808080, 0xE0E0E0, 0x505050, 0x202020)

	win.AddComponent("title", widgets.NewLabel(
		geometry.Rect{X: 20, Y: 10, W: 300, H: 24}, "sdlw showcase", 0xE0E0E0))

	clicks := 0
	button := widgets.NewButton(geometry.Rect{X: 20, Y: 50, W: 120, H: 28}, "Click me", palette, nil)
	button.SetCallback(func(b *widgets.Button) {
		clicks++
		b.Text = fmt.Sprintf("Clicked x%d", clicks)
	})
	win.AddComponent("button", button)

	slider := widgets.NewSlider(geometry.Rect{X: 20, Y: 100, W: 200, H: 10}, 0, 100, 5, palette)
	win.AddComponent("slider", slider)

	win.AddComponent("input", widgets.NewTextInput(
		geometry.Rect{X: 20, Y: 130, W: 200, H: 28}, palette, "edit me", false))

	win.AddComponent("combo", widgets.NewComboBox(
		geometry.Rect{X: 20, Y: 180, W: 160, H: 26},
		[]string{"first", "second", "third", "fourth"}, palette, 3, widgets.DirDown))

	dropdown := widgets.NewDropdown(
		geometry.Rect{X: 260, Y: 50, W: 160, H: 26},
		geometry.Rect{W: 120, H: 24},
		"rows", widgets.DropdownAdd|widgets.DropdownDelete|widgets.DropdownSwap,
		4, palette, widgets.DirDown)
	dropdown.SetFactory(func(index int) widgets.Component {
		return widgets.NewLabel(geometry.Rect{W: 120, H: 24}, fmt.Sprintf("row %d", index), 0xE0E0E0)
	})
	win.AddComponent("dropdown", dropdown)

	win.AddComponent("colors", widgets.NewColorSelect(
		geometry.Rect{X: 260, Y: 120, W: 120, H: 40}, palette, widgets.DirDown))
}

// demoScript is the interaction replayed by the demo: hover the button,
// click it twice, open the combo box, pick an option, then quit.
func demoScript() []input.Event {
	click := func(x, y int) []input.Event {
		p := geometry.Point{X: x, Y: y}
		return []input.Event{
			input.MouseMotion{Pos: p},
			input.MouseButtonDown{Pos: p, Clicks: 1},
			input.MouseButtonUp{Pos: p},
		}
	}
	var script []input.Event
	script = append(script, click(80, 64)...)   // button
	script = append(script, click(80, 64)...)   // button again
	script = append(script, click(100, 193)...) // combo trigger
	script = append(script, click(100, 220)...) // an option row
	script = append(script, input.Quit{})
	return script
}

func writeSnapshot(raster *graphics.Raster, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, raster.Image()); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
