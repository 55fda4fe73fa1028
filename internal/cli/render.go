package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/internal/config"
)

var errNothingRendered = errors.New("graph rendered nothing")

// renderOpts holds the command-line flags for the render command.
// Flags override values read from --config.
type renderOpts struct {
	configPath string
	output     string
	width      int
	height     int
	scale      float64
	seed       int32
	octaves    int
	freq       []float64
	stitch     bool
	fractal    bool
	blur       float64
	background string
	colorSpace string
	blend      string
}

func newRenderCmd() *cobra.Command {
	d := config.Default()
	opts := renderOpts{
		output:     d.Output,
		width:      d.Width,
		height:     d.Height,
		scale:      d.Scale,
		octaves:    d.Turbulence.Octaves,
		freq:       d.Turbulence.BaseFrequency,
		background: d.Background,
		colorSpace: d.ColorSpace,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a turbulence filter graph to PNG",
		Long: `Render builds turbulence -> [color matrix] -> [blur] -> merge over a
background flood and writes the result as an sRGB PNG. With --blend the
effect is blended with the background using that mode instead.

Settings come from --config when given; explicit flags override them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, &opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML render description")
	f.StringVarP(&opts.output, "output", "o", opts.output, "output PNG path")
	f.IntVar(&opts.width, "width", opts.width, "region width in user units")
	f.IntVar(&opts.height, "height", opts.height, "region height in user units")
	f.Float64Var(&opts.scale, "scale", opts.scale, "device pixels per user unit")
	f.Int32Var(&opts.seed, "seed", 0, "turbulence seed")
	f.IntVar(&opts.octaves, "octaves", opts.octaves, "number of noise octaves")
	f.Float64SliceVar(&opts.freq, "freq", opts.freq, "base frequency x[,y]")
	f.BoolVar(&opts.stitch, "stitch", false, "stitch tiles seamlessly")
	f.BoolVar(&opts.fractal, "fractal", false, "fractal noise instead of turbulence")
	f.Float64Var(&opts.blur, "blur", 0, "gaussian blur standard deviation (0 disables)")
	f.StringVar(&opts.background, "background", opts.background, "background colour (#rrggbb[aa] or transparent)")
	f.StringVar(&opts.blend, "blend", "", "blend mode onto the background (default source-over)")
	f.StringVar(&opts.colorSpace, "color-space", opts.colorSpace, "operation colour space (linearRGB or sRGB)")
	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	c := config.Default()
	if opts.configPath != "" {
		var err error
		if c, err = config.Load(opts.configPath); err != nil {
			return err
		}
		logger.Debug("loaded config", "path", opts.configPath)
	}
	applyFlags(cmd, opts, c)

	diag := ggfx.NewDiagnosticCounter(ggfx.DefaultDiagnostics())
	g, err := c.Build(ggfx.WithDiagnostics(diag))
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	r := g.Root.Render(g.Context)
	if r == nil {
		return errNothingRendered
	}
	if n := diag.SingularTransforms(); n > 0 {
		logger.Warn("singular transforms substituted", "count", n)
	}
	if err := r.SavePNG(c.Output); err != nil {
		return fmt.Errorf("write %s: %w", c.Output, err)
	}
	prog.done("rendered", "path", c.Output, "size", fmt.Sprintf("%dx%d", r.Width(), r.Height()))
	return nil
}

// applyFlags copies every flag the user set explicitly into c.
func applyFlags(cmd *cobra.Command, opts *renderOpts, c *config.Config) {
	f := cmd.Flags()
	if f.Changed("output") {
		c.Output = opts.output
	}
	if f.Changed("width") {
		c.Width = opts.width
	}
	if f.Changed("height") {
		c.Height = opts.height
	}
	if f.Changed("scale") {
		c.Scale = opts.scale
	}
	if f.Changed("seed") {
		c.Turbulence.Seed = opts.seed
	}
	if f.Changed("octaves") {
		c.Turbulence.Octaves = opts.octaves
	}
	if f.Changed("freq") {
		c.Turbulence.BaseFrequency = opts.freq
	}
	if f.Changed("stitch") {
		c.Turbulence.Stitch = opts.stitch
	}
	if f.Changed("fractal") {
		c.Turbulence.Fractal = opts.fractal
	}
	if f.Changed("background") {
		c.Background = opts.background
	}
	if f.Changed("blend") {
		c.Blend = opts.blend
	}
	if f.Changed("color-space") {
		c.ColorSpace = opts.colorSpace
	}
	if f.Changed("blur") {
		if opts.blur > 0 {
			c.Blur = &config.Blur{StdDeviation: []float64{opts.blur}}
		} else {
			c.Blur = nil
		}
	}
}
