package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/akasprzok/datastory/internal/charts"
	"github.com/akasprzok/datastory/internal/logger"
	"github.com/akasprzok/datastory/internal/prometheus"
	"github.com/akasprzok/datastory/internal/style"
)

// Context is handed to every command's Run.
type Context struct {
	Log       *logger.Logger
	Style     *style.Config
	StylePath string
	Timeout   time.Duration
	Stdout    io.Writer

	// NewClient connects to Prometheus. Tests replace it with a mock.
	NewClient func(url string) (prometheus.Client, error)
}

var Cli struct {
	Style    string        `help:"Style file (.yaml, .yml or .toml)." type:"path" env:"DATASTORY_STYLE"`
	LogLevel string        `help:"Log level." default:"info" enum:"debug,info,warn,error" env:"DATASTORY_LOG_LEVEL"`
	LogHuman bool          `help:"Human readable log output." env:"DATASTORY_LOG_HUMAN"`
	Timeout  time.Duration `help:"Timeout for Prometheus queries." default:"60s"`

	Demo        DemoCmd        `cmd:"" help:"Render the demo chart gallery."`
	Map         MapCmd         `cmd:"" help:"Draw a choropleth map from GeoJSON."`
	Palette     PaletteCmd     `cmd:"" help:"Show the style's colors."`
	Query       QueryCmd       `cmd:"" help:"Chart an instant query."`
	QueryRange  QueryRangeCmd  `cmd:"" help:"Chart a range query."`
	FormatQuery FormatQueryCmd `cmd:"" help:"Format query."`
}

// NewContext loads the style and builds the logger from the global flags.
func NewContext(stylePath, logLevel string, logHuman bool, timeout time.Duration) (*Context, error) {
	log, err := logger.New(logger.Options{Level: logLevel, HumanReadable: logHuman})
	if err != nil {
		return nil, err
	}
	cfg := style.Default()
	if stylePath != "" {
		if cfg, err = style.Load(stylePath); err != nil {
			return nil, fmt.Errorf("loading style: %w", err)
		}
		log.With("path", stylePath).Debug("style loaded")
	}
	return &Context{
		Log:       log,
		Style:     cfg,
		StylePath: stylePath,
		Timeout:   timeout,
		Stdout:    os.Stdout,
		NewClient: prometheus.NewClient,
	}, nil
}

func (c *Context) charter() *charts.Charter {
	return charts.New(c.Style)
}

func (c *Context) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func (c *Context) client(url string) (prometheus.Client, error) {
	newClient := c.NewClient
	if newClient == nil {
		newClient = prometheus.NewClient
	}
	return newClient(url)
}
