// Package cli implements the roomfit command-line interface.
//
// The commands cover the whole design flow: lay out a room from the
// catalog, refine the plan (move, rotate, swap, remove), review the cost
// summary and alternatives, and export the result. Commands are built
// with cobra and log through charmbracelet/log; --verbose switches to
// debug output.
package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/RoomFit/internal/catalog"
	"github.com/piwi3910/RoomFit/internal/design"
	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/piwi3910/RoomFit/internal/project"
)

const (
	// appName is the application name used for display.
	appName = "roomfit"

	// maxRecentProjects bounds the recent project list in the app config.
	maxRecentProjects = 10
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out       io.Writer
	configDir string
}

// New creates a CLI that prints results to out and logs to logOut.
func New(out, logOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:    newLogger(logOut, level),
		out:       out,
		configDir: project.DefaultConfigDir(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetConfigDir points the CLI at a different configuration directory.
func (c *CLI) SetConfigDir(dir string) {
	c.configDir = dir
}

func (c *CLI) configPath() string {
	return project.ConfigPath(c.configDir)
}

func (c *CLI) templatePath() string {
	return project.TemplatePath(c.configDir)
}

func (c *CLI) loadConfig() (model.AppConfig, error) {
	cfg, err := project.LoadAppConfig(c.configPath())
	if err != nil {
		return model.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// loadCatalog opens the catalog at path, falling back to the configured
// catalog and then to the built-in one.
func (c *CLI) loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		cfg, err := c.loadConfig()
		if err != nil {
			return nil, err
		}
		path = cfg.CatalogPath
	}
	if path == "" {
		return catalog.Default(), nil
	}

	cat, warnings, err := catalog.Load(path)
	for _, w := range warnings {
		c.Logger.Warn(w, "catalog", path)
	}
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded catalog", "path", path, "products", cat.Len())
	return cat, nil
}

// openDesign loads a project file into a design.
func (c *CLI) openDesign(path string) (*design.Design, model.Project, error) {
	p, err := project.LoadProject(path)
	if err != nil {
		return nil, model.Project{}, err
	}
	return design.FromProject(p), p, nil
}

// saveProject writes p and records it as the most recent project.
func (c *CLI) saveProject(path string, p model.Project) error {
	if err := project.SaveProject(path, p); err != nil {
		return err
	}
	cfg, err := c.loadConfig()
	if err != nil {
		c.Logger.Warn("recent projects not updated", "err", err)
		return nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	cfg.AddRecentProject(abs, maxRecentProjects)
	if err := project.SaveAppConfig(c.configPath(), cfg); err != nil {
		c.Logger.Warn("recent projects not updated", "err", err)
	}
	return nil
}

// resolveItem accepts a furniture id or its 1-based position in the plan.
func resolveItem(d *design.Design, ref string) (string, error) {
	if _, err := d.Find(ref); err == nil {
		return ref, nil
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(d.Furniture) {
		return d.Furniture[n-1].ID, nil
	}
	return "", fmt.Errorf("%q: %w", ref, design.ErrItemNotFound)
}

var (
	errUnknownRoomType = errors.New("unknown room type")
	errUnknownStyle    = errors.New("unknown style")
	errUnknownCountry  = errors.New("unknown country")
)

func parseRoomType(s string) (model.RoomType, error) {
	rt := model.RoomType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range model.RoomTypes {
		if rt == known {
			return rt, nil
		}
	}
	return "", fmt.Errorf("%w %q (want one of %s)", errUnknownRoomType, s, joinValues(model.RoomTypes))
}

func parseStyle(s string) (model.Style, error) {
	st := model.Style(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range model.Styles {
		if st == known {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w %q (want one of %s)", errUnknownStyle, s, joinValues(model.Styles))
}

func parseCountry(s string) (model.Country, error) {
	c := model.Country(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range model.Countries {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w %q (want one of %s)", errUnknownCountry, s, joinValues(model.Countries))
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// feet formats a layout coordinate in feet.
func feet(s model.LayoutSettings, units float64) string {
	return fmt.Sprintf("%.1f", s.UnitsToFeet(units))
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
