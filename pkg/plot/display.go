package plot

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"go.uber.org/multierr"
)

const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// FileDisplay renders every figure into Dir as <name>.<format>.
type FileDisplay struct {
	Dir    string
	Format string
}

func NewFileDisplay(dir, format string) (*FileDisplay, error) {
	format = strings.ToLower(format)
	if format == "" {
		format = FormatPNG
	}

	if _, err := rendererProvider(format); err != nil {
		return nil, err
	}

	return &FileDisplay{Dir: dir, Format: format}, nil
}

// Path returns the file a figure named name is written to.
func (d *FileDisplay) Path(name string) string {
	return filepath.Join(d.Dir, name+"."+d.Format)
}

func (d *FileDisplay) Show(name string, fig Figure) (err error) {
	rp, err := rendererProvider(d.Format)
	if err != nil {
		return err
	}

	if d.Dir != "" {
		if err := os.MkdirAll(d.Dir, 0755); err != nil {
			return errors.Wrapf(err, "cannot create output directory %s", d.Dir)
		}
	}

	path := d.Path(name)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create on path %s", path)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	if err := fig.Render(rp, f); err != nil {
		return errors.Wrapf(err, "cannot render %s", name)
	}

	log.Infof("figure %s written to %s", name, path)
	return nil
}

func rendererProvider(format string) (chart.RendererProvider, error) {
	switch format {
	case FormatPNG:
		return chart.PNG, nil
	case FormatSVG:
		return chart.SVG, nil
	}
	return nil, errors.Errorf("unsupported figure format %q", format)
}

type NamedFigure struct {
	Name   string
	Figure Figure
}

// MemoryDisplay keeps the shown figures so that they can be rendered later.
type MemoryDisplay struct {
	Figures []NamedFigure
}

func (d *MemoryDisplay) Show(name string, fig Figure) error {
	d.Figures = append(d.Figures, NamedFigure{Name: name, Figure: fig})
	return nil
}

// Last returns the most recently shown figure, nil if none.
func (d *MemoryDisplay) Last() Figure {
	if len(d.Figures) == 0 {
		return nil
	}
	return d.Figures[len(d.Figures)-1].Figure
}
