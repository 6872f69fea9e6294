package output

import (
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// PositionWriter is the interface for writing positions to output.
// Different implementations handle different formats (text, JSON, SVG).
type PositionWriter interface {
	// WritePosition writes the current position of g.
	WritePosition(g *game.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	Close() error
}

// NewWriter returns the writer for cfg.Output.Format, writing to w.
func NewWriter(w io.Writer, cfg *config.Config) PositionWriter {
	format := config.Text
	if cfg != nil && cfg.Output != nil {
		format = cfg.Output.Format
	}
	switch format {
	case config.JSON:
		return NewJSONWriter(w)
	case config.SVG:
		return NewSVGWriter(w, cfg)
	default:
		return NewTextWriter(w, cfg)
	}
}

// TextWriter writes positions as text diagrams.
type TextWriter struct {
	w    io.Writer
	opts Options
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, opts: OptionsFromConfig(cfg)}
}

// WritePosition writes a diagram of g's board followed by a status line.
func (tw *TextWriter) WritePosition(g *game.Game) error {
	board := g.Board()
	if err := WriteText(tw.w, board, tw.opts); err != nil {
		return err
	}
	_, err := io.WriteString(tw.w, statusLine(g)+"\n")
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

func statusLine(g *game.Game) string {
	if out := g.Outcome(); out != nil {
		return out.Message()
	}
	line := g.SideToMove().String() + " to move"
	if st := g.Status(); st != engine.Ongoing {
		line += " (" + st.String() + ")"
	}
	return line
}

// JSONWriter writes each position as a JSON snapshot as soon as it is
// given one.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WritePosition writes a snapshot of g.
func (jw *JSONWriter) WritePosition(g *game.Game) error {
	return WriteJSON(jw.w, NewSnapshot(g))
}

// Flush is a no-op; snapshots are written immediately.
func (jw *JSONWriter) Flush() error {
	return nil
}

// Close closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return nil
}

// SVGWriter writes each position as a standalone SVG document.
type SVGWriter struct {
	w    io.Writer
	opts Options
}

// NewSVGWriter creates a new SVG writer.
func NewSVGWriter(w io.Writer, cfg *config.Config) *SVGWriter {
	return &SVGWriter{w: w, opts: OptionsFromConfig(cfg)}
}

// WritePosition draws g's board, marking the pending selection.
func (sw *SVGWriter) WritePosition(g *game.Game) error {
	return WriteSVG(sw.w, g.Board(), withSelection(sw.opts, g))
}

// Flush is a no-op for SVG output.
func (sw *SVGWriter) Flush() error {
	return nil
}

// Close closes the SVG writer.
func (sw *SVGWriter) Close() error {
	return nil
}
