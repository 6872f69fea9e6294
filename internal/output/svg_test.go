package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestWriteSVG_Structure(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSVG(&buf, chess.NewInitialBoard(), Options{SquareSize: 40})
	testutil.AssertNoError(t, err)

	out := buf.String()
	testutil.AssertContains(t, out, "<svg")
	testutil.AssertContains(t, out, "</svg>")
	testutil.AssertEqual(t, strings.Count(out, "<rect"), 64)
	testutil.AssertEqual(t, strings.Count(out, "fill:"+LightFill), 32)
	testutil.AssertEqual(t, strings.Count(out, "fill:"+DarkFill), 32)
	testutil.AssertContains(t, out, "♔")
	testutil.AssertContains(t, out, "♟")
	testutil.AssertContains(t, out, `width="320"`)
}

func TestWriteSVG_Highlights(t *testing.T) {
	// Black king on e8 in check from the queen on e1.
	board := testutil.MustBoard(t, "4k3/8/8/8/8/8/8/3KQ3 b")
	sel := testutil.Sq(t, "e8")

	tests := []struct {
		name      string
		opts      Options
		wantCheck bool
		wantSel   bool
	}{
		{"check highlighted", Options{HighlightChecks: true}, true, false},
		{"check highlighting off", Options{}, false, false},
		{"selection", Options{Selection: &sel, Targets: []chess.Square{testutil.Sq(t, "d7")}}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			testutil.AssertNoError(t, WriteSVG(&buf, board, tt.opts))
			out := buf.String()

			testutil.AssertEqual(t, strings.Contains(out, CheckFill), tt.wantCheck)
			testutil.AssertEqual(t, strings.Contains(out, SelectionFill), tt.wantSel)
			testutil.AssertEqual(t, strings.Contains(out, TargetFill), tt.wantSel)
		})
	}
}

func TestWriteSVG_Coordinates(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteSVG(&buf, chess.NewBoard(), Options{SquareSize: 40, ShowCoordinates: true}))

	// 8 squares of 40px plus a 20px margin each side.
	testutil.AssertContains(t, buf.String(), `width="360"`)
	testutil.AssertContains(t, buf.String(), `id="coordinates"`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSVG_ReportsWriteError(t *testing.T) {
	err := WriteSVG(failingWriter{}, chess.NewInitialBoard(), Options{})
	testutil.AssertNotNil(t, err)
}
