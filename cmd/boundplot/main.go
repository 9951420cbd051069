// Package main provides a bounding-region inspection tool for 2D point sets.
// It reads points from a CSV file (x,y per row), folds them into an
// axis-aligned bounding region, logs the corners and diagonal, and
// optionally renders the points and region corners to a standalone HTML
// chart.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/banshee-data/bounding"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Config holds configuration for the bounds inspection run.
type Config struct {
	InputFile  string
	OutputHTML string
	Title      string
	SkipHeader bool
}

func main() {
	cfg := parseFlags()

	points, err := readPoints(cfg.InputFile, cfg.SkipHeader)
	if err != nil {
		log.Fatalf("failed to read points: %v", err)
	}
	if len(points) == 0 {
		log.Fatal("no points in input")
	}

	// Seed with NaN so the first point displaces the sentinel corners.
	region := bounding.FromValue[bounding.Vec2[float64]](math.NaN())
	for _, p := range points {
		region.Expand(p)
	}

	d := region.Diagonal()
	log.Printf("points: %d", len(points))
	log.Printf("lower:    (%g, %g)", region.Lower.X(), region.Lower.Y())
	log.Printf("upper:    (%g, %g)", region.Upper.X(), region.Upper.Y())
	log.Printf("diagonal: (%g, %g)", d.X(), d.Y())

	if cfg.OutputHTML != "" {
		if err := writeChart(cfg, points, region); err != nil {
			log.Fatalf("failed to render chart: %v", err)
		}
		log.Printf("chart written to %s", cfg.OutputHTML)
	}
}

func parseFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.InputFile, "input", "", "CSV file of x,y points (required)")
	flag.StringVar(&cfg.OutputHTML, "output", "", "HTML chart output path (optional)")
	flag.StringVar(&cfg.Title, "title", "Point Bounds", "chart title")
	flag.BoolVar(&cfg.SkipHeader, "skip-header", false, "skip the first CSV row")
	flag.Parse()

	if cfg.InputFile == "" {
		flag.Usage()
		os.Exit(2)
	}
	return cfg
}

// readPoints parses x,y pairs from the CSV file at path.
func readPoints(path string, skipHeader bool) ([]bounding.Vec2[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var points []bounding.Vec2[float64]
	row := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}
		row++
		if skipHeader && row == 1 {
			continue
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("row %d: expected at least 2 fields, got %d", row, len(record))
		}

		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad x value %q: %w", row, record[0], err)
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad y value %q: %w", row, record[1], err)
		}
		points = append(points, bounding.Vec2[float64]{x, y})
	}
	return points, nil
}

// writeChart renders the points and the four region corners as a scatter
// chart with axis ranges padded slightly beyond the region.
func writeChart(cfg Config, points []bounding.Vec2[float64], region bounding.Rect[float64]) error {
	data := make([]opts.ScatterData, 0, len(points))
	for _, p := range points {
		data = append(data, opts.ScatterData{Value: []interface{}{p.X(), p.Y()}})
	}

	lo, up := region.Lower, region.Upper
	corners := []opts.ScatterData{
		{Value: []interface{}{lo.X(), lo.Y()}},
		{Value: []interface{}{up.X(), lo.Y()}},
		{Value: []interface{}{up.X(), up.Y()}},
		{Value: []interface{}{lo.X(), up.Y()}},
	}

	// Add a small padding so corner points are visible at the edges
	d := region.Diagonal()
	padX := math.Abs(d.X()) * 0.05
	padY := math.Abs(d.Y()) * 0.05
	if padX == 0 {
		padX = 1.0
	}
	if padY == 0 {
		padY = 1.0
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: cfg.Title, Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: cfg.Title, Subtitle: fmt.Sprintf("points=%d", len(points))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: lo.X() - padX, Max: up.X() + padX, Name: "X"}),
		charts.WithYAxisOpts(opts.YAxis{Min: lo.Y() - padY, Max: up.Y() + padY, Name: "Y"}),
	)

	scatter.AddSeries("points", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))
	scatter.AddSeries("bounds", corners, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}))

	f, err := os.Create(cfg.OutputHTML)
	if err != nil {
		return fmt.Errorf("create %s: %w", cfg.OutputHTML, err)
	}
	defer f.Close()

	if err := scatter.Render(f); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
