// Package table assembles crude-oil property tables over a pressure range
// and moves them through CSV, the format PVT studies are exchanged in.
package table

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"

	"pvtprops"
	"pvtprops/oil"
)

// Row is one pressure state of a PVT table.
type Row struct {
	Pressure        float64 `csv:"pressure_psia"`
	GasSolubility   float64 `csv:"rs_scf_stb"`
	FVF             float64 `csv:"bo_bbl_stb"`
	Compressibility float64 `csv:"co_1_psi"`
	Density         float64 `csv:"rho_lb_ft3"`
	Viscosity       float64 `csv:"mu_cp"`
	Tension         float64 `csv:"sigma_dyne_cm"`
}

/*
PressureRange spans n evenly spaced pressures from lo to hi inclusive.

    Args:
        lo, hi: range ends, psia
        n: number of points, at least 2

    Returns:
        the pressure series, or ErrDomain for a degenerate range
*/
func PressureRange(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: pressure range needs at least 2 points, got %d", pvtprops.ErrDomain, n)
	}
	if !(lo > 0) || hi < lo {
		return nil, fmt.Errorf("%w: pressure range %g..%g psia", pvtprops.ErrDomain, lo, hi)
	}
	return floats.Span(make([]float64, n), lo, hi), nil
}

// Build evaluates every property of the bound phase over a pressure series
// and assembles the rows in series order.
func Build(ph oil.Phase, press []float64) ([]Row, error) {
	rs, err := ph.GasSolubility(press)
	if err != nil {
		return nil, err
	}
	bo, err := ph.FVF(press)
	if err != nil {
		return nil, err
	}
	co, err := ph.Compressibility(press)
	if err != nil {
		return nil, err
	}
	rho, err := ph.Density(press)
	if err != nil {
		return nil, err
	}
	mu, err := ph.Viscosity(press)
	if err != nil {
		return nil, err
	}
	sigma := ph.InterfacialTension(press)

	rows := make([]Row, len(press))
	for i := range press {
		rows[i] = Row{
			Pressure:        press[i],
			GasSolubility:   rs[i],
			FVF:             bo[i],
			Compressibility: co[i],
			Density:         rho[i],
			Viscosity:       mu[i],
			Tension:         sigma[i],
		}
	}
	return rows, nil
}

// Write renders a table as CSV with a header row.
func Write(w io.Writer, rows []Row) error {
	return gocsv.Marshal(&rows, w)
}

// Read parses a CSV table produced by Write.
func Read(r io.Reader) ([]Row, error) {
	var rows []Row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// WriteFile renders a table to a CSV file.
func WriteFile(path string, rows []Row) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return gocsv.MarshalFile(&rows, file)
}

// ReadFile parses a CSV table from a file.
func ReadFile(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var rows []Row
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
