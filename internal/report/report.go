// Package report owns the append-streamed CSV output files spec.md §6
// specifies, plus params.txt. Each writer follows the header-on-first-
// write pattern from xtaci-kcptun/std/snmp.go's SnmpLogger: open once
// for append, write the header only if the file is new, then write one
// row per call.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/trialitycluster/internal/observable"
	"github.com/pkg/errors"
)

// Writer owns the five observable CSV files for one run's outdir.
type Writer struct {
	accept     *csvFile
	maxCluster *csvFile
	aveCluster *csvFile
	numBonds   *csvFile
	action     *csvFile
}

// Open creates (or appends to) the five CSV files under outdir,
// writing each header exactly once. Complexity: O(1) syscalls per file.
func Open(outdir string) (*Writer, error) {
	if err := os.MkdirAll(outdir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "report: creating outdir %q", outdir)
	}

	accept, err := newCSVFile(outdir, "accept.csv", []string{"sweep", "accept_mvB", "accept_mvQ", "accept_bond"})
	if err != nil {
		return nil, err
	}
	maxCluster, err := newCSVFile(outdir, "maxcluster.csv", []string{"sweep", "max_tot", "max_rel"})
	if err != nil {
		return nil, err
	}
	aveCluster, err := newCSVFile(outdir, "avecluster.csv", []string{"sweep", "ave_tot", "ave_rel"})
	if err != nil {
		return nil, err
	}
	numBonds, err := newCSVFile(outdir, "numbonds.csv", []string{"sweep", "NB_tot", "NB_rel"})
	if err != nil {
		return nil, err
	}
	action, err := newCSVFile(outdir, "action.csv", []string{"sweep", "action_tot", "action_rel"})
	if err != nil {
		return nil, err
	}

	return &Writer{
		accept:     accept,
		maxCluster: maxCluster,
		aveCluster: aveCluster,
		numBonds:   numBonds,
		action:     action,
	}, nil
}

// WriteInitial records the sweep-0 row (initial state, before any
// moves) to maxcluster.csv, avecluster.csv, numbonds.csv and
// action.csv — spec.md §6: "a sweep-0 row records the initial state
// before any moves (where acceptance rows start from sweep 1)."
func (w *Writer) WriteInitial(row observable.Row) error {
	if err := w.maxCluster.write(strconv.Itoa(row.Sweep), f(row.MaxClusterTot), f(row.MaxClusterRel)); err != nil {
		return err
	}
	if err := w.aveCluster.write(strconv.Itoa(row.Sweep), f(row.AveClusterTot), f(row.AveClusterRel)); err != nil {
		return err
	}
	if err := w.numBonds.write(strconv.Itoa(row.Sweep), strconv.Itoa(row.NumBondTot), f(row.NumBondRel)); err != nil {
		return err
	}
	if err := w.action.write(strconv.Itoa(row.Sweep), f(row.ActionTot), f(row.ActionRel)); err != nil {
		return err
	}

	return nil
}

// WriteSweep records one sweep's full row, including acceptance rates.
func (w *Writer) WriteSweep(row observable.Row) error {
	if err := w.accept.write(strconv.Itoa(row.Sweep), f(row.AcceptBaryonHop), f(row.AcceptQuarkHop), f(row.AcceptBondToggle)); err != nil {
		return err
	}

	return w.WriteInitial(row)
}

// Close flushes and closes all five files.
func (w *Writer) Close() error {
	for _, c := range []*csvFile{w.accept, w.maxCluster, w.aveCluster, w.numBonds, w.action} {
		if err := c.close(); err != nil {
			return err
		}
	}

	return nil
}

// WriteParams writes params.txt: the invocation arguments and final
// runtime, one per line.
func WriteParams(outdir string, args []string, runtime string) error {
	path := filepath.Join(outdir, "params.txt")
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "report: creating %q", path)
	}
	defer f.Close()

	for _, a := range args {
		if _, err := fmt.Fprintln(f, a); err != nil {
			return errors.Wrapf(err, "report: writing %q", path)
		}
	}
	if _, err := fmt.Fprintln(f, runtime); err != nil {
		return errors.Wrapf(err, "report: writing %q", path)
	}

	return nil
}

// csvFile wraps one append-streamed CSV output.
type csvFile struct {
	f *os.File
	w *csv.Writer
}

func newCSVFile(outdir, name string, header []string) (*csvFile, error) {
	path := filepath.Join(outdir, name)
	stat, statErr := os.Stat(path)
	isNew := statErr != nil || stat.Size() == 0

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "report: opening %q", path)
	}

	w := csv.NewWriter(f)
	if isNew {
		if err := w.Write(header); err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "report: writing header to %q", path)
		}
		w.Flush()
	}

	return &csvFile{f: f, w: w}, nil
}

func (c *csvFile) write(fields ...string) error {
	if err := c.w.Write(fields); err != nil {
		return errors.Wrapf(err, "report: writing row to %q", c.f.Name())
	}
	c.w.Flush()

	return errors.Wrapf(c.w.Error(), "report: flushing %q", c.f.Name())
}

func (c *csvFile) close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		c.f.Close()
		return errors.Wrapf(err, "report: flushing %q on close", c.f.Name())
	}

	return errors.Wrapf(c.f.Close(), "report: closing %q", c.f.Name())
}

// f formats a float64 with enough precision to be stable across runs
// while staying human-readable in the CSV.
func f(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
