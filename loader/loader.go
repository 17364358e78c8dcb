// Package loader reads the tab-delimited inputs of the pipeline: the
// headerless binary peptide×protein matrix, the row/column identifier lists
// (one per line, matching matrix order), and the transcriptome evidence
// files (expressed-transcript list and the two-column protein→transcript
// map). It performs I/O and parsing only; all structural validation lives
// in incidence.New.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/laurafancello/CCs4prot/incidence"
	"github.com/laurafancello/CCs4prot/transcriptome"
)

// Sentinel errors for file parsing. Open/read failures surface as wrapped
// *os.PathError values instead.
var (
	// ErrBadCell is returned when a matrix cell is neither "0" nor "1".
	ErrBadCell = errors.New("loader: matrix cell is not 0 or 1")

	// ErrBadMapping is returned when a protein→transcript line does not hold
	// exactly two tab-separated fields.
	ErrBadMapping = errors.New("loader: malformed protein-transcript mapping line")
)

// maxLineBytes accommodates matrix rows spanning tens of thousands of
// proteins (two bytes per cell).
const maxLineBytes = 1 << 20

// Matrix loads the binary matrix plus its identifier lists and assembles the
// validated incidence matrix. Dimension or identifier violations propagate
// from incidence.New (ErrDimensionMismatch, ErrDuplicateID).
func Matrix(matrixPath, peptidePath, proteinPath string) (*incidence.Matrix, error) {
	peps, err := IDList(peptidePath)
	if err != nil {
		return nil, err
	}
	prots, err := IDList(proteinPath)
	if err != nil {
		return nil, err
	}

	cells, err := readCells(matrixPath)
	if err != nil {
		return nil, err
	}

	peptides := make([]incidence.PeptideID, len(peps))
	for i, p := range peps {
		peptides[i] = incidence.PeptideID(p)
	}
	proteins := make([]incidence.ProteinID, len(prots))
	for j, p := range prots {
		proteins[j] = incidence.ProteinID(p)
	}
	return incidence.New(peptides, proteins, cells)
}

// IDList loads one identifier per line, in file order, skipping blank lines.
func IDList(path string) ([]string, error) {
	var out []string
	err := scanLines(path, func(_ int, line string) error {
		out = append(out, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExpressedTranscripts loads the expressed-transcript evidence as a set.
func ExpressedTranscripts(path string) (map[transcriptome.TranscriptID]struct{}, error) {
	out := make(map[transcriptome.TranscriptID]struct{})
	err := scanLines(path, func(_ int, line string) error {
		out[transcriptome.TranscriptID(line)] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProteinTranscriptMap loads the two-column tab-delimited protein→transcript
// map. A protein repeated across lines keeps its last mapping.
func ProteinTranscriptMap(path string) (map[incidence.ProteinID]transcriptome.TranscriptID, error) {
	out := make(map[incidence.ProteinID]transcriptome.TranscriptID)
	err := scanLines(path, func(n int, line string) error {
		fields := strings.Split(line, "\t")
		if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
			return fmt.Errorf("%w: %s:%d", ErrBadMapping, path, n)
		}
		out[incidence.ProteinID(fields[0])] = transcriptome.TranscriptID(fields[1])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// readCells parses the headerless tab-delimited binary matrix.
func readCells(path string) ([][]int, error) {
	var cells [][]int
	err := scanLines(path, func(n int, line string) error {
		fields := strings.Split(line, "\t")
		row := make([]int, len(fields))
		for j, f := range fields {
			switch strings.TrimSpace(f) {
			case "0":
				row[j] = 0
			case "1":
				row[j] = 1
			default:
				return fmt.Errorf("%w: %s:%d column %d (%q)", ErrBadCell, path, n, j+1, f)
			}
		}
		cells = append(cells, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cells, nil
}

// scanLines streams non-blank lines to fn with 1-based line numbers.
// Carriage returns are stripped so CRLF inputs parse like LF ones.
func scanLines(path string, fn func(n int, line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err = fn(n, line); err != nil {
			return err
		}
	}
	if err = sc.Err(); err != nil {
		return fmt.Errorf("loader: reading %s: %w", path, err)
	}
	return nil
}
