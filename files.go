/*
 * files.go, part of gotetra.
 *
 * Copyright 2021 Camila Vera <cvera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package tetra

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"

	v3 "github.com/cvera/gotetra/v3"
)

//A map for assigning mass to elements.
//Note that just common "bio-elements" plus the usual substituent
//heteroatoms are present.
var symbolMass = map[string]float64{
	"H":  1.008,
	"B":  10.81,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Na": 22.990,
	"Mg": 24.305,
	"Si": 28.085,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.098,
	"Ca": 40.078,
	"Br": 79.904,
	"I":  126.904,
}

//xyzReader returns a reader for the (possibly compressed) file given, plus
//whatever must be closed after use. Compression is decided by extension,
//.gz and .zst are understood.
func xyzReader(xyzfile *os.File, name string) (io.Reader, io.Closer, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		gz, err := gzip.NewReader(xyzfile)
		if err != nil {
			return nil, nil, CError{err.Error(), []string{"gzip.NewReader", "xyzReader"}}
		}
		return gz, gz, nil
	case ".zst":
		zr, err := zstd.NewReader(xyzfile)
		if err != nil {
			return nil, nil, CError{err.Error(), []string{"zstd.NewReader", "xyzReader"}}
		}
		return zr, zr.IOReadCloser(), nil
	}
	return xyzfile, nil, nil
}

//XYZRead reads an xyz file and returns a Molecule with one frame of
//coordinates, and an error or nil. Files ending in .gz or .zst are
//decompressed on the fly.
func XYZRead(xyzname string) (*Molecule, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, CError{err.Error(), []string{"os.Open", "XYZRead"}}
	}
	defer xyzfile.Close()
	r, closer, err := xyzReader(xyzfile, xyzname)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	if closer != nil {
		defer closer.Close()
	}
	mol, err := xyzBufIORead(bufio.NewReader(r), xyzname)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	return mol, nil
}

//xyzBufIORead reads an xyz-formatted structure from xyz. The first line must
//contain the number of atoms, the second is a free-form comment which is
//skipped.
func xyzBufIORead(xyz *bufio.Reader, xyzname string) (*Molecule, error) {
	line, err := xyz.ReadString('\n')
	if err != nil {
		return nil, CError{fmt.Sprintf("Ill formatted XYZ file %s: %s", xyzname, err.Error()), []string{"xyzBufIORead"}}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, CError{fmt.Sprintf("Ill formatted XYZ file %s: wrong atom count line", xyzname), []string{"xyzBufIORead"}}
	}
	if natoms <= 0 {
		return nil, CError{fmt.Sprintf("XYZ file %s declares %d atoms", xyzname, natoms), []string{"xyzBufIORead"}}
	}
	if _, err = xyz.ReadString('\n'); err != nil {
		return nil, CError{fmt.Sprintf("XYZ file %s ends after the atom count line", xyzname), []string{"xyzBufIORead"}}
	}
	atoms := make([]*Atom, natoms)
	coords := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err = xyz.ReadString('\n')
		if err != nil && !(err == io.EOF && line != "") {
			return nil, CError{fmt.Sprintf("Line %d of file %s missing", i, xyzname), []string{"xyzBufIORead"}}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, CError{fmt.Sprintf("Line %d of file %s ill formed", i, xyzname), []string{"xyzBufIORead"}}
		}
		atoms[i] = new(Atom)
		atoms[i].Symbol = fields[0]
		atoms[i].Name = fields[0]
		atoms[i].Id = i + 1
		atoms[i].Mass = symbolMass[atoms[i].Symbol]
		for j := 0; j < 3; j++ {
			coords[i*3+j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, CError{fmt.Sprintf("Line %d of file %s: %s", i, xyzname, err.Error()), []string{"xyzBufIORead"}}
			}
		}
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "xyzBufIORead")
	}
	top, err := NewTopology(atoms, 0)
	if err != nil {
		return nil, errDecorate(err, "xyzBufIORead")
	}
	return NewMolecule(top, []*v3.Matrix{mcoords})
}

//XYZWrite writes the given coordinates and atoms in XYZ format to a file
//named xyzname, which will be created for that. If the file exists it will
//be overwritten. Names ending in .gz or .zst produce compressed files. The
//comment line of the header is left empty and no blank line is appended
//after the last record.
func XYZWrite(xyzname string, coords *v3.Matrix, mol Atomer) error {
	if coords == nil || mol == nil {
		return CError{string(ErrNilData), []string{"XYZWrite"}}
	}
	if mol.Len() != coords.NVecs() {
		return CError{fmt.Sprintf("Inconsistent coordinates(%d)/atoms(%d)", coords.NVecs(), mol.Len()), []string{"XYZWrite"}}
	}
	out, err := os.Create(xyzname)
	if err != nil {
		return CError{err.Error(), []string{"os.Create", "XYZWrite"}}
	}
	defer out.Close()
	var w io.Writer = out
	switch strings.ToLower(filepath.Ext(xyzname)) {
	case ".gz":
		gz := gzip.NewWriter(out)
		defer gz.Close()
		w = gz
	case ".zst":
		zw, err := zstd.NewWriter(out)
		if err != nil {
			return CError{err.Error(), []string{"zstd.NewWriter", "XYZWrite"}}
		}
		defer zw.Close()
		w = zw
	}
	if _, err := fmt.Fprintf(w, "%-4d\n\n", mol.Len()); err != nil {
		return CError{err.Error(), []string{"XYZWrite"}}
	}
	for i := 0; i < mol.Len(); i++ {
		terminator := "\n"
		if i == mol.Len()-1 {
			terminator = ""
		}
		_, err = fmt.Fprintf(w, "%-2s  %12.6f%12.6f%12.6f%s", mol.Atom(i).Symbol, coords.At(i, 0), coords.At(i, 1), coords.At(i, 2), terminator)
		if err != nil {
			return CError{err.Error(), []string{"XYZWrite"}}
		}
	}
	return nil
}
