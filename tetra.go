/*
 * tetra.go, part of gotetra.
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
	"fmt"

	v3 "github.com/cvera/gotetra/v3"
)

/**Note: Some functions here panic instead of returning errors. This is
 * because they are "fundamental" functions: if something goes wrong there,
 * the program is way-most likely wrong and should crash. The panics are
 * related to using a function on a nil object or accessing out-of-bounds
 * fields.**/

//Atom contains the per-atom data read from a coordinate file, except for the
//coordinates themselves, which live in a separate matrix.
type Atom struct {
	Name   string
	Id     int
	Molid  int
	Mass   float64
	Charge float64
	Symbol string
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	Newat.Name = A.Name
	Newat.Id = A.Id
	Newat.Molid = A.Molid
	Newat.Mass = A.Mass
	Newat.Charge = A.Charge
	Newat.Symbol = A.Symbol
	return Newat
}

//Atomer is the basic interface for a topology.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the Topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

/*****Topology type***/

//Topology contains information about a structure which is not expected to
//change in time (i.e. everything except for coordinates).
type Topology struct {
	Atoms  []*Atom
	charge int
}

//NewTopology makes a topology from the given atoms and total charge. It
//returns an error if the atom slice is nil. It doesn't check that the charge
//makes chemical sense.
func NewTopology(ats []*Atom, charge int) (*Topology, error) {
	if ats == nil {
		return nil, CError{string(ErrNilData), []string{"NewTopology"}}
	}
	top := new(Topology)
	top.Atoms = ats
	top.charge = charge
	return top, nil
}

//Charge gets the total charge of the topology.
func (T *Topology) Charge() int {
	return T.charge
}

//SetCharge sets the total charge of the topology to i.
func (T *Topology) SetCharge(i int) {
	T.charge = i
}

//Atom returns the Atom corresponding to the index i of the Atom slice in the
//Topology. Panics if out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.Atoms[i]
}

//SetAtom sets the (i+1)th Atom of the topology to at. Panics if out of range.
func (T *Topology) SetAtom(i int, at *Atom) {
	if i >= T.Len() {
		panic("Topology: Tried to set Atom out of bounds")
	}
	T.Atoms[i] = at
}

//CopyAtoms returns a deep copy of the atoms in the topology.
func (T *Topology) CopyAtoms() *Topology {
	Top := new(Topology)
	Top.Atoms = make([]*Atom, T.Len())
	for key, val := range T.Atoms {
		Top.Atoms[key] = val.Copy()
	}
	Top.charge = T.charge
	return Top
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

//Masses returns a slice with the masses of all atoms, or an error if they
//have not been assigned.
func (T *Topology) Masses() ([]float64, error) {
	mass := make([]float64, T.Len())
	for i := 0; i < T.Len(); i++ {
		thisatom := T.Atom(i)
		if thisatom.Mass == 0 {
			return nil, CError{fmt.Sprintf("Not all the masses have been obtained: %d %v", i, thisatom), []string{"Topology.Masses"}}
		}
		mass[i] = thisatom.Mass
	}
	return mass, nil
}

/**Type Molecule**/

//Molecule contains the full info for a structure in one or more states: the
//topology plus one coordinate matrix per state.
type Molecule struct {
	*Topology
	Coords []*v3.Matrix
}

//NewMolecule makes a molecule with the given topology and coordinates, and
//returns it. It returns an error if a nil slice is given, or if the number of
//coordinates in some frame doesn't match the number of atoms.
func NewMolecule(ats *Topology, coords []*v3.Matrix) (*Molecule, error) {
	if ats == nil || coords == nil {
		return nil, CError{string(ErrNilData), []string{"NewMolecule"}}
	}
	mol := new(Molecule)
	mol.Topology = ats
	mol.Coords = coords
	if err := mol.Corrupted(); err != nil {
		return nil, errDecorate(err, "NewMolecule")
	}
	return mol, nil
}

//Copy returns a copy of the molecule including coordinates.
func (M *Molecule) Copy() *Molecule {
	if err := M.Corrupted(); err != nil {
		panic(err.Error())
	}
	mol := new(Molecule)
	mol.Topology = M.CopyAtoms()
	mol.Coords = make([]*v3.Matrix, 0, len(M.Coords))
	for _, val := range M.Coords {
		frame := v3.Zeros(val.NVecs())
		frame.Copy(val)
		mol.Coords = append(mol.Coords, frame)
	}
	return mol
}

//Coord returns a view of the coords for the atom atom in the frame frame.
//Panics if frame or coords are out of range.
func (M *Molecule) Coord(atom, frame int) *v3.Matrix {
	if frame >= len(M.Coords) {
		panic(fmt.Sprintf("Frame requested (%d) out of range", frame))
	}
	r := M.Coords[frame].NVecs()
	if atom >= r {
		panic(fmt.Sprintf("Requested coordinate (%d) out of bounds (%d)", atom, r))
	}
	return M.Coords[frame].VecView(atom)
}

//Corrupted checks whether the molecule is corrupted, i.e. the coordinates
//don't match the number of atoms.
func (M *Molecule) Corrupted() error {
	for i := range M.Coords {
		if M.Len() != M.Coords[i].NVecs() {
			return CError{fmt.Sprintf("Inconsistent coordinates/atoms in frame %d: Atoms %d, coords: %d", i, M.Len(), M.Coords[i].NVecs()), []string{"Molecule.Corrupted"}}
		}
	}
	return nil
}

//LenFrames returns the number of frames in the molecule.
func (M *Molecule) LenFrames() int {
	return len(M.Coords)
}
