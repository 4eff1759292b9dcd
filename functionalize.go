/*
 * functionalize.go, part of gotetra.
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

//The tetrahedral construction: given the central atom of a bond and the atom
//bonded to it, build the equilateral triangle of substituent positions that
//completes an sp3-like arrangement around the central atom, opposite to the
//bonded atom.

package tetra

import (
	"fmt"
	"math"

	v3 "github.com/cvera/gotetra/v3"
)

//tetraEdge is the ratio between the edge of a regular tetrahedron and its
//circumradius (the distance from the center to each vertex).
var tetraEdge = 2.0 * math.Sqrt(2.0/3.0)

//Template returns the canonical equilateral triangle: unit-edge, centered at
//the origin, contained in the plane with normal (0,0,1). Each call returns a
//fresh matrix, so callers can scale it freely and concurrent uses don't
//share state.
func Template() *v3.Matrix {
	t, _ := v3.NewMatrix([]float64{ //hardcoded, doesn't fail
		0, 1 / math.Sqrt(3.0), 0,
		-0.5, -0.5 / math.Sqrt(3.0), 0,
		0.5, -0.5 / math.Sqrt(3.0), 0})
	return t
}

//Centroid computes the centroid of the substituent triangle for the bond
//between central and bonded: with L the bond length and u the unit vector
//from bonded towards central, the triangle edge is set to edge = L*2*sqrt(2/3)
//(the edge of a regular tetrahedron with circumradius L) and the centroid is
//placed at central + (edge/3)*u, on the side of central opposite to bonded.
//It returns the centroid, the canonical triangle scaled to that edge, and u.
//It fails with a degenerate-bond error if both atoms coincide.
func Centroid(central, bonded *v3.Matrix) (*v3.Matrix, *v3.Matrix, *v3.Matrix, error) {
	if central == nil || bonded == nil {
		return nil, nil, nil, CError{string(ErrNilData), []string{"Centroid"}}
	}
	b := v3.Zeros(1)
	b.Sub(central, bonded)
	length := b.Norm(2)
	if length <= appzero {
		return nil, nil, nil, CError{string(ErrDegenerateBond), []string{"Centroid"}}
	}
	unit := v3.Zeros(1)
	unit.Unit(b)
	edge := length * tetraEdge //edge of a tetrahedron with circumradius = length
	scaled := Template()
	scaled.Scale(edge, scaled.Dense)
	centroid := v3.Zeros(1)
	centroid.Scale(edge/3.0, unit)
	centroid.Add(centroid.Dense, central)
	return centroid, scaled, unit, nil
}

//PlaceSubstituents rotates the scaled triangle template so that its plane
//normal aligns with the unit bond direction, and translates it to the given
//centroid. It returns a 3x3 matrix whose rows are the three final substituent
//positions, in the (fixed, geometrically meaningless) order of the template
//vertices. On error no coordinates are returned: the three positions are
//produced atomically or not at all.
func PlaceSubstituents(centroid, direction, scaled *v3.Matrix) (*v3.Matrix, error) {
	rotation, err := RotatorToNewNormal(direction)
	if err != nil {
		return nil, errDecorate(err, "PlaceSubstituents")
	}
	subs := v3.Zeros(scaled.NVecs())
	subs.Mul(scaled, rotation.T()) //row vectors, so the operator goes transposed on the right
	subs.AddVec(subs, centroid)
	return subs, nil
}

//Functionalize builds the 5-atom structure that results from completing the
//tetrahedral (sp3) arrangement around the atom with index central in the
//given frame of mol, taking the atom with index bonded as the existing
//reference bond.
//The three new atoms get the given labels (element symbols) in template
//order. The returned molecule contains, in order: the bonded atom, the
//central atom and the three substituents. mol is never modified.
func Functionalize(mol *Molecule, frame, central, bonded int, labels []string) (*Molecule, error) {
	if mol == nil {
		return nil, CError{string(ErrNilData), []string{"Functionalize"}}
	}
	if frame < 0 || frame >= mol.LenFrames() {
		return nil, CError{fmt.Sprintf("Frame requested (%d) out of range", frame), []string{"Functionalize"}}
	}
	if central == bonded || central < 0 || bonded < 0 || central >= mol.Len() || bonded >= mol.Len() {
		return nil, CError{fmt.Sprintf("Invalid atom indexes: central %d, bonded %d", central, bonded), []string{"Functionalize"}}
	}
	if len(labels) != 3 {
		return nil, CError{fmt.Sprintf("Need 3 substituent labels, got %d", len(labels)), []string{"Functionalize"}}
	}
	centralxyz := mol.Coord(central, frame)
	bondedxyz := mol.Coord(bonded, frame)
	centroid, scaled, unit, err := Centroid(centralxyz, bondedxyz)
	if err != nil {
		return nil, errDecorate(err, "Functionalize")
	}
	subs, err := PlaceSubstituents(centroid, unit, scaled)
	if err != nil {
		return nil, errDecorate(err, "Functionalize")
	}
	atoms := make([]*Atom, 5)
	atoms[0] = mol.Atom(bonded).Copy()
	atoms[1] = mol.Atom(central).Copy()
	for i, label := range labels {
		atoms[i+2] = &Atom{Name: label, Id: i + 3, Symbol: label, Mass: symbolMass[label]}
	}
	coords := v3.Zeros(5)
	coords.SetMatrix(0, 0, bondedxyz)
	coords.SetMatrix(1, 0, centralxyz)
	coords.SetMatrix(2, 0, subs)
	top, err := NewTopology(atoms, 0)
	if err != nil {
		return nil, errDecorate(err, "Functionalize")
	}
	return NewMolecule(top, []*v3.Matrix{coords})
}
