/*
 * functionalize_test.go, part of gotetra.
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
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	v3 "github.com/cvera/gotetra/v3"
)

const tol = 1e-9

func vec(Te *testing.T, x, y, z float64) *v3.Matrix {
	v, err := v3.NewMatrix([]float64{x, y, z})
	if err != nil {
		Te.Fatal(err)
	}
	return v
}

//TestTemplate checks that the canonical triangle is equilateral with unit
//edge and centered exactly at the origin.
func TestTemplate(Te *testing.T) {
	t := Template()
	if t.NVecs() != 3 {
		Te.Fatalf("Template has %d vertices", t.NVecs())
	}
	for i := 0; i < 3; i++ {
		d := Distance(t.VecView(i), t.VecView((i+1)%3))
		if math.Abs(d-1.0) > tol {
			Te.Errorf("Template edge %d-%d has length %f", i, (i+1)%3, d)
		}
	}
	for j := 0; j < 3; j++ {
		sum := t.At(0, j) + t.At(1, j) + t.At(2, j)
		if math.Abs(sum) > tol {
			Te.Errorf("Template centroid not at origin, coordinate %d sums %g", j, sum)
		}
	}
}

//TestCentroid reproduces the reference scenario: central at the origin,
//bonded at (1,0,0). The substituent-triangle centroid must sit at
//edge/3 = 2*sqrt(2/3)/3 from the central atom, opposite to the bonded atom.
func TestCentroid(Te *testing.T) {
	central := vec(Te, 0, 0, 0)
	bonded := vec(Te, 1, 0, 0)
	centroid, scaled, unit, err := Centroid(central, bonded)
	if err != nil {
		Te.Fatal(err)
	}
	edge := 2.0 * math.Sqrt(2.0/3.0)
	if d := Distance(central, centroid); math.Abs(d-edge/3) > tol {
		Te.Errorf("centroid at distance %f from the central atom, want %f", d, edge/3)
	}
	//centroid on the bond axis, away from the bonded atom
	if math.Abs(centroid.At(0, 0)+edge/3) > tol || math.Abs(centroid.At(0, 1)) > tol || math.Abs(centroid.At(0, 2)) > tol {
		Te.Errorf("centroid misplaced: %v", centroid)
	}
	if math.Abs(unit.At(0, 0)+1) > tol {
		Te.Errorf("wrong bond direction: %v", unit)
	}
	//the scaled template must keep its shape, with the new edge
	for i := 0; i < 3; i++ {
		d := Distance(scaled.VecView(i), scaled.VecView((i+1)%3))
		if math.Abs(d-edge) > tol {
			Te.Errorf("scaled template edge %d has length %f, want %f", i, d, edge)
		}
	}
}

//TestPlaceSubstituents checks the geometric invariants of the full
//construction for a bond not aligned with the reference normal.
func TestPlaceSubstituents(Te *testing.T) {
	central := vec(Te, 0, 0, 0)
	bonded := vec(Te, 1, 0, 0)
	centroid, scaled, unit, err := Centroid(central, bonded)
	if err != nil {
		Te.Fatal(err)
	}
	subs, err := PlaceSubstituents(centroid, unit, scaled)
	if err != nil {
		Te.Fatal(err)
	}
	edge := 2.0 * math.Sqrt(2.0/3.0)
	//substituents pairwise at the tetrahedral edge length
	for i := 0; i < 3; i++ {
		d := Distance(subs.VecView(i), subs.VecView((i+1)%3))
		if math.Abs(d-edge) > tol {
			Te.Errorf("substituents %d and %d at distance %f, want %f", i, (i+1)%3, d, edge)
		}
	}
	//all substituents at the same distance from the central atom
	d0 := Distance(central, subs.VecView(0))
	for i := 1; i < 3; i++ {
		if d := Distance(central, subs.VecView(i)); math.Abs(d-d0) > tol {
			Te.Errorf("substituent %d at distance %f from the central atom, substituent 0 at %f", i, d, d0)
		}
	}
	//the centroid of the substituents is the computed centroid
	for j := 0; j < 3; j++ {
		avg := (subs.At(0, j) + subs.At(1, j) + subs.At(2, j)) / 3.0
		if math.Abs(avg-centroid.At(0, j)) > tol {
			Te.Errorf("substituent centroid coordinate %d is %f, want %f", j, avg, centroid.At(0, j))
		}
	}
	//the substituent plane is normal to the bond
	for i := 0; i < 3; i++ {
		inplane := v3.Zeros(1)
		inplane.Sub(subs.VecView(i), centroid)
		if dot := inplane.Dot(unit); math.Abs(dot) > tol {
			Te.Errorf("substituent %d out of the base plane, projection %g", i, dot)
		}
	}
}

//TestRotator checks that the alignment operator is a proper rotation and
//does map the reference normal onto the bond direction.
func TestRotator(Te *testing.T) {
	for _, d := range [][3]float64{{-1, 0, 0}, {0, 1, 0}, {0.267261241912424, 0.534522483824849, 0.801783725737273}} {
		dir := vec(Te, d[0], d[1], d[2])
		dir.Unit(dir)
		R, err := RotatorToNewNormal(dir)
		if err != nil {
			Te.Fatal(err)
		}
		P := v3.Zeros(3)
		P.Mul(R, R.T())
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				want := 0.0
				if i == j {
					want = 1.0
				}
				if math.Abs(P.At(i, j)-want) > tol {
					Te.Errorf("R*Rt is not the identity for direction %v:%v", d, P)
				}
			}
		}
		if det := mat.Det(R.Dense); math.Abs(det-1) > tol {
			Te.Errorf("rotation for direction %v has determinant %f", d, det)
		}
		z := vec(Te, 0, 0, 1)
		rotated := v3.Zeros(1)
		rotated.Mul(z, R.T())
		if d := Distance(rotated, dir); d > tol {
			Te.Errorf("operator maps the normal to %v instead of %v", rotated, dir)
		}
	}
}

//TestRotationSingularity checks that the anti-parallel case fails with the
//dedicated error instead of producing NaNs: central at the origin and bonded
//at (0,0,1) give a bond direction of (0,0,-1).
func TestRotationSingularity(Te *testing.T) {
	central := vec(Te, 0, 0, 0)
	bonded := vec(Te, 0, 0, 1)
	centroid, scaled, unit, err := Centroid(central, bonded)
	if err != nil {
		Te.Fatal(err)
	}
	_, err = PlaceSubstituents(centroid, unit, scaled)
	if err == nil {
		Te.Fatal("anti-parallel bond direction did not fail")
	}
	if err.Error() != string(ErrRotationSingularity) {
		Te.Errorf("wrong error for the singular case: %v", err)
	}
}

//TestDegenerateBond checks that coinciding atoms are rejected.
func TestDegenerateBond(Te *testing.T) {
	p := vec(Te, 1.5, -2.0, 0.25)
	q := vec(Te, 1.5, -2.0, 0.25)
	_, _, _, err := Centroid(p, q)
	if err == nil {
		Te.Fatal("degenerate bond did not fail")
	}
	if err.Error() != string(ErrDegenerateBond) {
		Te.Errorf("wrong error for the degenerate case: %v", err)
	}
}

//TestFunctionalize runs the whole pipeline on the test structure and checks
//the composition and the ordering of the result, plus that two identical
//calls give identical coordinates.
func TestFunctionalize(Te *testing.T) {
	mol, err := XYZRead("test/CH3.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	five, err := Functionalize(mol, 0, 0, 1, []string{"N", "O", "F"})
	if err != nil {
		Te.Fatal(err)
	}
	if five.Len() != 5 || five.Coords[0].NVecs() != 5 {
		Te.Fatalf("functionalized structure has %d atoms", five.Len())
	}
	wantsymbols := []string{"H", "C", "N", "O", "F"}
	for i, s := range wantsymbols {
		if five.Atom(i).Symbol != s {
			Te.Errorf("atom %d is %s, want %s", i, five.Atom(i).Symbol, s)
		}
	}
	//first two records are the original bonded and central atoms
	if d := Distance(five.Coord(0, 0), mol.Coord(1, 0)); d > tol {
		Te.Errorf("bonded atom moved by %f", d)
	}
	if d := Distance(five.Coord(1, 0), mol.Coord(0, 0)); d > tol {
		Te.Errorf("central atom moved by %f", d)
	}
	//and the original molecule is untouched
	if mol.Len() != 4 {
		Te.Errorf("input molecule was modified")
	}
	again, err := Functionalize(mol, 0, 0, 1, []string{"N", "O", "F"})
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 3; j++ {
			if five.Coords[0].At(i, j) != again.Coords[0].At(i, j) {
				Te.Errorf("two identical calls disagree at %d,%d", i, j)
			}
		}
	}
	//degenerate requests
	if _, err := Functionalize(mol, 0, 2, 2, []string{"H", "H", "H"}); err == nil {
		Te.Error("coinciding indexes did not fail")
	}
	if _, err := Functionalize(mol, 0, 0, 1, []string{"H"}); err == nil {
		Te.Error("wrong number of labels did not fail")
	}
}

//TestAngle checks the angle helpers.
func TestAngle(Te *testing.T) {
	x := vec(Te, 1, 0, 0)
	y := vec(Te, 0, 2, 0)
	if a := Angle(x, y); math.Abs(a-math.Pi/2) > tol {
		Te.Errorf("angle between x and y is %f rad", a)
	}
	if a := AngleInDegrees(x, y); math.Abs(a-90) > 1e-6 {
		Te.Errorf("angle between x and y is %f degrees", a)
	}
	if a := Angle(x, x); a != 0 {
		Te.Errorf("angle between x and itself is %f", a)
	}
}
