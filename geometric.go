/*
 * geometric.go, part of gotetra.
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

	v3 "github.com/cvera/gotetra/v3"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Rad2Deg converts radians to degrees when multiplied by an angle.
const Rad2Deg = 57.29577951308232

//cross takes 2 vectors and returns a new vector with their cross product.
func cross(a, b *v3.Matrix) *v3.Matrix {
	c := v3.Zeros(1)
	c.Cross(a, b)
	return c
}

//Distance returns the Euclidean distance between the points a and b.
func Distance(a, b *v3.Matrix) float64 {
	d := v3.Zeros(1)
	d.Sub(a, b)
	return d.Norm(2)
}

//Angle takes 2 vectors and calculates the angle in radians between them.
//It does not check for correctness or return errors! A zero-length vector
//makes the result undefined, that is on the caller.
func Angle(v1, v2 *v3.Matrix) float64 {
	normproduct := v1.Norm(2) * v2.Norm(2)
	dotprod := v1.Dot(v2)
	argument := dotprod / normproduct
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}

//AngleInDegrees is as Angle, but the result is given in degrees.
func AngleInDegrees(v1, v2 *v3.Matrix) float64 {
	return Angle(v1, v2) * Rad2Deg
}

//RotatorToNewNormal takes a unit row vector newnormal and returns a linear
//operator R such that R applied to a column vector (or, equivalently,
//a row vector times the transpose of R) rotates the plane with normal (0,0,1)
//onto the plane with normal newnormal. The construction is the
//cross-product-based Rodrigues form R = I + Vx + Vx^2/(1+c), with
//v = (0,0,1) x newnormal and c = newnormal . (0,0,1). It fails with a
//rotation-singularity error when newnormal is anti-parallel to (0,0,1),
//where 1+c vanishes and the operator is undefined.
func RotatorToNewNormal(newnormal *v3.Matrix) (*v3.Matrix, error) {
	r, c := newnormal.Dims()
	if c != 3 || r != 1 {
		return nil, CError{"Wrong newnormal vector", []string{"RotatorToNewNormal"}}
	}
	normal, _ := v3.NewMatrix([]float64{0, 0, 1}) //hardcoded, doesn't fail
	v := cross(normal, newnormal)
	cos := newnormal.Dot(normal)
	if 1+cos <= appzero {
		return nil, CError{string(ErrRotationSingularity), []string{"RotatorToNewNormal"}}
	}
	vx, _ := v3.NewMatrix([]float64{
		0, -v.At(0, 2), v.At(0, 1),
		v.At(0, 2), 0, -v.At(0, 0),
		-v.At(0, 1), v.At(0, 0), 0})
	vxsq := v3.Zeros(3)
	vxsq.Mul(vx, vx)
	vxsq.Scale(1/(1+cos), vxsq.Dense)
	operator, _ := v3.NewMatrix([]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1})
	operator.Add(operator.Dense, vx)
	operator.Add(operator.Dense, vxsq)
	return operator, nil
}
