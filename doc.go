/*
 * doc.go, part of gotetra.
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

/*Package tetra builds tetrahedral substituent geometries around a
functionalizable atom.

Given a structure with a central atom and one reference atom singly bonded to
it (say, the C and H of a C-H bond), the library generates the coordinates of
three new atoms arranged as an equilateral triangle on the opposite side of
the central atom, so that the reference atom plus the three new atoms
tetrahedrally surround the central one. This approximates the standard sp3
arrangement, so the result can be used to substitute the reference atom and
grow functional groups from the remaining three positions.


	**Capabilities**

    Reads/writes XYZ files, including gzip- and zstd-compressed ones.

    Generates the three tetrahedral substituent positions for any
	(central atom, bonded atom) pair of a structure.

    Basic vector geometry on sets of coordinates: distances, angles,
	cross products and rotation operators (the v3 subpackage).

    Renders 2D projections of a structure to PNG (the tetraplot
	subpackage).

All coordinates are handled as 3-column gonum-backed matrices of row vectors
(see the v3 subpackage). Computations are stateless: every call derives its
results from its arguments only, so independent functionalizations can run
concurrently without synchronization.
*/
package tetra
