/*
 * plot.go, part of gotetra.
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

//Package tetraplot renders quick 2D projections of a structure, to eyeball a
//generated geometry without a molecular viewer.
package tetraplot

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	tetra "github.com/cvera/gotetra"
	v3 "github.com/cvera/gotetra/v3"
)

//CPK-ish colors for the common elements. Anything else gets green.
var elementColors = map[string]color.RGBA{
	"H": {R: 160, G: 160, B: 160, A: 255},
	"C": {R: 40, G: 40, B: 40, A: 255},
	"N": {R: 0, G: 0, B: 255, A: 255},
	"O": {R: 255, G: 0, B: 0, A: 255},
	"P": {R: 255, G: 140, B: 0, A: 255},
	"S": {R: 220, G: 220, B: 0, A: 255},
}

func axisCols(axes string) (int, int, error) {
	switch axes {
	case "xy":
		return 0, 1, nil
	case "xz":
		return 0, 2, nil
	case "yz":
		return 1, 2, nil
	}
	return 0, 0, fmt.Errorf("tetraplot: invalid projection %q, want xy, xz or yz", axes)
}

//Projection draws the projection of the given coordinates on the plane given
//by axes ("xy", "xz" or "yz"), one glyph per atom colored by element, and
//saves it as plotname.png. The atom information in mol must match the
//coordinates.
func Projection(coords *v3.Matrix, mol tetra.Atomer, axes, title, plotname string) error {
	if coords == nil || mol == nil {
		return fmt.Errorf("tetraplot: nil data given")
	}
	if mol.Len() != coords.NVecs() {
		return fmt.Errorf("tetraplot: inconsistent coordinates(%d)/atoms(%d)", coords.NVecs(), mol.Len())
	}
	xcol, ycol, err := axisCols(strings.ToLower(axes))
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Padding = vg.Millimeter * 3
	p.Title.Text = title
	p.X.Label.Text = strings.ToUpper(axes[:1]) + " (A)"
	p.Y.Label.Text = strings.ToUpper(axes[1:]) + " (A)"
	p.Add(plotter.NewGrid())
	//One scatter per atom so each can get its own color.
	for i := 0; i < mol.Len(); i++ {
		pts := make(plotter.XYs, 1)
		pts[0].X = coords.At(i, xcol)
		pts[0].Y = coords.At(i, ycol)
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		c, ok := elementColors[mol.Atom(i).Symbol]
		if !ok {
			c = color.RGBA{G: 200, A: 255}
		}
		s.GlyphStyle.Color = c
		s.GlyphStyle.Radius = vg.Points(4)
		p.Add(s)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(10*vg.Centimeter, 10*vg.Centimeter, filename)
}
