/*
 * main.go, part of gotetra.
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

//gotetra reads an XYZ file, builds the three tetrahedral substituent
//positions for one of its bonds and writes the resulting 5-atom structure
//(bonded atom, central atom, then the substituents) to a new XYZ file.
//
//	gotetra [flags] input.xyz output.xyz
//
//Options can also come from a JSON file given with -conf, with the keys
//central_atom, bonded_atom, labels and plot; explicit flags win over the
//file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	tetra "github.com/cvera/gotetra"
	"github.com/cvera/gotetra/tetraplot"
)

type options struct {
	central int
	bonded  int
	labels  []string
	plot    string
}

//applyConf fills in, from the JSON file confname, every option that was not
//given explicitly as a flag.
func applyConf(opts *options, confname string, setflags map[string]bool) error {
	data, err := os.ReadFile(confname)
	if err != nil {
		return err
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid JSON in config file %s", confname)
	}
	if r := gjson.GetBytes(data, "central_atom"); r.Exists() && !setflags["central"] {
		opts.central = int(r.Int())
	}
	if r := gjson.GetBytes(data, "bonded_atom"); r.Exists() && !setflags["bonded"] {
		opts.bonded = int(r.Int())
	}
	if r := gjson.GetBytes(data, "labels"); r.Exists() && !setflags["labels"] {
		opts.labels = nil
		for _, l := range r.Array() {
			opts.labels = append(opts.labels, l.String())
		}
	}
	if r := gjson.GetBytes(data, "plot"); r.Exists() && !setflags["plot"] {
		opts.plot = r.String()
	}
	return nil
}

func main() {
	central := flag.Int("central", 0, "index (0-based) of the atom to be functionalized")
	bonded := flag.Int("bonded", 1, "index (0-based) of the atom bonded to it")
	labels := flag.String("labels", "H,H,H", "comma-separated element symbols for the three new atoms")
	plotaxes := flag.String("plot", "", "also render a 2D projection (xy, xz or yz) of the result")
	conf := flag.String("conf", "", "JSON file with the same options (flags win)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] input.xyz output.xyz\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	opts := &options{central: *central, bonded: *bonded, labels: strings.Split(*labels, ","), plot: *plotaxes}
	if *conf != "" {
		setflags := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { setflags[f.Name] = true })
		if err := applyConf(opts, *conf, setflags); err != nil {
			log.Fatal(err)
		}
	}
	inname := flag.Arg(0)
	outname := flag.Arg(1)
	mol, err := tetra.XYZRead(inname)
	if err != nil {
		log.Fatal(err)
	}
	five, err := tetra.Functionalize(mol, 0, opts.central, opts.bonded, opts.labels)
	if err != nil {
		log.Fatal(err)
	}
	if err := tetra.XYZWrite(outname, five.Coords[0], five); err != nil {
		log.Fatal(err)
	}
	if opts.plot != "" {
		plotname := strings.TrimSuffix(outname, ".xyz")
		if err := tetraplot.Projection(five.Coords[0], five, opts.plot, "functionalized structure", plotname); err != nil {
			log.Fatal(err)
		}
	}
}
