/*
 * errors.go, part of gotetra.
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

//Error is the interface for errors that all packages in this library
//implement. The Decorate method allows to add and retrieve info from the
//error, without changing its type or wrapping it around something else.
//The decoration slice should contain a list of functions in the calling
//stack, plus, for each function, any relevant information, or nothing. If
//passed an empty string, Decorate should just return the current value, not
//add the empty string to the slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

//CError is the concrete error type of the library.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate asserts that the error implements Error and decorates it with
//the caller's name before returning it. Used with any other error type it
//will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics and for the text of well-known error
//conditions. It satisfies the error interface, but for returned errors use
//CError with the corresponding message.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	//ErrRotationSingularity is the message of the error returned when the
	//bond direction is exactly anti-parallel to the reference normal
	//(0,0,1), where the Rodrigues construction is undefined.
	ErrRotationSingularity = PanicMsg("goTetra: bond direction anti-parallel to the reference normal, rotation undefined")
	//ErrDegenerateBond is the message of the error returned when the central
	//and bonded atoms coincide, so the bond vector cannot be normalized.
	ErrDegenerateBond = PanicMsg("goTetra: degenerate bond, central and bonded atoms coincide")
	ErrNilData        = PanicMsg("goTetra: nil data given")
	ErrOutOfRange     = PanicMsg("goTetra: index out of range")
)
