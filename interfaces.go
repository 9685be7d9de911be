/*
 * interfaces.go, part of gocon.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 * goCon is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package con

// FrameSource is anything that delivers CON frames one at a time,
// such as *Iterator.
type FrameSource interface {
	//Is the source ready to be read?
	Readable() bool

	//Next returns the next frame. At the end of the sequence the error
	//implements LastFrameError.
	Next() (*Frame, error)

	//Forward skips one frame without building its atoms. It returns false
	//if there was nothing to skip.
	Forward() bool
}

// FrameSink accepts frames and writes them somewhere, such as *Writer.
type FrameSink interface {
	Append(frames ...*Frame) error
	Close() error
}

//Errors

// DecoratedError is the interface for errors returned by this package. The Decorate
// method allows to add and retrieve info from the error, without changing
// its type or wrapping it around something else.
type DecoratedError interface {
	Error() string
	//Decorate adds the name of a caller (plus, optionally, "FunctionName: extra info")
	//to the error and returns the current decoration. An empty string just returns it.
	Decorate(string) []string
}

// TrajError is the interface for errors in trajectories
type TrajError interface {
	DecoratedError
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. last frame) so  they can be
// filtered in a typeswitch that looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}
