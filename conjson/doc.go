/*
 * doc.go, part of gocon.
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
 */

//Package conjson implements serialization and unserialization of
//CON frames to and from JSON and YAML. Its planned use is the
//communication of gocon programs with other, independent programs,
//which can be written in languages other than Go, as long as they can
//read JSON or YAML. Frames are written one JSON object per line, so
//they can be sent, for instance, through UNIX pipes.
package conjson
