// This file is part of atari2600.
//
// atari2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// atari2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with atari2600.  If not, see <https://www.gnu.org/licenses/>.

// Package television defines the boundary between the emulated console and
// whatever is going to display its picture.
//
// The TIA does not think in frames or even in pixels; it emits a composite
// signal, one color clock at a time. The Television interface accepts that
// signal stream and the BasicTelevision implementation reconstructs frames
// from it the way a real set would: scanlines are started by the front porch,
// frames by the end of a sustained vertical sync.
//
// The reconstructed picture is made available in two ways. Renderer
// implementations receive pixels as they are decoded, which suits display
// frontends that stream into a texture. RasterReceiver implementations
// receive the completed Frame once per vertical cycle; the Frame is handed
// over read-only and the television will not touch it again until the end of
// the following frame (the rasters are double-buffered).
//
// There is no frame pacing here. The television runs as fast as it is
// signalled; limiting to the specification's frame rate is the frontend's
// job.
package television
