// This file is part of model2rom.
//
// model2rom is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// model2rom is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with model2rom.  If not, see <https://www.gnu.org/licenses/>.

package romloader

// State of a title in the loader.
type State int

// List of valid State values.
const (
	NotStarted State = iota
	Searching
	Extracting
	Validating
	Cached
	Failed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Searching:
		return "searching"
	case Extracting:
		return "extracting"
	case Validating:
		return "validating"
	case Cached:
		return "cached"
	case Failed:
		return "failed"
	}
	return "undefined"
}
