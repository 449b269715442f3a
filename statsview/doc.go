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

// Package statsview serves runtime statistics over HTTP while titles are
// being loaded. The server is only included when the statsview build tag is
// present:
//
//	go build -tags statsview
//
// Graphs of memory use and goroutine count are then available at
// Address + "/debug/statsview". Useful for observing the cache and the
// extraction workers under load. Without the build tag Available() returns
// false and Launch() does nothing.
package statsview
