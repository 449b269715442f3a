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

// Package resources prepares paths for files used by model2rom, such as the
// preferences file.
//
// If a directory called .model2rom exists in the current working directory
// then all resources are kept there. Otherwise resources are kept in the
// model2rom directory inside the user's configuration directory. On modern
// Linux systems the full path would be something like:
//
//	/home/user/.config/model2rom/
package resources
