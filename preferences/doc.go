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

// Package preferences collects the user preferences for the ROM loader and
// the memory mapper. Every value is bound to a key in the preferences file
// and can be overridden from the command line.
//
//	romloader.validateChecksums
//	romloader.allowBadChecksums
//	romloader.maxCacheSize
//	romloader.workers
//	romloader.searchPaths
//	memorymap.bankSize
//	memorymap.programBase
//	memorymap.graphicsBase
//	memorymap.audioBase
//	memorymap.dataBase
package preferences
