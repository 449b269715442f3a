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

// Package catalog is the static registry of supported titles. Each title is
// described by a TitleRecord, which lists the ROM images that make up the
// title, the expected size and checksums of those images, and the system
// configuration the title expects.
//
// The compiled-in catalog is returned by Builtin(). It is built and checked
// during package initialisation, so a malformed record is a startup failure
// and not something discovered when the title is first requested.
//
// Additional catalogs can be created with New(). This is mostly useful for
// tests, which need records whose checksums match generated data.
//
// TitleRecord values returned by a Catalog are deep copies and can be
// modified by the caller without affecting the catalog.
package catalog
