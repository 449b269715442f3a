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

// Package romtest creates ROM images, title records and archives for use in
// tests. Generated data is deterministic: the same name and size always
// produce the same bytes.
//
// Title records from the built-in catalog name real ROM images that are not
// part of the repository. NewFixture() takes such a record, generates data
// for every entry (optionally scaled down so that tests stay quick) and
// rewrites the record's checksums to match the generated data.
package romtest
