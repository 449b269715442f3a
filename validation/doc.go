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

// Package validation checks ROM images against the expectations recorded in
// the catalog.
//
// Checksum(), ChecksumAll(), InferType() and EntropyScore() are pure
// functions of the data. Validate() combines them with a RomEntry and a
// Policy to produce a Report.
//
// Validate() only fails when a checksum does not match and the policy does
// not allow bad checksums. Every other discrepancy is recorded in the Report
// as a warning.
package validation
