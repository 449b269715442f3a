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

// Package logger is the logging package for model2rom. Log entries are
// composed of a tag and a detail string and are kept in memory, with a
// maximum number of entries, rather than being written immediately to a
// file. The log can be written to an io.Writer at any time with Write() or
// Tail().
//
// Consecutive log entries with the same tag and detail are collapsed into
// a single entry with a repeat count.
//
// There is a central logger, accessed through the package level functions,
// and independent loggers can be created with NewLogger(). The central
// logger is what the rest of model2rom uses.
//
// Every log request must supply a Permission. The Allow value is used when
// the entry should always be made. Types that need to control logging, for
// instance to keep a background availability scan quiet, implement the
// Permission interface themselves.
package logger
