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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/model2emu/model2rom/test"
)

func TestFromBuildInfo(t *testing.T) {
	i := fromBuildInfo(nil, false)
	test.ExpectEquality(t, i.Version, "local")
	test.ExpectFailure(t, i.Release)

	bi := &debug.BuildInfo{
		GoVersion: "go1.22.0",
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	i = fromBuildInfo(bi, true)
	test.ExpectEquality(t, i.Version, "unreleased")
	test.ExpectEquality(t, i.Revision, "abc123+dirty")
	test.ExpectEquality(t, i.String(), "model2rom unreleased (abc123+dirty, go1.22.0)")

	number = "v0.1.0"
	defer func() { number = "" }()
	i = fromBuildInfo(bi, true)
	test.ExpectSuccess(t, i.Release)
	test.ExpectEquality(t, i.String(), "model2rom v0.1.0")
}
