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

// Package version reports the version of the program. The version number is
// set at link time:
//
//	go build -ldflags "-X github.com/model2emu/model2rom/version.number=v0.1.0"
//
// Without a number the version is "unreleased" when build information for
// the module is available and "local" otherwise.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used when referring to the program in output.
const ApplicationName = "model2rom"

// set by the linker
var number string

// Info describes the build.
type Info struct {
	Version   string
	Revision  string
	GoVersion string
	Release   bool
}

func (i Info) String() string {
	if i.Release {
		return fmt.Sprintf("%s %s", ApplicationName, i.Version)
	}
	return fmt.Sprintf("%s %s (%s, %s)", ApplicationName, i.Version, i.Revision, i.GoVersion)
}

// Version returns information about the current build.
func Version() Info {
	return fromBuildInfo(debug.ReadBuildInfo())
}

func fromBuildInfo(info *debug.BuildInfo, ok bool) Info {
	i := Info{
		Version:  "local",
		Revision: "no revision information",
	}

	if ok {
		i.GoVersion = info.GoVersion

		var modified bool
		var vcs bool
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				i.Revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
		if modified {
			i.Revision = fmt.Sprintf("%s+dirty", i.Revision)
		}
		if vcs {
			i.Version = "unreleased"
		}
	}

	if number != "" {
		i.Version = number
		i.Release = true
	}

	return i
}
