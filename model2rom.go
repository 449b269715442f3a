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

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/model2emu/model2rom/archivefs"
	"github.com/model2emu/model2rom/catalog"
	"github.com/model2emu/model2rom/logger"
	"github.com/model2emu/model2rom/modalflag"
	"github.com/model2emu/model2rom/preferences"
	"github.com/model2emu/model2rom/prefs"
	"github.com/model2emu/model2rom/romsys"
	"github.com/model2emu/model2rom/statsview"
	"github.com/model2emu/model2rom/validation"
	"github.com/model2emu/model2rom/version"
)

// exit values.
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch parses the command line and runs the selected mode. Returns the
// value to be used with os.Exit().
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)

	echo := md.AddBool("log", false, "echo log to stdout")
	path := md.AddString("path", "", "additional rom search paths")
	prefsFile := md.AddString("prefs", "", "preferences file")
	prefsOverride := md.AddString("set", "", "override preferences (key::value; key::value)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("launch statsview (available=%v)", statsview.Available()))

	md.AddSubModes("CATALOG", "AVAILABILITY", "LOAD", "MAP", "CHECKSUM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if *echo {
		logger.SetEcho(output)
	}

	if *stats {
		statsview.Launch(output)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
	}

	sys, pref, err := newSystem(*prefsFile, *path)
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitModeError
	}

	if *prefsOverride != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Fprintf(output, "* unused preferences: %s\n", unused)
		}
	}

	switch md.Mode() {
	case "CATALOG":
		err = catalogMode(md, sys)
	case "AVAILABILITY":
		err = availability(md, sys)
	case "LOAD":
		err = load(md, sys, pref)
	case "MAP":
		err = memoryMap(md, sys)
	case "CHECKSUM":
		err = checksum(md)
	case "VERSION":
		fmt.Fprintln(output, version.Version())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOK
}

// newSystem creates a System configured by the preferences file. Paths are
// separated by the OS path list separator and are searched before the paths
// in the preferences.
func newSystem(prefsFile string, paths string) (*romsys.System, *preferences.Preferences, error) {
	pref, err := preferences.NewPreferences(prefsFile)
	if err != nil {
		return nil, nil, err
	}

	sys := romsys.NewSystem(catalog.Builtin())
	for _, p := range filepath.SplitList(paths) {
		if p != "" {
			sys.Loader().AddSearchPath(p)
		}
	}

	err = sys.ApplyPreferences(pref)
	if err != nil {
		return nil, nil, err
	}

	return sys, pref, nil
}

func catalogMode(md *modalflag.Modes, sys *romsys.System) error {
	md.NewMode()

	scan := md.AddBool("scan", false, "list rom files found in the search paths")
	details := md.AddBool("details", false, "list the rom entries of every title")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *scan {
		files, err := sys.Loader().ScanAvailable()
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintln(md.Output, f)
		}
		return nil
	}

	if *details {
		return sys.Catalog().List(md.Output)
	}

	return sys.CatalogReport(md.Output)
}

func availability(md *modalflag.Modes, sys *romsys.System) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	titles := md.RemainingArgs()
	if len(titles) == 0 {
		titles = sys.Catalog().Names()
	}

	for i, t := range titles {
		if i > 0 {
			fmt.Fprintln(md.Output)
		}
		err := sys.AvailabilityReport(md.Output, t)
		if err != nil {
			return err
		}
	}

	return nil
}

func load(md *modalflag.Modes, sys *romsys.System, pref *preferences.Preferences) error {
	md.NewMode()

	noChecksums := md.AddBool("nochecksums", false, "do not compute or compare checksums")
	allowBad := md.AddBool("allowbad", false, "treat checksum mismatches as warnings")
	save := md.AddBool("save", false, "save the preferences used for the load")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one title required for %s mode", md)
	}

	if *noChecksums {
		if err := pref.ValidateChecksums.Set(false); err != nil {
			return err
		}
	}
	if *allowBad {
		if err := pref.AllowBadChecksums.Set(true); err != nil {
			return err
		}
	}
	if err := sys.ApplyPreferences(pref); err != nil {
		return err
	}
	if *save {
		if err := pref.Save(); err != nil {
			return err
		}
	}

	title, err := sys.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	return title.WriteReport(md.Output)
}

func memoryMap(md *modalflag.Modes, sys *romsys.System) error {
	md.NewMode()

	dot := md.AddString("dot", "", "write a graphviz description of the map to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one title required for %s mode", md)
	}

	title, err := sys.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	fmt.Fprint(md.Output, title.Map.Summary())
	fmt.Fprint(md.Output, title.Map.Stats())

	if *dot != "" {
		f, err := os.Create(*dot)
		if err != nil {
			return err
		}
		defer f.Close()
		title.Map.Visualise(f)
	}

	return nil
}

func checksum(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("at least one file required for %s mode", md)
	}

	for _, fn := range md.RemainingArgs() {
		err := checksumFile(md.Output, fn)
		if err != nil {
			return err
		}
	}

	return nil
}

// checksumFile writes the size, inferred type and checksums of every ROM in
// the file. The file may be an archive.
func checksumFile(output io.Writer, filename string) error {
	arc, err := archivefs.Open(filename)
	if err != nil {
		return err
	}
	defer arc.Close()

	ext, err := arc.Extract()
	if err != nil {
		return err
	}

	for _, e := range ext {
		c := validation.ChecksumAll(e.Data)
		fmt.Fprintf(output, "%s\t%d\t%s\t%08x\t%s\t%s\n", strings.TrimPrefix(e.Name, "./"), len(e.Data),
			validation.InferType(e.Data), c.CRC32, c.MD5, c.SHA256)
	}

	return nil
}
