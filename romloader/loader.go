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

package romloader

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/model2emu/model2rom/catalog"
	"github.com/model2emu/model2rom/curated"
	"github.com/model2emu/model2rom/logger"
	"github.com/model2emu/model2rom/validation"
)

// Sentinal error patterns.
const (
	RomNotFound = "romloader: rom not found (%s): %s"
)

const logTag = "romloader"

// Catalog is the source of title records.
type Catalog interface {
	Lookup(name string) (catalog.TitleRecord, error)
}

// Set is the result of a successful LoadGame().
type Set struct {
	Title catalog.TitleRecord

	// keyed by entry name. optional entries that could not be loaded are
	// not present
	Images map[string]*Image

	Warnings []string

	State State
}

func (set *Set) warn(format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	set.Warnings = append(set.Warnings, s)
	logger.Logf(logger.Allow, logTag, "%s: %s", set.Title.ShortName, s)
}

// Image returns the image for the named entry.
func (set *Set) Image(name string) (*Image, bool) {
	img, ok := set.Images[name]
	return img, ok
}

// Ordered returns the images in the order of the title record. Required
// entries come first.
func (set *Set) Ordered() []*Image {
	var o []*Image
	for _, e := range set.Title.Entries() {
		if img, ok := set.Images[e.Name]; ok {
			o = append(o, img)
		}
	}
	return o
}

// Reports returns the validation reports in the same order as Ordered().
func (set *Set) Reports() []validation.Report {
	var r []validation.Report
	for _, img := range set.Ordered() {
		r = append(r, img.Report())
	}
	return r
}

// Size returns the total number of bytes in the set.
func (set *Set) Size() int64 {
	var n int64
	for _, img := range set.Images {
		n += int64(img.Len())
	}
	return n
}

// Loader loads titles from a list of search paths and keeps the loaded
// images in a cache. It is safe for concurrent use.
type Loader struct {
	cat   Catalog
	cache *Cache

	crit   sync.Mutex
	paths  []string
	cfg    Config
	states map[string]State

	// concurrent loads of the same title are serialised
	locks map[string]*sync.Mutex
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(cat Catalog) *Loader {
	cfg := DefaultConfig()
	return &Loader{
		cat:    cat,
		cache:  NewCache(cfg.MaxCacheSize),
		cfg:    cfg,
		states: make(map[string]State),
		locks:  make(map[string]*sync.Mutex),
	}
}

// AddSearchPath adds a directory to the end of the search list. Paths are
// searched in the order they were added. Adding a path that is already in
// the list has no effect.
func (l *Loader) AddSearchPath(path string) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for _, p := range l.paths {
		if p == path {
			return
		}
	}
	l.paths = append(l.paths, path)
}

// SearchPaths returns the current search list.
func (l *Loader) SearchPaths() []string {
	l.crit.Lock()
	defer l.crit.Unlock()
	return append([]string(nil), l.paths...)
}

// SetLoadConfig changes the configuration for future loads. The cache budget
// is changed immediately.
func (l *Loader) SetLoadConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	l.crit.Lock()
	l.cfg = cfg
	l.crit.Unlock()
	l.cache.SetBudget(cfg.MaxCacheSize)
	return nil
}

// LoadConfig returns the current configuration.
func (l *Loader) LoadConfig() Config {
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.cfg
}

// Cache returns the image cache used by the loader.
func (l *Loader) Cache() *Cache {
	return l.cache
}

// ClearCache removes every image from the cache. Titles in the Cached state
// return to NotStarted.
func (l *Loader) ClearCache() {
	l.cache.Clear()

	l.crit.Lock()
	defer l.crit.Unlock()
	for k, s := range l.states {
		if s == Cached {
			l.states[k] = NotStarted
		}
	}
}

// State returns the load state of the named title. Unknown titles are
// always NotStarted.
func (l *Loader) State(name string) State {
	rec, err := l.cat.Lookup(name)
	if err != nil {
		return NotStarted
	}
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.states[rec.ShortName]
}

// MarkFailed puts a title into the Failed state after a successful load, for
// when a later stage cannot use the loaded images. The images are left in
// the cache because they passed validation.
func (l *Loader) MarkFailed(name string, reason error) {
	rec, err := l.cat.Lookup(name)
	if err != nil {
		return
	}
	l.setState(rec.ShortName, Failed)
	logger.Logf(logger.Allow, logTag, "%s: %v", rec.ShortName, reason)
}

func (l *Loader) setState(title string, s State) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.states[title] = s
}

func (l *Loader) titleLock(title string) *sync.Mutex {
	l.crit.Lock()
	defer l.crit.Unlock()
	m, ok := l.locks[title]
	if !ok {
		m = &sync.Mutex{}
		l.locks[title] = m
	}
	return m
}

func (l *Loader) snapshot() (Config, []string) {
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.cfg, append([]string(nil), l.paths...)
}

// job is the work for a single entry during a load.
type job struct {
	entry    catalog.RomEntry
	required bool

	src    source
	data   []byte
	report validation.Report

	// the reason the entry could not be used
	err error
}

func jobs(rec catalog.TitleRecord) []*job {
	j := make([]*job, 0, len(rec.Required)+len(rec.Optional))
	for _, e := range rec.Required {
		j = append(j, &job{entry: e, required: true})
	}
	for _, e := range rec.Optional {
		j = append(j, &job{entry: e})
	}
	return j
}

// run calls f for every job with no more than workers calls at once. The
// first error returned by f is returned.
func run(workers int, jobs []*job, f func(*job) error) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			return f(j)
		})
	}
	return g.Wait()
}

// extract the entry data. The error is recorded in the job and is returned
// only for required entries.
func extract(j *job) error {
	if j.err != nil {
		return nil
	}
	j.data, j.err = j.src.member.Bytes()
	if j.required {
		return j.err
	}
	return nil
}

// validate returns a function that validates the entry data according to the
// policy. The error is recorded in the job and is returned only for required
// entries.
func validate(policy validation.Policy) func(*job) error {
	return func(j *job) error {
		if j.err != nil {
			return nil
		}
		j.report, j.err = validation.Validate(j.entry.Name, j.data, j.entry, policy)
		if j.required {
			return j.err
		}
		return nil
	}
}

// satisfies returns true if a cached image was validated in a way that is
// acceptable under the configuration. Images that fail the test are read and
// validated again.
func satisfies(r validation.Report, cfg Config) bool {
	if !cfg.ValidateChecksums {
		return true
	}
	for _, c := range r.Checksums {
		switch c.Result {
		case validation.NotChecked:
			return false
		case validation.Mismatch:
			if !cfg.AllowBadChecksums {
				return false
			}
		}
	}
	return true
}

// LoadGame loads every entry of the named title. Images already in the cache
// are not loaded again. Nothing is added to the cache unless the load
// succeeds.
func (l *Loader) LoadGame(name string) (*Set, error) {
	rec, err := l.cat.Lookup(name)
	if err != nil {
		return nil, err
	}

	lock := l.titleLock(rec.ShortName)
	lock.Lock()
	defer lock.Unlock()

	cfg, paths := l.snapshot()

	set, err := l.load(rec, cfg, paths)
	if err != nil {
		l.setState(rec.ShortName, Failed)
		logger.Logf(logger.Allow, logTag, "%s: %v", rec.ShortName, err)
		return nil, err
	}

	l.setState(rec.ShortName, Cached)
	set.State = Cached
	logger.Logf(logger.Allow, logTag, "%s: loaded %d roms (%d bytes)", rec.ShortName, len(set.Images), set.Size())

	return set, nil
}

func (l *Loader) load(rec catalog.TitleRecord, cfg Config, paths []string) (*Set, error) {
	set := &Set{
		Title:  rec,
		Images: make(map[string]*Image),
	}

	l.setState(rec.ShortName, Searching)

	s := newSearch(rec, paths)
	defer s.close()

	var pending []*job
	var missing []string

	// the error from an archive that might have held a missing entry. only
	// used if every missing entry has such an error
	var archiveErr error
	onlyArchiveErrs := true

	// cache hits are not marked as recently used until the load succeeds
	var hits []*Image

	for _, j := range jobs(rec) {
		if img, ok := l.cache.Peek(Key{Title: rec.ShortName, Name: j.entry.Name}); ok && satisfies(img.Report(), cfg) {
			hits = append(hits, img)
			continue
		}

		src, ok, err := s.locate(j.entry.Name)
		if !ok {
			if j.required {
				missing = append(missing, j.entry.Name)
				if err == nil {
					onlyArchiveErrs = false
				} else if archiveErr == nil {
					archiveErr = err
				}
			} else {
				set.warn("optional rom %s not found", j.entry.Name)
			}
			continue
		}

		j.src = src
		pending = append(pending, j)
	}

	if len(missing) > 0 {
		if onlyArchiveErrs && archiveErr != nil {
			return nil, archiveErr
		}
		return nil, curated.Errorf(RomNotFound, rec.ShortName, strings.Join(missing, ", "))
	}

	l.setState(rec.ShortName, Extracting)
	if err := run(cfg.Workers, pending, extract); err != nil {
		return nil, err
	}

	l.setState(rec.ShortName, Validating)
	if err := run(cfg.Workers, pending, validate(cfg.policy())); err != nil {
		return nil, err
	}

	var keys []Key
	for _, img := range hits {
		for _, w := range img.Report().Warnings {
			set.warn("%s: %s", img.Name(), w)
		}
		set.Images[img.Name()] = img
		keys = append(keys, img.Key())
	}
	l.cache.Touch(keys...)

	var fresh []*Image
	for _, j := range pending {
		if j.err != nil {
			set.warn("optional rom %s dropped: %v", j.entry.Name, j.err)
			continue
		}
		for _, w := range j.report.Warnings {
			set.warn("%s: %s", j.entry.Name, w)
		}
		img := newImage(rec.ShortName, j.entry, j.data, j.report, j.src)
		set.Images[j.entry.Name] = img
		fresh = append(fresh, img)
	}

	for _, img := range l.cache.PutAll(fresh) {
		set.warn("%s (%d bytes) is larger than the cache budget and has not been cached", img.Name(), img.Len())
	}

	return set, nil
}
