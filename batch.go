package woff2css

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-woff2css/internal/fileutil"
)

// Default batch layout: one CSS file per font, one per family, and the
// license texts that travel with them.
const (
	DefaultSingleDir   = "single"
	DefaultCombinedDir = "combined"
	DefaultLicenseDir  = "licenses"
)

// fontExt is the only extension batch discovery picks up.
const fontExt = ".woff"

// BatchOptions configures GenerateBatch.
type BatchOptions struct {
	OutputDir   string // root for generated directories (default: current directory)
	SingleDir   string // per-font CSS, relative to OutputDir (default: "single")
	CombinedDir string // per-family CSS, relative to OutputDir (default: "combined")
	LicenseDir  string // license texts, relative to OutputDir (default: "licenses")
	NoLicenses  bool   // skip license collection

	// Override replaces inferred descriptors field by field.
	Override Face
	// Fallback fills descriptors the font does not declare. An empty
	// family falls back to the file name.
	Fallback Face

	Logger *slog.Logger // nil discards
}

func (o BatchOptions) withDefaults() BatchOptions {
	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	if o.SingleDir == "" {
		o.SingleDir = DefaultSingleDir
	}
	if o.CombinedDir == "" {
		o.CombinedDir = DefaultCombinedDir
	}
	if o.LicenseDir == "" {
		o.LicenseDir = DefaultLicenseDir
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// BatchFile is the outcome for one discovered font.
type BatchFile struct {
	InputPath  string
	OutputPath string // single-font CSS file, empty on failure
	Face       Face
	Inferred   bool // descriptors came from the font's own metadata
	Embeddable bool
	Err        error
	Duration   time.Duration
}

// FamilyOutput describes one combined-family CSS file.
type FamilyOutput struct {
	Family   string
	Path     string
	Variants int
}

// BatchResult collects everything GenerateBatch produced.
type BatchResult struct {
	Files    []BatchFile
	Families []FamilyOutput
	Licenses []string
}

// Failed returns the number of fonts that could not be converted.
func (r *BatchResult) Failed() int {
	n := 0
	for _, f := range r.Files {
		if f.Err != nil {
			n++
		}
	}
	return n
}

// familyGroup accumulates the rules of one family in discovery order.
type familyGroup struct {
	name   string
	rules  []string
	dirs   []string
	notice string
}

// familyIndex keeps groups in first-seen order.
type familyIndex struct {
	order  []*familyGroup
	byName map[string]*familyGroup
}

func (idx *familyIndex) add(family, dir, rule, notice string) {
	g, ok := idx.byName[family]
	if !ok {
		g = &familyGroup{name: family}
		idx.byName[family] = g
		idx.order = append(idx.order, g)
	}
	g.rules = append(g.rules, rule)
	if !containsString(g.dirs, dir) {
		g.dirs = append(g.dirs, dir)
	}
	if g.notice == "" {
		g.notice = notice
	}
}

// GenerateBatch converts every .woff file under dir. Each font gets its own
// CSS file in SingleDir; fonts sharing a family are then concatenated into
// CombinedDir. Files are processed one at a time in lexical order, and a
// failing font is recorded in the result without stopping the batch.
func GenerateBatch(ctx context.Context, dir string, opts BatchOptions) (*BatchResult, error) {
	opts = opts.withDefaults()
	log := opts.Logger

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	paths, err := DiscoverFonts(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFonts, dir)
	}

	singleDir := filepath.Join(opts.OutputDir, opts.SingleDir)
	combinedDir := filepath.Join(opts.OutputDir, opts.CombinedDir)

	result := &BatchResult{Files: make([]BatchFile, 0, len(paths))}
	families := &familyIndex{byName: make(map[string]*familyGroup)}
	usedNames := make(map[string]bool)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		file, rule, notice := convertBatchFont(path, singleDir, usedNames, opts)
		result.Files = append(result.Files, file)
		if file.Err != nil {
			log.Error("conversion failed", "file", path, "error", file.Err)
			continue
		}
		if !file.Embeddable {
			log.Warn("font restricts embedding (OS/2 fsType), check its license", "file", path)
		}
		families.add(file.Face.Family, filepath.Dir(path), rule, notice)
		log.Info("done", "file", path, "output", file.OutputPath, "face", file.Face.String())
	}

	combinedNames := make(map[string]bool)
	for _, g := range families.order {
		name, err := uniqueFilename(g.name, combinedNames)
		if err != nil {
			return result, err
		}
		dest := filepath.Join(combinedDir, name+".css")
		if err := fileutil.WriteFile(dest, []byte(CombineRules(g.rules))); err != nil {
			return result, fmt.Errorf("%w: %w", ErrFileAccess, err)
		}
		result.Families = append(result.Families, FamilyOutput{Family: g.name, Path: dest, Variants: len(g.rules)})
		log.Info("wrote family", "family", g.name, "output", dest, "variants", len(g.rules))
	}

	if !opts.NoLicenses {
		licenses, err := collectLicenses(dir, filepath.Join(opts.OutputDir, opts.LicenseDir), families.order, log)
		result.Licenses = licenses
		if err != nil {
			return result, err
		}
	}

	return result, nil
}

// DiscoverFonts walks dir in lexical order and returns the .woff files
// below it. The extension match is case-insensitive.
func DiscoverFonts(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && fileutil.HasExtension(path, fontExt) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	return paths, nil
}

// convertBatchFont embeds one font and writes its single-font CSS file.
// It returns the rule and the license notice declared by the font.
func convertBatchFont(path, singleDir string, usedNames map[string]bool, opts BatchOptions) (BatchFile, string, string) {
	start := time.Now()
	file := BatchFile{InputPath: path, Embeddable: true}

	data, err := os.ReadFile(path) // #nosec G304 -- discovered path
	if err != nil {
		file.Err = fmt.Errorf("%w: %w", ErrFileAccess, err)
		file.Duration = time.Since(start)
		return file, "", ""
	}

	face, info, err := ResolveFace(path, data, opts.Override, opts.Fallback)
	var fullName, notice string
	if err != nil {
		opts.Logger.Debug("metadata unavailable, using defaults", "file", path, "error", err)
	} else {
		fullName = info.FullName
		file.Embeddable = info.Embeddable
		file.Inferred = true
		notice = licenseNotice(face.Family, info.Copyright, info.License)
	}
	file.Face = face
	if err := face.Validate(); err != nil {
		file.Err = err
		file.Duration = time.Since(start)
		return file, "", ""
	}

	if fullName == "" {
		fullName = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	name, err := uniqueFilename(fullName, usedNames)
	if err != nil {
		file.Err = err
		file.Duration = time.Since(start)
		return file, "", ""
	}

	rule := EmbedBytes(data, file.Face)
	dest := filepath.Join(singleDir, name+".css")
	if err := fileutil.WriteFile(dest, []byte(rule)); err != nil {
		file.Err = fmt.Errorf("%w: %w", ErrFileAccess, err)
		file.Duration = time.Since(start)
		return file, "", ""
	}

	file.OutputPath = dest
	file.Duration = time.Since(start)
	return file, rule, notice
}

// uniqueFilename sanitizes name and appends a counter when it is taken.
// Names are compared case-insensitively for case-folding filesystems.
func uniqueFilename(name string, used map[string]bool) (string, error) {
	base, err := fileutil.SanitizeFilename(name)
	if err != nil {
		return "", err
	}
	candidate := base
	for i := 2; used[strings.ToLower(candidate)]; i++ {
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	used[strings.ToLower(candidate)] = true
	return candidate, nil
}

// collectLicenses copies license files found beside the fonts and writes a
// notice for families that ship none but declare license text themselves.
func collectLicenses(root, dest string, groups []*familyGroup, log *slog.Logger) ([]string, error) {
	var written []string
	copied := make(map[string]string) // destination name -> source path
	dirLicenses := make(map[string][]string)

	for _, g := range groups {
		for _, dir := range g.dirs {
			if _, seen := dirLicenses[dir]; seen {
				continue
			}
			found, err := findLicenseFiles(dir)
			if err != nil {
				return written, err
			}
			dirLicenses[dir] = found

			for _, src := range found {
				name := licenseDestName(root, src, copied)
				target := filepath.Join(dest, name)
				if err := fileutil.CopyFile(src, target); err != nil {
					return written, fmt.Errorf("%w: %w", ErrFileAccess, err)
				}
				copied[name] = src
				written = append(written, target)
				log.Info("copied license", "source", src, "output", target)
			}
		}
	}

	// Notices share the directory with copied files; their names are taken.
	noticeNames := make(map[string]bool)
	for name := range copied {
		noticeNames[strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))] = true
	}
	for _, g := range groups {
		if g.notice == "" || familyHasLicenseFile(g, dirLicenses) {
			continue
		}
		name, err := uniqueFilename(g.name, noticeNames)
		if err != nil {
			return written, err
		}
		target := filepath.Join(dest, name+".txt")
		if err := fileutil.WriteFile(target, []byte(g.notice)); err != nil {
			return written, fmt.Errorf("%w: %w", ErrFileAccess, err)
		}
		written = append(written, target)
		log.Info("wrote license notice", "family", g.name, "output", target)
	}

	return written, nil
}

// licenseDestName keeps the original file name unless another directory
// already contributed a file with that name, in which case the relative
// directory is prefixed.
func licenseDestName(root, src string, copied map[string]string) string {
	name := filepath.Base(src)
	if prev, taken := copied[name]; !taken || prev == src {
		return name
	}
	rel, err := filepath.Rel(root, filepath.Dir(src))
	if err != nil || rel == "." {
		rel = filepath.Base(filepath.Dir(src))
	}
	prefix := strings.NewReplacer(string(filepath.Separator), "_", "/", "_").Replace(rel)
	return prefix + "_" + name
}

func familyHasLicenseFile(g *familyGroup, dirLicenses map[string][]string) bool {
	for _, dir := range g.dirs {
		if len(dirLicenses[dir]) > 0 {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// IsBatchFailure reports whether err came from a batch that ran but
// converted some fonts unsuccessfully.
func IsBatchFailure(err error) bool {
	var bf *BatchFailureError
	return errors.As(err, &bf)
}

// BatchFailureError summarizes per-font failures of a completed batch.
type BatchFailureError struct {
	Failed int
	Total  int
}

func (e *BatchFailureError) Error() string {
	return fmt.Sprintf("%d of %d font(s) failed", e.Failed, e.Total)
}

// Err returns a *BatchFailureError when any font failed, nil otherwise.
func (r *BatchResult) Err() error {
	if n := r.Failed(); n > 0 {
		return &BatchFailureError{Failed: n, Total: len(r.Files)}
	}
	return nil
}
