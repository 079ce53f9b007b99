// Package suite turns a recipe into a tree of generated fixture files.
package suite

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"fixture-generator/internal/catalog"
	"fixture-generator/internal/emit"
	"fixture-generator/internal/genfs"
	"fixture-generator/internal/random"
	"fixture-generator/internal/recipe"
	"fixture-generator/primitive"
)

// FileExtension of files whose recipe entry has no path.
const FileExtension = "hpp"

// Build renders every file of r into a new tree. Types declared by r extend
// the default catalog. All randomness is drawn from src, file by file in
// recipe order. Recipe warnings are logged; recipe errors abort the build.
func Build(r *recipe.Recipe, src random.Source, logger *slog.Logger) (*genfs.FS, error) {
	return BuildFrom(catalog.Default(), r, src, logger)
}

// BuildFrom is Build with the recipe types layered over base instead of the
// default catalog. base is not modified.
func BuildFrom(base *catalog.Catalog, r *recipe.Recipe, src random.Source, logger *slog.Logger) (*genfs.FS, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	diags := recipe.CheckAgainst(r, base)
	for _, w := range diags.Warnings {
		logger.Warn("recipe warning", "code", w.Code, "at", w.Location, "detail", w.Message)
	}

	if err := diags.Err(); err != nil {
		return nil, fmt.Errorf("invalid recipe: %w", err)
	}

	types := base.Clone()
	if err := types.RegisterSpecs(r.Types); err != nil {
		return nil, fmt.Errorf("recipe types: %w", err)
	}

	b := &builder{
		emitter:  emit.NewEmitter(src, types),
		src:      src,
		defaults: r.Defaults,
		logger:   logger,
	}

	tree := genfs.New()

	for i := range r.Files {
		file := b.render(&r.Files[i])
		if err := tree.Add(fmt.Sprintf("files[%d]", i), file); err != nil {
			return nil, err
		}
	}

	return tree, nil
}

type builder struct {
	emitter  *emit.Emitter
	src      random.Source
	defaults recipe.Defaults
	logger   *slog.Logger
}

func (b *builder) render(f *recipe.File) genfs.File {
	path := f.Path
	if path == "" {
		path = primitive.Filename(b.src, FileExtension)
	}

	logger := b.logger.With("file", path)

	var sections []string
	if f.Preamble != "" {
		sections = append(sections, strings.TrimRight(f.Preamble, "\n")+"\n")
	}

	var enums, structs int

	for i := range f.Enums {
		e := &f.Enums[i]
		for rep := range max(e.Repeats(), 0) {
			decl := b.emitter.ResolveEnum(e.ValueCount(), enumOptions(e, rep))
			logger.Debug("emitted enum", "name", decl.Name, "values", len(decl.Values))

			sections = append(sections, decl.String())
			enums++
		}
	}

	for i := range f.Structs {
		s := &f.Structs[i]
		for rep := range max(s.Repeats(), 0) {
			decl := b.emitter.ResolveStruct(s.FieldCount(), b.structOptions(s, rep))
			logger.Debug("emitted struct", "name", decl.Name, "fields", len(decl.Fields))

			sections = append(sections, decl.String())
			structs++
		}
	}

	data := []byte(strings.Join(sections, "\n"))
	logger.Info("rendered file", "enums", enums, "structs", structs, "bytes", len(data))

	return genfs.File{RelativePath: path, Data: data}
}

func (b *builder) structOptions(s *recipe.Struct, rep int) emit.StructOptions {
	head, tail := s.Templates(b.defaults)

	return emit.StructOptions{
		Name:       repeatedName(s.Name, rep, s.Repeats()),
		BaseClass:  s.Base,
		Head:       head,
		Tail:       tail,
		FieldNames: s.FieldNames,
		FieldTypes: s.FieldTypes,
	}
}

func enumOptions(e *recipe.Enum, rep int) emit.EnumOptions {
	return emit.EnumOptions{
		Name:   repeatedName(e.Name, rep, e.Repeats()),
		Values: e.Values,
	}
}

// repeatedName keeps name unique across repeats. Empty names stay empty so
// the emitter draws a fresh one each time.
func repeatedName(name string, rep, total int) string {
	if name == "" || total <= 1 {
		return name
	}

	return name + "_" + strconv.Itoa(rep)
}
