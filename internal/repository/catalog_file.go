package repository

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/logger"
)

const (
	ingredientPrefix = "-"
	fieldSeparator   = ","
	// maxLineLength caps the bytes kept from one catalog line.
	maxLineLength = 64 * 1024
)

var (
	// ErrTooFewFields is reported for a line that lacks required comma fields.
	ErrTooFewFields = errors.New("too few fields")
	// ErrInvalidNumber is reported for a quantity or price that is not a number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrOrphanIngredient is reported for an ingredient line that precedes any recipe name.
	ErrOrphanIngredient = errors.New("ingredient line before any recipe")
	// ErrLineTooLong is reported for a line longer than maxLineLength bytes.
	ErrLineTooLong = errors.New("line too long")

	errNotFinite = errors.New("not a finite number")
)

// FileError is returned when a catalog file cannot be opened or read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("catalog file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ParseWarning describes a skipped line.
type ParseWarning struct {
	Line int
	Text string
	Err  error
}

func (w ParseWarning) String() string {
	return fmt.Sprintf("line %d %q: %v", w.Line, w.Text, w.Err)
}

// ParseReport summarizes one parse of a recipe or price source.
type ParseReport struct {
	Source      string
	Lines       int
	Recipes     int
	Ingredients int
	Prices      int
	Warnings    []ParseWarning
}

func (r *ParseReport) warn(line int, text string, err error) {
	w := ParseWarning{Line: line, Text: text, Err: err}
	r.Warnings = append(r.Warnings, w)
	log := logger.Component("catalog")
	log.Warn().
		Str("source", r.Source).
		Int("line", line).
		Str("text", text).
		Err(err).
		Msg("Skipping malformed catalog line")
}

// ParseRecipes reads recipe definitions from r. Ingredients whose name has a
// price in prices are priced as they are read; prices may be nil.
// Malformed lines are skipped and listed in the report; only read failures
// are returned as errors.
func ParseRecipes(r io.Reader, prices model.PriceLookup) ([]*model.Recipe, ParseReport, error) {
	report := ParseReport{Source: sourceName(r)}
	var (
		recipes []*model.Recipe
		current *model.Recipe
	)

	err := eachLine(r, func(n int, text string, tooLong bool) {
		report.Lines = n
		line := strings.TrimSpace(text)
		if line == "" {
			return
		}

		isIngredient := strings.HasPrefix(line, ingredientPrefix)
		if tooLong {
			report.warn(n, abbreviate(line), ErrLineTooLong)
			if !isIngredient {
				// Following ingredients must not land in the previous recipe.
				current = nil
			}
			return
		}

		if !isIngredient {
			current = model.NewRecipe(line)
			recipes = append(recipes, current)
			return
		}

		if current == nil {
			report.warn(n, line, ErrOrphanIngredient)
			return
		}

		ing, err := parseIngredient(strings.TrimSpace(strings.TrimPrefix(line, ingredientPrefix)))
		if err != nil {
			report.warn(n, line, err)
			return
		}
		if prices != nil {
			if p, ok := prices.Lookup(ing.Name); ok {
				ing = ing.WithUnitPrice(p)
			}
		}
		current.AddIngredient(ing)
		report.Ingredients++
	})
	if err != nil {
		return nil, report, err
	}

	report.Recipes = len(recipes)
	return recipes, report, nil
}

func parseIngredient(s string) (model.Ingredient, error) {
	parts := strings.Split(s, fieldSeparator)
	if len(parts) < 3 {
		return model.Ingredient{}, fmt.Errorf("%w: want name, quantity, unit", ErrTooFewFields)
	}

	name := strings.TrimSpace(parts[0])
	raw := strings.TrimSpace(parts[1])
	quantity, err := parseNumber(raw)
	if err != nil {
		return model.Ingredient{}, fmt.Errorf("%w: quantity %q", ErrInvalidNumber, raw)
	}

	return model.NewIngredient(name, quantity, strings.TrimSpace(parts[2]))
}

// eachLine calls fn with every line of r and its 1-based number. A line
// longer than maxLineLength is cut to that length and flagged as tooLong; the
// rest of it is discarded. Only read failures are returned.
func eachLine(r io.Reader, fn func(n int, line string, tooLong bool)) error {
	br := bufio.NewReader(r)
	var (
		buf     []byte
		tooLong bool
		n       int
	)
	for {
		chunk, more, err := br.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if room := maxLineLength - len(buf); len(chunk) > room {
			buf = append(buf, chunk[:room]...)
			tooLong = true
		} else {
			buf = append(buf, chunk...)
		}
		if more {
			continue
		}

		n++
		fn(n, string(buf), tooLong)
		buf, tooLong = buf[:0], false
	}
}

// abbreviate shortens an over-long line for warnings and logs.
func abbreviate(line string) string {
	const keep = 40
	if len(line) <= keep {
		return line
	}
	return line[:keep] + "..."
}

// parseNumber parses a finite decimal number. NaN and infinities are
// accepted by strconv but never valid as a quantity or price.
func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotFinite
	}
	return f, nil
}

// ParsePrices reads "name, price" lines from r into registry.
// Extra fields are ignored; malformed lines are skipped and reported.
func ParsePrices(r io.Reader, registry *PriceRegistry) (ParseReport, error) {
	report := ParseReport{Source: sourceName(r)}

	err := eachLine(r, func(n int, text string, tooLong bool) {
		report.Lines = n
		line := strings.TrimSpace(text)
		if line == "" {
			return
		}
		if tooLong {
			report.warn(n, abbreviate(line), ErrLineTooLong)
			return
		}

		parts := strings.Split(line, fieldSeparator)
		if len(parts) < 2 {
			report.warn(n, line, fmt.Errorf("%w: want name, price", ErrTooFewFields))
			return
		}

		name := strings.TrimSpace(parts[0])
		raw := strings.TrimSpace(parts[1])
		price, err := parseNumber(raw)
		if err != nil {
			report.warn(n, line, fmt.Errorf("%w: price %q", ErrInvalidNumber, raw))
			return
		}
		if price < 0 {
			report.warn(n, line, model.ErrInvalidPrice)
			return
		}

		registry.Register(name, price)
		report.Prices++
	})
	if err != nil {
		return report, err
	}
	return report, nil
}

// LoadRecipes parses the recipe file at path.
func LoadRecipes(path string, prices model.PriceLookup) ([]*model.Recipe, ParseReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ParseReport{Source: path}, &FileError{Path: path, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	recipes, report, err := ParseRecipes(f, prices)
	if err != nil {
		return nil, report, &FileError{Path: path, Err: err}
	}
	return recipes, report, nil
}

// LoadPrices parses the price file at path into registry.
func LoadPrices(path string, registry *PriceRegistry) (ParseReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseReport{Source: path}, &FileError{Path: path, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	report, err := ParsePrices(f, registry)
	if err != nil {
		return report, &FileError{Path: path, Err: err}
	}
	return report, nil
}

func sourceName(r io.Reader) string {
	if f, ok := r.(*os.File); ok {
		return f.Name()
	}
	return "reader"
}
