package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Config is the record handed to engines with every snapshot.
type Config struct {
	// Margin applies to every side, as a CSS length ("10mm", "0.5in").
	// A bare number is read as millimetres.
	Margin      string       `json:"margin" yaml:"margin" validate:"required"`
	Filename    string       `json:"filename" yaml:"filename" validate:"required"`
	Format      string       `json:"format" yaml:"format" validate:"required"`
	Orientation string       `json:"orientation" yaml:"orientation" validate:"oneof=portrait landscape"`
	Scale       float64      `json:"scale" yaml:"scale" validate:"gt=0,lte=4"`
	Image       ImageOptions `json:"image" yaml:"image"`
}

// ImageOptions describe how embedded raster content is encoded.
type ImageOptions struct {
	Type    string  `json:"type" yaml:"type" validate:"oneof=jpeg png webp"`
	Quality float64 `json:"quality" yaml:"quality" validate:"gt=0,lte=1"`
}

// DefaultConfig is a single A4 portrait page with 10mm margins saved as
// resume.pdf.
func DefaultConfig() Config {
	return Config{
		Margin:      "10mm",
		Filename:    "resume.pdf",
		Format:      "A4",
		Orientation: "portrait",
		Scale:       2,
		Image: ImageOptions{
			Type:    "jpeg",
			Quality: 0.98,
		},
	}
}

// Landscape reports whether the page is rotated.
func (c Config) Landscape() bool {
	return strings.EqualFold(c.Orientation, "landscape")
}

// PageSize returns the paper size in inches, honouring orientation.
func (c Config) PageSize() (width, height float64, err error) {
	size, ok := pageSizesInches[strings.ToUpper(strings.TrimSpace(c.Format))]
	if !ok {
		return 0, 0, NewError(KindValidation, fmt.Sprintf("unsupported page format: %s", c.Format), nil)
	}
	if c.Landscape() {
		return size.height, size.width, nil
	}
	return size.width, size.height, nil
}

// MarginInches converts the margin to inches.
func (c Config) MarginInches() (float64, error) {
	return parseLengthInches(c.Margin)
}

var configValidator = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

// Validate checks the record before an export starts.
func (c Config) Validate() error {
	if err := configValidator().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return NewError(KindValidation, fmt.Sprintf("invalid export config: %s failed %q", first.Namespace(), first.Tag()), err)
		}
		return NewError(KindValidation, "invalid export config", err)
	}
	if _, _, err := c.PageSize(); err != nil {
		return err
	}
	if _, err := c.MarginInches(); err != nil {
		return err
	}
	if base := filepath.Base(c.Filename); base != c.Filename || base == "." || base == ".." {
		return NewError(KindValidation, fmt.Sprintf("export filename must not contain a directory: %s", c.Filename), nil)
	}
	return nil
}

var pageSizesInches = map[string]struct {
	width  float64
	height float64
}{
	"A3":     {width: 11.69, height: 16.54},
	"A4":     {width: 8.27, height: 11.69},
	"A5":     {width: 5.83, height: 8.27},
	"LETTER": {width: 8.5, height: 11},
	"LEGAL":  {width: 8.5, height: 14},
}

var lengthPattern = regexp.MustCompile(`^\s*([0-9]+(?:\.[0-9]+)?)\s*([a-zA-Z]*)\s*$`)

func parseLengthInches(value string) (float64, error) {
	matches := lengthPattern.FindStringSubmatch(value)
	if len(matches) != 3 {
		return 0, NewError(KindValidation, fmt.Sprintf("invalid length: %s", value), nil)
	}

	amount, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, NewError(KindValidation, fmt.Sprintf("invalid length: %s", value), err)
	}

	switch unit := strings.ToLower(matches[2]); unit {
	case "", "mm":
		return amount / 25.4, nil
	case "cm":
		return amount / 2.54, nil
	case "in":
		return amount, nil
	case "pt":
		return amount / 72.0, nil
	case "px":
		return amount / 96.0, nil
	default:
		return 0, NewError(KindValidation, fmt.Sprintf("unsupported length unit: %s", unit), nil)
	}
}
