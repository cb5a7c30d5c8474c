package uigen

import (
	"os"
	"strings"
)

// Analyze runs classification, parent resolution, layout binding and
// parameter expansion over one scanned struct, producing the unit the
// generator serializes.
func Analyze(s *ScannedStruct, pkg string) (*Unit, error) {
	errs := NewErrorList()
	unit := analyze(s, pkg, errs)
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return unit, nil
}

func analyze(s *ScannedStruct, pkg string, errs *ErrorList) *Unit {
	unit := buildUnit(s, pkg, errs)
	if errs.HasErrors() {
		return unit
	}

	resolveParents(unit, errs)
	if errs.HasErrors() {
		return unit
	}

	bindLayouts(unit, errs)
	resolvePartialParents(unit, errs)
	expandParams(unit, errs)
	return unit
}

// expandParams applies flag expansion and enum qualification. After
// this pass parameter lists are final and emission is mechanical.
func expandParams(unit *Unit, errs *ErrorList) {
	for _, c := range unit.Controls {
		if i := c.Params.Index("flags"); i >= 0 {
			c.Params[i].Expr = expandFlags(c.Type, c.Params[i].Expr, c.Pos, errs)
		}
		qualifyEnums(c.Params)
		if c.Placement != nil {
			qualifyEnums(c.Placement.Params)
		}
	}
	for _, l := range unit.Layouts {
		qualifyEnums(l.Params)
	}
}

// GenerateSource runs the whole pipeline over one file's source and
// returns the generated companion file. Output is nil when the source
// declares no annotated structs.
func GenerateSource(filename string, src []byte) ([]byte, error) {
	pkg, structs, err := ScanSource(filename, src)
	if err != nil {
		return nil, err
	}
	if len(structs) == 0 {
		return nil, nil
	}

	errs := NewErrorList()
	units := make([]*Unit, 0, len(structs))
	for _, s := range structs {
		serrs := NewErrorList()
		unit := analyze(s, pkg, serrs)
		if serrs.HasErrors() {
			for _, e := range serrs.Errors() {
				errs.Add(e)
			}
			continue
		}
		units = append(units, unit)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}

	return NewGenerator().Generate(pkg, filename, units)
}

// GenerateFile is GenerateSource over a file on disk.
func GenerateFile(inputPath string) ([]byte, error) {
	src, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, err
	}
	return GenerateSource(inputPath, src)
}

// OutputPath maps an input file to its generated companion:
// form.go becomes form_ui.go.
func OutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, ".go") + "_ui.go"
}

// IsGenerated reports whether path names a generated companion file.
func IsGenerated(path string) bool {
	return strings.HasSuffix(path, "_ui.go")
}
