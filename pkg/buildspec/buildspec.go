// Package buildspec models what a bundle build should contain: the packages
// to install, the Python version to install them on, and where the bundle
// goes. It can be populated from command line arguments or from a YAML file.
package buildspec

import (
	"regexp"

	goversion "github.com/hashicorp/go-version"
	"github.com/thoas/go-funk"
	"gopkg.in/yaml.v2"

	"github.com/py-app-standalone/cli/internal/fileutils"
	"github.com/py-app-standalone/cli/internal/locale"
)

// BuildSpec is a validated build request
type BuildSpec struct {
	Requirements  []Requirement
	PythonVersion string
	Target        string
}

// specFile mirrors the YAML layout accepted by the --spec-file flag
type specFile struct {
	Python   string   `yaml:"python"`
	Target   string   `yaml:"target"`
	Packages []string `yaml:"packages"`
}

// pythonVersionRx constrains --python to plain release versions, which is
// what the package manager's install command accepts.
var pythonVersionRx = regexp.MustCompile(`^\d+(\.\d+){0,2}$`)

// New validates the given package arguments into a BuildSpec
func New(packages []string, pythonVersion, target string) (*BuildSpec, error) {
	if len(packages) == 0 {
		return nil, locale.NewInputError("err_package_spec_empty", "")
	}

	if err := ValidatePythonVersion(pythonVersion); err != nil {
		return nil, err
	}

	spec := &BuildSpec{
		PythonVersion: pythonVersion,
		Target:        target,
	}

	seen := []string{}
	for _, pkg := range packages {
		req, err := ParseRequirement(pkg)
		if err != nil {
			return nil, err
		}
		if funk.Contains(seen, req.Name) {
			continue
		}
		seen = append(seen, req.Name)
		spec.Requirements = append(spec.Requirements, req)
	}

	return spec, nil
}

// FileValues are the raw, unvalidated values read from a spec file
type FileValues struct {
	Python   string
	Target   string
	Packages []string
}

// ReadFile reads the raw values from a YAML spec file
func ReadFile(path string) (*FileValues, error) {
	contents, err := fileutils.ReadFile(path)
	if err != nil {
		return nil, locale.WrapInputError(err, "err_specfile_read", "", path)
	}

	sf := specFile{}
	if err := yaml.Unmarshal(contents, &sf); err != nil {
		return nil, locale.WrapInputError(err, "err_specfile_parse", "", path)
	}

	return &FileValues{Python: sf.Python, Target: sf.Target, Packages: sf.Packages}, nil
}

// FromFile reads a BuildSpec from a YAML spec file. Values set in the file
// can still be overridden by the caller before validation.
func FromFile(path string, pythonVersion, target string) (*BuildSpec, error) {
	fv, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Flags beat file values
	if pythonVersion == "" {
		pythonVersion = fv.Python
	}
	if target == "" {
		target = fv.Target
	}

	return New(fv.Packages, pythonVersion, target)
}

// ValidatePythonVersion checks that the version is a plain release version
// the package manager can install, eg. "3.13" or "3.12.7".
func ValidatePythonVersion(version string) error {
	if !pythonVersionRx.MatchString(version) {
		return locale.NewInputError("err_python_version_invalid", "", version)
	}
	if _, err := goversion.NewVersion(version); err != nil {
		return locale.WrapInputError(err, "err_python_version_invalid", "", version)
	}
	return nil
}

// PackageArgs returns the requirements as pip command line arguments
func (b *BuildSpec) PackageArgs() []string {
	args := make([]string, 0, len(b.Requirements))
	for _, req := range b.Requirements {
		args = append(args, req.String())
	}
	return args
}
