package buildspec

import (
	"regexp"
	"strings"

	"github.com/py-app-standalone/cli/internal/locale"
)

// Requirement is a single package requirement the way pip accepts it on the
// command line, eg. "requests", "cowsay-python==1.0.2" or "uvicorn[standard]>=0.29".
// We only split it far enough to validate it and report on it; resolution is
// entirely the package manager's business.
type Requirement struct {
	Name       string
	Extras     []string
	Constraint string
}

// nameRx follows the PEP 503 normalized name rules, leniently: pip will take
// care of canonicalizing separators.
var nameRx = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)

var constraintRx = regexp.MustCompile(`^(===|==|~=|!=|>=|<=|>|<)[A-Za-z0-9.*+!_-]+(\s*,\s*(===|==|~=|!=|>=|<=|>|<)[A-Za-z0-9.*+!_-]+)*$`)

// ParseRequirement validates and splits a single package argument
func ParseRequirement(arg string) (Requirement, error) {
	spec := strings.TrimSpace(arg)
	if spec == "" {
		return Requirement{}, locale.NewInputError("err_package_spec_invalid", "", arg)
	}

	req := Requirement{}

	// Split off the version constraint, if any
	if idx := strings.IndexAny(spec, "=<>!~"); idx != -1 {
		req.Constraint = strings.TrimSpace(spec[idx:])
		spec = strings.TrimSpace(spec[:idx])
		if !constraintRx.MatchString(req.Constraint) {
			return Requirement{}, locale.NewInputError("err_package_spec_invalid", "", arg)
		}
	}

	// Split off extras, eg. name[extra1,extra2]
	if idx := strings.IndexByte(spec, '['); idx != -1 {
		if !strings.HasSuffix(spec, "]") {
			return Requirement{}, locale.NewInputError("err_package_spec_invalid", "", arg)
		}
		for _, extra := range strings.Split(spec[idx+1:len(spec)-1], ",") {
			extra = strings.TrimSpace(extra)
			if extra == "" || !nameRx.MatchString(extra) {
				return Requirement{}, locale.NewInputError("err_package_spec_invalid", "", arg)
			}
			req.Extras = append(req.Extras, extra)
		}
		spec = spec[:idx]
	}

	if !nameRx.MatchString(spec) {
		return Requirement{}, locale.NewInputError("err_package_spec_invalid", "", arg)
	}
	req.Name = spec

	return req, nil
}

// String reassembles the requirement the way pip wants it
func (r Requirement) String() string {
	out := r.Name
	if len(r.Extras) > 0 {
		out += "[" + strings.Join(r.Extras, ",") + "]"
	}
	return out + r.Constraint
}
