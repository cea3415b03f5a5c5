package version

import (
	"github.com/py-app-standalone/cli/internal/constants"
	"github.com/py-app-standalone/cli/internal/output"
	"github.com/py-app-standalone/cli/internal/primer"
)

type primeable interface {
	primer.Outputer
}

type Version struct {
	out output.Outputer
}

func New(prime primeable) *Version {
	return &Version{out: prime.Output()}
}

type versionOutput struct {
	Version  string `json:"version" locale:"version_field_version"`
	Branch   string `json:"branch" locale:"version_field_branch"`
	Revision string `json:"revision" locale:"version_field_revision"`
	Date     string `json:"date" locale:"version_field_date"`
}

func (v *Version) Run() error {
	v.out.Print(versionOutput{
		Version:  constants.Version,
		Branch:   constants.BranchName,
		Revision: constants.RevisionHash,
		Date:     constants.Date,
	})
	return nil
}
