package projectservice

import (
	"github.com/sushihentaime/portfolio/internal/common"
)

func validateProject(v *common.Validator, p *Project) {
	v.Check(common.NotBlank(p.Title), "title", "must be provided")
	v.Check(v.CheckStringLength(p.Title, 0, 200), "title", "must not be more than 200 characters long")

	v.Check(common.NotBlank(p.Description), "description", "must be provided")
	v.Check(v.CheckStringLength(p.Description, 0, 5000), "description", "must not be more than 5000 characters long")

	v.Check(len(p.Technologies) > 0, "technologies", "must contain at least one entry")
	v.Check(len(p.Technologies) <= 30, "technologies", "must not contain more than 30 entries")
	v.Check(common.NoBlankEntries(p.Technologies), "technologies", "must not contain blank entries")

	validateOptionalURL(v, p.GithubURL, "githubUrl")
	validateOptionalURL(v, p.LiveURL, "liveUrl")
	validateOptionalURL(v, p.ImageURL, "imageUrl")
}

func validateOptionalURL(v *common.Validator, value, field string) {
	if value == "" {
		return
	}
	v.Check(common.ValidURL(value), field, "must be a valid http or https URL")
}
