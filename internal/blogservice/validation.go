package blogservice

import (
	"regexp"

	"github.com/sushihentaime/portfolio/internal/common"
)

var (
	SlugRX = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

func validatePost(v *common.Validator, p *Post) {
	v.Check(common.NotBlank(p.Title), "title", "must be provided")
	v.Check(v.CheckStringLength(p.Title, 0, 200), "title", "must not be more than 200 characters long")

	validateSlug(v, p.Slug)

	v.Check(common.NotBlank(p.Excerpt), "excerpt", "must be provided")
	v.Check(v.CheckStringLength(p.Excerpt, 0, 500), "excerpt", "must not be more than 500 characters long")

	v.Check(common.NotBlank(p.Content), "content", "must be provided")

	v.Check(common.NotBlank(p.Author), "author", "must be provided")

	v.Check(len(p.Tags) > 0, "tags", "must contain at least one tag")
	v.Check(len(p.Tags) <= 20, "tags", "must not contain more than 20 tags")
	v.Check(common.NoBlankEntries(p.Tags), "tags", "must not contain blank entries")

	if p.ImageURL != "" {
		v.Check(common.ValidURL(p.ImageURL), "imageUrl", "must be a valid http or https URL")
	}

	v.Check(v.CheckStringLength(p.ReadTime, 0, 50), "readTime", "must not be more than 50 characters long")
}

func validateSlug(v *common.Validator, slug string) {
	v.Check(slug != "", "slug", "must be provided")
	v.Check(v.CheckStringLength(slug, 0, 200), "slug", "must not be more than 200 characters long")
	v.Check(SlugRX.MatchString(slug), "slug", "must only contain lowercase letters, numbers, and single hyphens")
}
