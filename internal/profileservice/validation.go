package profileservice

import (
	"fmt"

	"github.com/sushihentaime/portfolio/internal/common"
)

func validateProfile(v *common.Validator, p *Profile) {
	v.Check(common.NotBlank(p.Name), "name", "must be provided")
	v.Check(v.CheckStringLength(p.Name, 0, 100), "name", "must not be more than 100 characters long")

	v.Check(common.NotBlank(p.Title), "title", "must be provided")
	v.Check(v.CheckStringLength(p.Title, 0, 200), "title", "must not be more than 200 characters long")

	v.Check(common.NotBlank(p.Bio), "bio", "must be provided")
	v.Check(v.CheckStringLength(p.Bio, 0, 5000), "bio", "must not be more than 5000 characters long")

	validateEmail(v, p.Email)

	v.Check(v.CheckStringLength(p.Phone, 0, 50), "phone", "must not be more than 50 characters long")
	v.Check(v.CheckStringLength(p.Location, 0, 200), "location", "must not be more than 200 characters long")

	if p.ProfileImage != "" {
		v.Check(common.ValidURL(p.ProfileImage), "profileImage", "must be a valid http or https URL")
	}

	v.Check(len(p.Skills) <= 100, "skills", "must not contain more than 100 skills")
	for i, s := range p.Skills {
		v.Check(common.NotBlank(s.Name), fmt.Sprintf("skills[%d].name", i), "must be provided")
		v.Check(common.PermittedValue(s.Level, LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert),
			fmt.Sprintf("skills[%d].level", i), "must be one of Beginner, Intermediate, Advanced, Expert")
	}

	validateSocialLink(v, "socialLinks.linkedin", p.SocialLinks.LinkedIn)
	validateSocialLink(v, "socialLinks.github", p.SocialLinks.GitHub)
	validateSocialLink(v, "socialLinks.twitter", p.SocialLinks.Twitter)
	validateSocialLink(v, "socialLinks.portfolio", p.SocialLinks.Portfolio)
}

func validateEmail(v *common.Validator, email string) {
	v.Check(email != "", "email", "must be provided")
	v.Check(common.EmailRX.MatchString(email), "email", "must be a valid email address")
}

func validateSocialLink(v *common.Validator, field, link string) {
	if link != "" {
		v.Check(common.ValidURL(link), field, "must be a valid http or https URL")
	}
}
