// AngelaMos | 2026
// dto.go

package content

const (
	DefaultListLimit   = 10
	DefaultLatestLimit = 5
	MaxListLimit       = 100
)

type ListParams struct {
	Category *string
	Limit    *int
	Offset   *int
}

type CreateArticleInput struct {
	Title            string   `validate:"required,max=200"`
	Excerpt          string   `validate:"required,max=500"`
	Content          string   `validate:"required"`
	Category         string   `validate:"required,oneof=NEWS MATCH_REPORT INTERVIEW FEATURE PRESS_RELEASE ANNOUNCEMENT PRESEASON COACH CLUB_UPDATE COMMUNITY_OUTREACH PLAYER_PROFILE"`
	FeaturedImageURL *string  `validate:"omitempty,url"`
	Tags             []string `validate:"omitempty,dive,required,max=50"`
}

type UpdateArticleInput struct {
	Title            *string   `validate:"omitempty,min=1,max=200"`
	Excerpt          *string   `validate:"omitempty,min=1,max=500"`
	Content          *string   `validate:"omitempty,min=1"`
	Category         *string   `validate:"omitempty,oneof=NEWS MATCH_REPORT INTERVIEW FEATURE PRESS_RELEASE ANNOUNCEMENT PRESEASON COACH CLUB_UPDATE COMMUNITY_OUTREACH PLAYER_PROFILE"`
	FeaturedImageURL *string   `validate:"omitempty,url"`
	Tags             *[]string `validate:"omitempty,dive,required,max=50"`
	Status           *string   `validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
}
