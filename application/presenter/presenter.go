// Package presenter turns loaded entities into the response shapes the mobile clients consume.
package presenter

import (
	"strings"

	"github.com/muhammadheryan/heart2help/model"
	"github.com/muhammadheryan/heart2help/thirdparty/cloudinary"
	"github.com/muhammadheryan/heart2help/utils/geo"
)

const dateLayout = "2006-01-02"

type Presenter struct {
	files cloudinary.FileStore
}

func New(files cloudinary.FileStore) *Presenter {
	return &Presenter{files: files}
}

func (p *Presenter) url(path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	u := p.files.URLFor(*path)
	if u == "" {
		return nil
	}
	return &u
}

func (p *Presenter) Category(c model.CategoryEntity) model.CategoryResponse {
	return model.CategoryResponse{
		ID:       c.ID,
		Title:    c.Title,
		Icon:     p.url(c.Icon),
		IsActive: boolInt(c.IsActive),
	}
}

func (p *Presenter) Categories(cs []model.CategoryEntity) []model.CategoryResponse {
	out := make([]model.CategoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, p.Category(c))
	}
	return out
}

// UserSummary resolves the stored profile picture path to a delivery URL.
func (p *Presenter) UserSummary(u model.UserSummary) model.UserSummary {
	u.ProfilePicture = p.url(u.ProfilePicture)
	return u
}

func (p *Presenter) Post(d model.PostDetail) model.PostResponse {
	post := d.Post
	res := model.PostResponse{
		ID:                 post.ID,
		Title:              post.Title,
		Details:            post.Details,
		Status:             string(post.Status),
		FulfilledBy:        string(post.FulfilledBy),
		FulfilledAt:        post.FulfilledAt,
		ComeToYou:          boolInt(post.ComeToYou),
		RequireMorePeoples: boolInt(post.RequireMorePeoples),
		Latitude:           post.Latitude,
		Longitude:          post.Longitude,
		Location:           post.Location,
		Distance:           geo.FormatDistance(post.Distance),
		City:               post.City,
		Country:            post.Country,
		CreatedBy:          post.CreatedBy,
		HelpBy:             post.HelpBy,
		Categories:         p.Categories(d.Categories),
		Images:             make([]model.PostImageView, 0, len(d.Images)),
		IsReported:         boolInt(d.Reported),
		CreatedAt:          post.CreatedAt,
		UpdatedAt:          post.UpdatedAt,
	}

	for _, img := range d.Images {
		url := img.URL
		res.Images = append(res.Images, model.PostImageView{
			ID:       img.ID,
			PostID:   img.PostID,
			FileName: img.FileName,
			URL:      p.url(&url),
		})
	}

	titles := make([]string, 0, len(d.Tags))
	for _, t := range d.Tags {
		titles = append(titles, t.Title)
	}
	res.Tags = strings.Join(titles, ",")

	if d.Author != nil {
		author := p.UserSummary(*d.Author)
		res.User = &author
	}

	if d.Helpers != nil {
		res.PostHelpers = make([]model.PostHelperView, 0, len(d.Helpers))
		for _, h := range d.Helpers {
			h.Helper = p.UserSummary(h.Helper)
			res.PostHelpers = append(res.PostHelpers, h)
		}
	}
	return res
}

func (p *Presenter) Posts(ds []model.PostDetail) []model.PostResponse {
	out := make([]model.PostResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, p.Post(d))
	}
	return out
}

// User is the authenticated user's own view.
func (p *Presenter) User(u *model.UserEntity) model.UserResponse {
	res := model.UserResponse{
		ID:                       u.ID,
		FirstName:                u.FirstName,
		LastName:                 u.LastName,
		FullName:                 u.FullName(),
		Email:                    u.Email,
		Status:                   string(u.Status),
		ProfilePicture:           p.url(u.ProfilePicture),
		PhoneNumber:              u.PhoneNumber,
		IsPhoneVerified:          u.IsPhoneVerified,
		PhoneVerifiedAt:          u.PhoneVerifiedAt,
		IsVerified:               u.IsVerified,
		VerifiedAt:               u.VerifiedAt,
		Type:                     string(u.Type),
		Latitude:                 u.Latitude,
		Longitude:                u.Longitude,
		PushNotification:         u.PushNotification,
		SMSNotification:          u.SMSNotification,
		HelpsPushNotification:    u.HelpsPushNotification,
		HelpsSMSNotification:     u.HelpsSMSNotification,
		RequestsPushNotification: u.RequestsPushNotification,
		RequestsSMSNotification:  u.RequestsSMSNotification,
		CreatedAt:                u.CreatedAt.Format(dateLayout),
	}
	if u.DOB != nil {
		dob := u.DOB.Format(dateLayout)
		res.DOB = &dob
	}
	return res
}

func (p *Presenter) Profile(u *model.UserProfileEntity) model.ProfileUser {
	return model.ProfileUser{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		FullName:       u.FirstName + " " + u.LastName,
		Email:          u.Email,
		ProfilePicture: p.url(u.ProfilePicture),
		IsVerified:     u.IsVerified,
		TotalHelps:     u.TotalHelps,
		ThumbsUp:       u.ThumbsUp,
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
