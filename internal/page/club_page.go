package page

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/xride-labs/zoomies-web-sub000/internal/api"
	"github.com/xride-labs/zoomies-web-sub000/internal/model"
)

// ClubPageData is everything the club detail page renders.
type ClubPageData struct {
	Club    *model.ClubDetails
	Members []model.ClubMember
}

// ClubPage loads the club detail view: the club record and its member list
// are independent resources fetched concurrently.
type ClubPage struct {
	Loader[ClubPageData]
	api api.ClubsAPI
}

func NewClubPage(a api.ClubsAPI) *ClubPage {
	return &ClubPage{api: a}
}

// Load fetches both resources for clubID.
func (p *ClubPage) Load(ctx context.Context, clubID string) error {
	return p.Loader.Load(ctx, clubID, func(ctx context.Context) (ClubPageData, error) {
		var data ClubPageData
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			club, err := p.api.Get(ctx, clubID)
			if err != nil {
				return err
			}
			data.Club = club
			return nil
		})
		g.Go(func() error {
			members, err := p.api.Members(ctx, clubID)
			if err != nil {
				return err
			}
			data.Members = members
			return nil
		})
		if err := g.Wait(); err != nil {
			return ClubPageData{}, err
		}
		return data, nil
	})
}
