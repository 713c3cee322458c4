// Command zoomiesctl drives the Zoomies client SDK from the terminal:
// browse the feed, clubs, rides and marketplace of the account whose token
// is configured, and run back-office moderation actions.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"

	"github.com/xride-labs/zoomies-web-sub000/internal/admin"
	"github.com/xride-labs/zoomies-web-sub000/internal/app"
	"github.com/xride-labs/zoomies-web-sub000/internal/config"
	"github.com/xride-labs/zoomies-web-sub000/internal/model"
	"github.com/xride-labs/zoomies-web-sub000/internal/store"
)

type feedCmd struct {
	Pages int `name:"pages" default:"1" help:"How many pages to fetch."`
}

func (c *feedCmd) Run(ctx context.Context, a *app.App) error {
	if err := a.Feed.FetchFeed(ctx); err != nil {
		return err
	}
	for p := 1; p < c.Pages && a.Feed.CanFetchMore(); p++ {
		if err := a.Feed.FetchMoreFeed(ctx); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "ID\tTYPE\tAUTHOR\tLIKES\tCOMMENTS\tCONTENT")
	for _, p := range a.Feed.Posts() {
		content := ""
		if p.Content != nil {
			content = *p.Content
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n", p.ID, p.Type, p.AuthorName, p.LikesCount, p.CommentsCount, content)
	}
	return nil
}

type likeCmd struct {
	PostID string `arg:"" name:"post-id"`
}

func (c *likeCmd) Run(ctx context.Context, a *app.App) error {
	if err := a.Feed.FetchFeed(ctx); err != nil {
		return err
	}
	if err := a.Feed.ToggleLike(ctx, c.PostID); err != nil {
		return err
	}
	if post, ok := a.Feed.Post(c.PostID); ok {
		fmt.Printf("post %s liked=%v likes=%d\n", post.ID, post.IsLiked, post.LikesCount)
	}
	return nil
}

type clubsCmd struct {
	Discover bool `name:"discover" help:"List discoverable clubs instead of your own."`
}

func (c *clubsCmd) Run(ctx context.Context, a *app.App) error {
	var clubs []model.Club
	if c.Discover {
		if err := a.Clubs.DiscoverClubs(ctx); err != nil {
			return err
		}
		clubs = a.Clubs.Discovered()
	} else {
		if err := a.Clubs.FetchMyClubs(ctx); err != nil {
			return err
		}
		clubs = a.Clubs.MyClubs()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "ID\tNAME\tLOCATION\tMEMBERS")
	for _, club := range clubs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", club.ID, club.Name, club.Location, club.MemberCount)
	}
	return nil
}

type ridesCmd struct {
	List string `name:"list" default:"upcoming" enum:"upcoming,mine,past"`
}

func (c *ridesCmd) Run(ctx context.Context, a *app.App) error {
	list := store.RideList(c.List)
	if err := a.Rides.FetchList(ctx, list); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tWHEN\tRIDERS")
	for _, ride := range a.Rides.List(list) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			ride.ID, ride.Title, ride.Status, ride.ScheduledAt.Format("2006-01-02 15:04"), ride.ParticipantCount)
	}
	return nil
}

type marketCmd struct {
	Query    string  `name:"query" short:"q"`
	Category string  `name:"category"`
	MaxPrice float64 `name:"max-price"`
}

func (c *marketCmd) Run(ctx context.Context, a *app.App) error {
	filter := model.ListingFilter{Query: c.Query, Category: c.Category, MaxPrice: c.MaxPrice}
	if err := a.Market.Browse(ctx, filter); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "ID\tTITLE\tPRICE\tCATEGORY\tCONDITION\tSOLD")
	for _, l := range a.Market.Listings() {
		fmt.Fprintf(w, "%s\t%s\t%.2f %s\t%s\t%s\t%v\n", l.ID, l.Title, l.Price, l.Currency, l.Category, l.Condition, l.IsSold)
	}
	return nil
}

type profileCmd struct{}

func (c *profileCmd) Run(ctx context.Context, a *app.App) error {
	if err := a.User.FetchProfile(ctx); err != nil {
		return err
	}
	p := a.User.Profile()
	fmt.Printf("%s (@%s)\n", p.Name, p.Username)
	fmt.Printf("rides=%d distance=%.0fkm followers=%d following=%d\n",
		p.Stats.Rides, p.Stats.DistanceKM, p.Stats.Followers, p.Stats.Following)
	for _, b := range p.Bikes {
		primary := ""
		if b.IsPrimary {
			primary = " (primary)"
		}
		fmt.Printf("  %d %s %s%s\n", b.Year, b.Make, b.Model, primary)
	}
	return nil
}

type adminUsersCmd struct {
	Query  string `name:"query" short:"q"`
	Status string `name:"status" default:"all"`
}

func (c *adminUsersCmd) Run(ctx context.Context, a *app.App) error {
	if err := a.Admin.RefreshUsers(ctx); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "ID\tUSERNAME\tROLE\tSTATUS\tVERIFIED")
	for _, u := range a.Admin.Users(admin.UserFilter{Query: c.Query, Status: c.Status}) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\n", u.ID, u.Username, u.Role, u.Status, u.Verified)
	}
	return nil
}

var cli struct {
	Feed       feedCmd       `cmd:"" help:"Show the activity feed."`
	Like       likeCmd       `cmd:"" help:"Toggle a like on a feed post."`
	Clubs      clubsCmd      `cmd:"" help:"List clubs."`
	Rides      ridesCmd      `cmd:"" help:"List rides."`
	Market     marketCmd     `cmd:"" help:"Browse marketplace listings."`
	Profile    profileCmd    `cmd:"" help:"Show the signed-in rider's profile."`
	AdminUsers adminUsersCmd `cmd:"" name:"admin-users" help:"List users in the back office."`
}

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to assemble client: %v", err)
	}
	defer a.Close()

	if err := a.Hydrate(ctx); err != nil {
		log.Printf("[Main] hydrate skipped: %v", err)
	}

	kctx := kong.Parse(&cli, kong.Bind(a), kong.BindTo(ctx, (*context.Context)(nil)))
	if err := kctx.Run(); err != nil {
		log.Fatalf("command failed: %v", err)
	}

	if err := a.Snapshot(ctx); err != nil {
		log.Printf("[Main] snapshot failed: %v", err)
	}
}
