package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/getwaylabs/getway/pkg/model"
)

func newPostsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "Read and write the community feed",
	}
	cmd.AddCommand(
		newPostsListCmd(app),
		newPostsCreateCmd(app),
		newPostsLikeCmd(app),
		newPostsDeleteCmd(app),
	)
	return cmd
}

func newPostsListCmd(app *App) *cobra.Command {
	opts := model.DefaultListOptions()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the latest posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Posts.List(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("No posts yet.")
				return nil
			}
			for _, p := range items {
				fmt.Printf("%s  %s (%s)\n", p.ID, p.Author, humanize.Time(p.CreatedAt))
				fmt.Printf("    %s\n", p.Content)
				if p.Likes > 0 {
					fmt.Printf("    %d likes\n", p.Likes)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", opts.Limit, "Posts per page")
	cmd.Flags().IntVar(&opts.Offset, "offset", opts.Offset, "Page offset")
	return cmd
}

func newPostsCreateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create <content>",
		Short: "Publish a post",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Posts.Create(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Printf("Posted %s\n", p.ID)
			return nil
		},
	}
}

func newPostsLikeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "like <post-id>",
		Short: "Like a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			likes, err := app.Posts.Like(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Liked. %d likes now.\n", likes)
			return nil
		},
	}
}

func newPostsDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <post-id>",
		Short: "Delete one of your posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Posts.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}
