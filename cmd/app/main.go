package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mayasahsra/write-verse-online/internal/app"
	"github.com/mayasahsra/write-verse-online/internal/render"
	"github.com/mayasahsra/write-verse-online/internal/seed"
	"github.com/mayasahsra/write-verse-online/internal/service"
)

func main() {
	_ = godotenv.Load()

	application, err := app.Initialize()
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}
	defer application.Close()

	if err := newRootCmd(application).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app.Application) *cobra.Command {
	root := &cobra.Command{
		Use:          "writeverse",
		Short:        "WriteVerse, a local-first blogging client",
		SilenceUsage: true,
	}
	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newPublishCmd(a),
		newSearchCmd(a),
		newViewCmd(a),
		newPreviewCmd(a),
		newTopicsCmd(),
	)
	return root
}

func newLoginCmd(a *app.Application) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with any non-empty username and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Auth.Login(username, password); err != nil {
				return err
			}
			if err := a.Storage.LogActivity("login", ""); err != nil {
				log.Printf("activity log failed: %v", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "display name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (any non-empty value)")
	return cmd
}

func newLogoutCmd(a *app.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Auth.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active session identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			user := a.Auth.Current()
			if user == "" {
				return errors.New("not signed in")
			}
			fmt.Fprintln(cmd.OutOrStdout(), user)
			return nil
		},
	}
}

func newPublishCmd(a *app.Application) *cobra.Command {
	var title, content, contentFile, coverImage, tags string
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a new blog post",
		RunE: func(cmd *cobra.Command, args []string) error {
			author := a.Auth.Current()
			if author == "" {
				return errors.New("not signed in; run `writeverse login` first")
			}
			body := content
			if contentFile != "" {
				b, err := os.ReadFile(contentFile)
				if err != nil {
					return fmt.Errorf("read content file: %w", err)
				}
				body = string(b)
			}
			post, err := a.Posts.Publish(service.PublishInput{
				Title:      title,
				Content:    body,
				CoverImage: coverImage,
				Tags:       splitTags(tags),
				Author:     author,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Published %q as post %s (%s)\n", post.Title, post.ID, post.ReadTime)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "post title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "post body")
	cmd.Flags().StringVarP(&contentFile, "content-file", "f", "", "read the post body from a file")
	cmd.Flags().StringVar(&coverImage, "cover-image", "", "cover image URL (optional)")
	cmd.Flags().StringVar(&tags, "tags", "", "comma separated tags")
	return cmd
}

func newSearchCmd(a *app.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search posts by title, content, or tag",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			results := a.Posts.SearchAll(query)
			out := cmd.OutOrStdout()
			if query != "" {
				word := "results"
				if len(results) == 1 {
					word = "result"
				}
				fmt.Fprintf(out, "%d %s found for %q\n\n", len(results), word, query)
			}
			if len(results) == 0 {
				fmt.Fprintln(out, "No results found. Try different keywords.")
				return nil
			}
			for _, p := range results {
				fmt.Fprintln(out, renderCard(p))
			}
			return nil
		},
	}
}

func newViewCmd(a *app.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Read a single post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			post, err := a.Posts.Resolve(cmd.Context(), args[0])
			if errors.Is(err, service.ErrNotFound) {
				return fmt.Errorf("blog post %q not found; it doesn't exist or has been removed", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderPost(post))
			return nil
		},
	}
}

func newPreviewCmd(a *app.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <file>",
		Short: "Render a draft body the way view will display it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read draft: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderBlocks(render.Render(string(b))))
			return nil
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List trending topics",
		Run: func(cmd *cobra.Command, args []string) {
			for _, t := range seed.Topics() {
				fmt.Fprintln(cmd.OutOrStdout(), topicStyle.Render(t))
			}
		},
	}
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
