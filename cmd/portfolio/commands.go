package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/folio-labs/portfolio/internal/client"
)

func commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "projects",
			Usage: "List projects, optionally filtered by category",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "category",
					Aliases: []string{"c"},
					Usage:   "One of " + strings.Join(client.Categories, ", "),
					Value:   client.CategoryAll,
				},
			},
			Action: projectsAction,
		},
		{
			Name:  "contact",
			Usage: "Send a message through the contact form",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "name", Usage: "Your name", Required: true},
				&cli.StringFlag{Name: "email", Usage: "Where to reply", Required: true},
				&cli.StringFlag{Name: "message", Aliases: []string{"m"}, Usage: "Message body", Required: true},
			},
			Action: contactAction,
		},
	}
}

func projectsAction(ctx context.Context, cmd *cli.Command) error {
	view := client.NewProjectsView(client.NewAPIService(cmd.String("api"), nil))
	view.SetCategory(cmd.String("category"))
	// A failed load renders as an empty gallery, like the browser view.
	_ = view.Load(ctx)

	fmt.Fprintln(cmd.Root().Writer, client.RenderCategoryBar(view.Category()))
	fmt.Fprintln(cmd.Root().Writer, client.RenderProjects(view.Visible()))
	return nil
}

func contactAction(ctx context.Context, cmd *cli.Command) error {
	view := client.NewContactView(client.NewAPIService(cmd.String("api"), nil), client.DefaultResetAfter)
	view.SetName(cmd.String("name"))
	view.SetEmail(cmd.String("email"))
	view.SetMessage(cmd.String("message"))

	err := view.Submit(ctx)
	fmt.Fprintln(cmd.Root().Writer, client.RenderContactStatus(view.Status()))
	return err
}
