package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/airesearchhub/site/metal/cli/posts"
	"github.com/airesearchhub/site/metal/cli/staticgen"
	"github.com/airesearchhub/site/metal/env"
	"github.com/airesearchhub/site/metal/kernel"
	"github.com/airesearchhub/site/pkg/cli"
	"github.com/airesearchhub/site/pkg/llogs"
	"github.com/airesearchhub/site/pkg/markdown"
	"github.com/airesearchhub/site/pkg/portal"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, posts.ErrPostNotFound) {
			cli.Errorln(err.Error())
		}

		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envPath string
	var noColour bool
	var environment *env.Environment

	root := &cobra.Command{
		Use:           "site-cli",
		Short:         "Inspect and build the research blog content",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColour {
				cli.SetColours(false)
			}

			secrets, err := kernel.Ignite(envPath, portal.GetDefaultValidator())

			if err != nil {
				return err
			}

			environment = secrets

			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: llogs.ParseLevel(environment.Logs.Level),
			})))

			return nil
		},
	}

	root.PersistentFlags().StringVar(&envPath, "env", "./.env", "environment file to load")
	root.PersistentFlags().BoolVar(&noColour, "no-colour", false, "disable coloured output")

	root.AddCommand(
		newBuildCommand(&environment),
		newPostsCommand(&environment),
		newPostCommand(&environment),
	)

	return root
}

func newBuildCommand(environment **env.Environment) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the blog API responses as static JSON files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secrets := *environment

			if strings.TrimSpace(outputDir) == "" {
				outputDir = secrets.Static.OutputDir
			}

			routes, err := kernel.StaticRoutes(kernel.MakePosts(secrets), markdown.NewRenderer())

			if err != nil {
				return err
			}

			files, err := staticgen.NewGenerator(outputDir).Generate(routes)

			if err != nil {
				return fmt.Errorf("static build failed: %w", err)
			}

			for _, file := range files {
				cli.Println(cmd.OutOrStdout(), cli.GrayColour, "  "+file)
			}

			cli.Println(cmd.OutOrStdout(), cli.GreenColour, fmt.Sprintf("Wrote %d file(s) to %s.", len(files), outputDir))

			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "out", "", "output directory (defaults to ENV_STATIC_OUTPUT_DIR)")

	return cmd
}

func newPostsCommand(environment **env.Environment) *cobra.Command {
	return &cobra.Command{
		Use:   "posts",
		Short: "List the posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := posts.MakeHandler(kernel.MakePosts(*environment), cmd.OutOrStdout())

			return handler.List()
		},
	}
}

func newPostCommand(environment **env.Environment) *cobra.Command {
	return &cobra.Command{
		Use:   "post <slug>",
		Short: "Show the metadata of a single post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := posts.MakeHandler(kernel.MakePosts(*environment), cmd.OutOrStdout())

			return handler.Show(args[0])
		},
	}
}
