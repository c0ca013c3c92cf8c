package main

import (
	"fmt"
	"io"
	"strings"

	"video-quiz/internal/adapter/vision"
	"video-quiz/internal/domain"
	"video-quiz/internal/service"
	"video-quiz/internal/validation"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var successColor = color.New(color.FgGreen)

func newVideosCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "videos",
		Short: "List the videos indexed by the Vision service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client := vision.NewClient(cfg.Upstream)
			defer client.Close()

			videos := service.NewVideoService(client, nil, 0, nil)
			listing, err := videos.ListVideos(cmd.Context())
			if err != nil {
				return fmt.Errorf("videos.ListVideos > %w", err)
			}
			return printVideos(cmd.OutOrStdout(), listing.Videos)
		},
	}
}

func newUploadCommand() *cobra.Command {
	var name, videoURL string

	command := &cobra.Command{
		Use:   "upload",
		Short: "Ask the Vision service to fetch and index a video by URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client := vision.NewClient(cfg.Upstream)
			defer client.Close()

			videos := service.NewVideoService(client, nil, 0, validation.NewValidator())
			result, err := videos.UploadVideo(cmd.Context(), domain.UploadVideoRequest{
				Name: strings.TrimSpace(name),
				URL:  strings.TrimSpace(videoURL),
			})
			if err != nil {
				return fmt.Errorf("videos.UploadVideo > %w", err)
			}

			_, err = successColor.Fprintf(cmd.OutOrStdout(), "Uploaded %q as %s\n", name, result.VideoID)
			return err
		},
	}
	command.Flags().StringVar(&name, "name", "", "display name of the video")
	command.Flags().StringVar(&videoURL, "url", "", "public URL of the video file")
	_ = command.MarkFlagRequired("name")
	_ = command.MarkFlagRequired("url")
	return command
}

func newQuizCommand() *cobra.Command {
	var prompt string

	command := &cobra.Command{
		Use:   "quiz <video_id>",
		Short: "Generate a quiz for a video and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client := vision.NewClient(cfg.Upstream)
			defer client.Close()

			quizzes := service.NewQuizService(client, nil)
			text, err := quizzes.GenerateQuiz(cmd.Context(), args[0], prompt)
			if err != nil {
				return fmt.Errorf("quizzes.GenerateQuiz > %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	command.Flags().StringVar(&prompt, "prompt", "", "instructions for the quiz (defaults to a five question quiz)")
	return command
}

func printVideos(w io.Writer, videos []domain.Video) error {
	if len(videos) == 0 {
		_, err := fmt.Fprintln(w, "No videos found.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "URL"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, v := range videos {
		table.Append([]string{v.ID, v.Name, v.URL})
	}
	table.Render()
	return nil
}
