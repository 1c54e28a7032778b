package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lucidbard/codequest/internal/selfupdate"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update codequest to the latest version",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		u := selfupdate.New(selfupdate.WithTimeout(2 * time.Minute))
		err := u.Run(ctx, version, func(step string) {
			fmt.Println(step)
		})

		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Println("Cannot update a development build. Install a release build first.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Println("Already running the latest version.")
			return nil
		case os.IsPermission(err):
			return fmt.Errorf("%w\n\nTry running: sudo codequest update", err)
		default:
			return err
		}
	},
}
