// commands.go
//
// Shelter waiting list data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of waitinglist.
// waitinglist is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// waitinglist is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with waitinglist.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/localnerve/waitinglist/internal/app"
	"github.com/localnerve/waitinglist/internal/config"
	"github.com/localnerve/waitinglist/internal/logger"
	"github.com/spf13/cobra"
)

// job is one maintenance pass over the waiting list
type job func(ctx context.Context, rt *app.Runtime) (int, error)

func autoRemove(ctx context.Context, rt *app.Runtime) (int, error) {
	return rt.WaitingList.AutoRemove(ctx)
}

func updateUrgencies(ctx context.Context, rt *app.Runtime) (int, error) {
	return rt.WaitingList.AutoUpdateUrgencies(ctx)
}

// rootCommand creates the maint command tree
func rootCommand() *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:          "maint",
		Short:        "Run waiting list maintenance jobs",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&envFile, "env", "f", "", "path to the .env file")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if envFile == "" {
			return nil
		}
		return os.Setenv("ENV_FILE", envFile)
	}

	rootCmd.AddCommand(
		jobCommand("autoremove", "Remove entries whose owners have not been in contact",
			namedJob{"removed", autoRemove}),
		jobCommand("urgency", "Escalate entries whose urgency update date has passed",
			namedJob{"escalated", updateUrgencies}),
		jobCommand("all", "Run every maintenance job",
			namedJob{"removed", autoRemove}, namedJob{"escalated", updateUrgencies}),
	)

	return rootCmd
}

type namedJob struct {
	verb string
	run  job
}

func jobCommand(use, short string, jobs ...namedJob) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			log := logger.New(cfg.LogLevel, cfg.PrettyLog).Named("maint")
			defer func() { _ = log.Sync() }()

			rt, err := app.Start(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer rt.Close()

			for _, j := range jobs {
				n, err := j.run(cmd.Context(), rt)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", j.verb, n)
			}
			return nil
		},
	}
}
