// Workdesk - Workspace Onboarding
// Copyright (C) 2026 Cloud Exit B.V.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cloud-exit/workdesk/internal/kvstore"
	"github.com/cloud-exit/workdesk/internal/ui"
	"github.com/spf13/cobra"
)

func newKVCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kv",
		Short: "Inspect the stored onboarding records",
		Long:  "Low-level record operations for debugging and support.",
	}

	cmd.AddCommand(newKVGetCmd())
	cmd.AddCommand(newKVListCmd())
	cmd.AddCommand(newKVDeleteCmd())
	return cmd
}

// openKVStore opens a session that must be backed by the on-disk store.
func openKVStore(readOnly bool) (*session, error) {
	s := openSession(readOnly)
	if s.kv == nil {
		s.close()
		return nil, fmt.Errorf("no record store available at %s", s.cfg.StorageDir())
	}
	return s, nil
}

func newKVGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openKVStore(true)
			if err != nil {
				return err
			}
			defer s.close()
			return runKVGet(os.Stdout, s.kv, args[0])
		},
	}
}

func runKVGet(w io.Writer, kv *kvstore.Store, key string) error {
	val, err := kv.Get(key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return fmt.Errorf("no record '%s'", key)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", key, err)
	}
	fmt.Fprintln(w, string(val))
	return nil
}

func newKVListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list [prefix]",
		Short:   "List record keys",
		Aliases: []string{"ls"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openKVStore(true)
			if err != nil {
				return err
			}
			defer s.close()

			prefix := ""
			if len(args) > 0 {
				prefix = args[0]
			}
			return runKVList(os.Stdout, s.kv, prefix)
		},
	}
}

func runKVList(w io.Writer, kv *kvstore.Store, prefix string) error {
	keys, err := kv.Keys(prefix)
	if err != nil {
		return fmt.Errorf("listing records: %w", err)
	}
	if len(keys) == 0 {
		ui.Info("No records found")
	}
	for _, k := range keys {
		fmt.Fprintln(w, k)
	}
	return nil
}

func newKVDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <key>",
		Short:   "Delete a record",
		Aliases: []string{"rm"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openKVStore(false)
			if err != nil {
				return err
			}
			defer s.close()
			return runKVDelete(s.kv, args[0])
		},
	}
}

func runKVDelete(kv *kvstore.Store, key string) error {
	if err := kv.Delete(key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	ui.Successf("Deleted '%s'", key)
	return nil
}

func init() {
	rootCmd.AddCommand(newKVCmd())
}
