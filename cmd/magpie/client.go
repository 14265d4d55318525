package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/magpielabs/magpie/pkg/client"
	"github.com/magpielabs/magpie/pkg/types"
	"github.com/spf13/cobra"
)

var (
	serverAddr   string
	sessionToken string
)

func newClient() (*client.Client, error) {
	c, err := client.NewClient(serverAddr)
	if err != nil {
		return nil, err
	}
	if sessionToken != "" {
		c.SetToken(sessionToken)
	}
	return c, nil
}

func init() {
	for _, cmd := range []*cobra.Command{registerCmd, loginCmd, taskCmd, catalogCmd} {
		cmd.PersistentFlags().StringVar(&serverAddr, "server", "127.0.0.1:50051", "Dispatcher client address")
	}
	for _, cmd := range []*cobra.Command{taskCmd} {
		cmd.PersistentFlags().StringVar(&sessionToken, "token", "", "Session token from login")
	}

	taskCmd.AddCommand(taskStartCmd)
	taskCmd.AddCommand(taskCancelCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskStreamCmd)
	catalogCmd.AddCommand(categoriesCmd)
	catalogCmd.AddCommand(locationsCmd)

	taskStartCmd.Flags().String("keywords", "", "Search keywords")
	taskStartCmd.Flags().String("categories", "", "Comma-separated categories")
	taskStartCmd.Flags().String("locations", "", "Comma-separated locations")
	taskStartCmd.Flags().String("start", "", "Window start (RFC3339, default: now)")
	taskStartCmd.Flags().Duration("duration", time.Hour, "Window length from start")
	taskListCmd.Flags().StringSlice("status", nil, "Filter by status (PENDING, DISPATCHED, ...)")
	taskListCmd.Flags().Int("limit", 0, "Max tasks to return")
	taskListCmd.Flags().Int("offset", 0, "Tasks to skip")
}

var registerCmd = &cobra.Command{
	Use:   "register <username> <password>",
	Short: "Create a client account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		if err := c.Register(args[0], args[1]); err != nil {
			return err
		}
		fmt.Println("✓ Account created")
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Log in and print a session token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		token, err := c.Login(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage collection tasks",
}

var taskStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a collection task",
	RunE: func(cmd *cobra.Command, args []string) error {
		keywords, _ := cmd.Flags().GetString("keywords")
		categories, _ := cmd.Flags().GetString("categories")
		locations, _ := cmd.Flags().GetString("locations")
		startStr, _ := cmd.Flags().GetString("start")
		duration, _ := cmd.Flags().GetDuration("duration")

		start := time.Now().UTC()
		if startStr != "" {
			var err error
			start, err = time.Parse(time.RFC3339, startStr)
			if err != nil {
				return fmt.Errorf("invalid --start: %v", err)
			}
		}
		end := start.Add(duration)

		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		taskID, msg, err := c.StartTask(keywords, categories, locations, start, end)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Task %s started: %s\n", taskID, msg)
		return nil
	},
}

var taskCancelCmd = &cobra.Command{
	Use:   "cancel <task-id>",
	Short: "Cancel a running task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		if err := c.CancelTask(args[0]); err != nil {
			return err
		}
		fmt.Println("✓ Task cancelled")
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		statuses, _ := cmd.Flags().GetStringSlice("status")
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		tasks, err := c.ListTasks(statuses, limit, offset)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TASK ID\tSTATUS\tKEYWORDS\tSTART\tEND")
		for _, t := range tasks {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				t.TaskId, t.Status, t.Keywords,
				t.StartTime.AsTime().Format(time.RFC3339),
				t.EndTime.AsTime().Format(time.RFC3339))
		}
		return w.Flush()
	},
}

var taskStreamCmd = &cobra.Command{
	Use:   "stream <task-id>",
	Short: "Stream a task's results to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		err = c.StreamResults(context.Background(), args[0], func(env *types.ResultEnvelope) error {
			// Results are JSON documents; print them one per line.
			var compact json.RawMessage = env.Result
			line, err := json.Marshal(compact)
			if err != nil {
				line = env.Result
			}
			fmt.Println(string(line))
			return nil
		})
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the source catalog",
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List available categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		cats, err := c.Categories()
		if err != nil {
			return err
		}
		for _, cat := range cats {
			fmt.Println(cat)
		}
		return nil
	},
}

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List available locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		defer c.Close()

		locs, err := c.Locations()
		if err != nil {
			return err
		}
		for _, loc := range locs {
			fmt.Println(loc)
		}
		return nil
	},
}
