package posts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/saifulislam1431/Post-Disaster-Community-server/cmd/cli/config"
	"github.com/saifulislam1431/Post-Disaster-Community-server/cmd/cli/output"
	"github.com/saifulislam1431/Post-Disaster-Community-server/internal/models"
)

// InitPosts registers supply-post commands on the root command.
func InitPosts(rootCmd *cobra.Command) {
	postsCmd := &cobra.Command{
		Use:   "posts",
		Short: "Manage supply posts",
	}

	postsCmd.AddCommand(
		listPostsCmd(),
		createPostCmd(),
		deletePostCmd(),
	)

	rootCmd.AddCommand(postsCmd)
}

func listPostsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List supply posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := http.Get(config.APIURL() + "/api/v1/all-post")
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("API status %d", resp.StatusCode)
			}

			var posts []models.SupplyPost
			if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
				return err
			}

			rows := make([][]interface{}, 0, len(posts))
			for _, p := range posts {
				rows = append(rows, []interface{}{p.ID, p.Title, p.Category, p.Amount})
			}
			output.RenderTable([]string{"ID", "Title", "Category", "Amount"}, rows)
			return nil
		},
	}
}

func createPostCmd() *cobra.Command {
	var title, image, category, amount, description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a supply post",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return fmt.Errorf("title is required")
			}

			payload := map[string]string{
				"title":       title,
				"image":       image,
				"category":    category,
				"amount":      amount,
				"description": description,
			}
			body, _ := json.Marshal(payload)

			resp, err := http.Post(config.APIURL()+"/api/v1/add-post", "application/json", bytes.NewBuffer(body))
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			var out struct {
				Success    bool   `json:"success"`
				InsertedID int    `json:"insertedId"`
				Message    string `json:"message"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				return err
			}
			if !out.Success {
				return fmt.Errorf("create failed: %s", out.Message)
			}

			fmt.Printf("Created post %d\n", out.InsertedID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "post title")
	cmd.Flags().StringVar(&image, "image", "", "image URL")
	cmd.Flags().StringVar(&category, "category", "", "supply category")
	cmd.Flags().StringVar(&amount, "amount", "", "supply amount")
	cmd.Flags().StringVar(&description, "description", "", "post description")

	return cmd
}

func deletePostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a supply post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := http.NewRequest("DELETE", config.APIURL()+"/api/v1/delete-post/"+args[0], nil)
			if err != nil {
				return err
			}

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			var out struct {
				Success      bool   `json:"success"`
				DeletedCount int64  `json:"deletedCount"`
				Message      string `json:"message"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
				return err
			}

			fmt.Println(out.Message)
			return nil
		},
	}
}
